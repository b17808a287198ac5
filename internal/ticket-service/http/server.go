package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/radieske/ticket-shop-poc/internal/ticket-service/auth"
	"github.com/radieske/ticket-shop-poc/internal/ticket-service/cache"
	"github.com/radieske/ticket-shop-poc/internal/ticket-service/codebook"
	"github.com/radieske/ticket-shop-poc/internal/ticket-service/dto"
	"github.com/radieske/ticket-shop-poc/internal/ticket-service/repo"
	"github.com/radieske/ticket-shop-poc/internal/ticket-service/reports"
	"github.com/radieske/ticket-shop-poc/internal/ticket-service/settlement"
	"github.com/radieske/ticket-shop-poc/pkg/contracts/events"
)

const codebookTTL = 30 * time.Second

// Server expõe a API REST da casa: login, livro de códigos, tickets,
// liquidação e relatórios.
type Server struct {
	log       *zap.Logger
	repo      *repo.Postgres
	cache     *cache.Cache
	refresher *codebook.Refresher
	orch      *settlement.Orchestrator
	auth      *auth.Manager
	publ      interface {
		PublishTicketPlaced(context.Context, events.TicketPlaced) error
		PublishTicketSettled(context.Context, events.TicketSettled) error
	}
}

func NewServer(
	log *zap.Logger,
	r *repo.Postgres,
	c *cache.Cache,
	ref *codebook.Refresher,
	orch *settlement.Orchestrator,
	am *auth.Manager,
	p interface {
		PublishTicketPlaced(context.Context, events.TicketPlaced) error
		PublishTicketSettled(context.Context, events.TicketSettled) error
	},
) *Server {
	return &Server{log: log, repo: r, cache: c, refresher: ref, orch: orch, auth: am, publ: p}
}

// Router retorna o roteador HTTP com os endpoints REST
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Post("/api/auth/login", s.login)
	r.Get("/api/odds/public", s.publicCodebook) // livro de códigos, sem auth

	r.Group(func(r chi.Router) {
		r.Use(s.auth.Middleware)
		r.Get("/api/tickets", s.listTickets)
		r.Post("/api/tickets", s.placeTicket)
		r.Patch("/api/tickets/{id}", s.settleTicket)
		r.Post("/api/tickets/auto-settle", s.autoSettle)
		r.Get("/api/reports/daily", s.dailyReport)
		r.Get("/api/reports/excel", s.excelReport)
		r.Get("/api/reports/pdf", s.pdfReport)
	})

	return r
}

// writeJSON serializa a resposta em JSON e define o status HTTP
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// login autentica o agente e emite o token de sessão
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username & password required")
		return
	}

	u, err := s.repo.GetUserByUsername(r.Context(), req.Username)
	if err != nil || !auth.CheckPassword(u.PassHash, req.Password) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := s.auth.IssueToken(u)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LoginResponse{Token: token, User: dto.NewUserView(u)})
}

// publicCodebook devolve o livro de códigos corrente, reconstruindo a partir
// do feed quando o cache expira
func (s *Server) publicCodebook(w http.ResponseWriter, r *http.Request) {
	if book, ok, _ := s.cache.GetCodebook(r.Context()); ok {
		writeJSON(w, http.StatusOK, dto.CodebookResponse{Codebook: book})
		return
	}

	book, err := s.refresher.Refresh(r.Context())
	if err != nil {
		s.log.Error("codebook refresh", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load odds")
		return
	}

	_ = s.cache.SetCodebook(r.Context(), book, codebookTTL)
	writeJSON(w, http.StatusOK, dto.CodebookResponse{Codebook: book})
}

func (s *Server) listTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := s.repo.ListTicketsByUser(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	views := make([]dto.TicketView, 0, len(tickets))
	for i := range tickets {
		views = append(views, dto.NewTicketView(&tickets[i]))
	}
	writeJSON(w, http.StatusOK, dto.TicketsResponse{Tickets: views})
}

// placeTicket registra uma aposta contra um código vigente do livro
func (s *Server) placeTicket(w http.ResponseWriter, r *http.Request) {
	var req dto.PlaceTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if req.Code == 0 || req.Bet == "" || !req.Stake.IsPositive() {
		writeError(w, http.StatusBadRequest, "code, bet, stake required")
		return
	}
	if req.Bet != repo.BetML && req.Bet != repo.BetOver && req.Bet != repo.BetUnder {
		writeError(w, http.StatusBadRequest, "invalid bet type")
		return
	}

	entry, err := s.repo.GetCode(r.Context(), req.Code)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			writeError(w, http.StatusBadRequest, "code not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	price, points := priceFor(req, entry)
	if price == nil {
		writeError(w, http.StatusBadRequest, "no price for that market")
		return
	}

	userID := auth.UserID(r.Context())
	u, err := s.repo.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	t := &repo.Ticket{
		UserID:      u.ID,
		Center:      u.Center,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		SportKey:    entry.SportKey,
		Sport:       entry.Sport,
		Team:        entry.Team,
		Bet:         req.Bet,
		Points:      points,
		Price:       *price,
		Stake:       req.Stake,
	}

	id, err := s.repo.CreateTicket(r.Context(), t)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	created, err := s.repo.GetTicketForUser(r.Context(), id, u.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	pts := ""
	if created.Points != nil {
		pts = *created.Points
	}
	_ = s.publ.PublishTicketPlaced(r.Context(), events.TicketPlaced{
		TicketID: created.ID,
		UserID:   u.ID,
		Center:   u.Center,
		SportKey: created.SportKey,
		Team:     created.Team,
		Bet:      created.Bet,
		Points:   pts,
		Price:    created.Price,
		Stake:    created.Stake.String(),
	})

	writeJSON(w, http.StatusOK, dto.TicketResponse{Ticket: dto.NewTicketView(created)})
}

// priceFor escolhe o preço do mercado apostado; pra totais, a linha de pontos
// vem do pedido ou, na falta, da linha corrente do código
func priceFor(req dto.PlaceTicketRequest, entry *codebook.Entry) (*int, *string) {
	if req.Bet == repo.BetML {
		return entry.ML, nil
	}

	price := entry.Over
	if req.Bet == repo.BetUnder {
		price = entry.Under
	}

	var points *string
	if req.Pts != "" {
		points = &req.Pts
	} else if entry.Points != nil {
		s := strconv.FormatFloat(*entry.Points, 'f', -1, 64)
		points = &s
	}
	return price, points
}

// settleTicket executa a ação manual win/lose/void sobre um ticket aberto
func (s *Server) settleTicket(w http.ResponseWriter, r *http.Request) {
	var req dto.SettleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}

	var newStatus string
	switch req.Action {
	case "win":
		newStatus = repo.StatusWon
	case "lose":
		newStatus = repo.StatusLost
	case "void":
		newStatus = repo.StatusVoid
	default:
		writeError(w, http.StatusBadRequest, "invalid action")
		return
	}

	userID := auth.UserID(r.Context())
	ticketID := chi.URLParam(r, "id")

	t, err := s.repo.GetTicketForUser(r.Context(), ticketID, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if t.Status != repo.StatusOpen {
		writeError(w, http.StatusBadRequest, "already settled")
		return
	}

	delta := settlement.Delta(newStatus, t.Stake, t.Price)
	newBalance, err := s.repo.SettleTicket(r.Context(), userID, ticketID, newStatus, delta)
	if err != nil {
		if errors.Is(err, repo.ErrAlreadySettled) {
			// perdeu a corrida pra outra liquidação; nada foi mutado
			writeError(w, http.StatusBadRequest, "already settled")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	_ = s.publ.PublishTicketSettled(r.Context(), events.TicketSettled{
		TicketID:     ticketID,
		UserID:       userID,
		OldStatus:    repo.StatusOpen,
		NewStatus:    newStatus,
		BalanceDelta: delta.String(),
		Mode:         "manual",
		Ts:           time.Now(),
	})

	t.Status = newStatus
	writeJSON(w, http.StatusOK, dto.TicketResponse{Ticket: dto.NewTicketView(t), Balance: &newBalance})
}

// autoSettle liquida os tickets abertos do usuário contra os placares do feed
func (s *Server) autoSettle(w http.ResponseWriter, r *http.Request) {
	res, err := s.orch.AutoSettle(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) dailyReport(w http.ResponseWriter, r *http.Request) {
	tickets, err := s.repo.ListTicketsByUser(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var from, to *time.Time
	if v := r.URL.Query().Get("from"); v != "" {
		if d, err := time.ParseInLocation("2006-01-02", v, time.Local); err == nil {
			from = &d
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		if d, err := time.ParseInLocation("2006-01-02", v, time.Local); err == nil {
			end := d.Add(24*time.Hour - time.Second)
			to = &end
		}
	}

	writeJSON(w, http.StatusOK, map[string][]reports.DailyRow{"rows": reports.Daily(tickets, from, to)})
}

func (s *Server) excelReport(w http.ResponseWriter, r *http.Request) {
	tickets, err := s.repo.ListTicketsByUser(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="tickets.xlsx"`)
	if err := reports.WriteExcel(w, tickets); err != nil {
		s.log.Error("excel report", zap.Error(err))
	}
}

func (s *Server) pdfReport(w http.ResponseWriter, r *http.Request) {
	tickets, err := s.repo.ListTicketsByUser(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="tickets.pdf"`)
	if err := reports.WritePDF(w, tickets); err != nil {
		s.log.Error("pdf report", zap.Error(err))
	}
}
