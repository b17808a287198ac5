package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/radieske/ticket-shop-poc/internal/ticket-service/codebook"
	"github.com/radieske/ticket-shop-poc/internal/ticket-service/repo"
)

type UserView struct {
	ID       string          `json:"id"`
	Username string          `json:"username"`
	Center   string          `json:"center"`
	Name     string          `json:"name"`
	Phone    string          `json:"phone"`
	Balance  decimal.Decimal `json:"balance"`
}

func NewUserView(u *repo.User) UserView {
	return UserView{
		ID:       u.ID,
		Username: u.Username,
		Center:   u.Center,
		Name:     u.Name,
		Phone:    u.Phone,
		Balance:  u.Balance,
	}
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

type CodebookResponse struct {
	Codebook []codebook.Entry `json:"codebook"`
}

type TicketView struct {
	ID          string          `json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	Center      string          `json:"center"`
	ClientName  string          `json:"client_name,omitempty"`
	ClientPhone string          `json:"client_phone,omitempty"`
	SportKey    string          `json:"sport_key"`
	Sport       string          `json:"sport"`
	Team        string          `json:"team"`
	Bet         string          `json:"bet"`
	Pts         *string         `json:"pts"`
	Price       int             `json:"price"`
	Stake       decimal.Decimal `json:"stake"`
	Status      string          `json:"status"`
}

func NewTicketView(t *repo.Ticket) TicketView {
	return TicketView{
		ID:          t.ID,
		CreatedAt:   t.CreatedAt,
		Center:      t.Center,
		ClientName:  t.ClientName,
		ClientPhone: t.ClientPhone,
		SportKey:    t.SportKey,
		Sport:       t.Sport,
		Team:        t.Team,
		Bet:         t.Bet,
		Pts:         t.Points,
		Price:       t.Price,
		Stake:       t.Stake,
		Status:      t.Status,
	}
}

type TicketResponse struct {
	Ticket  TicketView       `json:"ticket"`
	Balance *decimal.Decimal `json:"balance,omitempty"`
}

type TicketsResponse struct {
	Tickets []TicketView `json:"tickets"`
}
