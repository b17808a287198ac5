package repo

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de um ticket. A transição é one-way: open -> won|lost|void.
const (
	StatusOpen = "open"
	StatusWon  = "won"
	StatusLost = "lost"
	StatusVoid = "void"
)

// Tipos de aposta aceitos.
const (
	BetML    = "ML"
	BetOver  = "Over"
	BetUnder = "Under"
)

// Ticket é a aposta persistida no Postgres.
type Ticket struct {
	ID          string
	UserID      string
	Center      string
	ClientName  string
	ClientPhone string
	SportKey    string
	Sport       string
	Team        string
	Bet         string  // ML | Over | Under
	Points      *string // obrigatório para Over/Under; aceita "8.5" ou "8,5"
	Price       int     // odd americana no momento da aposta
	Stake       decimal.Decimal
	Status      string
	CreatedAt   time.Time
}

// User é o agente dono dos tickets, com saldo corrente assinado.
type User struct {
	ID       string
	Username string
	PassHash string
	Center   string
	Name     string
	Phone    string
	Balance  decimal.Decimal
}
