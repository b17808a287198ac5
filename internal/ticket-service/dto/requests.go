package dto

import "github.com/shopspring/decimal"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type PlaceTicketRequest struct {
	Code        int             `json:"code"`
	Bet         string          `json:"bet"` // "ML" | "Over" | "Under"
	Pts         string          `json:"pts,omitempty"`
	Stake       decimal.Decimal `json:"stake"`
	ClientName  string          `json:"clientName,omitempty"`
	ClientPhone string          `json:"clientPhone,omitempty"`
}

type SettleRequest struct {
	Action string `json:"action"` // "win" | "lose" | "void"
}
