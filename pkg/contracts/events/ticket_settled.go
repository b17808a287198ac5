package events

import "time"

// Evento publicado no tópico "ticket_settled" após uma liquidação manual ou automática.
type TicketSettled struct {
	TicketID     string    `json:"ticket_id"`
	UserID       string    `json:"user_id"`
	OldStatus    string    `json:"old_status"` // sempre "open"
	NewStatus    string    `json:"new_status"` // "won" | "lost" | "void"
	BalanceDelta string    `json:"balance_delta"`
	Mode         string    `json:"mode"` // "manual" | "auto"
	Ts           time.Time `json:"ts"`
}
