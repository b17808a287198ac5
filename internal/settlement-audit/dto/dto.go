package dto

import "time"

// TicketSettled é a visão do worker sobre o evento consumido do Kafka.
// Mantida separada do contrato pra não acoplar o worker a campos que não usa.
type TicketSettled struct {
	TicketID     string    `json:"ticket_id"`
	UserID       string    `json:"user_id"`
	OldStatus    string    `json:"old_status"`
	NewStatus    string    `json:"new_status"`
	BalanceDelta string    `json:"balance_delta"`
	Mode         string    `json:"mode"`
	Ts           time.Time `json:"ts"`
}
