package topics

const (
	// Tickets
	TicketPlaced  = "ticket_placed"
	TicketSettled = "ticket_settled"

	// DLQs
	TicketSettledDLQ = "ticket_settled_dlq"
)
