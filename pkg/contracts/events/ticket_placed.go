package events

// Evento publicado no tópico "ticket_placed" quando um agente registra um ticket.
type TicketPlaced struct {
	TicketID string `json:"ticket_id"`
	UserID   string `json:"user_id"`
	Center   string `json:"center"`
	SportKey string `json:"sport_key"`
	Team     string `json:"team"`
	Bet      string `json:"bet"` // "ML" | "Over" | "Under"
	Points   string `json:"pts,omitempty"`
	Price    int    `json:"price"`
	Stake    string `json:"stake"` // decimal serializado como string
	TsUnixMs int64  `json:"ts_unix_ms"`
}
