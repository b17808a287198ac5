package reports

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/radieske/ticket-shop-poc/internal/ticket-service/repo"
)

// WritePDF renderiza o relatório de tickets em PDF e escreve em w.
func WritePDF(w io.Writer, tickets []repo.Ticket) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(12, 12, 12)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 10, "Reporte de Tickets", "", 1, "C", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "", 11)
	for _, t := range tickets {
		pts := ""
		if t.Points != nil {
			pts = " " + *t.Points
		}
		doc.CellFormat(0, 6,
			fmt.Sprintf("#%s - %s - %s", t.ID, t.CreatedAt.Format("2006-01-02 15:04"), t.Center),
			"", 1, "L", false, 0, "")
		doc.CellFormat(0, 6,
			fmt.Sprintf("%s - %s - %s%s @ %d | Riesgo: $%s | Estado: %s",
				t.Sport, t.Team, t.Bet, pts, t.Price, t.Stake.StringFixed(2), t.Status),
			"", 1, "L", false, 0, "")
		doc.Ln(2)
	}

	return doc.Output(w)
}
