package reports

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/radieske/ticket-shop-poc/internal/ticket-service/repo"
)

// WriteExcel monta a planilha de tickets do agente e escreve o XLSX em w.
func WriteExcel(w io.Writer, tickets []repo.Ticket) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Tickets"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	headers := []struct {
		title string
		width float64
	}{
		{"ID", 38}, {"Fecha", 22}, {"Centro", 16}, {"Cliente", 24},
		{"Deporte", 12}, {"Equipo", 24}, {"Tipo", 8}, {"Pts", 8},
		{"Cuota", 10}, {"Riesgo", 10}, {"Estado", 10},
	}
	for i, h := range headers {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, h.width); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, col+"1", h.title); err != nil {
			return err
		}
	}

	for i, t := range tickets {
		client := t.ClientName
		if t.ClientPhone != "" {
			client = fmt.Sprintf("%s (%s)", t.ClientName, t.ClientPhone)
		}
		pts := ""
		if t.Points != nil {
			pts = *t.Points
		}

		row := []any{
			t.ID, t.CreatedAt.Format("2006-01-02 15:04"), t.Center, client,
			t.Sport, t.Team, t.Bet, pts,
			t.Price, t.Stake.InexactFloat64(), t.Status,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}
