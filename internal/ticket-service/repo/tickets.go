package repo

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateTicket insere um ticket com status open e retorna o id gerado.
func (p *Postgres) CreateTicket(ctx context.Context, t *Ticket) (string, error) {
	id := uuid.NewString()
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO tickets
		  (id, user_id, center, client_name, client_phone, sport_key, sport, team, bet, pts, price, stake, status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,'open',NOW())`,
		id, t.UserID, t.Center, t.ClientName, t.ClientPhone,
		t.SportKey, t.Sport, t.Team, t.Bet, t.Points, t.Price, t.Stake,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// GetTicketForUser retorna um ticket apenas se pertencer ao usuário.
func (p *Postgres) GetTicketForUser(ctx context.Context, ticketID, userID string) (*Ticket, error) {
	row := p.db.QueryRowContext(ctx, `
		SELECT id, user_id, center, client_name, client_phone, sport_key, sport, team, bet, pts, price, stake, status, created_at
		FROM tickets WHERE id = $1 AND user_id = $2`, ticketID, userID)
	return scanTicket(row.Scan)
}

// ListTicketsByUser retorna todos os tickets do usuário, mais recentes primeiro.
func (p *Postgres) ListTicketsByUser(ctx context.Context, userID string) ([]Ticket, error) {
	return p.listTickets(ctx, `
		SELECT id, user_id, center, client_name, client_phone, sport_key, sport, team, bet, pts, price, stake, status, created_at
		FROM tickets WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

// ListOpenTicketsByUser retorna só os tickets ainda abertos do usuário.
func (p *Postgres) ListOpenTicketsByUser(ctx context.Context, userID string) ([]Ticket, error) {
	return p.listTickets(ctx, `
		SELECT id, user_id, center, client_name, client_phone, sport_key, sport, team, bet, pts, price, stake, status, created_at
		FROM tickets WHERE user_id = $1 AND status = 'open' ORDER BY created_at`, userID)
}

func (p *Postgres) listTickets(ctx context.Context, q string, args ...any) ([]Ticket, error) {
	rows, err := p.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Ticket
	for rows.Next() {
		t, err := scanTicket(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

func scanTicket(scan func(...any) error) (*Ticket, error) {
	var (
		t   Ticket
		pts sql.NullString
	)
	err := scan(&t.ID, &t.UserID, &t.Center, &t.ClientName, &t.ClientPhone,
		&t.SportKey, &t.Sport, &t.Team, &t.Bet, &pts, &t.Price, &t.Stake, &t.Status, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if pts.Valid {
		t.Points = &pts.String
	}
	return &t, nil
}

// SettleTicket vira o status de um ticket aberto e aplica o delta no saldo do
// usuário, tudo na mesma transação. O UPDATE condicionado a status='open' é o
// guard otimista: uma segunda liquidação do mesmo ticket vê zero linhas
// afetadas e aborta sem tocar no saldo. O FOR UPDATE na linha do usuário
// serializa liquidações concorrentes do mesmo saldo.
func (p *Postgres) SettleTicket(ctx context.Context, userID, ticketID, newStatus string, delta decimal.Decimal) (decimal.Decimal, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return decimal.Zero, err
	}
	defer tx.Rollback()

	var balance decimal.Decimal
	err = tx.QueryRowContext(ctx, `SELECT balance FROM users WHERE id=$1 FOR UPDATE`, userID).Scan(&balance)
	if err == sql.ErrNoRows {
		return decimal.Zero, ErrNotFound
	}
	if err != nil {
		return decimal.Zero, err
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE tickets SET status=$1
		WHERE id=$2 AND user_id=$3 AND status='open'`,
		newStatus, ticketID, userID)
	if err != nil {
		return decimal.Zero, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return decimal.Zero, err
	}
	if n == 0 {
		return decimal.Zero, ErrAlreadySettled
	}

	newBalance := balance.Add(delta)
	if _, err := tx.ExecContext(ctx, `UPDATE users SET balance=$1 WHERE id=$2`, newBalance, userID); err != nil {
		return decimal.Zero, err
	}

	if err := tx.Commit(); err != nil {
		return decimal.Zero, err
	}
	return newBalance, nil
}
