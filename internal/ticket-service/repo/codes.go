package repo

import (
	"context"
	"database/sql"

	"github.com/radieske/ticket-shop-poc/internal/ticket-service/codebook"
)

// UsedCodes carrega o conjunto de códigos atualmente ocupados no livro.
func (p *Postgres) UsedCodes(ctx context.Context) (map[int]struct{}, error) {
	rows, err := p.db.QueryContext(ctx, `SELECT code FROM codes`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	used := map[int]struct{}{}
	for rows.Next() {
		var c int
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		used[c] = struct{}{}
	}
	return used, rows.Err()
}

// UpsertCode grava uma entrada do livro, sobrescrevendo o código se já existir.
// ON CONFLICT cobre o reuso de código entre refreshes.
func (p *Postgres) UpsertCode(ctx context.Context, e codebook.Entry) error {
	const q = `
		INSERT INTO codes (code, sport_key, sport, team, ml, over_price, under_price, points, game_time, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (code) DO UPDATE SET
		  sport_key   = EXCLUDED.sport_key,
		  sport       = EXCLUDED.sport,
		  team        = EXCLUDED.team,
		  ml          = EXCLUDED.ml,
		  over_price  = EXCLUDED.over_price,
		  under_price = EXCLUDED.under_price,
		  points      = EXCLUDED.points,
		  game_time   = EXCLUDED.game_time,
		  created_at  = EXCLUDED.created_at
	`
	_, err := p.db.ExecContext(ctx, q,
		e.Code, e.SportKey, e.Sport, e.Team,
		nullInt(e.ML), nullInt(e.Over), nullInt(e.Under), nullFloat(e.Points),
		e.GameTime, e.CreatedAt,
	)
	return err
}

// GetCode retorna a entrada do livro para um código, ou ErrNotFound.
func (p *Postgres) GetCode(ctx context.Context, code int) (*codebook.Entry, error) {
	const q = `
		SELECT code, sport_key, sport, team, ml, over_price, under_price, points, game_time, created_at
		FROM codes WHERE code = $1
	`
	var (
		e          codebook.Entry
		ml, ov, un sql.NullInt64
		pts        sql.NullFloat64
	)
	err := p.db.QueryRowContext(ctx, q, code).Scan(
		&e.Code, &e.SportKey, &e.Sport, &e.Team, &ml, &ov, &un, &pts, &e.GameTime, &e.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	e.ML = intPtr(ml)
	e.Over = intPtr(ov)
	e.Under = intPtr(un)
	if pts.Valid {
		v := pts.Float64
		e.Points = &v
	}
	return &e, nil
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
