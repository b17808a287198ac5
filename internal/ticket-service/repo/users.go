package repo

import (
	"context"
	"database/sql"

	"golang.org/x/crypto/bcrypt"
)

// GetUserByUsername busca um usuário para autenticação.
func (p *Postgres) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	return p.scanUser(p.db.QueryRowContext(ctx, `
		SELECT id, username, pass_hash, center, name, phone, balance
		FROM users WHERE username = $1`, username))
}

// GetUser busca um usuário pelo id.
func (p *Postgres) GetUser(ctx context.Context, id string) (*User, error) {
	return p.scanUser(p.db.QueryRowContext(ctx, `
		SELECT id, username, pass_hash, center, name, phone, balance
		FROM users WHERE id = $1`, id))
}

func (p *Postgres) scanUser(row *sql.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.PassHash, &u.Center, &u.Name, &u.Phone, &u.Balance)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// SeedDefaultUsers insere os agentes padrão quando a tabela está vazia.
// Senhas entram com hash bcrypt; útil para subir o ambiente local do zero.
func (p *Postgres) SeedDefaultUsers(ctx context.Context) error {
	var count int
	if err := p.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := []struct {
		id, username, pass, center, name string
	}{
		{"u1", "agent1", "1234", "Centro A", "Ana López"},
		{"u2", "agent2", "5678", "Centro B", "Carlos Ruiz"},
	}

	for _, s := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.pass), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if _, err := p.db.ExecContext(ctx, `
			INSERT INTO users (id, username, pass_hash, center, name, phone, balance)
			VALUES ($1,$2,$3,$4,$5,'',0)`,
			s.id, s.username, string(hash), s.center, s.name); err != nil {
			return err
		}
	}
	return nil
}
