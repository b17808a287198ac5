package repo

import (
	"database/sql"
	"errors"
)

// Postgres implementa a persistência de códigos, usuários e tickets.
type Postgres struct{ db *sql.DB }

// NewPostgres retorna uma instância do repositório.
func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadySettled = errors.New("ticket already settled")
)
