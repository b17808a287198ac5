package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/radieske/ticket-shop-poc/internal/ticket-service/repo"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims do token de sessão: o Subject é o id do usuário verificado,
// a única identidade que o restante do serviço aceita.
type Claims struct {
	Username string `json:"username"`
	Center   string `json:"center"`
	jwt.RegisteredClaims
}

// Manager emite e verifica tokens de sessão HS256.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret), ttl: 12 * time.Hour}
}

// IssueToken assina um token de 12h para um usuário autenticado.
func (m *Manager) IssueToken(u *repo.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: u.Username,
		Center:   u.Center,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// VerifyToken valida assinatura e expiração e devolve as claims.
func (m *Manager) VerifyToken(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// CheckPassword compara a senha informada com o hash bcrypt armazenado.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
