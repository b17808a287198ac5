package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/radieske/ticket-shop-poc/internal/ticket-service/repo"
)

func TestIssueAndVerifyToken(t *testing.T) {
	m := NewManager("test-secret")
	u := &repo.User{ID: "u1", Username: "agent1", Center: "Centro A"}

	token, err := m.IssueToken(u)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := m.VerifyToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Subject != "u1" || claims.Username != "agent1" || claims.Center != "Centro A" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := NewManager("secret-a").IssueToken(&repo.User{ID: "u1"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewManager("secret-b").VerifyToken(token); err == nil {
		t.Error("token signed with another secret must not verify")
	}
}

func TestVerifyToken_Garbage(t *testing.T) {
	if _, err := NewManager("s").VerifyToken("not.a.token"); err == nil {
		t.Error("garbage token must not verify")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	if !CheckPassword(string(hash), "1234") {
		t.Error("correct password rejected")
	}
	if CheckPassword(string(hash), "9999") {
		t.Error("wrong password accepted")
	}
}
