package identity

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// LocalProvider is an in-process identity provider for development and
// tests. It keeps accounts in memory, hashes passwords with bcrypt and
// issues HS256 tokens, so the rest of the system exercises the exact same
// Provider interface it uses against the managed service.
type LocalProvider struct {
	mu       sync.Mutex
	secret   []byte
	accounts map[string]*localAccount // keyed by username
}

type localAccount struct {
	username     string
	sub          string
	email        string
	passwordHash string
	groups       []string
	disabled     bool
}

type localClaims struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

func NewLocalProvider(secret string) *LocalProvider {
	return &LocalProvider{
		secret:   []byte(secret),
		accounts: make(map[string]*localAccount),
	}
}

func (p *LocalProvider) GetUser(ctx context.Context, accessToken string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(accessToken, &localClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrNotAuthorized
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrNotAuthorized
	}
	claims, ok := token.Claims.(*localClaims)
	if !ok {
		return nil, ErrNotAuthorized
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	acct, ok := p.accounts[claims.Username]
	if !ok || acct.disabled {
		return nil, ErrNotAuthorized
	}
	return &Identity{Username: acct.username, Sub: acct.sub, Email: acct.email}, nil
}

func (p *LocalProvider) ListGroups(ctx context.Context, username string) ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	acct, ok := p.accounts[username]
	if !ok {
		return nil, fmt.Errorf("user %s does not exist", username)
	}
	return append([]string(nil), acct.groups...), nil
}

func (p *LocalProvider) AdminCreateUser(ctx context.Context, email string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.accounts[email]; exists {
		return "", fmt.Errorf("an account with email %s already exists", email)
	}
	p.accounts[email] = &localAccount{
		username: email,
		sub:      uuid.NewString(),
		email:    email,
	}
	return email, nil
}

func (p *LocalProvider) AdminSetPassword(ctx context.Context, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	acct, ok := p.accounts[username]
	if !ok {
		return fmt.Errorf("user %s does not exist", username)
	}
	acct.passwordHash = string(hash)
	return nil
}

func (p *LocalProvider) AdminAddUserToGroup(ctx context.Context, username, group string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	acct, ok := p.accounts[username]
	if !ok {
		return fmt.Errorf("user %s does not exist", username)
	}
	for _, g := range acct.groups {
		if g == group {
			return nil
		}
	}
	acct.groups = append(acct.groups, group)
	return nil
}

func (p *LocalProvider) AdminDisableUser(ctx context.Context, username string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	acct, ok := p.accounts[username]
	if !ok {
		return fmt.Errorf("user %s does not exist", username)
	}
	acct.disabled = true
	return nil
}

func (p *LocalProvider) AdminInitiateAuth(ctx context.Context, email, password string) (string, error) {
	p.mu.Lock()
	var acct *localAccount
	for _, a := range p.accounts {
		if a.email == email {
			acct = a
			break
		}
	}
	p.mu.Unlock()

	if acct == nil || acct.disabled {
		return "", ErrNotAuthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.passwordHash), []byte(password)); err != nil {
		return "", errors.Join(ErrNotAuthorized, err)
	}

	claims := localClaims{
		Username: acct.username,
		Email:    acct.email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   acct.sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "local-identity",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}
