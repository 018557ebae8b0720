package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/EricWal/hr-app/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

var (
	ErrInvalidCredentials = errors.New("البريد الإلكتروني أو كلمة المرور غير صحيحة")
	ErrDuplicateAccount   = errors.New("duplicate account email")
)

// Account is a configured login. An empty Password accepts any password.
type Account struct {
	Email    string `mapstructure:"email" json:"email" yaml:"email" validate:"required,email"`
	Password string `mapstructure:"password" json:"-" yaml:"-"`
	Role     Role   `mapstructure:"role" json:"role" yaml:"role" validate:"required,oneof=employee admin"`
}

func DefaultAccounts() []Account {
	return []Account{
		{Email: "employee@test.com", Role: RoleEmployee},
		{Email: "admin@test.com", Password: "123", Role: RoleAdmin},
	}
}

type credential struct {
	account Account
	hash    []byte
}

type Service struct {
	credentials map[string]credential
	logger      log.Logger
}

// NewService hashes the configured passwords. cost is a bcrypt cost; zero
// means bcrypt.DefaultCost.
func NewService(accounts []Account, cost int, logger log.Logger) (*Service, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	credentials := make(map[string]credential, len(accounts))
	for _, a := range accounts {
		email := normalizeEmail(a.Email)
		if _, exists := credentials[email]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateAccount, email)
		}

		c := credential{account: Account{Email: email, Role: a.Role}}
		if a.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), cost)
			if err != nil {
				return nil, fmt.Errorf("hashing password for %q: %w", email, err)
			}
			c.hash = hash
		}
		credentials[email] = c
	}

	return &Service{credentials: credentials, logger: logger}, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*Account, error) {
	c, ok := s.credentials[normalizeEmail(email)]
	if !ok {
		s.logger.Info(ctx, "login failed", "email", email, "reason", "unknown account")
		return nil, ErrInvalidCredentials
	}

	if c.hash != nil {
		if err := bcrypt.CompareHashAndPassword(c.hash, []byte(password)); err != nil {
			s.logger.Info(ctx, "login failed", "email", c.account.Email, "reason", "password mismatch")
			return nil, ErrInvalidCredentials
		}
	}

	account := c.account
	s.logger.Debug(ctx, "login succeeded", "email", account.Email, "role", account.Role)
	return &account, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
