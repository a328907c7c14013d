package auth

import (
	"context"
	"errors"
	"io"
	"log"
	"regexp"
	"strings"

	"storefront-api/internal/domain"
	userrepo "storefront-api/internal/repository/user"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when email/password do not
	// match. Unknown email and wrong password are indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccountDeactivated is returned for a matching but inactive account.
	ErrAccountDeactivated = errors.New("account is deactivated")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service handles registration, login and token verification.
type Service struct {
	repo        userrepo.Repository
	tokens      *TokenCodec
	logger      *log.Logger
	passwordMin int
}

func New(repo userrepo.Repository, tokens *TokenCodec, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		repo:        repo,
		tokens:      tokens,
		logger:      logger,
		passwordMin: 8,
	}
}

// RegisterInput captures fields accepted by the register endpoint.
type RegisterInput struct {
	Email       string      `json:"email"`
	Password    string      `json:"password"`
	Role        domain.Role `json:"role"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	PhoneNumber string      `json:"phoneNumber"`
	Address     string      `json:"address"`
}

// Register creates a new account. The password is hashed once here and
// the plaintext is never stored.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || !emailPattern.MatchString(email) {
		return nil, domain.Validationf("invalid email format")
	}
	if len(in.Password) < s.passwordMin {
		return nil, domain.Validationf("password must be at least %d characters long", s.passwordMin)
	}
	role := in.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	if !role.Valid() {
		return nil, domain.Validationf("unknown role %q", string(in.Role))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u, err := s.repo.Create(ctx, domain.User{
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PhoneNumber:  in.PhoneNumber,
		Address:      in.Address,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Printf("auth: registered user id=%s role=%s", u.ID, u.Role)
	return u, nil
}

// IssueToken signs a token for an already-authenticated user. Unlike
// Login it neither checks credentials nor touches lastLoginAt, so it is
// the right call right after Register.
func (s *Service) IssueToken(u *domain.User) (string, error) {
	return s.tokens.Issue(u)
}

// Login validates credentials and returns the user plus a signed token.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !u.IsActive {
		return nil, "", ErrAccountDeactivated
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u)
	if err != nil {
		return nil, "", err
	}

	// Best effort: a failed timestamp write must not fail the login.
	if err := s.repo.TouchLastLogin(ctx, u.ID); err != nil {
		s.logger.Printf("auth: touch last login id=%s error=%v", u.ID, err)
	}
	return u, token, nil
}

// VerifyToken decodes a bearer token into the caller's identity.
func (s *Service) VerifyToken(token string) (*Identity, error) {
	return s.tokens.Verify(token)
}

// GetUser loads the account behind a verified identity.
func (s *Service) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdatePassword replaces the account's password after verifying the
// current one. The new password goes through the same length rule as
// registration.
func (s *Service) UpdatePassword(ctx context.Context, id, current, next string) error {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(current)); err != nil {
		return ErrInvalidCredentials
	}
	if len(next) < s.passwordMin {
		return domain.Validationf("password must be at least %d characters long", s.passwordMin)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, id, string(hashed))
}

// Deactivate clears the account's active flag; the record is kept.
func (s *Service) Deactivate(ctx context.Context, id string) error {
	return s.repo.SetActive(ctx, id, false)
}
