package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/config"
	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/events"
	"github.com/spec-kit/account-service/internal/repository"
)

var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrPhoneTaken         = errors.New("phone number already exists")
	ErrActivationCode     = errors.New("invalid activation code")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotFound    = errors.New("account not found")
	ErrResetToken         = errors.New("invalid or expired reset token")
)

// TokenPair is the session credential set issued at login. Access and refresh
// tokens expire independently and are signed with separate secrets.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// AccountService coordinates registration, activation, login and password
// reset. All state a token needs is carried inside the token itself; the only
// durable entity is the account row.
type AccountService struct {
	accounts   repository.AccountRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	auth       config.AuthConfig
	clientURL  string
}

// AccountDependencies encapsulates collaborator requirements for the service.
type AccountDependencies struct {
	Accounts   repository.AccountRepository
	Dispatcher events.Dispatcher
}

// NewAccountService builds the service.
func NewAccountService(cfg config.Config, logger *zap.Logger, deps AccountDependencies) *AccountService {
	return &AccountService{
		accounts:   deps.Accounts,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		auth:       cfg.Auth,
		clientURL:  cfg.App.ClientURL,
	}
}

// Register checks the unique fields, then folds the hashed registration and a
// fresh activation code into a short-lived signed token. Nothing is persisted;
// the caller holds the token and resubmits it with the user-entered code. The
// code alone goes out by mail.
func (s *AccountService) Register(ctx context.Context, name, email, password string, phone int64) (string, error) {
	if _, err := s.accounts.GetByEmail(ctx, email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return "", err
	}
	if _, err := s.accounts.GetByPhone(ctx, phone); err == nil {
		return "", ErrPhoneTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return "", err
	}

	hash, err := auth.HashPassword(password, s.auth.BcryptCost)
	if err != nil {
		return "", err
	}

	code, err := generateActivationCode()
	if err != nil {
		return "", err
	}

	ticket := domain.ActivationTicket{
		Registration: domain.PendingRegistration{
			Name:         name,
			Email:        email,
			PasswordHash: hash,
			PhoneNumber:  phone,
		},
		Code: code,
	}
	token, err := auth.Sign(ticket, []byte(s.auth.ActivationSecret), s.auth.ActivationTTL())
	if err != nil {
		return "", err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventAccountRegistered,
		Email:     email,
		Timestamp: time.Now().UTC(),
		Payload:   events.AccountRegisteredPayload{Name: name, ActivationCode: code},
	})

	return token, nil
}

// Activate redeems an activation token plus the mailed code into a persisted
// account. The duplicate-email re-check covers the window where the same
// still-valid token is replayed before expiry.
func (s *AccountService) Activate(ctx context.Context, activationToken, activationCode string) (*domain.Account, error) {
	ticket, err := auth.Verify[domain.ActivationTicket](activationToken, []byte(s.auth.ActivationSecret))
	if err != nil {
		return nil, err
	}

	if subtle.ConstantTimeCompare([]byte(ticket.Code), []byte(activationCode)) != 1 {
		return nil, ErrActivationCode
	}

	if _, err := s.accounts.GetByEmail(ctx, ticket.Registration.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	account := &domain.Account{
		Name:         ticket.Registration.Name,
		Email:        ticket.Registration.Email,
		PasswordHash: ticket.Registration.PasswordHash,
		PhoneNumber:  ticket.Registration.PhoneNumber,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventAccountActivated,
		Email:     account.Email,
		Timestamp: time.Now().UTC(),
		Payload:   events.AccountActivatedPayload{AccountID: account.ID, Name: account.Name},
	})

	return account, nil
}

// Login verifies credentials and issues the access/refresh pair. Unknown
// email and wrong password collapse into one failure shape so callers cannot
// enumerate accounts.
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.Account, TokenPair, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, TokenPair{}, err
	}
	if err != nil || !auth.ComparePassword(account.PasswordHash, password) {
		return nil, TokenPair{}, ErrInvalidCredentials
	}

	pair, err := s.issueSession(account)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return account, pair, nil
}

// Logout has nothing server-side to tear down; issued tokens simply age out.
// The transport layer drops the request's principal attachment.
func (s *AccountService) Logout(_ context.Context) error {
	return nil
}

// ForgotPassword signs a snapshot of the account into a short-lived reset
// token and mails the reset link. Delivery failures are logged downstream and
// never surfaced here.
func (s *AccountService) ForgotPassword(ctx context.Context, email string) error {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrAccountNotFound
		}
		return err
	}

	token, err := auth.Sign(domain.ResetTicket{Account: *account}, []byte(s.auth.ForgotPasswordSecret), s.auth.ResetTTL())
	if err != nil {
		return err
	}
	resetURL := fmt.Sprintf("%s/reset-password?verify=%s", s.clientURL, token)

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventPasswordResetRequested,
		Email:     account.Email,
		Timestamp: time.Now().UTC(),
		Payload:   events.PasswordResetRequestedPayload{Name: account.Name, ResetURL: resetURL},
	})

	return nil
}

// ResetPassword rewrites the stored credential for the account named in the
// reset token. The token is accepted on its embedded expiry alone.
// TODO: verify the signature with the forgot-password secret here instead of
// trusting the unverified decode.
func (s *AccountService) ResetPassword(ctx context.Context, resetToken, newPassword string) (*domain.Account, error) {
	ticket, expiry, err := auth.DecodeUnverified[domain.ResetTicket](resetToken)
	if err != nil || expiry.IsZero() || time.Now().After(expiry) {
		return nil, ErrResetToken
	}

	hash, err := auth.HashPassword(newPassword, s.auth.BcryptCost)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.UpdatePassword(ctx, ticket.Account.ID, hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventPasswordReset,
		Email:     account.Email,
		Timestamp: time.Now().UTC(),
		Payload:   events.PasswordResetPayload{AccountID: account.ID},
	})

	return account, nil
}

// ListAccounts returns every account.
func (s *AccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accounts.List(ctx)
}

func (s *AccountService) issueSession(account *domain.Account) (TokenPair, error) {
	identity := domain.IdentityOf(account)

	access, err := auth.Sign(identity, []byte(s.auth.AccessTokenSecret), s.auth.AccessTokenTTL())
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := auth.Sign(identity, []byte(s.auth.RefreshTokenSecret), s.auth.RefreshTokenTTL())
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.auth.AccessTokenTTL().Seconds()),
	}, nil
}

// publish hands the event off without holding up the caller's response; mail
// delivery happens behind it.
func (s *AccountService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	go func() {
		if err := s.dispatcher.Publish(context.WithoutCancel(ctx), event); err != nil {
			s.logger.Warn("publish event", zap.String("event_type", string(event.Type)), zap.Error(err))
		}
	}()
}

// generateActivationCode draws a uniform 4-digit code in [1000,9999].
func generateActivationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+1000), nil
}
