package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-doc-vault/internal/adapter"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
	"github.com/MKhiriev/go-doc-vault/internal/validators"
	"github.com/MKhiriev/go-doc-vault/models"
)

// tokenExpiryLeeway treats a session as expired slightly before the token's
// exp claim, so an in-flight request never departs with a token that will be
// rejected on arrival.
const tokenExpiryLeeway = 30 * time.Second

type sessionService struct {
	remote    adapter.RemoteStore
	gate      SectionGate
	validator validators.Validator
	logger    *logger.Logger

	mu      sync.Mutex
	account models.Account
	token   models.Token
	live    bool
}

// NewSessionService constructs the session lifecycle service.
func NewSessionService(remote adapter.RemoteStore, gate SectionGate, validator validators.Validator, logger *logger.Logger) SessionService {
	return &sessionService{
		remote:    remote,
		gate:      gate,
		validator: validator,
		logger:    logger,
	}
}

func (s *sessionService) SignUp(ctx context.Context, req models.RegisterRequest) (models.Account, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Account{}, fmt.Errorf("validate registration: %w", err)
	}

	account, err := s.remote.Register(ctx, req)
	if err != nil {
		return models.Account{}, fmt.Errorf("register: %w", err)
	}

	if err := s.establishSession(account); err != nil {
		return models.Account{}, err
	}

	s.logger.Info().Str("account_id", account.ID).Msg("account registered")
	return account, nil
}

func (s *sessionService) SignIn(ctx context.Context, req models.LoginRequest) (models.Account, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Account{}, fmt.Errorf("validate credentials: %w", err)
	}

	account, err := s.remote.Login(ctx, req)
	if err != nil {
		return models.Account{}, fmt.Errorf("login: %w", err)
	}

	if err := s.establishSession(account); err != nil {
		return models.Account{}, err
	}

	s.logger.Info().Str("account_id", account.ID).Msg("signed in")
	return account, nil
}

// establishSession parses the bearer token the adapter just stored and caches
// the session state.
func (s *sessionService) establishSession(account models.Account) error {
	token, err := utils.ParseSessionToken(s.remote.Token())
	if err != nil {
		return fmt.Errorf("parse session token: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.account = account
	s.token = token
	s.live = true
	return nil
}

func (s *sessionService) Account() (models.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.live {
		return models.Account{}, false
	}
	return s.account, true
}

func (s *sessionService) WithSession(ctx context.Context) (context.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.live {
		return ctx, ErrNotSignedIn
	}
	return utils.ContextWithOwnerID(ctx, s.account.ID), nil
}

func (s *sessionService) SessionExpired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.live {
		return true
	}
	return utils.TokenExpired(s.token, tokenExpiryLeeway)
}

func (s *sessionService) HandleVisibilityHidden() {
	s.gate.LockAll()
	s.logger.Debug().Msg("window hidden, all sections locked")
}

func (s *sessionService) Logout(ctx context.Context) error {
	// Passphrase material goes first: even if dropping the token failed,
	// nothing decryptable would remain behind.
	if err := s.gate.ClearAll(ctx); err != nil {
		return fmt.Errorf("clear section state on logout: %w", err)
	}

	s.remote.SetToken("")

	s.mu.Lock()
	s.account = models.Account{}
	s.token = models.Token{}
	s.live = false
	s.mu.Unlock()

	s.logger.Info().Msg("logged out")
	return nil
}

func (s *sessionService) DeleteAccount(ctx context.Context) error {
	if err := s.remote.DeleteAccount(ctx); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	if err := s.Logout(ctx); err != nil {
		return err
	}

	s.logger.Info().Msg("account deleted")
	return nil
}
