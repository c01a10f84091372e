package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"sync"
	"time"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/validators"
)

const (
	// otpTTL is how long a one-time code stays redeemable.
	otpTTL = 10 * time.Minute

	// resetTokenTTL is how long a confirmed reset may take before the token
	// expires.
	resetTokenTTL = 30 * time.Minute

	otpDigits = 6
)

type otpEntry struct {
	code      string
	expiresAt time.Time
}

type resetEntry struct {
	email     string
	expiresAt time.Time
}

type resetService struct {
	sender EmailSender
	gate   SectionGate
	logger *logger.Logger

	// now is the clock; swapped in tests.
	now func() time.Time

	mu     sync.Mutex
	otps   map[string]otpEntry   // keyed by email
	resets map[string]resetEntry // keyed by reset token
}

// NewResetService constructs the passphrase-reset service. Pending codes and
// tokens live in memory only; a restart simply voids them, which is the safe
// direction for an escape hatch.
func NewResetService(sender EmailSender, gate SectionGate, logger *logger.Logger) ResetService {
	return &resetService{
		sender: sender,
		gate:   gate,
		logger: logger,
		now:    time.Now,
		otps:   make(map[string]otpEntry),
		resets: make(map[string]resetEntry),
	}
}

func (s *resetService) RequestReset(ctx context.Context, email string) error {
	if !validators.ValidEmail(email) {
		return validators.ErrInvalidEmail
	}

	code, err := generateOTP()
	if err != nil {
		return fmt.Errorf("generate one-time code: %w", err)
	}

	s.mu.Lock()
	// A fresh request supersedes any pending code for the same address.
	s.otps[email] = otpEntry{code: code, expiresAt: s.now().Add(otpTTL)}
	s.mu.Unlock()

	if err := s.sender.SendOTP(ctx, email, code); err != nil {
		s.mu.Lock()
		delete(s.otps, email)
		s.mu.Unlock()
		return fmt.Errorf("send one-time code: %w", err)
	}

	s.logger.Info().Str("email", email).Msg("passphrase reset code sent")
	return nil
}

func (s *resetService) ConfirmOTP(_ context.Context, email, code string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.otps[email]
	if !ok {
		return "", ErrInvalidOTP
	}
	if s.now().After(entry.expiresAt) {
		delete(s.otps, email)
		return "", ErrOTPExpired
	}
	if subtle.ConstantTimeCompare([]byte(code), []byte(entry.code)) != 1 {
		return "", ErrInvalidOTP
	}

	// The code is single-use: consumed here whether or not the reset is
	// ever completed.
	delete(s.otps, email)

	token, err := generateResetToken()
	if err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	s.resets[token] = resetEntry{email: email, expiresAt: s.now().Add(resetTokenTTL)}

	s.logger.Info().Str("email", email).Msg("one-time code confirmed")
	return token, nil
}

func (s *resetService) CompleteReset(ctx context.Context, resetToken, documentsPassphrase, vaultPassphrase string) error {
	s.mu.Lock()
	entry, ok := s.resets[resetToken]
	if ok {
		delete(s.resets, resetToken)
	}
	s.mu.Unlock()

	if !ok || s.now().After(entry.expiresAt) {
		return ErrInvalidResetToken
	}

	if err := s.gate.ResetPassphrases(ctx, documentsPassphrase, vaultPassphrase); err != nil {
		return fmt.Errorf("replace section passphrases: %w", err)
	}

	s.logger.Info().Str("email", entry.email).Msg("section passphrases reset")
	return nil
}

func (s *resetService) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0

	for email, entry := range s.otps {
		if now.After(entry.expiresAt) {
			delete(s.otps, email)
			removed++
		}
	}
	for token, entry := range s.resets {
		if now.After(entry.expiresAt) {
			delete(s.resets, token)
			removed++
		}
	}

	return removed
}

// generateOTP returns a uniformly random 6-digit code with leading zeros
// preserved.
func generateOTP() (string, error) {
	bound := big.NewInt(1)
	for i := 0; i < otpDigits; i++ {
		bound.Mul(bound, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, bound)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", otpDigits, n), nil
}

func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// logEmailSender writes the code to the log instead of delivering mail.
// Used in development builds where no mail relay is configured.
type logEmailSender struct {
	logger *logger.Logger
}

// NewLogEmailSender returns an EmailSender that logs instead of sending.
func NewLogEmailSender(logger *logger.Logger) EmailSender {
	return &logEmailSender{logger: logger}
}

func (l *logEmailSender) SendOTP(_ context.Context, email, code string) error {
	l.logger.Info().Str("email", email).Str("code", code).Msg("one-time code issued")
	return nil
}
