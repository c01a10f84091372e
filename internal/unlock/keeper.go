// Package unlock implements the per-section unlock state machine: passphrase
// verification, failed-attempt counting, timed lockout, and idle re-locking.
//
// Unlocking a section is a local gate over a locally held reference
// passphrase; it involves no network round trip and is distinct from per-item
// decryption, which separately feeds the same passphrase into the KDF.
package unlock

import (
	"context"
	"crypto/subtle"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/models"
)

// MinPassphraseLength is the minimum accepted section passphrase length.
const MinPassphraseLength = 6

// sectionState is the in-memory unlock state of one section. A zero
// lockoutUntil means no lockout is active.
type sectionState struct {
	passphrase     string
	unlocked       bool
	failedAttempts int
	lockoutUntil   time.Time
	lastActivity   time.Time
}

// Keeper owns the unlock state of every section. All state transitions go
// through it, and every durable change (passphrase, counters, lockout) is
// written to the profile repository before the transition is reported back to
// the caller, so a crash right after a lockout cannot lose the lockout.
//
// The keeper is safe for concurrent use; a single mutex serialises attempts,
// which also guarantees attempts are evaluated strictly in submission order.
type Keeper struct {
	mu       sync.Mutex
	profiles store.SectionProfileRepository
	log      *logger.Logger

	maxAttempts     int
	lockoutDuration time.Duration
	sessionTimeout  time.Duration

	// now is the clock; swapped in tests.
	now func() time.Time

	sections map[models.Section]*sectionState
}

// NewKeeper constructs a Keeper with every section initially locked, loading
// persisted passphrases, attempt counters, and lockout timestamps from
// profiles. A lockout whose end-timestamp has already passed is not discarded
// eagerly; expiry is evaluated lazily on the next attempt.
func NewKeeper(ctx context.Context, profiles store.SectionProfileRepository, cfg config.ClientUnlock, log *logger.Logger) (*Keeper, error) {
	k := &Keeper{
		profiles:        profiles,
		log:             log,
		maxAttempts:     cfg.MaxAttempts,
		lockoutDuration: cfg.LockoutDuration,
		sessionTimeout:  cfg.SessionTimeout,
		now:             time.Now,
		sections:        make(map[models.Section]*sectionState, len(models.Sections)),
	}

	for _, section := range models.Sections {
		k.sections[section] = &sectionState{}
	}

	stored, err := profiles.GetSectionProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("load section profiles: %w", err)
	}
	for _, profile := range stored {
		st, ok := k.sections[profile.Section]
		if !ok {
			log.Warn().Str("section", string(profile.Section)).Msg("ignoring profile for unknown section")
			continue
		}
		st.passphrase = profile.Passphrase
		st.failedAttempts = profile.FailedAttempts
		if profile.LockoutUntil != nil {
			st.lockoutUntil = *profile.LockoutUntil
		}
	}

	return k, nil
}

// AttemptUnlock evaluates one unlock attempt for section. It returns whether
// the section is now unlocked.
//
// While a lockout is active the attempt is rejected with *LockoutError before
// any comparison happens and without consuming an attempt slot. A lockout
// whose window has passed is cleared first (resetting the counter), then the
// attempt proceeds normally. The passphrase comparison is constant-time.
func (k *Keeper) AttemptUnlock(ctx context.Context, section models.Section, passphrase string) (bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	st, err := k.state(section)
	if err != nil {
		return false, err
	}
	if st.passphrase == "" {
		return false, ErrNotConfigured
	}

	now := k.now()

	if !st.lockoutUntil.IsZero() {
		if now.Before(st.lockoutUntil) {
			return false, &LockoutError{Section: section, Remaining: st.lockoutUntil.Sub(now)}
		}

		// Lockout expired: back to Locked with a clean slate.
		st.lockoutUntil = time.Time{}
		st.failedAttempts = 0
		if err := k.persistLocked(ctx, section, st); err != nil {
			return false, err
		}
	}

	if subtle.ConstantTimeCompare([]byte(passphrase), []byte(st.passphrase)) == 1 {
		st.unlocked = true
		st.failedAttempts = 0
		st.lockoutUntil = time.Time{}
		st.lastActivity = now

		if err := k.persistLocked(ctx, section, st); err != nil {
			// The gate is open in memory; losing the counter reset is
			// recoverable, so log instead of failing the unlock.
			k.log.Warn().Err(err).Str("section", string(section)).Msg("failed to persist unlock state")
		}

		k.log.Info().Str("section", string(section)).Msg("section unlocked")
		return true, nil
	}

	st.failedAttempts++
	if st.failedAttempts >= k.maxAttempts {
		st.lockoutUntil = now.Add(k.lockoutDuration)
		st.unlocked = false

		// The lockout must survive a crash or restart, so it is written
		// down before control returns to the caller.
		if err := k.persistLocked(ctx, section, st); err != nil {
			return false, fmt.Errorf("persist lockout: %w", err)
		}

		k.log.Warn().
			Str("section", string(section)).
			Int("failed_attempts", st.failedAttempts).
			Time("lockout_until", st.lockoutUntil).
			Msg("section locked out after repeated failed attempts")
		return false, nil
	}

	if err := k.persistLocked(ctx, section, st); err != nil {
		return false, fmt.Errorf("persist failed attempt: %w", err)
	}

	k.log.Debug().
		Str("section", string(section)).
		Int("failed_attempts", st.failedAttempts).
		Msg("wrong section passphrase")
	return false, nil
}

// Lock transitions section to Locked. Idempotent.
func (k *Keeper) Lock(section models.Section) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	st, err := k.state(section)
	if err != nil {
		return err
	}
	st.unlocked = false
	return nil
}

// LockAll locks every section synchronously. Wired to the visibility-hidden
// signal so a backgrounded client never shows decrypted content on return.
func (k *Keeper) LockAll() {
	k.mu.Lock()
	defer k.mu.Unlock()

	for _, st := range k.sections {
		st.unlocked = false
	}
}

// IsUnlocked reports whether section is currently unlocked. Unknown sections
// report false.
func (k *Keeper) IsUnlocked(section models.Section) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	st, err := k.state(section)
	if err != nil {
		return false
	}
	return st.unlocked
}

// RemainingLockout returns how long the active lockout for section still
// lasts, or zero when no lockout is active (or it has already expired).
func (k *Keeper) RemainingLockout(section models.Section) time.Duration {
	k.mu.Lock()
	defer k.mu.Unlock()

	st, err := k.state(section)
	if err != nil || st.lockoutUntil.IsZero() {
		return 0
	}

	remaining := st.lockoutUntil.Sub(k.now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// FirstTimeSetup reports whether any section still has no passphrase
// configured. While true, the application stays in setup mode and normal
// navigation is blocked.
func (k *Keeper) FirstTimeSetup() bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	for _, st := range k.sections {
		if st.passphrase == "" {
			return true
		}
	}
	return false
}

// SetPassphrase establishes (or replaces) the reference passphrase for
// section, clearing any failed attempts and lockout. The section stays
// locked; the user unlocks it explicitly afterwards.
func (k *Keeper) SetPassphrase(ctx context.Context, section models.Section, passphrase string) error {
	if len(passphrase) < MinPassphraseLength {
		return fmt.Errorf("%w: need at least %d characters", ErrPassphraseTooShort, MinPassphraseLength)
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	st, err := k.state(section)
	if err != nil {
		return err
	}

	st.passphrase = passphrase
	st.failedAttempts = 0
	st.lockoutUntil = time.Time{}
	st.unlocked = false

	if err := k.persistLocked(ctx, section, st); err != nil {
		return fmt.Errorf("persist passphrase: %w", err)
	}

	k.log.Info().Str("section", string(section)).Msg("section passphrase set")
	return nil
}

// ResetPassphrases replaces both section passphrases at once and clears
// lockout state for both. This is the forgot-password escape hatch, reached
// only after the reset side channel has proven control of the account email.
func (k *Keeper) ResetPassphrases(ctx context.Context, documentsPassphrase, vaultPassphrase string) error {
	if err := k.SetPassphrase(ctx, models.SectionDocuments, documentsPassphrase); err != nil {
		return err
	}
	return k.SetPassphrase(ctx, models.SectionVault, vaultPassphrase)
}

// ClearAll erases all passphrase material from memory and from the profile
// store and resets every section to the initial locked, unconfigured state.
// Called on logout and account deletion.
func (k *Keeper) ClearAll(ctx context.Context) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := k.profiles.DeleteSectionProfiles(ctx); err != nil {
		return fmt.Errorf("clear section profiles: %w", err)
	}

	for _, st := range k.sections {
		*st = sectionState{}
	}

	k.log.Info().Msg("all section passphrases cleared")
	return nil
}

// SectionPassphrase hands the section passphrase to the caller for use as
// KDF input, but only while the section is unlocked. Reading it counts as
// activity for the idle timeout.
func (k *Keeper) SectionPassphrase(section models.Section) (string, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	st, err := k.state(section)
	if err != nil {
		return "", err
	}
	if st.passphrase == "" {
		return "", ErrNotConfigured
	}
	if !st.unlocked {
		return "", ErrLocked
	}

	st.lastActivity = k.now()
	return st.passphrase, nil
}

// MarkActivity refreshes the idle-timeout clock for section. No-op while the
// section is locked.
func (k *Keeper) MarkActivity(section models.Section) {
	k.mu.Lock()
	defer k.mu.Unlock()

	st, err := k.state(section)
	if err != nil || !st.unlocked {
		return
	}
	st.lastActivity = k.now()
}

// EnforceIdleTimeout locks every section that has been unlocked without
// activity for at least the session timeout. Called periodically by the
// auto-lock worker; the lockout timer itself needs no background task since
// it is evaluated lazily on each attempt.
func (k *Keeper) EnforceIdleTimeout() {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	for section, st := range k.sections {
		if st.unlocked && now.Sub(st.lastActivity) >= k.sessionTimeout {
			st.unlocked = false
			k.log.Info().Str("section", string(section)).Msg("section re-locked after inactivity")
		}
	}
}

// state returns the tracked state for section. Callers must hold k.mu.
func (k *Keeper) state(section models.Section) (*sectionState, error) {
	st, ok := k.sections[section]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	return st, nil
}

// persistLocked writes the durable slice of st to the profile store.
// Callers must hold k.mu.
func (k *Keeper) persistLocked(ctx context.Context, section models.Section, st *sectionState) error {
	profile := models.SectionProfile{
		Section:        section,
		Passphrase:     st.passphrase,
		FailedAttempts: st.failedAttempts,
		UpdatedAt:      k.now(),
	}
	if !st.lockoutUntil.IsZero() {
		until := st.lockoutUntil
		profile.LockoutUntil = &until
	}

	return k.profiles.SaveSectionProfile(ctx, profile)
}
