package unlock

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/models"
)

// memProfiles is an in-memory SectionProfileRepository recording every save,
// so tests can assert what was persisted and when.
type memProfiles struct {
	mu       sync.Mutex
	rows     map[models.Section]models.SectionProfile
	saves    int
	failNext error
}

func newMemProfiles() *memProfiles {
	return &memProfiles{rows: make(map[models.Section]models.SectionProfile)}
}

func (m *memProfiles) GetSectionProfiles(_ context.Context) ([]models.SectionProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	profiles := make([]models.SectionProfile, 0, len(m.rows))
	for _, p := range m.rows {
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func (m *memProfiles) SaveSectionProfile(_ context.Context, profile models.SectionProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return err
	}
	m.rows[profile.Section] = profile
	m.saves++
	return nil
}

func (m *memProfiles) DeleteSectionProfiles(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rows = make(map[models.Section]models.SectionProfile)
	return nil
}

func (m *memProfiles) get(section models.Section) (models.SectionProfile, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.rows[section]
	return p, ok
}

var testUnlockConfig = config.ClientUnlock{
	MaxAttempts:     3,
	LockoutDuration: 2 * time.Hour,
	SessionTimeout:  30 * time.Minute,
}

// newTestKeeper returns a keeper over fresh in-memory storage, plus a
// settable clock starting at a fixed instant.
func newTestKeeper(t *testing.T) (*Keeper, *memProfiles, *time.Time) {
	t.Helper()

	profiles := newMemProfiles()
	k, err := NewKeeper(context.Background(), profiles, testUnlockConfig, logger.Nop())
	require.NoError(t, err)

	now := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)
	k.now = func() time.Time { return now }
	return k, profiles, &now
}

func configure(t *testing.T, k *Keeper, section models.Section, passphrase string) {
	t.Helper()
	require.NoError(t, k.SetPassphrase(context.Background(), section, passphrase))
}

func TestNewKeeper_StartsLockedAndUnconfigured(t *testing.T) {
	k, _, _ := newTestKeeper(t)

	assert.True(t, k.FirstTimeSetup())
	for _, section := range models.Sections {
		assert.False(t, k.IsUnlocked(section))
	}
}

func TestAttemptUnlock_NotConfigured(t *testing.T) {
	k, _, _ := newTestKeeper(t)

	ok, err := k.AttemptUnlock(context.Background(), models.SectionDocuments, "whatever")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestAttemptUnlock_UnknownSection(t *testing.T) {
	k, _, _ := newTestKeeper(t)

	ok, err := k.AttemptUnlock(context.Background(), models.Section("photos"), "secret")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestAttemptUnlock_CorrectPassphrase(t *testing.T) {
	k, _, _ := newTestKeeper(t)
	configure(t, k, models.SectionDocuments, "secret-docs")

	ok, err := k.AttemptUnlock(context.Background(), models.SectionDocuments, "secret-docs")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, k.IsUnlocked(models.SectionDocuments))

	// The other section is untouched.
	assert.False(t, k.IsUnlocked(models.SectionVault))
}

func TestAttemptUnlock_WrongPassphraseCountsAttempt(t *testing.T) {
	k, profiles, _ := newTestKeeper(t)
	configure(t, k, models.SectionVault, "vault-pass")

	ok, err := k.AttemptUnlock(context.Background(), models.SectionVault, "nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, k.IsUnlocked(models.SectionVault))

	stored, found := profiles.get(models.SectionVault)
	require.True(t, found)
	assert.Equal(t, 1, stored.FailedAttempts)
	assert.Nil(t, stored.LockoutUntil)
}

func TestAttemptUnlock_SuccessResetsCounter(t *testing.T) {
	k, profiles, _ := newTestKeeper(t)
	configure(t, k, models.SectionVault, "vault-pass")

	for i := 0; i < 2; i++ {
		_, err := k.AttemptUnlock(context.Background(), models.SectionVault, "nope")
		require.NoError(t, err)
	}

	ok, err := k.AttemptUnlock(context.Background(), models.SectionVault, "vault-pass")
	require.NoError(t, err)
	assert.True(t, ok)

	stored, found := profiles.get(models.SectionVault)
	require.True(t, found)
	assert.Equal(t, 0, stored.FailedAttempts)

	// The counter starts over after a success: two more wrong attempts do not
	// trigger a lockout.
	k.LockAll()
	for i := 0; i < 2; i++ {
		_, err := k.AttemptUnlock(context.Background(), models.SectionVault, "nope")
		require.NoError(t, err)
	}
	assert.Zero(t, k.RemainingLockout(models.SectionVault))
}

func TestAttemptUnlock_ThirdFailureTriggersLockout(t *testing.T) {
	k, profiles, now := newTestKeeper(t)
	configure(t, k, models.SectionDocuments, "secret-docs")

	for i := 0; i < 3; i++ {
		ok, err := k.AttemptUnlock(context.Background(), models.SectionDocuments, "nope")
		require.NoError(t, err)
		assert.False(t, ok)
	}

	assert.Equal(t, 2*time.Hour, k.RemainingLockout(models.SectionDocuments))

	// The lockout end-timestamp was persisted before the attempt returned.
	stored, found := profiles.get(models.SectionDocuments)
	require.True(t, found)
	require.NotNil(t, stored.LockoutUntil)
	assert.Equal(t, now.Add(2*time.Hour), *stored.LockoutUntil)
	assert.Equal(t, 3, stored.FailedAttempts)
}

func TestAttemptUnlock_DuringLockoutRejectedWithoutComparison(t *testing.T) {
	k, _, _ := newTestKeeper(t)
	configure(t, k, models.SectionDocuments, "secret-docs")

	for i := 0; i < 3; i++ {
		_, err := k.AttemptUnlock(context.Background(), models.SectionDocuments, "nope")
		require.NoError(t, err)
	}

	// Even the correct passphrase is refused while locked out.
	ok, err := k.AttemptUnlock(context.Background(), models.SectionDocuments, "secret-docs")
	assert.False(t, ok)

	var lockout *LockoutError
	require.ErrorAs(t, err, &lockout)
	assert.Equal(t, models.SectionDocuments, lockout.Section)
	assert.Equal(t, 2*time.Hour, lockout.Remaining)
}

func TestAttemptUnlock_LockoutExpiresLazily(t *testing.T) {
	k, profiles, now := newTestKeeper(t)
	configure(t, k, models.SectionDocuments, "secret-docs")

	for i := 0; i < 3; i++ {
		_, err := k.AttemptUnlock(context.Background(), models.SectionDocuments, "nope")
		require.NoError(t, err)
	}

	// One nanosecond before the boundary the lockout still holds.
	*now = now.Add(2*time.Hour - time.Nanosecond)
	_, err := k.AttemptUnlock(context.Background(), models.SectionDocuments, "secret-docs")
	var lockout *LockoutError
	require.ErrorAs(t, err, &lockout)

	// At the boundary the lockout is cleared and the attempt proceeds.
	*now = now.Add(time.Nanosecond)
	ok, err := k.AttemptUnlock(context.Background(), models.SectionDocuments, "secret-docs")
	require.NoError(t, err)
	assert.True(t, ok)

	stored, found := profiles.get(models.SectionDocuments)
	require.True(t, found)
	assert.Nil(t, stored.LockoutUntil)
	assert.Equal(t, 0, stored.FailedAttempts)
}

func TestAttemptUnlock_CounterResetAfterExpiredLockout(t *testing.T) {
	k, _, now := newTestKeeper(t)
	configure(t, k, models.SectionVault, "vault-pass")

	for i := 0; i < 3; i++ {
		_, err := k.AttemptUnlock(context.Background(), models.SectionVault, "nope")
		require.NoError(t, err)
	}

	*now = now.Add(3 * time.Hour)

	// The slate is clean: two wrong attempts after expiry do not re-lock.
	for i := 0; i < 2; i++ {
		ok, err := k.AttemptUnlock(context.Background(), models.SectionVault, "nope")
		require.NoError(t, err)
		assert.False(t, ok)
	}
	assert.Zero(t, k.RemainingLockout(models.SectionVault))
}

func TestAttemptUnlock_LockoutPersistenceFailureSurfaces(t *testing.T) {
	k, profiles, _ := newTestKeeper(t)
	configure(t, k, models.SectionVault, "vault-pass")

	for i := 0; i < 2; i++ {
		_, err := k.AttemptUnlock(context.Background(), models.SectionVault, "nope")
		require.NoError(t, err)
	}

	profiles.failNext = errors.New("disk full")
	_, err := k.AttemptUnlock(context.Background(), models.SectionVault, "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persist lockout")
}

func TestLockoutSurvivesRestart(t *testing.T) {
	k, profiles, now := newTestKeeper(t)
	configure(t, k, models.SectionDocuments, "secret-docs")

	for i := 0; i < 3; i++ {
		_, err := k.AttemptUnlock(context.Background(), models.SectionDocuments, "nope")
		require.NoError(t, err)
	}

	// A fresh keeper over the same storage still enforces the lockout.
	restarted, err := NewKeeper(context.Background(), profiles, testUnlockConfig, logger.Nop())
	require.NoError(t, err)
	restarted.now = func() time.Time { return *now }

	_, err = restarted.AttemptUnlock(context.Background(), models.SectionDocuments, "secret-docs")
	var lockout *LockoutError
	require.ErrorAs(t, err, &lockout)
	assert.Equal(t, 2*time.Hour, lockout.Remaining)
}

func TestLockAndLockAll(t *testing.T) {
	k, _, _ := newTestKeeper(t)
	configure(t, k, models.SectionDocuments, "secret-docs")
	configure(t, k, models.SectionVault, "vault-pass")

	_, err := k.AttemptUnlock(context.Background(), models.SectionDocuments, "secret-docs")
	require.NoError(t, err)
	_, err = k.AttemptUnlock(context.Background(), models.SectionVault, "vault-pass")
	require.NoError(t, err)

	require.NoError(t, k.Lock(models.SectionDocuments))
	assert.False(t, k.IsUnlocked(models.SectionDocuments))
	assert.True(t, k.IsUnlocked(models.SectionVault))

	k.LockAll()
	assert.False(t, k.IsUnlocked(models.SectionVault))

	assert.ErrorIs(t, k.Lock(models.Section("photos")), ErrUnknownSection)
}

func TestSetPassphrase_TooShort(t *testing.T) {
	k, _, _ := newTestKeeper(t)

	err := k.SetPassphrase(context.Background(), models.SectionVault, "12345")
	assert.ErrorIs(t, err, ErrPassphraseTooShort)
}

func TestSetPassphrase_ClearsLockoutAndStaysLocked(t *testing.T) {
	k, _, _ := newTestKeeper(t)
	configure(t, k, models.SectionVault, "vault-pass")

	for i := 0; i < 3; i++ {
		_, err := k.AttemptUnlock(context.Background(), models.SectionVault, "nope")
		require.NoError(t, err)
	}
	require.NotZero(t, k.RemainingLockout(models.SectionVault))

	require.NoError(t, k.SetPassphrase(context.Background(), models.SectionVault, "new-vault-pass"))
	assert.Zero(t, k.RemainingLockout(models.SectionVault))
	assert.False(t, k.IsUnlocked(models.SectionVault))

	ok, err := k.AttemptUnlock(context.Background(), models.SectionVault, "new-vault-pass")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFirstTimeSetup(t *testing.T) {
	k, _, _ := newTestKeeper(t)

	assert.True(t, k.FirstTimeSetup())

	configure(t, k, models.SectionDocuments, "secret-docs")
	assert.True(t, k.FirstTimeSetup(), "setup mode holds until every section is configured")

	configure(t, k, models.SectionVault, "vault-pass")
	assert.False(t, k.FirstTimeSetup())
}

func TestResetPassphrases(t *testing.T) {
	k, _, _ := newTestKeeper(t)
	configure(t, k, models.SectionDocuments, "old-docs-pass")
	configure(t, k, models.SectionVault, "old-vault-pass")

	for i := 0; i < 3; i++ {
		_, err := k.AttemptUnlock(context.Background(), models.SectionDocuments, "nope")
		require.NoError(t, err)
	}

	require.NoError(t, k.ResetPassphrases(context.Background(), "new-docs-pass", "new-vault-pass"))
	assert.Zero(t, k.RemainingLockout(models.SectionDocuments))

	ok, err := k.AttemptUnlock(context.Background(), models.SectionDocuments, "new-docs-pass")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = k.AttemptUnlock(context.Background(), models.SectionVault, "new-vault-pass")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestClearAll(t *testing.T) {
	k, profiles, _ := newTestKeeper(t)
	configure(t, k, models.SectionDocuments, "secret-docs")
	configure(t, k, models.SectionVault, "vault-pass")

	_, err := k.AttemptUnlock(context.Background(), models.SectionDocuments, "secret-docs")
	require.NoError(t, err)

	require.NoError(t, k.ClearAll(context.Background()))
	assert.True(t, k.FirstTimeSetup())
	assert.False(t, k.IsUnlocked(models.SectionDocuments))

	_, found := profiles.get(models.SectionDocuments)
	assert.False(t, found)

	_, err = k.AttemptUnlock(context.Background(), models.SectionDocuments, "secret-docs")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSectionPassphrase(t *testing.T) {
	k, _, _ := newTestKeeper(t)

	_, err := k.SectionPassphrase(models.SectionVault)
	assert.ErrorIs(t, err, ErrNotConfigured)

	configure(t, k, models.SectionVault, "vault-pass")
	_, err = k.SectionPassphrase(models.SectionVault)
	assert.ErrorIs(t, err, ErrLocked)

	_, err = k.AttemptUnlock(context.Background(), models.SectionVault, "vault-pass")
	require.NoError(t, err)

	passphrase, err := k.SectionPassphrase(models.SectionVault)
	require.NoError(t, err)
	assert.Equal(t, "vault-pass", passphrase)
}

func TestEnforceIdleTimeout(t *testing.T) {
	k, _, now := newTestKeeper(t)
	configure(t, k, models.SectionDocuments, "secret-docs")
	configure(t, k, models.SectionVault, "vault-pass")

	_, err := k.AttemptUnlock(context.Background(), models.SectionDocuments, "secret-docs")
	require.NoError(t, err)
	_, err = k.AttemptUnlock(context.Background(), models.SectionVault, "vault-pass")
	require.NoError(t, err)

	// Activity on documents only.
	*now = now.Add(20 * time.Minute)
	k.MarkActivity(models.SectionDocuments)

	*now = now.Add(15 * time.Minute)
	k.EnforceIdleTimeout()

	assert.True(t, k.IsUnlocked(models.SectionDocuments), "recent activity keeps the section open")
	assert.False(t, k.IsUnlocked(models.SectionVault), "35 idle minutes crosses the 30-minute ceiling")
}

func TestRemainingLockout_ZeroAfterExpiry(t *testing.T) {
	k, _, now := newTestKeeper(t)
	configure(t, k, models.SectionDocuments, "secret-docs")

	for i := 0; i < 3; i++ {
		_, err := k.AttemptUnlock(context.Background(), models.SectionDocuments, "nope")
		require.NoError(t, err)
	}

	*now = now.Add(90 * time.Minute)
	assert.Equal(t, 30*time.Minute, k.RemainingLockout(models.SectionDocuments))

	*now = now.Add(31 * time.Minute)
	assert.Zero(t, k.RemainingLockout(models.SectionDocuments))
}
