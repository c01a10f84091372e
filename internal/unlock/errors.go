package unlock

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-doc-vault/models"
)

// Sentinel errors returned by the unlock keeper. Callers should use
// [errors.Is] (and [errors.As] for *LockoutError) to match against them.
var (
	// ErrUnknownSection is returned when a caller names a section that does
	// not exist.
	ErrUnknownSection = errors.New("unknown section")

	// ErrNotConfigured is returned when a section has no passphrase
	// established yet; the caller should route the user to first-time setup.
	ErrNotConfigured = errors.New("section passphrase is not configured")

	// ErrLocked is returned when an operation requires the section to be
	// unlocked and it is not.
	ErrLocked = errors.New("section is locked")

	// ErrPassphraseTooShort is returned by SetPassphrase when the supplied
	// passphrase does not meet the minimum length.
	ErrPassphraseTooShort = errors.New("passphrase is too short")
)

// LockoutError reports that unlock attempts for a section are rejected until
// the lockout window ends. The attempt is refused outright; the supplied
// passphrase is never compared while the lockout is active.
type LockoutError struct {
	// Section is the locked-out section.
	Section models.Section

	// Remaining is how long the lockout still lasts at the time of the call.
	Remaining time.Duration
}

func (e *LockoutError) Error() string {
	return fmt.Sprintf("section %q is locked out for another %s", e.Section, e.Remaining.Round(time.Second))
}
