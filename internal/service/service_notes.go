package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-doc-vault/internal/adapter"
	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
	"github.com/MKhiriev/go-doc-vault/internal/validators"
	"github.com/MKhiriev/go-doc-vault/models"
)

// MinNotePassphraseLength is the minimum accepted per-note passphrase length.
// Notes carry their own passphrase, so the bar is higher than for section
// passphrases: losing it means losing the note body for good.
const MinNotePassphraseLength = 8

type notesService struct {
	remote    adapter.RemoteStore
	envelopes crypto.EnvelopeService
	validator validators.Validator
	ids       *utils.UUIDGenerator
	logger    *logger.Logger
}

// NewNotesService constructs the secure-notes service.
func NewNotesService(remote adapter.RemoteStore, envelopes crypto.EnvelopeService, validator validators.Validator, logger *logger.Logger) NotesService {
	return &notesService{
		remote:    remote,
		envelopes: envelopes,
		validator: validator,
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

func (s *notesService) Create(ctx context.Context, title, body, passphrase string) (models.Note, error) {
	ownerID, ok := utils.GetOwnerIDFromContext(ctx)
	if !ok {
		return models.Note{}, ErrNotSignedIn
	}
	if len(passphrase) < MinNotePassphraseLength {
		return models.Note{}, fmt.Errorf("%w: need at least %d characters", ErrNotePassphraseTooShort, MinNotePassphraseLength)
	}

	envelope, err := s.envelopes.Seal([]byte(body), passphrase)
	if err != nil {
		return models.Note{}, fmt.Errorf("seal note body: %w", err)
	}

	note := models.Note{
		ID:        s.ids.Generate(),
		OwnerID:   ownerID,
		Title:     title,
		Envelope:  envelope,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.validator.Validate(ctx, note); err != nil {
		return models.Note{}, fmt.Errorf("validate note: %w", err)
	}

	if err := s.remote.UploadNote(ctx, note); err != nil {
		return models.Note{}, fmt.Errorf("upload note: %w", err)
	}

	s.logger.Info().Str("note_id", note.ID).Msg("note created")
	return note, nil
}

func (s *notesService) List(ctx context.Context) ([]models.Note, error) {
	notes, err := s.remote.ListNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (s *notesService) Read(_ context.Context, note models.Note, passphrase string) (string, error) {
	body, err := s.envelopes.Open(note.Envelope, passphrase)
	if err != nil {
		// crypto.ErrDecryptionFailed passes through unchanged; the caller
		// must not learn which part of the envelope was wrong.
		return "", err
	}
	return string(body), nil
}

func (s *notesService) Delete(ctx context.Context, noteID string) error {
	if err := s.remote.DeleteNote(ctx, noteID); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	s.logger.Info().Str("note_id", noteID).Msg("note deleted")
	return nil
}
