package service

import (
	"context"
	"fmt"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/MKhiriev/go-doc-vault/internal/adapter"
	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
	"github.com/MKhiriev/go-doc-vault/internal/validators"
	"github.com/MKhiriev/go-doc-vault/models"
)

type documentsService struct {
	remote    adapter.RemoteStore
	envelopes crypto.EnvelopeService
	gate      SectionGate
	validator validators.Validator
	ids       *utils.UUIDGenerator
	logger    *logger.Logger

	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewDocumentsService constructs the documents service. File content is
// zstd-compressed before sealing: scans and PDFs shrink considerably, and the
// compressed form also avoids giving the server exact plaintext lengths.
func NewDocumentsService(remote adapter.RemoteStore, envelopes crypto.EnvelopeService, gate SectionGate, validator validators.Validator, logger *logger.Logger) (DocumentsService, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(validators.MaxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &documentsService{
		remote:    remote,
		envelopes: envelopes,
		gate:      gate,
		validator: validator,
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
		encoder:   encoder,
		decoder:   decoder,
	}, nil
}

func (s *documentsService) Upload(ctx context.Context, upload models.DocumentUpload) (models.Document, error) {
	ownerID, ok := utils.GetOwnerIDFromContext(ctx)
	if !ok {
		return models.Document{}, ErrNotSignedIn
	}
	if len(upload.Content) == 0 {
		return models.Document{}, ErrEmptyDocument
	}

	passphrase, err := s.gate.SectionPassphrase(models.SectionDocuments)
	if err != nil {
		return models.Document{}, err
	}

	compressed := s.encoder.EncodeAll(upload.Content, nil)

	envelope, err := s.envelopes.Seal(compressed, passphrase)
	if err != nil {
		return models.Document{}, fmt.Errorf("seal document content: %w", err)
	}

	document := models.Document{
		ID:          s.ids.Generate(),
		OwnerID:     ownerID,
		Name:        upload.Name,
		FileName:    upload.FileName,
		Type:        upload.Type,
		CustomLabel: upload.CustomLabel,
		Envelope:    envelope,
		Notes:       upload.Notes,
		ExpiryDate:  upload.ExpiryDate,
		MimeType:    upload.MimeType,
		Size:        int64(len(upload.Content)),
		UploadedAt:  time.Now().UTC(),
	}

	if err := s.validator.Validate(ctx, document); err != nil {
		return models.Document{}, fmt.Errorf("validate document: %w", err)
	}

	if err := s.remote.UploadDocument(ctx, document); err != nil {
		return models.Document{}, fmt.Errorf("upload document: %w", err)
	}

	s.logger.Info().
		Str("document_id", document.ID).
		Str("type", string(document.Type)).
		Int64("size", document.Size).
		Msg("document uploaded")
	return document, nil
}

func (s *documentsService) List(ctx context.Context) ([]models.Document, error) {
	documents, err := s.remote.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return documents, nil
}

func (s *documentsService) Download(ctx context.Context, documentID string) (models.Document, []byte, error) {
	passphrase, err := s.gate.SectionPassphrase(models.SectionDocuments)
	if err != nil {
		return models.Document{}, nil, err
	}

	document, err := s.remote.GetDocument(ctx, documentID)
	if err != nil {
		return models.Document{}, nil, fmt.Errorf("fetch document: %w", err)
	}

	compressed, err := s.envelopes.Open(document.Envelope, passphrase)
	if err != nil {
		return models.Document{}, nil, err
	}

	content, err := s.decoder.DecodeAll(compressed, nil)
	if err != nil {
		return models.Document{}, nil, fmt.Errorf("decompress document content: %w", err)
	}

	s.gate.MarkActivity(models.SectionDocuments)
	return document, content, nil
}

func (s *documentsService) Delete(ctx context.Context, documentID string) error {
	if err := s.remote.DeleteDocument(ctx, documentID); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}

	s.logger.Info().Str("document_id", documentID).Msg("document deleted")
	return nil
}
