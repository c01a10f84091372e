package validators

import (
	"context"
	"regexp"

	"github.com/MKhiriev/go-doc-vault/models"
)

// Field name constants used to specify which fields should be validated.
// Passed to Validate to restrict validation to a subset of fields.
const (
	FieldRecordID    = "record_id"
	FieldOwnerID     = "owner_id"
	FieldTitle       = "title"
	FieldName        = "name"
	FieldEnvelope    = "envelope"
	FieldType        = "type"
	FieldCustomLabel = "custom_label"
	FieldFileName    = "file_name"
	FieldFileSize    = "file_size"
	FieldMimeType    = "mime_type"
	FieldEmail       = "email"
	FieldPassword    = "password"
)

// MaxDocumentSize is the upload ceiling for a single document file,
// measured against the original (uncompressed) content.
const MaxDocumentSize = 50 << 20 // 50 MB

// MinPasswordLength applies to account passwords at registration.
const MinPasswordLength = 8

// allowedMimeTypes is the exhaustive set of accepted document content types.
var allowedMimeTypes = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/png":       {},
	"image/webp":      {},
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidEmail reports whether s has the shape of an email address. Kept loose
// on purpose: the reset side channel proves actual control of the mailbox.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// RecordValidator implements the Validator interface for every record and
// account-request model: Note, VaultItem, Document, RegisterRequest, and
// LoginRequest. Both value and pointer forms are accepted, and validation can
// be scoped to named fields via the variadic arguments.
type RecordValidator struct {
}

// NewRecordValidator constructs a new RecordValidator
// and returns it as the Validator interface.
func NewRecordValidator() Validator {
	return &RecordValidator{}
}

// Validate dispatches validation to the appropriate type-specific method.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)

	case models.VaultItem:
		return v.validateVaultItem(ctx, value, fields...)
	case *models.VaultItem:
		return v.validateVaultItem(ctx, *value, fields...)

	case models.Document:
		return v.validateDocument(ctx, value, fields...)
	case *models.Document:
		return v.validateDocument(ctx, *value, fields...)

	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateNote(_ context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecordID, FieldOwnerID, FieldTitle, FieldEnvelope}
	}

	for _, f := range fields {
		switch f {
		case FieldRecordID:
			if note.ID == "" {
				return ErrInvalidRecordID
			}
		case FieldOwnerID:
			if note.OwnerID == "" {
				return ErrInvalidOwnerID
			}
		case FieldTitle:
			if note.Title == "" {
				return ErrEmptyTitle
			}
		case FieldEnvelope:
			if note.Envelope.IsZero() {
				return ErrEmptyEnvelope
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateVaultItem(_ context.Context, item models.VaultItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecordID, FieldOwnerID, FieldName, FieldType, FieldEnvelope}
	}

	for _, f := range fields {
		switch f {
		case FieldRecordID:
			if item.ID == "" {
				return ErrInvalidRecordID
			}
		case FieldOwnerID:
			if item.OwnerID == "" {
				return ErrInvalidOwnerID
			}
		case FieldName:
			if item.Name == "" {
				return ErrEmptyName
			}
		case FieldType:
			if !item.Type.Valid() {
				return ErrInvalidItemType
			}
		case FieldEnvelope:
			if item.Envelope.IsZero() {
				return ErrEmptyEnvelope
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateDocument(_ context.Context, document models.Document, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecordID, FieldOwnerID, FieldName, FieldFileName, FieldType, FieldCustomLabel, FieldFileSize, FieldMimeType, FieldEnvelope}
	}

	for _, f := range fields {
		switch f {
		case FieldRecordID:
			if document.ID == "" {
				return ErrInvalidRecordID
			}
		case FieldOwnerID:
			if document.OwnerID == "" {
				return ErrInvalidOwnerID
			}
		case FieldName:
			if document.Name == "" {
				return ErrEmptyName
			}
		case FieldFileName:
			if document.FileName == "" {
				return ErrEmptyFileName
			}
		case FieldType:
			if !document.Type.Valid() {
				return ErrInvalidDocType
			}
		case FieldCustomLabel:
			if document.Type == models.DocumentCustom && document.CustomLabel == "" {
				return ErrMissingCustomLabel
			}
		case FieldFileSize:
			if document.Size <= 0 || document.Size > MaxDocumentSize {
				return ErrFileTooLarge
			}
		case FieldMimeType:
			if _, ok := allowedMimeTypes[document.MimeType]; !ok {
				return ErrUnsupportedFile
			}
		case FieldEnvelope:
			if document.Envelope.IsZero() {
				return ErrEmptyEnvelope
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateRegisterRequest(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldName, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !emailPattern.MatchString(req.Email) {
				return ErrInvalidEmail
			}
		case FieldName:
			if req.Name == "" {
				return ErrEmptyName
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
			if len(req.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateLoginRequest(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !emailPattern.MatchString(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
