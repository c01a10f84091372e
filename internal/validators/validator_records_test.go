package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-doc-vault/models"
)

func validEnvelope() models.EncryptedEnvelope {
	return models.EncryptedEnvelope{
		Ciphertext: "Y2lwaGVydGV4dA==",
		Nonce:      "bm9uY2Vub25jZQ==",
		Salt:       "c2FsdHNhbHRzYWx0c2E=",
	}
}

func validNote() models.Note {
	return models.Note{ID: "note-1", OwnerID: "owner-1", Title: "wifi password", Envelope: validEnvelope()}
}

func validVaultItem() models.VaultItem {
	return models.VaultItem{ID: "item-1", OwnerID: "owner-1", Name: "debit card", Type: models.VaultItemCard, Envelope: validEnvelope()}
}

func validDocument() models.Document {
	return models.Document{
		ID:       "doc-1",
		OwnerID:  "owner-1",
		Name:     "passport",
		FileName: "passport.pdf",
		Type:     models.DocumentPassport,
		MimeType: "application/pdf",
		Size:     250_000,
		Envelope: validEnvelope(),
	}
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRecordValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestValidate_UnknownField(t *testing.T) {
	v := NewRecordValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), validNote(), "no_such_field"), ErrUnknownField)
}

func TestValidateNote(t *testing.T) {
	v := NewRecordValidator()

	tests := []struct {
		name    string
		mutate  func(*models.Note)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.Note) {}},
		{name: "missing id", mutate: func(n *models.Note) { n.ID = "" }, wantErr: ErrInvalidRecordID},
		{name: "missing owner", mutate: func(n *models.Note) { n.OwnerID = "" }, wantErr: ErrInvalidOwnerID},
		{name: "missing title", mutate: func(n *models.Note) { n.Title = "" }, wantErr: ErrEmptyTitle},
		{name: "missing envelope", mutate: func(n *models.Note) { n.Envelope = models.EncryptedEnvelope{} }, wantErr: ErrEmptyEnvelope},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note := validNote()
			tt.mutate(&note)

			err := v.Validate(context.Background(), note)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateNote_Pointer(t *testing.T) {
	v := NewRecordValidator()
	note := validNote()
	assert.NoError(t, v.Validate(context.Background(), &note))
}

func TestValidateNote_FieldScoping(t *testing.T) {
	v := NewRecordValidator()

	// Only the title is checked, so a missing envelope passes.
	note := validNote()
	note.Envelope = models.EncryptedEnvelope{}
	assert.NoError(t, v.Validate(context.Background(), note, FieldTitle))
}

func TestValidateVaultItem(t *testing.T) {
	v := NewRecordValidator()

	tests := []struct {
		name    string
		mutate  func(*models.VaultItem)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.VaultItem) {}},
		{name: "missing id", mutate: func(i *models.VaultItem) { i.ID = "" }, wantErr: ErrInvalidRecordID},
		{name: "missing name", mutate: func(i *models.VaultItem) { i.Name = "" }, wantErr: ErrEmptyName},
		{name: "unknown type", mutate: func(i *models.VaultItem) { i.Type = "crypto-wallet" }, wantErr: ErrInvalidItemType},
		{name: "missing envelope", mutate: func(i *models.VaultItem) { i.Envelope = models.EncryptedEnvelope{} }, wantErr: ErrEmptyEnvelope},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := validVaultItem()
			tt.mutate(&item)

			err := v.Validate(context.Background(), item)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateDocument(t *testing.T) {
	v := NewRecordValidator()

	tests := []struct {
		name    string
		mutate  func(*models.Document)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.Document) {}},
		{name: "missing file name", mutate: func(d *models.Document) { d.FileName = "" }, wantErr: ErrEmptyFileName},
		{name: "unknown type", mutate: func(d *models.Document) { d.Type = "diploma" }, wantErr: ErrInvalidDocType},
		{name: "custom without label", mutate: func(d *models.Document) { d.Type = models.DocumentCustom }, wantErr: ErrMissingCustomLabel},
		{name: "custom with label", mutate: func(d *models.Document) {
			d.Type = models.DocumentCustom
			d.CustomLabel = "birth certificate"
		}},
		{name: "zero size", mutate: func(d *models.Document) { d.Size = 0 }, wantErr: ErrFileTooLarge},
		{name: "over limit", mutate: func(d *models.Document) { d.Size = MaxDocumentSize + 1 }, wantErr: ErrFileTooLarge},
		{name: "at limit", mutate: func(d *models.Document) { d.Size = MaxDocumentSize }},
		{name: "executable rejected", mutate: func(d *models.Document) { d.MimeType = "application/x-msdownload" }, wantErr: ErrUnsupportedFile},
		{name: "png accepted", mutate: func(d *models.Document) { d.MimeType = "image/png" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			document := validDocument()
			tt.mutate(&document)

			err := v.Validate(context.Background(), document)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateRegisterRequest(t *testing.T) {
	v := NewRecordValidator()

	tests := []struct {
		name    string
		req     models.RegisterRequest
		wantErr error
	}{
		{name: "valid", req: models.RegisterRequest{Email: "alice@example.com", Name: "Alice", Password: "correct-horse"}},
		{name: "bad email", req: models.RegisterRequest{Email: "not-an-email", Name: "Alice", Password: "correct-horse"}, wantErr: ErrInvalidEmail},
		{name: "missing name", req: models.RegisterRequest{Email: "alice@example.com", Password: "pw"}, wantErr: ErrEmptyName},
		{name: "missing password", req: models.RegisterRequest{Email: "alice@example.com", Name: "Alice"}, wantErr: ErrEmptyPassword},
		{name: "short password", req: models.RegisterRequest{Email: "alice@example.com", Name: "Alice", Password: "seven77"}, wantErr: ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateLoginRequest(t *testing.T) {
	v := NewRecordValidator()

	assert.NoError(t, v.Validate(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "pw"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.LoginRequest{Email: "alice", Password: "pw"}), ErrInvalidEmail)
	assert.ErrorIs(t, v.Validate(context.Background(), models.LoginRequest{Email: "alice@example.com"}), ErrEmptyPassword)
}
