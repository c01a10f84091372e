package service

import (
	"fmt"

	"github.com/MKhiriev/go-doc-vault/internal/adapter"
	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/validators"
)

// ClientServices aggregates every client-side service behind one handle.
type ClientServices struct {
	Session   SessionService
	Notes     NotesService
	Vault     VaultService
	Documents DocumentsService
	Reset     ResetService
}

// NewClientServices wires the full service layer over the given transport,
// crypto, and section gate. A single validator instance is shared.
func NewClientServices(remote adapter.RemoteStore, envelopes crypto.EnvelopeService, gate SectionGate, sender EmailSender, log *logger.Logger) (*ClientServices, error) {
	validator := validators.NewRecordValidator()

	documents, err := NewDocumentsService(remote, envelopes, gate, validator, log)
	if err != nil {
		return nil, fmt.Errorf("create documents service: %w", err)
	}

	return &ClientServices{
		Session:   NewSessionService(remote, gate, validator, log),
		Notes:     NewNotesService(remote, envelopes, validator, log),
		Vault:     NewVaultService(remote, envelopes, gate, validator, log),
		Documents: documents,
		Reset:     NewResetService(sender, gate, log),
	}, nil
}
