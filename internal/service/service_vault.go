package service

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-doc-vault/internal/adapter"
	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
	"github.com/MKhiriev/go-doc-vault/internal/validators"
	"github.com/MKhiriev/go-doc-vault/models"
)

type vaultService struct {
	remote    adapter.RemoteStore
	envelopes crypto.EnvelopeService
	gate      SectionGate
	validator validators.Validator
	ids       *utils.UUIDGenerator
	logger    *logger.Logger

	// writeClipboard is swapped in tests; defaults to the system clipboard.
	writeClipboard func(text string) error
}

// NewVaultService constructs the vault-items service. Secret material only
// moves while the vault section is unlocked.
func NewVaultService(remote adapter.RemoteStore, envelopes crypto.EnvelopeService, gate SectionGate, validator validators.Validator, logger *logger.Logger) VaultService {
	return &vaultService{
		remote:         remote,
		envelopes:      envelopes,
		gate:           gate,
		validator:      validator,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
		writeClipboard: clipboard.WriteAll,
	}
}

func (s *vaultService) Add(ctx context.Context, name string, itemType models.VaultItemType, secret string) (models.VaultItem, error) {
	ownerID, ok := utils.GetOwnerIDFromContext(ctx)
	if !ok {
		return models.VaultItem{}, ErrNotSignedIn
	}
	if secret == "" {
		return models.VaultItem{}, ErrEmptySecret
	}

	passphrase, err := s.gate.SectionPassphrase(models.SectionVault)
	if err != nil {
		return models.VaultItem{}, err
	}

	envelope, err := s.envelopes.Seal([]byte(secret), passphrase)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("seal vault item: %w", err)
	}

	item := models.VaultItem{
		ID:        s.ids.Generate(),
		OwnerID:   ownerID,
		Name:      name,
		Type:      itemType,
		Envelope:  envelope,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.validator.Validate(ctx, item); err != nil {
		return models.VaultItem{}, fmt.Errorf("validate vault item: %w", err)
	}

	if err := s.remote.UploadVaultItem(ctx, item); err != nil {
		return models.VaultItem{}, fmt.Errorf("upload vault item: %w", err)
	}

	s.logger.Info().Str("item_id", item.ID).Str("type", string(item.Type)).Msg("vault item added")
	return item, nil
}

func (s *vaultService) List(ctx context.Context) ([]models.VaultItem, error) {
	items, err := s.remote.ListVaultItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vault items: %w", err)
	}
	return items, nil
}

func (s *vaultService) Reveal(_ context.Context, item models.VaultItem) (string, error) {
	passphrase, err := s.gate.SectionPassphrase(models.SectionVault)
	if err != nil {
		return "", err
	}

	secret, err := s.envelopes.Open(item.Envelope, passphrase)
	if err != nil {
		return "", err
	}

	s.gate.MarkActivity(models.SectionVault)
	return string(secret), nil
}

func (s *vaultService) CopyToClipboard(ctx context.Context, item models.VaultItem) error {
	secret, err := s.Reveal(ctx, item)
	if err != nil {
		return err
	}

	if err := s.writeClipboard(secret); err != nil {
		return fmt.Errorf("copy secret to clipboard: %w", err)
	}

	s.logger.Debug().Str("item_id", item.ID).Msg("secret copied to clipboard")
	return nil
}

func (s *vaultService) Delete(ctx context.Context, itemID string) error {
	if err := s.remote.DeleteVaultItem(ctx, itemID); err != nil {
		return fmt.Errorf("delete vault item: %w", err)
	}

	s.logger.Info().Str("item_id", itemID).Msg("vault item deleted")
	return nil
}
