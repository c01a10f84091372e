package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
	"github.com/MKhiriev/go-doc-vault/models"
)

type httpRemoteStore struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPRemoteStore constructs an HTTP/REST implementation of [RemoteStore].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPRemoteStore(adapterCfg config.ClientAdapter, logger *logger.Logger) (RemoteStore, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpRemoteStore{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [RemoteStore]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpRemoteStore) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [RemoteStore]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpRemoteStore) Token() string {
	return h.token
}

// Register implements [RemoteStore]. It POSTs the registration payload to
// POST /api/auth/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpRemoteStore) Register(ctx context.Context, req models.RegisterRequest) (models.Account, error) {
	var account models.Account

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&account).
		Post("/api/auth/register")
	if err != nil {
		return models.Account{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Account{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return account, nil
}

// Login implements [RemoteStore]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpRemoteStore) Login(ctx context.Context, req models.LoginRequest) (models.Account, error) {
	var account models.Account

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&account).
		Post("/api/auth/login")
	if err != nil {
		return models.Account{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Account{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return account, nil
}

// DeleteAccount implements [RemoteStore]. It sends DELETE /api/auth/account,
// removing the account and all of its records server-side.
func (h *httpRemoteStore) DeleteAccount(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/api/auth/account")
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListNotes implements [RemoteStore]. It GETs /api/notes and decodes the
// response into a slice of [models.Note].
func (h *httpRemoteStore) ListNotes(ctx context.Context) ([]models.Note, error) {
	resp, err := h.authedRequest(ctx).Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var notes []models.Note
	if err = json.Unmarshal(resp.Body(), &notes); err != nil {
		return nil, fmt.Errorf("decode notes response: %w", err)
	}

	return notes, nil
}

// UploadNote implements [RemoteStore]. It POSTs a sealed note to /api/notes.
func (h *httpRemoteStore) UploadNote(ctx context.Context, note models.Note) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(note).
		Post("/api/notes")
	if err != nil {
		return fmt.Errorf("upload note request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteNote implements [RemoteStore]. It sends DELETE /api/notes/{id}.
func (h *httpRemoteStore) DeleteNote(ctx context.Context, noteID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", noteID).
		Delete("/api/notes/{id}")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListVaultItems implements [RemoteStore]. It GETs /api/vault and decodes the
// response into a slice of [models.VaultItem].
func (h *httpRemoteStore) ListVaultItems(ctx context.Context) ([]models.VaultItem, error) {
	resp, err := h.authedRequest(ctx).Get("/api/vault")
	if err != nil {
		return nil, fmt.Errorf("list vault items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.VaultItem
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode vault items response: %w", err)
	}

	return items, nil
}

// UploadVaultItem implements [RemoteStore]. It POSTs a sealed item to
// /api/vault.
func (h *httpRemoteStore) UploadVaultItem(ctx context.Context, item models.VaultItem) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		Post("/api/vault")
	if err != nil {
		return fmt.Errorf("upload vault item request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteVaultItem implements [RemoteStore]. It sends DELETE /api/vault/{id}.
func (h *httpRemoteStore) DeleteVaultItem(ctx context.Context, itemID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", itemID).
		Delete("/api/vault/{id}")
	if err != nil {
		return fmt.Errorf("delete vault item request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListDocuments implements [RemoteStore]. It GETs /api/documents and decodes
// the metadata listing. The server strips envelopes from listings to keep
// them light; GetDocument fetches the full record.
func (h *httpRemoteStore) ListDocuments(ctx context.Context) ([]models.Document, error) {
	resp, err := h.authedRequest(ctx).Get("/api/documents")
	if err != nil {
		return nil, fmt.Errorf("list documents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var documents []models.Document
	if err = json.Unmarshal(resp.Body(), &documents); err != nil {
		return nil, fmt.Errorf("decode documents response: %w", err)
	}

	return documents, nil
}

// GetDocument implements [RemoteStore]. It GETs /api/documents/{id} and
// decodes the full document including its envelope.
func (h *httpRemoteStore) GetDocument(ctx context.Context, documentID string) (models.Document, error) {
	var document models.Document

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", documentID).
		SetResult(&document).
		Get("/api/documents/{id}")
	if err != nil {
		return models.Document{}, fmt.Errorf("get document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}

	return document, nil
}

// UploadDocument implements [RemoteStore]. It POSTs a sealed document to
// /api/documents.
func (h *httpRemoteStore) UploadDocument(ctx context.Context, document models.Document) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(document).
		Post("/api/documents")
	if err != nil {
		return fmt.Errorf("upload document request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteDocument implements [RemoteStore]. It sends DELETE /api/documents/{id}.
func (h *httpRemoteStore) DeleteDocument(ctx context.Context, documentID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", documentID).
		Delete("/api/documents/{id}")
	if err != nil {
		return fmt.Errorf("delete document request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
