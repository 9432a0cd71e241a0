// Package remote implements the client facing the saved-property backend
// over HTTP. It owns request signing, envelope decoding, and the mapping of
// transport and status failures onto the domain error taxonomy.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"homiio/config"
	"homiio/internal/domain/entity"
	"homiio/internal/domain/service"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pkg/errors"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultCacheSize = 256
	defaultCacheTTL  = 5 * time.Minute
)

// envelope mirrors the unified response structure of the backend.
type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *envelopeError  `json:"error,omitempty"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

type savedPropertyDTO struct {
	ID         uuid.UUID  `json:"id"`
	ProfileID  uuid.UUID  `json:"profile_id"`
	PropertyID uuid.UUID  `json:"property_id"`
	FolderID   *uuid.UUID `json:"folder_id,omitempty"`
	Notes      string     `json:"notes"`
	AddedAt    time.Time  `json:"added_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type folderDTO struct {
	ID            uuid.UUID `json:"id"`
	ProfileID     uuid.UUID `json:"profile_id"`
	Name          string    `json:"name"`
	Color         string    `json:"color"`
	Icon          string    `json:"icon"`
	IsDefault     bool      `json:"is_default"`
	PropertyCount int64     `json:"property_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type listDTO struct {
	Properties []*savedPropertyDTO `json:"properties"`
	Folders    []*folderDTO        `json:"folders"`
}

type saveRequest struct {
	PropertyID uuid.UUID  `json:"property_id"`
	FolderID   *uuid.UUID `json:"folder_id,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

type savedPropertyAPI struct {
	baseURL    string
	httpClient *http.Client
	tokens     service.TokenProvider
	logger     *slog.Logger

	// Property summaries are immutable for display purposes, so repeat
	// lookups within the TTL are served from memory.
	summaryCache *lru.LRU[uuid.UUID, *service.PropertySummary]
}

// NewSavedPropertyAPI creates an HTTP client for the saved-property backend
func NewSavedPropertyAPI(cfg *config.SavedAPIConfig, tokens service.TokenProvider, logger *slog.Logger) service.SavedPropertyAPI {
	if cfg == nil {
		cfg = &config.SavedAPIConfig{}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	cacheSize := cfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cacheTTL := cfg.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}

	return &savedPropertyAPI{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:   &http.Client{Timeout: timeout},
		tokens:       tokens,
		logger:       logger,
		summaryCache: lru.NewLRU[uuid.UUID, *service.PropertySummary](cacheSize, nil, cacheTTL),
	}
}

// Save creates or updates the bookmark for the property
func (a *savedPropertyAPI) Save(ctx context.Context, propertyID uuid.UUID, folderID *uuid.UUID, notes string) (*entity.SavedProperty, error) {
	req := saveRequest{
		PropertyID: propertyID,
		FolderID:   folderID,
		Notes:      notes,
	}

	var dto savedPropertyDTO
	if err := a.do(ctx, http.MethodPost, "/saved-properties", req, &dto); err != nil {
		return nil, err
	}

	return toSavedPropertyDomain(&dto), nil
}

// Unsave removes the bookmark for the property
func (a *savedPropertyAPI) Unsave(ctx context.Context, propertyID uuid.UUID) error {
	return a.do(ctx, http.MethodDelete, "/saved-properties/"+propertyID.String(), nil, nil)
}

// List returns the authoritative snapshot of bookmarks and folders
func (a *savedPropertyAPI) List(ctx context.Context) (*service.SavedPropertyList, error) {
	var dto listDTO
	if err := a.do(ctx, http.MethodGet, "/saved-properties", nil, &dto); err != nil {
		return nil, err
	}

	list := &service.SavedPropertyList{
		Properties: make([]*entity.SavedProperty, 0, len(dto.Properties)),
		Folders:    make([]*entity.SavedPropertyFolder, 0, len(dto.Folders)),
	}
	for _, p := range dto.Properties {
		list.Properties = append(list.Properties, toSavedPropertyDomain(p))
	}
	for _, f := range dto.Folders {
		list.Folders = append(list.Folders, toFolderDomain(f))
	}

	return list, nil
}

// GetProperty fetches the display summary for a listing, serving repeat
// lookups from the in-memory cache
func (a *savedPropertyAPI) GetProperty(ctx context.Context, propertyID uuid.UUID) (*service.PropertySummary, error) {
	if summary, ok := a.summaryCache.Get(propertyID); ok {
		return summary, nil
	}

	var summary service.PropertySummary
	if err := a.do(ctx, http.MethodGet, "/properties/"+propertyID.String(), nil, &summary); err != nil {
		return nil, err
	}

	a.summaryCache.Add(propertyID, &summary)

	return &summary, nil
}

// CreateFolder creates a folder and returns the stored record
func (a *savedPropertyAPI) CreateFolder(ctx context.Context, input service.FolderInput) (*entity.SavedPropertyFolder, error) {
	var dto folderDTO
	if err := a.do(ctx, http.MethodPost, "/folders", input, &dto); err != nil {
		return nil, err
	}

	return toFolderDomain(&dto), nil
}

// UpdateFolder renames or restyles a folder and returns the stored record
func (a *savedPropertyAPI) UpdateFolder(ctx context.Context, id uuid.UUID, input service.FolderInput) (*entity.SavedPropertyFolder, error) {
	var dto folderDTO
	if err := a.do(ctx, http.MethodPut, "/folders/"+id.String(), input, &dto); err != nil {
		return nil, err
	}

	return toFolderDomain(&dto), nil
}

// DeleteFolder removes a folder; its members become uncategorized
func (a *savedPropertyAPI) DeleteFolder(ctx context.Context, id uuid.UUID) error {
	return a.do(ctx, http.MethodDelete, "/folders/"+id.String(), nil, nil)
}

// do executes one authenticated round trip and decodes the response
// envelope. A nil out skips data decoding.
func (a *savedPropertyAPI) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.WithStack(err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reqBody)
	if err != nil {
		return errors.WithStack(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := a.tokens.Token(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to obtain bearer token")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		a.logger.Warn("saved-property API request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)

		return classifyTransportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return classifyTransportError(err)
	}

	var env envelope
	if len(raw) > 0 {
		// An undecodable body on an error status still classifies by status
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < http.StatusBadRequest {
			return errors.Wrap(err, "failed to decode response envelope")
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		errorCode, details := "", ""
		if env.Error != nil {
			errorCode, details = env.Error.Code, env.Error.Details
		}

		return classifyStatusError(resp.StatusCode, errorCode, details)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.Wrap(err, "failed to decode response data")
		}
	}

	return nil
}

func toSavedPropertyDomain(dto *savedPropertyDTO) *entity.SavedProperty {
	return &entity.SavedProperty{
		ID:         dto.ID,
		ProfileID:  dto.ProfileID,
		PropertyID: dto.PropertyID,
		FolderID:   dto.FolderID,
		Notes:      dto.Notes,
		AddedAt:    dto.AddedAt,
		UpdatedAt:  dto.UpdatedAt,
	}
}

func toFolderDomain(dto *folderDTO) *entity.SavedPropertyFolder {
	return &entity.SavedPropertyFolder{
		ID:            dto.ID,
		ProfileID:     dto.ProfileID,
		Name:          dto.Name,
		Color:         dto.Color,
		Icon:          dto.Icon,
		IsDefault:     dto.IsDefault,
		PropertyCount: dto.PropertyCount,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
	}
}
