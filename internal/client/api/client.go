package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/medkeeper/internal/models"
	"github.com/iudanet/medkeeper/pkg/api"
)

// DefaultTimeout ограничивает один HTTP запрос к серверу записей
const DefaultTimeout = 30 * time.Second

// Client представляет HTTP клиент сервиса записей
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// Option настраивает Client
type Option func(*Client)

// WithToken добавляет Authorization: Bearer ко всем запросам
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithTimeout задает таймаут одного запроса
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient заменяет http.Client (тесты)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient создает новый API клиент
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Health проверяет доступность сервиса записей
func (c *Client) Health(ctx context.Context) error {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/health", nil, &resp); err != nil {
		return fmt.Errorf("health request failed: %w", err)
	}
	return nil
}

// List returns the full snapshot of the user's remote records
func (c *Client) List(ctx context.Context, userID int64) ([]models.Record, error) {
	var resp []api.RecordResponse
	path := "/records?" + userQuery(userID)

	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("list records request failed: %w", err)
	}

	records := make([]models.Record, 0, len(resp))
	for _, r := range resp {
		records = append(records, fromResponse(userID, r))
	}

	return records, nil
}

// Create creates a record on the server. clientRef lets the server
// recognise a repeated create of the same local record.
func (c *Client) Create(ctx context.Context, userID int64, fields models.Fields, clientRef string) (*models.Record, error) {
	req := api.CreateRecordRequest{
		UserID:    userID,
		Name:      fields.Name,
		Dose:      fields.Dose,
		Form:      fields.Form,
		Expiry:    fields.Expiry,
		PhotoURI:  fields.PhotoURI,
		ClientRef: clientRef,
	}

	var resp api.RecordResponse
	if err := c.doRequest(ctx, http.MethodPost, "/records", req, &resp); err != nil {
		return nil, fmt.Errorf("create record request failed: %w", err)
	}

	rec := fromResponse(userID, resp)
	return &rec, nil
}

// Update replaces fields of a remote record.
// Пустой PhotoURI не передается: локальная ссылка на фото не должна стирать серверную.
func (c *Client) Update(ctx context.Context, userID, remoteID int64, fields models.Fields) error {
	req := api.UpdateRecordRequest{
		Name:   &fields.Name,
		Dose:   &fields.Dose,
		Form:   &fields.Form,
		Expiry: &fields.Expiry,
	}
	if fields.PhotoURI != "" {
		req.PhotoURI = &fields.PhotoURI
	}

	path := recordPath(userID, remoteID)
	if err := c.doRequest(ctx, http.MethodPatch, path, req, nil); err != nil {
		return fmt.Errorf("update record request failed: %w", err)
	}

	return nil
}

// Delete removes a remote record. Not found is success: the record is absent either way.
func (c *Client) Delete(ctx context.Context, userID, remoteID int64) error {
	err := c.doRequest(ctx, http.MethodDelete, recordPath(userID, remoteID), nil, nil)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return fmt.Errorf("delete record request failed: %w", err)
	}
	return nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Таймаут, обрыв соединения, DNS: повторим при следующем запуске
		return fmt.Errorf("%w: %w", ErrTransient, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %w", ErrTransient, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{StatusCode: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			apiErr.Message = errResp.Message
			if apiErr.Message == "" {
				apiErr.Message = errResp.Error
			}
		} else {
			apiErr.Message = strings.TrimSpace(string(respBody))
		}
		return apiErr
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func userQuery(userID int64) string {
	return url.Values{"userId": {strconv.FormatInt(userID, 10)}}.Encode()
}

func recordPath(userID, remoteID int64) string {
	return "/records/" + strconv.FormatInt(remoteID, 10) + "?" + userQuery(userID)
}

func fromResponse(userID int64, r api.RecordResponse) models.Record {
	id := r.ID
	return models.Record{
		RemoteID:  &id,
		UserID:    userID,
		ClientRef: r.ClientRef,
		Fields: models.Fields{
			Name:     r.Name,
			Dose:     r.Dose,
			Form:     r.Form,
			Expiry:   r.Expiry,
			PhotoURI: r.PhotoURI,
		},
	}
}
