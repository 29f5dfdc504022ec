package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	pkgapi "github.com/iudanet/rowfix/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс транспорта для сессии редактирования карантина
// Потребители (session manager, row store, editor) зависят от интерфейса,
// а не от конкретного HTTP клиента
type ClientAPI interface {
	// GetManifest получает манифест карантинного датасета по указателю версии
	GetManifest(ctx context.Context, baseID, pointer string) (*pkgapi.ManifestResponse, error)

	// BackfillReadModel запускает идемпотентное восстановление read-model манифеста
	BackfillReadModel(ctx context.Context, baseID, pointer string) error

	// GetVersions возвращает lineage версий файла
	GetVersions(ctx context.Context, baseID string) ([]pkgapi.VersionSummary, error)

	// StartSession открывает сессию редактирования, привязанную к манифесту
	StartSession(ctx context.Context, baseID, manifestBaseID string) (*pkgapi.SessionResponse, error)

	// QueryRows возвращает страницу карантинных строк по opaque курсору
	QueryRows(ctx context.Context, baseID string, req pkgapi.RowsQueryRequest) (*pkgapi.RowsQueryResponse, error)

	// SaveEditsBatch атомарно сохраняет один батч правок под concurrency tag
	SaveEditsBatch(ctx context.Context, baseID string, req pkgapi.SaveEditsRequest) (*pkgapi.SaveEditsResponse, error)

	// SubmitReprocess запускает повторную обработку датасета (modern протокол)
	SubmitReprocess(ctx context.Context, baseID string, req pkgapi.SubmitReprocessRequest) (*pkgapi.SubmitReprocessResponse, error)

	// DownloadExtract скачивает полный карантинный extract в CSV (legacy протокол)
	DownloadExtract(ctx context.Context, baseID string) ([]byte, error)

	// LegacyReprocess одношаговый legacy-запрос повторной обработки
	LegacyReprocess(ctx context.Context, baseID string, req pkgapi.LegacyReprocessRequest) (*pkgapi.SubmitReprocessResponse, error)

	// CompatibilityUpload запасной путь "загрузить как новый файл"
	CompatibilityUpload(ctx context.Context, req pkgapi.CompatibilityUploadRequest) (*pkgapi.SubmitReprocessResponse, error)
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// GetManifest получает манифест карантинного датасета
func (c *Client) GetManifest(ctx context.Context, baseID, pointer string) (*pkgapi.ManifestResponse, error) {
	var resp pkgapi.ManifestResponse
	path := fmt.Sprintf("/api/v1/bases/%s/manifest?pointer=%s", url.PathEscape(baseID), url.QueryEscape(pointer))
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("manifest request failed: %w", err)
	}
	return &resp, nil
}

// BackfillReadModel запускает восстановление read-model манифеста
// Идемпотентный repair-вызов: контракта на тело ответа нет
func (c *Client) BackfillReadModel(ctx context.Context, baseID, pointer string) error {
	path := fmt.Sprintf("/api/v1/bases/%s/backfill", url.PathEscape(baseID))
	req := pkgapi.BackfillRequest{Pointer: pointer}
	if err := c.doRequest(ctx, http.MethodPost, path, req, nil); err != nil {
		return fmt.Errorf("backfill request failed: %w", err)
	}
	return nil
}

// GetVersions возвращает lineage версий файла
func (c *Client) GetVersions(ctx context.Context, baseID string) ([]pkgapi.VersionSummary, error) {
	var resp pkgapi.VersionsResponse
	path := fmt.Sprintf("/api/v1/bases/%s/versions", url.PathEscape(baseID))
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("versions request failed: %w", err)
	}
	return resp.Versions, nil
}

// StartSession открывает сессию редактирования
func (c *Client) StartSession(ctx context.Context, baseID, manifestBaseID string) (*pkgapi.SessionResponse, error) {
	var resp pkgapi.SessionResponse
	path := fmt.Sprintf("/api/v1/bases/%s/sessions", url.PathEscape(baseID))
	req := pkgapi.StartSessionRequest{ManifestBaseID: manifestBaseID}
	if err := c.doRequest(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, fmt.Errorf("start session request failed: %w", err)
	}
	return &resp, nil
}

// QueryRows возвращает страницу карантинных строк
func (c *Client) QueryRows(ctx context.Context, baseID string, req pkgapi.RowsQueryRequest) (*pkgapi.RowsQueryResponse, error) {
	var resp pkgapi.RowsQueryResponse
	path := fmt.Sprintf("/api/v1/bases/%s/rows/query", url.PathEscape(baseID))
	if err := c.doRequest(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, fmt.Errorf("rows query failed: %w", err)
	}
	return &resp, nil
}

// SaveEditsBatch сохраняет один батч правок
func (c *Client) SaveEditsBatch(ctx context.Context, baseID string, req pkgapi.SaveEditsRequest) (*pkgapi.SaveEditsResponse, error) {
	var resp pkgapi.SaveEditsResponse
	path := fmt.Sprintf("/api/v1/bases/%s/edits", url.PathEscape(baseID))
	if err := c.doRequest(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, fmt.Errorf("save edits batch failed: %w", err)
	}
	return &resp, nil
}

// SubmitReprocess запускает повторную обработку датасета
func (c *Client) SubmitReprocess(ctx context.Context, baseID string, req pkgapi.SubmitReprocessRequest) (*pkgapi.SubmitReprocessResponse, error) {
	var resp pkgapi.SubmitReprocessResponse
	path := fmt.Sprintf("/api/v1/bases/%s/reprocess", url.PathEscape(baseID))
	if err := c.doRequest(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, fmt.Errorf("submit reprocess failed: %w", err)
	}
	return &resp, nil
}

// DownloadExtract скачивает полный карантинный extract (CSV bytes)
func (c *Client) DownloadExtract(ctx context.Context, baseID string) ([]byte, error) {
	path := fmt.Sprintf("/api/v1/bases/%s/extract", url.PathEscape(baseID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("extract download failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read extract body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, responseError(resp.StatusCode, body)
	}

	return body, nil
}

// LegacyReprocess одношаговый legacy-запрос повторной обработки
func (c *Client) LegacyReprocess(ctx context.Context, baseID string, req pkgapi.LegacyReprocessRequest) (*pkgapi.SubmitReprocessResponse, error) {
	var resp pkgapi.SubmitReprocessResponse
	path := fmt.Sprintf("/api/v1/bases/%s/legacy-reprocess", url.PathEscape(baseID))
	if err := c.doRequest(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, fmt.Errorf("legacy reprocess failed: %w", err)
	}
	return &resp, nil
}

// CompatibilityUpload запасной путь "загрузить как новый файл"
func (c *Client) CompatibilityUpload(ctx context.Context, req pkgapi.CompatibilityUploadRequest) (*pkgapi.SubmitReprocessResponse, error) {
	var resp pkgapi.SubmitReprocessResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/uploads/reprocess", req, &resp); err != nil {
		return nil, fmt.Errorf("compatibility upload failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return responseError(resp.StatusCode, respBody)
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// responseError строит типизированную ошибку из тела ответа сервера
// Код из ErrorResponse сохраняется для последующей классификации
func responseError(statusCode int, body []byte) error {
	var errResp pkgapi.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && (errResp.Error != "" || errResp.Message != "") {
		return &Error{
			StatusCode: statusCode,
			Code:       errResp.Error,
			Message:    errResp.Message,
		}
	}
	return &Error{
		StatusCode: statusCode,
		Message:    string(body),
	}
}
