package editor

import (
	"context"
	"fmt"
	"sync"

	"github.com/iudanet/rowfix/internal/client/config"
	"github.com/iudanet/rowfix/internal/models"
	pkgapi "github.com/iudanet/rowfix/pkg/api"
)

//go:generate moq -out rowquerier_mock.go . RowQuerier

// RowQuerier defines the remote row query interface consumed by RowStore
type RowQuerier interface {
	// QueryRows возвращает страницу карантинных строк по opaque курсору
	QueryRows(ctx context.Context, baseID string, req pkgapi.RowsQueryRequest) (*pkgapi.RowsQueryResponse, error)
}

// RowStore держит материализованное окно карантинных строк.
// Страницы подгружаются курсором строго последовательно; при превышении
// потолка памяти самые старые строки отсекаются спереди, так что в памяти
// всегда остаётся непрерывный суффикс последних загруженных строк.
type RowStore struct {
	mu sync.Mutex

	querier RowQuerier
	cfg     config.Config

	baseID    string
	sessionID string

	rows    []models.Row
	cursor  string // opaque курсор продолжения; клиент его не разбирает
	hasMore bool
	loading bool
}

// NewRowStore создает новый row store
func NewRowStore(querier RowQuerier, cfg config.Config) *RowStore {
	return &RowStore{
		querier: querier,
		cfg:     cfg,
	}
}

// Initialize привязывает store к сессии и выполняет первую загрузку страницы
func (s *RowStore) Initialize(ctx context.Context, baseID, sessionID string) error {
	s.mu.Lock()
	s.baseID = baseID
	s.sessionID = sessionID
	s.rows = nil
	s.cursor = ""
	s.hasMore = true
	s.loading = false
	s.mu.Unlock()

	if _, err := s.FetchNext(ctx); err != nil {
		return fmt.Errorf("initial row fetch failed: %w", err)
	}
	return nil
}

// FetchNext подгружает следующую страницу строк.
// No-op, пока предыдущая загрузка в полёте или датасет исчерпан:
// одновременно допускается не более одного запроса.
// Возвращает количество добавленных строк.
func (s *RowStore) FetchNext(ctx context.Context) (int, error) {
	s.mu.Lock()
	if s.loading || !s.hasMore {
		s.mu.Unlock()
		return 0, nil
	}
	s.loading = true
	req := pkgapi.RowsQueryRequest{
		Version:   "latest",
		SessionID: s.sessionID,
		Cursor:    s.cursor,
		Limit:     s.cfg.PageSize,
	}
	baseID := s.baseID
	s.mu.Unlock()

	resp, err := s.querier.QueryRows(ctx, baseID, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		// hasMore и cursor не трогаем: вызывающий может повторить попытку
		return 0, fmt.Errorf("rows query failed: %w", err)
	}

	appended := len(resp.Rows)
	for _, payload := range resp.Rows {
		s.rows = append(s.rows, models.Row{ID: payload.RowID, Values: payload.Values})
	}

	// hasMore становится false ровно тогда, когда сервер не вернул курсор
	s.cursor = resp.NextCursor
	s.hasMore = resp.NextCursor != ""

	s.trimLocked()

	return appended, nil
}

// trimLocked отсекает самые старые строки при превышении потолка памяти.
// Отсекается ровно величина переполнения; порядок оставшихся строк сохраняется
func (s *RowStore) trimLocked() {
	overflow := len(s.rows) - s.cfg.MaxRowsInMemory
	if overflow <= 0 {
		return
	}
	trimmed := make([]models.Row, len(s.rows)-overflow)
	copy(trimmed, s.rows[overflow:])
	s.rows = trimmed
}

// UpdateRow накладывает optimistic-патч на строку по row_id.
// Порядок строк не меняется, загрузка не инициируется.
// Строка, вытесненная из окна памяти, молча пропускается
func (s *RowStore) UpdateRow(rowID string, patch map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rows {
		if s.rows[i].ID != rowID {
			continue
		}
		updated := s.rows[i].Clone()
		for column, value := range patch {
			updated.Values[column] = value
		}
		s.rows[i] = updated
		return
	}
}

// SetRows загружает весь датасет целиком (режим совместимости).
// После этого hasMore навсегда false: подгрузки не будет
func (s *RowStore) SetRows(rows []models.Row) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows = rows
	s.cursor = ""
	s.hasMore = false
	s.loading = false
}

// Rows возвращает текущее окно строк
func (s *RowStore) Rows() []models.Row {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]models.Row, len(s.rows))
	copy(rows, s.rows)
	return rows
}

// Row возвращает строку по row_id, если она в окне памяти
func (s *RowStore) Row(rowID string) (models.Row, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rows {
		if s.rows[i].ID == rowID {
			return s.rows[i], true
		}
	}
	return models.Row{}, false
}

// RowCount возвращает количество строк в окне памяти
func (s *RowStore) RowCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.rows)
}

// HasMore сообщает, остались ли на сервере незагруженные строки
func (s *RowStore) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.hasMore
}

// Loading сообщает, есть ли загрузка в полёте
func (s *RowStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loading
}

// Cursor возвращает текущий курсор продолжения (для диагностики)
func (s *RowStore) Cursor() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cursor
}
