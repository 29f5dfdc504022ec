package editor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/iudanet/rowfix/internal/client/api"
	"github.com/iudanet/rowfix/internal/client/extract"
	"github.com/iudanet/rowfix/internal/models"
	pkgapi "github.com/iudanet/rowfix/pkg/api"
)

// LegacyETag значение concurrency tag в режиме совместимости:
// настоящего серверного тега у legacy-протокола нет
const LegacyETag = "legacy"

// State состояние жизненного цикла сессии
type State int

const (
	StateUninitialized State = iota
	StateInitializing
	StateReady
	StateFailed
)

// String возвращает человекочитаемое имя состояния
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// InitResult содержит результат инициализации сессии
type InitResult struct {
	Manifest          *models.Manifest
	Session           *models.Session
	Lineage           []models.VersionSummary
	Rows              []models.Row // режим совместимости: полностью разобранный extract
	Notice            string       // нефатальное уведомление (активен режим совместимости)
	Fingerprint       string       // отпечаток extract; пустой в modern-режиме
	CompatibilityMode bool
}

// SessionManager владеет манифестом и сессией и решает один раз
// при инициализации, работает ли бэкенд по сессионному протоколу
// или нужен legacy-путь. Далее все операции переключаются по этому
// тегу, без повторного probing.
//
// Машина состояний: uninitialized -> initializing -> ready | failed.
// Других переходов нет; Initialize стартует только из uninitialized,
// повторное открытие начинается с Reset.
type SessionManager struct {
	mu sync.Mutex

	apiClient api.ClientAPI
	logger    *slog.Logger

	state    State
	manifest *models.Manifest
	session  *models.Session
	lineage  []models.VersionSummary
	compat   bool
	failure  string
}

// NewSessionManager создает новый session manager
func NewSessionManager(apiClient api.ClientAPI, logger *slog.Logger) *SessionManager {
	return &SessionManager{
		apiClient: apiClient,
		logger:    logger,
		state:     StateUninitialized,
	}
}

// Initialize открывает сессию редактирования для базовой версии файла.
//
// Алгоритм:
//  1. Запрашиваем манифест по указателю "latest".
//  2. Несоответствие прав/capability фатально: никакого fallback.
//  3. Прочие отказы манифеста трактуем как отсутствие read-model:
//     одна попытка backfill и повторный запрос манифеста.
//  4. С манифестом на руках забираем lineage и открываем сессию.
//  5. Отказ класса "не поддерживается" переключает на режим совместимости:
//     скачиваем полный extract, разбираем локально и синтезируем
//     манифест и локальную сессию.
//  6. Любой сбой legacy-инициализации фатален для попытки открытия.
func (m *SessionManager) Initialize(ctx context.Context, baseID string) (*InitResult, error) {
	m.mu.Lock()
	switch m.state {
	case StateInitializing:
		m.mu.Unlock()
		return nil, fmt.Errorf("session initialization already in progress")
	case StateReady, StateFailed:
		// Повторное открытие только через Reset
		state := m.state
		m.mu.Unlock()
		return nil, fmt.Errorf("cannot initialize session from state %q, reset first", state)
	}
	m.state = StateInitializing
	m.mu.Unlock()

	result, err := m.initModern(ctx, baseID)
	if err != nil {
		if api.IsAuthorizerMismatch(err) {
			return nil, m.fail(fmt.Errorf("authorization failed for base %s: %w", baseID, err))
		}
		if !api.IsCapabilityNotSupported(err) {
			return nil, m.fail(fmt.Errorf("session initialization failed: %w", err))
		}

		// Бэкенд не поддерживает сессионный протокол: legacy-путь
		m.logger.Warn("session protocol not supported, falling back to compatibility mode",
			"base_id", baseID, "error", err)

		result, err = m.initLegacy(ctx, baseID)
		if err != nil {
			return nil, m.fail(fmt.Errorf("compatibility initialization failed: %w", err))
		}
	}

	m.mu.Lock()
	m.state = StateReady
	m.manifest = result.Manifest
	m.session = result.Session
	m.lineage = result.Lineage
	m.compat = result.CompatibilityMode
	m.failure = ""
	m.mu.Unlock()

	return result, nil
}

// initModern выполняет инициализацию по сессионному протоколу
func (m *SessionManager) initModern(ctx context.Context, baseID string) (*InitResult, error) {
	manifestResp, err := m.fetchManifest(ctx, baseID)
	if err != nil {
		return nil, err
	}

	versions, err := m.apiClient.GetVersions(ctx, baseID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lineage: %w", err)
	}

	sessionResp, err := m.apiClient.StartSession(ctx, baseID, manifestResp.BaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	manifest := &models.Manifest{
		BaseID:          manifestResp.BaseID,
		RootID:          manifestResp.RootID,
		UploadID:        manifestResp.UploadID,
		ETag:            manifestResp.ETag,
		Columns:         manifestResp.Columns,
		EditableColumns: manifestResp.EditableColumns,
		TotalRows:       manifestResp.TotalRows,
		ShardCount:      manifestResp.ShardCount,
	}

	// Тег сессии предпочтительнее тега манифеста
	etag := sessionResp.SessionETag
	if etag == "" {
		etag = manifestResp.ETag
	}

	session := &models.Session{
		ID:     sessionResp.SessionID,
		BaseID: sessionResp.BaseID,
		ETag:   etag,
	}

	lineage := make([]models.VersionSummary, 0, len(versions))
	for _, v := range versions {
		lineage = append(lineage, models.VersionSummary{
			Version:         v.Version,
			Status:          v.Status,
			RowCount:        v.RowCount,
			QuarantinedRows: v.QuarantinedRows,
			UploadID:        v.UploadID,
		})
	}

	return &InitResult{
		Manifest: manifest,
		Session:  session,
		Lineage:  lineage,
	}, nil
}

// fetchManifest запрашивает манифест с одной попыткой backfill-and-retry.
// Несоответствие прав пробрасывается сразу, без попытки восстановления
func (m *SessionManager) fetchManifest(ctx context.Context, baseID string) (*pkgapi.ManifestResponse, error) {
	manifest, err := m.apiClient.GetManifest(ctx, baseID, "latest")
	if err == nil {
		return manifest, nil
	}
	if api.IsAuthorizerMismatch(err) {
		return nil, err
	}

	// Отказ похож на отсутствие read-model: одна попытка восстановления
	m.logger.Info("manifest fetch failed, attempting read-model backfill",
		"base_id", baseID, "error", err)

	if backfillErr := m.apiClient.BackfillReadModel(ctx, baseID, "latest"); backfillErr != nil {
		// Backfill не помог: возвращаем исходную ошибку манифеста,
		// именно её класс решает дальнейшую судьбу инициализации
		m.logger.Warn("read-model backfill failed", "base_id", baseID, "error", backfillErr)
		return nil, err
	}

	manifest, retryErr := m.apiClient.GetManifest(ctx, baseID, "latest")
	if retryErr != nil {
		return nil, retryErr
	}
	return manifest, nil
}

// initLegacy выполняет инициализацию в режиме совместимости:
// полный extract скачивается и разбирается локально
func (m *SessionManager) initLegacy(ctx context.Context, baseID string) (*InitResult, error) {
	versions, err := m.apiClient.GetVersions(ctx, baseID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lineage: %w", err)
	}

	data, err := m.apiClient.DownloadExtract(ctx, baseID)
	if err != nil {
		return nil, fmt.Errorf("failed to download quarantine extract: %w", err)
	}

	parsed, err := extract.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse quarantine extract: %w", err)
	}

	// Синтезируем манифест: редактируемы все колонки, кроме row_id
	manifest := &models.Manifest{
		BaseID:          baseID,
		RootID:          baseID,
		UploadID:        baseID,
		ETag:            LegacyETag,
		Columns:         parsed.Columns,
		EditableColumns: parsed.EditableColumns(),
		TotalRows:       len(parsed.Rows),
		ShardCount:      1,
	}

	// Локальная сессия: серверного lease в legacy-протоколе нет
	session := &models.Session{
		ID:     uuid.New().String(),
		BaseID: baseID,
		ETag:   LegacyETag,
	}

	lineage := make([]models.VersionSummary, 0, len(versions))
	for _, v := range versions {
		lineage = append(lineage, models.VersionSummary{
			Version:         v.Version,
			Status:          v.Status,
			RowCount:        v.RowCount,
			QuarantinedRows: v.QuarantinedRows,
			UploadID:        v.UploadID,
		})
	}

	return &InitResult{
		Manifest:          manifest,
		Session:           session,
		Lineage:           lineage,
		Rows:              parsed.Rows,
		Fingerprint:       parsed.Fingerprint,
		CompatibilityMode: true,
		Notice:            "backend does not support editing sessions; working on a local copy in compatibility mode",
	}, nil
}

// fail переводит машину состояний в failed и возвращает ошибку как есть
func (m *SessionManager) fail(err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = StateFailed
	m.failure = err.Error()
	return err
}

// Reset возвращает менеджер в исходное состояние (повторное открытие)
func (m *SessionManager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = StateUninitialized
	m.manifest = nil
	m.session = nil
	m.lineage = nil
	m.compat = false
	m.failure = ""
}

// State возвращает текущее состояние машины
func (m *SessionManager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// Failure возвращает сообщение последней фатальной ошибки инициализации
func (m *SessionManager) Failure() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.failure
}

// Manifest возвращает манифест текущей сессии (nil до готовности)
func (m *SessionManager) Manifest() *models.Manifest {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.manifest
}

// Session возвращает текущую сессию (nil до готовности)
func (m *SessionManager) Session() *models.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.session
}

// Lineage возвращает историю версий файла
func (m *SessionManager) Lineage() []models.VersionSummary {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.lineage
}

// CompatibilityMode сообщает, активен ли режим совместимости
func (m *SessionManager) CompatibilityMode() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.compat
}

// ETag возвращает текущий concurrency tag сессии
func (m *SessionManager) ETag() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return ""
	}
	return m.session.ETag
}

// AdvanceETag устанавливает новый concurrency tag после принятого батча
func (m *SessionManager) AdvanceETag(next string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session != nil && next != "" {
		m.session.ETag = next
	}
}
