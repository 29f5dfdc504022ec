package api

// StartSessionRequest представляет запрос на открытие сессии редактирования
type StartSessionRequest struct {
	ManifestBaseID string `json:"manifest_base_id"` // base_id манифеста, к которому привязывается сессия
}

// SessionResponse представляет выданную сервером сессию редактирования
// Сессия — это lease над манифестом с собственным concurrency tag
type SessionResponse struct {
	SessionID   string `json:"session_id"`   // идентификатор сессии
	BaseID      string `json:"base_id"`      // base_id, к которому привязана сессия
	SessionETag string `json:"session_etag"` // тег, продвигаемый при каждом принятом батче правок
}

// RowsQueryRequest представляет запрос страницы карантинных строк
type RowsQueryRequest struct {
	Version   string `json:"version"`          // указатель версии датасета ("latest")
	SessionID string `json:"session_id"`       // идентификатор сессии редактирования
	Cursor    string `json:"cursor,omitempty"` // opaque курсор продолжения; пустой для первой страницы
	Limit     int    `json:"limit"`            // максимальный размер страницы
}

// RowPayload представляет одну карантинную строку в wire-формате
type RowPayload struct {
	RowID  string            `json:"row_id"` // стабильный идентификатор строки
	Values map[string]string `json:"values"` // значение на каждую колонку манифеста
}

// RowsQueryResponse представляет страницу строк с курсором продолжения
type RowsQueryResponse struct {
	Rows       []RowPayload `json:"rows"`
	NextCursor string       `json:"next_cursor,omitempty"` // пустой курсор означает конец датасета
}
