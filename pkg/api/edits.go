package api

// EditEntry представляет накопленные правки одной строки
// Несколько правок одной ячейки схлопываются на клиенте до последнего значения
type EditEntry struct {
	RowID string            `json:"row_id"` // идентификатор редактируемой строки
	Cells map[string]string `json:"cells"`  // колонка -> новое значение
}

// SaveEditsRequest представляет один батч правок
// Батч отправляется атомарно под optimistic-concurrency тегом сессии
type SaveEditsRequest struct {
	SessionID   string      `json:"session_id"`    // идентификатор сессии редактирования
	IfMatchETag string      `json:"if_match_etag"` // текущий concurrency tag; при несовпадении весь батч отклоняется
	Edits       []EditEntry `json:"edits"`
}

// RejectedEdit представляет отклонённую серверной валидацией ячейку
type RejectedEdit struct {
	RowID  string `json:"row_id"`
	Column string `json:"column"`
	Reason string `json:"reason"`
}

// SaveEditsResponse представляет результат сохранения батча
type SaveEditsResponse struct {
	NextETag string         `json:"next_etag"` // новый concurrency tag; используется для следующего батча
	Rejected []RejectedEdit `json:"rejected"`  // отклонённые ячейки (не являются фатальной ошибкой)
	Accepted int            `json:"accepted"`  // количество принятых правок
}
