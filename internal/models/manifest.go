package models

// Manifest описывает карантинный датасет одной версии базового файла.
// Создаётся один раз при открытии сессии редактирования и неизменяем
// до её закрытия (кроме замещающего re-fetch после конкурирующей submission).
type Manifest struct {
	BaseID          string   `json:"base_id"`          // BaseID идентификатор базовой версии файла
	RootID          string   `json:"root_id"`          // RootID идентификатор корня lineage
	UploadID        string   `json:"upload_id"`        // UploadID идентификатор загрузки
	ETag            string   `json:"etag"`             // ETag concurrency tag состояния датасета
	Columns         []string `json:"columns"`          // Columns полный упорядоченный список колонок
	EditableColumns []string `json:"editable_columns"` // EditableColumns колонки, доступные для правки
	TotalRows       int      `json:"total_rows"`       // TotalRows общее число карантинных строк
	ShardCount      int      `json:"shard_count"`      // ShardCount число серверных шардов датасета
}

// IsEditable сообщает, разрешено ли редактирование колонки манифестом
func (m *Manifest) IsEditable(column string) bool {
	for _, c := range m.EditableColumns {
		if c == column {
			return true
		}
	}
	return false
}

// Session представляет выданный сервером lease над манифестом.
// Сессия валидна только пока её BaseID совпадает с манифестом в памяти:
// после замещающего re-fetch манифеста сессию нужно переинициализировать.
type Session struct {
	ID     string `json:"id"`      // ID идентификатор сессии
	BaseID string `json:"base_id"` // BaseID база, к которой привязана сессия
	ETag   string `json:"etag"`    // ETag session-scoped concurrency tag; продвигается на каждом принятом батче
}

// VersionSummary представляет одну версию файла в lineage (только чтение)
type VersionSummary struct {
	Status          string `json:"status"`           // Status статус версии
	UploadID        string `json:"upload_id"`        // UploadID идентификатор загрузки версии
	Version         int    `json:"version"`          // Version порядковый номер версии
	RowCount        int    `json:"row_count"`        // RowCount общее число строк версии
	QuarantinedRows int    `json:"quarantined_rows"` // QuarantinedRows число строк в карантине
}
