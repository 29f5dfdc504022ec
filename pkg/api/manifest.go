package api

// ManifestResponse представляет манифест карантинного датасета
// Описывает форму и размер датасета для одной версии базового файла
type ManifestResponse struct {
	BaseID          string   `json:"base_id"`          // идентификатор базовой версии файла
	RootID          string   `json:"root_id"`          // идентификатор корня lineage (первая загрузка)
	UploadID        string   `json:"upload_id"`        // идентификатор загрузки, на которую указывает манифест
	ETag            string   `json:"etag"`             // concurrency tag текущего состояния датасета
	Columns         []string `json:"columns"`          // полный упорядоченный список колонок
	EditableColumns []string `json:"editable_columns"` // подмножество колонок, доступных для редактирования
	TotalRows       int      `json:"total_rows"`       // общее количество карантинных строк
	ShardCount      int      `json:"shard_count"`      // количество шардов на стороне сервера
}

// VersionSummary представляет одну версию файла в lineage
// Только для чтения: клиент никогда не изменяет записи lineage
type VersionSummary struct {
	Status          string `json:"status"`           // статус версии (например, "quarantined", "reprocessed")
	UploadID        string `json:"upload_id"`        // идентификатор загрузки этой версии
	Version         int    `json:"version"`          // порядковый номер версии
	RowCount        int    `json:"row_count"`        // общее количество строк в версии
	QuarantinedRows int    `json:"quarantined_rows"` // количество строк в карантине
}

// VersionsResponse представляет ответ со списком версий файла
type VersionsResponse struct {
	Versions []VersionSummary `json:"versions"`
}

// BackfillRequest представляет запрос на восстановление read-model манифеста
// Идемпотентный repair-вызов; тело ответа не специфицировано
type BackfillRequest struct {
	Pointer string `json:"pointer"` // указатель версии (обычно "latest")
}
