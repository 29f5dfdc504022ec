package api

// SubmitReprocessRequest представляет запрос на повторную обработку датасета
// Отправляется один раз после сохранения всех правок
type SubmitReprocessRequest struct {
	SessionID           string `json:"session_id"`              // идентификатор сессии редактирования
	IfMatchBaseUploadID string `json:"if_match_base_upload_id"` // upload_id манифеста; защита от конкурирующей submission
	PatchNotes          string `json:"patch_notes,omitempty"`   // опциональное описание внесённых правок
	SubmitToken         string `json:"submit_token"`            // "<session_id>:<base_id>", дедупликация повторных запросов
}

// SubmitReprocessResponse представляет результат запуска повторной обработки
type SubmitReprocessResponse struct {
	Status       string `json:"status"`                  // статус запуска (например, "accepted")
	ExecutionRef string `json:"execution_ref,omitempty"` // ссылка на запущенное выполнение pipeline
	NewID        string `json:"new_id,omitempty"`        // идентификатор созданной версии
}

// LegacyReprocessRequest представляет одношаговый legacy-запрос повторной обработки
// Используется в режиме совместимости: сервер получает полный набор строк с правками
type LegacyReprocessRequest struct {
	EditedRows []map[string]string `json:"edited_rows"` // полные строки с наложенными правками, без row_id
	PatchNotes string              `json:"patch_notes,omitempty"`
}

// CompatibilityUploadRequest представляет запасной путь "загрузить как новый файл"
// Применяется, когда даже legacy-endpoint недоступен
type CompatibilityUploadRequest struct {
	Filename string              `json:"filename"`
	Rows     []map[string]string `json:"rows"`
}
