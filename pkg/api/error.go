package api

// Коды ошибок, по которым клиент классифицирует отказ бэкенда
const (
	// ErrCodeAuthorizerMismatch структурно невосстановимое несоответствие прав/capability
	// Никогда не приводит к fallback: открытие редактора завершается с ошибкой
	ErrCodeAuthorizerMismatch = "authorizer_mismatch"

	// ErrCodeNotSupported бэкенд не поддерживает сессионный протокол редактирования
	ErrCodeNotSupported = "not_supported"

	// ErrCodeManifestNotFound read-model манифеста отсутствует на сервере
	ErrCodeManifestNotFound = "manifest_not_found"

	// ErrCodeStaleETag concurrency tag устарел: другая сессия сохранилась первой
	ErrCodeStaleETag = "stale_etag"
)

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // машинный код ошибки
	Message string `json:"message,omitempty"` // человекочитаемое описание
}
