package api

import (
	"errors"
	"fmt"
	"net/http"

	pkgapi "github.com/iudanet/rowfix/pkg/api"
)

// Error представляет ошибку, возвращённую бэкендом
// Сохраняет статус и машинный код, по которым клиент выбирает
// между фатальным отказом, legacy fallback и обычной transient-ошибкой
type Error struct {
	Code       string // машинный код из ErrorResponse (может быть пустым)
	Message    string // человекочитаемое описание
	StatusCode int    // HTTP статус ответа
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server error (%d)", e.StatusCode)
}

// IsAuthorizerMismatch сообщает о структурно невосстановимом несоответствии
// прав или capability. Такая ошибка никогда не приводит к fallback:
// инициализация редактора завершается немедленно.
func IsAuthorizerMismatch(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.Code == pkgapi.ErrCodeAuthorizerMismatch {
		return true
	}
	return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
}

// IsCapabilityNotSupported сообщает, что бэкенд не поддерживает
// сессионный протокол (или read-model манифеста отсутствует).
// Этот класс ошибок переключает инициализацию на legacy-путь.
func IsCapabilityNotSupported(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.Code {
	case pkgapi.ErrCodeNotSupported, pkgapi.ErrCodeManifestNotFound:
		return true
	}
	return apiErr.StatusCode == http.StatusNotFound || apiErr.StatusCode == http.StatusNotImplemented
}

// IsStaleETag сообщает, что concurrency tag устарел: другая сессия
// сохранилась первой. Батч отклонён целиком, правки не применены.
func IsStaleETag(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.Code == pkgapi.ErrCodeStaleETag {
		return true
	}
	return apiErr.StatusCode == http.StatusConflict
}
