package validation

import (
	"fmt"
)

// BaseIDAllowed определяет допустимые символы base id
// Только латинские буквы (a-z, A-Z), цифры (0-9), дефис (-), нижнее подчеркивание (_)
// Длина: 1-128 символов
const (
	// MaxBaseIDLen максимальная длина base id
	MaxBaseIDLen = 128
	// MaxPatchNotesLen максимальная длина patch notes при submission
	MaxPatchNotesLen = 2000
)

// ValidateBaseID проверяет, что идентификатор базовой версии файла
// безопасен для подстановки в путь запроса
func ValidateBaseID(baseID string) error {
	if baseID == "" {
		return fmt.Errorf("base id cannot be empty")
	}

	if len(baseID) > MaxBaseIDLen {
		return fmt.Errorf("base id must not exceed %d characters", MaxBaseIDLen)
	}

	for _, r := range baseID {
		if !isBaseIDRune(r) {
			return fmt.Errorf("base id can only contain letters (a-z, A-Z), numbers (0-9), hyphens (-), and underscores (_)")
		}
	}

	return nil
}

// ValidatePatchNotes проверяет ограничение длины описания правок
func ValidatePatchNotes(notes string) error {
	if len(notes) > MaxPatchNotesLen {
		return fmt.Errorf("patch notes must not exceed %d characters", MaxPatchNotesLen)
	}
	return nil
}

func isBaseIDRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_':
		return true
	}
	return false
}
