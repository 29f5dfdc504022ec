package config

import (
	"os"
	"strconv"
	"time"
)

// Значения по умолчанию для настраиваемых констант редактора
const (
	DefaultPageSize         = 500              // размер страницы при курсорной загрузке строк
	DefaultMaxRowsInMemory  = 10000            // потолок количества строк, удерживаемых в памяти
	DefaultMaxEditsPerBatch = 1000             // максимальный размер одного батча правок
	DefaultAutosaveDebounce = 2 * time.Second  // интервал debounce автосохранения
	DefaultRowHeight        = 1                // высота строки в единицах viewport
	DefaultOverscan         = 5                // запас строк сверх видимого диапазона
	DefaultFetchThreshold   = 50               // порог "near bottom" для подгрузки следующей страницы
)

// Config содержит настраиваемые константы сессии редактирования.
// Создаётся один раз при открытии редактора и далее не меняется.
type Config struct {
	AutosaveDebounce time.Duration // AutosaveDebounce период покоя перед автосохранением
	PageSize         int           // PageSize лимит строк на один rows/query
	MaxRowsInMemory  int           // MaxRowsInMemory потолок памяти row store
	MaxEditsPerBatch int           // MaxEditsPerBatch максимум правок в одном батче
	RowHeight        int           // RowHeight высота строки для расчёта видимого окна
	Overscan         int           // Overscan запас строк вокруг видимого окна
	FetchThreshold   int           // FetchThreshold порог срабатывания подгрузки
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() Config {
	return Config{
		PageSize:         DefaultPageSize,
		MaxRowsInMemory:  DefaultMaxRowsInMemory,
		MaxEditsPerBatch: DefaultMaxEditsPerBatch,
		AutosaveDebounce: DefaultAutosaveDebounce,
		RowHeight:        DefaultRowHeight,
		Overscan:         DefaultOverscan,
		FetchThreshold:   DefaultFetchThreshold,
	}
}

// FromEnv возвращает конфигурацию по умолчанию с переопределениями
// из переменных окружения ROWFIX_*
func FromEnv() Config {
	cfg := Default()

	cfg.PageSize = envInt("ROWFIX_PAGE_SIZE", cfg.PageSize)
	cfg.MaxRowsInMemory = envInt("ROWFIX_MAX_ROWS_IN_MEMORY", cfg.MaxRowsInMemory)
	cfg.MaxEditsPerBatch = envInt("ROWFIX_MAX_EDITS_PER_BATCH", cfg.MaxEditsPerBatch)
	cfg.RowHeight = envInt("ROWFIX_ROW_HEIGHT", cfg.RowHeight)
	cfg.Overscan = envInt("ROWFIX_OVERSCAN", cfg.Overscan)
	cfg.FetchThreshold = envInt("ROWFIX_FETCH_THRESHOLD", cfg.FetchThreshold)

	if v := os.Getenv("ROWFIX_AUTOSAVE_DEBOUNCE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.AutosaveDebounce = d
		}
	}

	return cfg
}

// envInt читает положительное целое из переменной окружения
// Невалидные значения игнорируются в пользу значения по умолчанию
func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
