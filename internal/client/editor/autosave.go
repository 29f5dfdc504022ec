package editor

import (
	"sync"
	"time"
)

// AutosaveScheduler дебаунсит триггер сохранения: таймер перезапускается
// на каждом изменении (pendingCount, enabled) и срабатывает один раз
// за период покоя. Очереди нет: новая правка до срабатывания просто
// перезапускает ожидание.
type AutosaveScheduler struct {
	mu sync.Mutex

	save     func()
	interval time.Duration
	timer    *time.Timer
	enabled  bool
	stopped  bool
}

// NewAutosaveScheduler создает новый планировщик автосохранения.
// save вызывается без аргументов не более одного раза за период покоя
func NewAutosaveScheduler(interval time.Duration, save func()) *AutosaveScheduler {
	return &AutosaveScheduler{
		save:     save,
		interval: interval,
		enabled:  true,
	}
}

// Update реагирует на изменение количества несохранённых правок:
// отменяет текущий таймер и, если правки есть и планировщик включён,
// взводит новый на полный интервал
func (a *AutosaveScheduler) Update(pendingCount int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.cancelLocked()

	if a.stopped || !a.enabled || pendingCount == 0 {
		return
	}

	a.timer = time.AfterFunc(a.interval, a.fire)
}

// SetEnabled включает или выключает планировщик.
// Выключение гарантированно отменяет взведённый таймер
func (a *AutosaveScheduler) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.enabled = enabled
	if !enabled {
		a.cancelLocked()
	}
}

// Stop навсегда останавливает планировщик. После Stop сохранение
// не будет вызвано, даже если таймер уже успел сработать
func (a *AutosaveScheduler) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stopped = true
	a.cancelLocked()
}

// fire вызывает save, если планировщик ещё не остановлен
func (a *AutosaveScheduler) fire() {
	a.mu.Lock()
	if a.stopped || !a.enabled {
		a.mu.Unlock()
		return
	}
	a.timer = nil
	a.mu.Unlock()

	a.save()
}

// cancelLocked отменяет взведённый таймер; вызывается под mu
func (a *AutosaveScheduler) cancelLocked() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}
