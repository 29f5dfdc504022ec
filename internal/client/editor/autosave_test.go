package editor

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAutosaveScheduler_FiresAfterQuietPeriod(t *testing.T) {
	var fired atomic.Int32
	scheduler := NewAutosaveScheduler(20*time.Millisecond, func() {
		fired.Add(1)
	})
	defer scheduler.Stop()

	scheduler.Update(1)

	assert.Eventually(t, func() bool {
		return fired.Load() == 1
	}, time.Second, 5*time.Millisecond)

	// Одно срабатывание за период покоя: без новых правок таймер не взводится
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestAutosaveScheduler_EditResetsTimer(t *testing.T) {
	var fired atomic.Int32
	scheduler := NewAutosaveScheduler(50*time.Millisecond, func() {
		fired.Add(1)
	})
	defer scheduler.Stop()

	// Каждая правка перезапускает ожидание: пока правки чаще интервала,
	// сохранение не срабатывает
	for i := 0; i < 5; i++ {
		scheduler.Update(i + 1)
		time.Sleep(15 * time.Millisecond)
	}
	assert.Equal(t, int32(0), fired.Load())

	assert.Eventually(t, func() bool {
		return fired.Load() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestAutosaveScheduler_ZeroPendingCancelsTimer(t *testing.T) {
	var fired atomic.Int32
	scheduler := NewAutosaveScheduler(20*time.Millisecond, func() {
		fired.Add(1)
	})
	defer scheduler.Stop()

	scheduler.Update(3)
	scheduler.Update(0) // правки сохранены вручную

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestAutosaveScheduler_Disabled(t *testing.T) {
	var fired atomic.Int32
	scheduler := NewAutosaveScheduler(20*time.Millisecond, func() {
		fired.Add(1)
	})
	defer scheduler.Stop()

	scheduler.SetEnabled(false)
	scheduler.Update(1)

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())

	// Включение обратно само по себе таймер не взводит
	scheduler.SetEnabled(true)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())

	// Следующая правка после включения — взводит
	scheduler.Update(1)
	assert.Eventually(t, func() bool {
		return fired.Load() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestAutosaveScheduler_StopPreventsFire(t *testing.T) {
	var fired atomic.Int32
	scheduler := NewAutosaveScheduler(20*time.Millisecond, func() {
		fired.Add(1)
	})

	scheduler.Update(1)
	scheduler.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())

	// После Stop планировщик мёртв: Update ничего не взводит
	scheduler.Update(5)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}
