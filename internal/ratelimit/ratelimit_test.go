package ratelimit

import (
	"testing"
	"time"
)

// newTestLimiter лимитер без фоновой уборки и с управляемыми часами.
func newTestLimiter(max int, window time.Duration) (*Limiter, *time.Time) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	l := &Limiter{
		max:    max,
		window: window,
		hits:   make(map[int64][]time.Time),
		now:    func() time.Time { return now },
	}
	return l, &now
}

func TestAllowUpToMax(t *testing.T) {
	l, _ := newTestLimiter(10, time.Minute)

	for i := 0; i < 10; i++ {
		if !l.Allow(1) {
			t.Fatalf("запрос %d должен быть пропущен", i+1)
		}
	}
}

func TestEleventhRequestRejected(t *testing.T) {
	l, _ := newTestLimiter(10, time.Minute)

	for i := 0; i < 10; i++ {
		l.Allow(1)
	}
	if l.Allow(1) {
		t.Fatal("11-й запрос в окне должен быть отклонён")
	}
}

func TestWindowSlides(t *testing.T) {
	l, now := newTestLimiter(10, time.Minute)

	for i := 0; i < 10; i++ {
		l.Allow(1)
	}
	if l.Allow(1) {
		t.Fatal("лимит должен быть исчерпан")
	}

	// Через 61 секунду старые метки выпадают из окна
	*now = now.Add(61 * time.Second)
	if !l.Allow(1) {
		t.Fatal("запрос после выхода из окна должен быть пропущен")
	}
}

func TestUsersIndependent(t *testing.T) {
	l, _ := newTestLimiter(2, time.Minute)

	l.Allow(1)
	l.Allow(1)
	if l.Allow(1) {
		t.Fatal("первый пользователь исчерпал лимит")
	}
	if !l.Allow(2) {
		t.Fatal("лимит второго пользователя не должен зависеть от первого")
	}
}

func TestRejectedRequestNotCounted(t *testing.T) {
	l, now := newTestLimiter(2, time.Minute)

	l.Allow(1)
	l.Allow(1)
	for i := 0; i < 5; i++ {
		l.Allow(1) // отклонённые попытки окно не продлевают
	}

	*now = now.Add(61 * time.Second)
	if !l.Allow(1) {
		t.Fatal("отклонённые запросы не должны продлевать окно")
	}
}
