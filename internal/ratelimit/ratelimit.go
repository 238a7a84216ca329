// Package ratelimit ограничивает частоту запросов по пользователям:
// скользящее окно в памяти, без персистентности.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter скользящее окно по id пользователя. Обработчики апдейтов
// выполняются в отдельных горутинах, поэтому состояние под мьютексом.
type Limiter struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	hits   map[int64][]time.Time
	now    func() time.Time
}

// New создает лимитер: не более max запросов за window.
// Фоновая уборка каждые 5 минут выбрасывает пользователей без свежих
// запросов.
func New(max int, window time.Duration) *Limiter {
	l := &Limiter{
		max:    max,
		window: window,
		hits:   make(map[int64][]time.Time),
		now:    time.Now,
	}
	go l.sweep()
	return l
}

// Allow регистрирует запрос пользователя и сообщает, пропущен ли он.
// Отклоненный запрос в окно не записывается.
func (l *Limiter) Allow(userID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	fresh := l.trim(l.hits[userID], now)

	if len(fresh) >= l.max {
		l.hits[userID] = fresh
		return false
	}

	l.hits[userID] = append(fresh, now)
	return true
}

// trim оставляет только метки внутри окна.
func (l *Limiter) trim(stamps []time.Time, now time.Time) []time.Time {
	cutoff := now.Add(-l.window)
	fresh := stamps[:0]
	for _, ts := range stamps {
		if ts.After(cutoff) {
			fresh = append(fresh, ts)
		}
	}
	return fresh
}

func (l *Limiter) sweep() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		now := l.now()
		for userID, stamps := range l.hits {
			fresh := l.trim(stamps, now)
			if len(fresh) == 0 {
				delete(l.hits, userID)
			} else {
				l.hits[userID] = fresh
			}
		}
		l.mu.Unlock()
	}
}
