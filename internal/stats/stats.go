// Package stats ведёт счётчики использования бота в плоском JSON файле.
// Файл перезаписывается целиком после каждого события: падение между
// изменением и записью теряет максимум один инкремент.
package stats

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

// UserRecord когда пользователь впервые пришёл к боту.
type UserRecord struct {
	FirstSeen string  `json:"firstSeen"`
	Name      *string `json:"name"`
}

// DayStats разбивка счётчиков по дням.
type DayStats struct {
	Requests int `json:"requests"`
	Starts   int `json:"starts"`
	NotFound int `json:"notFound"`
}

type counters struct {
	Users            map[string]*UserRecord `json:"users"`
	TotalRequests    int                    `json:"totalRequests"`
	TotalStarts      int                    `json:"totalStarts"`
	TotalNotFound    int                    `json:"totalNotFound"`
	TotalRateLimited int                    `json:"totalRateLimited"`
	Daily            map[string]*DayStats   `json:"daily"`
}

// Store хранилище счётчиков. Потокобезопасно.
type Store struct {
	mu   sync.Mutex
	file string
	data counters
	now  func() time.Time
}

// NewStore создает хранилище поверх указанного файла.
func NewStore(file string) *Store {
	return &Store{
		file: file,
		data: counters{
			Users: make(map[string]*UserRecord),
			Daily: make(map[string]*DayStats),
		},
		now: time.Now,
	}
}

// Load читает счётчики с диска. Отсутствующий файл — не ошибка.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("ошибка чтения файла статистики: %w", err)
	}
	if len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		return fmt.Errorf("ошибка парсинга файла статистики: %w", err)
	}
	if s.data.Users == nil {
		s.data.Users = make(map[string]*UserRecord)
	}
	if s.data.Daily == nil {
		s.data.Daily = make(map[string]*DayStats)
	}
	return nil
}

// save переписывает файл целиком. Ошибка записи логируется и не
// останавливает бота — статистика вспомогательная.
func (s *Store) save() {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		log.Printf("[Stats] ❌ Ошибка маршалинга статистики: %v", err)
		return
	}
	if dir := filepath.Dir(s.file); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Printf("[Stats] ❌ Ошибка создания каталога: %v", err)
			return
		}
	}
	if err := os.WriteFile(s.file, raw, 0644); err != nil {
		log.Printf("[Stats] ❌ Ошибка записи статистики: %v", err)
	}
}

func (s *Store) today() string {
	return s.now().UTC().Format("2006-01-02")
}

func (s *Store) day() *DayStats {
	today := s.today()
	d, ok := s.data.Daily[today]
	if !ok {
		d = &DayStats{}
		s.data.Daily[today] = d
	}
	return d
}

// TrackStart регистрирует команду /start и первое появление пользователя.
func (s *Store) TrackStart(userID int64, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.TotalStarts++
	s.day().Starts++

	key := strconv.FormatInt(userID, 10)
	if _, ok := s.data.Users[key]; !ok {
		rec := &UserRecord{FirstSeen: s.today()}
		if name != "" {
			rec.Name = &name
		}
		s.data.Users[key] = rec
	}
	s.save()
}

// TrackRequest регистрирует запрос статистики канала.
func (s *Store) TrackRequest(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.TotalRequests++
	s.day().Requests++

	key := strconv.FormatInt(userID, 10)
	if _, ok := s.data.Users[key]; !ok {
		s.data.Users[key] = &UserRecord{FirstSeen: s.today()}
	}
	s.save()
}

// TrackNotFound регистрирует ответ "канал не найден".
func (s *Store) TrackNotFound() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.TotalNotFound++
	s.day().NotFound++
	s.save()
}

// TrackRateLimit регистрирует отклонённый по лимиту запрос.
func (s *Store) TrackRateLimit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.TotalRateLimited++
	s.save()
}

// Summary сводка для админской команды /stats.
type Summary struct {
	Users            int
	TotalRequests    int
	TotalStarts      int
	TotalNotFound    int
	TotalRateLimited int
	Today            DayStats
}

// Snapshot возвращает текущую сводку счётчиков.
func (s *Store) Snapshot() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := Summary{
		Users:            len(s.data.Users),
		TotalRequests:    s.data.TotalRequests,
		TotalStarts:      s.data.TotalStarts,
		TotalNotFound:    s.data.TotalNotFound,
		TotalRateLimited: s.data.TotalRateLimited,
	}
	if d, ok := s.data.Daily[s.today()]; ok {
		sum.Today = *d
	}
	return sum
}
