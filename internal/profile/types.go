package profile

import (
	"encoding/json"
	"strings"
	"time"
)

// Payload сырой ответ maxframe API (поле data). Любой из вложенных блоков
// может отсутствовать.
type Payload struct {
	ChannelInfo *ChannelInfo         `json:"channel_info"`
	Metrics     *PublicationsMetrics `json:"publications_metrics"`
	AdsData     *AdsData             `json:"ads_data"`
	HistoryData *HistoryData         `json:"history_data"`
	ExtraData   *ExtraChannelData    `json:"extra_channel_data"`
}

// ChannelInfo основная информация о канале из API.
type ChannelInfo struct {
	MaxChannelID      int64   `json:"max_channel_id"`
	Title             string  `json:"title"`
	Name              string  `json:"name"`
	Avatar            string  `json:"avatar"`
	Description       string  `json:"description"`
	Link              string  `json:"link"`
	Subscribers       int64   `json:"subscribers"`
	ParticipantsCount int64   `json:"participants_count"`
	IsPublic          *bool   `json:"is_public"`
	Category          string  `json:"category"`
	Category2         string  `json:"category2"`
	IsFraud           bool    `json:"is_fraud"`
	IsFollowersFraud  bool    `json:"is_followers_fraud"`
	IsOwnerFraud      bool    `json:"is_owner_fraud"`
	ER                float64 `json:"er"`
	EngagementRate    float64 `json:"engagement_rate"`
	MentionsFrom      int64   `json:"mentions_from"`
	MentionedBy       int64   `json:"mentioned_by"`
	MentionsTo        int64   `json:"mentions_to"`
	Mentions          int64   `json:"mentions"`
}

// PublicationsMetrics метрики охватов.
type PublicationsMetrics struct {
	AvgViews1d  int64 `json:"avg_views_1d"`
	AvgViewsDay int64 `json:"avg_views_day"`
	AvgViews7d  int64 `json:"avg_views_7d"`
}

// ExtraChannelData дополнительные метрики канала.
type ExtraChannelData struct {
	Growth   *Growth `json:"growth"`
	ERMetric float64 `json:"er_metric"`
}

// Growth динамика подписчиков. API отдаёт значения то числом, то строкой
// вида "+1'278", поэтому поля сырые (см. ParseGrowth).
type Growth struct {
	H24   any `json:"h24"`
	Week  any `json:"week"`
	Month any `json:"month"`
}

// HistoryData исторические данные для графика: две независимые серии с
// собственными временными метками.
type HistoryData struct {
	History []HistoryEntry `json:"history"`
	Views   []ViewsEntry   `json:"views"`
}

// HistoryEntry точка истории подписчиков.
type HistoryEntry struct {
	Timestamp    Timestamp `json:"timestamp"`
	FollowersCnt int64     `json:"followers_cnt"`
	ChannelName  string    `json:"channel_name"`
	Avatar       string    `json:"avatar"`
}

// ViewsEntry точка истории просмотров.
type ViewsEntry struct {
	Timestamp Timestamp `json:"timestamp"`
	Views     int64     `json:"views"`
	Views48h  int64     `json:"views_48h"`
}

// AdsData рекламные данные канала.
type AdsData struct {
	Advertisers *AdsList `json:"advertisers"`
	Advertised  *AdsList `json:"advertised"`
}

// AdsList страница рекламных записей с общим количеством.
type AdsList struct {
	Data       []AdvertiserRaw `json:"data"`
	TotalCount int64           `json:"total_count"`
}

// AdvertiserRaw сырая рекламная запись. Одни и те же поля приходят под
// разными именами в зависимости от источника.
type AdvertiserRaw struct {
	LinkedTitle        string    `json:"linked_title"`
	Title              string    `json:"title"`
	Name               string    `json:"name"`
	LinkedAvatar       string    `json:"linked_avatar"`
	Avatar             string    `json:"avatar"`
	CntPub             int64     `json:"cnt_pub"`
	PostsCount         int64     `json:"posts_count"`
	Posts              int64     `json:"posts"`
	LinkedFollowersCnt int64     `json:"linked_followers_cnt"`
	Subscribers        int64     `json:"subscribers"`
	Subs               int64     `json:"subs"`
	DateLastPost       Timestamp `json:"date_last_post"`
	LinkedLink         string    `json:"linked_link"`
	Link               string    `json:"link"`
	IsFraud            bool      `json:"is_fraud"`
}

// Timestamp временная метка из API: миллисекунды эпохи либо строка даты.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON принимает число (мс эпохи), строку RFC3339 или "2006-01-02".
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}

	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		if str == "" {
			return nil
		}
		for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
			if parsed, err := time.Parse(layout, str); err == nil {
				t.Time = parsed
				return nil
			}
		}
		// Нераспознанная дата не валит весь ответ
		return nil
	}

	var ms float64
	if err := json.Unmarshal(b, &ms); err != nil {
		return err
	}
	t.Time = time.UnixMilli(int64(ms)).UTC()
	return nil
}

// ChannelProfile канонический профиль канала, собранный нормализатором.
// Его потребляют текстовый форматтер и генератор картинки.
type ChannelProfile struct {
	ChannelID        int64
	ChannelName      string
	ChannelAvatar    string
	Description      string
	Link             string
	Subscribers      *int64
	IsPublic         *bool
	Categories       []string
	IsSuspicious     bool
	Dynamics         Dynamics
	AvgViews         *int64
	Views24h         *int64
	Views48h         *int64
	ER               *float64
	Mentions         Mentions
	Advertisers      []AdvertiserRaw
	AdvertisersTotal int64
	Advertised       []AdvertiserRaw
	AdvertisedTotal  int64

	// ChartData сырые исторические данные, график строится при рендере
	ChartData *HistoryData

	// UpdatedAt проставляет диспетчер в момент запроса, не нормализатор
	UpdatedAt time.Time
}

// Dynamics прирост подписчиков за период; nil — данных нет.
type Dynamics struct {
	Today *int64
	Week  *int64
	Month *int64
}

// Mentions счётчики упоминаний.
type Mentions struct {
	From int64
	To   int64
}

// AdvertiserEntry рекламная запись в едином виде (см. MapAdvertisers).
type AdvertiserEntry struct {
	Name     string
	Avatar   string
	Posts    int64
	Subs     int64
	LastPost string
	Link     string
	IsFraud  bool
}

// ChartSeries четыре параллельные серии одинаковой длины (не более 14 дней)
// для графика. Пустые серии означают "графика нет".
type ChartSeries struct {
	Categories  []string
	Subscribers []int64
	Views24h    []int64
	Views48h    []int64
}
