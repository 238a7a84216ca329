package profile

import (
	"testing"
	"time"
)

func ts(year int, month time.Month, day int) Timestamp {
	return Timestamp{time.Date(year, month, day, 12, 0, 0, 0, time.UTC)}
}

func TestNormalizeSubscriberPriority(t *testing.T) {
	// Явное поле подписчиков пустое, participants_count важнее истории
	data := &Payload{
		ChannelInfo: &ChannelInfo{
			Title:             "Канал",
			ParticipantsCount: 500,
		},
		HistoryData: &HistoryData{
			History: []HistoryEntry{
				{Timestamp: ts(2026, 8, 1), FollowersCnt: 100},
			},
		},
	}

	p := Normalize(data)
	if p == nil {
		t.Fatal("Normalize() = nil, want profile")
	}
	if p.Subscribers == nil || *p.Subscribers != 500 {
		t.Errorf("Subscribers = %v, want 500", p.Subscribers)
	}
}

func TestNormalizeSubscribersFromHistory(t *testing.T) {
	data := &Payload{
		HistoryData: &HistoryData{
			History: []HistoryEntry{
				{Timestamp: ts(2026, 8, 1), FollowersCnt: 100, ChannelName: "Из истории"},
				{Timestamp: ts(2026, 8, 2), FollowersCnt: 120, ChannelName: "Из истории"},
			},
		},
	}

	p := Normalize(data)
	if p == nil {
		t.Fatal("Normalize() = nil, want profile")
	}
	if p.Subscribers == nil || *p.Subscribers != 120 {
		t.Errorf("Subscribers = %v, want 120 (последняя запись истории)", p.Subscribers)
	}
	if p.ChannelName != "Из истории" {
		t.Errorf("ChannelName = %q, want %q", p.ChannelName, "Из истории")
	}
}

func TestNormalizeNotFound(t *testing.T) {
	tests := []struct {
		name string
		data *Payload
	}{
		{name: "nil payload", data: nil},
		{name: "empty payload", data: &Payload{}},
		{
			name: "empty blocks",
			data: &Payload{
				ChannelInfo: &ChannelInfo{},
				HistoryData: &HistoryData{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if p := Normalize(tt.data); p != nil {
				t.Errorf("Normalize() = %+v, want nil", p)
			}
		})
	}
}

func TestNormalizeFoundBySubscribersOnly(t *testing.T) {
	data := &Payload{
		ChannelInfo: &ChannelInfo{Subscribers: 10},
	}
	if p := Normalize(data); p == nil {
		t.Error("Normalize() = nil: подписчиков достаточно для найденного профиля")
	}
}

func TestNormalizeDynamics(t *testing.T) {
	data := &Payload{
		ChannelInfo: &ChannelInfo{Title: "Канал"},
		ExtraData: &ExtraChannelData{
			Growth: &Growth{
				H24:   "+1'278",
				Week:  float64(-500),
				Month: nil,
			},
		},
	}

	p := Normalize(data)
	if p == nil {
		t.Fatal("Normalize() = nil, want profile")
	}
	if p.Dynamics.Today == nil || *p.Dynamics.Today != 1278 {
		t.Errorf("Dynamics.Today = %v, want 1278", p.Dynamics.Today)
	}
	if p.Dynamics.Week == nil || *p.Dynamics.Week != -500 {
		t.Errorf("Dynamics.Week = %v, want -500", p.Dynamics.Week)
	}
	if p.Dynamics.Month != nil {
		t.Errorf("Dynamics.Month = %d, want nil", *p.Dynamics.Month)
	}
}

func TestNormalizeFraudAndCategories(t *testing.T) {
	data := &Payload{
		ChannelInfo: &ChannelInfo{
			Title:            "Канал",
			Category:         "Новости",
			IsFollowersFraud: true,
		},
	}

	p := Normalize(data)
	if p == nil {
		t.Fatal("Normalize() = nil, want profile")
	}
	if !p.IsSuspicious {
		t.Error("IsSuspicious = false: любой из фрод-флагов делает канал подозрительным")
	}
	if len(p.Categories) != 1 || p.Categories[0] != "Новости" {
		t.Errorf("Categories = %v, want [Новости]", p.Categories)
	}
}

func TestNormalizeViewsAndER(t *testing.T) {
	data := &Payload{
		ChannelInfo: &ChannelInfo{Title: "Канал", ER: 3.2},
		Metrics: &PublicationsMetrics{
			AvgViews1d: 1000,
			AvgViews7d: 2500,
		},
		ExtraData: &ExtraChannelData{}, // er_metric нулевой, проваливается к channel_info.er
	}

	p := Normalize(data)
	if p == nil {
		t.Fatal("Normalize() = nil, want profile")
	}
	if p.Views24h == nil || *p.Views24h != 1000 {
		t.Errorf("Views24h = %v, want 1000", p.Views24h)
	}
	if p.Views48h == nil || *p.Views48h != 2500 {
		t.Errorf("Views48h = %v, want 2500", p.Views48h)
	}
	if p.ER == nil || *p.ER != 3.2 {
		t.Errorf("ER = %v, want 3.2", p.ER)
	}
}

func TestNormalizeAds(t *testing.T) {
	data := &Payload{
		ChannelInfo: &ChannelInfo{Title: "Канал"},
		AdsData: &AdsData{
			Advertisers: &AdsList{
				Data:       []AdvertiserRaw{{Title: "Рекламодатель"}},
				TotalCount: 7,
			},
		},
	}

	p := Normalize(data)
	if p == nil {
		t.Fatal("Normalize() = nil, want profile")
	}
	if len(p.Advertisers) != 1 {
		t.Fatalf("Advertisers: %d записей, want 1", len(p.Advertisers))
	}
	if p.AdvertisersTotal != 7 {
		t.Errorf("AdvertisersTotal = %d, want 7", p.AdvertisersTotal)
	}
	if p.AdvertisedTotal != 0 || p.Advertised != nil {
		t.Errorf("Advertised должен быть пустым, got %v/%d", p.Advertised, p.AdvertisedTotal)
	}
}
