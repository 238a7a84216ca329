package profile

import (
	"reflect"
	"testing"
	"time"
)

func TestBuildChartSeriesMergesByDay(t *testing.T) {
	// Подписчики за 1-е и 3-е, просмотры за 2-е и 3-е
	h := &HistoryData{
		History: []HistoryEntry{
			{Timestamp: ts(2026, 8, 1), FollowersCnt: 100},
			{Timestamp: ts(2026, 8, 3), FollowersCnt: 130},
		},
		Views: []ViewsEntry{
			{Timestamp: ts(2026, 8, 2), Views: 50, Views48h: 80},
			{Timestamp: ts(2026, 8, 3), Views: 60, Views48h: 90},
		},
	}

	series := BuildChartSeries(h)

	if got, want := series.Categories, []string{"01.08", "02.08", "03.08"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Categories = %v, want %v", got, want)
	}
	if got, want := series.Subscribers, []int64{100, 0, 130}; !reflect.DeepEqual(got, want) {
		t.Errorf("Subscribers = %v, want %v", got, want)
	}
	if got, want := series.Views24h, []int64{0, 50, 60}; !reflect.DeepEqual(got, want) {
		t.Errorf("Views24h = %v, want %v", got, want)
	}
	if got, want := series.Views48h, []int64{0, 80, 90}; !reflect.DeepEqual(got, want) {
		t.Errorf("Views48h = %v, want %v", got, want)
	}
}

func TestBuildChartSeriesCapsAtFourteenDays(t *testing.T) {
	h := &HistoryData{}
	for day := 1; day <= 20; day++ {
		h.History = append(h.History, HistoryEntry{
			Timestamp:    ts(2026, 8, day),
			FollowersCnt: int64(day),
		})
	}

	series := BuildChartSeries(h)

	if len(series.Categories) != 14 {
		t.Fatalf("дней на графике: %d, want 14", len(series.Categories))
	}
	if series.Categories[0] != "07.08" {
		t.Errorf("первый день = %q, want %q (оставляются самые свежие)", series.Categories[0], "07.08")
	}
	if series.Subscribers[13] != 20 {
		t.Errorf("последнее значение = %d, want 20", series.Subscribers[13])
	}
}

func TestBuildChartSeriesEmpty(t *testing.T) {
	for _, h := range []*HistoryData{nil, {}, {History: []HistoryEntry{}, Views: []ViewsEntry{}}} {
		series := BuildChartSeries(h)
		if len(series.Categories) != 0 || series.Categories == nil {
			t.Errorf("пустой вход должен давать пустые (не nil) серии, got %#v", series)
		}
		if len(series.Subscribers) != 0 || len(series.Views24h) != 0 || len(series.Views48h) != 0 {
			t.Errorf("серии должны быть пустыми, got %#v", series)
		}
	}
}

func TestBuildChartSeriesSameDayLastWins(t *testing.T) {
	day := time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC)
	h := &HistoryData{
		History: []HistoryEntry{
			{Timestamp: Timestamp{day.Add(2 * time.Hour)}, FollowersCnt: 100},
			{Timestamp: Timestamp{day.Add(20 * time.Hour)}, FollowersCnt: 150},
		},
	}

	series := BuildChartSeries(h)
	if len(series.Subscribers) != 1 {
		t.Fatalf("дней: %d, want 1", len(series.Subscribers))
	}
	if series.Subscribers[0] != 150 {
		t.Errorf("Subscribers[0] = %d, want 150 (последняя запись дня)", series.Subscribers[0])
	}
}

func TestBuildChartSeriesSkipsZeroTimestamps(t *testing.T) {
	h := &HistoryData{
		History: []HistoryEntry{
			{FollowersCnt: 100}, // без метки времени
			{Timestamp: ts(2026, 8, 1), FollowersCnt: 50},
		},
	}

	series := BuildChartSeries(h)
	if len(series.Categories) != 1 {
		t.Fatalf("дней: %d, want 1", len(series.Categories))
	}
}
