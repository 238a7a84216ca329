package profile

import "sort"

// maxChartDays сколько последних дней попадает на график.
const maxChartDays = 14

type dayPoint struct {
	label    string
	subs     int64
	views    int64
	views48h int64
}

// BuildChartSeries сводит историю подписчиков и историю просмотров в
// выровненные по дням серии. Серии независимы и могут иметь разные метки
// времени: день группируется по календарной дате (UTC), отсутствующая в
// этот день метрика получает 0. Несколько записей одной метрики за день
// перезаписывают друг друга — побеждает последняя встреченная.
func BuildChartSeries(h *HistoryData) ChartSeries {
	series := ChartSeries{
		Categories:  []string{},
		Subscribers: []int64{},
		Views24h:    []int64{},
		Views48h:    []int64{},
	}

	if h == nil || (len(h.History) == 0 && len(h.Views) == 0) {
		return series
	}

	byDay := make(map[string]*dayPoint)

	point := func(t Timestamp) *dayPoint {
		d := t.UTC()
		key := d.Format("2006-01-02")
		p, ok := byDay[key]
		if !ok {
			p = &dayPoint{label: d.Format("02.01")}
			byDay[key] = p
		}
		return p
	}

	for _, item := range h.History {
		if item.Timestamp.IsZero() {
			continue
		}
		point(item.Timestamp).subs = item.FollowersCnt
	}

	for _, item := range h.Views {
		if item.Timestamp.IsZero() {
			continue
		}
		p := point(item.Timestamp)
		p.views = item.Views
		p.views48h = item.Views48h
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	if len(days) > maxChartDays {
		days = days[len(days)-maxChartDays:]
	}

	for _, day := range days {
		p := byDay[day]
		series.Categories = append(series.Categories, p.label)
		series.Subscribers = append(series.Subscribers, p.subs)
		series.Views24h = append(series.Views24h, p.views)
		series.Views48h = append(series.Views48h, p.views48h)
	}

	return series
}
