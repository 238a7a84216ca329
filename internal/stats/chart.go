package stats

import (
	"fmt"

	charts "github.com/vicanso/go-charts/v2"
)

// Chart рисует график использования бота за последние days дней:
// запросы, не найденные каналы и команды /start по дням.
func (s *Store) Chart(days int) ([]byte, error) {
	if days <= 0 {
		days = 14
	}

	s.mu.Lock()
	var labels []string
	requests := make([]float64, 0, days)
	notFound := make([]float64, 0, days)
	starts := make([]float64, 0, days)

	end := s.now().UTC()
	for i := days - 1; i >= 0; i-- {
		day := end.AddDate(0, 0, -i)
		key := day.Format("2006-01-02")
		labels = append(labels, day.Format("02.01"))

		var d DayStats
		if rec, ok := s.data.Daily[key]; ok {
			d = *rec
		}
		requests = append(requests, float64(d.Requests))
		notFound = append(notFound, float64(d.NotFound))
		starts = append(starts, float64(d.Starts))
	}
	s.mu.Unlock()

	p, err := charts.LineRender(
		[][]float64{requests, notFound, starts},
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data: labels,
		}),
		charts.TitleTextOptionFunc(fmt.Sprintf("Использование бота (%d дней)", days)),
		charts.LegendOptionFunc(charts.LegendOption{
			Data: []string{"Запросы", "Не найдено", "Старты"},
			Top:  charts.PositionTop,
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(1000),
		charts.HeightOptionFunc(500),
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка построения графика: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("ошибка рендера графика: %w", err)
	}
	return buf, nil
}
