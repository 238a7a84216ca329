// Package render собирает HTML документ со статистикой канала и превращает
// его в картинку через внешний рендер-сервис.
package render

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"os"

	"github.com/krolik-off/maxframe-bot/internal/format"
	"github.com/krolik-off/maxframe-bot/internal/profile"
)

const (
	defaultWidth = 1800

	colorPositive = "#10b981"
	colorNegative = "#ef4444"
	colorMuted    = "#999"
	colorViews    = "#3b82f6"
	colorAccent   = "#7c3aed"
)

// rasterizer превращает готовый HTML в PNG.
type rasterizer interface {
	Render(ctx context.Context, html string, width int) ([]byte, error)
}

// Renderer собирает статистику канала в HTML и отдаёт его растеризатору.
type Renderer struct {
	client rasterizer
	width  int
	logo   template.URL
}

// NewRenderer создает рендерер. logoPath — путь к PNG логотипу для шапки,
// пустой путь или нечитаемый файл оставляют шапку без логотипа.
func NewRenderer(client *Client, width int, logoPath string) *Renderer {
	r := &Renderer{client: client, width: width}
	if r.width <= 0 {
		r.width = defaultWidth
	}
	if logoPath != "" {
		raw, err := os.ReadFile(logoPath)
		if err != nil {
			log.Printf("[Render] ⚠️ Логотип не прочитан: %v", err)
		} else {
			r.logo = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(raw))
		}
	}
	return r
}

// RenderStatsImage собирает документ по профилю и возвращает PNG.
// Ошибки рендера возвращаются вызывающему как есть: решение о запасном
// текстовом ответе принимает диспетчер.
func (r *Renderer) RenderStatsImage(ctx context.Context, p *profile.ChannelProfile) ([]byte, error) {
	html, err := r.ComposeHTML(p)
	if err != nil {
		return nil, err
	}
	return r.client.Render(ctx, html, r.width)
}

type statCard struct {
	Label string
	Value string
	Color string
}

type advRow struct {
	Name   string
	Avatar template.URL
	Subs   string
}

type advPanel struct {
	Title   string
	Rows    []advRow
	Shown   int
	Total   int64
	HasData bool
}

type chartView struct {
	Subscribers template.JS
	Views24h    template.JS
	Views48h    template.JS
	Categories  template.JS
}

type pageData struct {
	Width        int
	Logo         template.URL
	Date         string
	Avatar       template.URL
	ChannelName  string
	Categories   []string
	IsSuspicious bool
	Subs         string
	Cards        []statCard
	Metrics      []statCard
	Advertisers  advPanel
	Advertised   advPanel
	HasChart     bool
	Chart        chartView
}

// ComposeHTML строит HTML документ статистики. График добавляется только
// когда в истории есть хотя бы один день.
func (r *Renderer) ComposeHTML(p *profile.ChannelProfile) (string, error) {
	series := profile.BuildChartSeries(p.ChartData)

	data := pageData{
		Width:        r.width,
		Logo:         r.logo,
		Date:         format.Date(p.UpdatedAt),
		Avatar:       template.URL(p.ChannelAvatar),
		ChannelName:  truncateRunes(displayName(p.ChannelName), 30),
		Categories:   capCategories(p.Categories, 2),
		IsSuspicious: p.IsSuspicious,
		Subs:         compactOrDash(p.Subscribers),
		Cards: []statCard{
			deltaCard("Сегодня", p.Dynamics.Today),
			deltaCard("Неделя", p.Dynamics.Week),
			deltaCard("Месяц", p.Dynamics.Month),
		},
		Metrics: []statCard{
			metricCard("Охват 24ч", p.Views24h, colorViews),
			metricCard("Охват 48ч", p.Views48h, colorViews),
			erCard(p.ER),
		},
		Advertisers: buildPanel("Кто рекламировал", p.Advertisers, p.AdvertisersTotal),
		Advertised:  buildPanel("Кого рекламировал", p.Advertised, p.AdvertisedTotal),
		HasChart:    len(series.Categories) > 0,
	}

	if data.HasChart {
		chart, err := buildChartView(series)
		if err != nil {
			return "", err
		}
		data.Chart = chart
	}

	var buf bytes.Buffer
	if err := statsTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("ошибка сборки HTML: %w", err)
	}
	return buf.String(), nil
}

func displayName(name string) string {
	if name == "" {
		return "Название канала"
	}
	return name
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func capCategories(categories []string, max int) []string {
	if len(categories) > max {
		return categories[:max]
	}
	return categories
}

func compactOrDash(n *int64) string {
	if n == nil {
		return format.Dash
	}
	return format.Compact(*n)
}

// deltaCard карточка динамики: зелёная при росте или нуле, красная при
// падении, серый прочерк без данных. Минус типографский, как на сайте.
func deltaCard(label string, value *int64) statCard {
	if value == nil {
		return statCard{Label: label, Value: format.Dash, Color: colorMuted}
	}
	v := *value
	if v < 0 {
		return statCard{Label: label, Value: "−" + format.Compact(-v), Color: colorNegative}
	}
	return statCard{Label: label, Value: "+" + format.Compact(v), Color: colorPositive}
}

func metricCard(label string, value *int64, color string) statCard {
	if value == nil {
		return statCard{Label: label, Value: format.Dash, Color: colorMuted}
	}
	return statCard{Label: label, Value: format.Compact(*value), Color: color}
}

func erCard(er *float64) statCard {
	if er == nil {
		return statCard{Label: "ER", Value: format.Dash, Color: colorMuted}
	}
	return statCard{Label: "ER", Value: format.Float(*er) + "%", Color: colorAccent}
}

// buildPanel панель "топ 3" рекламных записей. В подвале общее количество
// из API, а когда его нет — длина списка.
func buildPanel(title string, raw []profile.AdvertiserRaw, total int64) advPanel {
	entries := profile.MapAdvertisers(raw)
	panel := advPanel{Title: title, HasData: len(entries) > 0}
	if !panel.HasData {
		return panel
	}

	shown := len(entries)
	if shown > 3 {
		shown = 3
	}
	for _, e := range entries[:shown] {
		panel.Rows = append(panel.Rows, advRow{
			Name:   e.Name,
			Avatar: template.URL(e.Avatar),
			Subs:   format.Compact(e.Subs),
		})
	}
	panel.Shown = shown
	panel.Total = total
	if panel.Total == 0 {
		panel.Total = int64(len(entries))
	}
	return panel
}

func buildChartView(series profile.ChartSeries) (chartView, error) {
	var view chartView
	for _, part := range []struct {
		dst *template.JS
		src any
	}{
		{&view.Subscribers, series.Subscribers},
		{&view.Views24h, series.Views24h},
		{&view.Views48h, series.Views48h},
		{&view.Categories, series.Categories},
	} {
		raw, err := json.Marshal(part.src)
		if err != nil {
			return chartView{}, fmt.Errorf("ошибка маршалинга данных графика: %w", err)
		}
		*part.dst = template.JS(raw)
	}
	return view, nil
}
