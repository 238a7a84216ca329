package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Client клиент сервиса рендера HTML в картинку (headless-браузер живёт
// в отдельном сервисе, бот только отправляет ему свёрстанный документ).
type Client struct {
	serviceURL string
	httpClient *http.Client
}

// NewClient создает клиент рендер-сервиса.
func NewClient(serviceURL string) *Client {
	return &Client{
		serviceURL: serviceURL,
		httpClient: &http.Client{
			// Дольше 30 секунд рендер ждать нельзя
			Timeout: 30 * time.Second,
		},
	}
}

type renderRequest struct {
	HTML      string `json:"html"`
	Width     int    `json:"width"`
	Type      string `json:"type"`
	Quality   int    `json:"quality"`
	WaitUntil string `json:"wait_until"`
}

// Render отправляет HTML рендер-сервису и возвращает PNG.
func (c *Client) Render(ctx context.Context, html string, width int) ([]byte, error) {
	if c.serviceURL == "" {
		return nil, fmt.Errorf("RENDER_SERVICE_URL не задан")
	}

	body, err := json.Marshal(renderRequest{
		HTML:      html,
		Width:     width,
		Type:      "png",
		Quality:   100,
		WaitUntil: "networkidle0",
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка маршалинга запроса: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serviceURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса к рендер-сервису: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("[Render] ❌ Рендер-сервис ответил %d: %s", resp.StatusCode, snippet)
		return nil, fmt.Errorf("рендер-сервис вернул статус %d", resp.StatusCode)
	}

	image, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения картинки: %w", err)
	}
	if len(image) == 0 {
		return nil, fmt.Errorf("рендер-сервис вернул пустой ответ")
	}

	return image, nil
}
