package maxframe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/krolik-off/maxframe-bot/internal/profile"
)

// DefaultAPIURL адрес API maxframe.ru по умолчанию.
const DefaultAPIURL = "https://maxframe.ru/api/bot/channel-profile/"

// Client клиент API аналитики maxframe.ru.
type Client struct {
	apiURL     string
	secretKey  string
	httpClient *http.Client
}

// NewClient создает новый клиент maxframe.
func NewClient(apiURL, secretKey string) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return &Client{
		apiURL:    apiURL,
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type profileRequest struct {
	SecretKey string `json:"secret_key"`
	ChannelID string `json:"channel_id"`
}

type profileResponse struct {
	Data *profile.Payload `json:"data"`
}

// ChannelProfile запрашивает профиль канала. Возвращает (nil, nil), если
// канала нет в базе: туда же сворачиваются не-2xx статусы и пустой data —
// для пользователя это один и тот же случай. Ошибка возвращается только
// при транспортном сбое.
func (c *Client) ChannelProfile(ctx context.Context, channelID int64) (*profile.ChannelProfile, error) {
	if channelID < 0 {
		channelID = -channelID
	}
	normalizedID := strconv.FormatInt(channelID, 10)
	log.Printf("[MaxframeApi] Запрашиваем канал: %s", normalizedID)

	body, err := json.Marshal(profileRequest{
		SecretKey: c.secretKey,
		ChannelID: normalizedID,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка маршалинга запроса: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса к maxframe: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[MaxframeApi] ❌ HTTP ошибка: %d", resp.StatusCode)
		return nil, nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	var parsed profileResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("ошибка парсинга ответа: %w", err)
	}

	if parsed.Data == nil {
		log.Printf("[MaxframeApi] В ответе нет data")
		return nil, nil
	}

	result := profile.Normalize(parsed.Data)
	if result == nil {
		log.Printf("[MaxframeApi] Канал не найден в базе (пустые данные)")
		return nil, nil
	}

	if result.Subscribers != nil {
		log.Printf("[MaxframeApi] Подписчики: %d", *result.Subscribers)
	}

	return result, nil
}
