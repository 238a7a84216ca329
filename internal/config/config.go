// Package config собирает настройки бота из переменных окружения.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Политики поведения, когда maxframe не знает канал.
const (
	// PolicyRegister — ответить пользователю, как зарегистрировать канал
	PolicyRegister = "register"
	// PolicyChat — сходить за базовой информацией в API мессенджера
	PolicyChat = "chat"
)

// Config настройки бота.
type Config struct {
	BotToken          string
	MaxframeAPIURL    string
	MaxframeSecretKey string
	RenderServiceURL  string
	ImageWidth        int
	LogoPath          string
	NotFoundPolicy    string
	AdminChatID       int64
	StatsFile         string
}

// Load читает конфигурацию из окружения. Обязателен только BOT_TOKEN,
// остальное имеет значения по умолчанию.
func Load() (*Config, error) {
	cfg := &Config{
		BotToken:          os.Getenv("BOT_TOKEN"),
		MaxframeAPIURL:    os.Getenv("MAXFRAME_API_URL"),
		MaxframeSecretKey: os.Getenv("MAXFRAME_SECRET_KEY"),
		RenderServiceURL:  os.Getenv("RENDER_SERVICE_URL"),
		ImageWidth:        1800,
		LogoPath:          os.Getenv("LOGO_PATH"),
		NotFoundPolicy:    PolicyRegister,
		StatsFile:         "data/stats.json",
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN не установлен")
	}

	if raw := os.Getenv("IMAGE_WIDTH"); raw != "" {
		width, err := strconv.Atoi(raw)
		if err != nil || width <= 0 {
			return nil, fmt.Errorf("неверный IMAGE_WIDTH: %q", raw)
		}
		cfg.ImageWidth = width
	}

	if raw := os.Getenv("NOT_FOUND_POLICY"); raw != "" {
		if raw != PolicyRegister && raw != PolicyChat {
			return nil, fmt.Errorf("неверный NOT_FOUND_POLICY: %q (ожидается %s или %s)", raw, PolicyRegister, PolicyChat)
		}
		cfg.NotFoundPolicy = raw
	}

	if raw := os.Getenv("ADMIN_CHAT_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("неверный ADMIN_CHAT_ID: %q", raw)
		}
		cfg.AdminChatID = id
	}

	if raw := os.Getenv("STATS_FILE"); raw != "" {
		cfg.StatsFile = raw
	}

	return cfg, nil
}
