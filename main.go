package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/krolik-off/maxframe-bot/internal/bot"
	"github.com/krolik-off/maxframe-bot/internal/config"
	"github.com/krolik-off/maxframe-bot/internal/maxframe"
	"github.com/krolik-off/maxframe-bot/internal/render"
	"github.com/krolik-off/maxframe-bot/internal/stats"

	"github.com/joho/godotenv"
)

func setupLogger() *os.File {
	// Настраивает файл для логов
	file, err := os.OpenFile("logs.txt", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatal("Ошибка настройки логгера (см. setupLogger в main.go)")
	}
	return file
}

func main() {

	// Настройка логгера (запись в файл logs.txt)
	logFile := setupLogger()
	defer logFile.Close()
	log.SetOutput(logFile)
	log.Printf("Логгер успешно запущен!")

	// Загружаем переменные окружения (.env необязателен)
	if err := godotenv.Load(); err != nil {
		log.Printf("Файл .env не найден, используем окружение процесса")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Ошибка конфигурации: ", err)
	}

	log.Printf("Конфигурация загружена успешно")

	// Хранилище счётчиков использования
	store := stats.NewStore(cfg.StatsFile)
	if err := store.Load(); err != nil {
		log.Printf("⚠️ Статистика не загружена: %v", err)
	}

	// Клиенты внешних сервисов
	maxframeClient := maxframe.NewClient(cfg.MaxframeAPIURL, cfg.MaxframeSecretKey)
	renderer := render.NewRenderer(render.NewClient(cfg.RenderServiceURL), cfg.ImageWidth, cfg.LogoPath)

	telegramBot, err := bot.New(cfg, maxframeClient, renderer, store)
	if err != nil {
		log.Fatal("Ошибка создания бота: ", err)
	}

	ctx := context.Background()

	// Запуск с автоматическим переподключением: при падении long polling
	// бот перезапускается, а не умирает
	for {
		log.Printf("[Bot] Запускаем...")
		runBot(ctx, telegramBot)
		log.Printf("[Bot] Переподключение через 3 секунды...")
		time.Sleep(3 * time.Second)
	}
}

// runBot гасит панику цикла обработки, чтобы процесс пережил сбой
// платформы и переподключился.
func runBot(ctx context.Context, b *bot.Bot) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Bot] ❌ Паника в цикле обработки: %v", r)
		}
	}()
	b.Start(ctx)
}
