package bot

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/krolik-off/maxframe-bot/internal/config"
	"github.com/krolik-off/maxframe-bot/internal/profile"
	"github.com/krolik-off/maxframe-bot/internal/ratelimit"
	"github.com/krolik-off/maxframe-bot/internal/stats"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// maxMessageAge сообщения старше отбрасываются: после перезапуска бота
// платформа доставляет старые апдейты повторно.
const maxMessageAge = 5 * time.Minute

// telegramAPI часть Bot API, которой пользуются обработчики.
type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetChat(config tgbotapi.ChatInfoConfig) (tgbotapi.Chat, error)
	GetChatMembersCount(config tgbotapi.ChatMemberCountConfig) (int, error)
}

// profileSource источник профилей каналов (maxframe API).
type profileSource interface {
	ChannelProfile(ctx context.Context, channelID int64) (*profile.ChannelProfile, error)
}

// imageRenderer генератор картинки статистики.
type imageRenderer interface {
	RenderStatsImage(ctx context.Context, p *profile.ChannelProfile) ([]byte, error)
}

// Bot принимает пересланные сообщения и отвечает статистикой канала.
type Bot struct {
	botAPI   *tgbotapi.BotAPI
	api      telegramAPI
	profiles profileSource
	renderer imageRenderer
	limiter  *ratelimit.Limiter
	stats    *stats.Store

	notFoundPolicy string
	adminChatID    int64
}

// New создает нового бота.
func New(cfg *config.Config, profiles profileSource, renderer imageRenderer, store *stats.Store) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания бота: %w", err)
	}

	return &Bot{
		botAPI:         api,
		api:            api,
		profiles:       profiles,
		renderer:       renderer,
		limiter:        ratelimit.New(10, time.Minute),
		stats:          store,
		notFoundPolicy: cfg.NotFoundPolicy,
		adminChatID:    cfg.AdminChatID,
	}, nil
}

// Start запускает цикл обработки апдейтов. Каждый апдейт обрабатывается в
// своей горутине, разделяемое состояние защищено внутри лимитера и
// хранилища статистики.
func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.botAPI.GetUpdatesChan(u)

	log.Printf("🤖 Бот запущен: @%s", b.botAPI.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.botAPI.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			go b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil {
		return
	}

	if age := time.Since(msg.Time()); age > maxMessageAge {
		log.Printf("[Handler] Игнорируем старое сообщение (возраст: %d сек)", int(age.Seconds()))
		return
	}

	// Бот отвечает только в личных чатах
	if !msg.Chat.IsPrivate() {
		return
	}

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			b.handleStart(msg)
		case "help":
			b.handleHelp(msg)
		case "stats":
			b.handleStats(msg)
		default:
			b.sendMessage(msg.Chat.ID, "❌ Неизвестная команда. Используйте /help для списка команд.")
		}
		return
	}

	if msg.ForwardFromChat != nil && msg.ForwardFromChat.IsChannel() {
		if err := b.handleForward(ctx, msg); err != nil {
			if isPermissionDenied(err) {
				// Бот заблокирован или лишён доступа к чату: ожидаемый
				// фон, пользователю и логу ошибок он не нужен
				return
			}
			log.Printf("[Handler] ❌ Необработанная ошибка: %v", err)
			b.sendMessage(msg.Chat.ID, "Произошла ошибка. Попробуйте позже.")
		}
	}
}

// handleStart обрабатывает команду /start
func (b *Bot) handleStart(msg *tgbotapi.Message) {
	if msg.From != nil {
		b.stats.TrackStart(msg.From.ID, msg.From.FirstName)
	}

	welcomeText := `👋 *Добро пожаловать в MaxFrame бот!*

Я показываю статистику каналов из сервиса аналитики maxframe.ru.

📋 *Как пользоваться:*
Перешлите мне любое сообщение из канала — я пришлю картинку со статистикой и текстовую сводку.

📊 *Что внутри:*
- подписчики и динамика за день, неделю и месяц
- охваты 24/48 часов и ER
- кто рекламировал канал и кого рекламировал он
- график за последние 14 дней

💻 Подробнее на [maxframe.ru](http://maxframe.ru/)`

	b.sendMessage(msg.Chat.ID, welcomeText)
}

// handleHelp обрабатывает команду /help
func (b *Bot) handleHelp(msg *tgbotapi.Message) {
	helpText := `📖 *Справка*

*/start* - начать работу с ботом
*/help* - показать эту справку

🔧 *Как получить статистику:*
Перешлите боту сообщение из канала. Бот найдёт канал в базе maxframe.ru и ответит картинкой и текстовой сводкой.

⚡ *Ограничения:*
- не более 10 запросов в минуту
- статистика есть только по каналам, зарегистрированным на maxframe.ru`

	b.sendMessage(msg.Chat.ID, helpText)
}

// handleStats отвечает админу сводкой счётчиков и графиком использования.
// Для остальных команда выглядит как неизвестная.
func (b *Bot) handleStats(msg *tgbotapi.Message) {
	if b.adminChatID == 0 || msg.Chat.ID != b.adminChatID {
		b.sendMessage(msg.Chat.ID, "❌ Неизвестная команда. Используйте /help для списка команд.")
		return
	}

	sum := b.stats.Snapshot()
	text := fmt.Sprintf(`📊 *Статистика бота*

Пользователей: %d
Запросов всего: %d
Стартов всего: %d
Не найдено: %d
Отклонено по лимиту: %d

*Сегодня:*
Запросов: %d
Стартов: %d
Не найдено: %d`,
		sum.Users, sum.TotalRequests, sum.TotalStarts, sum.TotalNotFound, sum.TotalRateLimited,
		sum.Today.Requests, sum.Today.Starts, sum.Today.NotFound)

	b.sendMessage(msg.Chat.ID, text)

	chart, err := b.stats.Chart(14)
	if err != nil {
		log.Printf("[Stats] ⚠️ График не построен: %v", err)
		return
	}
	photo := tgbotapi.NewPhoto(msg.Chat.ID, tgbotapi.FileBytes{Name: "usage.png", Bytes: chart})
	if _, err := b.api.Send(photo); err != nil {
		log.Printf("[Stats] ⚠️ Ошибка отправки графика: %v", err)
	}
}

// sendMessage отправляет сообщение, ошибки только логируются.
func (b *Bot) sendMessage(chatID int64, text string) tgbotapi.Message {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"

	message, err := b.api.Send(msg)
	if err != nil && !isPermissionDenied(err) {
		log.Printf("Ошибка отправки сообщения: %v", err)
	}

	return message
}
