package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/krolik-off/maxframe-bot/internal/config"
	"github.com/krolik-off/maxframe-bot/internal/format"
	"github.com/krolik-off/maxframe-bot/internal/profile"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

// handleForward обрабатывает пересланное из канала сообщение: лимит,
// запрос профиля, рендер и ответ. Возвращаемая ошибка — только то, что
// должен погасить внешний обработчик (отказ платформы в доступе).
func (b *Bot) handleForward(ctx context.Context, msg *tgbotapi.Message) error {
	requestID := uuid.NewString()[:8]
	channelID := msg.ForwardFromChat.ID
	userID := msg.From.ID

	log.Printf("[Handler] (%s) Форвард из канала: %d", requestID, channelID)

	if !b.limiter.Allow(userID) {
		log.Printf("[Handler] (%s) Превышен лимит запросов, пользователь %d", requestID, userID)
		b.stats.TrackRateLimit()
		b.sendMessage(msg.Chat.ID, "⏳ Слишком много запросов. Подождите минуту и попробуйте снова.")
		return nil
	}

	b.stats.TrackRequest(userID)

	statsData, err := b.profiles.ChannelProfile(ctx, channelID)
	if err != nil {
		// Транспортный сбой сворачивается в "не найдено"
		log.Printf("[Handler] (%s) ⚠️ Ошибка maxframe API: %v", requestID, err)
		statsData = nil
	}

	if statsData == nil {
		return b.handleNotFound(ctx, msg, channelID, requestID)
	}

	statsData.UpdatedAt = time.Now()

	if err := b.replyWithStats(ctx, msg.Chat.ID, statsData); err != nil {
		if isPermissionDenied(err) {
			return err
		}
		log.Printf("[Handler] (%s) ❌ Рендер не удался: %v", requestID, err)
		b.sendMessage(msg.Chat.ID, fmt.Sprintf("Информация о канале:\n%s", channelLabel(statsData, channelID)))
	}
	return nil
}

// handleNotFound отвечает на канал, которого нет в базе, согласно
// настроенной политике: подсказка о регистрации либо запасной поход в
// API мессенджера за базовой информацией.
func (b *Bot) handleNotFound(ctx context.Context, msg *tgbotapi.Message, channelID int64, requestID string) error {
	if b.notFoundPolicy == config.PolicyChat {
		log.Printf("[Handler] (%s) Пробуем запасной getChat", requestID)
		statsData, err := b.chatFallback(channelID)
		if err != nil {
			if isPermissionDenied(err) {
				return err
			}
			log.Printf("[Handler] (%s) ❌ Запасной путь не удался: %v", requestID, err)
			b.stats.TrackNotFound()
			b.sendMessage(msg.Chat.ID, "Не удалось получить информацию о канале")
			return nil
		}
		statsData.UpdatedAt = time.Now()

		// Усечённый профиль идёт тем же путём, что и полный: картинка
		// плюс текст, при сбое рендера — только текст
		if err := b.replyWithStats(ctx, msg.Chat.ID, statsData); err != nil {
			if isPermissionDenied(err) {
				return err
			}
			log.Printf("[Handler] (%s) ❌ Рендер запасного профиля не удался: %v", requestID, err)
			b.sendMessage(msg.Chat.ID, formatTextStats(statsData))
		}
		return nil
	}

	b.stats.TrackNotFound()
	b.sendMessage(msg.Chat.ID, `Канал не найден в базе maxframe.ru.

Зарегистрируйте канал на 💻 [maxframe.ru](http://maxframe.ru/), чтобы получать по нему статистику.`)
	return nil
}

// replyWithStats отправляет картинку и текстовую сводку.
func (b *Bot) replyWithStats(ctx context.Context, chatID int64, statsData *profile.ChannelProfile) error {
	image, err := b.renderer.RenderStatsImage(ctx, statsData)
	if err != nil {
		return err
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "stats.png", Bytes: image})
	if _, err := b.api.Send(photo); err != nil {
		return fmt.Errorf("ошибка отправки картинки: %w", err)
	}

	b.sendMessage(chatID, formatTextStats(statsData))
	return nil
}

// chatFallback собирает усечённый профиль из API мессенджера.
func (b *Bot) chatFallback(channelID int64) (*profile.ChannelProfile, error) {
	chat, err := b.api.GetChat(tgbotapi.ChatInfoConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: channelID},
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка getChat: %w", err)
	}

	p := &profile.ChannelProfile{
		ChannelID:   channelID,
		ChannelName: chat.Title,
		Description: chat.Description,
	}
	if chat.UserName != "" {
		isPublic := true
		p.IsPublic = &isPublic
		p.Link = "https://t.me/" + chat.UserName
	}

	if count, err := b.api.GetChatMembersCount(tgbotapi.ChatMemberCountConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: channelID},
	}); err == nil && count > 0 {
		subscribers := int64(count)
		p.Subscribers = &subscribers
	}

	return p, nil
}

func channelLabel(p *profile.ChannelProfile, channelID int64) string {
	if p.ChannelName != "" {
		return p.ChannelName
	}
	return fmt.Sprintf("%d", channelID)
}

// formatTextStats собирает текстовую сводку. Разделители исторические:
// счётчики с пробелами, дельты с апострофами — формат должен совпадать
// со старыми ответами бота.
func formatTextStats(data *profile.ChannelProfile) string {
	channelTitle := data.ChannelName
	if channelTitle == "" {
		channelTitle = "Канал"
	}

	channelLine := "📢   " + channelTitle
	if data.Link != "" {
		channelLine = fmt.Sprintf("📢   [%s](%s)", channelTitle, data.Link)
	}

	lines := []string{
		channelLine,
		"👥   " + format.Num(data.Subscribers),
		"",
		"📊   Подписчики:",
		"├ Сегодня: " + format.Delta(data.Dynamics.Today),
		"├ Неделя: " + format.Delta(data.Dynamics.Week),
		"└ Месяц: " + format.Delta(data.Dynamics.Month),
		"",
		"👁   Охваты:",
		"├ 24 часа: " + format.Num(data.Views24h),
		"└ 48 часов: " + format.Num(data.Views48h),
		"",
	}

	if data.ER != nil {
		lines = append(lines, "ER: "+format.Float(*data.ER)+"%")
	}

	lines = append(lines,
		"",
		"Данные из 🤖 [MaxFrame](https://max.ru/id026410900305_1_bot) бота.",
		"Сервис аналитики макс каналов - 💻 [maxframe.ru](http://maxframe.ru/)",
	)

	return strings.Join(lines, "\n")
}

// isPermissionDenied распознаёт отказ платформы в доступе: бот
// заблокирован пользователем или выгнан из чата.
func isPermissionDenied(err error) bool {
	if err == nil {
		return false
	}
	var tgErr *tgbotapi.Error
	if errors.As(err, &tgErr) {
		return tgErr.Code == 403
	}
	return strings.Contains(err.Error(), "Forbidden")
}
