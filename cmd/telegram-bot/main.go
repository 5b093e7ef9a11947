package main

import (
	"context"
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/onewindow/helpdesk-go/internal/config"
	"github.com/onewindow/helpdesk-go/internal/model"
	"github.com/onewindow/helpdesk-go/internal/service"
	"github.com/onewindow/helpdesk-go/pkg/logger"
	"github.com/onewindow/helpdesk-go/pkg/redis"
	"github.com/panjf2000/ants/v2"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// updateWorkers concurrent telegram update handlers
const updateWorkers = 8

const startMessage = `Здравствуйте! Я бот службы поддержки.
Опишите вашу проблему одним сообщением - я постараюсь решить её сразу или создам заявку для оператора.

Сәлеметсіз бе! Мен қолдау қызметінің ботымын.
Мәселеңізді бір хабарламамен сипаттаңыз.`

const helpMessage = `Просто напишите ваш вопрос или опишите проблему (на русском или казахском).
Если в базе знаний есть готовый ответ - вы получите его сразу.
Иначе будет создана заявка, и оператор свяжется с вами.

/start - приветствие
/help - эта справка`

func main() {
	cfg, err := config.LoadConfig("configs/telegram-bot.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zapLogger, err := logger.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("telegram-bot service starting...")

	redisClient, err := redis.NewRedisClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("connect redis", zap.Error(err))
	}

	helpdeskClient := service.NewHelpdeskClient(cfg.Services.HelpdeskAPI, zapLogger)

	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		zapLogger.Fatal("create telegram bot", zap.Error(err))
	}
	zapLogger.Info("telegram bot authorized", zap.String("username", bot.Self.UserName))

	pool, err := ants.NewPool(updateWorkers)
	if err != nil {
		zapLogger.Fatal("create worker pool", zap.Error(err))
	}
	defer pool.Release()

	h := &botHandler{
		bot:    bot,
		client: helpdeskClient,
		redis:  redisClient,
		logger: zapLogger,
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	zapLogger.Info("telegram-bot service started", zap.Int("workers", updateWorkers))

	for update := range updates {
		if update.Message == nil || update.Message.Text == "" {
			continue
		}

		msg := update.Message
		if err := pool.Submit(func() { h.handleMessage(msg) }); err != nil {
			zapLogger.Error("submit update to worker pool", zap.Error(err))
		}
	}
}

// botHandler processes inbound telegram messages
type botHandler struct {
	bot    *tgbotapi.BotAPI
	client *service.HelpdeskClient
	redis  *goredis.Client
	logger *zap.Logger
}

func (h *botHandler) handleMessage(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start":
		h.reply(chatID, startMessage)
		return
	case "help":
		h.reply(chatID, helpMessage)
		return
	}

	h.logger.Info("support request received",
		zap.Int64("chatId", chatID),
		zap.Int("length", len(msg.Text)))

	h.saveHistory(chatID, msg.Text)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := h.client.Ingest(ctx, model.IngestRequest{Text: msg.Text})
	if err != nil {
		h.logger.Error("ingest call failed",
			zap.Int64("chatId", chatID),
			zap.Error(err))
		h.reply(chatID, "Извините, сервис временно недоступен. Попробуйте позже.")
		return
	}

	h.reply(chatID, formatOutcome(resp))
}

// formatOutcome renders the ingest outcome for the requester.
func formatOutcome(resp *model.IngestResponse) string {
	if resp.Status == model.StatusClosedAuto {
		return resp.Answer
	}

	text := fmt.Sprintf("Заявка создана и передана в отдел «%s».\nНомер заявки: %s\nПриоритет: %s",
		resp.Department, resp.TicketID, resp.Priority)
	if resp.SuggestedReply != "" {
		text += "\n\nПока вы ждёте оператора, попробуйте следующее:\n" + resp.SuggestedReply
	}
	return text
}

func (h *botHandler) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		h.logger.Error("send telegram reply",
			zap.Int64("chatId", chatID),
			zap.Error(err))
	}
}

// saveHistory keeps recent chat history per user, expiring after a day.
func (h *botHandler) saveHistory(chatID int64, text string) {
	ctx := context.Background()
	historyKey := fmt.Sprintf("chat_history:%d", chatID)
	h.redis.RPush(ctx, historyKey, text)
	h.redis.LTrim(ctx, historyKey, -20, -1)
	h.redis.Expire(ctx, historyKey, 24*time.Hour)
}
