package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/onewindow/helpdesk-go/internal/config"
	"github.com/onewindow/helpdesk-go/internal/events"
	"github.com/onewindow/helpdesk-go/internal/handler"
	"github.com/onewindow/helpdesk-go/internal/knowledge"
	"github.com/onewindow/helpdesk-go/internal/middleware"
	"github.com/onewindow/helpdesk-go/internal/notify"
	"github.com/onewindow/helpdesk-go/internal/oracle"
	"github.com/onewindow/helpdesk-go/internal/service"
	"github.com/onewindow/helpdesk-go/internal/store"
	"github.com/onewindow/helpdesk-go/pkg/logger"
	"github.com/onewindow/helpdesk-go/pkg/redis"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig("configs/helpdesk.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zapLogger, err := logger.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("helpdesk service starting...")

	ctx := context.Background()

	// Ticket persistence
	ticketStore, err := store.NewTicketStore(ctx, cfg.Postgres.URL, zapLogger)
	if err != nil {
		zapLogger.Fatal("connect postgres", zap.Error(err))
	}
	defer ticketStore.Close()

	// Answer cache (optional)
	var answerCache *store.AnswerCache
	if cfg.Redis.Host != "" {
		redisClient, err := redis.NewRedisClient(cfg.Redis)
		if err != nil {
			zapLogger.Fatal("connect redis", zap.Error(err))
		}
		answerCache = store.NewAnswerCache(redisClient, zapLogger)
	} else {
		zapLogger.Warn("redis not configured, answer cache disabled")
	}

	// Text oracle (optional, nil when unconfigured)
	textOracle := oracle.FromConfig(cfg.Oracle, zapLogger)
	if textOracle == nil {
		zapLogger.Info("text oracle disabled, deterministic fallbacks only")
	}

	// Knowledge base
	kb := knowledge.NewStore(zapLogger)
	kb.LoadDefault()
	if cfg.AI.KnowledgeBasePath != "" {
		if err := kb.LoadFile(cfg.AI.KnowledgeBasePath); err != nil {
			zapLogger.Fatal("load knowledge base", zap.Error(err))
		}
	}

	// Pipeline services
	oracleTimeout := cfg.Oracle.Timeout()
	classifierService := service.NewClassifierService(textOracle, oracleTimeout, zapLogger)
	replyService := service.NewReplyService(textOracle, oracleTimeout, zapLogger)
	translateService := service.NewTranslateService(textOracle, oracleTimeout, zapLogger)
	policy := service.AutoResolvePolicy{
		Threshold:        cfg.AI.Threshold(),
		SuggestThreshold: cfg.AI.SuggestThreshold(),
	}

	ingestService := service.NewIngestService(
		classifierService, replyService, translateService, kb, policy, zapLogger)

	// Operator feed
	sessionService := service.NewSessionService(zapLogger)

	// Outcome event stream (optional)
	var producer *events.Producer
	if cfg.Kafka.Enabled {
		producer = events.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, zapLogger)
		defer producer.Close()
	}

	// Notification channels
	notifiers := notify.NewRegistry(zapLogger)
	if cfg.Telegram.Enabled {
		tgNotifier, err := notify.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.OperatorChatID, zapLogger)
		if err != nil {
			zapLogger.Fatal("init telegram notifier", zap.Error(err))
		}
		if err := notifiers.Register(tgNotifier); err != nil {
			zapLogger.Fatal("register telegram notifier", zap.Error(err))
		}
	}
	if cfg.SMTP.Enabled {
		if err := notifiers.Register(notify.NewEmailNotifier(cfg.SMTP, zapLogger)); err != nil {
			zapLogger.Fatal("register email notifier", zap.Error(err))
		}
	}

	// Handlers
	ingestHandler := handler.NewIngestHandler(
		ingestService, ticketStore, answerCache, sessionService, producer, notifiers, zapLogger)
	ticketHandler := handler.NewTicketHandler(ticketStore, zapLogger)
	wsHandler := handler.NewWebSocketHandler(sessionService, zapLogger)

	// Routes
	r := gin.Default()
	r.Use(middleware.CORS())

	r.POST("/api/ingest", ingestHandler.Ingest)
	r.POST("/api/ai-help", ingestHandler.AIHelp)
	r.GET("/api/tickets", ticketHandler.List)
	r.GET("/api/tickets/:id", ticketHandler.Get)
	r.PATCH("/api/tickets/:id/status", ticketHandler.UpdateStatus)
	r.GET("/api/metrics", ticketHandler.Metrics)
	r.GET("/ws/operator", wsHandler.HandleWebSocket)
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":           "UP",
			"service":          cfg.Server.Name,
			"online_operators": sessionService.GetOnlineCount(),
			"notifiers":        notifiers.Count(),
		})
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	zapLogger.Info("helpdesk service started",
		zap.Int("port", cfg.Server.Port),
		zap.Int("knowledgeEntriesRu", kb.Count("ru")),
		zap.Int("knowledgeEntriesKz", kb.Count("kz")))

	if err := r.Run(addr); err != nil {
		zapLogger.Fatal("server failed", zap.Error(err))
	}
}
