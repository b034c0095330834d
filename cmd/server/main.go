package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/partassist/internal/adapter/ai/deepseek"
	"github.com/seu-repo/partassist/internal/adapter/cart"
	"github.com/seu-repo/partassist/internal/adapter/catalog"
	"github.com/seu-repo/partassist/internal/adapter/docs"
	"github.com/seu-repo/partassist/internal/adapter/http/fiber/middleware"
	"github.com/seu-repo/partassist/internal/adapter/orders"
	"github.com/seu-repo/partassist/internal/adapter/queue"
	"github.com/seu-repo/partassist/internal/adapter/storage/postgres"
	wsAdapter "github.com/seu-repo/partassist/internal/adapter/websocket"
	"github.com/seu-repo/partassist/internal/observability/telemetry"
	"github.com/seu-repo/partassist/internal/ports"
	"github.com/seu-repo/partassist/internal/service/chat"
	"github.com/seu-repo/partassist/internal/service/nlu"
	"github.com/seu-repo/partassist/internal/service/session"
	"github.com/seu-repo/partassist/pkg/config"
)

const (
	serviceName    = "partassist"
	serviceVersion = "v1.0.0"
)

func main() {
	// 1. Initialize Logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	logger.Info("Starting PartAssist",
		zap.String("service", serviceName),
		zap.String("version", serviceVersion),
	)

	// 2. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// 3. Initialize OpenTelemetry (Distributed Tracing)
	if cfg.OpenTelemetry.Enabled {
		tracerProvider, err := telemetry.InitTracer(serviceName, cfg.OpenTelemetry.Jaeger.Endpoint)
		if err != nil {
			logger.Fatal("Failed to initialize tracer", zap.Error(err))
		}
		defer func() {
			if err := tracerProvider.Shutdown(context.Background()); err != nil {
				logger.Error("Error shutting down tracer provider", zap.Error(err))
			}
		}()
	}

	// 4. Initialize Catalog (PostgreSQL when configured, built-in otherwise)
	var partCatalog ports.Catalog
	var db *gorm.DB
	if cfg.Database.URL != "" {
		db, err = postgres.NewConnection(cfg.Database.URL, logger)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer postgres.Close(db)
		if cfg.Database.AutoMigrate {
			if err := postgres.RunMigrations(db); err != nil {
				logger.Fatal("Failed to run migrations", zap.Error(err))
			}
		}
		partCatalog = postgres.NewCatalogRepository(db, logger)
	} else {
		logger.Info("No database configured, using built-in catalog")
		partCatalog = catalog.NewMemory()
	}

	// 5. Initialize Cart Store (Redis when configured)
	var cartStore ports.CartStore
	if cfg.Redis.URL != "" {
		redisCarts, err := cart.NewRedisStore(cfg.Redis.URL, cfg.Cart.TTL, logger)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisCarts.Close()
		cartStore = redisCarts
	} else {
		logger.Info("No Redis configured, carts are in-process only")
		cartStore = cart.NewMemoryStore()
	}

	// 6. Initialize Message Queue (NATS)
	var messageQueue ports.MessageQueue
	if cfg.NATS.URL != "" {
		messageQueue, err = queue.NewNATSQueue(cfg.NATS.URL, logger)
		if err != nil {
			logger.Fatal("Failed to connect to NATS", zap.Error(err))
		}
		defer messageQueue.Close()
	} else {
		logger.Info("No NATS configured, turn events disabled")
	}

	// 7. Initialize Intent Classification Pipeline
	var llm ports.IntentClassifier
	if cfg.DeepSeek.APIKey != "" {
		llm = deepseek.NewClient(cfg.DeepSeek.APIKey, cfg.DeepSeek.Model, cfg.DeepSeek.Endpoint, logger)
	} else {
		logger.Info("No DeepSeek API key, model fallback disabled")
	}
	pipeline := nlu.NewPipeline(llm, nlu.PipelineConfig{
		LLMTimeout:               cfg.NLU.LLMTimeout,
		ProblemDetectorBeforeLLM: cfg.NLU.ProblemDetectorBeforeLLM,
	}, logger)

	// 8. Initialize Services (Business Logic Layer)
	sessions := session.NewManager(logger)
	docsRetriever := docs.NewMemory()
	orderStore := orders.NewMemory()
	chatService := chat.NewService(pipeline, sessions, partCatalog, docsRetriever, cartStore, orderStore, messageQueue, logger)

	// 9. Initialize Chat WebSocket Handler
	chatHandler := wsAdapter.NewChatHandler(chatService, logger)

	// 10. Initialize Fiber HTTP Server
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		ServerHeader:          serviceName,
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	// Global Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.HTTP.AllowedOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	// Health Check Endpoints
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		if redisCarts, ok := cartStore.(*cart.RedisStore); ok {
			if err := redisCarts.Ping(); err != nil {
				return c.Status(503).SendString("Cart store not ready")
			}
		}
		if db != nil {
			if err := postgres.Ping(c.Context(), db); err != nil {
				return c.Status(503).SendString("Database not ready")
			}
		}
		return c.SendString("Ready")
	})

	// Metrics endpoint for Prometheus
	app.Get("/metrics", func(c *fiber.Ctx) error {
		handler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
		handler(c.Context())
		return nil
	})

	// Chat WebSocket route
	wsAdapter.SetupChatRoutes(app, chatHandler)

	// 11. Start Background Workers
	if messageQueue != nil {
		go startAnalyticsWorker(messageQueue, logger)
	}

	// 12. Start HTTP Server
	go func() {
		logger.Info("Starting HTTP Server", zap.Int("port", cfg.HTTP.Port))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
			logger.Fatal("HTTP Server failed", zap.Error(err))
		}
	}()

	// 13. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// startAnalyticsWorker tallies per-intent turn counts from the event
// stream and logs a summary every five minutes.
func startAnalyticsWorker(mq ports.MessageQueue, logger *zap.Logger) {
	logger.Info("Starting analytics worker")

	counts := make(map[string]int)
	events := make(chan chat.TurnEvent, 256)

	err := mq.Subscribe("chat.turns", func(msg []byte) error {
		var event chat.TurnEvent
		if err := json.Unmarshal(msg, &event); err != nil {
			return fmt.Errorf("decode turn event: %w", err)
		}
		select {
		case events <- event:
		default:
			// Dropping a sample beats blocking the subscription.
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to subscribe to turn events, analytics disabled", zap.Error(err))
		return
	}

	ticker := time.NewTicker(5 * time.Minute)
	for {
		select {
		case event := <-events:
			counts[string(event.Intent)]++
		case <-ticker.C:
			fields := make([]zap.Field, 0, len(counts))
			for intent, n := range counts {
				fields = append(fields, zap.Int(intent, n))
			}
			logger.Info("Intent distribution (5m)", fields...)
			counts = make(map[string]int)
		}
	}
}
