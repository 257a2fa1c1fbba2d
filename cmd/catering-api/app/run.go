package app

import (
	"context"
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/airgourmethellas/catering-api/configs"
	"github.com/airgourmethellas/catering-api/internal/adapter/cache"
	"github.com/airgourmethellas/catering-api/internal/adapter/http"
	"github.com/airgourmethellas/catering-api/internal/adapter/http/middleware"
	"github.com/airgourmethellas/catering-api/internal/adapter/kafka"
	"github.com/airgourmethellas/catering-api/internal/adapter/queue"
	"github.com/airgourmethellas/catering-api/internal/adapter/repo"
	"github.com/airgourmethellas/catering-api/internal/logging"
	"github.com/airgourmethellas/catering-api/internal/pricing"
	"github.com/airgourmethellas/catering-api/internal/usecase"
)

type App struct {
	Router *gin.Engine
}

func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logging.Init(cfg.App.Name, "./logs/app.log")

	// init database
	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		return nil, nil, err
	}
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)
	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.PingContext(ctx); err != nil {
		cancel()
		return nil, nil, err
	}
	cancel()

	logging.Base().Info("catering-api: starting up")

	// init redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, nil, err
	}

	// init rabbitmq
	conn, err := amqp091.Dial(cfg.Rabbit.URL)
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, nil, err
	}

	// repos + caches
	orderRepo := repo.NewMySQLOrderRepo(db)
	catalogRepo := repo.NewMySQLCatalogRepo(db)
	invoiceRepo := repo.NewMySQLInvoiceRepo(db)
	inventoryRepo := repo.NewMySQLInventoryRepo(db)
	outboxRepo := repo.NewMySQLOutboxRepo(db)
	idem := cache.NewRedisIdempotencyStore(rdb, cfg.Idempotency.TTL)
	sessionStore := cache.NewRedisSessionStore(rdb, cfg.Pricing.SessionTTL)
	catalogCache := cache.NewRedisCatalogCache(rdb, cfg.Pricing.CatalogCacheTTL)
	statusCache := cache.NewRedisOrderCache(rdb, cfg.Pricing.StatusCacheTTL)

	producer, err := queue.NewRabbitProducer(ch)
	if err != nil {
		return nil, nil, err
	}

	// usecases
	catalogUC := usecase.NewCatalog(catalogRepo, catalogCache)
	sessionsUC := usecase.NewSessions(sessionStore, catalogUC, pricing.Location(cfg.Pricing.DefaultLocation))
	submitUC := usecase.NewSubmitOrder(orderRepo, sessionStore, idem, outboxRepo, producer)
	invoiceUC := usecase.NewBuildInvoice(orderRepo, invoiceRepo)
	stockUC := usecase.NewDeductStock(orderRepo, inventoryRepo)

	// workers
	setupQueue(ch, invoiceUC, stockUC)
	setupKafkaListener(cfg, orderRepo, statusCache)

	// handlers + router + middleware
	sh := http.NewSessionHandler(sessionsUC)
	chd := http.NewCatalogHandler(catalogUC)
	oh := http.NewOrderHandler(submitUC, orderRepo)
	ih := http.NewInvoiceHandler(invoiceRepo)
	th := http.NewTokenHandler(cfg)
	authz := middleware.NewAuthz(cfg)
	router := http.NewRouter(sh, chd, oh, ih, th, authz)

	cleanup := func() {
		_ = db.Close()
		_ = rdb.Close()
		_ = ch.Close()
		_ = conn.Close()
	}

	return &App{Router: router}, cleanup, nil
}

func setupQueue(ch *amqp091.Channel, invoiceUC *usecase.BuildInvoice, stockUC *usecase.DeductStock) {
	ih := queue.NewInvoiceHandler(invoiceUC)
	sh := queue.NewInventoryHandler(stockUC)

	router := queue.NewRouter(ch, queue.WithPrefetch(50))
	router.Register(queue.InvoiceQueue, queue.JSONHandler[usecase.SubmittedMsg]{HandleFunc: ih.HandleSubmitted})
	router.Register(queue.InventoryQueue, queue.JSONHandler[usecase.SubmittedMsg]{HandleFunc: sh.HandleSubmitted})

	if err := router.Start(); err != nil {
		panic(err)
	}
}

func setupKafkaListener(cfg configs.Config, orderRepo *repo.MySQLOrderRepo, statusCache *cache.RedisOrderCache) {
	grp, err := kafka.NewGroup(cfg.Kafka.Brokers, cfg.Kafka.GroupID)
	if err != nil {
		panic(err)
	}

	h := kafka.NewPaymentStatusHandler(orderRepo, statusCache)
	consumer := kafka.NewConsumer(grp, []string{cfg.Kafka.PaymentsTopic}, h.Handle)
	consumer.Logger = logging.New("kafka")

	// Run in background (respect app context if you have one)
	go func() {
		if err := consumer.Start(context.Background()); err != nil {
			panic(err)
		}
	}()
}
