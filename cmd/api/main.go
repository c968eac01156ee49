package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	_ "github.com/jhoicas/picking-api/docs"
	"github.com/jhoicas/picking-api/internal/application/inventory"
	"github.com/jhoicas/picking-api/internal/application/usecase"
	"github.com/jhoicas/picking-api/internal/domain/repository"
	"github.com/jhoicas/picking-api/internal/infrastructure/cache"
	"github.com/jhoicas/picking-api/internal/infrastructure/events"
	"github.com/jhoicas/picking-api/internal/infrastructure/memory"
	"github.com/jhoicas/picking-api/internal/infrastructure/metrics"
	"github.com/jhoicas/picking-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/picking-api/internal/interfaces/http"
	"github.com/jhoicas/picking-api/pkg/config"
	"github.com/jhoicas/picking-api/pkg/logger"
	"github.com/jhoicas/picking-api/pkg/tracing"
)

// storage agrupa los puertos de persistencia según el driver configurado.
type storage struct {
	txRunner inventory.TxRunner
	moves    repository.MoveRepository
	stock    repository.StockRepository
	audit    repository.AuditRepository
	products repository.ProductRepository // existencia de ítems al confirmar
	catalog  repository.ProductCatalog
	close    func()
}

// @title                       Picking API
// @version                     1.0
// @description                 Movimientos de bodega (PO, SO, TR, RT), confirmación por lotes y libro de stock.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: ningún token será aceptado")
	}

	shutdownTracing, err := tracing.Init(cfg.Tracing)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar tracing")
	}

	ctx := context.Background()
	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer store.close()

	var products inventory.ProductChecker = store.products
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = cache.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("conexión a Redis")
		}
		products = cache.NewProductCache(redisClient, store.products, cfg.Redis.ProductTTL, log.Component("product_cache"))
		log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.ProductTTL).Msg("caché de productos activa")
	}

	var publisher inventory.EventPublisher
	var kafkaPublisher *events.KafkaPublisher
	if cfg.Kafka.Enabled() {
		producer, err := events.NewSyncProducer(cfg.Kafka.Brokers)
		if err != nil {
			log.Fatal().Err(err).Strs("brokers", cfg.Kafka.Brokers).Msg("conexión a Kafka")
		}
		kafkaPublisher = events.NewKafkaPublisher(producer, cfg.Kafka.Topic, log.Component("kafka"))
		publisher = kafkaPublisher
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("publicación de eventos activa")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.NewRecorder(registry)

	moveUC := inventory.NewMoveUseCase(inventory.MoveDeps{
		TxRunner:  store.txRunner,
		Moves:     store.moves,
		Products:  products,
		Publisher: publisher,
		Observer:  recorder,
		Logger:    log.Component("inventory"),
	})
	stockUC := usecase.NewStockUseCase(store.stock)
	auditUC := usecase.NewAuditUseCase(store.audit)
	productUC := usecase.NewProductUseCase(store.catalog)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Picking API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		MoveUC:    moveUC,
		StockUC:   stockUC,
		AuditUC:   auditUC,
		ProductUC: productUC,
		JWTSecret: cfg.JWT.Secret,
		JWTIssuer: cfg.JWT.Issuer,
		Logger:    log.Component("http"),
		Gatherer:  registry,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if kafkaPublisher != nil {
		if err := kafkaPublisher.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar productor Kafka")
		}
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar cliente Redis")
		}
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado de tracing")
	}

	log.Info().Msg("aplicación detenida")
}

func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		store := memory.NewStore()
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar; registrar productos con PUT /api/products")
		products := store.Products()
		return &storage{
			txRunner: store,
			moves:    store.Moves(),
			stock:    store.Stock(),
			audit:    store.Audit(),
			products: products,
			catalog:  products,
			close:    func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB, cfg.App.Name)
	if err != nil {
		return nil, err
	}
	if cfg.Storage.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Msg("esquema verificado")
	}
	products := postgres.NewProductRepository(pool)
	return &storage{
		txRunner: postgres.NewTxRunner(pool, cfg.Storage.RetryAttempts, log.Component("postgres")),
		moves:    postgres.NewMoveRepository(pool),
		stock:    postgres.NewStockRepository(pool),
		audit:    postgres.NewAuditRepository(pool),
		products: products,
		catalog:  products,
		close:    pool.Close,
	}, nil
}
