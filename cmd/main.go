package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/m04kA/SMC-TireSlotService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-TireSlotService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-TireSlotService/internal/api/handlers/get_available_slots"
	getDayBookingsHandler "github.com/m04kA/SMC-TireSlotService/internal/api/handlers/get_day_bookings"
	getFieldAvailabilityHandler "github.com/m04kA/SMC-TireSlotService/internal/api/handlers/get_field_availability"
	getWeeklyTemplateHandler "github.com/m04kA/SMC-TireSlotService/internal/api/handlers/get_weekly_template"
	updateWeeklyTemplateHandler "github.com/m04kA/SMC-TireSlotService/internal/api/handlers/update_weekly_template"
	"github.com/m04kA/SMC-TireSlotService/internal/api/middleware"
	"github.com/m04kA/SMC-TireSlotService/internal/config"
	templateCache "github.com/m04kA/SMC-TireSlotService/internal/infra/cache/template"
	"github.com/m04kA/SMC-TireSlotService/internal/infra/migrations"
	bookingRepo "github.com/m04kA/SMC-TireSlotService/internal/infra/storage/booking"
	templateRepo "github.com/m04kA/SMC-TireSlotService/internal/infra/storage/template"
	workOrderRepo "github.com/m04kA/SMC-TireSlotService/internal/infra/storage/workorder"
	crmClient "github.com/m04kA/SMC-TireSlotService/internal/integrations/crm"
	bookingsService "github.com/m04kA/SMC-TireSlotService/internal/service/bookings"
	templateService "github.com/m04kA/SMC-TireSlotService/internal/service/template"
	"github.com/m04kA/SMC-TireSlotService/internal/slotengine"
	createBookingUC "github.com/m04kA/SMC-TireSlotService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-TireSlotService/internal/usecase/get_available_slots"
	getFieldAvailabilityUC "github.com/m04kA/SMC-TireSlotService/internal/usecase/get_field_availability"
	"github.com/m04kA/SMC-TireSlotService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TireSlotService/pkg/logger"
	"github.com/m04kA/SMC-TireSlotService/pkg/metrics"
	"github.com/m04kA/SMC-TireSlotService/pkg/txmanager"
	"github.com/m04kA/SMC-TireSlotService/pkg/types"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-TireSlotService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	if cfg.Database.AutoMigrate {
		migrator, err := migrations.NewMigrator(db, log)
		if err != nil {
			log.Fatal("Failed to initialize migrator: %v", err)
		}
		if err := migrator.Run(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Без метрик обёртка работает как обычный *sql.DB
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	templateRepository := templateRepo.NewRepository(wrappedDB)
	workOrderRepository := workOrderRepo.NewRepository(wrappedDB)

	// Кеш шаблона в Redis (опционально)
	var (
		templateReader   templateService.TemplateReader = templateRepository
		cacheInvalidator templateService.CacheInvalidator
	)

	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			// Не фатально: кеш деградирует до чтения из БД
			log.Warn("Redis is unavailable at %s: %v", cfg.Redis.Addr, err)
		}
		cancel()

		cached := templateCache.NewCachedRepository(
			templateRepository,
			templateCache.NewRedisStore(redisClient),
			cfg.Redis.CacheTTL(),
			log,
		)
		templateReader = cached
		cacheInvalidator = cached
		log.Info("Template cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}

	// Инициализируем интеграционных клиентов
	catalog := crmClient.NewClient(
		cfg.CRM.URL,
		cfg.CRM.Token,
		time.Duration(cfg.CRM.Timeout)*time.Second,
		log,
	)
	log.Info("CRM client initialized (url=%s, timeout=%ds)", cfg.CRM.URL, cfg.CRM.Timeout)

	// Инициализируем сервисы
	templateSvc := templateService.NewService(
		templateReader,
		templateRepository,
		cacheInvalidator,
		txMgr,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		txMgr,
		log,
	)

	// Параметры генерации слотов
	policy := slotengine.Policy{
		DefaultTimeGap: cfg.Slots.DefaultTimeGap,
		CloseGuard:     cfg.Slots.CloseGuardMinutes,
	}
	fieldPolicy := slotengine.FieldPolicy{
		WorkdayStart:    types.MustParseMinute(cfg.FieldService.WorkdayStart),
		WorkdayEnd:      types.MustParseMinute(cfg.FieldService.WorkdayEnd),
		TravelBuffer:    cfg.FieldService.TravelBufferMinutes,
		MinFreeMinutes:  cfg.FieldService.MinFreeMinutes,
		SlotStep:        cfg.FieldService.SlotStepMinutes,
		DefaultDuration: cfg.FieldService.DefaultDurationMinutes,
	}

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		templateSvc,
		catalog,
		metricsCollector,
		policy,
		cfg.Slots.DefaultDurationMinutes,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		templateSvc,
		catalog,
		txMgr,
		policy,
		cfg.Slots.DefaultDurationMinutes,
		log,
	)

	getFieldAvailabilityUseCase := getFieldAvailabilityUC.NewUseCase(
		workOrderRepository,
		catalog,
		metricsCollector,
		fieldPolicy,
		getFieldAvailabilityUC.Labels{
			Today:    cfg.FieldService.LabelToday,
			Tomorrow: cfg.FieldService.LabelTomorrow,
			Next:     cfg.FieldService.LabelNext,
		},
		cfg.FieldService.DefaultLimit,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getFieldAvailability := getFieldAvailabilityHandler.NewHandler(getFieldAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getDayBookings := getDayBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getWeeklyTemplate := getWeeklyTemplateHandler.NewHandler(templateSvc, log)
	updateWeeklyTemplate := updateWeeklyTemplateHandler.NewHandler(templateSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		api.Use(middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst).Middleware)
		log.Info("Rate limit enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	registerRoutes(api, routeHandlers{
		GetAvailableSlots:    getAvailableSlots.Handle,
		GetFieldAvailability: getFieldAvailability.Handle,
		GetWeeklyTemplate:    getWeeklyTemplate.Handle,
		CreateBooking:        createBooking.Handle,
		UpdateWeeklyTemplate: updateWeeklyTemplate.Handle,
		GetDayBookings:       getDayBookings.Handle,
		CancelBooking:        cancelBooking.Handle,
	}, cfg.Server.AdminToken)

	if cfg.Server.AdminToken == "" {
		log.Warn("Admin token is not configured, admin routes will reject all requests")
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
