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

	exportHistoryHandler "github.com/m04kA/SMC-ReservationCore/internal/api/handlers/export_reservation_history"
	getHistoryHandler "github.com/m04kA/SMC-ReservationCore/internal/api/handlers/get_reservation_history"
	getTimeSlotsHandler "github.com/m04kA/SMC-ReservationCore/internal/api/handlers/get_time_slots"
	getWorkingHoursHandler "github.com/m04kA/SMC-ReservationCore/internal/api/handlers/get_working_hours"
	getWorkingWindowHandler "github.com/m04kA/SMC-ReservationCore/internal/api/handlers/get_working_window"
	recordChangesHandler "github.com/m04kA/SMC-ReservationCore/internal/api/handlers/record_reservation_changes"
	updateWorkingHoursHandler "github.com/m04kA/SMC-ReservationCore/internal/api/handlers/update_working_hours"
	"github.com/m04kA/SMC-ReservationCore/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationCore/internal/config"
	"github.com/m04kA/SMC-ReservationCore/internal/domain"
	"github.com/m04kA/SMC-ReservationCore/internal/infra/cache"
	"github.com/m04kA/SMC-ReservationCore/internal/infra/export"
	changeRepo "github.com/m04kA/SMC-ReservationCore/internal/infra/storage/reservationchange"
	serviceRepo "github.com/m04kA/SMC-ReservationCore/internal/infra/storage/service"
	workingHoursRepo "github.com/m04kA/SMC-ReservationCore/internal/infra/storage/workinghours"
	"github.com/m04kA/SMC-ReservationCore/internal/integrations/supabase"
	historyService "github.com/m04kA/SMC-ReservationCore/internal/service/history"
	workingHoursService "github.com/m04kA/SMC-ReservationCore/internal/service/workinghours"
	getTimeSlotsUC "github.com/m04kA/SMC-ReservationCore/internal/usecase/get_time_slots"
	recordChangesUC "github.com/m04kA/SMC-ReservationCore/internal/usecase/record_reservation_changes"
	"github.com/m04kA/SMC-ReservationCore/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationCore/pkg/logger"
	"github.com/m04kA/SMC-ReservationCore/pkg/metrics"
	"github.com/m04kA/SMC-ReservationCore/pkg/txmanager"
)

// changeStore журнал изменений: чтение для истории, запись для use case
type changeStore interface {
	historyService.ChangeRepository
	recordChangesUC.ChangeRepository
}

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-ReservationCore...")
	log.Info("Configuration loaded from %s (storage=%s)", configPath, cfg.Storage.Driver)

	// Инициализируем метрики (если включены); nil коллектор - метрики выключены
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище
	var (
		hoursSource  cache.WorkingHoursSource
		labelsSource cache.ServiceLabelsSource
		changes      changeStore
		txMgr        recordChangesUC.TransactionManager
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverSupabase:
		client, err := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.Key, log)
		if err != nil {
			log.Fatal("Failed to create supabase client: %v", err)
		}
		log.Info("Supabase storage initialized (url=%s)", cfg.Supabase.URL)

		hoursSource = client
		labelsSource = client
		changes = client
		txMgr = client

	default:
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

		var wrappedDB *dbmetrics.DB
		if cfg.Metrics.Enabled {
			wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
			log.Info("Database metrics collection started")
		} else {
			wrappedDB = dbmetrics.Wrap(db, nil)
		}

		hoursSource = workingHoursRepo.NewRepository(wrappedDB)
		labelsSource = serviceRepo.NewRepository(wrappedDB)
		changes = changeRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	}

	// Кеш поверх хранилища (если включен)
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			// Кеш деградирует до прямых запросов в хранилище
			log.Warn("Redis is unavailable at %s, cache will fall through: %v", cfg.Redis.Addr, err)
		} else {
			log.Info("Redis cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
		}
		cancel()

		hoursSource = cache.NewWorkingHours(hoursSource, rdb, cfg.Redis.TTLDuration(), metricsCollector, log)
		labelsSource = cache.NewServiceLabels(labelsSource, rdb, cfg.Redis.TTLDuration(), metricsCollector, log)
	}

	// Выгрузка истории
	location, err := time.LoadLocation(cfg.Export.Timezone)
	if err != nil {
		log.Warn("Unknown export timezone %q, using UTC: %v", cfg.Export.Timezone, err)
		location = time.UTC
	}
	historyExporter := export.NewHistoryWriter(location)

	// Инициализируем сервисы
	hoursSvc := workingHoursService.NewService(hoursSource, metricsCollector, log)
	historySvc := historyService.NewService(changes, labelsSource, historyExporter, metricsCollector, log)

	// Инициализируем use cases
	getTimeSlotsUseCase := getTimeSlotsUC.NewUseCase(hoursSource, cfg.Slots.DefaultStep, metricsCollector, log)
	recordChangesUseCase := recordChangesUC.NewUseCase(changes, txMgr, metricsCollector, log)

	// Инициализируем handlers
	getTimeSlots := getTimeSlotsHandler.NewHandler(getTimeSlotsUseCase, log)
	getWorkingWindow := getWorkingWindowHandler.NewHandler(hoursSvc, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(hoursSvc, log)
	updateWorkingHours := updateWorkingHoursHandler.NewHandler(hoursSvc, log)
	getHistory := getHistoryHandler.NewHandler(historySvc, log)
	exportHistory := exportHistoryHandler.NewHandler(historySvc, log)
	recordChanges := recordChangesHandler.NewHandler(recordChangesUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recoverer(log))
	r.Use(middleware.RequestLogger(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Рабочие часы и слоты ---
	api.HandleFunc("/instances/{instanceId}/time-slots", getTimeSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/instances/{instanceId}/working-window", getWorkingWindow.Handle).Methods(http.MethodGet)
	api.HandleFunc("/instances/{instanceId}/working-hours", getWorkingHours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/instances/{instanceId}/working-hours", updateWorkingHours.Handle).Methods(http.MethodPut)

	// --- Журнал изменений бронирований ---
	api.HandleFunc("/reservations/{reservationId}/history", getHistory.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}/history/export", exportHistory.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}/changes", recordChanges.Handle).Methods(http.MethodPost)

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
		log.Info("Starting server on %s (default slot step %d min, window fallback %s-%s)",
			addr, cfg.Slots.DefaultStep, domain.FallbackWindowMin, domain.FallbackWindowMax)
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
