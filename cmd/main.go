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

	confirmBookingHandler "github.com/m04kA/SMC-VenueCalendar/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/m04kA/SMC-VenueCalendar/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-VenueCalendar/internal/api/handlers/delete_booking"
	exportBookingsHandler "github.com/m04kA/SMC-VenueCalendar/internal/api/handlers/export_bookings"
	getAdminCalendarHandler "github.com/m04kA/SMC-VenueCalendar/internal/api/handlers/get_admin_calendar"
	getCalendarHandler "github.com/m04kA/SMC-VenueCalendar/internal/api/handlers/get_calendar"
	getDayHandler "github.com/m04kA/SMC-VenueCalendar/internal/api/handlers/get_day"
	getStatsHandler "github.com/m04kA/SMC-VenueCalendar/internal/api/handlers/get_stats"
	listPendingBookingsHandler "github.com/m04kA/SMC-VenueCalendar/internal/api/handlers/list_pending_bookings"
	resetDateLimitHandler "github.com/m04kA/SMC-VenueCalendar/internal/api/handlers/reset_date_limit"
	searchBookingsHandler "github.com/m04kA/SMC-VenueCalendar/internal/api/handlers/search_bookings"
	setDateLimitHandler "github.com/m04kA/SMC-VenueCalendar/internal/api/handlers/set_date_limit"
	streamEventsHandler "github.com/m04kA/SMC-VenueCalendar/internal/api/handlers/stream_events"
	toggleNonWorkingDayHandler "github.com/m04kA/SMC-VenueCalendar/internal/api/handlers/toggle_non_working_day"
	"github.com/m04kA/SMC-VenueCalendar/internal/api/middleware"
	"github.com/m04kA/SMC-VenueCalendar/internal/config"
	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	"github.com/m04kA/SMC-VenueCalendar/internal/infra/docstore"
	"github.com/m04kA/SMC-VenueCalendar/internal/infra/docstore/memory"
	"github.com/m04kA/SMC-VenueCalendar/internal/infra/docstore/postgres"
	"github.com/m04kA/SMC-VenueCalendar/internal/infra/docstore/redisstore"
	"github.com/m04kA/SMC-VenueCalendar/internal/infra/mirror"
	bookingRepo "github.com/m04kA/SMC-VenueCalendar/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/SMC-VenueCalendar/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-VenueCalendar/internal/integrations/events"
	bookingsService "github.com/m04kA/SMC-VenueCalendar/internal/service/bookings"
	scheduleService "github.com/m04kA/SMC-VenueCalendar/internal/service/schedule"
	createBookingUC "github.com/m04kA/SMC-VenueCalendar/internal/usecase/create_booking"
	exportBookingsUC "github.com/m04kA/SMC-VenueCalendar/internal/usecase/export_bookings"
	getCalendarUC "github.com/m04kA/SMC-VenueCalendar/internal/usecase/get_calendar"
	"github.com/m04kA/SMC-VenueCalendar/pkg/logger"
	"github.com/m04kA/SMC-VenueCalendar/pkg/metrics"
)

const (
	mirrorReadyTimeout = 30 * time.Second
	sseHeartbeat       = 25 * time.Second
)

// documentStore хранилище документов, которым владеет процесс
type documentStore interface {
	docstore.Store
	Close() error
}

// businessMetrics бизнес-счётчики use case'ов и сервисов
type businessMetrics interface {
	IncBookingSubmitted()
	IncBookingRejected(reason string)
	IncBookingConfirmed()
	IncExport(result string)
}

// eventPublisher публикация доменных событий
type eventPublisher interface {
	PublishBookingSubmitted(ctx context.Context, b *domain.Booking) error
	PublishBookingConfirmed(ctx context.Context, b *domain.Booking) error
	Close() error
}

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

	log.Info("Starting SMC-VenueCalendar...")
	log.Info("Configuration loaded from config.toml (store=%s, timezone=%s, week_start=%s)",
		cfg.Store.Driver, cfg.Calendar.Timezone, cfg.Calendar.WeekStart)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var counters businessMetrics = metrics.Noop{}

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		counters = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	// Подключаемся к хранилищу документов
	store, closeBackend, err := openStore(appCtx, cfg, log)
	if err != nil {
		log.Fatal("Failed to open document store: %v", err)
	}

	// Публикация событий
	var publisher eventPublisher = events.NoopPublisher{}
	if cfg.Events.Enabled {
		publisher, err = events.NewPublisher(
			cfg.Events.URL,
			cfg.Events.Exchange,
			time.Duration(cfg.Events.PublishTimeout)*time.Second,
			log,
		)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		log.Info("Domain events enabled (exchange=%s)", cfg.Events.Exchange)
	}

	// Живое зеркало коллекций для администратора
	scheduleMirror := mirror.New(store, log)
	if err := scheduleMirror.Start(appCtx); err != nil {
		log.Fatal("Failed to start mirror: %v", err)
	}
	readyCtx, cancelReady := context.WithTimeout(appCtx, mirrorReadyTimeout)
	if err := scheduleMirror.WaitReady(readyCtx); err != nil {
		log.Warn("Mirror is not ready after %s, admin reads will wait: %v", mirrorReadyTimeout, err)
	}
	cancelReady()

	// Разовые чтения для посетителя
	freshReader := mirror.NewReader(store, log)

	location := cfg.Calendar.Location()
	weekStart := cfg.Calendar.FirstWeekday()

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(store, log)
	scheduleRepository := scheduleRepo.NewRepository(store, log)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		scheduleMirror,
		publisher,
		counters,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		scheduleMirror,
		location,
		log,
	)

	// Инициализируем use cases
	visitorCalendarUseCase := getCalendarUC.NewUseCase(
		freshReader,
		getCalendarUC.Options{Location: location, WeekStart: weekStart, RestrictPast: true},
		log,
	)
	adminCalendarUseCase := getCalendarUC.NewUseCase(
		scheduleMirror,
		getCalendarUC.Options{Location: location, WeekStart: weekStart, RestrictPast: false},
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		publisher,
		counters,
		location,
		log,
	)
	exportBookingsUseCase := exportBookingsUC.NewUseCase(scheduleMirror, counters, log)

	// Инициализируем handlers
	getCalendar := getCalendarHandler.NewHandler(visitorCalendarUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAdminCalendar := getAdminCalendarHandler.NewHandler(adminCalendarUseCase, log)
	getDay := getDayHandler.NewHandler(scheduleSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	setDateLimit := setDateLimitHandler.NewHandler(scheduleSvc, log)
	resetDateLimit := resetDateLimitHandler.NewHandler(scheduleSvc, log)
	toggleNonWorkingDay := toggleNonWorkingDayHandler.NewHandler(scheduleSvc, log)
	searchBookings := searchBookingsHandler.NewHandler(bookingSvc, log)
	listPendingBookings := listPendingBookingsHandler.NewHandler(bookingSvc, log)
	getStats := getStatsHandler.NewHandler(bookingSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(exportBookingsUseCase, log)
	streamEvents := streamEventsHandler.NewHandler(scheduleMirror, sseHeartbeat, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// VISITOR ROUTES
	// ============================================================

	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()

	// --- Календарь и даты ---
	admin.HandleFunc("/calendar", getAdminCalendar.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/days/{date}", getDay.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/days/{date}/limit", setDateLimit.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/days/{date}/limit", resetDateLimit.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/days/{date}/non-working/toggle", toggleNonWorkingDay.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	// search и pending регистрируются до {bookingId}
	admin.HandleFunc("/bookings/search", searchBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/pending", listPendingBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Статистика, выгрузка, поток изменений ---
	admin.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/export", exportBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/events", streamEvents.Handle).Methods(http.MethodGet)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	// Закрываем зеркало до сервера: SSE клиенты получат закрытый канал и отключатся
	scheduleMirror.Close()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	stopApp()

	if err := store.Close(); err != nil {
		log.Error("Failed to close document store: %v", err)
	}
	closeBackend()

	if err := publisher.Close(); err != nil {
		log.Error("Failed to close event publisher: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// openStore создает хранилище по store.driver. Второе значение закрывает соединение бэкенда.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (documentStore, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("ping database: %w", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		store := postgres.NewStore(db, cfg.Database.DSN(), log)
		if err := store.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return store, func() { _ = db.Close() }, nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		log.Info("Successfully connected to redis (addr=%s, db=%d, prefix=%s)",
			cfg.Redis.Addr, cfg.Redis.DB, cfg.Redis.Prefix)

		return redisstore.NewStore(client, cfg.Redis.Prefix, log), func() { _ = client.Close() }, nil

	default:
		log.Warn("Using in-memory document store, data is lost on restart")
		return memory.NewStore(log), func() {}, nil
	}
}
