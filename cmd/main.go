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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminBookingsHandler "github.com/marrymk/marketplace-service/internal/api/handlers/admin_bookings"
	adminProvidersHandler "github.com/marrymk/marketplace-service/internal/api/handlers/admin_providers"
	cancelBookingHandler "github.com/marrymk/marketplace-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/marrymk/marketplace-service/internal/api/handlers/create_booking"
	getDashboardHandler "github.com/marrymk/marketplace-service/internal/api/handlers/get_dashboard"
	getProviderHandler "github.com/marrymk/marketplace-service/internal/api/handlers/get_provider"
	getProviderBookingsHandler "github.com/marrymk/marketplace-service/internal/api/handlers/get_provider_bookings"
	getUnavailableDatesHandler "github.com/marrymk/marketplace-service/internal/api/handlers/get_unavailable_dates"
	listProvidersHandler "github.com/marrymk/marketplace-service/internal/api/handlers/list_providers"
	registerProviderHandler "github.com/marrymk/marketplace-service/internal/api/handlers/register_provider"
	reservedDatesHandler "github.com/marrymk/marketplace-service/internal/api/handlers/reserved_dates"
	setLanguageHandler "github.com/marrymk/marketplace-service/internal/api/handlers/set_language"
	updateBookingStatusHandler "github.com/marrymk/marketplace-service/internal/api/handlers/update_booking_status"
	updateProviderHandler "github.com/marrymk/marketplace-service/internal/api/handlers/update_provider"
	uploadMediaHandler "github.com/marrymk/marketplace-service/internal/api/handlers/upload_media"
	"github.com/marrymk/marketplace-service/internal/api/middleware"
	"github.com/marrymk/marketplace-service/internal/config"
	"github.com/marrymk/marketplace-service/internal/i18n"
	"github.com/marrymk/marketplace-service/internal/infra/cache"
	"github.com/marrymk/marketplace-service/internal/infra/media"
	bookingRepo "github.com/marrymk/marketplace-service/internal/infra/storage/booking"
	providerRepo "github.com/marrymk/marketplace-service/internal/infra/storage/provider"
	reservedDateRepo "github.com/marrymk/marketplace-service/internal/infra/storage/reserveddate"
	identityClient "github.com/marrymk/marketplace-service/internal/integrations/identity"
	bookingsService "github.com/marrymk/marketplace-service/internal/service/bookings"
	providersService "github.com/marrymk/marketplace-service/internal/service/providers"
	reservedDatesService "github.com/marrymk/marketplace-service/internal/service/reserveddates"
	createBookingUC "github.com/marrymk/marketplace-service/internal/usecase/create_booking"
	getUnavailableDatesUC "github.com/marrymk/marketplace-service/internal/usecase/get_unavailable_dates"
	"github.com/marrymk/marketplace-service/migrations"
	"github.com/marrymk/marketplace-service/pkg/dbmetrics"
	"github.com/marrymk/marketplace-service/pkg/logger"
	"github.com/marrymk/marketplace-service/pkg/metrics"
	"github.com/marrymk/marketplace-service/pkg/simpletxmanager"
	"github.com/marrymk/marketplace-service/pkg/txmanager"
)

func main() {
	// .env подхватывается до чтения конфигурации (секреты через окружение)
	_ = godotenv.Load()

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

	log.Info("Starting marketplace-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Применяем миграции до оборачивания пула в метрики
	if err := migrations.Apply(context.Background(), db); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Подключаемся к Redis
	cacheClient, err := cache.New(context.Background(), cfg.Redis.URL)
	if err != nil {
		log.Fatal("Failed to connect to redis: %v", err)
	}
	defer cacheClient.Close()
	log.Info("Successfully connected to redis (%s)", cfg.Redis.URL)

	langPrefs := cache.NewLanguagePreferences(cacheClient, time.Duration(cfg.Redis.PreferenceTTL)*time.Second)
	providerListCache := cache.NewProviderListCache(cacheClient, time.Duration(cfg.Redis.CacheTTL)*time.Second)

	// Хранилище медиафайлов
	mediaStorage, err := media.NewStorage(media.Config{
		S3Bucket:       cfg.Media.S3Bucket,
		S3Region:       cfg.Media.S3Region,
		AWSAccessKeyID: cfg.Media.AWSAccessKeyID,
		AWSSecretKey:   cfg.Media.AWSSecretKey,
		LocalDir:       cfg.Media.LocalDir,
		BaseURL:        cfg.Media.BaseURL,
		MaxUploadBytes: cfg.Media.MaxUploadBytes,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize media storage: %v", err)
	}

	// Клиент identity-провайдера
	idClient := identityClient.NewClient(
		cfg.Identity.URL,
		cfg.Identity.APIKey,
		time.Duration(cfg.Identity.Timeout)*time.Second,
		log,
	)
	log.Info("Identity client initialized (%s, timeout=%ds)", cfg.Identity.URL, cfg.Identity.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		providerRepository *providerRepo.Repository
		reservedRepository *reservedDateRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		providerRepository = providerRepo.NewRepository(wrappedDB)
		reservedRepository = reservedDateRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		providerRepository = providerRepo.NewRepository(db)
		reservedRepository = reservedDateRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Словарь локализованных сообщений
	bundle := i18n.NewBundle()

	// Инициализируем сервисы
	providersSvc := providersService.NewService(
		providerRepository,
		bookingRepository,
		providerListCache,
		log,
	)
	bookingsSvc := bookingsService.NewService(
		bookingRepository,
		providerRepository,
		log,
	)
	reservedDatesSvc := reservedDatesService.NewService(
		reservedRepository,
		providerRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		providerRepository,
		txMgr,
		log,
	)
	getUnavailableDatesUseCase := getUnavailableDatesUC.NewUseCase(
		bookingRepository,
		reservedRepository,
		providerRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, bundle, log)
	getUnavailableDates := getUnavailableDatesHandler.NewHandler(getUnavailableDatesUseCase, bundle, log)
	listProviders := listProvidersHandler.NewHandler(providersSvc, bundle, log)
	getProvider := getProviderHandler.NewHandler(providersSvc, bundle, log)
	getDashboard := getDashboardHandler.NewHandler(providersSvc, bundle, log)
	registerProvider := registerProviderHandler.NewHandler(providersSvc, bundle, log)
	updateProvider := updateProviderHandler.NewHandler(providersSvc, bundle, log)
	getProviderBookings := getProviderBookingsHandler.NewHandler(bookingsSvc, bundle, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingsSvc, bundle, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, bundle, log)
	uploadMedia := uploadMediaHandler.NewHandler(mediaStorage, bundle, log)
	setLanguage := setLanguageHandler.NewHandler(langPrefs, bundle, log)
	adminProviders := adminProvidersHandler.NewHandler(providersSvc, bundle, log)
	adminBookings := adminBookingsHandler.NewHandler(bookingsSvc, bundle, log)
	reservedDates := reservedDatesHandler.NewHandler(reservedDatesSvc, bundle, log)

	// Middleware
	auth := middleware.NewAuth(cfg.Identity.JWTSecret, idClient, bundle, log)
	locale := middleware.NewLocale(langPrefs, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации, язык из query/заголовка)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	public.Use(locale.Middleware)

	// Каталог провайдеров
	public.HandleFunc("/providers", listProviders.Handle).Methods(http.MethodGet)

	// Публичная страница провайдера
	public.HandleFunc("/providers/{slug}", getProvider.Handle).Methods(http.MethodGet)

	// Недоступные даты провайдера
	public.HandleFunc("/providers/{providerId}/unavailable-dates",
		getUnavailableDates.Handle).Methods(http.MethodGet)

	// Создание бронирования (клиенту не нужен аккаунт)
	public.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (Bearer-токен; язык с учетом сохраненного выбора)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(auth.Middleware, locale.Middleware)

	// --- Кабинет провайдера ---
	protected.HandleFunc("/dashboard/provider", getDashboard.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/providers", registerProvider.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/providers/{providerId}", updateProvider.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/providers/{providerId}/bookings",
		getProviderBookings.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Медиа и настройки ---
	protected.HandleFunc("/media", uploadMedia.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/preferences/language", setLanguage.Handle).Methods(http.MethodPut)

	// ============================================================
	// ADMIN ROUTES (Bearer-токен + роль admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(auth.Middleware, auth.RequireAdmin, locale.Middleware)

	admin.HandleFunc("/providers", adminProviders.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/providers/{providerId}/approval", adminProviders.HandleApproval).Methods(http.MethodPatch)
	admin.HandleFunc("/providers/{providerId}/active", adminProviders.HandleSetActive).Methods(http.MethodPatch)

	admin.HandleFunc("/bookings", adminBookings.Handle).Methods(http.MethodGet)

	admin.HandleFunc("/reserved-dates", reservedDates.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/reserved-dates", reservedDates.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/reserved-dates/{reservedDateId}", reservedDates.HandleGet).Methods(http.MethodGet)
	admin.HandleFunc("/reserved-dates/{reservedDateId}", reservedDates.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/reserved-dates/{reservedDateId}", reservedDates.HandleDelete).Methods(http.MethodDelete)

	// Раздача локально загруженных медиафайлов (когда S3 не настроен)
	if cfg.Media.S3Bucket == "" && cfg.Media.LocalDir != "" {
		r.PathPrefix("/uploads/").Handler(
			http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Media.LocalDir))))
		log.Info("Serving local uploads from %s", cfg.Media.LocalDir)
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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
