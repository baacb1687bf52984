package app

import (
	"context"
	"net/http"
	"time"

	"github.com/iwtcode/galilAdapter/internal/adapters/handlers"
	"github.com/iwtcode/galilAdapter/internal/adapters/repositories/postgres"
	"github.com/iwtcode/galilAdapter/internal/config"
	"github.com/iwtcode/galilAdapter/internal/domain/entities"
	"github.com/iwtcode/galilAdapter/internal/interfaces"
	"github.com/iwtcode/galilAdapter/internal/middleware/logging"
	"github.com/iwtcode/galilAdapter/internal/middleware/swagger"
	"github.com/iwtcode/galilAdapter/internal/services/galil_service"
	"github.com/iwtcode/galilAdapter/internal/services/kafka"
	"github.com/iwtcode/galilAdapter/internal/usecases"

	"go.uber.org/fx"
)

// New создает новый экземпляр fx.App
func New() *fx.App {
	return fx.New(
		ConfigModule,
		LoggingModule,
		RepositoryModule,
		ProducerModule,
		ServiceModule,
		UsecaseModule,
		HttpServerModule,
		// Invoke-функции для запуска фоновых задач и хуков жизненного цикла
		fx.Invoke(InvokeRestoreConnections),
	)
}

// --- Модули FX ---

var ConfigModule = fx.Module("config_module",
	fx.Provide(config.LoadConfiguration),
)

func ProvideLogger(cfg *config.AppConfig) *logging.Logger {
	loggerCfg := &logging.Config{
		Enabled:    cfg.Logging.Enable,
		Level:      cfg.Logging.Level,
		LogsDir:    cfg.Logging.LogsDir,
		SavingDays: uint(cfg.Logging.SavingDays),
	}
	return logging.NewLogger(loggerCfg, "GalilServiceApp")
}

var LoggingModule = fx.Module("logging_module",
	fx.Provide(ProvideLogger),
)

var RepositoryModule = fx.Module("repository_module",
	fx.Provide(postgres.NewRepository),
)

var ProducerModule = fx.Module("producer_module",
	fx.Provide(kafka.NewKafkaProducer),
)

// ProvideServiceConfig собирает настройки пула подключений из конфигурации приложения.
func ProvideServiceConfig(cfg *config.AppConfig) galil_service.ServiceConfig {
	return galil_service.ServiceConfig{
		DefaultConfigPath: cfg.GalilConfigPath,
		LogLevel:          cfg.Logging.Level,
	}
}

var ServiceModule = fx.Module("service_module",
	fx.Provide(
		ProvideServiceConfig,
		galil_service.NewGalilService,
	),
)

var UsecaseModule = fx.Module("usecases_module",
	fx.Provide(usecases.NewUsecases),
)

func NewSwaggerConfig() *swagger.Config {
	return &swagger.Config{
		Enabled: true,
		Path:    "/swagger",
	}
}

var HttpServerModule = fx.Module("http_server_module",
	fx.Provide(
		NewSwaggerConfig,
		handlers.NewHandler,
		handlers.ProvideRouter,
	),
	fx.Invoke(InvokeHttpServer),
)

// InvokeRestoreConnections восстанавливает подключения и опросы при старте.
func InvokeRestoreConnections(lc fx.Lifecycle, galilSvc interfaces.Usecases, dbRepo interfaces.GalilControllerRepository, logger *logging.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Restoring connections from the database...")
			controllers, err := dbRepo.GetAll()
			if err != nil {
				logger.Error("Failed to get controller list from DB", "error", err)
				return nil // Не фатально, просто продолжаем
			}

			if len(controllers) == 0 {
				logger.Info("No saved connections found to restore.")
				return nil
			}

			for _, controller := range controllers {
				logger.Info("Attempting to restore connection", "sessionID", controller.SessionID, "endpoint", controller.EndpointURL)

				connInfo, _ := galilSvc.RestoreConnection(controller)

				if connInfo.IsHealthy {
					logger.Info("Connection restored successfully in pool", "sessionID", controller.SessionID)
				} else {
					logger.Warn("Connection restored in pool but is unhealthy.", "sessionID", controller.SessionID)
				}

				if controller.Status == entities.StatusPolled && controller.Interval > 0 {
					interval := time.Duration(controller.Interval) * time.Millisecond
					logger.Info("Starting restored polling", "sessionID", controller.SessionID, "interval", interval)
					if err := galilSvc.StartPolling(connInfo.SessionID, interval); err != nil {
						logger.Warn("Failed to start polling for restored session (it may be unhealthy)", "sessionID", controller.SessionID, "error", err)
					}
				}
			}
			return nil
		},
	})
}

// InvokeHttpServer запускает HTTP-сервер.
func InvokeHttpServer(lc fx.Lifecycle, cfg *config.AppConfig, h http.Handler, logger *logging.Logger) {
	serverAddr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      h,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("HTTP Server is starting", "address", serverAddr)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("Failed to start server", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server...")
			return server.Shutdown(ctx)
		},
	})
}
