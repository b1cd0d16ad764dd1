// filepath: internal/cli/server.go
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"animehub/internal/api"
	"animehub/internal/api/handlers"
	"animehub/internal/audit"
	"animehub/internal/initconfig"
	"animehub/internal/logging"
	"animehub/internal/repository"
	"animehub/internal/services"
)

// runServer contains the logic to start the HTTP server with graceful shutdown.
func runServer() error {
	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}
	defer repo.Close()

	// --- Conditional Auto-migrate on startup ---
	if err := repo.EnsureSchemaBootstrapped(); err != nil {
		logging.Log.Errorf("Failed to bootstrap database: %v", err)
		return err
	}

	if err := repo.ValidateSchema(); err != nil {
		logging.Log.Errorf("CRITICAL DATABASE ERROR: %v", err)
		return err
	}

	// Service Initialization
	infoService := services.NewInfoService(Version, StartTime)
	userService := services.NewUserService(repo)
	mediaService := services.NewMediaService(repo)
	scheduleService := services.NewScheduleService(repo)
	visitorService := services.NewVisitorService(repo)

	// Auditor Initialization
	loggerAuditor := audit.NewLoggerAuditor(cfg.Logging.AuditEnabled)

	// A failed admin seed should not keep the API down; accounts can still
	// be added through the endpoint.
	if err := userService.InitializeAdminUser(cfg); err != nil {
		logging.Log.Errorf("Failed to ensure admin user: %v", err)
	}

	if initConfig != "" {
		logging.Log.Infof("Found init_config, running initialization from: %s", initConfig)
		initconfig.Run(userService, initConfig)
	}

	h := handlers.NewHandlers(
		infoService,
		userService,
		mediaService,
		scheduleService,
		visitorService,
		loggerAuditor,
		cfg,
	)

	r := api.SetupRouter(h)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	// --- Graceful Shutdown Setup ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logging.Log.Infof("Server starting on %s", serverAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-stop
	logging.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logging.Log.Info("Server exiting")
	return nil
}
