package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/grazy/inventoryapp/internal/config"
	"github.com/grazy/inventoryapp/internal/contract"
	"github.com/grazy/inventoryapp/internal/database"
	http_controllers "github.com/grazy/inventoryapp/internal/http"
	"github.com/grazy/inventoryapp/internal/scheduler"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill -2 is SIGINT, plain kill is SIGTERM; SIGKILL cannot be caught
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting inventory contract service v%s", version)
	log.Printf("Content authority: %s", contract.ContentAuthority)

	db, err := database.NewDatabase(cfg.Database.Path, database.ParseLogLevel(cfg.Database.LogLevel))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	routerCfg := http_controllers.RouterConfig{
		Database:     db,
		DatabasePath: cfg.Database.Path,
		Version:      version,
	}

	ctx, cancelSchedulers := context.WithCancel(context.Background())

	var schemaCheck *scheduler.SchemaCheckScheduler
	if cfg.SchemaCheck.Enabled {
		schemaCheck = scheduler.NewSchemaCheckScheduler(cfg.Database.Path, cfg.SchemaCheck)
		if err := schemaCheck.Start(ctx); err != nil {
			log.Fatalf("Failed to start schema check scheduler: %v", err)
		}
		// Run once so /health has a result before the first tick
		_ = schemaCheck.RunNow()
		routerCfg.SchemaCheck = schemaCheck
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		cancelSchedulers()
		if schemaCheck != nil {
			schemaCheck.Stop()
		}
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}

	Serve(router, cfg, onShutdown)
}
