package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
	"github.com/sangkips/confreg-invoicing/internal/application/service"
	"github.com/sangkips/confreg-invoicing/internal/config"
	"github.com/sangkips/confreg-invoicing/internal/logger"
	"github.com/sangkips/confreg-invoicing/internal/presentation/http/handler"
	"github.com/sangkips/confreg-invoicing/internal/presentation/http/routes"
	"github.com/sangkips/confreg-invoicing/pkg/fira"
)

var log = logging.MustGetLogger("main")

func main() {
	cfg := config.Load()

	logCloser := logger.Setup(cfg.Log)
	defer logCloser.Close()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	firaClient := fira.NewClient(cfg.Fira.ClientConfig())
	if !firaClient.IsConfigured() {
		log.Warning("FIRA_API_KEY is not set, invoices will be built but not sent")
	}

	invoiceService := service.NewInvoiceService(firaClient, cfg.Fira.Currency)

	handlers := &routes.Handlers{
		Invoice: handler.NewInvoiceHandler(invoiceService),
		Landing: handler.NewLandingHandler(nil),
	}

	router := routes.Setup(handlers, &routes.Deps{Cfg: cfg})

	port := cfg.App.Port
	if port == "" {
		port = "3005"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Starting %s server on port %s (%s)", cfg.App.Name, port, cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Criticalf("Failed to start server: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
