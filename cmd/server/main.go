package main

import (
	"context"
	"errors"
	"extrato-gateway/internal/handler"
	"extrato-gateway/internal/pkg/config"
	"extrato-gateway/internal/pkg/helper"
	"extrato-gateway/internal/pkg/logger"
	"extrato-gateway/internal/pkg/validation"
	"extrato-gateway/internal/service/parser"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logger.Error.Fatalln("Error loading config: ", err)
	}

	gin.SetMode(cfg.GinMode())
	logger.Setup(os.Stdout, gin.Mode() == gin.DebugMode)

	if err := validation.Setup(); err != nil {
		logger.Error.Fatalln(err)
	}

	parserService := parser.NewService(&parser.Options{
		ParseURL:  cfg.ParserURL,
		HealthURL: cfg.ParserHealthURL,
		Timeout:   cfg.ParserTimeout(),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.NewRouter(cfg, parserService),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info.Printf("extrato-gateway listening on :%s (env=%s, parser=%s)", cfg.Port, cfg.AppEnv, cfg.ParserURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error.Fatalln(err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ParserTimeout()+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		_ = helper.HandleAppError(err, "main", "Shutdown", true)
	}
	logger.Info.Println("extrato-gateway stopped")
}
