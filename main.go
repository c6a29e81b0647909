package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	httpLayer "credit-risk-form/http"
	"credit-risk-form/mail"
	"credit-risk-form/model"
	"credit-risk-form/repository"
	"credit-risk-form/service"
)

func main() {
	// Local .env is optional; real deployments set the environment.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	modelPath := envOr("MODEL_PATH", "credit_model.json")
	clf, err := model.Load(modelPath)
	if err != nil {
		log.Fatalw("cannot load model artifact", "path", modelPath, "error", err)
	}

	repo := repository.NewAssessmentRepositoryMemory()

	var cache repository.SessionCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cache = repository.NewRedisCache(addr)
		log.Infow("using redis session cache", "addr", addr)
	} else {
		cache = repository.NewMemoryCache()
	}

	smtpCfg := mail.ConfigFromEnv()
	sender := mail.NewSender(smtpCfg, log)

	riskService := service.NewRiskService(clf, repo, cache, log)
	notifyService := service.NewNotifyService(riskService, sender, log)

	assessHandler := httpLayer.NewAssessHandler(riskService, log)
	notifyHandler := httpLayer.NewNotifyHandler(notifyService, log)
	smtpHandler := httpLayer.NewSMTPHandler(smtpCfg, log)

	rateLimiter := httpLayer.NewRateLimiter(5, time.Minute)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.HandleFunc("/", httpLayer.FormPage)
	mux.Handle(
		"/risk/assess",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(assessHandler.Assess),
		),
	)
	mux.Handle(
		"/risk/notify",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(notifyHandler.SendConfirmation),
		),
	)
	mux.HandleFunc("/smtp/config", smtpHandler.Check)
	mux.HandleFunc("/smtp/diagnose", smtpHandler.Diagnose)

	server := &http.Server{
		Addr:         envOr("ADDR", ":8080"),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infow("credit risk form listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Errorw("server failed to start", "error", err)
		return
	case <-quit:
		log.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Errorw("error during server shutdown", "error", err)
	}

	log.Info("server exited")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
