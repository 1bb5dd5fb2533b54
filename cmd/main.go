package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/neuralforge-ai/consultation-api/internal/api"
	"github.com/neuralforge-ai/consultation-api/internal/clients/gomail"
	"github.com/neuralforge-ai/consultation-api/internal/service"
	"github.com/neuralforge-ai/consultation-api/pkg/broker"
	"github.com/neuralforge-ai/consultation-api/pkg/config"
	"github.com/neuralforge-ai/consultation-api/pkg/logger"
)

const (
	readTimeout       = 3 * time.Second
	readHeaderTimeout = time.Second
)

// @title NeuralForge API
// @version 1.0.0
// @description Consultation request intake service.
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("create config", err)

	l := logger.New(slog.LevelDebug)

	mailClient := gomail.New(cfg)

	var producer service.Producer
	if cfg.Kafka.Enabled() {
		p := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.ConsultationTopic)
		defer p.Close()

		producer = p
	}

	s := service.New(cfg, mailClient, producer)

	h := api.NewHandler(s)
	mw := api.NewMiddleware(l)

	router := api.NewRouter(h, mw)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panic(err)
		}
	}()

	l.Info("server started", "port", cfg.HTTPPort)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)
	sig := <-ch

	l.Info("got OS signal", "signal", sig.String())

	err = server.Shutdown(ctx)
	if err != nil {
		l.Error("shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
