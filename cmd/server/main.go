package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gradeskim/gradeskim/config"
	"github.com/gradeskim/gradeskim/server"
)

func main() {
	var configPath string
	var address string

	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.StringVar(&address, "addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg, err := config.New(configPath)

	if err != nil {
		log.Fatal(err)
	}

	if address != "" {
		cfg.Address = address
	}

	s, err := server.New(cfg)

	if err != nil {
		log.Fatal(err)
	}

	srv := &http.Server{
		Addr:    cfg.Address,
		Handler: s.Handler(),
	}

	go func() {
		log.Printf("listening on %s", cfg.Address)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
