package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"jest/internal/config"
	"jest/internal/engine"
	"jest/internal/logging"
	"jest/internal/server"
	"jest/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	port := flag.Int("port", cfg.Port, "server port")
	variant := flag.String("variant", cfg.Variant, "standard, quick or high_stakes")
	extension := flag.Bool("extension", false, "play with the extension deck")
	dev := flag.Bool("dev", cfg.Dev, "development logging and the snapshot route")
	flag.Parse()

	log, err := logging.New(cfg.LogLevel, *dev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	v, err := engine.LookupVariant(*variant)
	if err != nil {
		log.Fatal("variant", zap.Error(err))
	}

	var st store.Store = store.NewMemoryStore()
	if cfg.RedisAddr != "" {
		rs := store.NewRedisStore(cfg.RedisAddr, cfg.RedisDB)
		if err := rs.Ping(context.Background()); err != nil {
			log.Fatal("redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		defer rs.Close()
		st = rs
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Options{
		Port:          *port,
		Variant:       v,
		Extension:     *extension,
		PromptTimeout: cfg.PromptTimeout,
		Store:         st,
		Logger:        log,
		Dev:           *dev,
	})
	if err := srv.Start(ctx); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
