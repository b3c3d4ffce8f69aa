package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lucascesar918/grepzilla/internal/appmode"
	"github.com/lucascesar918/grepzilla/internal/config"
	"github.com/lucascesar918/grepzilla/internal/logger"
	"github.com/lucascesar918/grepzilla/internal/parser"
)

func main() {
	// инициализировать параметры запуска
	nodeInit, err := parser.ParseNodeArgs(os.Args[1:])
	if err != nil {
		log.Printf("Failed to launch grepzilla-node: %q", err.Error())
		os.Exit(1)
	}
	if err := config.Apply(nodeInit); err != nil {
		log.Printf("Failed to launch grepzilla-node: %q", err.Error())
		os.Exit(1)
	}

	zlog, err := logger.ProvideLogger(nodeInit.Env)
	if err != nil {
		log.Printf("Failed to init logger: %q", err.Error())
		os.Exit(1)
	}
	defer func() { _ = zlog.Sync() }()

	// готовим слушатель прерываний - контекст для всего приложения
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appmode.RunNode(ctx, stop, nodeInit, zlog)
}
