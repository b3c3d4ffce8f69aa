package appmode

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/lucascesar918/grepzilla/internal/model"
	"github.com/lucascesar918/grepzilla/internal/processor"
	"github.com/lucascesar918/grepzilla/internal/transport"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

func RunNode(ctx context.Context, stop context.CancelFunc, ni *model.NodeInit, log *zap.Logger) {
	// получить экземпляр сервера
	srv := transport.NewNodeServer(ni.Address, processor.Processor{}, log)

	// запуск сервера
	go func() {
		log.Info("search-node running", zap.String("address", srv.Addr), zap.String("env", ni.Env))
		err := srv.ListenAndServe()
		if err != nil {
			switch {
			case errors.Is(err, http.ErrServerClosed):
				log.Info("server gracefully stopping...")
			default:
				log.Error("server stopped", zap.Error(err))
				stop()
			}
		}
	}()

	<-ctx.Done()

	// Закрытие всех соединений сервера
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown search-node correctly", zap.String("address", ni.Address), zap.Error(err))
	} else {
		log.Info("search-node server is closed", zap.String("address", ni.Address))
	}
}
