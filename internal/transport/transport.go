// Package transport provides a new server-entity(by ginext) for the search node with handlers to serve endpoints
package transport

import (
	"context"
	"net/http"

	"github.com/docker/distribution/uuid"
	"github.com/gin-gonic/gin"
	"github.com/lucascesar918/grepzilla/internal/model"
	"github.com/wb-go/wbf/ginext"
	"go.uber.org/zap"
)

type TaskProcessor interface {
	ProcessInput(ctx context.Context, task *model.SearchTask) *model.SearchResult
}

type handler struct {
	proc TaskProcessor
	log  *zap.Logger
}

func NewNodeServer(addr string, proc TaskProcessor, log *zap.Logger) *http.Server {
	h := &handler{proc: proc, log: log}

	engine := ginext.New(gin.ReleaseMode)
	engine.GET("/ping", h.HealthCheck)
	engine.POST("/search", h.ReceiveTask)

	return &http.Server{
		Addr:    addr,
		Handler: engine,
	}
}

func (h *handler) HealthCheck(ctx *ginext.Context) {
	h.log.Debug("received a healthcheck request")
	ctx.Status(http.StatusOK)
}

func (h *handler) ReceiveTask(ctx *ginext.Context) {
	var task model.SearchTask

	if err := ctx.ShouldBindJSON(&task); err != nil {
		h.log.Warn("failed to parse task", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse task from body: " + err.Error()})
		return
	}

	// задачи без id тоже принимаем, id генерим сами
	if task.TaskID == "" {
		task.TaskID = uuid.Generate().String()
	}

	h.log.Info("received task",
		zap.String("tid", task.TaskID),
		zap.Int("contents_bytes", len(task.Contents)),
		zap.Bool("ignore_case", task.IgnoreCase),
		zap.Bool("invert_match", task.InvertMatch),
	)

	res := h.proc.ProcessInput(ctx.Request.Context(), &task)
	h.log.Info("calculated result",
		zap.String("tid", res.TaskID),
		zap.Int("lines", len(res.Output)),
		zap.Uint64("hash", res.HashSumm),
	)

	ctx.JSON(http.StatusOK, res)
}
