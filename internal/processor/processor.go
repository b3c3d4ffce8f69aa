// Package processor runs a search task received by the node and sends the result back to transport-layer
package processor

import (
	"context"

	"github.com/cespare/xxhash/v2"
	"github.com/lucascesar918/grepzilla/internal/matcher"
	"github.com/lucascesar918/grepzilla/internal/model"
)

type Processor struct{}

func (p Processor) ProcessInput(ctx context.Context, task *model.SearchTask) *model.SearchResult {
	result := model.SearchResult{
		TaskID: task.TaskID,
		Output: getMatchingLines(ctx, task),
	}

	// считаем общий хеш
	result.HashSumm = hasher(ctx, result.Output)

	return &result
}

func getMatchingLines(ctx context.Context, task *model.SearchTask) []string {
	result := []string{}

	for _, line := range matcher.Lines(task.Contents) {
		select {
		case <-ctx.Done():
			return []string{}
		default:
			if matcher.Match(task.Query, line, task.InvertMatch, task.IgnoreCase) {
				result = append(result, line)
			}
		}
	}

	return result
}

func hasher(ctx context.Context, input []string) uint64 {
	hs := xxhash.New()
	for _, s := range input {
		select {
		case <-ctx.Done():
			return 0
		default:
			_, _ = hs.WriteString(s)
		}
	}
	return hs.Sum64()
}
