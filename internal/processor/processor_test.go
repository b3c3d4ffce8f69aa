package processor_test

import (
	"context"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/lucascesar918/grepzilla/internal/model"
	"github.com/lucascesar918/grepzilla/internal/processor"
	"github.com/stretchr/testify/require"
)

func TestProcessInput(t *testing.T) {
	input := "abcabcabc123\nABCabc123\nabc123\n123"
	cases := []struct {
		name    string
		task    *model.SearchTask
		wantRes *model.SearchResult
		ctx     context.Context
	}{
		{
			name: "Positive - plain match",
			task: &model.SearchTask{
				TaskID:   "testTask",
				Query:    "abc1",
				Contents: input,
			},
			wantRes: &model.SearchResult{
				TaskID:   "testTask",
				Output:   []string{"abcabcabc123", "ABCabc123", "abc123"},
				HashSumm: hasher(t, []string{"abcabcabc123", "ABCabc123", "abc123"}),
			},
			ctx: context.Background(),
		},
		{
			name: "Positive - ignore case",
			task: &model.SearchTask{
				TaskID:     "testTask",
				Query:      "ABCABC",
				Contents:   input,
				IgnoreCase: true,
			},
			wantRes: &model.SearchResult{
				TaskID:   "testTask",
				Output:   []string{"abcabcabc123", "ABCabc123"},
				HashSumm: hasher(t, []string{"abcabcabc123", "ABCabc123"}),
			},
			ctx: context.Background(),
		},
		{
			name: "Positive - invert result",
			task: &model.SearchTask{
				TaskID:      "testTask",
				Query:       "abc",
				Contents:    input,
				InvertMatch: true,
			},
			wantRes: &model.SearchResult{
				TaskID:   "testTask",
				Output:   []string{"123"},
				HashSumm: hasher(t, []string{"123"}),
			},
			ctx: context.Background(),
		},
		{
			name: "Positive - nothing found",
			task: &model.SearchTask{
				TaskID:   "testTask",
				Query:    "xyz",
				Contents: input,
			},
			wantRes: &model.SearchResult{
				TaskID:   "testTask",
				Output:   []string{},
				HashSumm: hasher(t, []string{}),
			},
			ctx: context.Background(),
		},
		{
			name: "Negative - cancelled context",
			task: &model.SearchTask{
				TaskID:   "testTask",
				Query:    "abc",
				Contents: input,
			},
			wantRes: &model.SearchResult{
				TaskID:   "testTask",
				Output:   []string{},
				HashSumm: hasher(t, []string{}),
			},
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			}(),
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			test := processor.Processor{}

			res := test.ProcessInput(tt.ctx, tt.task)

			require.Equal(t, tt.wantRes, res)
		})
	}
}

func hasher(t *testing.T, input []string) uint64 {
	t.Helper()
	hs := xxhash.New()
	for _, s := range input {
		_, err := hs.WriteString(s)
		require.NoError(t, err, "failed to write data to count hash")
	}

	return hs.Sum64()
}
