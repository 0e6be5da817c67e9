package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/activity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(n int) []activity.Entry {
	name := "Alice"
	out := make([]activity.Entry, n)
	base := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	for i := range out {
		out[i] = activity.Entry{
			Action:    "user logged in",
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
			User:      &activity.Actor{FullName: &name},
		}
	}
	return out
}

func TestSummaryService_EmptyRejectedBeforeCall(t *testing.T) {
	gen := &stubGenerator{}
	svc := NewSummaryService(gen, 1000, time.UTC)

	_, err := svc.Summarize(context.Background(), nil)
	require.ErrorIs(t, err, ErrNoLogs)
	assert.Zero(t, gen.calls)
}

func TestSummaryService_TruncatesToFifty(t *testing.T) {
	gen := &stubGenerator{blocks: []ContentBlock{{Type: "text", Text: "All quiet."}}}
	svc := NewSummaryService(gen, 1000, time.UTC)

	summary, err := svc.Summarize(context.Background(), entries(60))
	require.NoError(t, err)
	assert.Equal(t, "All quiet.", summary)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, 1000, gen.maxToks)
	assert.Equal(t, 50, strings.Count(gen.prompt, "Alice: user logged in"))
}

func TestSummaryService_FirstTextBlock(t *testing.T) {
	gen := &stubGenerator{blocks: []ContentBlock{{Type: "tool_use"}, {Type: "text", Text: "second"}}}
	svc := NewSummaryService(gen, 1000, time.UTC)

	summary, err := svc.Summarize(context.Background(), entries(1))
	require.NoError(t, err)
	assert.Equal(t, "second", summary)
}

func TestSummaryService_NoTextFallback(t *testing.T) {
	gen := &stubGenerator{blocks: []ContentBlock{{Type: "tool_use"}}}
	svc := NewSummaryService(gen, 1000, time.UTC)

	summary, err := svc.Summarize(context.Background(), entries(2))
	require.NoError(t, err)
	assert.Equal(t, FallbackSummary, summary)
}

func TestSummaryService_GeneratorErrorIsWrapped(t *testing.T) {
	gen := &stubGenerator{err: errors.New("429 rate limited")}
	svc := NewSummaryService(gen, 1000, time.UTC)

	_, err := svc.Summarize(context.Background(), entries(3))
	require.ErrorIs(t, err, ErrSummaryFailed)
	assert.Equal(t, 1, gen.calls)
}
