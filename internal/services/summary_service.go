package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/activity"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// FallbackSummary is returned when the generator answers without text.
const FallbackSummary = "Unable to generate summary"

// ContentBlock is one block of a generated response.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// TextGenerator sends one prompt to a hosted language model.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) ([]ContentBlock, error)
}

type SummaryService struct {
	generator TextGenerator
	maxTokens int
	loc       *time.Location
}

func NewSummaryService(generator TextGenerator, maxTokens int, loc *time.Location) *SummaryService {
	if loc == nil {
		loc = time.UTC
	}
	return &SummaryService{generator: generator, maxTokens: maxTokens, loc: loc}
}

// Summarize formats at most 50 entries into a prompt and calls the generator
// once. Generator failures come back wrapped in ErrSummaryFailed.
func (s *SummaryService) Summarize(ctx context.Context, entries []activity.Entry) (string, error) {
	if len(entries) == 0 {
		return "", ErrNoLogs
	}

	entries = activity.Truncate(entries)
	prompt := activity.BuildPrompt(entries, s.loc)

	ctx, span := otel.Tracer("services/summary").Start(ctx, "summary.generate")
	defer span.End()
	span.SetAttributes(
		attribute.Int("summary.entries", len(entries)),
		attribute.Int("summary.max_tokens", s.maxTokens),
	)

	done := metrics.TrackSummary()
	blocks, err := s.generator.Generate(ctx, prompt, s.maxTokens)
	if err != nil {
		done("error")
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		return "", fmt.Errorf("%w: %w", ErrSummaryFailed, err)
	}

	for _, b := range blocks {
		if b.Type == "text" {
			done("success")
			span.SetStatus(codes.Ok, "")
			return b.Text, nil
		}
	}
	done("empty")
	return FallbackSummary, nil
}
