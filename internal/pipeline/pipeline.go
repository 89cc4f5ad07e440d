package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/ish-observation-etl/internal/domain"
	"github.com/couchcryptid/ish-observation-etl/internal/ish"
	"github.com/couchcryptid/ish-observation-etl/internal/observability"
)

// BatchExtractor reads up to batchSize raw events from the source.
type BatchExtractor interface {
	ExtractBatch(ctx context.Context, batchSize int) ([]domain.RawEvent, error)
}

// Transformer decodes a raw event into an observation.
type Transformer interface {
	Transform(ctx context.Context, raw domain.RawEvent) (domain.Observation, error)
}

// BatchLoader writes multiple observations to the destination.
type BatchLoader interface {
	LoadBatch(ctx context.Context, observations []domain.Observation) error
}

// Pipeline orchestrates the extract-transform-load loop.
type Pipeline struct {
	extractor   BatchExtractor
	transformer Transformer
	loader      BatchLoader
	logger      *slog.Logger
	metrics     *observability.Metrics
	ready       atomic.Bool
	batchSize   int
}

// New creates a Pipeline with the given stages and observability.
func New(e BatchExtractor, t Transformer, l BatchLoader, logger *slog.Logger, metrics *observability.Metrics, batchSize int) *Pipeline {
	return &Pipeline{
		extractor:   e,
		transformer: t,
		loader:      l,
		logger:      logger,
		metrics:     metrics,
		batchSize:   batchSize,
	}
}

// CheckReadiness returns nil if the pipeline has processed at least one message,
// or an error describing why the service is not yet ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("pipeline has not processed any messages yet")
	}
	return nil
}

// Run executes the batch ETL loop until the context is cancelled.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started", "batch_size", p.batchSize)
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	retry := newRetryBackoff(initialBackoff, maxBackoff)
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("pipeline stopping", "reason", ctx.Err())
			return nil
		default:
		}

		if !p.processBatch(ctx, retry) {
			return nil
		}
	}
}

// processBatch runs one extract-transform-load cycle. Returns false if the pipeline should stop.
func (p *Pipeline) processBatch(ctx context.Context, retry *retryBackoff) bool {
	start := time.Now()

	rawBatch, err := p.extractor.ExtractBatch(ctx, p.batchSize)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		p.logger.Error("extract batch failed", "error", err)
		return retry.wait(ctx)
	}

	if len(rawBatch) == 0 {
		return ctx.Err() == nil
	}

	p.metrics.MessagesConsumed.Add(float64(len(rawBatch)))
	p.metrics.BatchSize.Observe(float64(len(rawBatch)))
	retry.reset()

	decoded := p.decodeBatch(ctx, rawBatch)
	p.logger.Debug("batch decoded",
		"consumed", len(rawBatch),
		"decoded", len(decoded.observations),
		"failed", decoded.failed,
		"skipped_codes", decoded.skippedCodes,
	)
	if len(decoded.observations) == 0 {
		return true
	}

	// A consumer-group reader does not redeliver uncommitted messages, so the
	// decoded batch is retried here until it loads or ctx ends.
	for {
		err := p.loader.LoadBatch(ctx, decoded.observations)
		if err == nil {
			break
		}
		p.logger.Error("load batch failed, retrying", "error", err, "batch_size", len(decoded.observations))
		if !retry.wait(ctx) {
			return false
		}
	}
	retry.reset()

	p.metrics.MessagesProduced.Add(float64(len(decoded.observations)))
	for _, raw := range decoded.sources {
		p.commitOffset(ctx, raw)
	}

	p.metrics.BatchProcessingDuration.Observe(time.Since(start).Seconds())
	p.ready.Store(true)
	return true
}

// decodedBatch is the transform stage output. sources[i] produced observations[i].
type decodedBatch struct {
	observations []domain.Observation
	sources      []domain.RawEvent
	failed       int
	skippedCodes int
}

// decodeBatch transforms every raw event. Events that fail to decode are
// committed immediately; replaying them would fail the same way.
func (p *Pipeline) decodeBatch(ctx context.Context, rawBatch []domain.RawEvent) decodedBatch {
	out := decodedBatch{
		observations: make([]domain.Observation, 0, len(rawBatch)),
		sources:      make([]domain.RawEvent, 0, len(rawBatch)),
	}

	for _, raw := range rawBatch {
		obs, err := p.transformer.Transform(ctx, raw)
		if err != nil {
			p.logger.Warn("decode failed, skipping message",
				"error", err,
				"topic", raw.Topic,
				"partition", raw.Partition,
				"offset", raw.Offset,
			)
			p.metrics.TransformErrors.Inc()
			p.metrics.DecodeFailures.WithLabelValues(failureReason(err)).Inc()
			p.commitOffset(ctx, raw)
			out.failed++
			continue
		}
		if n := len(obs.SkippedCodes); n > 0 {
			p.metrics.SkippedCodes.Add(float64(n))
			out.skippedCodes += n
		}
		out.observations = append(out.observations, obs)
		out.sources = append(out.sources, raw)
	}
	return out
}

// commitOffset commits the message offset if a commit function is available.
func (p *Pipeline) commitOffset(ctx context.Context, raw domain.RawEvent) {
	if raw.Commit == nil {
		return
	}
	if err := raw.Commit(ctx); err != nil {
		p.logger.Warn("commit offset failed", "error", err,
			"topic", raw.Topic, "partition", raw.Partition, "offset", raw.Offset)
	}
}

// failureReason maps a transform error to the decode_failures metric label.
func failureReason(err error) string {
	switch {
	case errors.Is(err, ish.ErrLengthMismatch):
		return "length_mismatch"
	case errors.Is(err, ish.ErrTruncated):
		return "truncated"
	default:
		return "invalid"
	}
}
