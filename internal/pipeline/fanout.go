package pipeline

import (
	"context"
	"fmt"

	"github.com/couchcryptid/ish-observation-etl/internal/domain"
)

// FanoutLoader writes each batch to every loader in order. The first failure
// aborts the attempt; the pipeline then retries the whole batch, so loaders
// before the failing one see it again and must tolerate replays.
type FanoutLoader struct {
	loaders []BatchLoader
}

// NewFanoutLoader returns a loader that delegates to the non-nil loaders.
func NewFanoutLoader(loaders ...BatchLoader) *FanoutLoader {
	f := &FanoutLoader{}
	for _, l := range loaders {
		if l != nil {
			f.loaders = append(f.loaders, l)
		}
	}
	return f
}

func (f *FanoutLoader) LoadBatch(ctx context.Context, observations []domain.Observation) error {
	for i, l := range f.loaders {
		if err := l.LoadBatch(ctx, observations); err != nil {
			return fmt.Errorf("loader %d: %w", i, err)
		}
	}
	return nil
}
