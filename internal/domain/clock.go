package domain

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// clock stamps Observation.ProcessedAt. Fixture generation and tests pin it
// with SetClock so output is reproducible.
var clock = clockwork.NewRealClock()

// SetClock replaces the processing-time source. Pass nil to restore real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	clock = c
}

// processingTime is the current time in UTC, truncated to the second to match
// the precision of the processed_at Kafka header.
func processingTime() time.Time {
	return clock.Now().UTC().Truncate(time.Second)
}
