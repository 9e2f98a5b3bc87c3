package meter

import (
	"context"
	"time"
)

// Repository is the persistence collaborator boundary for meter readings.
// The analytics core never fetches data itself; callers retrieve readings
// through an implementation of this interface and pass them in.
type Repository interface {
	// CreateReading stores a new reading.
	CreateReading(ctx context.Context, reading *Reading) error

	// GetReadingsByMeter returns all readings for a meter ordered by
	// timestamp ascending.
	GetReadingsByMeter(ctx context.Context, meterID string) ([]*Reading, error)

	// GetReadingsInRange returns the readings for a meter whose timestamps
	// fall within [from, to), ordered by timestamp ascending.
	GetReadingsInRange(ctx context.Context, meterID string, from, to time.Time) ([]*Reading, error)
}
