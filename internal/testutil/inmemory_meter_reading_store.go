package testutil

import (
	"context"
	"sort"
	"time"

	"github.com/stimasense/stimasense/internal/domain/meter"
	"github.com/stimasense/stimasense/internal/types"
)

// InMemoryMeterReadingStore implements meter.Repository
type InMemoryMeterReadingStore struct {
	*InMemoryStore[*meter.Reading]
}

// NewInMemoryMeterReadingStore creates a new in-memory meter reading store
func NewInMemoryMeterReadingStore() *InMemoryMeterReadingStore {
	return &InMemoryMeterReadingStore{
		InMemoryStore: NewInMemoryStore[*meter.Reading](),
	}
}

// Helper to copy a reading so stored state never aliases caller memory
func copyReading(r *meter.Reading) *meter.Reading {
	if r == nil {
		return nil
	}
	copied := *r
	return &copied
}

func (s *InMemoryMeterReadingStore) CreateReading(_ context.Context, reading *meter.Reading) error {
	if err := reading.Validate(); err != nil {
		return err
	}
	if reading.ID == "" {
		reading.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_READING)
	}
	return s.Insert(reading.ID, copyReading(reading))
}

func (s *InMemoryMeterReadingStore) GetReadingsByMeter(_ context.Context, meterID string) ([]*meter.Reading, error) {
	readings := s.List(func(r *meter.Reading) bool {
		return r.MeterID == meterID
	})
	return sortedCopies(readings), nil
}

func (s *InMemoryMeterReadingStore) GetReadingsInRange(_ context.Context, meterID string, from, to time.Time) ([]*meter.Reading, error) {
	readings := s.List(func(r *meter.Reading) bool {
		return r.MeterID == meterID &&
			!r.Timestamp.Before(from) &&
			r.Timestamp.Before(to)
	})
	return sortedCopies(readings), nil
}

func sortedCopies(readings []*meter.Reading) []*meter.Reading {
	result := make([]*meter.Reading, 0, len(readings))
	for _, r := range readings {
		result = append(result, copyReading(r))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamp.Before(result[j].Timestamp)
	})
	return result
}
