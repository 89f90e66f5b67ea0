package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Filter specifies criteria for selecting result events.
// Empty/nil fields match all events for that criterion.
type Filter struct {
	// StepID filters by exact step ID match.
	StepID string

	// StepName filters by exact step name match.
	StepName string

	// Kind filters by event kind.
	Kind *Kind

	// DataID filters publish and share events by data ID.
	DataID string

	// Pin filters publish events by pin name.
	Pin string

	// Site filters publish events by site number.
	Site *int

	// TimeStart filters events at or after this time.
	TimeStart *time.Time

	// TimeEnd filters events before this time.
	TimeEnd *time.Time
}

// Matches reports whether the event meets all filter criteria.
func (f *Filter) Matches(event Event) bool {
	if f.StepID != "" && event.StepID != f.StepID {
		return false
	}
	if f.StepName != "" && event.StepName != f.StepName {
		return false
	}
	if f.Kind != nil && event.Kind != *f.Kind {
		return false
	}
	if f.TimeStart != nil && event.Timestamp.Before(*f.TimeStart) {
		return false
	}
	if f.TimeEnd != nil && !event.Timestamp.Before(*f.TimeEnd) {
		return false
	}
	if f.DataID != "" && dataID(event) != f.DataID {
		return false
	}
	if f.Pin != "" && (event.Result == nil || event.Result.Pin != f.Pin) {
		return false
	}
	if f.Site != nil && (event.Result == nil || event.Result.Site != *f.Site) {
		return false
	}
	return true
}

func dataID(event Event) string {
	switch {
	case event.Result != nil:
		return event.Result.DataID
	case event.Share != nil:
		return event.Share.ID
	}
	return ""
}

// Reader reads result events from a CBOR-encoded file.
// It streams, so large result files are not loaded into memory.
type Reader struct {
	file    *os.File
	decoder *cbor.Decoder
	filter  Filter
	n       int
}

// NewReader creates a Reader that reads all events from the result file.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader creates a Reader that reads events matching the filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{
		file:    f,
		decoder: NewDecoder(f),
		filter:  filter,
	}, nil
}

// Next returns the next event that matches the filter.
// Returns io.EOF when no more events are available. A malformed event
// stops reading with an error wrapping ErrMalformedEvent.
func (r *Reader) Next() (Event, error) {
	for {
		var event Event
		if err := r.decoder.Decode(&event); err != nil {
			if errors.Is(err, io.EOF) {
				return Event{}, io.EOF
			}
			return Event{}, fmt.Errorf("event %d: %w", r.n, err)
		}
		r.n++
		if err := event.Validate(); err != nil {
			return Event{}, fmt.Errorf("event %d: %w", r.n-1, err)
		}
		if r.filter.Matches(event) {
			return event, nil
		}
	}
}

// ReadAll returns all remaining matching events.
func (r *Reader) ReadAll() ([]Event, error) {
	var events []Event
	for {
		event, err := r.Next()
		if err == io.EOF {
			return events, nil
		}
		if err != nil {
			return events, err
		}
		events = append(events, event)
	}
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
