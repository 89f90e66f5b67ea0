package log

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrMalformedEvent is returned when an event's payload does not match its
// kind. Result files never hold such events.
var ErrMalformedEvent = errors.New("malformed result event")

// Event represents one recorded action of a test step.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// StepID uniquely identifies the step context that produced the event (UUID).
	StepID string `cbor:"2,keyasint"`

	// StepName is the configured name of the step.
	StepName string `cbor:"3,keyasint,omitempty"`

	// Kind classifies the event.
	Kind Kind `cbor:"4,keyasint"`

	// Type-specific payload (one of these will be set).
	Result *ResultEvent    `cbor:"5,keyasint,omitempty"` // KindPublish
	Share  *ShareEvent     `cbor:"6,keyasint,omitempty"` // KindShare, KindRetrieve
	Error  *ErrorEventData `cbor:"7,keyasint,omitempty"` // KindError
}

// Validate checks that exactly the payload required by Kind is set and
// that a result carries a known value type.
func (e Event) Validate() error {
	var want string
	switch e.Kind {
	case KindPublish:
		if e.Result != nil && e.Share == nil && e.Error == nil {
			if e.Result.Type > ValueBool {
				return fmt.Errorf("%w: unknown value type %d", ErrMalformedEvent, e.Result.Type)
			}
			return nil
		}
		want = "result"
	case KindShare, KindRetrieve:
		if e.Share != nil && e.Result == nil && e.Error == nil {
			return nil
		}
		want = "share"
	case KindError:
		if e.Error != nil && e.Result == nil && e.Share == nil {
			return nil
		}
		want = "error"
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrMalformedEvent, uint8(e.Kind))
	}
	return fmt.Errorf("%w: %s event needs exactly a %s payload", ErrMalformedEvent, e.Kind, want)
}

// Kind classifies the event.
type Kind uint8

const (
	// KindPublish indicates a published result value.
	KindPublish Kind = 0
	// KindShare indicates data written to the shared store.
	KindShare Kind = 1
	// KindRetrieve indicates data read from the shared store.
	KindRetrieve Kind = 2
	// KindError indicates a failed step operation.
	KindError Kind = 3
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPublish:
		return "PUBLISH"
	case KindShare:
		return "SHARE"
	case KindRetrieve:
		return "RETRIEVE"
	case KindError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseKind parses a kind name as printed by String.
func ParseKind(s string) (Kind, bool) {
	for k := KindPublish; k <= KindError; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// ResultEvent captures one published value.
type ResultEvent struct {
	// DataID names the published measurement.
	DataID string `cbor:"1,keyasint"`

	// Site is the site number, -1 for system data.
	Site int `cbor:"2,keyasint"`

	// Pin is the pin name (empty for per-site results).
	Pin string `cbor:"3,keyasint,omitempty"`

	// Type is the element type the value was published from.
	Type ValueType `cbor:"4,keyasint"`

	// Value is the published value. Booleans are stored as 0 or 1.
	Value float64 `cbor:"5,keyasint"`
}

// SiteLabel returns the site number, or "system" for system data.
func (r *ResultEvent) SiteLabel() string {
	if r.Site < 0 {
		return "system"
	}
	return strconv.Itoa(r.Site)
}

// ValueType records the element type of a published value.
type ValueType uint8

const (
	// ValueFloat indicates a floating point value.
	ValueFloat ValueType = 0
	// ValueInt indicates a signed integer value.
	ValueInt ValueType = 1
	// ValueUint indicates an unsigned integer value.
	ValueUint ValueType = 2
	// ValueBool indicates a boolean value.
	ValueBool ValueType = 3
)

// String returns the value type name.
func (v ValueType) String() string {
	switch v {
	case ValueFloat:
		return "FLOAT"
	case ValueInt:
		return "INT"
	case ValueUint:
		return "UINT"
	case ValueBool:
		return "BOOL"
	default:
		return "UNKNOWN"
	}
}

// ShareEvent captures a shared global data transfer.
type ShareEvent struct {
	// ID is the shared data identifier.
	ID string `cbor:"1,keyasint"`

	// Sites is the number of active sites the data was flattened over.
	Sites int `cbor:"2,keyasint"`

	// Pins is the number of pins (0 for SiteData).
	Pins int `cbor:"3,keyasint,omitempty"`

	// Size is the encoded size in bytes.
	Size int `cbor:"4,keyasint"`
}

// ErrorEventData captures a failed step operation.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"2,keyasint,omitempty"`
}
