package log

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Result files are written once and read by tools, so the decoder is
// strict: a duplicate key, an indefinite-length item or a tag is never
// produced by resultEncMode and marks a damaged or foreign file.
var (
	resultEncMode cbor.EncMode
	resultDecMode cbor.DecMode
)

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
		// Integral values such as pass/fail flags and codes shrink to
		// half-precision floats.
		ShortestFloat: cbor.ShortestFloat16,
	}
	resultEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create result CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:       cbor.DupMapKeyEnforcedAPF,
		IndefLength:     cbor.IndefLengthForbidden,
		TagsMd:          cbor.TagsForbidden,
		MaxNestedLevels: 8,
	}
	resultDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create result CBOR decoder mode: %v", err))
	}
}

// EncodeEvent validates an Event and encodes it to CBOR bytes using
// integer keys.
func EncodeEvent(event Event) ([]byte, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}
	return resultEncMode.Marshal(event)
}

// DecodeEvent decodes CBOR bytes into an Event and validates it.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	if err := resultDecMode.Unmarshal(data, &event); err != nil {
		return Event{}, err
	}
	if err := event.Validate(); err != nil {
		return Event{}, err
	}
	return event, nil
}

// NewEncoder creates a CBOR encoder for result events that writes to w.
// It does not validate; FileLogger does that before encoding.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return resultEncMode.NewEncoder(w)
}

// NewDecoder creates a strict CBOR decoder for result events that reads
// from r. Reader validates every decoded event.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return resultDecMode.NewDecoder(r)
}
