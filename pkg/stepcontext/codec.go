package stepcontext

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// sharedEncMode is the CBOR encoder mode for shared data and store files.
var sharedEncMode cbor.EncMode

// sharedDecMode is the CBOR decoder mode for shared data and store files.
var sharedDecMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}
	sharedEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create shared data CBOR encoder mode: %v", err))
	}

	// Shared data is read back by the process that wrote it, so be strict.
	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	}
	sharedDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create shared data CBOR decoder mode: %v", err))
	}
}

func marshalShared(v any) ([]byte, error) {
	return sharedEncMode.Marshal(v)
}

func unmarshalShared(data []byte, v any) error {
	return sharedDecMode.Unmarshal(data, v)
}
