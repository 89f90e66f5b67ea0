package stepcontext

import "errors"

// Errors returned by step contexts and stores.
var (
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrUnknownPin     = errors.New("unknown pin")
	ErrSiteNotActive  = errors.New("site not active")
	ErrNotSingleSite  = errors.New("more than one active site")
	ErrDataNotFound   = errors.New("shared data not found")
	ErrSharedDataSize = errors.New("shared data does not match active sites")
)
