package network

import "github.com/pkg/errors"

// Errors returned by network operations. Each is returned wrapped with detail
// about the offending argument; match with errors.Is. None of them leaves the
// network partially modified.
var (
	ErrDimensionMismatch   = errors.New("dimension mismatch")
	ErrDatasetSizeMismatch = errors.New("dataset size mismatch")
	ErrInvalidTopology     = errors.New("invalid topology")
	ErrInvalidOperation    = errors.New("invalid operation")
	ErrBatchSizeInvalid    = errors.New("invalid batch size")
	ErrInvalidArgument     = errors.New("invalid argument")
)
