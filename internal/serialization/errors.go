package serialization

import "github.com/pkg/errors"

// Common errors.
var (
	ErrCorruptOrTruncated = errors.New("corrupt or truncated model data")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
)
