package checksum

import "errors"

// ErrUnknownAlgorithm occurs when a checksum algorithm is requested that is
// not supported.
var ErrUnknownAlgorithm = errors.New("unknown checksum algorithm")
