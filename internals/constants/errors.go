package constants

import "errors"

// ErrUnknownValue dikembalikan oleh semua Parse* untuk nilai di luar enum.
var ErrUnknownValue = errors.New("unrecognized value")
