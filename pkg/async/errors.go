package async

import "errors"

var ErrTimeout = errors.New("async: operation timed out waiting for future completion")

// ErrPanic wraps the value an asynchronous function panicked with.
var ErrPanic = errors.New("async: function panicked")
