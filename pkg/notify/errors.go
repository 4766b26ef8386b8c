package notify

import "errors"

// ErrAborted signals the user interrupted an acknowledgment prompt (e.g., Ctrl+C).
var ErrAborted = errors.New("notify: aborted")
