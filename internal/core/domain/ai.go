package domain

import "errors"

// ErrAIUnavailable covers every downstream AI failure mode: timeout, non-2xx
// response, or a malformed payload. Callers only need "try again later".
var ErrAIUnavailable = errors.New("ai service unavailable")
