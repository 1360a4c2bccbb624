package context

import "errors"

// ErrAlreadyCommitted rejects staging or committing after Commit has
// already run for this request.
var ErrAlreadyCommitted = errors.New("request context already committed")
