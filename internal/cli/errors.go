package cli

import "errors"

// ErrExitFailure makes the process exit with status 1 after the command
// has already told the user what went wrong
var ErrExitFailure = errors.New("exit status 1")
