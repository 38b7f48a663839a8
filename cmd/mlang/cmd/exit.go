package cmd

// Exit statuses follow sysexits.h
const (
	exitUsage   = 64
	exitData    = 65
	exitNoInput = 66
	exitConfig  = 78
)

// exitError ends a command with a specific exit status
type exitError struct {
	code int
	err  error
}

func (err *exitError) Error() string {
	return err.err.Error()
}

func (err *exitError) Unwrap() error {
	return err.err
}
