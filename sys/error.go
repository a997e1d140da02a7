package sys

import "errors"

// ErrCancelled is returned when the user interrupts an operation
// by closing standard input while being prompted
var ErrCancelled = errors.New("cancelled by user")

// ErrInterrupted is returned when an attached child process
// gets stopped by an interrupt before completing
var ErrInterrupted = errors.New("interrupted")

func ErrOnly[T any](data T, err error) error {
	return err
}

func ErrSuppress(err error, types ...error) error {
	for _, errType := range types {
		if errors.Is(err, errType) {
			return nil
		}
	}

	if len(types) > 0 {
		return err
	}

	return nil
}
