package buffon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrNonPositive is wrapped by InvalidInputError when the needle count is
// zero or negative.
var ErrNonPositive = errors.New("number of needles must be positive")

// ErrNoInput is wrapped by InvalidInputError when no count could be read.
var ErrNoInput = errors.New("no needle count given")

// InvalidInputError reports a needle count that cannot be used.
type InvalidInputError struct {
	// Input is the offending text as read.
	Input string
	Err   error
}

func (e *InvalidInputError) Error() string {
	if e.Input == "" {
		return "invalid needle count: " + e.Err.Error()
	}
	return fmt.Sprintf("invalid needle count %q: %v", e.Input, e.Err)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

// ReadNeedleCount reads the first whitespace-separated token from r and
// parses it as a base-10 needle count. Anything other than a positive
// integer that fits in an int yields an *InvalidInputError.
func ReadNeedleCount(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			// A token past the scanner's buffer cannot fit in an int.
			if errors.Is(err, bufio.ErrTooLong) {
				return 0, &InvalidInputError{Err: strconv.ErrRange}
			}
			return 0, fmt.Errorf("reading needle count: %w", err)
		}
		return 0, &InvalidInputError{Err: ErrNoInput}
	}

	token := scanner.Text()
	n, err := strconv.Atoi(token)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &InvalidInputError{Input: token, Err: err}
	}

	if err := validateNeedleCount(n); err != nil {
		return 0, err
	}
	return n, nil
}

func validateNeedleCount(n int) error {
	if n <= 0 {
		return &InvalidInputError{Input: strconv.Itoa(n), Err: ErrNonPositive}
	}
	return nil
}
