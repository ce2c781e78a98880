// Package prompt reads and validates line-oriented player input. Validation
// is split into pure parse functions and a Reader that retries until the
// input is valid, so invalid input never reaches the game loop.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Sentinel errors for the input taxonomy.
var (
	// ErrInvalidYesNo means the input was not "yes" or "no" after normalization.
	ErrInvalidYesNo = errors.New(`answer must be "yes" or "no"`)
	// ErrNotANumber means the input did not parse as an integer.
	ErrNotANumber = errors.New("not a whole number")
	// ErrOutOfRange means the integer was outside the allowed range.
	ErrOutOfRange = errors.New("number out of range")
)

// ParseYesNo normalizes (trims, lower-cases) the input and returns true for
// "yes", false for "no", and ErrInvalidYesNo for anything else.
func ParseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	default:
		return false, ErrInvalidYesNo
	}
}

// ParseGuess parses the input as an integer in [lo, hi]. Non-integer input
// and out-of-range integers fail with distinct errors.
func ParseGuess(s string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrNotANumber
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%w: must be between %d and %d", ErrOutOfRange, lo, hi)
	}
	return n, nil
}

// Reader asks the player questions on out and reads answers line by line
// from in, retrying until the answer is valid.
type Reader struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewReader creates a Reader over the given input and output streams.
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// AskYesNo prompts until the player answers yes or no. Returns true for yes.
// The only error returned is an input stream failure.
func (r *Reader) AskYesNo(prompt string) (bool, error) {
	for {
		fmt.Fprint(r.out, prompt)
		line, err := r.readLine()
		if err != nil {
			return false, err
		}
		yes, perr := ParseYesNo(line)
		if perr != nil {
			fmt.Fprintln(r.out, `⚠️  Please answer "yes" or "no".`)
			continue
		}
		return yes, nil
	}
}

// AskGuess prompts until the player enters an integer in [lo, hi]. Format
// and range failures get distinct retry messages. The only error returned
// is an input stream failure.
func (r *Reader) AskGuess(lo, hi int) (int, error) {
	for {
		fmt.Fprintf(r.out, "Guess a number between %d and %d: ", lo, hi)
		line, err := r.readLine()
		if err != nil {
			return 0, err
		}
		n, perr := ParseGuess(line, lo, hi)
		switch {
		case errors.Is(perr, ErrNotANumber):
			fmt.Fprintln(r.out, "⚠️  That is not a whole number.")
			continue
		case errors.Is(perr, ErrOutOfRange):
			fmt.Fprintf(r.out, "⚠️  Out of range, enter a number between %d and %d.\n", lo, hi)
			continue
		}
		return n, nil
	}
}

// readLine reads the next input line. Returns io.EOF when the stream ends.
func (r *Reader) readLine() (string, error) {
	if !r.in.Scan() {
		if err := r.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return r.in.Text(), nil
}
