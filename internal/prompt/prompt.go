package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"calgarydogs/internal/core"
)

const (
	BreedPrompt  = "Please enter a dog breed: "
	RetryMessage = "Dog breed not found in the data. Please try again."
)

// maxLineLen caps how much of one answer is kept. Longer lines cannot name a
// breed and are answered with RetryMessage.
const maxLineLen = 4096

// ErrEndOfInput is returned when input closes before a known breed is entered.
var ErrEndOfInput = errors.New("input closed before a valid dog breed was entered")

// BreedChecker reports whether a normalized breed exists in the data.
type BreedChecker interface {
	HasBreed(ctx context.Context, breed string) (bool, error)
}

// BreedReader asks for a breed until the answer matches the data.
type BreedReader struct {
	in      *bufio.Reader
	out     io.Writer
	checker BreedChecker
}

func NewBreedReader(in io.Reader, out io.Writer, checker BreedChecker) *BreedReader {
	return &BreedReader{in: bufio.NewReader(in), out: out, checker: checker}
}

// ReadBreed prompts, normalizes each answer and returns the first one found
// in the data. There is no retry limit; the loop ends only on a match, on
// end of input (ErrEndOfInput) or on a read or lookup error.
func (r *BreedReader) ReadBreed(ctx context.Context) (string, error) {
	for {
		if _, err := io.WriteString(r.out, BreedPrompt); err != nil {
			return "", fmt.Errorf("write prompt: %w", err)
		}
		line, tooLong, err := r.readLine()
		if errors.Is(err, io.EOF) {
			return "", ErrEndOfInput
		}
		if err != nil {
			return "", fmt.Errorf("read breed: %w", err)
		}

		if !tooLong {
			breed := core.NormalizeBreed(line)
			ok, err := r.checker.HasBreed(ctx, breed)
			if err != nil {
				return "", fmt.Errorf("look up breed %q: %w", breed, err)
			}
			if ok {
				return breed, nil
			}
		}
		if _, err := fmt.Fprintln(r.out, RetryMessage); err != nil {
			return "", fmt.Errorf("write retry message: %w", err)
		}
	}
}

// readLine returns the next line, terminator included. Bytes past
// maxLineLen are consumed and dropped, and tooLong is set. A final line
// without a newline is returned with a nil error; io.EOF means no input was
// left at all.
func (r *BreedReader) readLine() (line string, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, rerr := r.in.ReadSlice('\n')
		if tooLong || len(buf)+len(chunk) > maxLineLen {
			tooLong = true
			buf = nil
		} else {
			buf = append(buf, chunk...)
		}
		switch {
		case errors.Is(rerr, bufio.ErrBufferFull):
			continue
		case errors.Is(rerr, io.EOF):
			if len(buf) > 0 || tooLong {
				return string(buf), tooLong, nil
			}
			return "", false, io.EOF
		case rerr != nil:
			return "", false, rerr
		}
		return string(buf), tooLong, nil
	}
}
