package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

var (
	ErrInterrupted   = errors.New("input interrupted")
	ErrLineTooLong   = errors.New("input line too long")
	errConsoleClosed = errors.New("console closed")
)

// MaxLineLength is the longest line handed to a session. Longer lines
// are discarded whole and reported as ErrLineTooLong.
const MaxLineLength = 4096

const clearSequence = "\033[H\033[2J"

type input struct {
	text string
	err  error
}

// Console reads trimmed lines from an input stream and writes to an
// output stream. Input is read on a background goroutine so a pending
// prompt can be abandoned on an interrupt or when its context is done.
type Console struct {
	out        io.Writer
	lines      chan input
	interrupts chan struct{}
	done       chan struct{}
	closeOnce  sync.Once
	err        error /* read error, valid once lines is closed */
	clear      bool
}

func New(in io.Reader, out io.Writer, clear bool) *Console {
	c := &Console{
		out:        out,
		lines:      make(chan input),
		interrupts: make(chan struct{}, 1),
		done:       make(chan struct{}),
		clear:      clear,
	}
	go c.pump(in)
	return c
}

func (c *Console) pump(in io.Reader) {
	defer close(c.lines)
	r := bufio.NewReader(in)
	for {
		text, err := readLine(r)
		if err != nil && !errors.Is(err, ErrLineTooLong) {
			if !errors.Is(err, io.EOF) {
				c.err = err
			}
			return
		}
		select {
		case c.lines <- input{text, err}:
		case <-c.done:
			return
		}
	}
}

// readLine reads up to the next newline. An overlong line is consumed
// completely so the following line starts clean.
func readLine(r *bufio.Reader) (string, error) {
	var (
		b       []byte
		tooLong bool
	)
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			return "", err
		}
		if !tooLong {
			if len(b)+len(chunk) > MaxLineLength {
				tooLong, b = true, nil
			} else {
				b = append(b, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return "", ErrLineTooLong
	}
	return string(b), nil
}

// Close stops the background reader once it has a line to deliver.
// A read already blocked on the input stream is not cancelled.
func (c *Console) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}

// Interrupt abandons the current prompt, or the next one if none is
// pending. Repeated interrupts before a prompt collapse into one.
func (c *Console) Interrupt() {
	select {
	case c.interrupts <- struct{}{}:
	default:
	}
}

// ReadLine returns the next line with surrounding whitespace removed,
// io.EOF at the end of input, ErrInterrupted after [Console.Interrupt]
// and the context's error once ctx is done. Interrupts and cancellation
// win over input that is already waiting.
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-c.interrupts:
		return "", ErrInterrupted
	case <-c.done:
		return "", errConsoleClosed
	default:
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-c.interrupts:
		return "", ErrInterrupted
	case <-c.done:
		return "", errConsoleClosed
	case in, ok := <-c.lines:
		if !ok {
			if c.err != nil {
				return "", c.err
			}
			return "", io.EOF
		}
		if in.err != nil {
			return "", in.err
		}
		return strings.TrimSpace(in.text), nil
	}
}

// Prompt writes prompt and reads a line, asking again after an overlong
// line.
func (c *Console) Prompt(ctx context.Context, prompt string) (string, error) {
	for {
		fmt.Fprint(c.out, prompt)
		line, err := c.ReadLine(ctx)
		if errors.Is(err, ErrLineTooLong) {
			fmt.Fprintf(c.out, "Input longer than %d characters ignored.\n", MaxLineLength)
			continue
		}
		return line, err
	}
}

func (c *Console) Print(a ...any) {
	fmt.Fprint(c.out, a...)
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Clear wipes the terminal unless clearing was disabled.
func (c *Console) Clear() {
	if c.clear {
		fmt.Fprint(c.out, clearSequence)
	}
}

// Interrupted reports whether err means the user closed or interrupted
// the input, or the program is shutting down.
func Interrupted(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, ErrInterrupted) ||
		errors.Is(err, errConsoleClosed) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
