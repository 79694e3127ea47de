package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pingcap/errors"

	qerrors "github.com/hanfei1991/queuelab/pkg/errors"
)

// ConsoleOptions controls RunConsole.
type ConsoleOptions struct {
	// Prompt is written before every line when not empty.
	Prompt string
	// AutoRender prints the structure after every change.
	AutoRender bool
	// StopOnError aborts on the first failing command.
	StopOnError bool
}

// RunConsole reads commands line by line from in and writes the results
// to out until in is exhausted, an "exit" line is read or ctx is done.
// Blank lines and lines starting with '#' are skipped.
func (s *Session) RunConsole(ctx context.Context, in io.Reader, out io.Writer, opts ConsoleOptions) error {
	var events <-chan Event
	if opts.AutoRender {
		receiver := s.Subscribe()
		defer receiver.Close()
		events = receiver.C
		fmt.Fprintln(out, s.Render())
	}

	scanner := bufio.NewScanner(in)
	for {
		if opts.Prompt != "" {
			fmt.Fprint(out, opts.Prompt)
		}
		if !scanner.Scan() {
			break
		}
		if err := ctx.Err(); err != nil {
			return errors.Trace(err)
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		res, err := s.ExecuteLine(ctx, line)
		if err != nil {
			fmt.Fprintln(out, qerrors.Message(err))
			if opts.StopOnError {
				return err
			}
			continue
		}
		if msg := res.Message(); msg != "" {
			fmt.Fprintln(out, msg)
		}

		if events != nil && res.Changed {
			if err := s.Flush(ctx); err != nil {
				return err
			}
			drainEvents(events, out)
		}
	}
	return errors.Trace(scanner.Err())
}

func drainEvents(events <-chan Event, out io.Writer) {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			fmt.Fprintln(out, ev.Rendering)
		default:
			return
		}
	}
}
