package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Session is the read-eval-print loop around a Dispatcher.
type Session struct {
	Dispatcher *Dispatcher
	Messages   *Messages
}

// NewSession binds a session to its dispatcher.
func NewSession(d *Dispatcher) *Session {
	return &Session{Dispatcher: d, Messages: d.Messages}
}

// lineResult carries one scanned line or the terminal scan error.
type lineResult struct {
	line string
	err  error
}

// Run prompts for commands until close/exit, end of input, or ctx cancellation.
// It returns nil for the first two and ctx.Err() for the last; persisting the
// book afterwards is the caller's job.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	log := slog.With(config.LogKeyComponent, config.CompCLI)

	done := make(chan struct{})
	defer close(done)
	lines := s.readLines(in, done)

	fmt.Fprintln(out, s.Messages.Get(config.TKeyWelcome))

	for {
		fmt.Fprint(out, s.Messages.Get(config.TKeyPrompt))

		var res lineResult
		var ok bool
		select {
		case <-ctx.Done():
			log.Info(config.MsgCtxCancel)
			fmt.Fprintln(out)
			return ctx.Err()
		case res, ok = <-lines:
		}

		if !ok {
			log.Info(config.MsgSessionEOF)
			fmt.Fprintln(out)
			return nil
		}
		if res.err != nil {
			return fmt.Errorf("%s: %w", config.ErrInputRead, res.err)
		}

		cmd, args, err := ParseInput(res.line)
		if err != nil {
			fmt.Fprintln(out, s.Messages.Get(config.TKeyEmptyInput))
			continue
		}

		reply, quit := s.Dispatcher.Execute(ctx, cmd, args)
		fmt.Fprintln(out, reply)
		if quit {
			return nil
		}
	}
}

// readLines scans in on its own goroutine so Run can also watch ctx.
// The goroutine stops at end of input or once done is closed.
func (s *Session) readLines(in io.Reader, done <-chan struct{}) <-chan lineResult {
	lines := make(chan lineResult)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- lineResult{line: scanner.Text()}:
			case <-done:
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case lines <- lineResult{err: err}:
			case <-done:
			}
		}
	}()
	return lines
}
