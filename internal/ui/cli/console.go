package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type readResult struct {
	text string
	err  error
}

// console reads one answer at a time so a pending read never races a
// password prompt, and gives up as soon as ctx is cancelled.
type console struct {
	in         *bufio.Reader
	out        io.Writer
	readSecret func() (string, error)
}

func (c *console) ask(ctx context.Context, label string, secret bool) (string, error) {
	fmt.Fprint(c.out, label)

	ch := make(chan readResult, 1)
	go func() {
		if secret && c.readSecret != nil {
			s, err := c.readSecret()
			fmt.Fprintln(c.out)
			ch <- readResult{text: s, err: err}
			return
		}
		s, err := c.in.ReadString('\n')
		if errors.Is(err, io.EOF) && s != "" {
			err = nil
		}
		ch <- readResult{text: s, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return strings.TrimSpace(r.text), r.err
	}
}

// StdinSecretReader reads from the controlling terminal without echo. It
// returns nil when stdin is not a terminal, in which case credentials are
// read like any other line.
func StdinSecretReader() func() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}
	return func() (string, error) {
		b, err := term.ReadPassword(fd)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
