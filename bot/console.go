package bot

import (
	"bufio"
	"fmt"
	"io"

	"walletbot/exception"
)

// ConsoleTransport is a single-owner Transport over an io stream, used
// for local runs and manual poking. Each input line becomes one update.
type ConsoleTransport struct {
	owner    uint64
	username string
	out      io.Writer
	updates  chan Update
}

func NewConsoleTransport(owner uint64, username string, in io.Reader, out io.Writer) *ConsoleTransport {
	t := &ConsoleTransport{
		owner:    owner,
		username: username,
		out:      out,
		updates:  make(chan Update),
	}

	exception.SafeGo("console-transport", func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			t.updates <- Update{
				Owner:    t.owner,
				Username: t.username,
				Text:     scanner.Text(),
			}
		}
		close(t.updates)
	})

	return t
}

func (t *ConsoleTransport) Updates() <-chan Update {
	return t.updates
}

func (t *ConsoleTransport) Send(owner uint64, text string) error {
	_, err := fmt.Fprintln(t.out, text)
	return err
}
