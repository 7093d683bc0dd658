package bot

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"walletbot/dialog"
	"walletbot/exception"
	"walletbot/logx"
)

// defaultOwnerQueueDepth bounds how many actions per owner may wait;
// sends block past it, which keeps arrival order without unbounded
// buffering.
const defaultOwnerQueueDepth = 16

// Service pumps transport updates through the conversation manager.
// Updates for the same owner are handled strictly in arrival order on a
// per-owner queue; distinct owners proceed concurrently.
type Service struct {
	transport  Transport
	dialogs    *dialog.Manager
	schemes    []string
	queueDepth int

	mu     sync.Mutex
	queues map[uint64]chan Update
}

// NewService wires a transport to the conversation manager. queueDepth
// of 0 picks the default.
func NewService(transport Transport, dialogs *dialog.Manager, schemes []string, queueDepth int) *Service {
	if queueDepth <= 0 {
		queueDepth = defaultOwnerQueueDepth
	}
	return &Service{
		transport:  transport,
		dialogs:    dialogs,
		schemes:    schemes,
		queueDepth: queueDepth,
		queues:     make(map[uint64]chan Update),
	}
}

// Run consumes updates until ctx is cancelled or the transport closes.
func (s *Service) Run(ctx context.Context) error {
	logx.Info("BOT", "Starting update loop")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case u, ok := <-s.transport.Updates():
			if !ok {
				logx.Info("BOT", "Transport closed, stopping")
				return nil
			}
			if u.Owner == 0 {
				logx.Warn("BOT", "Dropping update without owner identity")
				continue
			}
			select {
			case s.queueFor(ctx, u.Owner) <- u:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// queueFor returns the owner's ordered queue, starting its worker on
// first contact.
func (s *Service) queueFor(ctx context.Context, owner uint64) chan Update {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.queues[owner]
	if !ok {
		q = make(chan Update, s.queueDepth)
		s.queues[owner] = q
		exception.SafeGo(fmt.Sprintf("owner-worker-%d", owner), func() {
			s.ownerLoop(ctx, owner, q)
		})
	}
	return q
}

func (s *Service) ownerLoop(ctx context.Context, owner uint64, q <-chan Update) {
	for {
		select {
		case <-ctx.Done():
			return
		case u := <-q:
			for _, reply := range s.handle(u) {
				if err := s.transport.Send(owner, reply); err != nil {
					logx.Error("BOT", "Send failed for owner ", owner, ": ", err)
				}
			}
		}
	}
}

// handle routes one update to the state machine and returns the replies.
func (s *Service) handle(u Update) []string {
	name, arg, isCmd := parseCommand(u.Text)
	if !isCmd {
		return s.dialogs.OnText(u.Owner, u.Username, u.Text)
	}

	switch name {
	case cmdHelp:
		return []string{s.helpText()}
	case cmdCreateWallet:
		return s.dialogs.OnCommand(u.Owner, u.Username, dialog.CmdCreateWallet, arg)
	case cmdGetAddress:
		return s.dialogs.OnCommand(u.Owner, u.Username, dialog.CmdGetAddress, "")
	case cmdSignTx:
		return s.dialogs.OnCommand(u.Owner, u.Username, dialog.CmdSignTx, "")
	case cmdCancel:
		return s.dialogs.OnCommand(u.Owner, u.Username, dialog.CmdCancel, "")
	default:
		return []string{"Unknown command.", s.helpText()}
	}
}

func (s *Service) helpText() string {
	var b strings.Builder
	b.WriteString("These commands are supported:\n")
	b.WriteString("/help - display this text\n")
	b.WriteString("/createwallet [scheme] - create wallet (schemes: ")
	b.WriteString(strings.Join(s.schemes, ", "))
	b.WriteString(")\n")
	b.WriteString("/getaddress - show your wallet address\n")
	b.WriteString("/signtx - sign a transfer\n")
	b.WriteString("/cancel - abandon the current operation")
	return b.String()
}
