package dialog

import (
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"walletbot/errors"
	"walletbot/logx"
	"walletbot/monitoring"
	"walletbot/types"
	"walletbot/wallet"
)

// Command is a parsed chat command routed into the state machine.
type Command int

const (
	CmdCreateWallet Command = iota
	CmdGetAddress
	CmdSignTx
	CmdCancel
)

// User prompts and notices. The signing payload is never localized; only
// these display strings are.
const (
	MsgToWhom        = "To whom?"
	MsgAmount        = "Amount?"
	MsgPlainText     = "Send me plain text."
	MsgNumber        = "Send me a number."
	MsgNoWallet      = "Please create a wallet first (type /createwallet)"
	MsgCancelled     = "Cancelled."
	MsgNothingToDo   = "Nothing to cancel."
	MsgMidflowReject = "Finish the current operation first, or type /cancel."
)

// session holds one owner's conversation state. Its mutex is the
// per-owner serialization point: it is held across the whole
// read-modify-write of state and across generate/sign, so a second
// action for the same owner blocks until the first finishes.
type session struct {
	mu    sync.Mutex
	state State
}

// Manager runs the per-owner conversation state machines and triggers
// key operations at the terminal steps. One Manager serves all owners;
// state is process-lifetime only.
type Manager struct {
	mu         sync.Mutex
	sessions   map[uint64]*session
	dispatcher *wallet.Dispatcher
	opts       Options
	active     atomic.Int64
}

func NewManager(dispatcher *wallet.Dispatcher, opts Options) (*Manager, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Manager{
		sessions:   make(map[uint64]*session),
		dispatcher: dispatcher,
		opts:       opts.withDefaults(),
	}, nil
}

// sessionFor returns the owner's session, creating the Idle one on first
// contact. Sessions are never removed; growth is bounded by the number
// of distinct owners.
func (m *Manager) sessionFor(owner uint64) *session {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[owner]
	if !ok {
		s = &session{state: idleState()}
		m.sessions[owner] = s
	}
	return s
}

// setState transitions a session (its mutex must be held) and keeps the
// mid-flow gauge current.
func (m *Manager) setState(s *session, next State) {
	prev := s.state
	s.state = next
	if (prev.Kind == Idle) != (next.Kind == Idle) {
		var n int64
		if next.Kind != Idle {
			n = m.active.Add(1)
		} else {
			n = m.active.Add(-1)
		}
		monitoring.SetActiveDialogs(int(n))
	}
}

// StateOf reports the owner's current state, for tests and host policy.
func (m *Manager) StateOf(owner uint64) State {
	s := m.sessionFor(owner)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Reset forces the owner back to Idle, discarding in-progress data. The
// host calls this for idle timeouts; /cancel uses it too.
func (m *Manager) Reset(owner uint64) {
	s := m.sessionFor(owner)
	s.mu.Lock()
	defer s.mu.Unlock()
	m.setState(s, idleState())
}

// OnCommand feeds a command into the owner's machine and returns the
// replies to send back.
func (m *Manager) OnCommand(owner uint64, username string, cmd Command, arg string) []string {
	s := m.sessionFor(owner)
	s.mu.Lock()
	defer s.mu.Unlock()

	if cmd == CmdCancel {
		if s.state.Kind == Idle {
			return []string{MsgNothingToDo}
		}
		m.setState(s, idleState())
		return []string{MsgCancelled}
	}

	if s.state.Kind != Idle {
		if m.opts.Midflow == MidflowReject {
			return []string{MsgMidflowReject, m.reprompt(s.state)}
		}
		m.setState(s, idleState())
	}

	switch cmd {
	case CmdCreateWallet:
		return []string{m.createWallet(owner, arg)}
	case CmdGetAddress:
		return []string{m.getAddress(owner)}
	case CmdSignTx:
		m.setState(s, awaitingRecipientState())
		return []string{MsgToWhom}
	default:
		return []string{MsgPlainText}
	}
}

// OnText feeds a free-text reply into the owner's machine. Unparseable
// input is absorbed by re-prompting; it never propagates as an error.
func (m *Manager) OnText(owner uint64, username, text string) []string {
	s := m.sessionFor(owner)
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state.Kind {
	case AwaitingRecipient:
		recipient := strings.TrimSpace(text)
		if recipient == "" {
			return []string{MsgPlainText}
		}
		m.setState(s, awaitingAmountState(recipient))
		return []string{MsgAmount}

	case AwaitingAmount:
		amount, err := strconv.ParseUint(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return []string{MsgNumber}
		}
		reply := m.signTx(owner, username, s.state.Recipient, amount)
		m.setState(s, idleState())
		return []string{reply}

	default:
		// free text while Idle is not part of any flow
		return []string{MsgPlainText}
	}
}

func (m *Manager) createWallet(owner uint64, schemeArg string) string {
	scheme := strings.TrimSpace(schemeArg)
	if scheme == "" {
		scheme = m.opts.DefaultScheme
	}

	overwrite := m.opts.Recreate == RecreateOverwrite
	pub, err := m.dispatcher.Generate(scheme, owner, overwrite)
	if err != nil {
		logx.Warn("DIALOG", "create wallet failed for owner ", owner, ": ", err)
		return m.userMessage(err)
	}

	monitoring.IncreaseWalletCount(scheme)
	return "Wallet created. Address: " + wallet.Address(pub)
}

func (m *Manager) getAddress(owner uint64) string {
	pub, err := m.dispatcher.Public(owner)
	if err != nil {
		if errors.IsCode(err, errors.ErrCodeKeyNotFound) {
			return MsgNoWallet
		}
		logx.Error("DIALOG", "get address failed for owner ", owner, ": ", err)
		return m.userMessage(err)
	}
	return wallet.Address(pub)
}

func (m *Manager) signTx(owner uint64, username, recipient string, amount uint64) string {
	from := username
	if from == "" {
		from = strconv.FormatUint(owner, 10)
	}

	tx := types.UnsignedTx{From: from, To: recipient, Amount: amount}
	sig, scheme, err := m.dispatcher.Sign(owner, tx.CanonicalBytes())
	if err != nil {
		monitoring.RecordRejectedSign(rejectReason(err))
		logx.Warn("DIALOG", "sign failed for owner ", owner, ": ", err)
		return m.userMessage(err)
	}

	monitoring.IncreaseSignedTxCount(string(scheme))
	signed := tx.WithSignature(sig)
	return signed.String()
}

// userMessage maps a typed error to its user-facing text without leaking
// internals.
func (m *Manager) userMessage(err error) string {
	switch errors.CodeOf(err) {
	case errors.ErrCodeKeyNotFound:
		return MsgNoWallet
	case errors.ErrCodeAlreadyExists:
		return errors.ErrMsgAlreadyExists
	case errors.ErrCodeUnknownScheme:
		return errors.ErrMsgUnknownScheme + " (supported: " + strings.Join(m.dispatcher.Schemes(), ", ") + ")"
	case errors.ErrCodeSchemeMismatch:
		return errors.ErrMsgSchemeMismatch
	case errors.ErrCodeKeyDecode:
		return errors.ErrMsgKeyDecode
	case errors.ErrCodeStorage:
		return errors.ErrMsgStorage
	default:
		return errors.ErrMsgInternal
	}
}

func (m *Manager) reprompt(st State) string {
	switch st.Kind {
	case AwaitingRecipient:
		return MsgToWhom
	case AwaitingAmount:
		return MsgAmount
	default:
		return MsgPlainText
	}
}

func rejectReason(err error) monitoring.SignRejectedReason {
	switch errors.CodeOf(err) {
	case errors.ErrCodeKeyNotFound:
		return monitoring.SignNoWallet
	case errors.ErrCodeKeyDecode:
		return monitoring.SignKeyDecode
	case errors.ErrCodeStorage:
		return monitoring.SignStorage
	default:
		return monitoring.SignRejectedOther
	}
}
