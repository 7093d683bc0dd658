package dialog

// StateKind enumerates the conversation states. The flow per owner is
//
//	Idle -> AwaitingRecipient -> AwaitingAmount -> Idle
//
// with every terminal outcome (signed tx, cancel, reset) landing back in
// Idle.
type StateKind int

const (
	Idle StateKind = iota
	AwaitingRecipient
	AwaitingAmount
)

func (k StateKind) String() string {
	switch k {
	case Idle:
		return "idle"
	case AwaitingRecipient:
		return "awaiting_recipient"
	case AwaitingAmount:
		return "awaiting_amount"
	default:
		return "unknown"
	}
}

// State is a tagged variant: Recipient is only populated in
// AwaitingAmount, where the pending transfer already has a destination.
type State struct {
	Kind      StateKind
	Recipient string
}

func idleState() State {
	return State{Kind: Idle}
}

func awaitingRecipientState() State {
	return State{Kind: AwaitingRecipient}
}

func awaitingAmountState(recipient string) State {
	return State{Kind: AwaitingAmount, Recipient: recipient}
}
