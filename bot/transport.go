package bot

// Update is one inbound user action delivered by the chat collaborator:
// a command or a free-text reply from a single owner.
type Update struct {
	// Owner is the stable chat identity; never zero for a valid update
	Owner uint64

	// Username is the display handle used as the tx "from" field; may be
	// empty, in which case the owner id stands in
	Username string

	// Text is the raw message text, commands included
	Text string
}

// Transport is the narrow seam to the chat system. The real chat
// backend (long polling, webhook, whatever) lives behind it; the core
// only consumes updates and emits replies.
type Transport interface {
	// Updates delivers inbound actions; the channel closes when the
	// transport shuts down
	Updates() <-chan Update

	// Send delivers text back to the owner's chat
	Send(owner uint64, text string) error
}
