package bot

import "strings"

// Chat command names, without the leading slash.
const (
	cmdHelp         = "help"
	cmdCreateWallet = "createwallet"
	cmdGetAddress   = "getaddress"
	cmdSignTx       = "signtx"
	cmdCancel       = "cancel"
)

// parseCommand splits "/name arg..." into its parts. ok is false for
// plain text; unknown command names still parse so the service can
// answer with the help text instead of treating them as flow input.
func parseCommand(text string) (name, arg string, ok bool) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "/") {
		return "", "", false
	}

	fields := strings.Fields(trimmed[1:])
	if len(fields) == 0 {
		return "", "", false
	}

	name = strings.ToLower(fields[0])
	// strip a "@botname" suffix the chat system may append
	if i := strings.IndexByte(name, '@'); i >= 0 {
		name = name[:i]
	}
	arg = strings.Join(fields[1:], " ")
	return name, arg, true
}
