package bot

import (
	"testing"

	"walletbot/db"
	"walletbot/dialog"
	"walletbot/keystore"
	"walletbot/wallet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	cases := []struct {
		text     string
		wantName string
		wantArg  string
		wantOk   bool
	}{
		{"/help", "help", "", true},
		{"/createwallet ed25519", "createwallet", "ed25519", true},
		{"/CreateWallet", "createwallet", "", true},
		{"/signtx@mybot", "signtx", "", true},
		{"  /cancel  ", "cancel", "", true},
		{"bob", "", "", false},
		{"42", "", "", false},
		{"", "", "", false},
		{"/", "", "", false},
	}

	for _, c := range cases {
		name, arg, ok := parseCommand(c.text)
		assert.Equal(t, c.wantOk, ok, "text %q", c.text)
		assert.Equal(t, c.wantName, name, "text %q", c.text)
		assert.Equal(t, c.wantArg, arg, "text %q", c.text)
	}
}

func testService(t *testing.T) *Service {
	t.Helper()
	ks, err := keystore.NewGenericKeyStore(db.NewMemoryProvider(), nil)
	require.NoError(t, err)
	d := wallet.NewDispatcher(ks)
	dialogs, err := dialog.NewManager(d, dialog.Options{})
	require.NoError(t, err)
	return NewService(nil, dialogs, d.Schemes(), 0)
}

func TestHandleHelp(t *testing.T) {
	s := testService(t)

	replies := s.handle(Update{Owner: 1, Text: "/help"})
	require.Len(t, replies, 1)
	for _, cmd := range []string{"/help", "/createwallet", "/getaddress", "/signtx", "/cancel"} {
		assert.Contains(t, replies[0], cmd)
	}
	assert.Contains(t, replies[0], "ed25519")
}

func TestHandleUnknownCommand(t *testing.T) {
	s := testService(t)

	replies := s.handle(Update{Owner: 1, Text: "/fly"})
	require.Len(t, replies, 2)
	assert.Equal(t, "Unknown command.", replies[0])
}

func TestHandleFullFlow(t *testing.T) {
	s := testService(t)

	replies := s.handle(Update{Owner: 1, Username: "alice", Text: "/createwallet"})
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0], "Wallet created")

	replies = s.handle(Update{Owner: 1, Username: "alice", Text: "/signtx"})
	assert.Equal(t, []string{dialog.MsgToWhom}, replies)

	replies = s.handle(Update{Owner: 1, Username: "alice", Text: "bob"})
	assert.Equal(t, []string{dialog.MsgAmount}, replies)

	replies = s.handle(Update{Owner: 1, Username: "alice", Text: "42"})
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0], `"to":"bob"`)
	assert.Contains(t, replies[0], `"amount":42`)
	assert.Contains(t, replies[0], `"sign":"`)
}

func TestHandleCommandArgPassthrough(t *testing.T) {
	s := testService(t)

	replies := s.handle(Update{Owner: 1, Text: "/createwallet schnorr-secp256k1"})
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0], "Wallet created")
}
