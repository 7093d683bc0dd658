package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"walletbot/jsonx"
	"walletbot/logx"
	"walletbot/types"
	"walletbot/wallet"

	"github.com/mr-tron/base58"
	"github.com/spf13/cobra"
)

type VerifyConfig struct {
	TxJSON  string
	TxFile  string
	Address string
	Scheme  string
}

var verifyConfig VerifyConfig

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify [flags]",
	Short: "Verify a signed transaction",
	Long: `Checks the sign field of a signed transaction against an address
under the given scheme. The transaction is the JSON the bot emits after
a completed signing conversation.

Examples:
  walletbot verify -s ed25519 -a 5GrwvaEF... -j '{"from":"alice","to":"bob","amount":42,"sign":"..."}'`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := verifyTx(verifyConfig); err != nil {
			logx.Error("VERIFY CLI", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.PersistentFlags().StringVarP(&verifyConfig.TxJSON, "tx", "j", "", "signed transaction JSON")
	verifyCmd.PersistentFlags().StringVarP(&verifyConfig.TxFile, "tx-file", "f", "", "file holding the signed transaction JSON")
	verifyCmd.PersistentFlags().StringVarP(&verifyConfig.Address, "address", "a", "", "signer address (base58 public key)")
	verifyCmd.PersistentFlags().StringVarP(&verifyConfig.Scheme, "scheme", "s", string(wallet.SchemeEd25519), "signature scheme")
}

func verifyTx(vc VerifyConfig) error {
	raw := vc.TxJSON
	if raw == "" {
		if vc.TxFile == "" {
			return fmt.Errorf("one of --tx or --tx-file is required")
		}
		data, err := os.ReadFile(vc.TxFile)
		if err != nil {
			return err
		}
		raw = string(data)
	}
	if vc.Address == "" {
		return fmt.Errorf("--address is required")
	}

	var signed types.SignedTx
	if err := jsonx.Unmarshal([]byte(raw), &signed); err != nil {
		return fmt.Errorf("malformed transaction JSON: %w", err)
	}

	pub, err := base58.Decode(vc.Address)
	if err != nil {
		return fmt.Errorf("malformed address: %w", err)
	}
	sig, err := hex.DecodeString(signed.Sign)
	if err != nil {
		return fmt.Errorf("malformed sign field: %w", err)
	}

	unsigned := signed.Unsigned()
	if wallet.Verify(wallet.Scheme(vc.Scheme), pub, unsigned.CanonicalBytes(), sig) {
		fmt.Println("VALID")
		return nil
	}
	fmt.Println("INVALID")
	os.Exit(1)
	return nil
}
