package cmd

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"walletbot/logx"
	"walletbot/wallet"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/spf13/cobra"
)

type GenKeyConfig struct {
	Scheme  string
	OutFile string
}

var genKeyConfig GenKeyConfig

// genKeyCmd represents the genkey command
var genKeyCmd = &cobra.Command{
	Use:   "genkey [flags]",
	Short: "Generate an offline keypair",
	Long: `Generates a keypair under the given scheme without touching any
keystore, printing the private key hex and the derived address. Useful
for provisioning and for feeding the verify command.

Examples:
  # Generate an ed25519 keypair
  walletbot genkey -s ed25519

  # Generate a schnorr keypair and save the private key
  walletbot genkey -s schnorr-secp256k1 -o key.txt`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := generateKey(genKeyConfig); err != nil {
			logx.Error("GENKEY CLI", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(genKeyCmd)

	genKeyCmd.PersistentFlags().StringVarP(&genKeyConfig.Scheme, "scheme", "s", string(wallet.SchemeEd25519), "signature scheme")
	genKeyCmd.PersistentFlags().StringVarP(&genKeyConfig.OutFile, "out", "o", "", "write private key hex to file")
}

func generateKey(gc GenKeyConfig) error {
	var privHex string
	var pub []byte

	switch wallet.Scheme(gc.Scheme) {
	case wallet.SchemeEd25519:
		pubKey, privKey, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return err
		}
		privHex = hex.EncodeToString(privKey.Seed())
		pub = pubKey
	case wallet.SchemeSchnorr:
		privKey, err := secp256k1.GeneratePrivateKey()
		if err != nil {
			return err
		}
		privHex = hex.EncodeToString(privKey.Serialize())
		pub = privKey.PubKey().SerializeCompressed()
	default:
		return fmt.Errorf("unsupported scheme: %s", gc.Scheme)
	}

	fmt.Printf("Private Key: %s\n", privHex)
	fmt.Printf("Public Key: %s\n", hex.EncodeToString(pub))
	fmt.Printf("Address: %s\n", wallet.Address(pub))

	if gc.OutFile != "" {
		if err := os.WriteFile(gc.OutFile, []byte(privHex), 0600); err != nil {
			return err
		}
		fmt.Printf("Private key written to %s\n", gc.OutFile)
	}
	return nil
}
