package cmd

import (
	"log"

	"github.com/riffworks/riff/foundation/riff/account"
	"github.com/riffworks/riff/foundation/riff/call"
	"github.com/spf13/cobra"
)

var (
	approveSpender string
	approveAmount  uint64
)

// approveCmd represents the approve command
var approveCmd = &cobra.Command{
	Use:   "approve",
	Short: "Approve the settlement engine to pull action fees",
	Run:   approveRun,
}

func init() {
	rootCmd.AddCommand(approveCmd)
	approveCmd.Flags().StringVarP(&approveSpender, "spender", "s", "", "Account allowed to pull fees.")
	approveCmd.Flags().Uint64VarP(&approveAmount, "amount", "m", 0, "Allowance amount.")
}

func approveRun(cmd *cobra.Command, args []string) {
	privateKey, err := loadPrivateKey()
	if err != nil {
		log.Fatal(err)
	}

	spender, err := account.ToAccountID(approveSpender)
	if err != nil {
		log.Fatal(err)
	}

	nonce, err := nextNonce(account.PublicKeyToAccountID(privateKey.PublicKey))
	if err != nil {
		log.Fatal(err)
	}

	approveCall := call.ApproveCall{
		Nonce:   nonce,
		Spender: spender,
		Amount:  approveAmount,
	}

	signed, err := approveCall.Sign(privateKey)
	if err != nil {
		log.Fatal(err)
	}

	if err := submit("/v1/approvals/submit", signed); err != nil {
		log.Fatal(err)
	}
}
