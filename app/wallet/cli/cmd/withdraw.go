package cmd

import (
	"log"

	"github.com/riffworks/riff/foundation/riff/account"
	"github.com/riffworks/riff/foundation/riff/call"
	"github.com/spf13/cobra"
)

var withdrawKind string

// withdrawCmd represents the withdraw command
var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Withdraw accrued earnings for a track",
	Run:   withdrawRun,
}

func init() {
	rootCmd.AddCommand(withdrawCmd)
	withdrawCmd.Flags().Uint64VarP(&trackID, "track", "t", 0, "Id of the track.")
	withdrawCmd.Flags().StringVarP(&withdrawKind, "kind", "k", "earnings", "earnings or platform.")
}

func withdrawRun(cmd *cobra.Command, args []string) {
	privateKey, err := loadPrivateKey()
	if err != nil {
		log.Fatal(err)
	}

	nonce, err := nextNonce(account.PublicKeyToAccountID(privateKey.PublicKey))
	if err != nil {
		log.Fatal(err)
	}

	withdrawCall := call.WithdrawCall{
		Nonce:   nonce,
		Kind:    call.WithdrawKind(withdrawKind),
		TrackID: trackID,
	}

	signed, err := withdrawCall.Sign(privateKey)
	if err != nil {
		log.Fatal(err)
	}

	if err := submit("/v1/withdrawals/submit", signed); err != nil {
		log.Fatal(err)
	}
}
