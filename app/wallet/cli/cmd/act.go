package cmd

import (
	"log"

	"github.com/riffworks/riff/foundation/riff/account"
	"github.com/riffworks/riff/foundation/riff/call"
	"github.com/spf13/cobra"
)

var (
	actionKind    string
	actionMessage string
)

// actCmd represents the act command
var actCmd = &cobra.Command{
	Use:   "act",
	Short: "Perform a fan action against a track",
	Run:   actRun,
}

func init() {
	rootCmd.AddCommand(actCmd)
	actCmd.Flags().Uint64VarP(&trackID, "track", "t", 0, "Id of the track.")
	actCmd.Flags().StringVarP(&actionKind, "kind", "k", "play", "play, like, comment or banger.")
	actCmd.Flags().StringVarP(&actionMessage, "message", "m", "", "Comment text, required for comments.")
}

func actRun(cmd *cobra.Command, args []string) {
	privateKey, err := loadPrivateKey()
	if err != nil {
		log.Fatal(err)
	}

	kind, err := call.ParseActionKind(actionKind)
	if err != nil {
		log.Fatal(err)
	}

	nonce, err := nextNonce(account.PublicKeyToAccountID(privateKey.PublicKey))
	if err != nil {
		log.Fatal(err)
	}

	actionCall := call.ActionCall{
		Nonce:   nonce,
		TrackID: trackID,
		Kind:    kind,
		Message: actionMessage,
	}

	signed, err := actionCall.Sign(privateKey)
	if err != nil {
		log.Fatal(err)
	}

	if err := submit("/v1/actions/submit", signed); err != nil {
		log.Fatal(err)
	}
}
