package cmd

import (
	"log"

	"github.com/riffworks/riff/foundation/riff/account"
	"github.com/riffworks/riff/foundation/riff/call"
	"github.com/spf13/cobra"
)

var (
	contribAccount string
	contribBps     uint64
	contribKind    string
)

// contributorCmd represents the contributor command
var contributorCmd = &cobra.Command{
	Use:   "contributor",
	Short: "Add or configure a revenue share on one of your tracks",
	Run:   contributorRun,
}

func init() {
	rootCmd.AddCommand(contributorCmd)
	contributorCmd.Flags().Uint64VarP(&trackID, "track", "t", 0, "Id of the track.")
	contributorCmd.Flags().StringVarP(&contribAccount, "contributor", "c", "", "Account of the contributor.")
	contributorCmd.Flags().Uint64VarP(&contribBps, "bps", "b", 0, "Share in basis points.")
	contributorCmd.Flags().StringVarP(&contribKind, "kind", "k", "add", "add or configure.")
}

func contributorRun(cmd *cobra.Command, args []string) {
	privateKey, err := loadPrivateKey()
	if err != nil {
		log.Fatal(err)
	}

	contributor, err := account.ToAccountID(contribAccount)
	if err != nil {
		log.Fatal(err)
	}

	nonce, err := nextNonce(account.PublicKeyToAccountID(privateKey.PublicKey))
	if err != nil {
		log.Fatal(err)
	}

	contributorCall := call.ContributorCall{
		Nonce:         nonce,
		Kind:          call.ContributorKind(contribKind),
		TrackID:       trackID,
		Contributor:   contributor,
		PercentageBps: contribBps,
	}

	signed, err := contributorCall.Sign(privateKey)
	if err != nil {
		log.Fatal(err)
	}

	if err := submit("/v1/contributors/submit", signed); err != nil {
		log.Fatal(err)
	}
}
