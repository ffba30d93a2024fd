package cmd

import (
	"log"

	"github.com/riffworks/riff/foundation/riff/account"
	"github.com/riffworks/riff/foundation/riff/call"
	"github.com/spf13/cobra"
)

var (
	trackCID   string
	trackTitle string
	trackDesc  string
	trackID    uint64
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload a track to the catalog",
	Run:   uploadRun,
}

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete one of your tracks",
	Run:   deleteRun,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
	uploadCmd.Flags().StringVarP(&trackCID, "cid", "c", "", "Content id of the audio file.")
	uploadCmd.Flags().StringVarP(&trackTitle, "title", "t", "", "Title of the track.")
	uploadCmd.Flags().StringVarP(&trackDesc, "description", "d", "", "Description of the track.")

	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().Uint64VarP(&trackID, "track", "t", 0, "Id of the track.")
}

func uploadRun(cmd *cobra.Command, args []string) {
	privateKey, err := loadPrivateKey()
	if err != nil {
		log.Fatal(err)
	}

	nonce, err := nextNonce(account.PublicKeyToAccountID(privateKey.PublicKey))
	if err != nil {
		log.Fatal(err)
	}

	trackCall := call.TrackCall{
		Nonce:       nonce,
		Kind:        call.TrackUpload,
		CID:         trackCID,
		Title:       trackTitle,
		Description: trackDesc,
	}

	signed, err := trackCall.Sign(privateKey)
	if err != nil {
		log.Fatal(err)
	}

	if err := submit("/v1/tracks/submit", signed); err != nil {
		log.Fatal(err)
	}
}

func deleteRun(cmd *cobra.Command, args []string) {
	privateKey, err := loadPrivateKey()
	if err != nil {
		log.Fatal(err)
	}

	nonce, err := nextNonce(account.PublicKeyToAccountID(privateKey.PublicKey))
	if err != nil {
		log.Fatal(err)
	}

	trackCall := call.TrackCall{
		Nonce:   nonce,
		Kind:    call.TrackDelete,
		TrackID: trackID,
	}

	signed, err := trackCall.Sign(privateKey)
	if err != nil {
		log.Fatal(err)
	}

	if err := submit("/v1/tracks/submit", signed); err != nil {
		log.Fatal(err)
	}
}
