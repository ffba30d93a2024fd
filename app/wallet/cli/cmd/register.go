package cmd

import (
	"log"

	"github.com/riffworks/riff/foundation/riff/account"
	"github.com/riffworks/riff/foundation/riff/call"
	"github.com/spf13/cobra"
)

var (
	profileName string
	profileBio  string
	profileKind string
)

// registerCmd represents the register command
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register or update your profile",
	Run:   registerRun,
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVarP(&profileName, "name", "n", "", "Display name for the profile.")
	registerCmd.Flags().StringVarP(&profileBio, "bio", "b", "", "Bio for the profile.")
	registerCmd.Flags().StringVarP(&profileKind, "kind", "k", "register", "register or update.")
}

func registerRun(cmd *cobra.Command, args []string) {
	privateKey, err := loadPrivateKey()
	if err != nil {
		log.Fatal(err)
	}

	nonce, err := nextNonce(account.PublicKeyToAccountID(privateKey.PublicKey))
	if err != nil {
		log.Fatal(err)
	}

	profileCall := call.ProfileCall{
		Nonce: nonce,
		Kind:  call.ProfileKind(profileKind),
		Name:  profileName,
		Bio:   profileBio,
	}

	signed, err := profileCall.Sign(privateKey)
	if err != nil {
		log.Fatal(err)
	}

	if err := submit("/v1/profiles/submit", signed); err != nil {
		log.Fatal(err)
	}
}
