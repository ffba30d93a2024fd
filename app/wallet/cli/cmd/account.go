package cmd

import (
	"fmt"
	"log"

	"github.com/riffworks/riff/foundation/riff/account"
	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Print account for the specific wallet",
	Run:   accountRun,
}

func init() {
	rootCmd.AddCommand(accountCmd)
}

func accountRun(cmd *cobra.Command, args []string) {
	privateKey, err := loadPrivateKey()
	if err != nil {
		log.Fatal(err)
	}

	accountID := account.PublicKeyToAccountID(privateKey.PublicKey)
	fmt.Println(accountID)
}
