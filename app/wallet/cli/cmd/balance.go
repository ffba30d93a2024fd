package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/riffworks/riff/foundation/riff/account"
	"github.com/spf13/cobra"
)

type actInfo struct {
	Account account.AccountID `json:"account"`
	Name    string            `json:"name"`
	Balance uint64            `json:"balance"`
	Nonce   uint64            `json:"nonce"`
}

type accountsInfo struct {
	LatestSeq uint64    `json:"latest_seq"`
	Accounts  []actInfo `json:"accounts"`
}

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Print your token balance.",
	Run:   balanceRun,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}

func balanceRun(cmd *cobra.Command, args []string) {
	privateKey, err := loadPrivateKey()
	if err != nil {
		log.Fatal(err)
	}

	accountID := account.PublicKeyToAccountID(privateKey.PublicKey)
	fmt.Println("For Account:", accountID)

	resp, err := http.Get(fmt.Sprintf("%s/v1/accounts/list/%s", url, accountID))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	var accounts accountsInfo
	if err := json.NewDecoder(resp.Body).Decode(&accounts); err != nil {
		log.Fatal(err)
	}

	if len(accounts.Accounts) > 0 {
		fmt.Println(accounts.Accounts[0].Balance)
	}
}
