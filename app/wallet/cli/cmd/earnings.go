package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/riffworks/riff/foundation/riff/account"
	"github.com/spf13/cobra"
)

// earningsCmd represents the earnings command
var earningsCmd = &cobra.Command{
	Use:   "earnings",
	Short: "Print your withdrawable earnings on a track",
	Run:   earningsRun,
}

func init() {
	rootCmd.AddCommand(earningsCmd)
	earningsCmd.Flags().Uint64VarP(&trackID, "track", "t", 0, "Id of the track.")
}

func earningsRun(cmd *cobra.Command, args []string) {
	privateKey, err := loadPrivateKey()
	if err != nil {
		log.Fatal(err)
	}

	accountID := account.PublicKeyToAccountID(privateKey.PublicKey)
	fmt.Println("For Account:", accountID)

	resp, err := http.Get(fmt.Sprintf("%s/v1/tracks/%d/earnings/%s", url, trackID, accountID))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	var earnings struct {
		TrackID uint64 `json:"track_id"`
		Balance uint64 `json:"balance"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&earnings); err != nil {
		log.Fatal(err)
	}

	fmt.Println(earnings.Balance)
}
