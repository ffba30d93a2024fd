package main

import "github.com/riffworks/riff/app/wallet/cli/cmd"

func main() {
	cmd.Execute()
}
