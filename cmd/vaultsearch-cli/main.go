package main

import "vaultsearch/cmd/vaultsearch-cli/cmd"

func main() {
	cmd.Execute()
}
