package main

import "roamstats/cmd/roamstats-cli/cmd"

func main() {
	cmd.Execute()
}
