// Package main is the entry point for the shogistats CLI tool, which imports
// shogi title-match and player-biography records and computes career,
// standings, and head-to-head statistics.
package main

import "github.com/ymori/shogistats/cmd"

func main() {
	cmd.Execute()
}
