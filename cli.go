//go:build cli
// +build cli

package main

import (
	_ "storeadmin.GO/custom"

	"storeadmin.GO/cmd"
	"storeadmin.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
