// pomostart - Desktop Session Pomodoro Launcher
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/pomostart

package main

import (
	"os"

	"github.com/ariel-frischer/pomostart/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
