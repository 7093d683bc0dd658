package main

import (
	"os"
	"runtime/debug"

	"walletbot/cmd"
	"walletbot/logx"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			_ = logx.Errorf("BOT CRASHED: %v\n%s", r, debug.Stack())
			os.Exit(1)
		}
	}()

	cmd.Execute()
}
