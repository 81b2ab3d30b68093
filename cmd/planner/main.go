// Package main はプランナーCLIのエントリーポイントです。
package main

import (
	"fmt"
	"os"

	"daily-planner/internal/cli"
)

// version はビルド時に -ldflags で設定します。
var version = "dev"

func main() {
	if err := cli.NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
