// Command logdemo prints a few sample records through the styled line
// formatter, for trying out GO_LOG, GO_LOG_STYLE and the presentation
// toggles.
package main

import (
	"fmt"
	"os"

	"github.com/LuckyTurtleDev/my-env-logger-style/env"
)

func main() {
	cmd := newRootCmd(os.Stderr, &env.OSReader{})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
