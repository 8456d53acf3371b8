// Package foo logs from a second package so the demo shows the module
// column growing.
package foo

import "github.com/LuckyTurtleDev/my-env-logger-style/logger"

// PrintLogs logs through the default logger
func PrintLogs() {
	logger.Info("Hello, from mod")
	logger.Debug("resolved example.org to 93.184.216.34")
}
