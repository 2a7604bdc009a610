//go:build debug

package xlog

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[tessellate DEBUG] ", log.LstdFlags)

// Debugf logs a debug message. Built in only under -tags debug; see
// nodebug.go for the production stub.
func Debugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
