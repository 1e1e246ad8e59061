package logger

import (
	"log"
	"os"
)

// Log is the process-wide operational logger. Until Init runs it writes to
// stderr so early failures are never lost.
var Log = log.New(os.Stderr, "", log.LstdFlags)

func Init(logFilePath string) error {
	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return err
	}

	Log = log.New(file, "", log.LstdFlags)
	Log.Println("Logger initialized.")
	return nil
}
