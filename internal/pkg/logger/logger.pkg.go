package logger

import (
	"io"
	"log"
	"os"
)

var (
	Debug   = log.New(os.Stdout, "[DEBUG]\t", log.Ldate|log.Ltime|log.Lshortfile)
	Info    = log.New(os.Stdout, "[INFO]\t", log.Ldate|log.Ltime)
	Warning = log.New(os.Stdout, "[WARNING]\t", log.Ldate|log.Ltime|log.Lshortfile)
	Error   = log.New(os.Stdout, "[ERROR]\t", log.Ldate|log.Ltime|log.Lshortfile)
	HTTP    = log.New(os.Stdout, "[HTTP]\t", log.Ldate|log.Ltime)
)

// Setup points every logger at out. Debug output is dropped unless debug is set.
func Setup(out io.Writer, debug bool) {
	if out == nil {
		out = os.Stdout
	}
	HTTP = log.New(out, "[HTTP]\t", log.Ldate|log.Ltime)
	Info = log.New(out, "[INFO]\t", log.Ldate|log.Ltime)
	Warning = log.New(out, "[WARNING]\t", log.Ldate|log.Ltime|log.Lshortfile)
	Error = log.New(out, "[ERROR]\t", log.Ldate|log.Ltime|log.Lshortfile)

	debugOut := io.Discard
	if debug {
		debugOut = out
	}
	Debug = log.New(debugOut, "[DEBUG]\t", log.Ldate|log.Ltime|log.Lshortfile)
}
