package cmd

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// InitLogger sends leveled logs to stderr, keeping stdout for the run report.
// logLevel is a go-logging level name such as DEBUG, INFO or WARNING.
func InitLogger(logLevel string) error {
	return initLogger(os.Stderr, logLevel)
}

func initLogger(w io.Writer, logLevel string) error {
	level, err := logging.LogLevel(logLevel)
	if err != nil {
		return err
	}

	backend := logging.NewBackendFormatter(
		logging.NewLogBackend(w, "", 0),
		logging.MustStringFormatter(`%{time:15:04:05.000} %{level:-7s} %{module}: %{message}`),
	)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(level, "")

	logging.SetBackend(leveled)
	return nil
}
