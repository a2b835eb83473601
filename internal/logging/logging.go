package logging

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/pattern-playground/internal/config"
)

var logLevelMatches = map[string]zerolog.Level{
	"NONE":  zerolog.Disabled,
	"TRACE": zerolog.TraceLevel,
	"DEBUG": zerolog.DebugLevel,
	"INFO":  zerolog.InfoLevel,
	"WARN":  zerolog.WarnLevel,
	"ERROR": zerolog.ErrorLevel,
	"FATAL": zerolog.FatalLevel,
}

// Level parses a level name, falling back to info.
func Level(name string) zerolog.Level {
	if l, ok := logLevelMatches[strings.ToUpper(name)]; ok {
		return l
	}
	return zerolog.InfoLevel
}

func configureConsoleWriter(out io.Writer) {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "2006-01-02 15:04:05",
	})
}

func isTerminalAttached() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) && runtime.GOOS != "windows"
}

// Setup configures the global logger. The returned function closes the
// log file, if one was opened.
func Setup(cfg config.Log) (func(), error) {
	zerolog.SetGlobalLevel(Level(cfg.Level))
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("error opening log file: %w", err)
		}
		log.Logger = log.Output(f)
		return func() {
			_ = f.Close()
		}, nil
	}
	if isTerminalAttached() {
		configureConsoleWriter(os.Stdout)
	}
	return func() {}, nil
}
