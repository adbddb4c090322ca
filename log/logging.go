// SPDX-License-Identifier: GPL-3.0-or-later
package log

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	loggers   map[string]*logrus.Logger
	loggersMu sync.Mutex
)

func NewPrefixLogger(prefix string) *PrefixLogger {
	stringPrefix := fmt.Sprintf("%s:\t", prefix)

	formatter := &logrus.TextFormatter{}
	formatter.FullTimestamp = true
	formatter.TimestampFormat = "15:04:05"
	formatter.DisableColors = strings.Contains(runtime.GOOS, "windows")
	return &PrefixLogger{
		formatter,
		[]byte(stringPrefix),
	}
}

type PrefixLogger struct {
	formatter logrus.Formatter
	prefix    []byte
}

func (f *PrefixLogger) Format(entry *logrus.Entry) ([]byte, error) {
	text, err := f.formatter.Format(entry)
	if err != nil {
		return nil, err
	}
	line := make([]byte, 0, len(f.prefix)+len(text))
	line = append(line, f.prefix...)
	return append(line, text...), nil
}

const (
	LOG_MAIN        = "MA"
	LOG_SENDER      = "SE"
	LOG_RECEIVER    = "RE"
	LOG_SMTP        = "SM"
	LOG_IMAP        = "IM"
	LOG_PERSISTENCE = "PI"
)

var prefixes = []string{
	LOG_MAIN,
	LOG_SENDER,
	LOG_RECEIVER,
	LOG_SMTP,
	LOG_IMAP,
	LOG_PERSISTENCE,
}

func getLevel(loglevel string) logrus.Level {
	switch strings.ToLower(loglevel) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "panic":
		return logrus.PanicLevel
	case "fatal":
		return logrus.FatalLevel
	}

	// Info is default
	return logrus.InfoLevel
}

func initLogger(prefix, loglevel string) {
	loggers[prefix] = logrus.New()
	loggers[prefix].Level = getLevel(loglevel)
	loggers[prefix].Formatter = NewPrefixLogger(prefix)
}

func InitLogging(loglevel string) {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	loggers = make(map[string]*logrus.Logger)
	for _, prefix := range prefixes {
		initLogger(prefix, loglevel)
	}
}

func SetLogLevel(loglevel string) {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	for _, v := range loggers {
		v.Level = getLevel(loglevel)
	}
}

// SetOutput redirects every logger, mostly useful to silence tests.
func SetOutput(out io.Writer) {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	for _, v := range loggers {
		v.Out = out
	}
}

// Logger returns the logger for the given prefix. Logging is initialised at
// info level if InitLogging has not been called yet.
func Logger(logger string) *logrus.Logger {
	loggersMu.Lock()
	if loggers == nil {
		loggers = make(map[string]*logrus.Logger)
		for _, prefix := range prefixes {
			initLogger(prefix, "info")
		}
	}
	l, ok := loggers[logger]
	loggersMu.Unlock()

	if !ok {
		panic("Logger " + logger + " unknown")
	}

	return l
}
