package logging

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	rotatelogs "github.com/lestrrat/go-file-rotatelogs"
	"github.com/pkg/errors"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

// Level is the severity of a CPrint record.
type Level uint32

const (
	PANIC Level = iota
	FATAL
	ERROR
	WARN
	INFO
	DEBUG
)

const (
	defaultMaxAge       = 7 * 24 * time.Hour
	defaultRotationTime = 24 * time.Hour
)

// LogFormat carries the structured fields of a single record.
type LogFormat map[string]interface{}

var (
	ErrInvalidLevel = errors.New("invalid log level")

	logger        = newLogger()
	disableCPrint bool
	mu            sync.Mutex
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = os.Stdout
	l.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	l.Level = logrus.InfoLevel
	return l
}

var levelNames = map[string]Level{
	"panic": PANIC,
	"fatal": FATAL,
	"error": ERROR,
	"warn":  WARN,
	"info":  INFO,
	"debug": DEBUG,
}

// ParseLevel converts a config level name to a Level.
func ParseLevel(name string) (Level, error) {
	lvl, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return INFO, errors.Wrapf(ErrInvalidLevel, "%q", name)
	}
	return lvl, nil
}

func (l Level) logrusLevel() logrus.Level {
	switch l {
	case PANIC:
		return logrus.PanicLevel
	case FATAL:
		return logrus.FatalLevel
	case ERROR:
		return logrus.ErrorLevel
	case WARN:
		return logrus.WarnLevel
	case DEBUG:
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}

// Init routes records to rotated files under logDir in addition to stdout.
// A zero age keeps files for a week. When disableStdout is set only the file
// hook receives records.
func Init(logDir, filename, level string, age uint32, disableStdout bool) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(logDir, 0700); err != nil {
		return errors.Wrap(err, "create log dir")
	}

	maxAge := defaultMaxAge
	if age > 0 {
		maxAge = time.Duration(age) * time.Hour
	}
	base := filepath.Join(logDir, filename)
	writer, err := rotatelogs.New(
		base+".%Y%m%d%H%M",
		rotatelogs.WithLinkName(base),
		rotatelogs.WithMaxAge(maxAge),
		rotatelogs.WithRotationTime(defaultRotationTime),
	)
	if err != nil {
		return errors.Wrap(err, "create rotate logs")
	}

	hook := lfshook.NewHook(lfshook.WriterMap{
		logrus.DebugLevel: writer,
		logrus.InfoLevel:  writer,
		logrus.WarnLevel:  writer,
		logrus.ErrorLevel: writer,
		logrus.FatalLevel: writer,
		logrus.PanicLevel: writer,
	}, &logrus.JSONFormatter{})

	mu.Lock()
	defer mu.Unlock()
	l := newLogger()
	l.Level = lvl.logrusLevel()
	l.Hooks.Add(hook)
	if disableStdout {
		l.Out = ioutil.Discard
	}
	logger = l
	return nil
}

// DisableCPrint silences every CPrint call. Used by tools that print their own
// output.
func DisableCPrint(disable bool) {
	mu.Lock()
	disableCPrint = disable
	mu.Unlock()
}

// CPrint writes msg with the given fields at level. PANIC records are written
// and then raised as a panic even when printing is disabled.
func CPrint(level Level, msg string, data LogFormat) {
	mu.Lock()
	l, disabled := logger, disableCPrint
	mu.Unlock()

	if disabled && level != PANIC {
		return
	}

	entry := l.WithFields(logrus.Fields(data))
	if _, file, line, ok := runtime.Caller(1); ok {
		entry = entry.WithField("file", fmt.Sprintf("%s:%d", filepath.Base(file), line))
	}

	switch level {
	case PANIC:
		entry.Panic(msg)
	case FATAL:
		entry.Fatal(msg)
	case ERROR:
		entry.Error(msg)
	case WARN:
		entry.Warn(msg)
	case DEBUG:
		entry.Debug(msg)
	default:
		entry.Info(msg)
	}
}
