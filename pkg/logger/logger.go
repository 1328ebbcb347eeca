package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	File       string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Level      string
	Format     string
}

func NewLogger(opts Options) {
	var out io.Writer = os.Stdout
	if opts.File != "" {
		logFile := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSize,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAge,
		}
		// Set log output to the file and console
		out = io.MultiWriter(os.Stdout, logFile)
	}
	logrus.SetOutput(out)

	if opts.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	logrus.Info("Logging has been initialized...")
}

func Info(msg string, keyvals ...any) {
	logrus.WithFields(Fields(keyvals...)).Info(msg)
}

func Warn(msg string, keyvals ...any) {
	logrus.WithFields(Fields(keyvals...)).Warn(msg)
}

func Error(msg string, keyvals ...any) {
	logrus.WithFields(Fields(keyvals...)).Error(msg)
}

// Fields converts alternating key/value pairs into logrus fields. A trailing
// key without a value is kept under "!BADKEY".
func Fields(keyvals ...any) logrus.Fields {
	fields := make(logrus.Fields, len(keyvals)/2)
	for i := 0; i < len(keyvals); i += 2 {
		if i+1 >= len(keyvals) {
			fields["!BADKEY"] = keyvals[i]
			break
		}
		key, ok := keyvals[i].(string)
		if !ok {
			key = fmt.Sprint(keyvals[i])
		}
		value := keyvals[i+1]
		if err, ok := value.(error); ok {
			value = err.Error()
		}
		fields[key] = value
	}
	return fields
}
