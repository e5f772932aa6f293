// Package logger provides the process-wide structured logger.
//
// It wraps logrus with context-aware helpers: every entry picks up the
// trace ID stored in the request context, and log methods accept
// alternating key/value pairs after the message.
package logger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// VersionKey is the field name carrying the application version.
const VersionKey = "version"

// Config holds logger settings, populated from the application configuration.
type Config struct {
	Level      int    `json:"level" yaml:"level"`
	Format     string `json:"format" yaml:"format"`
	Output     string `json:"output" yaml:"output"`
	OutputFile string `json:"output_file" yaml:"output_file"`
}

// Logger represents a logger instance
type Logger struct {
	*logrus.Logger
	version string
	logFile *os.File
	logPath string
}

var (
	// stdLogger is the global logger
	stdLogger *Logger
	// once ensures that the logger is initialized only once
	once sync.Once
)

// StdLogger returns the single logger instance
func StdLogger() *Logger {
	once.Do(func() {
		stdLogger = &Logger{
			Logger: logrus.New(),
		}
		stdLogger.SetFormatter(&logrus.JSONFormatter{})
	})
	return stdLogger
}

// New initializes the standard logger with the given configuration and
// returns its cleanup function.
func New(c *Config) (func(), error) {
	return StdLogger().Init(c)
}

// SetVersion sets the version for logging
func (l *Logger) SetVersion(v string) {
	l.version = v
}

// Init initializes the logger with the given configuration
func (l *Logger) Init(c *Config) (func(), error) {
	if c == nil {
		return func() {}, nil
	}

	l.SetLevel(logrus.Level(c.Level))

	switch c.Format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		l.SetFormatter(&logrus.TextFormatter{})
	}

	switch c.Output {
	case "stdout", "":
		l.SetOutput(os.Stdout)
	case "stderr":
		l.SetOutput(os.Stderr)
	case "file":
		l.logPath = c.OutputFile
		if l.logPath != "" {
			if err := l.setupLogFile(); err != nil {
				return nil, err
			}
			go l.periodicLogRotation()
		}
	}

	// Return cleanup function
	return func() {
		if l.logFile != nil {
			_ = l.logFile.Close()
		}
	}, nil
}

// setupLogFile sets up the log file
func (l *Logger) setupLogFile() error {
	if err := os.MkdirAll(filepath.Dir(l.logPath), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return l.rotateLog()
}

// rotateLog rotates the log
func (l *Logger) rotateLog() error {
	if l.logFile != nil {
		if err := l.logFile.Close(); err != nil {
			return fmt.Errorf("failed to close current log file: %w", err)
		}
	}

	logFilePath := fmt.Sprintf("%s.%s.log", strings.TrimSuffix(l.logPath, ".log"), time.Now().Format("2006-01-02"))
	f, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open new log file: %w", err)
	}

	l.logFile = f
	l.SetOutput(l.logFile)
	return nil
}

// periodicLogRotation rotates the log every 24 hours
func (l *Logger) periodicLogRotation() {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if err := l.rotateLog(); err != nil {
			l.Logger.Errorf("Error rotating log: %v", err)
		}
	}
}

// entryFromContext creates a new log entry with fields from context
func (l *Logger) entryFromContext(ctx context.Context, kvs ...any) *logrus.Entry {
	fields := logrus.Fields{}

	if traceID := GetTraceID(ctx); traceID != "" {
		fields[traceKey] = traceID
	}
	if l.version != "" {
		fields[VersionKey] = l.version
	}

	for i := 0; i+1 < len(kvs); i += 2 {
		key, ok := kvs[i].(string)
		if !ok {
			key = fmt.Sprint(kvs[i])
		}
		fields[key] = kvs[i+1]
	}

	return l.WithFields(fields)
}

// log logs a message with the given level and key/value pairs
func (l *Logger) log(ctx context.Context, level logrus.Level, msg string, kvs ...any) {
	l.entryFromContext(ctx, kvs...).Log(level, msg)
}

// Debug logs a debug message
func (l *Logger) Debug(ctx context.Context, msg string, kvs ...any) {
	l.log(ctx, logrus.DebugLevel, msg, kvs...)
}

// Info logs an info message
func (l *Logger) Info(ctx context.Context, msg string, kvs ...any) {
	l.log(ctx, logrus.InfoLevel, msg, kvs...)
}

// Warn logs a warning message
func (l *Logger) Warn(ctx context.Context, msg string, kvs ...any) {
	l.log(ctx, logrus.WarnLevel, msg, kvs...)
}

// Error logs an error message
func (l *Logger) Error(ctx context.Context, msg string, kvs ...any) {
	l.log(ctx, logrus.ErrorLevel, msg, kvs...)
}

// Fatal logs a fatal message and exits
func (l *Logger) Fatal(ctx context.Context, msg string, kvs ...any) {
	l.log(ctx, logrus.FatalLevel, msg, kvs...)
	l.Logger.Exit(1)
}
