package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logFile *os.File
	mu      sync.Mutex
	enabled = true
	log     = newLogrus(io.Discard)
)

const (
	maxLogSize = 5 * 1024 * 1024 // 5MB
)

func newLogrus(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// Path is where Init writes the log
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "rover", "rover.log"), nil
}

// Init opens the log file under the user's config directory
func Init() error {
	logPath, err := Path()
	if err != nil {
		return err
	}
	return InitFile(logPath)
}

// InitFile opens logPath for appending, rotating it to .old first when it
// has grown past 5MB.
func InitFile(logPath string) error {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}

	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		oldPath := logPath + ".old"
		os.Remove(oldPath)
		os.Rename(logPath, oldPath)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
	}
	logFile = file
	log.SetOutput(file)
	return nil
}

// Close closes the log file
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	log.SetOutput(io.Discard)
}

// Disable disables logging (useful for tests)
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// Enable enables logging
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// SetDebug toggles debug lines
func SetDebug(debug bool) {
	mu.Lock()
	defer mu.Unlock()
	if debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
}

// Error logs an error message
func Error(format string, args ...any) {
	write(logrus.ErrorLevel, format, args...)
}

// Warn logs a warning message
func Warn(format string, args ...any) {
	write(logrus.WarnLevel, format, args...)
}

// Info logs a mutation or other notable event
func Info(format string, args ...any) {
	write(logrus.InfoLevel, format, args...)
}

func Debug(format string, args ...any) {
	write(logrus.DebugLevel, format, args...)
}

func write(level logrus.Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !enabled || logFile == nil {
		return
	}
	log.Logf(level, format, args...)
}
