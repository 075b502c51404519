package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Format represents the log output format
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// FileLoggerConfig holds configuration for file logging
type FileLoggerConfig struct {
	// Path is the log file path
	Path string
	// Format is the output format (json or text)
	Format Format
	// Level is the minimum log level
	Level Level
}

// FileLogger implements Logger with line-oriented file output
type FileLogger struct {
	config FileLoggerConfig
	file   *os.File
	writer io.Writer
	mu     *sync.Mutex
	fields Fields
}

// entry is the JSON encoding of a single log line
type entry struct {
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Error     string                 `json:"error,omitempty"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// NewFileLogger creates a logger appending to the configured file
func NewFileLogger(config FileLoggerConfig) (*FileLogger, error) {
	dir := filepath.Dir(config.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(config.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &FileLogger{
		config: config,
		file:   file,
		writer: file,
		mu:     &sync.Mutex{},
	}, nil
}

// Debug logs a debug message
func (l *FileLogger) Debug(ctx context.Context, msg string, fields Fields) {
	if l.config.Level <= DebugLevel {
		l.log(DebugLevel, msg, nil, fields)
	}
}

// Info logs an info message
func (l *FileLogger) Info(ctx context.Context, msg string, fields Fields) {
	if l.config.Level <= InfoLevel {
		l.log(InfoLevel, msg, nil, fields)
	}
}

// Warn logs a warning message
func (l *FileLogger) Warn(ctx context.Context, msg string, fields Fields) {
	if l.config.Level <= WarnLevel {
		l.log(WarnLevel, msg, nil, fields)
	}
}

// Error logs an error message
func (l *FileLogger) Error(ctx context.Context, msg string, err error, fields Fields) {
	if l.config.Level <= ErrorLevel {
		l.log(ErrorLevel, msg, err, fields)
	}
}

// WithFields returns a logger carrying additional fields. The clone
// shares the underlying file and mutex with its parent.
func (l *FileLogger) WithFields(fields Fields) Logger {
	merged := make(Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &FileLogger{
		config: l.config,
		file:   l.file,
		writer: l.writer,
		mu:     l.mu,
		fields: merged,
	}
}

// Close flushes and closes the log file
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *FileLogger) log(level Level, msg string, err error, fields Fields) {
	merged := make(Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}

	var line string
	if l.config.Format == FormatJSON {
		e := entry{
			Timestamp: time.Now().Format(time.RFC3339),
			Level:     level.String(),
			Message:   msg,
			Fields:    merged,
		}
		if err != nil {
			e.Error = err.Error()
		}
		data, encErr := json.Marshal(e)
		if encErr != nil {
			return
		}
		line = string(data) + "\n"
	} else {
		var b strings.Builder
		fmt.Fprintf(&b, "%s [%s] %s", time.Now().Format(time.RFC3339), strings.ToUpper(level.String()), msg)
		if err != nil {
			fmt.Fprintf(&b, " error=%q", err.Error())
		}
		keys := make([]string, 0, len(merged))
		for k := range merged {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, merged[k])
		}
		b.WriteString("\n")
		line = b.String()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return
	}
	io.WriteString(l.writer, line)
}
