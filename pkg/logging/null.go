package logging

import "context"

// NullLogger satisfies Logger while discarding every entry. It stands in
// whenever no log file is configured.
type NullLogger struct{}

var _ Logger = (*NullLogger)(nil)

// NewNullLogger returns a no-op logger
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Debug(ctx context.Context, msg string, fields Fields) {}

func (l *NullLogger) Info(ctx context.Context, msg string, fields Fields) {}

func (l *NullLogger) Warn(ctx context.Context, msg string, fields Fields) {}

func (l *NullLogger) Error(ctx context.Context, msg string, err error, fields Fields) {}

// WithFields returns the receiver; attached fields have nowhere to go
func (l *NullLogger) WithFields(fields Fields) Logger {
	return l
}

func (l *NullLogger) Close() error {
	return nil
}
