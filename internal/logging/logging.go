package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// OpLog is the append-only operation log: one timestamped line per action,
// success or failure.
type OpLog struct {
	logger *log.Logger
	file   *os.File
}

// Open appends to the log file at path, creating it (and its directory) if
// absent.
func Open(path string) (*OpLog, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating log directory %s", dir)
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "opening log file %s", path)
	}
	return &OpLog{
		logger: log.New(file, "", log.LstdFlags|log.Lmsgprefix),
		file:   file,
	}, nil
}

// Discard returns a log that drops everything. Used in tests and as a
// fallback when no log file is wanted.
func Discard() *OpLog {
	return &OpLog{logger: log.New(io.Discard, "", 0)}
}

// Infof records a successful action.
func (l *OpLog) Infof(format string, args ...any) {
	l.logger.Printf("INFO "+format, args...)
}

// Errorf records a failed action.
func (l *OpLog) Errorf(format string, args ...any) {
	l.logger.Printf("ERROR "+format, args...)
}

// Close releases the underlying file, if any.
func (l *OpLog) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
