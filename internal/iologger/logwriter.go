package iologger

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"
)

// LogWriter duplicates every line of the run log to the console and to
// a file. Lines are only appended, the file is truncated on creation.
type LogWriter struct {
	mu      sync.Mutex
	console io.Writer
	file    *os.File
	buf     *bufio.Writer

	// exit terminates the process after a fatal line.
	exit func(int)
}

// NewLogWriter creates the run log file at path. Lines are echoed to
// console, which can be nil.
func NewLogWriter(path string, console io.Writer) (*LogWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, CreateLogFileError(path, err)
	}
	if console == nil {
		console = io.Discard
	}
	res := &LogWriter{
		console: console,
		file:    f,
		buf:     bufio.NewWriter(f),
		exit:    os.Exit,
	}
	return res, nil
}

// Print appends one line.
func (l *LogWriter) Print(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, line)
	fmt.Fprintln(l.buf, line)
}

// Printf formats and appends one line.
func (l *LogWriter) Printf(format string, args ...any) {
	l.Print(fmt.Sprintf(format, args...))
}

// PrintLines appends several lines in order.
func (l *LogWriter) PrintLines(lines []string) {
	for _, v := range lines {
		l.Print(v)
	}
}

// Flush writes buffered lines to the file.
func (l *LogWriter) Flush() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.buf.Flush(); err != nil {
		return CreateLogFileError(l.file.Name(), err)
	}
	return nil
}

// Close flushes and closes the file.
func (l *LogWriter) Close() error {
	if err := l.Flush(); err != nil {
		return err
	}
	return l.file.Close()
}

// Fatal writes the message as the last line of the log, closes the file
// and terminates the process with status 1.
func (l *LogWriter) Fatal(msg string) {
	l.Print("[FATAL] " + msg)
	_ = l.Close()
	l.exit(1)
}
