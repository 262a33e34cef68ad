package walker

import (
	"fmt"
	"sync"
)

type recordingLogger struct {
	mu      sync.Mutex
	traces  []string
	verbose []string
}

func (l *recordingLogger) Trace(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.traces = append(l.traces, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Verbose(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = append(l.verbose, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Info(string, ...interface{})  {}
func (l *recordingLogger) Error(string, ...interface{}) {}
