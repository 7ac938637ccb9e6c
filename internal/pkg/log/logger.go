package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"
)

// Logger is the leveled logger shared by every kcctl command.
// Messages below the active level are kept so they can be replayed by Flush
// once the level is raised, e.g. after the -v flags have been parsed.
type Logger struct {
	params *Params
	l      hclog.Logger
	mu     *sync.Mutex
	buffer *[]bufferedLog
}

type bufferedLog struct {
	level   Level
	message string
}

type Level int

const (
	// For information about unrecoverable events.
	ERROR Level = iota

	// For information about rare but handled events.
	WARN

	// For information about steady state operations.
	INFO

	// For programmer lowlevel analysis.
	DEBUG

	// The most verbose level. Used for request tracing against the Connect worker.
	TRACE
)

type Params struct {
	Level  Level
	Output io.Writer
	JSON   bool
}

// New creates a new Logger with the default configuration.
func New() *Logger {
	return NewWithParams(&Params{
		Level:  WARN,
		Output: os.Stderr,
		JSON:   false,
	})
}

// NewWithParams creates and configures a new Logger.
func NewWithParams(params *Params) *Logger {
	return newLogger(params, hclog.New(&hclog.LoggerOptions{
		Name:       "kcctl",
		Output:     params.Output,
		JSONFormat: params.JSON,
		Level:      parseLevel(params.Level),
	}), &sync.Mutex{}, &[]bufferedLog{})
}

func newLogger(params *Params, logger hclog.Logger, mu *sync.Mutex, buffer *[]bufferedLog) *Logger {
	return &Logger{
		params: params,
		l:      logger,
		mu:     mu,
		buffer: buffer,
	}
}

// Named returns a sub-logger sharing the level and buffer of l.
func (l *Logger) Named(name string) *Logger {
	return newLogger(l.params, l.l.Named(name), l.mu, l.buffer)
}

func (l *Logger) Trace(args ...interface{}) {
	l.emit(TRACE, fmt.Sprint(args...))
}

func (l *Logger) Tracef(format string, args ...interface{}) {
	l.emit(TRACE, fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(args ...interface{}) {
	l.emit(DEBUG, fmt.Sprint(args...))
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.emit(DEBUG, fmt.Sprintf(format, args...))
}

func (l *Logger) Info(args ...interface{}) {
	l.emit(INFO, fmt.Sprint(args...))
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.emit(INFO, fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(args ...interface{}) {
	l.emit(WARN, fmt.Sprint(args...))
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.emit(WARN, fmt.Sprintf(format, args...))
}

func (l *Logger) Error(args ...interface{}) {
	l.emit(ERROR, fmt.Sprint(args...))
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.emit(ERROR, fmt.Sprintf(format, args...))
}

func (l *Logger) emit(level Level, message string) {
	if !l.enabled(level) {
		l.bufferLogMessage(level, message)
		return
	}
	switch level {
	case ERROR:
		l.l.Error(message)
	case WARN:
		l.l.Warn(message)
	case INFO:
		l.l.Info(message)
	case DEBUG:
		l.l.Debug(message)
	case TRACE:
		l.l.Trace(message)
	}
}

// enabled compares against the level set through SetLevel, which the hclog logger always mirrors.
func (l *Logger) enabled(level Level) bool {
	return level <= l.GetLevel()
}

func (l *Logger) bufferLogMessage(level Level, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.buffer = append(*l.buffer, bufferedLog{
		level:   level,
		message: message,
	})
}

func (l *Logger) Flush() {
	l.mu.Lock()
	buffered := *l.buffer
	*l.buffer = []bufferedLog{}
	l.mu.Unlock()

	for _, b := range buffered {
		if b.level > l.GetLevel() {
			continue
		}
		l.emit(b.level, b.message)
	}
}

func (l *Logger) SetLevel(level Level) {
	l.params.Level = level
	l.l.SetLevel(parseLevel(level))
}

func (l *Logger) GetLevel() Level {
	return l.params.Level
}

var levelNames = map[string]Level{
	"error":   ERROR,
	"warn":    WARN,
	"warning": WARN,
	"info":    INFO,
	"debug":   DEBUG,
	"trace":   TRACE,
}

// ParseLevel maps a level name such as "debug" to a Level.
func ParseLevel(name string) (Level, bool) {
	level, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]
	return level, ok
}

var hclogLevels = map[Level]hclog.Level{
	ERROR: hclog.Error,
	WARN:  hclog.Warn,
	INFO:  hclog.Info,
	DEBUG: hclog.Debug,
	TRACE: hclog.Trace,
}

func parseLevel(level Level) hclog.Level {
	if l, ok := hclogLevels[level]; ok {
		return l
	}
	return hclog.NoLevel
}
