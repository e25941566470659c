package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Logger struct to hold leveled loggers and configuration
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	level       LogLevel
	mutex       sync.Mutex
}

// LogLevel defines the logging levels
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// GlobalLogger writes INFO and above to stdout until InitLogger replaces it.
var GlobalLogger = New(os.Stdout, "INFO")
var once sync.Once

// ParseLevel maps a level name to a LogLevel, falling back to INFO.
func ParseLevel(level string) LogLevel {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return DEBUG
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// New builds a logger writing to output at the given level.
func New(output io.Writer, level string) *Logger {
	if output == nil {
		output = os.Stdout
	}
	flags := log.Ldate | log.Ltime | log.Lshortfile
	return &Logger{
		infoLogger:  log.New(output, color.GreenString("INFO: "), flags),
		warnLogger:  log.New(output, color.YellowString("WARN: "), flags),
		errorLogger: log.New(output, color.RedString("ERROR: "), flags),
		debugLogger: log.New(output, color.BlueString("DEBUG: "), flags),
		level:       ParseLevel(level),
	}
}

// InitLogger initializes the global logger with the specified output and log level
func InitLogger(output io.Writer, level string) {
	once.Do(func() {
		GlobalLogger = New(output, level)
	})
}

// Level reports the configured level.
func (l *Logger) Level() LogLevel {
	return l.level
}

// Println logs a message at the INFO level
func (l *Logger) Println(v ...interface{}) {
	l.write(INFO, l.infoLogger, func(lg *log.Logger) { lg.Output(4, fmt.Sprintln(v...)) })
}

// Printf logs a formatted message at the INFO level
func (l *Logger) Printf(format string, v ...interface{}) {
	l.write(INFO, l.infoLogger, func(lg *log.Logger) { lg.Output(4, fmt.Sprintf(format, v...)) })
}

// Warnf logs a formatted message at the WARN level
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.write(WARN, l.warnLogger, func(lg *log.Logger) { lg.Output(4, fmt.Sprintf(format, v...)) })
}

// Error logs a message at the ERROR level
func (l *Logger) Error(v ...interface{}) {
	l.write(ERROR, l.errorLogger, func(lg *log.Logger) { lg.Output(4, fmt.Sprintln(v...)) })
}

// Errorf logs a formatted message at the ERROR level
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.write(ERROR, l.errorLogger, func(lg *log.Logger) { lg.Output(4, fmt.Sprintf(format, v...)) })
}

// Debug logs a message at the DEBUG level
func (l *Logger) Debug(v ...interface{}) {
	l.write(DEBUG, l.debugLogger, func(lg *log.Logger) { lg.Output(4, fmt.Sprintln(v...)) })
}

// Debugf logs a formatted message at the DEBUG level
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.write(DEBUG, l.debugLogger, func(lg *log.Logger) { lg.Output(4, fmt.Sprintf(format, v...)) })
}

// Fatalf logs at the ERROR level and exits.
func (l *Logger) Fatalf(format string, v ...interface{}) {
	l.write(ERROR, l.errorLogger, func(lg *log.Logger) { lg.Output(4, fmt.Sprintf(format, v...)) })
	os.Exit(1)
}

func (l *Logger) write(level LogLevel, lg *log.Logger, emit func(*log.Logger)) {
	if l.level > level {
		return
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()
	emit(lg)
}
