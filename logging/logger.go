package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/crytic/forgekit/logging/colors"
	"github.com/rs/zerolog"
)

// GlobalLogger describes a Logger that is disabled by default and is instantiated when the CLI starts. Each
// module/package should create its own sub-logger.
var GlobalLogger = NewLogger(zerolog.Disabled)

// Logger describes a custom logging object that can log events to any arbitrary channel in structured, unstructured,
// or unstructured-and-colorized format.
type Logger struct {
	// level describes the log level
	level zerolog.Level

	// structuredLogger describes a logger that outputs JSON to structuredWriters.
	structuredLogger zerolog.Logger

	// structuredWriters describes the writers receiving structured (JSON) output.
	structuredWriters []io.Writer

	// unstructuredLogger describes a logger that outputs human-readable text without ANSI coloring.
	unstructuredLogger zerolog.Logger

	// unstructuredWriters describes the writers receiving human-readable output without ANSI coloring.
	unstructuredWriters []io.Writer

	// unstructuredColorLogger describes a logger that outputs human-readable, colorized text.
	unstructuredColorLogger zerolog.Logger

	// unstructuredColorWriters describes the writers receiving human-readable, colorized output.
	unstructuredColorWriters []io.Writer

	// context describes key-value pairs added through NewSubLogger, re-applied whenever the writers change.
	context [][2]string
}

// LogFormat describes what format to log in
type LogFormat string

const (
	// STRUCTURED describes that logging should be done in structured JSON format
	STRUCTURED LogFormat = "structured"
	// UNSTRUCTURED describes that logging should be done in an unstructured format
	UNSTRUCTURED LogFormat = "unstructured"
)

// StructuredLogInfo describes a key-value mapping that can be used to log structured data
type StructuredLogInfo map[string]any

// NewLogger will create a new Logger object with a specific log level. Writers are added through AddWriter.
func NewLogger(level zerolog.Level) *Logger {
	l := &Logger{
		level:                    level,
		structuredWriters:        make([]io.Writer, 0),
		unstructuredWriters:      make([]io.Writer, 0),
		unstructuredColorWriters: make([]io.Writer, 0),
		context:                  make([][2]string, 0),
	}
	l.rebuild()
	return l
}

// NewSubLogger will create a new Logger with unique context in the form of a key-value pair. The expected use of this
// function is for each package to have their own unique logger so that parsing of logs is "grep-able" based on some key
func (l *Logger) NewSubLogger(key string, value string) *Logger {
	subLogger := &Logger{
		level:                    l.level,
		structuredWriters:        append([]io.Writer(nil), l.structuredWriters...),
		unstructuredWriters:      append([]io.Writer(nil), l.unstructuredWriters...),
		unstructuredColorWriters: append([]io.Writer(nil), l.unstructuredColorWriters...),
		context:                  append(append([][2]string(nil), l.context...), [2]string{key, value}),
	}
	subLogger.rebuild()
	return subLogger
}

// AddWriter will add a writer to which log output will be sent. If colored is true, the writer receives ANSI-colored
// output, which only applies to the UNSTRUCTURED format. Adding a writer twice is a no-op.
func (l *Logger) AddWriter(writer io.Writer, format LogFormat, colored bool) {
	writers := l.writersFor(format, colored)
	for _, w := range *writers {
		if w == writer {
			return
		}
	}
	*writers = append(*writers, writer)
	l.rebuild()
}

// RemoveWriter will remove a writer from the list of writers that the logger manages. If the writer does not exist, this
// function is a no-op
func (l *Logger) RemoveWriter(writer io.Writer, format LogFormat, colored bool) {
	writers := l.writersFor(format, colored)
	for i, w := range *writers {
		if w == writer {
			*writers = append((*writers)[:i], (*writers)[i+1:]...)
			l.rebuild()
			return
		}
	}
}

// writersFor returns a pointer to the writer list that matches the provided format and coloring.
func (l *Logger) writersFor(format LogFormat, colored bool) *[]io.Writer {
	if format == STRUCTURED {
		return &l.structuredWriters
	}
	if colored {
		return &l.unstructuredColorWriters
	}
	return &l.unstructuredWriters
}

// rebuild recreates the underlying zerolog loggers from the current writers, level and context.
func (l *Logger) rebuild() {
	l.structuredLogger = zerolog.New(io.Discard).Level(zerolog.Disabled)
	l.unstructuredLogger = zerolog.New(io.Discard).Level(zerolog.Disabled)
	l.unstructuredColorLogger = zerolog.New(io.Discard).Level(zerolog.Disabled)

	if len(l.structuredWriters) > 0 {
		l.structuredLogger = l.withContext(zerolog.New(zerolog.MultiLevelWriter(l.structuredWriters...)).Level(l.level).With().Timestamp())
	}

	if len(l.unstructuredWriters) > 0 {
		writers := make([]io.Writer, 0, len(l.unstructuredWriters))
		for _, w := range l.unstructuredWriters {
			writers = append(writers, setupDefaultFormatting(zerolog.ConsoleWriter{Out: w, NoColor: true}, l.level))
		}
		l.unstructuredLogger = l.withContext(zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(l.level).With())
	}

	if len(l.unstructuredColorWriters) > 0 {
		writers := make([]io.Writer, 0, len(l.unstructuredColorWriters))
		for _, w := range l.unstructuredColorWriters {
			writers = append(writers, setupDefaultFormatting(zerolog.ConsoleWriter{Out: w, NoColor: !colors.Enabled()}, l.level))
		}
		l.unstructuredColorLogger = l.withContext(zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(l.level).With())
	}
}

// withContext applies the logger's key-value context to a zerolog context and returns the resulting logger.
func (l *Logger) withContext(ctx zerolog.Context) zerolog.Logger {
	for _, kv := range l.context {
		ctx = ctx.Str(kv[0], kv[1])
	}
	return ctx.Logger()
}

// Level will get the log level of the Logger
func (l *Logger) Level() zerolog.Level {
	return l.level
}

// SetLevel will update the log level of the Logger
func (l *Logger) SetLevel(level zerolog.Level) {
	l.level = level
	l.rebuild()
}

// Trace is a wrapper function that will log a trace event
func (l *Logger) Trace(args ...any) {
	l.log(zerolog.TraceLevel, args...)
}

// Debug is a wrapper function that will log a debug event
func (l *Logger) Debug(args ...any) {
	l.log(zerolog.DebugLevel, args...)
}

// Info is a wrapper function that will log an info event
func (l *Logger) Info(args ...any) {
	l.log(zerolog.InfoLevel, args...)
}

// Warn is a wrapper function that will log a warning event
func (l *Logger) Warn(args ...any) {
	l.log(zerolog.WarnLevel, args...)
}

// Error is a wrapper function that will log an error event
func (l *Logger) Error(args ...any) {
	l.log(zerolog.ErrorLevel, args...)
}

// Panic is a wrapper function that will log a panic event
func (l *Logger) Panic(args ...any) {
	l.log(zerolog.PanicLevel, args...)
}

// log builds the messages for the provided arguments and sends them to every logger at the given level.
func (l *Logger) log(level zerolog.Level, args ...any) {
	// Build the messages and retrieve any error or associated structured log info
	colorMsg, noColorMsg, err, info := buildMsgs(args...)

	// Instantiate log events
	structuredLog := l.structuredLogger.WithLevel(level)
	unstructuredLog := l.unstructuredLogger.WithLevel(level)
	colorLog := l.unstructuredColorLogger.WithLevel(level)

	// Chain the error. Stack traces are only added at debug level or below, or for panics.
	debug := l.level <= zerolog.DebugLevel || level == zerolog.PanicLevel
	for _, event := range []*zerolog.Event{structuredLog, unstructuredLog, colorLog} {
		chainError(event, err, debug)
		chainStructuredLogInfo(event, info)
	}

	// Send the logs. The colorized message is only used by the colorized logger.
	structuredLog.Msg(noColorMsg)
	unstructuredLog.Msg(noColorMsg)
	colorLog.Msg(colorMsg)

	// zerolog.WithLevel does not panic on its own, so we do it after all channels received the event
	if level == zerolog.PanicLevel {
		panic(noColorMsg)
	}
}

// buildMsgs describes a function that takes in a variadic list of arguments of any type and returns two strings and,
// optionally, an error and a StructuredLogInfo object. The first string will be a colorized-string that can be used for
// console logging while the second string will be a non-colorized one that can be used for file/structured logging.
func buildMsgs(args ...any) (string, string, error, StructuredLogInfo) {
	// Guard clause
	if len(args) == 0 {
		return "", "", nil, nil
	}

	// Initialize the base color context, the string buffers and the structured log info object
	colorCtx := colors.Reset
	colorOutput := make([]string, 0)
	noColorOutput := make([]string, 0)
	var info StructuredLogInfo
	var err error

	// Iterate through each argument in the list and switch on type
	for _, arg := range args {
		switch t := arg.(type) {
		case colors.ColorFunc:
			// If the argument is a color function, switch the current color context
			colorCtx = t
		case StructuredLogInfo:
			// Note that only one structured log info can be provided for each log message
			info = t
		case error:
			// Note that only one error can be provided for each log message
			err = t
		default:
			colorOutput = append(colorOutput, colorCtx(t))
			noColorOutput = append(noColorOutput, fmt.Sprintf("%v", t))
		}
	}

	return strings.Join(colorOutput, ""), strings.Join(noColorOutput, ""), err, info
}

// chainError attaches an error to a log event. If debug is true, a stack trace is added as well.
func chainError(event *zerolog.Event, err error, debug bool) {
	// Note that even if err is nil, there will not be a panic here
	event.Err(err)
	if debug && err != nil {
		event.Stack()
	}
}

// chainStructuredLogInfo attaches a StructuredLogInfo object to a log event, if one is provided.
func chainStructuredLogInfo(event *zerolog.Event, info StructuredLogInfo) {
	if info != nil {
		event.Any("info", info)
	}
}

// setupDefaultFormatting will update the console writer's formatting to the forgekit standard
func setupDefaultFormatting(writer zerolog.ConsoleWriter, level zerolog.Level) zerolog.ConsoleWriter {
	// Get rid of the timestamp for console output
	writer.FormatTimestamp = func(i interface{}) string {
		return ""
	}

	// We will define a custom format for each level
	writer.FormatLevel = func(i any) string {
		levelStr, _ := i.(string)
		parsedLevel, err := zerolog.ParseLevel(levelStr)
		if err != nil {
			return levelStr
		}

		colorize := func(f colors.ColorFunc, s string) string {
			if writer.NoColor {
				return s
			}
			return f(s)
		}

		switch parsedLevel {
		case zerolog.TraceLevel:
			return colorize(colors.CyanBold, zerolog.LevelTraceValue)
		case zerolog.DebugLevel:
			return colorize(colors.BlueBold, zerolog.LevelDebugValue)
		case zerolog.InfoLevel:
			return colorize(colors.GreenBold, colors.LEFT_ARROW)
		case zerolog.WarnLevel:
			return colorize(colors.YellowBold, zerolog.LevelWarnValue)
		case zerolog.ErrorLevel:
			return colorize(colors.RedBold, zerolog.LevelErrorValue)
		case zerolog.PanicLevel:
			return colorize(colors.RedBold, zerolog.LevelPanicValue)
		default:
			return levelStr
		}
	}

	// If we are above debug level, we want to get rid of the `module` component when logging to console
	if level > zerolog.DebugLevel {
		writer.FieldsExclude = []string{"module"}
	}

	return writer
}
