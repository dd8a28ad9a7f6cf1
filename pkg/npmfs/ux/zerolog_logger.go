package ux

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ZerologLogger implements Logger using zerolog
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger logs through the global logger configured by the root command.
func NewZerologLogger() Logger {
	return &ZerologLogger{logger: log.Logger.With().Str("component", "npm-fs").Logger()}
}

func NewZerologLoggerWithLogger(logger zerolog.Logger) Logger {
	return &ZerologLogger{logger: logger}
}

func (l *ZerologLogger) Info(msg string, fields ...LogField) {
	emit(l.logger.Info(), msg, fields)
}

func (l *ZerologLogger) Warn(msg string, fields ...LogField) {
	emit(l.logger.Warn(), msg, fields)
}

func (l *ZerologLogger) Error(msg string, fields ...LogField) {
	emit(l.logger.Error(), msg, fields)
}

func (l *ZerologLogger) Debug(msg string, fields ...LogField) {
	emit(l.logger.Debug(), msg, fields)
}

func emit(event *zerolog.Event, msg string, fields []LogField) {
	for _, field := range fields {
		if err, ok := field.Value.(error); ok {
			event = event.AnErr(field.Key, err)
			continue
		}
		event = event.Interface(field.Key, field.Value)
	}
	event.Msg(msg)
}
