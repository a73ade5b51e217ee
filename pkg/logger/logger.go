package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger é a interface para logging estruturado
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// zeroLogger implementa Logger sobre zerolog
type zeroLogger struct {
	log zerolog.Logger
}

// NewLogger cria um Logger com saída JSON. Com LOG_PRETTY=true a saída passa a
// usar o console writer colorido, para desenvolvimento local.
func NewLogger() Logger {
	var l zerolog.Logger
	if os.Getenv("LOG_PRETTY") == "true" {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	} else {
		l = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	if level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && level != zerolog.NoLevel {
		l = l.Level(level)
	}

	return &zeroLogger{log: l}
}

func withFields(e *zerolog.Event, keysAndValues []interface{}) *zerolog.Event {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, keysAndValues[i+1])
	}
	return e
}

// Info registra uma mensagem de informação
func (z *zeroLogger) Info(msg string, keysAndValues ...interface{}) {
	withFields(z.log.Info(), keysAndValues).Msg(msg)
}

// Error registra uma mensagem de erro
func (z *zeroLogger) Error(msg string, keysAndValues ...interface{}) {
	withFields(z.log.Error(), keysAndValues).Msg(msg)
}

// Debug registra uma mensagem de debug
func (z *zeroLogger) Debug(msg string, keysAndValues ...interface{}) {
	withFields(z.log.Debug(), keysAndValues).Msg(msg)
}

// Warn registra uma mensagem de aviso
func (z *zeroLogger) Warn(msg string, keysAndValues ...interface{}) {
	withFields(z.log.Warn(), keysAndValues).Msg(msg)
}
