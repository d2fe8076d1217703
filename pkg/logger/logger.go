package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config controla formato y verbosidad del logging del servicio.
type Config struct {
	Env   string // "development" escribe consola coloreada; cualquier otro valor, JSON por línea
	Level string // debug, info, warn, error (default info)
}

// Logger envuelve zerolog con el campo service fijado, para inyectarlo por
// dependencia en vez de usar el global.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger del servicio. Fuera de development el formato es JSON
// estructurado apto para agregadores; en development, consola legible. También
// sustituye el logger global de zerolog para que las librerías que escriben por
// él salgan con el mismo formato.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zl := zerolog.New(w).Level(level).With().
		Timestamp().
		Str("service", "stock-sentinel").
		Logger()

	log.Logger = zl

	return &Logger{zl: zl}
}

// Niveles delegados a zerolog.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With deriva un sublogger con campos fijos (por ejemplo el nombre del componente).
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}
