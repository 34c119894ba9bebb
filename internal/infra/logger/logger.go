package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup инициализирует глобальный zerolog-логгер.
//   - level: уровень логирования (trace, debug, info, warn, error)
//   - format: "json" для продакшена, "pretty" для читаемого вывода при разработке
func Setup(level, format string) zerolog.Logger {
	var writer io.Writer

	if format == "pretty" {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	} else {
		writer = os.Stdout
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	return zerolog.New(writer).
		With().
		Timestamp().
		Logger()
}
