package middleware

import (
	"time"

	"github.com/rs/zerolog"
	tele "gopkg.in/telebot.v4"
)

// Logger возвращает middleware, логирующее каждое входящее обновление:
// чат, тип события и длительность обработки.
func Logger(log zerolog.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()
			err := next(c)

			event := log.Info()
			if err != nil {
				event = log.Error().Err(err)
			}
			if chat := c.Chat(); chat != nil {
				event = event.Int64("chat_id", chat.ID)
			}
			if cb := c.Callback(); cb != nil {
				event = event.Str("callback", cb.Unique)
			} else if c.Text() != "" {
				event = event.Str("text", c.Text())
			}
			event.Dur("elapsed", time.Since(start)).Msg("update handled")
			return err
		}
	}
}
