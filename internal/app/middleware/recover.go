package middleware

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	tele "gopkg.in/telebot.v4"
)

// Recover возвращает middleware, перехватывающее панику в обработчике.
// Паника логируется и превращается в обычную ошибку, чтобы бот
// продолжил обслуживать остальные чаты.
func Recover(log zerolog.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					switch x := r.(type) {
					case error:
						err = x
					case string:
						err = errors.New(x)
					default:
						err = fmt.Errorf("panic: %v", r)
					}
					log.Error().Err(err).Msg("recovered from panic in handler")
				}
			}()
			return next(c)
		}
	}
}
