package http

import (
	"net/http"
	"strings"

	"procurement/internal/core/domain/model/user"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// OrderFeed streams order events to websocket subscribers.
type OrderFeed interface {
	CanSubscribe(profile user.Profile) error
	Serve(upgrader *websocket.Upgrader, w http.ResponseWriter, r *http.Request, profile user.Profile) error
}

// feedHandler upgrades GET /ws. Browsers cannot set headers on a websocket
// handshake, so the token is also accepted in the "token" query parameter.
func feedHandler(auth *Authenticator, feed OrderFeed, allowedOrigins []string) echo.HandlerFunc {
	upgrader := &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowedOrigins),
	}

	return func(c echo.Context) error {
		token := c.QueryParam("token")
		if token == "" {
			scheme, value, found := strings.Cut(c.Request().Header.Get(echo.HeaderAuthorization), " ")
			if found && strings.EqualFold(scheme, "Bearer") {
				token = strings.TrimSpace(value)
			}
		}

		profile, err := auth.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}
		if err = feed.CanSubscribe(profile); err != nil {
			return err
		}

		return feed.Serve(upgrader, c.Response(), c.Request(), profile)
	}
}

func originChecker(allowed []string) func(*http.Request) bool {
	for _, origin := range allowed {
		if origin == "*" {
			return func(*http.Request) bool { return true }
		}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, candidate := range allowed {
			if strings.EqualFold(candidate, origin) {
				return true
			}
		}
		return false
	}
}
