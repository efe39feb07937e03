package main

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/oliverisaac/jotter/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	SessionKey    = "session-user"
	sessionName   = "session"
	sessionUser   = "user"
	flashSuccess  = "success"
	flashError    = "error"
	sessionMaxAge = 3600 * 24 * 30
)

func sessionOptions() *sessions.Options {
	return &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func newCookieStore(secret []byte) *sessions.CookieStore {
	store := sessions.NewCookieStore(secret)
	store.Options = sessionOptions()
	return store
}

// SessionMiddleware decodes the signed-in user from the cookie once per request.
func SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := session.Get(sessionName, c)
			if err != nil {
				logrus.Debugf("Ignoring unreadable session cookie: %v", err)
				return next(c)
			}
			raw, ok := sess.Values[sessionUser].([]byte)
			if !ok {
				return next(c)
			}

			var s types.Session
			if err := json.Unmarshal(raw, &s); err != nil {
				logrus.Warn(errors.Wrap(err, "unmarshalling session user"))
				return next(c)
			}
			if s.IsSet() {
				c.Set(SessionKey, s)
			}
			return next(c)
		}
	}
}

func GetSession(c echo.Context) (types.Session, bool) {
	s, ok := c.Get(SessionKey).(types.Session)
	if ok {
		logrus.Debugf("Found session user %s", s.Email)
		return s, true
	}
	return types.Session{}, false
}

func saveSession(c echo.Context, mutate func(*sessions.Session)) error {
	sess, err := session.Get(sessionName, c)
	if err != nil && sess == nil {
		return errors.Wrap(err, "loading session")
	}
	mutate(sess)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return errors.Wrap(err, "saving session")
	}
	return nil
}

func signInSession(c echo.Context, s types.Session, flashes ...string) error {
	userBytes, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "marshalling session user")
	}
	return saveSession(c, func(sess *sessions.Session) {
		sess.Options = sessionOptions()
		sess.Values[sessionUser] = userBytes
		for _, f := range flashes {
			sess.AddFlash(f, flashSuccess)
		}
	})
}

func signOutSession(c echo.Context) error {
	return saveSession(c, func(sess *sessions.Session) {
		delete(sess.Values, sessionUser)
		sess.Options = sessionOptions()
		sess.Options.MaxAge = -1
	})
}

func addFlash(c echo.Context, kind string, msg string) {
	err := saveSession(c, func(sess *sessions.Session) {
		sess.AddFlash(msg, kind)
	})
	if err != nil {
		logrus.Error(errors.Wrap(err, "saving flash message"))
	}
}

// takeFlashes pops any pending flash messages.
func takeFlashes(c echo.Context) types.Flashes {
	ret := types.Flashes{}
	sess, err := session.Get(sessionName, c)
	if err != nil || sess == nil {
		return ret
	}

	for _, f := range sess.Flashes(flashSuccess) {
		if msg, ok := f.(string); ok {
			ret.Success = append(ret.Success, msg)
		}
	}
	for _, f := range sess.Flashes(flashError) {
		if msg, ok := f.(string); ok {
			ret.Error = append(ret.Error, msg)
		}
	}

	if len(ret.Success)+len(ret.Error) > 0 {
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			logrus.Error(errors.Wrap(err, "clearing flash messages"))
		}
	}
	return ret
}
