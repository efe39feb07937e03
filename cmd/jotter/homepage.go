package main

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func homePageHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		data := pageData(c)
		if data.Session.IsSet() {
			logrus.Debugf("Generating homepage for user %s", data.Session.Email)
		} else {
			logrus.Debugf("Generating anonymous homepage")
		}
		return render(c, http.StatusOK, "index", data)
	}
}

func healthHandler(ping func(context.Context) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := ping(c.Request().Context()); err != nil {
			logrus.Warnf("Health check failed: %v", err)
			return c.String(http.StatusServiceUnavailable, "unavailable")
		}
		return c.String(http.StatusOK, "ok")
	}
}
