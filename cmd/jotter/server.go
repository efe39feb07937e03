package main

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oliverisaac/jotter/auth"
	"github.com/oliverisaac/jotter/notes"
	"github.com/oliverisaac/jotter/types"
	"github.com/oliverisaac/jotter/views"
	"github.com/prometheus/client_golang/prometheus"
)

type App struct {
	Config   types.Config
	Notes    *notes.Service
	Auth     *auth.Provider
	Ping     func(context.Context) error
	Registry prometheus.Registerer
	Gatherer prometheus.Gatherer
}

func newServer(app App) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Renderer = newTemplate()
	e.HTTPErrorHandler = httpErrorHandler(e)

	e.StaticFS("/static", views.Static)

	e.Use(middleware.Recover())

	e.Use(middleware.Secure())

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}\n",
	}))

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "jotter",
		Registerer: app.Registry,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	e.Use(session.Middleware(newCookieStore(app.Config.CookieSecret)))
	e.Use(SessionMiddleware())

	// Pages
	e.GET("/", homePageHandler())
	e.GET("/notes", listNotes(app.Notes), requireSession)
	e.GET("/public", publicNotes(app.Notes))
	e.GET("/public/notes/:id", publicNote(app.Notes))

	// Auth
	e.GET("/signin", signIn())
	e.POST("/signin", signInWithEmailAndPassword(app.Auth))
	e.GET("/signup", signUp())
	e.POST("/signup", signUpWithEmailAndPassword(app.Auth))
	e.POST("/signout", signOut())

	// Notes
	e.POST("/notes", createNote(app.Notes))
	e.POST("/notes/:id/delete", deleteNote(app.Notes))

	// Ops
	e.GET("/healthz", healthHandler(app.Ping))
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: app.Gatherer,
	}))

	return e
}
