package main

import (
	"html/template"
	"io"
	"net/http"

	goerrors "github.com/go-errors/errors"
	"github.com/labstack/echo/v4"
	"github.com/oliverisaac/jotter/types"
	"github.com/oliverisaac/jotter/views"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Template struct {
	tmpl *template.Template
}

func newTemplate() *Template {
	return &Template{
		tmpl: views.Templates(),
	}
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.tmpl.ExecuteTemplate(w, name, data)
}

// pageData starts the data for a page with the caller's session and pending flashes.
func pageData(c echo.Context) *types.PageData {
	sess, _ := GetSession(c)
	return types.NewPageData(sess).WithFlashes(takeFlashes(c))
}

func render(c echo.Context, status int, name string, data *types.PageData) error {
	return c.Render(status, name, data)
}

func httpErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		isHTTPErr := errors.As(err, &he)

		if isHTTPErr && he.Code == http.StatusNotFound {
			if rerr := render(c, http.StatusNotFound, "not-found", pageData(c)); rerr != nil {
				logrus.Error(errors.Wrap(rerr, "rendering not found page"))
			}
			return
		}

		if !isHTTPErr || he.Code >= http.StatusInternalServerError {
			logrus.Error(goerrors.Wrap(err, 1).ErrorStack())
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
