package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oliverisaac/jotter/notes"
	"github.com/oliverisaac/jotter/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func publicNotes(svc *notes.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		data := pageData(c)
		data.Query = c.QueryParam("q")

		all, err := svc.ListPublic(c.Request().Context())
		if err != nil {
			logrus.Error(errors.Wrap(err, "loading public notes"))
			data.WithError(err)
			data.Flashes.Error = append(data.Flashes.Error, "Failed to load public notes. Please try again later.")
			return render(c, http.StatusInternalServerError, "public", data)
		}

		data.Total = len(all)
		return render(c, http.StatusOK, "public", data.WithNotes(notes.Search(all, data.Query)))
	}
}

func publicNote(svc *notes.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := parseNoteID(c)
		if !ok {
			return echo.ErrNotFound
		}

		note, err := svc.GetPublic(c.Request().Context(), id)
		if errors.Is(err, types.ErrNotFound) {
			return echo.ErrNotFound
		}
		if err != nil {
			return errors.Wrapf(err, "loading public note %d", id)
		}

		return render(c, http.StatusOK, "public-note", pageData(c).WithNote(note))
	}
}
