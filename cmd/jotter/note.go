package main

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/oliverisaac/jotter/notes"
	"github.com/oliverisaac/jotter/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const nothingDeleted = "Nothing was deleted. The note may already be gone."

func parseNoteID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// requireSession redirects visitors without a session to the sign in page.
func requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := GetSession(c); !ok {
			return c.Redirect(http.StatusFound, "/signin")
		}
		return next(c)
	}
}

func myNotesPage(svc *notes.Service, c echo.Context, status int, data *types.PageData) error {
	list, err := svc.ListOwn(c.Request().Context(), data.Session)
	if err != nil {
		logrus.Error(errors.Wrap(err, "loading notes"))
		data.WithError(err)
		data.Flashes.Error = append(data.Flashes.Error, "Failed to load notes. Please try again.")
		return render(c, http.StatusInternalServerError, "notes", data)
	}
	return render(c, status, "notes", data.WithNotes(list))
}

func listNotes(svc *notes.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		return myNotesPage(svc, c, http.StatusOK, pageData(c))
	}
}

func createNote(svc *notes.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, ok := GetSession(c)
		if !ok {
			addFlash(c, flashError, "Please sign in to create notes")
			return c.Redirect(http.StatusFound, "/signin")
		}

		var in types.NoteInput
		if err := c.Bind(&in); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid note form")
		}

		_, err := svc.Create(c.Request().Context(), sess, in)
		var verr *types.ValidationError
		switch {
		case errors.As(err, &verr):
			form := types.NewFormData().
				WithValue("title", in.Title).
				WithValue("content", in.Content).
				WithValue("is_public", strconv.FormatBool(in.IsPublic))
			form, _ = formErrors(err, form)
			return myNotesPage(svc, c, http.StatusUnprocessableEntity, pageData(c).WithForm(form))
		case err != nil:
			logrus.Error(errors.Wrap(err, "creating note"))
			addFlash(c, flashError, "Failed to create note. Please try again.")
		default:
			addFlash(c, flashSuccess, "Note created successfully!")
		}
		return c.Redirect(http.StatusFound, "/notes")
	}
}

func deleteNote(svc *notes.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, ok := GetSession(c)
		if !ok {
			return c.Redirect(http.StatusFound, "/signin")
		}

		id, ok := parseNoteID(c)
		if !ok {
			addFlash(c, flashError, "That note does not exist")
			return c.Redirect(http.StatusFound, "/notes")
		}

		deleted, err := svc.Delete(c.Request().Context(), sess, id)
		switch {
		case err != nil:
			logrus.Error(errors.Wrapf(err, "deleting note %d", id))
			addFlash(c, flashError, "Failed to delete note. Please try again.")
		case deleted:
			addFlash(c, flashSuccess, "Note deleted successfully!")
		default:
			addFlash(c, flashSuccess, nothingDeleted)
		}
		return c.Redirect(http.StatusFound, "/notes")
	}
}
