package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oliverisaac/jotter/auth"
	"github.com/oliverisaac/jotter/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const genericError = "Oops! It appears we have had an error"

// formErrors turns a validation or provider error into per-field messages.
// It returns false for anything else.
func formErrors(err error, form types.FormData) (types.FormData, bool) {
	var verr *types.ValidationError
	if errors.As(err, &verr) {
		for field, msg := range verr.Fields {
			form = form.WithError(field, msg)
		}
		return form, true
	}

	var aerr *auth.Error
	if errors.As(err, &aerr) {
		return form.WithError("general", aerr.Message), true
	}
	return form, false
}

func signUp() echo.HandlerFunc {
	return func(c echo.Context) error {
		return render(c, http.StatusOK, "signup", pageData(c))
	}
}

func signUpWithEmailAndPassword(provider *auth.Provider) echo.HandlerFunc {
	return func(c echo.Context) error {
		var in types.SignUpForm
		if err := c.Bind(&in); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid sign up form")
		}

		data := pageData(c)
		form := types.NewFormData().WithValue("email", in.Email)

		err := types.Validate(in)
		if err == nil {
			err = provider.SignUp(c.Request().Context(), in.Email, in.Password)
		}
		if err != nil {
			errForm, known := formErrors(err, form)
			if known {
				return render(c, http.StatusUnprocessableEntity, "signup", data.WithForm(errForm))
			}
			logrus.Error(errors.Wrap(err, "signing up"))
			return render(c, http.StatusInternalServerError, "signup", data.WithForm(form.WithError("general", genericError)))
		}

		addFlash(c, flashSuccess, "Account created! Please sign in.")
		return c.Redirect(http.StatusFound, "/signin")
	}
}

func signIn() echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := GetSession(c); ok {
			return c.Redirect(http.StatusFound, "/notes")
		}
		return render(c, http.StatusOK, "signin", pageData(c))
	}
}

func signInWithEmailAndPassword(provider *auth.Provider) echo.HandlerFunc {
	return func(c echo.Context) error {
		var in types.SignInForm
		if err := c.Bind(&in); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid sign in form")
		}

		data := pageData(c)
		form := types.NewFormData().WithValue("email", in.Email)

		err := types.Validate(in)
		var sess types.Session
		if err == nil {
			sess, err = provider.SignInWithPassword(c.Request().Context(), in.Email, in.Password)
		}
		if err != nil {
			errForm, known := formErrors(err, form)
			if known {
				return render(c, http.StatusUnprocessableEntity, "signin", data.WithForm(errForm))
			}
			logrus.Error(errors.Wrap(err, "signing in"))
			return render(c, http.StatusInternalServerError, "signin", data.WithForm(form.WithError("general", genericError)))
		}

		if err := signInSession(c, sess); err != nil {
			return err
		}
		logrus.Infof("User %s signed in", sess.Email)
		return c.Redirect(http.StatusFound, "/notes")
	}
}

func signOut() echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := signOutSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusFound, "/signin")
	}
}
