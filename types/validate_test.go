package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNoteInput(t *testing.T) {
	assert.NoError(t, Validate(NoteInput{Title: "Groceries", Content: "milk, eggs"}))

	err := Validate(NoteInput{Title: "", Content: "milk"})
	require.ErrorIs(t, err, ErrValidation)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, map[string]string{"title": "Title is required"}, verr.Fields)

	err = Validate(NoteInput{Title: "  ", Content: "\n\t"})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Content is required", verr.Fields["content"])
	assert.Equal(t, "Title is required", verr.Fields["title"])
	assert.Equal(t, "Content is required; Title is required", err.Error())
}

func TestValidateSignUpForm(t *testing.T) {
	assert.NoError(t, Validate(SignUpForm{Email: "a@x.com", Password: "secret1", Confirm: "secret1"}))

	err := Validate(SignUpForm{Email: "a@x.com", Password: "secret1", Confirm: "secret2"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, map[string]string{"confirm": "Passwords do not match"}, verr.Fields)

	err = Validate(SignUpForm{Email: "nope", Password: "secret1", Confirm: "secret1"})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Please enter a valid email address", verr.Fields["email"])
}
