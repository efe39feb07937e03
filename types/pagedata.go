package types

import (
	errs "errors"
)

type FormData struct {
	Errors map[string]string
	Values map[string]string
}

func NewFormData() FormData {
	return FormData{
		Errors: map[string]string{},
		Values: map[string]string{},
	}
}

func (f FormData) WithError(field, msg string) FormData {
	f.Errors[field] = msg
	return f
}

func (f FormData) WithValue(field, value string) FormData {
	f.Values[field] = value
	return f
}

// Flashes are one-shot notifications carried across a redirect.
type Flashes struct {
	Success []string
	Error   []string
}

type PageData struct {
	Session Session
	Notes   []Note
	Note    *Note
	Query   string
	Total   int
	Form    FormData
	Flashes Flashes
	Err     error
}

func NewPageData(s Session) *PageData {
	return &PageData{Session: s, Form: NewFormData()}
}

func (d *PageData) WithError(err error) *PageData {
	d.Err = errs.Join(d.Err, err)
	return d
}

func (d *PageData) WithNotes(notes []Note) *PageData {
	d.Notes = append(d.Notes, notes...)
	return d
}

func (d *PageData) WithNote(n Note) *PageData {
	d.Note = &n
	return d
}

func (d *PageData) WithForm(f FormData) *PageData {
	d.Form = f
	return d
}

func (d *PageData) WithFlashes(f Flashes) *PageData {
	d.Flashes.Success = append(d.Flashes.Success, f.Success...)
	d.Flashes.Error = append(d.Flashes.Error, f.Error...)
	return d
}
