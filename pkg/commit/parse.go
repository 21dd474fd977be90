package commit

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// ErrMalformedArguments is returned when the function call arguments are not
// a JSON object.
var ErrMalformedArguments = errors.New("malformed function call arguments")

// FieldError reports a required field that is absent or has the wrong type.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q %s", e.Field, e.Reason)
}

// Parse decodes function call arguments into a Commit. It never returns a
// partially filled Commit. Field values are taken as they are, so an empty
// or whitespace-only title is accepted.
func Parse(raw string) (Commit, error) {
	if !gjson.Valid(raw) {
		return Commit{}, ErrMalformedArguments
	}

	result := gjson.Parse(raw)
	if !result.IsObject() {
		return Commit{}, fmt.Errorf("%w: expected an object, got %s", ErrMalformedArguments, result.Type)
	}

	title, err := stringField(result, "title")
	if err != nil {
		return Commit{}, err
	}

	description, err := stringField(result, "description")
	if err != nil {
		return Commit{}, err
	}

	return Commit{
		Title:       title,
		Description: description,
	}, nil
}

func stringField(obj gjson.Result, name string) (string, error) {
	value := obj.Get(name)
	if !value.Exists() {
		return "", &FieldError{Field: name, Reason: "is missing"}
	}
	if value.Type != gjson.String {
		return "", &FieldError{Field: name, Reason: fmt.Sprintf("must be a string, got %s", value.Type)}
	}
	return value.String(), nil
}
