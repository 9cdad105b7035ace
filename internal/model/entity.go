package model

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	apperrors "github.com/icemanhv/forum/internal/errors"
)

// FormTimeLayout is the fixed layout datetime-local form fields arrive in.
const FormTimeLayout = "2006-01-02T15:04"

// Entity is implemented by every persisted kind. SetValues overwrites every
// field from submitted form data; there is no partial update.
type Entity interface {
	SetValues(form url.Values) error
}

func formValue(form url.Values, field string) string {
	return form.Get(field)
}

func requiredFormValue(form url.Values, field string) (string, error) {
	v := form.Get(field)
	if v == "" {
		return "", fmt.Errorf("%w: field %q is required", apperrors.ErrValidation, field)
	}
	return v, nil
}

func parseFormTime(form url.Values, field string) (time.Time, error) {
	raw := form.Get(field)
	t, err := time.ParseInLocation(FormTimeLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: field %q: expected %s", apperrors.ErrValidation, field, FormTimeLayout)
	}
	return t, nil
}

func parseFormID(form url.Values, field string) (uint, error) {
	raw := form.Get(field)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: field %q: expected numeric id", apperrors.ErrValidation, field)
	}
	return uint(id), nil
}
