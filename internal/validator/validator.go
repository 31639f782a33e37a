package validator

import "github.com/garrettladley/lumi/internal/xerrors"

type Validator interface {
	// Validate checks the value and returns a description of the first
	// problem found, or "" when it is valid.
	Validate() string
}

// Validate turns a failed check into a 400 with the device's
// "JSON validation failed: ..." message.
func Validate(v Validator) *xerrors.Error {
	if msg := v.Validate(); msg != "" {
		return xerrors.BadRequest(
			xerrors.WithMessage("JSON validation failed: "+msg),
			xerrors.WithCode("validation_failed"),
		)
	}
	return nil
}
