package httperr

import "errors"

// Kind classifies a business failure so the presentation layer can pick a
// response without parsing message text.
type Kind int

const (
	KindBadRequest Kind = iota
	KindNotFound
	KindNotAllowed
	KindNoAvailability
	KindAlreadyCanceled
	KindCannotCancel
)

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBadRequest(code, message string) error {
	return BusinessError{Kind: KindBadRequest, Code: code, Message: message}
}

func ErrNotFound(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func ErrNotAllowed(code, message string) error {
	return BusinessError{Kind: KindNotAllowed, Code: code, Message: message}
}

func ErrNoAvailability(code, message string) error {
	return BusinessError{Kind: KindNoAvailability, Code: code, Message: message}
}

func ErrAlreadyCanceled(code, message string) error {
	return BusinessError{Kind: KindAlreadyCanceled, Code: code, Message: message}
}

func ErrCannotCancel(code, message string) error {
	return BusinessError{Kind: KindCannotCancel, Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}
