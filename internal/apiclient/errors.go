package apiclient

import "errors"

// Kind classifies a backend failure so callers can branch on it
// instead of matching message text.
type Kind string

const (
	KindUnknown         Kind = "unknown"
	KindValidation      Kind = "validation"
	KindUnauthenticated Kind = "unauthenticated"
	KindForbidden       Kind = "forbidden"
	KindNotFound        Kind = "not_found"
)

// Error is the single error shape produced by the client. Message is the
// backend-supplied text (msg or error field) or a fallback string.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnknown
}

// IsAuth reports whether err means the session is no longer accepted
// by the backend.
func IsAuth(err error) bool {
	k := KindOf(err)
	return k == KindUnauthenticated || k == KindForbidden
}

func kindFromStatus(status int) Kind {
	switch status {
	case 400, 422:
		return KindValidation
	case 401:
		return KindUnauthenticated
	case 403:
		return KindForbidden
	case 404:
		return KindNotFound
	default:
		return KindUnknown
	}
}
