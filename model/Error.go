package model

import "errors"

var (
	// ErrNoGroup is returned when the target group does not exist.
	ErrNoGroup = errors.New("[[error:no-group]]")
	// ErrNotFound signals a missing user or item other than a group.
	ErrNotFound = errors.New("[[error:not-found]]")
	// ErrForbidden signals the caller may not act on the group.
	ErrForbidden = errors.New("[[error:no-privileges]]")
	// ErrNoNotificationId is returned when creating a notification without nid.
	ErrNoNotificationId = errors.New("[[error:no-notification-id]]")
)

type InputError struct {
	Field   string
	Message string
}

func NewInputError(field, message string) InputError {
	return InputError{
		Field:   field,
		Message: message,
	}
}

func (e InputError) Error() string {
	return e.Field + " " + e.Message
}
