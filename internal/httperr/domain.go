package httperr

import "errors"

type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindConflict
	KindAuth
	KindForbidden
	KindInternal
)

// DomainError is raised by the service layer and mapped to a transport
// response only in the handlers.
type DomainError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e DomainError) Error() string {
	return e.Message
}

func NotFoundErr(code, message string) error {
	return DomainError{Kind: KindNotFound, Code: code, Message: message}
}

func ConflictErr(code, message string) error {
	return DomainError{Kind: KindConflict, Code: code, Message: message}
}

func AuthErr(code, message string) error {
	return DomainError{Kind: KindAuth, Code: code, Message: message}
}

func ForbiddenErr(code, message string) error {
	return DomainError{Kind: KindForbidden, Code: code, Message: message}
}

func ValidationErr(code, message string) error {
	return DomainError{Kind: KindValidation, Code: code, Message: message}
}

func InternalErr(code, message string) error {
	return DomainError{Kind: KindInternal, Code: code, Message: message}
}

func IsKind(err error, kind Kind) bool {
	var de DomainError
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}

func IsNotFound(err error) bool { return IsKind(err, KindNotFound) }
func IsConflict(err error) bool { return IsKind(err, KindConflict) }
