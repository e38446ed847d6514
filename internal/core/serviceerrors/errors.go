package serviceerrors

import "errors"

type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindNotFound
	KindConflict
	KindUnauthorized
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "VALIDATION"
	case KindNotFound:
		return "NOT_FOUND"
	case KindConflict:
		return "CONFLICT"
	case KindUnauthorized:
		return "UNAUTHORIZED"
	default:
		return "INTERNAL"
	}
}

func IsOfKind(err error, kind ErrorKind) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Kind == kind
	}
	return false
}

type ServiceError struct {
	Kind    ErrorKind
	Message string
	Details any
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ServiceError {
	return &ServiceError{Kind: KindValidation, Message: message}
}

func NewValidationErrorWithDetails(message string, details any) *ServiceError {
	return &ServiceError{Kind: KindValidation, Message: message, Details: details}
}

func NewNotFoundError(message string) *ServiceError {
	return &ServiceError{Kind: KindNotFound, Message: message}
}

func NewConflictError(message string) *ServiceError {
	return &ServiceError{Kind: KindConflict, Message: message}
}

func NewUnauthorizedError(message string) *ServiceError {
	return &ServiceError{Kind: KindUnauthorized, Message: message}
}

func NewInternalError(message string) *ServiceError {
	return &ServiceError{Kind: KindInternal, Message: message}
}
