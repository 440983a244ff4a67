package domain

import (
	"errors"
	"fmt"
)

// Taxonomia de erros compartilhada pelos orquestradores, repositórios e API
var (
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrExternalService    = errors.New("external service error")
	ErrPersistence        = errors.New("persistence error")
	ErrValidation         = errors.New("validation error")
	ErrAccountUnavailable = errors.New("account unavailable")
	ErrJobRunning         = errors.New("job already running")
)

// OperationError carrega o contexto de uma falha e se desembrulha tanto para
// o tipo da taxonomia (Kind) quanto para a causa (Err)
type OperationError struct {
	Kind     error
	Op       string
	EntityID string
	Err      error
}

func (e *OperationError) Error() string {
	msg := e.Kind.Error()
	if e.Op != "" {
		msg = fmt.Sprintf("%s: %s", e.Op, msg)
	}
	if e.EntityID != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.EntityID)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err.Error())
	}
	return msg
}

func (e *OperationError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func NewOperationError(kind error, op string, entityID string, err error) *OperationError {
	return &OperationError{
		Kind:     kind,
		Op:       op,
		EntityID: entityID,
		Err:      err,
	}
}
