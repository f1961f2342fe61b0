package domain

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	CodeNotFound        ErrorCode = "NOT_FOUND"
	CodeUnavailable     ErrorCode = "UNAVAILABLE"
	CodeFailedPrecond   ErrorCode = "FAILED_PRECONDITION"
	CodeUnauthenticated ErrorCode = "UNAUTHENTICATED"
	// CodeDeclined: the capability completed but produced no usable
	// artifact. Distinct from CodeUnavailable so diagnostics can tell a
	// declined image apart from a transport failure.
	CodeDeclined ErrorCode = "DECLINED"
	CodeInternal ErrorCode = "INTERNAL"
	CodeCanceled ErrorCode = "CANCELED"
)

var (
	ErrToolNotFound        = errors.New("tool not found")
	ErrUnknownCategory     = errors.New("unknown tool category")
	ErrDuplicateToolID     = errors.New("duplicate tool id")
	ErrNoImage             = errors.New("image generation completed without an image")
	ErrUnknownProvider     = errors.New("unknown capability provider")
	ErrUnknownPlan         = errors.New("unknown credit plan")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrStoreClosed         = errors.New("state store is closed")
)

type Error struct {
	Code    ErrorCode
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if msg == "" && e.Cause != nil {
		msg = e.Cause.Error()
	}
	if e.Op == "" {
		if msg == "" {
			return string(e.Code)
		}
		return fmt.Sprintf("%s: %s", e.Code, msg)
	}
	if msg == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Code)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Code, msg)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func E(code ErrorCode, op, msg string, cause error) *Error {
	if msg == "" && cause != nil {
		msg = cause.Error()
	}
	return &Error{
		Code:    code,
		Op:      op,
		Message: msg,
		Cause:   cause,
	}
}

func Wrap(code ErrorCode, op string, err error) *Error {
	if err == nil {
		return nil
	}
	var existing *Error
	if errors.As(err, &existing) {
		if existing.Op != "" || op == "" {
			return existing
		}
		return &Error{
			Code:    existing.Code,
			Op:      op,
			Message: existing.Message,
			Cause:   existing.Cause,
		}
	}
	return E(code, op, "", err)
}

func CodeFrom(err error) (ErrorCode, bool) {
	if err == nil {
		return "", false
	}
	var domainErr *Error
	if errors.As(err, &domainErr) && domainErr.Code != "" {
		return domainErr.Code, true
	}
	switch {
	case errors.Is(err, ErrToolNotFound), errors.Is(err, ErrUnknownPlan):
		return CodeNotFound, true
	case errors.Is(err, ErrUnknownCategory), errors.Is(err, ErrDuplicateToolID):
		return CodeInvalidArgument, true
	case errors.Is(err, ErrNoImage):
		return CodeDeclined, true
	case errors.Is(err, ErrUnknownProvider), errors.Is(err, ErrInsufficientCredits):
		return CodeFailedPrecond, true
	case errors.Is(err, ErrNotAuthenticated):
		return CodeUnauthenticated, true
	case errors.Is(err, ErrStoreClosed):
		return CodeUnavailable, true
	default:
		return "", false
	}
}
