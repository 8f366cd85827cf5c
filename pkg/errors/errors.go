package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeNetwork represents network-related errors
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeParsing represents HTML or JSON parsing errors
	ErrorTypeParsing ErrorType = "parsing"
	// ErrorTypeRateLimit represents rate limiting errors
	ErrorTypeRateLimit ErrorType = "rate_limit"
	// ErrorTypeCache represents cache-related errors
	ErrorTypeCache ErrorType = "cache"
	// ErrorTypePublisher represents publisher-related errors
	ErrorTypePublisher ErrorType = "publisher"
	// ErrorTypeStore represents output sink errors
	ErrorTypeStore ErrorType = "store"
	// ErrorTypeValidation represents validation errors
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeConfiguration represents configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error is an error raised while collecting or exporting products
type Error struct {
	Type    ErrorType
	Source  string
	Message string
	Err     error
	Time    time.Time
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.Source, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Source, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// IsRetryable returns true if the error is retryable
func (e *Error) IsRetryable() bool {
	return e.Type == ErrorTypeNetwork
}

// New creates a new Error
func New(errType ErrorType, source, message string, err error) *Error {
	return &Error{
		Type:    errType,
		Source:  source,
		Message: message,
		Err:     err,
		Time:    time.Now(),
	}
}

// NewNetwork creates a new network error
func NewNetwork(source, message string, err error) *Error {
	return New(ErrorTypeNetwork, source, message, err)
}

// NewParsing creates a new parsing error
func NewParsing(source, message string, err error) *Error {
	return New(ErrorTypeParsing, source, message, err)
}

// NewRateLimit creates a new rate limit error
func NewRateLimit(source string, duration time.Duration) *Error {
	return New(ErrorTypeRateLimit, source, fmt.Sprintf("rate limited for %v", duration), nil)
}

// NewCache creates a new cache error
func NewCache(source, message string, err error) *Error {
	return New(ErrorTypeCache, source, message, err)
}

// NewPublisher creates a new publisher error
func NewPublisher(source, message string, err error) *Error {
	return New(ErrorTypePublisher, source, message, err)
}

// NewStore creates a new output sink error
func NewStore(sink, message string, err error) *Error {
	return New(ErrorTypeStore, sink, message, err)
}

// NewValidation creates a new validation error
func NewValidation(source, message string) *Error {
	return New(ErrorTypeValidation, source, message, nil)
}

// NewConfiguration creates a new configuration error
func NewConfiguration(message string, err error) *Error {
	return New(ErrorTypeConfiguration, "", message, err)
}

// IsType reports whether err wraps an *Error of the given type
func IsType(err error, errType ErrorType) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Type == errType
}
