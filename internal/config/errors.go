package config

import (
	"errors"
	"fmt"
)

// ErrorKind identifies which validation rule a ValidationError reports.
// Callers match on the kind rather than the message text.
type ErrorKind string

const (
	SubnetCountOutOfRange           ErrorKind = "SubnetCountOutOfRange"
	NonPositiveBrokerCount          ErrorKind = "NonPositiveBrokerCount"
	BrokerCountNotMultipleOfSubnets ErrorKind = "BrokerCountNotMultipleOfSubnets"
	VolumeSizeOutOfRange            ErrorKind = "VolumeSizeOutOfRange"
	UnknownKafkaVersion             ErrorKind = "UnknownKafkaVersion"
	UnknownInstanceType             ErrorKind = "UnknownInstanceType"
	UnknownMonitoringLevel          ErrorKind = "UnknownMonitoringLevel"
)

// ValidationError reports a single violated configuration rule. It carries
// the config field that failed, the offending value, and a message naming the
// exact bound or allow-list so the operator can correct the input without
// consulting documentation.
type ValidationError struct {
	Kind  ErrorKind
	Field string
	Value any
	msg   string
}

func (e *ValidationError) Error() string { return e.msg }

// newValidationError builds a ValidationError with a formatted message.
func newValidationError(kind ErrorKind, field string, value any, format string, args ...any) *ValidationError {
	return &ValidationError{
		Kind:  kind,
		Field: field,
		Value: value,
		msg:   fmt.Sprintf(format, args...),
	}
}

// KindOf extracts the validation error kind from err, unwrapping as needed.
// The second return is false when err carries no ValidationError.
func KindOf(err error) (ErrorKind, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Kind, true
	}
	return "", false
}
