// Package ecode defines business error codes shared by API responses.
package ecode

import "fmt"

// Common business codes. Zero is success; negative codes are failures.
const (
	OK          = 0
	ServerErr   = -500
	RequestErr  = -400
	ParamErr    = -401
	NotFound    = -404
	UpstreamErr = -502
)

var messages = map[int]string{
	OK:          "success",
	ServerErr:   "internal server error",
	RequestErr:  "invalid request",
	ParamErr:    "invalid parameters",
	NotFound:    "not found",
	UpstreamErr: "upstream unavailable",
}

// Text returns the human-readable message for a code.
func Text(code int) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return messages[ServerErr]
}

// FieldIsRequired returns field required message
func FieldIsRequired(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s required", k[0])
	}
	return "required"
}

// FieldIsInvalid returns field invalid message
func FieldIsInvalid(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s invalid", k[0])
	}
	return "invalid"
}

// NotExist returns not exist message
func NotExist(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s does not exist", k[0])
	}
	return "does not exist"
}
