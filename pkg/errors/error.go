package errors

import (
	"bytes"
	"fmt"
	"maps"
	"runtime"
	"text/template"
	"time"
)

type Code string

func (c Code) New(msg string) *Error {
	return &Error{
		Code:      c,
		Message:   msg,
		Details:   make(map[string]interface{}),
		Stack:     getStack(),
		Timestamp: time.Now(),
	}
}

func WithPrefix(prefix string) func() Code {
	counter := int64(0)
	return func() Code {
		counter++
		return Code(fmt.Sprintf("%s_%04d", prefix, counter))
	}
}

// Error is a coded error whose Message is a text/template rendered against Details.
// Package level values act as sentinels: WithDetail and WithCause return copies,
// and Is matches on Code, so errors.Is(err, ErrX) holds for every derived copy.
type Error struct {
	Code      Code                   `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Cause     error                  `json:"-"`
	Stack     string                 `json:"-"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *Error) Error() string {
	t, err := template.New("error").Option("missingkey=zero").Parse(e.Message)
	if err != nil {
		return e.formatSimpleMessage()
	}

	var output bytes.Buffer
	if err = t.Execute(&output, e.Details); err != nil {
		return e.formatSimpleMessage()
	}

	msg := output.String()
	if msg == "" {
		return ""
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, msg, e.Cause)
	}

	return fmt.Sprintf("%s: %s", e.Code, msg)
}

func (e *Error) formatSimpleMessage() string {
	if e.Message == "" {
		return ""
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %s)", e.Code, e.Message, e.Cause.Error())
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) WithCause(err error) *Error {
	cp := e.clone()
	cp.Cause = err
	return cp
}

func (e *Error) WithDetail(key string, value interface{}) *Error {
	cp := e.clone()
	cp.Details[key] = value
	return cp
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	return e.Code == t.Code
}

func (e *Error) clone() *Error {
	cp := *e
	cp.Details = make(map[string]interface{}, len(e.Details)+1)
	maps.Copy(cp.Details, e.Details)
	cp.Timestamp = time.Now()
	return &cp
}

func getStack() string {
	buf := make([]byte, 4096)
	n := runtime.Stack(buf, false)
	return string(buf[:n])
}
