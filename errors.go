// Copyright ©2024 The UNU.RAN Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unuran

import (
	"fmt"
	"sync"
)

// Subject groups error Codes by the part of the library that raised
// them, matching the taxonomy of spec.md §7.
type Subject int

const (
	SubjectDistr Subject = iota
	SubjectParams
	SubjectGenerator
	SubjectNumeric
	SubjectResource
	SubjectInternal
)

func (s Subject) String() string {
	switch s {
	case SubjectDistr:
		return "distr"
	case SubjectParams:
		return "params"
	case SubjectGenerator:
		return "generator"
	case SubjectNumeric:
		return "numeric"
	case SubjectResource:
		return "resource"
	case SubjectInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Code identifies a specific failure mode within a Subject.
type Code int

const (
	// Distribution codes.
	CodeDistrSet Code = iota
	CodeDistrGet
	CodeDistrNParams
	CodeDistrDomain
	CodeDistrRequired
	CodeDistrInvalid

	// Parameter object codes.
	CodeParamsSet
	CodeParamsVariant
	CodeParamsInvalid

	// Generator codes.
	CodeGenData
	CodeGenCondition
	CodeGenInvalid

	// Numeric codes.
	CodeRoundoff
	CodeNaN
	CodeOverflow
	CodeUnderflow

	// Resource codes.
	CodeAlloc
	CodeNull

	// Internal codes.
	CodeShouldNotHappen
)

var codeNames = map[Code]string{
	CodeDistrSet:        "SET",
	CodeDistrGet:        "GET",
	CodeDistrNParams:    "NPARAMS",
	CodeDistrDomain:     "DOMAIN",
	CodeDistrRequired:   "REQUIRED",
	CodeDistrInvalid:    "INVALID",
	CodeParamsSet:       "SET",
	CodeParamsVariant:   "VARIANT",
	CodeParamsInvalid:   "INVALID",
	CodeGenData:         "DATA",
	CodeGenCondition:    "CONDITION",
	CodeGenInvalid:      "INVALID",
	CodeRoundoff:        "ROUNDOFF",
	CodeNaN:             "NAN",
	CodeOverflow:        "OVERFLOW",
	CodeUnderflow:       "UNDERFLOW",
	CodeAlloc:           "ALLOC",
	CodeNull:            "NULL",
	CodeShouldNotHappen: "SHOULD_NOT_HAPPEN",
}

func (c Code) String() string {
	if n, ok := codeNames[c]; ok {
		return n
	}
	return "UNKNOWN"
}

// Info is the structured record passed to a caller-replaceable error
// handler, matching spec.md §6's {object-id, source-file, line,
// severity, code, reason}.
type Info struct {
	ObjectID string
	File     string
	Line     int
	Severity Severity
	Subject  Subject
	Code     Code
	Reason   string
}

// Severity distinguishes a hard failure from a recovered warning (used
// by verification mode, spec.md §7).
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// Error is the error value returned by operations that fail per
// spec.md §7. It always carries a Subject/Code pair in addition to the
// human-readable message.
type Error struct {
	Subject Subject
	Code    Code
	Reason  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("unuran: %s.%s: %s", e.Subject, e.Code, e.Reason)
}

func newError(subject Subject, code Code, reason string, args ...interface{}) *Error {
	if len(args) > 0 {
		reason = fmt.Sprintf(reason, args...)
	}
	return &Error{Subject: subject, Code: code, Reason: reason}
}

// NewError constructs an *Error, for use by method packages (tdr,
// pinv, dgt, vnrou) reporting setup or sampling failures through the
// taxonomy of spec.md §7.
func NewError(subject Subject, code Code, reason string, args ...interface{}) *Error {
	return newError(subject, code, reason, args...)
}

// RecordWarning records a sampling-time anomaly that does not abort
// the operation (e.g. a verification-mode hat/squeeze violation),
// matching spec.md §7's "recovered silently" / "reports a warning"
// distinction.
func RecordWarning(objectID string, err *Error) {
	recordError(objectID, SeverityWarning, err)
}

// RecordFailure records a sampling-time anomaly that does violate
// contract (spec.md §7: NaN density evaluation, exceeded iteration
// cap), for methods whose sampling operation returns a sentinel
// rather than an error value.
func RecordFailure(objectID string, err *Error) {
	recordError(objectID, SeverityError, err)
}

var (
	errMu       sync.Mutex
	lastErr     *Error
	errHandler  func(Info)
	defaultSink = func(Info) {}
)

func init() {
	errHandler = defaultSink
}

// SetErrorHandler installs the process-global error handler invoked
// before a failing operation returns. It is not safe to call
// concurrently with any other library operation; spec.md §5 documents
// the default uniform stream and error-logging stream as global state
// that must be established before concurrent use.
func SetErrorHandler(h func(Info)) {
	errMu.Lock()
	defer errMu.Unlock()
	if h == nil {
		h = defaultSink
	}
	errHandler = h
}

// LastError returns the most recently recorded error, or nil if none
// has been recorded since the process started; nothing clears it. It
// is the "process-global errno-style value" of spec.md §6.
func LastError() *Error {
	errMu.Lock()
	defer errMu.Unlock()
	return lastErr
}

func recordError(objectID string, severity Severity, err *Error) {
	errMu.Lock()
	lastErr = err
	h := errHandler
	errMu.Unlock()
	h(Info{
		ObjectID: objectID,
		Severity: severity,
		Subject:  err.Subject,
		Code:     err.Code,
		Reason:   err.Reason,
	})
}
