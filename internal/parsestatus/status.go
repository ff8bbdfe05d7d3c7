// Package parsestatus records the outcome of parsing a fetched document:
// a major and a minor code with readable names plus string arguments.
package parsestatus

import (
	"fmt"
	"strings"

	"github.com/msto63/textkit/foundation/utils/mapx"
)

// Major is the coarse outcome of parsing a document
type Major int16

// Minor refines a Major outcome
type Minor int

const (
	NotParsed Major = 0
	Success   Major = 1
	Failed    Major = 2
)

const (
	SuccessOK       Minor = 0
	SuccessRedirect Minor = 100

	FailedException       Minor = 200
	FailedNotSpecified    Minor = 201
	FailedTruncated       Minor = 202
	FailedInvalidFormat   Minor = 203
	FailedMissingParts    Minor = 204
	FailedMissingContent  Minor = 205
	FailedNoParser        Minor = 206
	FailedMalformedURL    Minor = 207
	FailedUnknownEncoding Minor = 208
)

// Well-known argument names
const (
	ArgRefreshHref = "refreshHref"
	ArgRefreshTime = "refreshTime"
)

const (
	unknownName    = "unknown"
	unknownMessage = "(unknown)"
)

var majorNames = map[Major]string{
	NotParsed: "notparsed",
	Success:   "success",
	Failed:    "failed",
}

var minorNames = map[Minor]string{
	SuccessOK:             "ok",
	SuccessRedirect:       "redirect",
	FailedException:       "exception",
	FailedNotSpecified:    "not_specified",
	FailedTruncated:       "truncated",
	FailedInvalidFormat:   "invalid_format",
	FailedMissingParts:    "missing_parts",
	FailedMissingContent:  "missing_content",
	FailedNoParser:        "no_parser",
	FailedMalformedURL:    "malformed_url",
	FailedUnknownEncoding: "unknown_encoding",
}

var minorsByName = mapx.Invert(minorNames)

// MajorName returns the name of code, or "unknown"
func MajorName(code Major) string {
	if name, ok := majorNames[code]; ok {
		return name
	}
	return unknownName
}

// MinorName returns the name of code, or "unknown"
func MinorName(code Minor) string {
	if name, ok := minorNames[code]; ok {
		return name
	}
	return unknownName
}

// Minors returns every known minor code in ascending order
func Minors() []Minor {
	return mapx.SortedKeys(minorNames)
}

// MajorOf returns the major code a minor code belongs to
func MajorOf(minor Minor) Major {
	if minor >= FailedException {
		return Failed
	}
	return Success
}

// ParseMinor looks a minor code up by name
func ParseMinor(name string) (Minor, bool) {
	code, ok := minorsByName[name]
	return code, ok
}

// String returns the name of the major code
func (m Major) String() string { return MajorName(m) }

// String returns the name of the minor code
func (m Minor) String() string { return MinorName(m) }

// Status records the outcome of parsing one document. The zero value is
// notparsed/ok with no arguments.
type Status struct {
	major Major
	minor Minor
	args  map[string]string
}

// New creates a status with the given codes
func New(major Major, minor Minor) *Status {
	return &Status{major: major, minor: minor}
}

// NewWithMessage creates a status and stores message under the minor name.
// An empty message is stored as "(unknown)".
func NewWithMessage(major Major, minor Minor, message string) *Status {
	s := New(major, minor)
	if message == "" {
		message = unknownMessage
	}
	s.SetArg(MinorName(minor), message)
	return s
}

// SetCode sets both codes
func (s *Status) SetCode(major Major, minor Minor) {
	s.major = major
	s.minor = minor
}

// Major returns the major code
func (s *Status) Major() Major { return s.major }

// SetMajor sets the major code
func (s *Status) SetMajor(major Major) { s.major = major }

// Minor returns the minor code
func (s *Status) Minor() Minor { return s.minor }

// SetMinor sets the minor code
func (s *Status) SetMinor(minor Minor) { s.minor = minor }

// SetMinorMessage sets the minor code and stores message under its name
func (s *Status) SetMinorMessage(minor Minor, message string) {
	s.minor = minor
	s.SetArg(MinorName(minor), message)
}

// Args returns a copy of the argument map
func (s *Status) Args() map[string]string {
	return mapx.Clone(s.args)
}

// SetArg stores one argument
func (s *Status) SetArg(name, value string) {
	if s.args == nil {
		s.args = make(map[string]string)
	}
	s.args[name] = value
}

// Arg returns the argument stored under name, or def
func (s *Status) Arg(name, def string) string {
	if v, ok := s.args[name]; ok {
		return v
	}
	return def
}

// SetSuccessOK marks the status success/ok
func (s *Status) SetSuccessOK() {
	s.SetCode(Success, SuccessOK)
}

// SetFailed marks the status failed with minor and stores message under
// the minor name. An empty message is stored as "(unknown)".
func (s *Status) SetFailed(minor Minor, message string) {
	s.major = Failed
	if message == "" {
		message = unknownMessage
	}
	s.SetMinorMessage(minor, message)
}

// IsParsed reports whether parsing was attempted
func (s *Status) IsParsed() bool { return s.major != NotParsed }

// IsSuccess reports whether parsing succeeded
func (s *Status) IsSuccess() bool { return s.major == Success }

// IsFailed reports whether parsing failed
func (s *Status) IsFailed() bool { return s.major == Failed }

// IsRedirect reports a successful parse that found a redirect
func (s *Status) IsRedirect() bool {
	return s.IsSuccess() && s.minor == SuccessRedirect
}

// Name returns "<major>/<minor>"
func (s *Status) Name() string {
	return MajorName(s.major) + "/" + MinorName(s.minor)
}

// String renders name, numeric codes and the arguments sorted by name
func (s *Status) String() string {
	keys := mapx.SortedKeys(s.args)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+": "+s.args[k])
	}
	return fmt.Sprintf("%s (%d/%d), args=[%s]", s.Name(), s.major, s.minor, strings.Join(pairs, ", "))
}
