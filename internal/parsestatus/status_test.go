package parsestatus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"notparsed", MajorName(NotParsed), "notparsed"},
		{"success", MajorName(Success), "success"},
		{"failed", MajorName(Failed), "failed"},
		{"unknown major", MajorName(Major(9)), "unknown"},
		{"ok", MinorName(SuccessOK), "ok"},
		{"redirect", MinorName(SuccessRedirect), "redirect"},
		{"exception", MinorName(FailedException), "exception"},
		{"truncated", MinorName(FailedTruncated), "truncated"},
		{"malformed url", MinorName(FailedMalformedURL), "malformed_url"},
		{"unknown encoding", MinorName(FailedUnknownEncoding), "unknown_encoding"},
		{"unknown minor", MinorName(Minor(999)), "unknown"},
		{"stringer", FailedNoParser.String(), "no_parser"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestParseMinor(t *testing.T) {
	code, ok := ParseMinor("missing_content")
	require.True(t, ok)
	assert.Equal(t, FailedMissingContent, code)

	_, ok = ParseMinor("nope")
	assert.False(t, ok)
}

func TestZeroValue(t *testing.T) {
	var s Status

	assert.False(t, s.IsParsed())
	assert.Equal(t, "notparsed/ok", s.Name())
	assert.Equal(t, "fallback", s.Arg("x", "fallback"))
	assert.Empty(t, s.Args())
	assert.Equal(t, "notparsed/ok (0/0), args=[]", s.String())
}

func TestSetSuccessOK(t *testing.T) {
	s := New(NotParsed, FailedException)
	s.SetSuccessOK()

	assert.True(t, s.IsParsed())
	assert.True(t, s.IsSuccess())
	assert.False(t, s.IsFailed())
	assert.False(t, s.IsRedirect())
	assert.Equal(t, "success/ok", s.Name())
}

func TestRedirect(t *testing.T) {
	s := New(Success, SuccessRedirect)
	s.SetArg(ArgRefreshHref, "http://example.com/next")
	s.SetArg(ArgRefreshTime, "5")

	assert.True(t, s.IsRedirect())
	assert.Equal(t, "http://example.com/next", s.Arg(ArgRefreshHref, ""))
	assert.Equal(t, "success/redirect (1/100), args=[refreshHref: http://example.com/next, refreshTime: 5]", s.String())

	s.SetMajor(Failed)
	assert.False(t, s.IsRedirect(), "redirect requires success")
}

func TestSetFailed(t *testing.T) {
	s := &Status{}
	s.SetFailed(FailedTruncated, "content cut at 64KiB")

	assert.True(t, s.IsFailed())
	assert.Equal(t, Failed, s.Major())
	assert.Equal(t, FailedTruncated, s.Minor())
	assert.Equal(t, "content cut at 64KiB", s.Arg("truncated", ""))
	assert.Equal(t, "failed/truncated (2/202), args=[truncated: content cut at 64KiB]", s.String())

	s.SetFailed(FailedNoParser, "")
	assert.Equal(t, "(unknown)", s.Arg("no_parser", ""))
	assert.Len(t, s.Args(), 2)
}

func TestNewWithMessage(t *testing.T) {
	s := NewWithMessage(Failed, FailedMalformedURL, "")
	assert.Equal(t, "(unknown)", s.Arg("malformed_url", ""))

	s = NewWithMessage(Failed, FailedException, "boom")
	assert.Equal(t, "boom", s.Arg("exception", ""))
}

func TestArgsIsCopy(t *testing.T) {
	s := New(Success, SuccessOK)
	s.SetArg("a", "1")

	args := s.Args()
	args["a"] = "changed"
	assert.Equal(t, "1", s.Arg("a", ""))
}

func TestSetters(t *testing.T) {
	s := New(NotParsed, SuccessOK)
	s.SetCode(Failed, FailedInvalidFormat)
	assert.Equal(t, "failed/invalid_format", s.Name())

	s.SetMinor(FailedMissingParts)
	assert.Equal(t, FailedMissingParts, s.Minor())

	s.SetMinorMessage(FailedMissingContent, "empty body")
	assert.Equal(t, "empty body", s.Arg("missing_content", ""))
	assert.Equal(t, Major(2), s.Major())
	assert.Equal(t, "failed", s.Major().String())
}

func TestMinors(t *testing.T) {
	minors := Minors()
	require.Len(t, minors, 11)
	assert.Equal(t, SuccessOK, minors[0])
	assert.Equal(t, SuccessRedirect, minors[1])
	assert.Equal(t, FailedUnknownEncoding, minors[len(minors)-1])
}

func TestMajorOf(t *testing.T) {
	assert.Equal(t, Success, MajorOf(SuccessOK))
	assert.Equal(t, Success, MajorOf(SuccessRedirect))
	assert.Equal(t, Failed, MajorOf(FailedException))
	assert.Equal(t, Failed, MajorOf(FailedUnknownEncoding))
}
