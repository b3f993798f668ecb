package gemini

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"

	"google.golang.org/genai"
)

// FailureKind buckets every upstream failure into a fixed taxonomy.
type FailureKind string

const (
	FailTimeout         FailureKind = "timeout"
	FailAuthRejected    FailureKind = "auth_rejected"
	FailRateLimited     FailureKind = "rate_limited"
	FailContentFiltered FailureKind = "content_filtered"
	FailNetwork         FailureKind = "network_unreachable"
	FailUnclassified    FailureKind = "unclassified"
)

// CallError is the single failure shape surfaced for an upstream call.
// Message holds a canned human-readable sentence per kind; only the
// unclassified kind carries the raw upstream text.
type CallError struct {
	Kind    FailureKind
	Message string
	cause   error
}

func (e *CallError) Error() string {
	return e.Message
}

func (e *CallError) Unwrap() error {
	return e.cause
}

func newCallError(kind FailureKind, message string, cause error) *CallError {
	return &CallError{Kind: kind, Message: message, cause: cause}
}

const (
	msgTimeout       = "the Gemini API call timed out; simplify the request or raise GEMINI_TIMEOUT"
	msgAuthRejected  = "the Gemini API rejected the credentials; check GEMINI_API_KEY"
	msgRateLimited   = "the Gemini API rate limit was reached; wait before retrying"
	msgFiltered      = "the request was blocked by Gemini safety filters; rephrase and try again"
	msgNetwork       = "the Gemini API is unreachable; check the network connection"
	msgFileUploadNil = "the Gemini file service returned no file name for the upload"
	msgFileFailed    = "the Gemini file service failed to process the uploaded file"
)

// classify maps a raw failure onto the taxonomy. First match wins, in strict
// priority order, so a timed-out call that also carries a transport error is
// still a timeout.
func classify(err error) *CallError {
	var callErr *CallError
	if errors.As(err, &callErr) {
		return callErr
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return newCallError(FailTimeout, msgTimeout, err)
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 401, 403:
			return newCallError(FailAuthRejected, msgAuthRejected, err)
		case 429:
			return newCallError(FailRateLimited, msgRateLimited, err)
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "safety") ||
		strings.Contains(msg, "blocked") ||
		strings.Contains(msg, "prohibited"):
		return newCallError(FailContentFiltered, msgFiltered, err)
	case isNetworkErr(err) ||
		strings.Contains(msg, "dial tcp") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no such host"):
		return newCallError(FailNetwork, msgNetwork, err)
	}

	return newCallError(FailUnclassified, fmt.Sprintf("the Gemini API call failed: %s", err.Error()), err)
}

func isNetworkErr(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	return errors.Is(err, syscall.ECONNREFUSED)
}

// ValidationError reports an input-shape violation caught before any network
// call. It is deliberately distinct from the upstream CallError taxonomy.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func invalidInput(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
