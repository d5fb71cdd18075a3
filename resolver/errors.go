package resolver

import "errors"

// Kind is a stable category for programmatic error handling.
//
// These categories are intended to remain stable across versions. Callers
// should branch on Kind/RuleID rather than matching error strings.
//
// Every error the core returns is a hard failure: the whole call aborts and
// none of its effects stand. A policy hook's rejection is NOT an error — it
// surfaces as a false verdict.
type Kind string

const (
	// KindConfig covers construction-time misconfiguration
	// (e.g. a null trusted caller).
	KindConfig Kind = "Config"

	// KindAccess covers calls from anyone but the trusted caller.
	KindAccess Kind = "Access"

	// KindValue covers batch value accounting violations.
	KindValue Kind = "Value"

	// KindPayment covers unsolicited transfers to a non-payable resolver.
	KindPayment Kind = "Payment"

	// KindValidation covers malformed or unsupported requests.
	KindValidation Kind = "Validation"
)

// Error is the protocol's structured error type.
//
// RuleID is a stable identifier (e.g. ARC-ACC-001) naming the violated
// invariant. Message is intended for humans; do not match on it.
type Error struct {
	Kind    Kind
	RuleID  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// RuleID returns the stable RuleID for a structured error, or "" if unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}

// IsInvalidTrustedCaller reports a construction-time null trusted caller.
func IsInvalidTrustedCaller(err error) bool { return RuleID(err) == "ARC-CFG-001" }

// IsAccessDenied reports a guarded call from a non-trusted caller.
func IsAccessDenied(err error) bool { return IsKind(err, KindAccess) }

// IsInsufficientValue reports a batch item declaring more value than remains.
func IsInsufficientValue(err error) bool { return IsKind(err, KindValue) }

// IsNotPayable reports an unsolicited transfer to a non-payable resolver.
func IsNotPayable(err error) bool { return IsKind(err, KindPayment) }
