package domain

// Severity classifies how bad a failed validation check is.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityWarning  Severity = "WARNING"
	SeverityInfo     Severity = "INFO"
	SeverityPass     Severity = "PASS"
)

// Rank returns the escalation priority of a severity (higher = worse).
// Escalation logic depends on this explicit ordering, not on declaration
// order.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	case SeverityPass:
		return 0
	default:
		return -1
	}
}

// Valid reports whether s is one of the recognized severity levels.
func (s Severity) Valid() bool {
	return s.Rank() >= 0
}

// ValidationCheck is a single named, independently evaluated rule result.
type ValidationCheck struct {
	Name     string         `json:"name"`
	Passed   bool           `json:"passed"`
	Severity Severity       `json:"severity"`
	Message  string         `json:"message,omitempty"`
	Details  map[string]any `json:"details,omitempty"`
}

// ValidationResult aggregates the ordered checks of one validator invocation.
// Construct it with NewResult; it is not mutated afterwards.
type ValidationResult struct {
	Status Severity          `json:"status"`
	Checks []ValidationCheck `json:"checks"`
}

// NewResult derives the overall status from the given checks.
func NewResult(checks []ValidationCheck) ValidationResult {
	return ValidationResult{
		Status: AggregateStatus(checks),
		Checks: checks,
	}
}

// AggregateStatus returns the highest severity among failed checks, or PASS
// when every check passed. INFO-severity failures never raise the status.
// Every validator derives its status through this single routine so the
// escalation invariant holds identically across all of them.
func AggregateStatus(checks []ValidationCheck) Severity {
	status := SeverityPass
	for _, c := range checks {
		if c.Passed {
			continue
		}
		switch c.Severity {
		case SeverityCritical:
			// Strict priority: nothing outranks a failed CRITICAL check.
			return SeverityCritical
		case SeverityWarning:
			if status == SeverityPass {
				status = SeverityWarning
			}
		}
	}
	return status
}

// IsCritical reports whether the validation failed critically.
func (r ValidationResult) IsCritical() bool {
	return r.Status == SeverityCritical
}

// HasWarnings reports whether any check carries WARNING severity. This scans
// the checks directly rather than deriving from Status: callers rely on
// detecting WARNING-level checks even when the overall status is CRITICAL.
func (r ValidationResult) HasWarnings() bool {
	for _, c := range r.Checks {
		if c.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

// FailedChecks returns the checks that did not pass, in order.
func (r ValidationResult) FailedChecks() []ValidationCheck {
	var failed []ValidationCheck
	for _, c := range r.Checks {
		if !c.Passed {
			failed = append(failed, c)
		}
	}
	return failed
}

// ExitCode maps a validation status to the process exit code contract:
// 0 for PASS (or INFO), 1 for WARNING, 2 for CRITICAL.
func ExitCode(status Severity) int {
	switch status {
	case SeverityCritical:
		return 2
	case SeverityWarning:
		return 1
	default:
		return 0
	}
}
