package validate

import "github.com/concept-learner/winston/diag"

// Violation is one failure of the example model to satisfy the learned
// model, carrying a [diag.Code] so callers can filter or group results
// instead of parsing messages.
type Violation struct {
	Issue diag.Issue
}

// String renders the violation's underlying diagnostic message.
func (v Violation) String() string {
	return v.Issue.String()
}

func newViolation(code diag.Code, message string) Violation {
	return Violation{Issue: diag.NewIssue(diag.Error, code, message).Build()}
}
