package sqlgen

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Outcome is what the presentation layer shows for one submission: either a
// Result or a categorized message.
type Outcome struct {
	Result   *Result
	Kind     Kind
	Severity Severity
	Message  string
}

func OutcomeOf(result Result, err error) Outcome {
	if err == nil {
		return Outcome{Result: &result}
	}

	genErr := asError(err)

	severity := SeverityError
	if genErr.Kind == KindValidation {
		severity = SeverityWarning
	}

	return Outcome{
		Kind:     genErr.Kind,
		Severity: severity,
		Message:  genErr.UserMessage(),
	}
}

func (o Outcome) OK() bool {
	return o.Result != nil
}
