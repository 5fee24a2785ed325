package dispatcher

// Outcome is the terminal result of one dispatch.
type Outcome uint8

const (
	// OutcomeSkipped means the path is static and routing was not attempted.
	OutcomeSkipped Outcome = iota
	// OutcomeSuccess means the main handler and both chains completed.
	OutcomeSuccess
	// OutcomeNotFound means no route matched.
	OutcomeNotFound
	// OutcomeServerError means a fault was caught.
	OutcomeServerError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeSuccess:
		return "success"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeServerError:
		return "server_error"
	}
	return "unknown"
}
