package orchestrator

// State is a stage of a validation run.
type State int

const (
	StateStart State = iota
	StateParseFailed
	StateParsed
	StateSchemaInvalid
	StateSchemaValid
	StateReportReady

	// StateReconcileFailed is entered when the reconciliation of a
	// schema-valid document was aborted, e.g. by a cancelled context.
	StateReconcileFailed
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateParseFailed:
		return "parse-failed"
	case StateParsed:
		return "parsed"
	case StateSchemaInvalid:
		return "schema-invalid"
	case StateSchemaValid:
		return "schema-valid"
	case StateReportReady:
		return "report-ready"
	case StateReconcileFailed:
		return "reconcile-failed"
	default:
		return "unknown"
	}
}

// Terminal returns whether no further [State] follows.
func (s State) Terminal() bool {
	switch s {
	case StateParseFailed, StateSchemaInvalid, StateReportReady, StateReconcileFailed:
		return true
	default:
		return false
	}
}
