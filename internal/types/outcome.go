package types

// OutcomeKind tags the active QueryOutcome variant.
type OutcomeKind string

const (
	OutcomeIdle      OutcomeKind = "idle"
	OutcomeLoading   OutcomeKind = "loading"
	OutcomeFailed    OutcomeKind = "failed"
	OutcomeSucceeded OutcomeKind = "succeeded"
)

// QueryOutcome is the result of the most recent query. Exactly one variant is active;
// the constructors below are the only way to build one.
type QueryOutcome struct {
	kind    OutcomeKind
	message string
	records []SaleRecord
}

// IdleOutcome is the outcome before any query has been issued.
func IdleOutcome() QueryOutcome {
	return QueryOutcome{kind: OutcomeIdle}
}

// LoadingOutcome is the outcome while a query is in flight.
func LoadingOutcome() QueryOutcome {
	return QueryOutcome{kind: OutcomeLoading}
}

// FailedOutcome carries the user facing failure message.
func FailedOutcome(message string) QueryOutcome {
	return QueryOutcome{kind: OutcomeFailed, message: message}
}

// SucceededOutcome holds the records in the order the remote service returned them.
// A nil or empty slice is a valid, empty result.
func SucceededOutcome(records []SaleRecord) QueryOutcome {
	stored := make([]SaleRecord, len(records))
	copy(stored, records)
	return QueryOutcome{kind: OutcomeSucceeded, records: stored}
}

func (o QueryOutcome) Kind() OutcomeKind {
	if o.kind == "" {
		return OutcomeIdle
	}
	return o.kind
}

// Message is non-empty only for failed outcomes.
func (o QueryOutcome) Message() string {
	return o.message
}

// Records returns a copy of the stored records; nil unless the outcome succeeded.
func (o QueryOutcome) Records() []SaleRecord {
	if o.kind != OutcomeSucceeded {
		return nil
	}
	out := make([]SaleRecord, len(o.records))
	copy(out, o.records)
	return out
}

// TopSale returns the first record, which the remote service ranks highest.
func (o QueryOutcome) TopSale() (SaleRecord, bool) {
	if o.kind != OutcomeSucceeded || len(o.records) == 0 {
		return SaleRecord{}, false
	}
	return o.records[0], true
}

func (o QueryOutcome) IsLoading() bool   { return o.Kind() == OutcomeLoading }
func (o QueryOutcome) IsFailed() bool    { return o.Kind() == OutcomeFailed }
func (o QueryOutcome) IsSucceeded() bool { return o.Kind() == OutcomeSucceeded }
