package gateway

// Outcome tells a caller why a result holds the data it holds
type Outcome string

const (
	// OutcomeOK means the model produced usable content
	OutcomeOK Outcome = "ok"
	// OutcomeEmpty means the model legitimately returned nothing
	OutcomeEmpty Outcome = "empty"
	// OutcomeUnavailable means the call failed and Data is the default value
	OutcomeUnavailable Outcome = "unavailable"
)

// Reason classifies an unavailable outcome
type Reason string

const (
	ReasonNone      Reason = ""
	ReasonTransport Reason = "transport"
	ReasonMalformed Reason = "malformed"
	ReasonSchema    Reason = "schema"
)

// Result is what every gateway operation returns instead of an error
type Result[T any] struct {
	Data    T       `json:"data"`
	Outcome Outcome `json:"outcome"`
	Reason  Reason  `json:"reason,omitempty"`
}

func (r Result[T]) OK() bool {
	return r.Outcome == OutcomeOK
}

func ok[T any](data T) Result[T] {
	return Result[T]{Data: data, Outcome: OutcomeOK}
}

func empty[T any](data T) Result[T] {
	return Result[T]{Data: data, Outcome: OutcomeEmpty}
}

func unavailable[T any](data T, reason Reason) Result[T] {
	return Result[T]{Data: data, Outcome: OutcomeUnavailable, Reason: reason}
}

// mapResult decorates the data of a result, keeping its outcome
func mapResult[T, U any](r Result[T], f func(T) U) Result[U] {
	return Result[U]{Data: f(r.Data), Outcome: r.Outcome, Reason: r.Reason}
}
