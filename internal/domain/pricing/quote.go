package pricing

// CashQuote holds the matched cash fare of each leg.
type CashQuote struct {
	Outbound Result[float64]
	Return   Result[float64]
}

func (q CashQuote) Outcome() Outcome {
	switch {
	case q.Outbound.IsOK() && q.Return.IsOK():
		return OutcomeOK
	case q.Outbound.IsOK() || q.Return.IsOK():
		return OutcomePartial
	default:
		return OutcomeFailed
	}
}

// AwardMiles is the mileage cost of one matched award flight. A nil cabin
// was not offered on that flight.
type AwardMiles struct {
	Main  *float64
	First *float64
}

type AwardQuote struct {
	Outbound Result[AwardMiles]
	Return   Result[AwardMiles]
}

// Outcome distinguishes "the page had nothing for us" from "we could not read the page".
func (q AwardQuote) Outcome() Outcome {
	switch {
	case q.Outbound.IsOK() && q.Return.IsOK():
		return OutcomeOK
	case q.Outbound.IsOK() || q.Return.IsOK():
		return OutcomePartial
	case q.Outbound.Reason() == ReasonNoAvailability || q.Return.Reason() == ReasonNoAvailability:
		return OutcomeNoAvailability
	default:
		return OutcomeFailed
	}
}

// Vehicle is the cheapest rental found for a destination.
type Vehicle struct {
	Description string
	DailyPrice  float64
	Currency    string
	URL         string
}

func CarOutcome(r Result[Vehicle]) Outcome {
	switch {
	case r.IsOK():
		return OutcomeOK
	case r.Reason() == ReasonNoAvailability:
		return OutcomeNoAvailability
	default:
		return OutcomeFailed
	}
}
