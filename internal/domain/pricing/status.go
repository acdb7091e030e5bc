package pricing

import (
	"fmt"
	"strings"
)

// Source labels double as the leading word of each status token.
type Source string

const (
	SourceCash  Source = "Cash"
	SourceAward Source = "Award"
	SourceCar   Source = "Turo"
)

// SourceOrder is the fixed order sources appear in a composite status.
var SourceOrder = []Source{SourceCash, SourceAward, SourceCar}

type Outcome string

const (
	OutcomeOK             Outcome = "OK"
	OutcomePartial        Outcome = "Partial"
	OutcomeFailed         Outcome = "Failed"
	OutcomeNoAvailability Outcome = "No availability"
	OutcomeSkipped        Outcome = "Skipped"
)

const statusSeparator = " | "

// Token renders one source's status, e.g. "Cash OK" or "Award: No availability".
func Token(src Source, o Outcome) string {
	if o == OutcomeNoAvailability {
		return fmt.Sprintf("%s: %s", src, o)
	}
	return fmt.Sprintf("%s %s", src, o)
}

// CompositeStatus joins the tokens of the sources present in outcomes, in source order.
func CompositeStatus(outcomes map[Source]Outcome) string {
	tokens := make([]string, 0, len(SourceOrder))
	for _, src := range SourceOrder {
		if o, ok := outcomes[src]; ok {
			tokens = append(tokens, Token(src, o))
		}
	}
	return strings.Join(tokens, statusSeparator)
}

// ParseCompositeStatus reverses CompositeStatus. Unknown tokens are ignored.
func ParseCompositeStatus(status string) map[Source]Outcome {
	outcomes := make(map[Source]Outcome, len(SourceOrder))
	for _, token := range strings.Split(status, statusSeparator) {
		token = strings.TrimSpace(token)
		for _, src := range SourceOrder {
			for _, o := range []Outcome{OutcomeOK, OutcomePartial, OutcomeFailed, OutcomeNoAvailability, OutcomeSkipped} {
				if token == Token(src, o) {
					outcomes[src] = o
				}
			}
		}
	}
	return outcomes
}
