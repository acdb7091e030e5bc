package pricing

import (
	"time"

	"sameday-trips/internal/pkg/errs"

	"github.com/google/uuid"
)

// NoRewardAvailable is written in place of miles when a leg has no award.
const NoRewardAvailable = "No Reward Available"

type CashBlock struct {
	Outbound *float64
	Return   *float64
	Total    *float64
}

type AwardLeg struct {
	Available bool
	Main      *float64
	First     *float64
}

type AwardBlock struct {
	Outbound AwardLeg
	Return   AwardLeg
}

type CarBlock struct {
	LowestDailyPrice *float64
	Vehicle          string
	URL              string
}

// Record is one destination's pricing for one run. It is filled as sources
// report, frozen by Finalize, and never edited afterwards; a rerun creates a
// new Record.
type Record struct {
	RunID       uuid.UUID
	Destination string
	City        string
	PricingDate time.Time
	Cash        *CashBlock
	Award       *AwardBlock
	Car         *CarBlock
	Outcomes    map[Source]Outcome
	Status      string
	UpdatedAt   time.Time
	Finalized   bool
}

func NewRecord(runID uuid.UUID, destination, city string, pricingDate time.Time) *Record {
	return &Record{
		RunID:       runID,
		Destination: destination,
		City:        city,
		PricingDate: pricingDate,
		Outcomes:    make(map[Source]Outcome, len(SourceOrder)),
	}
}

func (r *Record) ApplyCash(q CashQuote) error {
	if r.Finalized {
		return errs.ErrRecordFinalized
	}
	block := &CashBlock{}
	if v, ok := q.Outbound.Value(); ok {
		block.Outbound = &v
	}
	if v, ok := q.Return.Value(); ok {
		block.Return = &v
	}
	if block.Outbound != nil && block.Return != nil {
		total := *block.Outbound + *block.Return
		block.Total = &total
	}
	r.Cash = block
	r.Outcomes[SourceCash] = q.Outcome()
	return nil
}

func (r *Record) ApplyAward(q AwardQuote) error {
	if r.Finalized {
		return errs.ErrRecordFinalized
	}
	r.Award = &AwardBlock{
		Outbound: awardLeg(q.Outbound),
		Return:   awardLeg(q.Return),
	}
	r.Outcomes[SourceAward] = q.Outcome()
	return nil
}

func awardLeg(res Result[AwardMiles]) AwardLeg {
	miles, ok := res.Value()
	if !ok {
		return AwardLeg{}
	}
	return AwardLeg{Available: true, Main: miles.Main, First: miles.First}
}

func (r *Record) ApplyCar(res Result[Vehicle]) error {
	if r.Finalized {
		return errs.ErrRecordFinalized
	}
	if v, ok := res.Value(); ok {
		price := v.DailyPrice
		r.Car = &CarBlock{LowestDailyPrice: &price, Vehicle: v.Description, URL: v.URL}
	}
	r.Outcomes[SourceCar] = CarOutcome(res)
	return nil
}

// Skip records a source that was not requested for this run.
func (r *Record) Skip(src Source) error {
	if r.Finalized {
		return errs.ErrRecordFinalized
	}
	r.Outcomes[src] = OutcomeSkipped
	return nil
}

// Fail records a source that could not be attempted at all, e.g. one
// disabled after an authentication failure.
func (r *Record) Fail(src Source) error {
	if r.Finalized {
		return errs.ErrRecordFinalized
	}
	r.Outcomes[src] = OutcomeFailed
	return nil
}

func (r *Record) Finalize(now time.Time) error {
	if r.Finalized {
		return errs.ErrRecordFinalized
	}
	r.Status = CompositeStatus(r.Outcomes)
	r.UpdatedAt = now
	r.Finalized = true
	return nil
}

// Clone returns a copy sharing no pointers or maps with r.
func (r *Record) Clone() Record {
	out := *r
	if r.Cash != nil {
		out.Cash = &CashBlock{Outbound: clonePtr(r.Cash.Outbound), Return: clonePtr(r.Cash.Return), Total: clonePtr(r.Cash.Total)}
	}
	if r.Award != nil {
		out.Award = &AwardBlock{Outbound: r.Award.Outbound.clone(), Return: r.Award.Return.clone()}
	}
	if r.Car != nil {
		car := *r.Car
		car.LowestDailyPrice = clonePtr(r.Car.LowestDailyPrice)
		out.Car = &car
	}
	out.Outcomes = make(map[Source]Outcome, len(r.Outcomes))
	for k, v := range r.Outcomes {
		out.Outcomes[k] = v
	}
	return out
}

func (l AwardLeg) clone() AwardLeg {
	return AwardLeg{Available: l.Available, Main: clonePtr(l.Main), First: clonePtr(l.First)}
}

func clonePtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// AllSourcesFailed reports whether every attempted source failed outright.
// A record whose sources were all skipped has not failed.
func (r *Record) AllSourcesFailed() bool {
	attempted := 0
	for _, o := range r.Outcomes {
		switch o {
		case OutcomeSkipped:
			continue
		case OutcomeFailed:
			attempted++
		default:
			return false
		}
	}
	return attempted > 0
}
