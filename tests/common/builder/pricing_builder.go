//go:build unit || e2e

package builder

import (
	"time"

	"sameday-trips/internal/domain/pricing"

	"github.com/google/uuid"
)

type RecordBuilder struct {
	RunID       uuid.UUID
	Destination string
	City        string
	PricingDate time.Time
	CashOut     *float64
	CashReturn  *float64
	AwardMain   *float64
	CarPrice    *float64
	UpdatedAt   time.Time
}

func NewRecordBuilder() *RecordBuilder {
	cashOut, cashReturn, main, car := 120.0, 100.0, 10000.0, 54.5
	return &RecordBuilder{
		RunID:       uuid.MustParse("7c1e8a52-5a8f-4d0e-9a51-0c8b1f0a2f11"),
		Destination: "ATL",
		City:        "Atlanta",
		PricingDate: time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC),
		CashOut:     &cashOut,
		CashReturn:  &cashReturn,
		AwardMain:   &main,
		CarPrice:    &car,
		UpdatedAt:   time.Date(2025, 11, 1, 14, 30, 0, 0, time.UTC),
	}
}

func (r *RecordBuilder) With(mutate func(*RecordBuilder)) *RecordBuilder {
	mutate(r)
	return r
}

// Build methods

// BuildDomain returns a finalized record. A nil price makes that source
// report no availability.
func (r *RecordBuilder) BuildDomain() pricing.Record {
	rec := pricing.NewRecord(r.RunID, r.Destination, r.City, r.PricingDate)

	_ = rec.ApplyCash(pricing.CashQuote{Outbound: result(r.CashOut), Return: result(r.CashReturn)})

	award := pricing.Unavailable[pricing.AwardMiles](pricing.ReasonNoAvailability, nil)
	if r.AwardMain != nil {
		award = pricing.OK(pricing.AwardMiles{Main: r.AwardMain})
	}
	_ = rec.ApplyAward(pricing.AwardQuote{Outbound: award, Return: award})

	car := pricing.Unavailable[pricing.Vehicle](pricing.ReasonNoAvailability, nil)
	if r.CarPrice != nil {
		car = pricing.OK(pricing.Vehicle{Description: "2021 Toyota Corolla", DailyPrice: *r.CarPrice, Currency: "USD", URL: "https://turo.com/a"})
	}
	_ = rec.ApplyCar(car)

	_ = rec.Finalize(r.UpdatedAt)
	return *rec
}

func result(v *float64) pricing.Result[float64] {
	if v == nil {
		return pricing.Unavailable[float64](pricing.ReasonNoAvailability, nil)
	}
	return pricing.OK(*v)
}
