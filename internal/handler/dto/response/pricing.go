package response

import (
	"time"

	"sameday-trips/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CashResponse struct {
	Outbound *float64 `json:"outbound,omitempty"`
	Return   *float64 `json:"return,omitempty"`
	Total    *float64 `json:"total,omitempty"`
}

type AwardLegResponse struct {
	Available bool     `json:"available"`
	Main      *float64 `json:"main,omitempty"`
	First     *float64 `json:"first,omitempty"`
}

type AwardResponse struct {
	Outbound AwardLegResponse `json:"outbound"`
	Return   AwardLegResponse `json:"return"`
}

type CarResponse struct {
	LowestDailyPrice *float64 `json:"lowestDailyPrice,omitempty"`
	Vehicle          string   `json:"vehicle,omitempty"`
	URL              string   `json:"url,omitempty"`
}

type PricingRecordResponse struct {
	RunID       uuid.UUID         `json:"runId"`
	Destination string            `json:"destination"`
	City        string            `json:"city"`
	PricingDate string            `json:"pricingDate" copier:"-"`
	Cash        *CashResponse     `json:"cash,omitempty"`
	Award       *AwardResponse    `json:"award,omitempty"`
	Car         *CarResponse      `json:"car,omitempty"`
	Outcomes    map[string]string `json:"outcomes" copier:"-"`
	Status      string            `json:"status"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

func FromPricingRecord(r *pricing.Record) (*PricingRecordResponse, error) {
	var out PricingRecordResponse
	if err := copier.CopyWithOption(&out, r, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	out.PricingDate = r.PricingDate.Format(time.DateOnly)
	out.Outcomes = make(map[string]string, len(r.Outcomes))
	for src, o := range r.Outcomes {
		out.Outcomes[string(src)] = string(o)
	}
	return &out, nil
}

func FromPricingRecords(records []pricing.Record) ([]*PricingRecordResponse, error) {
	out := make([]*PricingRecordResponse, 0, len(records))
	for i := range records {
		resp, err := FromPricingRecord(&records[i])
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}
