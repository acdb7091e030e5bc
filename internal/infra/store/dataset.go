package store

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"sameday-trips/internal/domain/pricing"
	"sameday-trips/internal/infra"
	"sameday-trips/internal/usecase/shared"

	"github.com/google/uuid"
)

var datasetHeader = []string{
	"Destination",
	"City",
	"Run ID",
	"Pricing Date",
	"Cash Price Outbound",
	"Cash Price Return",
	"Cash Total Cost",
	"Award Miles Outbound Main",
	"Award Miles Outbound First",
	"Award Miles Return Main",
	"Award Miles Return First",
	"Turo Lowest Price",
	"Turo Vehicle",
	"Turo URL",
	"Last Updated",
	"Pricing Status",
}

const (
	colDestination = iota
	colCity
	colRunID
	colPricingDate
	colCashOutbound
	colCashReturn
	colCashTotal
	colAwardOutMain
	colAwardOutFirst
	colAwardRetMain
	colAwardRetFirst
	colCarPrice
	colCarVehicle
	colCarURL
	colUpdated
	colStatus
)

// Dataset keeps the pricing dataset in one CSV file, rewritten atomically
// on every save.
type Dataset struct {
	path   string
	logger *slog.Logger
}

var _ shared.DatasetStore = (*Dataset)(nil)

func NewDataset(path string, logger *slog.Logger) *Dataset {
	return &Dataset{path: path, logger: logger}
}

func (d *Dataset) Save(_ context.Context, records []pricing.Record) error {
	err := writeAtomic(d.path, func(out io.Writer) error {
		w := csv.NewWriter(out)
		if err := w.Write(datasetHeader); err != nil {
			return err
		}
		for i := range records {
			if err := w.Write(encodeRecord(&records[i])); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	})
	if err != nil {
		return infra.WrapCollabErr(d.logger, infra.KindStorage, "dataset", "failed to write "+d.path, err)
	}
	d.logger.Debug("dataset saved", "path", d.path, "records", len(records))
	return nil
}

// Load returns every stored record, or none when the file does not exist yet.
func (d *Dataset) Load(_ context.Context) ([]pricing.Record, error) {
	data, ok, err := readOptional(d.path)
	if err != nil {
		return nil, infra.WrapCollabErr(d.logger, infra.KindStorage, "dataset", "failed to read "+d.path, err)
	}
	if !ok {
		return nil, nil
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, infra.WrapCollabErr(d.logger, infra.KindStorage, "dataset", "failed to parse "+d.path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	records := make([]pricing.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := decodeRecord(row)
		if err != nil {
			return nil, infra.WrapCollabErr(d.logger, infra.KindStorage, "dataset", fmt.Sprintf("invalid row %d in %s", i+2, d.path), err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func encodeRecord(r *pricing.Record) []string {
	row := make([]string, len(datasetHeader))
	row[colDestination] = r.Destination
	row[colCity] = r.City
	row[colRunID] = r.RunID.String()
	row[colPricingDate] = r.PricingDate.Format(time.DateOnly)

	if r.Cash != nil {
		row[colCashOutbound] = formatPrice(r.Cash.Outbound)
		row[colCashReturn] = formatPrice(r.Cash.Return)
		row[colCashTotal] = formatPrice(r.Cash.Total)
	}
	if r.Award != nil {
		row[colAwardOutMain], row[colAwardOutFirst] = encodeAwardLeg(r.Award.Outbound)
		row[colAwardRetMain], row[colAwardRetFirst] = encodeAwardLeg(r.Award.Return)
	}
	if r.Car != nil {
		row[colCarPrice] = formatPrice(r.Car.LowestDailyPrice)
		row[colCarVehicle] = r.Car.Vehicle
		row[colCarURL] = r.Car.URL
	}
	if !r.UpdatedAt.IsZero() {
		row[colUpdated] = r.UpdatedAt.Format(time.RFC3339)
	}
	row[colStatus] = r.Status
	return row
}

func encodeAwardLeg(leg pricing.AwardLeg) (mainCabin, firstCabin string) {
	if !leg.Available {
		return pricing.NoRewardAvailable, pricing.NoRewardAvailable
	}
	return formatMiles(leg.Main), formatMiles(leg.First)
}

func decodeRecord(row []string) (pricing.Record, error) {
	if len(row) != len(datasetHeader) {
		return pricing.Record{}, fmt.Errorf("expected %d columns, got %d", len(datasetHeader), len(row))
	}
	runID, err := uuid.Parse(row[colRunID])
	if err != nil {
		return pricing.Record{}, fmt.Errorf("run id: %w", err)
	}
	date, err := time.Parse(time.DateOnly, row[colPricingDate])
	if err != nil {
		return pricing.Record{}, fmt.Errorf("pricing date: %w", err)
	}

	rec := pricing.NewRecord(runID, row[colDestination], row[colCity], date)

	var cash pricing.CashBlock
	if cash.Outbound, err = parsePrice(row[colCashOutbound]); err != nil {
		return pricing.Record{}, err
	}
	if cash.Return, err = parsePrice(row[colCashReturn]); err != nil {
		return pricing.Record{}, err
	}
	if cash.Total, err = parsePrice(row[colCashTotal]); err != nil {
		return pricing.Record{}, err
	}
	if cash.Outbound != nil || cash.Return != nil || cash.Total != nil {
		rec.Cash = &cash
	}

	if row[colAwardOutMain] != "" || row[colAwardOutFirst] != "" || row[colAwardRetMain] != "" || row[colAwardRetFirst] != "" {
		out, err := decodeAwardLeg(row[colAwardOutMain], row[colAwardOutFirst])
		if err != nil {
			return pricing.Record{}, err
		}
		ret, err := decodeAwardLeg(row[colAwardRetMain], row[colAwardRetFirst])
		if err != nil {
			return pricing.Record{}, err
		}
		rec.Award = &pricing.AwardBlock{Outbound: out, Return: ret}
	}

	carPrice, err := parsePrice(row[colCarPrice])
	if err != nil {
		return pricing.Record{}, err
	}
	if carPrice != nil {
		rec.Car = &pricing.CarBlock{LowestDailyPrice: carPrice, Vehicle: row[colCarVehicle], URL: row[colCarURL]}
	}

	if row[colUpdated] != "" {
		if rec.UpdatedAt, err = time.Parse(time.RFC3339, row[colUpdated]); err != nil {
			return pricing.Record{}, fmt.Errorf("last updated: %w", err)
		}
	}
	rec.Status = row[colStatus]
	rec.Outcomes = pricing.ParseCompositeStatus(rec.Status)
	// only finalized records are ever written
	rec.Finalized = rec.Status != ""
	return *rec, nil
}

func decodeAwardLeg(mainCabin, firstCabin string) (pricing.AwardLeg, error) {
	if mainCabin == pricing.NoRewardAvailable || firstCabin == pricing.NoRewardAvailable {
		return pricing.AwardLeg{}, nil
	}
	m, err := parsePrice(mainCabin)
	if err != nil {
		return pricing.AwardLeg{}, err
	}
	f, err := parsePrice(firstCabin)
	if err != nil {
		return pricing.AwardLeg{}, err
	}
	return pricing.AwardLeg{Available: m != nil || f != nil, Main: m, First: f}, nil
}

func formatPrice(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func formatMiles(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 0, 64)
}

func parsePrice(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return &v, nil
}
