package store

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"strconv"
	"time"

	"sameday-trips/internal/domain/flight"
	"sameday-trips/internal/infra"
	"sameday-trips/internal/usecase/shared"
)

var tripsHeader = []string{
	"Rank", "Best", "Origin", "Destination", "City", "Date",
	"Outbound Flight", "Outbound Stops", "Outbound Depart", "Outbound Arrive", "Outbound Duration", "Outbound Price",
	"Return Flight", "Return Stops", "Return Depart", "Return Arrive", "Return Duration", "Return Price",
	"Ground Time", "Ground Hours", "Total Cost", "Total Trip Time",
}

// TripSheet writes discovered trips to a CSV file.
type TripSheet struct {
	path   string
	logger *slog.Logger
}

var _ shared.TripSink = (*TripSheet)(nil)

func NewTripSheet(path string, logger *slog.Logger) *TripSheet {
	return &TripSheet{path: path, logger: logger}
}

func (s *TripSheet) WriteTrips(_ context.Context, rows []shared.TripRow) error {
	err := writeAtomic(s.path, func(out io.Writer) error {
		w := csv.NewWriter(out)
		if err := w.Write(tripsHeader); err != nil {
			return err
		}
		for _, r := range rows {
			if err := w.Write(tripRow(r)); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	})
	if err != nil {
		return infra.WrapCollabErr(s.logger, infra.KindStorage, "trips", "failed to write "+s.path, err)
	}
	s.logger.Info("trips written", "path", s.path, "trips", len(rows))
	return nil
}

func tripRow(r shared.TripRow) []string {
	t := r.Trip
	out, ret := t.Outbound(), t.Return()
	row := []string{
		strconv.Itoa(t.Rank),
		strconv.FormatBool(t.Best),
		t.Origin(),
		t.Destination(),
		r.City,
		t.Date().Format(time.DateOnly),
	}
	row = append(row, legColumns(out)...)
	row = append(row, legColumns(ret)...)

	total := ""
	if cost, ok := t.TotalCost(); ok {
		total = strconv.FormatFloat(cost, 'f', 2, 64)
	}
	return append(row,
		t.GroundTime(),
		strconv.FormatFloat(t.GroundHoursRounded(), 'f', 2, 64),
		total,
		t.TotalTripTime(),
	)
}

func legColumns(f *flight.Flight) []string {
	price := ""
	if v, ok := f.PrimaryCost(); ok {
		price = strconv.FormatFloat(v, 'f', 2, 64)
	}
	return []string{
		f.FlightNumbers(),
		strconv.Itoa(f.Stops()),
		f.DepartClock().String(),
		f.ArriveClock().String(),
		flight.FormatDuration(f.DurationMinutes()),
		price,
	}
}
