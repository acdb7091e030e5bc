package store

import (
	"context"
	"log/slog"
	"strings"

	"sameday-trips/internal/infra"
	"sameday-trips/internal/usecase/shared"

	"gopkg.in/yaml.v3"
)

// fallbackDestinations is used when no catalog file exists.
var fallbackDestinations = []shared.Destination{
	{Code: "ATL", City: "Atlanta"},
	{Code: "MIA", City: "Miami"},
	{Code: "BOS", City: "Boston"},
}

type catalogFile struct {
	Destinations []struct {
		Code string `yaml:"code"`
		City string `yaml:"city"`
	} `yaml:"destinations"`
}

// Catalog reads the destination list from a YAML file.
type Catalog struct {
	path   string
	logger *slog.Logger
}

var _ shared.DestinationCatalog = (*Catalog)(nil)

func NewCatalog(path string, logger *slog.Logger) *Catalog {
	return &Catalog{path: path, logger: logger}
}

func (c *Catalog) Destinations(_ context.Context) ([]shared.Destination, error) {
	data, ok, err := readOptional(c.path)
	if err != nil {
		return nil, infra.WrapCollabErr(c.logger, infra.KindStorage, "catalog", "failed to read "+c.path, err)
	}
	if !ok {
		c.logger.Warn("destination catalog not found, using fallback", "path", c.path, "destinations", len(fallbackDestinations))
		return append([]shared.Destination(nil), fallbackDestinations...), nil
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, infra.WrapCollabErr(c.logger, infra.KindStorage, "catalog", "failed to parse "+c.path, err)
	}
	seen := make(map[string]bool, len(file.Destinations))
	out := make([]shared.Destination, 0, len(file.Destinations))
	for _, d := range file.Destinations {
		code := strings.ToUpper(strings.TrimSpace(d.Code))
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, shared.Destination{Code: code, City: strings.TrimSpace(d.City)})
	}
	return out, nil
}
