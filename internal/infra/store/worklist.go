package store

import (
	"context"
	"io"
	"log/slog"

	"sameday-trips/internal/domain/flight"
	"sameday-trips/internal/infra"
	"sameday-trips/internal/usecase/shared"

	"gopkg.in/yaml.v3"
)

type workListFile struct {
	Items []workItemYAML `yaml:"items"`
}

type workItemYAML struct {
	Destination       string `yaml:"destination"`
	City              string `yaml:"city"`
	DepartOrigin      string `yaml:"depart_origin"`
	ArriveDestination string `yaml:"arrive_destination,omitempty"`
	DepartDestination string `yaml:"depart_destination"`
}

// WorkList stores the pricing work list as YAML.
type WorkList struct {
	path   string
	logger *slog.Logger
}

var _ shared.WorkListStore = (*WorkList)(nil)

func NewWorkList(path string, logger *slog.Logger) *WorkList {
	return &WorkList{path: path, logger: logger}
}

func (w *WorkList) Load(_ context.Context) ([]shared.WorkItem, error) {
	data, ok, err := readOptional(w.path)
	if err != nil {
		return nil, infra.WrapCollabErr(w.logger, infra.KindStorage, "work_list", "failed to read "+w.path, err)
	}
	if !ok {
		return nil, infra.WrapCollabErr(w.logger, infra.KindNotFound, "work_list", "no work list at "+w.path+", run discover first", nil)
	}

	var file workListFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, infra.WrapCollabErr(w.logger, infra.KindStorage, "work_list", "failed to parse "+w.path, err)
	}
	items := make([]shared.WorkItem, 0, len(file.Items))
	for _, it := range file.Items {
		item, err := it.toDomain()
		if err != nil {
			return nil, infra.WrapCollabErr(w.logger, infra.KindStorage, "work_list", "invalid item "+it.Destination, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (it workItemYAML) toDomain() (shared.WorkItem, error) {
	departOrigin, err := flight.ParseClockTime(it.DepartOrigin)
	if err != nil {
		return shared.WorkItem{}, err
	}
	departDestination, err := flight.ParseClockTime(it.DepartDestination)
	if err != nil {
		return shared.WorkItem{}, err
	}
	item := shared.WorkItem{
		Destination:       it.Destination,
		City:              it.City,
		DepartOrigin:      departOrigin,
		DepartDestination: departDestination,
	}
	if it.ArriveDestination != "" {
		arrive, err := flight.ParseClockTime(it.ArriveDestination)
		if err != nil {
			return shared.WorkItem{}, err
		}
		item.ArriveDestination = &arrive
	}
	return item, nil
}

func (w *WorkList) Save(_ context.Context, items []shared.WorkItem) error {
	file := workListFile{Items: make([]workItemYAML, 0, len(items))}
	for _, it := range items {
		row := workItemYAML{
			Destination:       it.Destination,
			City:              it.City,
			DepartOrigin:      it.DepartOrigin.String(),
			DepartDestination: it.DepartDestination.String(),
		}
		if it.ArriveDestination != nil {
			row.ArriveDestination = it.ArriveDestination.String()
		}
		file.Items = append(file.Items, row)
	}

	err := writeAtomic(w.path, func(out io.Writer) error {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(file); err != nil {
			return err
		}
		return enc.Close()
	})
	if err != nil {
		return infra.WrapCollabErr(w.logger, infra.KindStorage, "work_list", "failed to write "+w.path, err)
	}
	return nil
}
