package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/semitest/stl-go/pkg/log"
)

// FilterOptions specifies filtering criteria for the filter command.
type FilterOptions struct {
	Output    string
	StepID    string
	StepName  string
	Kind      string
	DataID    string
	Pin       string
	Site      string
	TimeStart string
	TimeEnd   string
}

func (opts FilterOptions) filter() (log.Filter, error) {
	filter := log.Filter{
		StepID:   opts.StepID,
		StepName: opts.StepName,
		DataID:   opts.DataID,
		Pin:      opts.Pin,
	}

	if opts.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeStart)
		if err != nil {
			return filter, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}

	if opts.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeEnd)
		if err != nil {
			return filter, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}

	if opts.Kind != "" {
		k, err := ParseKindFlag(opts.Kind)
		if err != nil {
			return filter, err
		}
		filter.Kind = &k
	}

	if opts.Site != "" {
		s, err := ParseSiteFlag(opts.Site)
		if err != nil {
			return filter, err
		}
		filter.Site = &s
	}
	return filter, nil
}

// RunFilter filters the result file and writes matching events to a new
// file. It returns the number of events written.
func RunFilter(path string, opts FilterOptions) (int, error) {
	filter, err := opts.filter()
	if err != nil {
		return 0, err
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to open result file: %w", err)
	}
	defer reader.Close()

	logger, err := log.NewFileLogger(opts.Output)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	defer logger.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return logger.Count(), fmt.Errorf("failed to read event: %w", err)
		}
		logger.Log(event)
	}

	if err := logger.Err(); err != nil {
		return logger.Count(), fmt.Errorf("failed to write event: %w", err)
	}
	return logger.Count(), nil
}
