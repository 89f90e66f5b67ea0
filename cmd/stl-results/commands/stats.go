package commands

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/semitest/stl-go/pkg/log"
	"github.com/semitest/stl-go/pkg/sitedata"
)

// Stats holds aggregate statistics about a result file.
type Stats struct {
	TotalEvents  int
	EventsByKind map[log.Kind]int
	Steps        map[string]*StepStats
	Data         map[string]*DataStats
	Errors       int
	TimeRange    struct {
		Start time.Time
		End   time.Time
	}
}

// StepStats holds statistics for a single step context.
type StepStats struct {
	Name      string
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Results   int
}

// DataStats summarizes the values published under one data ID. When a
// key is published more than once the latest value is used.
type DataStats struct {
	Type   log.ValueType
	Events int

	// Sites summarizes per-site results, Pins per-pin results.
	Sites *SeriesStats
	Pins  *SeriesStats
}

// SeriesStats holds the extremes of a set of published values and where
// they occurred.
type SeriesStats struct {
	Min   float64
	MinAt []string
	Max   float64
	MaxAt []string

	// Mean is the mean across sites for per-site results.
	Mean float64
	// PinMeans is the mean across sites of every pin for per-pin results.
	PinMeans map[string]float64
}

// dataValues collects the latest value per key for one data ID.
type dataValues struct {
	sites map[int]float64
	pins  map[string]map[int]float64
}

func (d *dataValues) add(r *log.ResultEvent) {
	if r.Pin == "" {
		if d.sites == nil {
			d.sites = make(map[int]float64)
		}
		d.sites[r.Site] = r.Value
		return
	}
	if d.pins == nil {
		d.pins = make(map[string]map[int]float64)
	}
	if d.pins[r.Pin] == nil {
		d.pins[r.Pin] = make(map[int]float64)
	}
	d.pins[r.Pin][r.Site] = r.Value
}

func siteLabel(site int) string {
	if site == sitedata.SystemSite {
		return "system"
	}
	return strconv.Itoa(site)
}

func siteLabels(sites []int) []string {
	labels := make([]string, len(sites))
	for i, s := range sites {
		labels[i] = siteLabel(s)
	}
	return labels
}

func keyLabels(keys []sitedata.Key) []string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = k.String()
	}
	return labels
}

func summarizeSites(m map[int]float64) (*SeriesStats, error) {
	sd, err := sitedata.NewFromMap(m)
	if err != nil {
		return nil, err
	}
	s := &SeriesStats{}
	var sites []int
	if s.Min, sites, err = sitedata.Min(sd); err != nil {
		return nil, err
	}
	s.MinAt = siteLabels(sites)
	if s.Max, sites, err = sitedata.Max(sd); err != nil {
		return nil, err
	}
	s.MaxAt = siteLabels(sites)
	if s.Mean, err = sitedata.Mean(sd); err != nil {
		return nil, err
	}
	return s, nil
}

func summarizePins(m map[string]map[int]float64) (*SeriesStats, error) {
	psd, err := sitedata.NewFromPinMap(m)
	if err != nil {
		return nil, err
	}
	s := &SeriesStats{}
	var keys []sitedata.Key
	if s.Min, keys, err = sitedata.MinOverall(psd); err != nil {
		return nil, err
	}
	s.MinAt = keyLabels(keys)
	if s.Max, keys, err = sitedata.MaxOverall(psd); err != nil {
		return nil, err
	}
	s.MaxAt = keyLabels(keys)
	if s.PinMeans, err = sitedata.MeanBySite(psd); err != nil {
		return nil, err
	}
	return s, nil
}

// CollectStats reads every event of the result file.
func CollectStats(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open result file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByKind: make(map[log.Kind]int),
		Steps:        make(map[string]*StepStats),
		Data:         make(map[string]*DataStats),
	}
	values := make(map[string]*dataValues)

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByKind[event.Kind]++

		// Track time range
		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		// Track step stats
		step, ok := stats.Steps[event.StepID]
		if !ok {
			step = &StepStats{
				Name:      event.StepName,
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
			}
			stats.Steps[event.StepID] = step
		}
		step.Events++
		if event.Timestamp.After(step.LastSeen) {
			step.LastSeen = event.Timestamp
		}

		switch {
		case event.Result != nil:
			step.Results++
			r := event.Result
			ds, ok := stats.Data[r.DataID]
			if !ok {
				ds = &DataStats{Type: r.Type}
				stats.Data[r.DataID] = ds
				values[r.DataID] = &dataValues{}
			}
			ds.Events++
			values[r.DataID].add(r)
		case event.Error != nil:
			stats.Errors++
		}
	}

	for id, v := range values {
		ds := stats.Data[id]
		if v.sites != nil {
			if ds.Sites, err = summarizeSites(v.sites); err != nil {
				return nil, fmt.Errorf("summarize %s: %w", id, err)
			}
		}
		if v.pins != nil {
			if ds.Pins, err = summarizePins(v.pins); err != nil {
				return nil, fmt.Errorf("summarize %s: %w", id, err)
			}
		}
	}
	return stats, nil
}

// RunStats analyzes the result file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := CollectStats(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func formatNumber(t log.ValueType, v float64) string {
	return formatValue(&log.ResultEvent{Type: t, Value: v})
}

func printSeries(w io.Writer, label string, t log.ValueType, s *SeriesStats) {
	fmt.Fprintf(w, "    %s:\n", label)
	fmt.Fprintf(w, "      Min:  %s at %s\n", formatNumber(t, s.Min), strings.Join(s.MinAt, ", "))
	fmt.Fprintf(w, "      Max:  %s at %s\n", formatNumber(t, s.Max), strings.Join(s.MaxAt, ", "))
	if s.PinMeans == nil {
		fmt.Fprintf(w, "      Mean: %s\n", strconv.FormatFloat(s.Mean, 'g', 6, 64))
		return
	}
	pins := make([]string, 0, len(s.PinMeans))
	for pin := range s.PinMeans {
		pins = append(pins, pin)
	}
	sort.Strings(pins)
	for _, pin := range pins {
		fmt.Fprintf(w, "      Mean %s: %s\n", pin, strconv.FormatFloat(s.PinMeans[pin], 'g', 6, 64))
	}
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Step Result Statistics ===")
	fmt.Fprintln(w)

	// Time range
	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Millisecond))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Kind:")
	for _, kind := range []log.Kind{log.KindPublish, log.KindShare, log.KindRetrieve, log.KindError} {
		if count := stats.EventsByKind[kind]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", kind.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	// Steps, sorted by first seen time
	fmt.Fprintf(w, "Steps: %d\n", len(stats.Steps))
	if len(stats.Steps) > 0 {
		type stepInfo struct {
			id    string
			stats *StepStats
		}
		steps := make([]stepInfo, 0, len(stats.Steps))
		for id, ss := range stats.Steps {
			steps = append(steps, stepInfo{id, ss})
		}
		sort.Slice(steps, func(i, j int) bool {
			return steps[i].stats.FirstSeen.Before(steps[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, s := range steps {
			duration := s.stats.LastSeen.Sub(s.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, %d results, duration %s\n",
				shortenStepID(s.id), s.stats.Events, s.stats.Results, duration)
			if s.stats.Name != "" {
				fmt.Fprintf(w, "           Name: %s\n", s.stats.Name)
			}
		}
	}

	if len(stats.Data) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Data IDs: %d\n", len(stats.Data))
		ids := make([]string, 0, len(stats.Data))
		for id := range stats.Data {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			ds := stats.Data[id]
			fmt.Fprintln(w)
			fmt.Fprintf(w, "  %s (%s, %d values)\n", id, ds.Type, ds.Events)
			if ds.Sites != nil {
				printSeries(w, "Sites", ds.Type, ds.Sites)
			}
			if ds.Pins != nil {
				printSeries(w, "Pins", ds.Type, ds.Pins)
			}
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
