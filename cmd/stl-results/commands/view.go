// Package commands implements the stl-results CLI commands.
package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/semitest/stl-go/pkg/log"
)

const timestampLayout = "2006-01-02T15:04:05.000000Z"

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Kind   *log.Kind
	StepID string
	DataID string
	Pin    string
	Site   *int
}

func (f ViewFilter) filter() log.Filter {
	return log.Filter{
		StepID: f.StepID,
		Kind:   f.Kind,
		DataID: f.DataID,
		Pin:    f.Pin,
		Site:   f.Site,
	}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [step:id] KIND name
	ts := event.Timestamp.UTC().Format(timestampLayout)
	header := fmt.Sprintf("%s [step:%s] %-8s", ts, shortenStepID(event.StepID), event.Kind.String())
	if event.StepName != "" {
		header += " " + event.StepName
	}
	fmt.Fprintln(w, strings.TrimRight(header, " "))

	switch {
	case event.Result != nil:
		formatResultDetails(w, event.Result)
	case event.Share != nil:
		formatShareDetails(w, event.Share)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenStepID returns the first 8 characters of the step ID.
func shortenStepID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatResultDetails(w io.Writer, r *log.ResultEvent) {
	fmt.Fprintf(w, "  DataID: %s\n", r.DataID)
	fmt.Fprintf(w, "  Site:   %s\n", r.SiteLabel())
	if r.Pin != "" {
		fmt.Fprintf(w, "  Pin:    %s\n", r.Pin)
	}
	fmt.Fprintf(w, "  Value:  %s (%s)\n", formatValue(r), r.Type)
}

func formatShareDetails(w io.Writer, s *log.ShareEvent) {
	fmt.Fprintf(w, "  ID:    %s\n", s.ID)
	fmt.Fprintf(w, "  Sites: %d\n", s.Sites)
	if s.Pins > 0 {
		fmt.Fprintf(w, "  Pins:  %d\n", s.Pins)
	}
	fmt.Fprintf(w, "  Size:  %d bytes\n", s.Size)
}

func formatErrorDetails(w io.Writer, e *log.ErrorEventData) {
	if e.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", e.Context)
	}
	fmt.Fprintf(w, "  Error:   %s\n", e.Message)
}

// formatValue renders a published value the way its source type prints.
func formatValue(r *log.ResultEvent) string {
	switch r.Type {
	case log.ValueBool:
		return strconv.FormatBool(r.Value != 0)
	case log.ValueInt:
		return strconv.FormatInt(int64(r.Value), 10)
	case log.ValueUint:
		return strconv.FormatUint(uint64(r.Value), 10)
	default:
		return strconv.FormatFloat(r.Value, 'g', -1, 64)
	}
}

// ParseKindFlag parses a kind string from command-line flag (case-insensitive).
func ParseKindFlag(s string) (log.Kind, error) {
	k, ok := log.ParseKind(strings.ToUpper(s))
	if !ok {
		return 0, fmt.Errorf("invalid kind: %s (must be publish, share, retrieve, or error)", s)
	}
	return k, nil
}

// ParseSiteFlag parses a site number; "system" selects system data.
func ParseSiteFlag(s string) (int, error) {
	if strings.EqualFold(s, "system") {
		return -1, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid site: %s (must be a site number or system)", s)
	}
	return n, nil
}

// RunView reads the result file and writes matching events to output.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter.filter())
	if err != nil {
		return fmt.Errorf("failed to open result file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}

	return nil
}
