package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/semitest/stl-go/pkg/log"
)

// record is the flat export form of an event.
type record struct {
	Timestamp    string   `json:"timestamp"`
	StepID       string   `json:"step_id"`
	StepName     string   `json:"step_name,omitempty"`
	Kind         string   `json:"kind"`
	DataID       string   `json:"data_id,omitempty"`
	Site         string   `json:"site,omitempty"`
	Pin          string   `json:"pin,omitempty"`
	Type         string   `json:"type,omitempty"`
	Value        *float64 `json:"value,omitempty"`
	Sites        int      `json:"sites,omitempty"`
	Pins         int      `json:"pins,omitempty"`
	Size         int      `json:"size,omitempty"`
	Error        string   `json:"error,omitempty"`
	ErrorContext string   `json:"error_context,omitempty"`
}

func newRecord(event log.Event) record {
	rec := record{
		Timestamp: event.Timestamp.UTC().Format(timestampLayout),
		StepID:    event.StepID,
		StepName:  event.StepName,
		Kind:      event.Kind.String(),
	}
	switch {
	case event.Result != nil:
		v := event.Result.Value
		rec.DataID = event.Result.DataID
		rec.Site = event.Result.SiteLabel()
		rec.Pin = event.Result.Pin
		rec.Type = event.Result.Type.String()
		rec.Value = &v
	case event.Share != nil:
		rec.DataID = event.Share.ID
		rec.Sites = event.Share.Sites
		rec.Pins = event.Share.Pins
		rec.Size = event.Share.Size
	case event.Error != nil:
		rec.Error = event.Error.Message
		rec.ErrorContext = event.Error.Context
	}
	return rec
}

// RunExport exports the result file to the specified format.
func RunExport(path, format, output string) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open result file: %w", err)
	}
	defer reader.Close()

	// Determine output writer
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(newRecord(event)); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

// exportCSV writes one row per event. Only publish events carry a value;
// share events leave the value columns empty and error events put the
// message in the value column.
func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "step_id", "step_name", "kind", "data_id", "site", "pin", "type", "value"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		rec := newRecord(event)
		value := rec.Error
		if event.Result != nil {
			value = formatValue(event.Result)
		}
		row := []string{
			rec.Timestamp,
			rec.StepID,
			rec.StepName,
			rec.Kind,
			rec.DataID,
			rec.Site,
			rec.Pin,
			rec.Type,
			value,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
