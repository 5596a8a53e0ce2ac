package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/wifi-android-connect/wac-go/pkg/log"
)

// RunExport writes the events matching filter to w as jsonl or csv.
func RunExport(path, format string, filter log.Filter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

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
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	header := []string{"timestamp", "attempt_id", "stream", "category", "address", "detail", "success"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		var detail, success string
		switch {
		case event.Record != nil:
			detail = event.Record.Name
			if event.Record.Ignored {
				detail += " (ignored: " + event.Record.Reason + ")"
			}
		case event.Action != nil:
			detail = event.Action.Kind.String()
			success = strconv.FormatBool(event.Action.Success)
		case event.StateChange != nil:
			detail = event.StateChange.OldState + " -> " + event.StateChange.NewState
		case event.Error != nil:
			detail = event.Error.Message
		}

		row := []string{
			event.Timestamp.UTC().Format(time.RFC3339Nano),
			event.AttemptID,
			event.Stream.String(),
			event.Category.String(),
			event.Address,
			detail,
			success,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
