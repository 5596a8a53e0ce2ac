package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/wifi-android-connect/wac-go/pkg/discovery"
	"github.com/wifi-android-connect/wac-go/pkg/log"
)

// FilterOptions holds the raw filter flags shared by view and export.
type FilterOptions struct {
	AttemptID string
	Stream    string
	Category  string
	Action    string
	Address   string
	TimeStart string
	TimeEnd   string
}

// BuildFilter converts the flags into a log.Filter.
func BuildFilter(opts FilterOptions) (log.Filter, error) {
	filter := log.Filter{
		AttemptID: opts.AttemptID,
		Address:   opts.Address,
	}

	if opts.Stream != "" {
		s, err := ParseStreamFlag(opts.Stream)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Stream = &s
	}

	if opts.Category != "" {
		c, err := ParseCategoryFlag(opts.Category)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Category = &c
	}

	if opts.Action != "" {
		a, err := ParseActionFlag(opts.Action)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Action = &a
	}

	if opts.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeStart)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}

	if opts.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeEnd)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}

	return filter, nil
}

// ParseStreamFlag parses a stream string from command-line flag (case-insensitive).
func ParseStreamFlag(s string) (discovery.Stream, error) {
	switch strings.ToLower(s) {
	case "pairing", "pair":
		return discovery.StreamPairing, nil
	case "connect":
		return discovery.StreamConnect, nil
	default:
		return 0, fmt.Errorf("invalid stream: %s (must be pairing or connect)", s)
	}
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "record":
		return log.CategoryRecord, nil
	case "action":
		return log.CategoryAction, nil
	case "state":
		return log.CategoryState, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be record, action, state, or error)", s)
	}
}

// ParseActionFlag parses an action string from command-line flag (case-insensitive).
func ParseActionFlag(s string) (log.ActionKind, error) {
	switch strings.ToLower(s) {
	case "pair":
		return log.ActionPair, nil
	case "connect":
		return log.ActionConnect, nil
	default:
		return 0, fmt.Errorf("invalid action: %s (must be pair or connect)", s)
	}
}
