// Package tui provides an interactive terminal preview of extracted tables.
package tui

import "errors"

// ErrEmptyDataset is returned when a dataset has no columns to show.
var ErrEmptyDataset = errors.New("tui: dataset has no columns")
