// Package export writes recorded metric traces from headless runs to CSV or
// JSON. Only observer measurements leave the process; mesh state itself is
// never persisted.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/san-kum/clothlab/internal/config"
	"github.com/san-kum/clothlab/internal/metrics"
)

type RunData struct {
	Rows       int                  `json:"rows"`
	Cols       int                  `json:"cols"`
	Dt         float64              `json:"dt"`
	Iterations int                  `json:"iterations"`
	Ticks      []int                `json:"ticks"`
	Traces     map[string][]float64 `json:"traces"`
}

func NewRunData(cfg *config.Config, rec *metrics.Recorder) *RunData {
	return &RunData{
		Rows:       cfg.Rows,
		Cols:       cfg.Cols,
		Dt:         cfg.Dt,
		Iterations: cfg.Iterations,
		Ticks:      rec.Ticks,
		Traces:     rec.Traces,
	}
}

func WriteJSON(w io.Writer, data *RunData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func WriteCSV(w io.Writer, data *RunData) error {
	names := make([]string, 0, len(data.Traces))
	for name := range data.Traces {
		names = append(names, name)
	}
	sort.Strings(names)

	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := append([]string{"tick"}, names...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, tick := range data.Ticks {
		row := make([]string, 0, len(header))
		row = append(row, strconv.Itoa(tick))
		for _, name := range names {
			trace := data.Traces[name]
			if i >= len(trace) {
				return fmt.Errorf("trace %s shorter than tick list", name)
			}
			row = append(row, strconv.FormatFloat(trace[i], 'f', 6, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func JSONFile(path string, data *RunData) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteJSON(f, data)
}

func CSVFile(path string, data *RunData) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteCSV(f, data)
}
