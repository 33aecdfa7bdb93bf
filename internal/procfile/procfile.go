// Package procfile reads process tables and writes schedules in the
// plain-text layout: one whitespace-separated record per line.
package procfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Hasti0013/cpusched/internal/model"
)

// NoLimit makes Load read every record.
const NoLimit = -1

// ErrMalformed wraps every *ParseError.
var ErrMalformed = errors.New("malformed process file")

// ParseError points at the offending line of a process file.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: line %d: %s", ErrMalformed, e.Line, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrMalformed
}

// Open opens a process file for reading. The returned func closes it.
func Open(path string, log *zap.Logger) (*os.File, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: error opening process file", err)
	}
	return f, closer(f, path, log), nil
}

// Create truncates or creates an output file. The returned func closes it.
func Create(path string, log *zap.Logger) (*os.File, func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: error creating output file", err)
	}
	return f, closer(f, path, log), nil
}

func closer(f *os.File, path string, log *zap.Logger) func() {
	return func() {
		if err := f.Close(); err != nil {
			log.Warn("error closing file", zap.String("path", path), zap.Error(err))
		}
	}
}

// Load parses "id arrival burst" triplets, one per line, stopping after
// limit records unless limit is NoLimit. Blank lines are skipped.
func Load(r io.Reader, limit int) ([]model.Process, error) {
	var (
		processes []model.Process
		sc        = bufio.NewScanner(r)
		line      int
	)
	for sc.Scan() {
		line++
		if limit != NoLimit && len(processes) >= limit {
			break
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, &ParseError{Line: line, Reason: fmt.Sprintf("want 3 fields, got %d", len(fields))}
		}

		var vals [3]int64
		for i, name := range []string{"id", "arrival", "burst"} {
			v, err := strconv.ParseInt(fields[i], 10, 64)
			if err != nil {
				return nil, &ParseError{Line: line, Reason: fmt.Sprintf("%s %q is not an integer", name, fields[i])}
			}
			vals[i] = v
		}
		processes = append(processes, model.Process{
			ProcessID:     vals[0],
			ArrivalTime:   vals[1],
			BurstDuration: vals[2],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading process file", err)
	}
	return processes, nil
}

// Write emits "id arrival finish waiting" per result, in order.
func Write(w io.Writer, results []model.Result) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		if _, err := fmt.Fprintf(bw, "%d %d %d %d\n", r.ProcessID, r.ArrivalTime, r.FinishTime, r.WaitingTime); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteYAML emits the results as a YAML document.
func WriteYAML(w io.Writer, results []model.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	doc := struct {
		Results []model.Result `yaml:"results"`
	}{Results: results}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("%w: encoding yaml", err)
	}
	return enc.Close()
}
