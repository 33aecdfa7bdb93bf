// Package report reduces a schedule to averages and renders it the way the
// command line prints it: a title, a Gantt chart and a timing table.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/Hasti0013/cpusched/internal/model"
	"github.com/Hasti0013/cpusched/internal/scheduler"
)

// Summary holds the aggregate metrics of one run.
type Summary struct {
	Algorithm     scheduler.Algorithm
	Count         int
	AvgWaiting    float64
	AvgTurnaround float64
	// AvgTurnaroundLegacy adds the burst left over after simulation
	// instead of the original burst: the full burst under SJF, zero under
	// SRTF, where it collapses to AvgWaiting.
	AvgTurnaroundLegacy float64
	Throughput          float64
}

//region Metrics

// Summarize computes averages over results, which must be ordered by
// finish time.
func Summarize(alg scheduler.Algorithm, results []model.Result) Summary {
	s := Summary{Algorithm: alg, Count: len(results)}
	if len(results) == 0 {
		return s
	}

	var totalWait, totalTurnaround, totalLegacy float64
	for _, r := range results {
		totalWait += float64(r.WaitingTime)
		totalTurnaround += float64(r.Turnaround())
		totalLegacy += float64(r.WaitingTime + residualBurst(alg, r))
	}

	count := float64(len(results))
	s.AvgWaiting = totalWait / count
	s.AvgTurnaround = totalTurnaround / count
	s.AvgTurnaroundLegacy = totalLegacy / count
	if last := results[len(results)-1].FinishTime; last > 0 {
		s.Throughput = count / float64(last)
	}
	return s
}

func residualBurst(alg scheduler.Algorithm, r model.Result) int64 {
	if alg == scheduler.SRTF {
		return 0
	}
	return r.BurstDuration
}

// Turnaround returns the average turnaround figure to report.
func (s Summary) Turnaround(legacy bool) float64 {
	if legacy {
		return s.AvgTurnaroundLegacy
	}
	return s.AvgTurnaround
}

//endregion

//region Output helpers

// Brief prints the short run summary:
//
//	scheduled "in.txt" using SJF with depth 4
//	....avg wait time = 5.250 ms
//	....avg turn time = 10.750 ms
func Brief(w io.Writer, input string, limit int, s Summary, legacy bool) {
	_, _ = fmt.Fprintf(w, "scheduled %q using %s", input, s.Algorithm)
	if limit >= 0 {
		_, _ = fmt.Fprintf(w, " with depth %d", limit)
	}
	_, _ = fmt.Fprintf(w, "\n....avg wait time = %.03f ms\n....avg turn time = %.03f ms\n", s.AvgWaiting, s.Turnaround(legacy))
}

// Schedule prints the title, Gantt chart and timing table for a run.
func Schedule(w io.Writer, out *scheduler.Outcome, s Summary, legacy bool) {
	Title(w, s.Algorithm.Title())
	Gantt(w, out.Timeline)
	Table(w, out.Results, s, legacy)
}

// Title prints a ruled heading.
func Title(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// Gantt prints one cell per time slice followed by the slice start times
// and the final stop time.
func Gantt(w io.Writer, gantt []scheduler.TimeSlice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		pid := fmt.Sprint(gantt[i].PID)
		padding := strings.Repeat(" ", max(0, (8-len(pid))/2))
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Stop))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

// Table prints per-process timings with averages in the footer.
func Table(w io.Writer, results []model.Result, s Summary, legacy bool) {
	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = []string{
			fmt.Sprint(r.ProcessID),
			fmt.Sprint(r.BurstDuration),
			fmt.Sprint(r.ArrivalTime),
			fmt.Sprint(r.WaitingTime),
			fmt.Sprint(r.Turnaround()),
			fmt.Sprint(r.FinishTime),
		}
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Burst", "Arrival", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "",
		fmt.Sprintf("Average\n%.2f", s.AvgWaiting),
		fmt.Sprintf("Average\n%.2f", s.Turnaround(legacy)),
		fmt.Sprintf("Throughput\n%.2f/t", s.Throughput)})
	table.Render()
}

// Compare prints one row of averages per run.
func Compare(w io.Writer, summaries []Summary, legacy bool) {
	_, _ = fmt.Fprintln(w, "Comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Processes", "Avg wait", "Avg turnaround", "Throughput"})
	for _, s := range summaries {
		table.Append([]string{
			s.Algorithm.String(),
			fmt.Sprint(s.Count),
			fmt.Sprintf("%.2f", s.AvgWaiting),
			fmt.Sprintf("%.2f", s.Turnaround(legacy)),
			fmt.Sprintf("%.2f/t", s.Throughput),
		})
	}
	table.Render()
}

//endregion
