package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hasti0013/cpusched/internal/model"
	"github.com/Hasti0013/cpusched/internal/scheduler"
)

func scenarioA(t *testing.T) *scheduler.Outcome {
	t.Helper()
	out, err := scheduler.ShortestJobFirst([]model.Process{
		{ProcessID: 1, ArrivalTime: 0, BurstDuration: 5},
		{ProcessID: 2, ArrivalTime: 1, BurstDuration: 3},
		{ProcessID: 3, ArrivalTime: 2, BurstDuration: 8},
		{ProcessID: 4, ArrivalTime: 3, BurstDuration: 6},
	})
	require.NoError(t, err)
	return out
}

func scenarioB(t *testing.T) *scheduler.Outcome {
	t.Helper()
	out, err := scheduler.ShortestRemainingTimeFirst([]model.Process{
		{ProcessID: 1, ArrivalTime: 0, BurstDuration: 8},
		{ProcessID: 2, ArrivalTime: 1, BurstDuration: 4},
		{ProcessID: 3, ArrivalTime: 2, BurstDuration: 9},
		{ProcessID: 4, ArrivalTime: 3, BurstDuration: 5},
	})
	require.NoError(t, err)
	return out
}

func TestSummarize_SJF(t *testing.T) {
	s := Summarize(scheduler.SJF, scenarioA(t).Results)

	assert.Equal(t, 4, s.Count)
	assert.InDelta(t, 5.25, s.AvgWaiting, 1e-9)
	assert.InDelta(t, 10.75, s.AvgTurnaround, 1e-9)
	assert.InDelta(t, 10.75, s.AvgTurnaroundLegacy, 1e-9)
	assert.InDelta(t, 4.0/22.0, s.Throughput, 1e-9)
}

func TestSummarize_SRTF(t *testing.T) {
	s := Summarize(scheduler.SRTF, scenarioB(t).Results)

	assert.InDelta(t, 6.5, s.AvgWaiting, 1e-9)
	assert.InDelta(t, 13.0, s.AvgTurnaround, 1e-9)
	assert.InDelta(t, 6.5, s.AvgTurnaroundLegacy, 1e-9)
	assert.InDelta(t, 13.0, s.Turnaround(false), 1e-9)
	assert.InDelta(t, 6.5, s.Turnaround(true), 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(scheduler.SJF, nil)
	assert.Zero(t, s.Count)
	assert.Zero(t, s.AvgWaiting)
	assert.Zero(t, s.Throughput)
}

func TestBrief(t *testing.T) {
	s := Summarize(scheduler.SJF, scenarioA(t).Results)

	var buf bytes.Buffer
	Brief(&buf, "in.txt", -1, s, false)
	assert.Equal(t, "scheduled \"in.txt\" using SJF\n....avg wait time = 5.250 ms\n....avg turn time = 10.750 ms\n", buf.String())

	buf.Reset()
	Brief(&buf, "in.txt", 4, s, false)
	assert.True(t, strings.HasPrefix(buf.String(), "scheduled \"in.txt\" using SJF with depth 4\n"))
}

func TestGantt(t *testing.T) {
	var buf bytes.Buffer
	Gantt(&buf, scenarioA(t).Timeline)

	assert.Equal(t, "Gantt schedule\n|   1   |   2   |   4   |   3   |\n0\t5\t8\t14\t22\n\n", buf.String())
}

func TestSchedule(t *testing.T) {
	out := scenarioB(t)
	s := Summarize(scheduler.SRTF, out.Results)

	var buf bytes.Buffer
	Schedule(&buf, out, s, false)

	got := buf.String()
	assert.Contains(t, got, "Shortest-remaining-time-first")
	assert.Contains(t, got, "Gantt schedule")
	assert.Contains(t, got, "Schedule table")
	assert.Contains(t, got, "6.50")
	assert.Contains(t, got, "13.00")
	assert.Contains(t, got, "0\t1\t5\t10\t17\t26")
}

func TestCompare(t *testing.T) {
	summaries := []Summary{
		Summarize(scheduler.SJF, scenarioA(t).Results),
		Summarize(scheduler.SRTF, scenarioB(t).Results),
	}

	var buf bytes.Buffer
	Compare(&buf, summaries, false)

	got := buf.String()
	assert.Contains(t, got, "Comparison")
	assert.Contains(t, got, "SJF")
	assert.Contains(t, got, "SRTF")
	assert.Contains(t, got, "5.25")
	assert.Contains(t, got, "10.75")
	assert.Contains(t, got, "13.00")
}
