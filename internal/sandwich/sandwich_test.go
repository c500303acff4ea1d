package sandwich

import (
	"errors"
	"testing"
	"time"

	"github.com/shiftwise/internal/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := calendar.ParseDate(s)
	require.NoError(t, err)
	return d
}

func isoDates(ds []time.Time) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, calendar.ISO(d))
	}
	return out
}

func TestEvaluateEndBeforeStart(t *testing.T) {
	_, err := Evaluate(Range{
		Start: date(t, "2026-01-16"),
		End:   date(t, "2026-01-12"),
		Type:  EarnedLeave,
	}, calendar.Default())

	require.Error(t, err)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "end before start", verr.Reason)
}

func TestEvaluateSingleWorkingDayException(t *testing.T) {
	h := calendar.New([]calendar.Holiday{{Date: "2026-01-14", Name: "Pongal"}})

	eval, err := Evaluate(Range{
		Start: date(t, "2026-01-13"),
		End:   date(t, "2026-01-14"),
		Type:  EarnedLeave,
	}, h)

	require.NoError(t, err)
	assert.False(t, eval.IsSandwich)
	assert.Equal(t, 1, eval.WorkingDays)
	assert.Equal(t, 2, eval.TotalLeaveDays)
	assert.Zero(t, eval.ExtraDays)
	assert.Empty(t, eval.SandwichDates)
}

func TestEvaluateHolidaysInsideRange(t *testing.T) {
	h := calendar.New([]calendar.Holiday{
		{Date: "2026-01-14", Name: "Pongal"},
		{Date: "2026-01-15", Name: "Uttarayan"},
	})

	eval, err := Evaluate(Range{
		Start: date(t, "2026-01-12"),
		End:   date(t, "2026-01-16"),
		Type:  EarnedLeave,
	}, h)

	require.NoError(t, err)
	assert.True(t, eval.IsSandwich)
	assert.Equal(t, 5, eval.TotalLeaveDays)
	assert.Equal(t, 3, eval.WorkingDays)
	assert.Equal(t, 2, eval.ExtraDays)
	assert.Equal(t, []string{"2026-01-14", "2026-01-15"}, isoDates(eval.SandwichDates))
	assert.Equal(t, 5, eval.ChargedDays())
}

func TestEvaluateCases(t *testing.T) {
	h := calendar.Default()

	tests := []struct {
		name       string
		start, end string
		sandwich   bool
		working    int
		extra      int
	}{
		{"friday to monday spans weekend", "2026-01-09", "2026-01-12", true, 2, 2},
		{"plain week", "2026-02-02", "2026-02-06", false, 5, 0},
		{"single working day", "2026-02-03", "2026-02-03", false, 1, 0},
		{"weekend only", "2026-02-07", "2026-02-08", false, 0, 0},
		{"friday holiday weekend monday", "2026-10-01", "2026-10-05", true, 2, 3},
		{"adjacent weekend not checked", "2026-02-09", "2026-02-13", false, 5, 0},
		{"saturday to monday single working", "2026-02-07", "2026-02-09", false, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval, err := Evaluate(Range{Start: date(t, tt.start), End: date(t, tt.end), Type: EarnedLeave}, h)
			require.NoError(t, err)
			assert.Equal(t, tt.sandwich, eval.IsSandwich)
			assert.Equal(t, tt.working, eval.WorkingDays)
			assert.Equal(t, tt.extra, eval.ExtraDays)
			assert.Len(t, eval.SandwichDates, tt.extra)
			assert.NotEmpty(t, eval.Reason)
		})
	}
}

func TestEvaluateAllLeaveTypesApply(t *testing.T) {
	for _, lt := range LeaveTypes {
		t.Run(string(lt), func(t *testing.T) {
			eval, err := Evaluate(Range{
				Start: date(t, "2026-01-09"),
				End:   date(t, "2026-01-12"),
				Type:  lt,
			}, nil)
			require.NoError(t, err)
			assert.True(t, eval.IsSandwich)
		})
	}
}

func TestEvaluateUnknownTypeIsFlagged(t *testing.T) {
	eval, err := Evaluate(Range{
		Start: date(t, "2026-01-09"),
		End:   date(t, "2026-01-12"),
		Type:  LeaveType("Sick"),
	}, nil)

	require.NoError(t, err)
	assert.False(t, eval.IsSandwich)
	assert.Equal(t, 4, eval.TotalLeaveDays)
	assert.Contains(t, eval.Reason, "not subject")
}

func TestEvaluateIsDeterministic(t *testing.T) {
	h := calendar.Default()
	r := Range{Start: date(t, "2026-11-06"), End: date(t, "2026-11-13"), Type: CompOff}

	first, err := Evaluate(r, h)
	require.NoError(t, err)
	second, err := Evaluate(r, h)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEvaluateIgnoresClockComponent(t *testing.T) {
	eval, err := Evaluate(Range{
		Start: time.Date(2026, time.January, 9, 18, 30, 0, 0, time.UTC),
		End:   time.Date(2026, time.January, 12, 6, 0, 0, 0, time.UTC),
		Type:  EarnedLeave,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, eval.TotalLeaveDays)
}

func TestParseLeaveType(t *testing.T) {
	tests := []struct {
		input    string
		expected LeaveType
		wantErr  bool
	}{
		{"EL", EarnedLeave, false},
		{"", EarnedLeave, false},
		{"ml", MarriageLeave, false},
		{"Marriage Leave", MarriageLeave, false},
		{"co", CompOff, false},
		{"Comp-Off", CompOff, false},
		{"lwp", LeaveWithoutPay, false},
		{"sick", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLeaveType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.True(t, got.Valid())
		})
	}
}
