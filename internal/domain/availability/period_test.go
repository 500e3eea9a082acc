//go:build unit

package availability_test

import (
	"testing"
	"time"

	"lending-core/internal/domain/availability"
	"lending-core/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

func day(n int) time.Time { return t0.AddDate(0, 0, n) }

func period(t *testing.T, from, to int) availability.Period {
	t.Helper()
	p, err := availability.NewPeriod(day(from), day(to))
	require.NoError(t, err)
	return p
}

func TestNewPeriod(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{name: "valid range", start: day(1), end: day(3)},
		{name: "end equals start", start: day(1), end: day(1), errIs: availability.ErrInvalidPeriod},
		{name: "end before start", start: day(3), end: day(1), errIs: availability.ErrInvalidPeriod},
		{name: "missing start", end: day(1), errIs: availability.ErrMissingDate},
		{name: "missing end", start: day(1), errIs: availability.ErrMissingDate},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := availability.NewPeriod(c.start, c.end)
			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, c.start, p.Start())
				assert.Equal(t, c.end, p.End())
				return
			}
			require.ErrorIs(t, err, c.errIs)
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b availability.Period
		want bool
	}{
		{name: "identical", a: period(t, 1, 5), b: period(t, 1, 5), want: true},
		{name: "partial overlap", a: period(t, 1, 5), b: period(t, 4, 8), want: true},
		{name: "containment", a: period(t, 1, 10), b: period(t, 3, 4), want: true},
		{name: "touching end to start", a: period(t, 1, 5), b: period(t, 5, 8), want: false},
		{name: "disjoint", a: period(t, 1, 2), b: period(t, 3, 4), want: false},
		{name: "zero period", a: availability.Period{}, b: period(t, 1, 5), want: false},
		{name: "degenerate period", a: availability.ReconstructPeriod(day(2), day(2)), b: period(t, 1, 5), want: false},
		{name: "inverted period", a: availability.ReconstructPeriod(day(4), day(2)), b: period(t, 1, 5), want: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, availability.Overlaps(c.a, c.b))
			assert.Equal(t, c.want, availability.Overlaps(c.b, c.a), "overlap must be symmetric")
			assert.Equal(t, c.want, c.a.Overlaps(c.b))
		})
	}
}

func TestOverlapsSymmetryGrid(t *testing.T) {
	var periods []availability.Period
	for start := 0; start < 6; start++ {
		for end := start + 1; end <= 6; end++ {
			periods = append(periods, period(t, start, end))
		}
	}
	for _, a := range periods {
		for _, b := range periods {
			require.Equal(t, availability.Overlaps(a, b), availability.Overlaps(b, a), "a=%v b=%v", a, b)
		}
	}
}
