// Package loshu_test contains unit tests for date extraction and the Lo Shu
// grid analysis.
package loshu_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/katalvlaran/numerology/loshu"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Digits
//----------------------------------------------------------------------------//

func TestDigits(t *testing.T) {
	cases := []struct {
		name string
		date loshu.Date
		want []int
	}{
		{"TwoDigitFields", loshu.Date{Day: 23, Month: 11, Year: 1990}, []int{2, 3, 1, 1, 1, 9, 9, 0}},
		{"NoPadding", loshu.Date{Day: 3, Month: 3, Year: 2003}, []int{3, 3, 2, 0, 0, 3}},
		{"LeapDay", loshu.Date{Day: 29, Month: 2, Year: 2000}, []int{2, 9, 2, 2, 0, 0, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := loshu.Digits(tc.date)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestDigits_Invalid(t *testing.T) {
	cases := []struct {
		name string
		date loshu.Date
		err  error
	}{
		{"Feb30", loshu.Date{Day: 30, Month: 2, Year: 2020}, loshu.ErrInvalidDate},
		{"NotLeap", loshu.Date{Day: 29, Month: 2, Year: 1900}, loshu.ErrInvalidDate},
		{"Month13", loshu.Date{Day: 1, Month: 13, Year: 2020}, loshu.ErrInvalidDate},
		{"DayZero", loshu.Date{Day: 0, Month: 1, Year: 2020}, loshu.ErrInvalidDate},
		{"NegativeDay", loshu.Date{Day: -4, Month: 1, Year: 2020}, loshu.ErrInvalidDate},
		{"Day32", loshu.Date{Day: 32, Month: 1, Year: 2020}, loshu.ErrInvalidDate},
		{"ShortYear", loshu.Date{Day: 1, Month: 1, Year: 999}, loshu.ErrInvalidYear},
		{"LongYear", loshu.Date{Day: 1, Month: 1, Year: 10000}, loshu.ErrInvalidYear},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loshu.Digits(tc.date)
			require.ErrorIs(t, err, tc.err)
			_, err = loshu.Analyze(tc.date)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestDigits_CountArithmetic walks every date of two centuries and checks
// the multiset size independently of grid placement: day and month add their
// natural digit count, the year adds four, and placed + zeros covers them all.
func TestDigits_CountArithmetic(t *testing.T) {
	start := time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC)
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		d := loshu.Date{Day: day.Day(), Month: int(day.Month()), Year: day.Year()}
		digits, err := loshu.Digits(d)
		if err != nil {
			t.Fatalf("Digits(%s): %v", d, err)
		}
		want := len(strconv.Itoa(d.Day)) + len(strconv.Itoa(d.Month)) + 4
		if len(digits) != want {
			t.Fatalf("Digits(%s) = %v; want %d digits", d, digits, want)
		}
		g, err := loshu.NewGrid(digits)
		if err != nil {
			t.Fatalf("NewGrid(%v): %v", digits, err)
		}
		if g.Placed()+g.ZeroCount() != want {
			t.Fatalf("%s: placed %d + zeros %d != %d", d, g.Placed(), g.ZeroCount(), want)
		}
		if d.Day >= 10 && d.Month >= 10 && g.Placed()+g.ZeroCount() != 8 {
			t.Fatalf("%s: two-digit day and month must give 8 digits", d)
		}
	}
}

//----------------------------------------------------------------------------//
// Analyze
//----------------------------------------------------------------------------//

func TestAnalyze_23Nov1990(t *testing.T) {
	a, err := loshu.Analyze(loshu.Date{Day: 23, Month: 11, Year: 1990})
	require.NoError(t, err)

	require.Equal(t, 3, a.Grid.Count(1))
	require.Equal(t, 2, a.Grid.Count(9))
	require.Equal(t, 1, a.Grid.ZeroCount())
	for _, d := range []int{4, 5, 6, 7, 8} {
		require.Zero(t, a.Grid.Count(d), "digit %d", d)
	}

	require.Equal(t, []int{1, 2, 3, 9}, a.Present)
	require.Equal(t, []int{4, 5, 6, 7, 8}, a.Missing)
	require.Equal(t, []loshu.Repetition{{Digit: 1, Count: 3}, {Digit: 9, Count: 2}}, a.Repeating)

	require.Equal(t, []loshu.ArrowFinding{{Arrow: loshu.ArrowProsperity, State: loshu.Missing}}, a.Arrows)
	require.NotEmpty(t, a.MissingArrows())
	require.Empty(t, a.PresentArrows())

	require.Equal(t, []loshu.PlaneStrength{
		{Plane: loshu.PlaneMental, Present: 2, Strength: 67},
		{Plane: loshu.PlaneEmotional, Present: 1, Strength: 33},
		{Plane: loshu.PlanePractical, Present: 1, Strength: 33},
	}, a.Planes)

	require.Equal(t, []int{26, 8}, a.LifePath.Trace)
	require.Equal(t, 5, a.Driver)
	require.Equal(t, "- 99 2\n3 - -\n- 111 -", a.Grid.String())
}

func TestAnalyze_PresentArrows(t *testing.T) {
	a, err := loshu.Analyze(loshu.Date{Day: 15, Month: 7, Year: 1963})
	require.NoError(t, err)
	require.Equal(t, []loshu.Arrow{loshu.ArrowEmotion, loshu.ArrowWillpower}, a.PresentArrows())
	require.Empty(t, a.MissingArrows())
	require.Equal(t, []loshu.Repetition{{Digit: 1, Count: 2}}, a.Repeating)
}

func TestAnalyze_MasterLifePath(t *testing.T) {
	// 19/9/1999: 1+9+9+1+9+9+9 = 47 → 11.
	a, err := loshu.Analyze(loshu.Date{Day: 19, Month: 9, Year: 1999})
	require.NoError(t, err)
	require.True(t, a.LifePath.IsMaster)
	require.Equal(t, 11, a.LifePath.Value)
	require.Equal(t, 1, a.Driver)
}

// TestArrowState_Exclusive checks on every date of a century that each
// arrow is reported at most once, and the reported state agrees with the
// counts.
func TestArrowState_Exclusive(t *testing.T) {
	start := time.Date(1950, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2050, time.January, 1, 0, 0, 0, 0, time.UTC)
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		d := loshu.Date{Day: day.Day(), Month: int(day.Month()), Year: day.Year()}
		a, err := loshu.Analyze(d)
		if err != nil {
			t.Fatalf("Analyze(%s): %v", d, err)
		}
		seen := map[loshu.Arrow]bool{}
		for _, f := range a.Arrows {
			if seen[f.Arrow] {
				t.Fatalf("%s: arrow %s reported twice", d, f.Arrow)
			}
			seen[f.Arrow] = true
			for _, dg := range f.Arrow.Digits() {
				c := a.Grid.Count(dg)
				if f.State == loshu.Present && c == 0 || f.State == loshu.Missing && c != 0 {
					t.Fatalf("%s: arrow %s state %s contradicts count(%d)=%d", d, f.Arrow, f.State, dg, c)
				}
			}
		}
	}
}

func TestNewGrid_InvalidDigit(t *testing.T) {
	_, err := loshu.NewGrid([]int{1, 2, 10})
	require.ErrorIs(t, err, loshu.ErrInvalidDigit)
	_, err = loshu.AnalyzeDigits([]int{-1})
	require.ErrorIs(t, err, loshu.ErrInvalidDigit)
}

func TestAnalyzeDigits_DoesNotAlias(t *testing.T) {
	in := []int{1, 2, 3}
	a, err := loshu.AnalyzeDigits(in)
	require.NoError(t, err)
	in[0] = 9
	require.Equal(t, []int{1, 2, 3}, a.Digits)
}

func TestCells(t *testing.T) {
	g, err := loshu.NewGrid([]int{5, 5, 4})
	require.NoError(t, err)
	cells := g.Cells()
	require.Equal(t, loshu.Cell{Digit: 5, Row: 1, Col: 1, Count: 2, Display: "55"}, cells[1][1])
	require.Equal(t, loshu.Cell{Digit: 4, Row: 0, Col: 0, Count: 1, Display: "4"}, cells[0][0])
	require.Equal(t, loshu.Cell{Digit: 6, Row: 2, Col: 2}, cells[2][2])
}
