package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/monieshop/salesight/internal/model"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	date, err := model.ParseDate("2024-01-02")
	require.NoError(t, err)
	require.Equal(t, model.Date{Year: 2024, Month: time.January, Day: 2}, date)
	require.Equal(t, "2024-01-02", date.String())
}

func TestParseDate_Invalid(t *testing.T) {
	t.Parallel()

	cases := []string{"", "2024-13-01", "2024-01-32", "01/02/2024", "2024-1-2x"}

	for _, input := range cases {
		_, err := model.ParseDate(input)
		require.ErrorIs(t, err, model.ErrInvalidDate, "input %q", input)
	}
}

func TestDate_Before(t *testing.T) {
	t.Parallel()

	a := model.Date{Year: 2024, Month: time.January, Day: 1}
	b := model.Date{Year: 2024, Month: time.January, Day: 2}
	c := model.Date{Year: 2024, Month: time.February, Day: 1}
	d := model.Date{Year: 2025, Month: time.January, Day: 1}

	require.True(t, a.Before(b))
	require.True(t, b.Before(c))
	require.True(t, c.Before(d))
	require.False(t, b.Before(a))
	require.False(t, a.Before(a))
}

func TestMonth_BeforeAndString(t *testing.T) {
	t.Parallel()

	jan := model.Month{Year: 2024, Month: time.January}
	feb := model.Month{Year: 2024, Month: time.February}
	nextJan := model.Month{Year: 2025, Month: time.January}

	require.True(t, jan.Before(feb))
	require.True(t, feb.Before(nextJan))
	require.False(t, jan.Before(jan))
	require.Equal(t, "January 2024", jan.String())
}

func TestDate_MonthOf(t *testing.T) {
	t.Parallel()

	date := model.Date{Year: 2024, Month: time.March, Day: 15}
	require.Equal(t, model.Month{Year: 2024, Month: time.March}, date.MonthOf())
}

func TestMarshalText(t *testing.T) {
	t.Parallel()

	date := model.Date{Year: 2024, Month: time.March, Day: 5}

	text, err := date.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "2024-03-05", string(text))

	month, err := date.MonthOf().MarshalText()
	require.NoError(t, err)
	require.Equal(t, "2024-03", string(month))
}
