package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("10:00")
	require.NoError(t, err)
	assert.Equal(t, "10:00", ts.String())

	for _, bad := range []string{"", "25:00", "10:60", "1000", "10:00:00", "abc"} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidFormat, "value %q", bad)
	}
}

func TestTimeString_Comparison(t *testing.T) {
	a := TimeString("09:00")
	b := TimeString("10:30")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
	assert.False(t, a.IsAfter(a))

	// Некорректные значения несравнимы
	assert.False(t, TimeString("bad").IsBefore(b))
	assert.False(t, b.IsAfter(TimeString("bad")))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("10:00")

	next, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "10:30", next.String())

	// По модулю суток
	wrapped, err := TimeString("23:30").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, "00:30", wrapped.String())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan(time.Date(2026, 1, 26, 10, 30, 45, 0, time.UTC)))
	assert.Equal(t, "10:30", ts.String())

	require.NoError(t, ts.Scan("14:00:00"))
	assert.Equal(t, "14:00", ts.String())

	require.NoError(t, ts.Scan([]byte("09:15")))
	assert.Equal(t, "09:15", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("bad").Value()
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
