package dto

import (
	"flight-sun-service/internal/platform/apperrors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Time
	}{
		{raw: "2025-06-21T12:00:00Z", want: time.Date(2025, 6, 21, 12, 0, 0, 0, time.UTC)},
		{raw: "2025-06-21T12:00:00", want: time.Date(2025, 6, 21, 12, 0, 0, 0, time.UTC)},
		{raw: "2025-06-21T12:00", want: time.Date(2025, 6, 21, 12, 0, 0, 0, time.UTC)},
		{raw: " 2025-06-21 12:00:00 ", want: time.Date(2025, 6, 21, 12, 0, 0, 0, time.UTC)},
		{raw: "2025-06-21T14:00:00+02:00", want: time.Date(2025, 6, 21, 12, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		got, err := ParseTime(tc.raw)
		require.NoError(t, err, tc.raw)
		require.True(t, tc.want.Equal(got), "%s parsed as %s", tc.raw, got)
	}
}

func TestParseTimeKeepsOffsetClock(t *testing.T) {
	got, err := ParseTime("2025-06-21T14:00:00+02:00")
	require.NoError(t, err)
	require.Equal(t, 14, got.Hour())
}

func TestParseTimeRejectsGarbage(t *testing.T) {
	_, err := ParseTime("21/06/2025")
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}
