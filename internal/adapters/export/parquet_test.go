package export

import (
	"bytes"
	"flight-sun-service/internal/domain"
	"io"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/require"
)

func sampleResult() *domain.ExposureResult {
	start := time.Date(2025, 6, 21, 12, 0, 0, 0, time.UTC)
	return &domain.ExposureResult{
		Profile: domain.FlightProfile{
			Departure:      domain.Airport{Code: "LHR"},
			Arrival:        domain.Airport{Code: "MAD"},
			DepartureTime:  start,
			HeadingDegrees: 192.3,
		},
		Samples: []domain.SunSample{
			{Azimuth: 180, Elevation: 62, Time: start, Position: domain.GeoPoint{Latitude: 51.47, Longitude: -0.4543}},
			{Azimuth: 10, Elevation: 40, Time: start.Add(15 * time.Minute), Progress: 0.5},
			{Azimuth: 300, Elevation: -5, Time: start.Add(30 * time.Minute), Progress: 1},
		},
		SolarModel: "simplified",
	}
}

func TestRowsClassifiesSides(t *testing.T) {
	rows := Rows(sampleResult())
	require.Len(t, rows, 3)

	// 180 - 192.3 wraps to 347.7: right wing.
	require.InDelta(t, 347.7, rows[0].RelativeAzimuth, 1e-9)
	require.Equal(t, "right", rows[0].Side)
	require.Equal(t, "left", rows[1].Side)
	require.Equal(t, "", rows[2].Side)
	require.Equal(t, "LHR", rows[2].Departure)
	require.Equal(t, time.Date(2025, 6, 21, 12, 0, 0, 0, time.UTC).UnixMilli(), rows[0].Timestamp)
}

func TestWriteSamplesProducesReadableParquet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSamples(&buf, sampleResult()))

	data := buf.Bytes()
	pf, err := parquet.OpenFile(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Equal(t, int64(3), pf.NumRows())

	reader := parquet.NewGenericReader[SampleRow](pf)
	defer reader.Close()

	rows := make([]SampleRow, 3)
	n, err := reader.Read(rows)
	if err != nil {
		require.ErrorIs(t, err, io.EOF)
	}
	require.Equal(t, 3, n)
	require.Equal(t, "MAD", rows[1].Arrival)
	require.Equal(t, "left", rows[1].Side)
	require.InDelta(t, 62.0, rows[0].Elevation, 1e-9)
}

func TestWriteSamplesRejectsNil(t *testing.T) {
	require.Error(t, WriteSamples(io.Discard, nil))
}
