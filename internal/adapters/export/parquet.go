package export

import (
	"errors"
	"flight-sun-service/internal/domain"
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"
)

// SampleRow is one sun sample flattened to the Parquet schema.
type SampleRow struct {
	Departure       string  `parquet:"departure"`
	Arrival         string  `parquet:"arrival"`
	Timestamp       int64   `parquet:"timestamp"`
	Progress        float64 `parquet:"progress"`
	Latitude        float64 `parquet:"latitude"`
	Longitude       float64 `parquet:"longitude"`
	Azimuth         float64 `parquet:"azimuth"`
	Elevation       float64 `parquet:"elevation"`
	RelativeAzimuth float64 `parquet:"relative_azimuth"`
	Side            string  `parquet:"side"`
	SolarModel      string  `parquet:"solar_model"`
}

// Rows flattens the samples of result. Side is empty for samples with the
// sun below the horizon. Timestamp is in Unix milliseconds.
func Rows(result *domain.ExposureResult) []SampleRow {
	p := result.Profile
	rows := make([]SampleRow, 0, len(result.Samples))

	for _, s := range result.Samples {
		side, _ := s.SideFor(p.HeadingDegrees)

		rows = append(rows, SampleRow{
			Departure:       p.Departure.Code,
			Arrival:         p.Arrival.Code,
			Timestamp:       s.Time.UnixMilli(),
			Progress:        s.Progress,
			Latitude:        s.Position.Latitude,
			Longitude:       s.Position.Longitude,
			Azimuth:         s.Azimuth,
			Elevation:       s.Elevation,
			RelativeAzimuth: domain.RelativeBearing(s.Azimuth, p.HeadingDegrees),
			Side:            string(side),
			SolarModel:      result.SolarModel,
		})
	}

	return rows
}

// WriteSamples writes the samples of result to w as a Parquet file.
func WriteSamples(w io.Writer, result *domain.ExposureResult) error {
	if result == nil {
		return errors.New("write samples: result is nil")
	}

	writer := parquet.NewGenericWriter[SampleRow](w)

	if _, err := writer.Write(Rows(result)); err != nil {
		_ = writer.Close()
		return fmt.Errorf("write samples: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("write samples: close writer: %w", err)
	}

	return nil
}
