package ish

import (
	"encoding/json"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, line string) *Report {
	t.Helper()
	r, err := Decode(line)
	require.NoError(t, err)
	return r
}

func observedAt(t *testing.T, r *Report) time.Time {
	t.Helper()
	ts, err := r.ObservedAt()
	require.NoError(t, err)
	return ts
}

func fahrenheit(t *testing.T, m Measurement) float64 {
	t.Helper()
	f, err := m.In(Fahrenheit)
	require.NoError(t, err)
	return f
}

func TestDecodeMandatory(t *testing.T) {
	t.Run("METAR routine report", func(t *testing.T) {
		r := decode(t, fm15Record)

		assert.Equal(t, time.Date(2014, 1, 1, 0, 51, 0, 0, time.UTC), observedAt(t, r))
		assert.Equal(t, "725300", r.USAF)
		assert.Equal(t, "94846", r.WBAN)
		assert.Equal(t, "725300-94846", r.Station())
		assert.Equal(t, "FM-15", r.ReportType)
		assert.Equal(t, "KORD", r.CallSign)
		assert.Equal(t, 205.0, r.Elevation.Value())
		assert.Equal(t, 1.5, r.WindSpeed.Value())
		mph, err := r.WindSpeed.In(MilesPerHour)
		require.NoError(t, err)
		assert.Equal(t, 3.3554, mph)
		assert.Equal(t, 250.0, r.WindDirection.Value())
		assert.Equal(t, 579.0, r.SkyCeiling.Value())
		assert.Equal(t, -11.1, r.AirTemperature.Value())
		assert.Equal(t, 12.0, fahrenheit(t, r.AirTemperature))
		assert.Equal(t, 1027.3, r.SeaLevelPressure.Value())
		assert.Equal(t, "5", r.SeaLevelPressure.Quality())
	})

	t.Run("special report", func(t *testing.T) {
		r := decode(t, singleReadingRecord)

		assert.Equal(t, time.Date(2014, 1, 1, 1, 8, 0, 0, time.UTC), observedAt(t, r))
		assert.Equal(t, "FM-16", r.ReportType)
		assert.Equal(t, 41.995, r.Latitude.Value())
		assert.Equal(t, -87.934, r.Longitude.Value())
		assert.Equal(t, 2012.0, r.Visibility.Value())
		assert.Equal(t, -11.1, r.AirTemperature.Value())
		assert.Equal(t, -14.4, r.DewPoint.Value())
		assert.True(t, r.SeaLevelPressure.Missing())
	})

	t.Run("unit conversions", func(t *testing.T) {
		r := decode(t, nycRecord)

		assert.Equal(t, 61.0, fahrenheit(t, r.AirTemperature))
		assert.Equal(t, 51.1, fahrenheit(t, r.DewPoint))
		inches, err := r.SeaLevelPressure.In(InchesOfMercury)
		require.NoError(t, err)
		assert.Equal(t, 29.96, inches)
		assert.Equal(t, "MISSING", r.WindDirection.String())
	})

	t.Run("boston", func(t *testing.T) {
		r := decode(t, bostonRecord)

		assert.Equal(t, 46.0, fahrenheit(t, r.AirTemperature))
		assert.Equal(t, 6.7, r.WindSpeed.Value())
		assert.Equal(t, 230.0, r.WindDirection.Value())
		assert.Equal(t, "METAR Aviation routine weather report", r.ReportTypeDescription())
	})

	t.Run("hour 24 rolls over to the next day", func(t *testing.T) {
		r := decode(t, midnightRecord)

		assert.Equal(t, time.Date(1943, 7, 2, 0, 0, 0, 0, time.UTC), observedAt(t, r))
		assert.Equal(t, "22000", r.SkyCeiling.String())
		assert.Equal(t, "MISSING", r.SeaLevelPressure.String())
		assert.True(t, r.SeaLevelPressure.Equals(9999.9))
		assert.True(t, math.IsNaN(r.AirTemperature.Value()))
		assert.Equal(t, 50.0, r.WindDirection.Value())
		assert.Equal(t, 4.6, r.WindSpeed.Value())
		assert.Equal(t, 4000.0, r.Visibility.Value())
	})

	t.Run("mandatory sentinels read missing and equal their magnitude", func(t *testing.T) {
		r := decode(t, weirdOldRecord)

		assert.Equal(t, "MISSING", r.AirTemperature.String())
		assert.Equal(t, "MISSING", r.WindDirection.String())
		assert.Equal(t, "MISSING", r.SkyCeiling.String())
		assert.Equal(t, "MISSING", r.SeaLevelPressure.String())
		assert.True(t, r.AirTemperature.Equals(999.9))
		assert.True(t, r.WindDirection.Equals(999))
		assert.False(t, r.AirTemperature.Equals(0))
		assert.Equal(t, "9", r.AirTemperature.Quality())
		assert.Equal(t, 6.7, r.WindSpeed.Value())

		f, err := r.AirTemperature.In(Fahrenheit)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(f))
	})

	t.Run("fields without quality flags use the legacy rules", func(t *testing.T) {
		line := withColumn(weirdOldRecord, windDirectionQCol.start, " ")
		line = withColumn(line, airTemperatureQCol.start, " ")
		r := decode(t, line)

		assert.Equal(t, "MISSING", r.WindDirection.String())
		assert.True(t, math.IsNaN(r.WindDirection.Value()))
		assert.True(t, r.WindDirection.Equals(999))
		assert.True(t, r.AirTemperature.Equals(999.9))
		assert.Empty(t, r.WindDirection.Quality())
	})

	t.Run("old record with missing fields", func(t *testing.T) {
		r := decode(t, oldOrdRecord)

		assert.Equal(t, time.Date(1946, 10, 1, 9, 0, 0, 0, time.UTC), observedAt(t, r))
		assert.Equal(t, "SAO", r.ReportType)
		assert.Equal(t, "ORD", r.CallSign)
		assert.Equal(t, "MISSING", r.AirTemperature.String())
		assert.Equal(t, "MISSING", r.WindSpeed.String())
		assert.Equal(t, 22000.0, r.SkyCeiling.Value())
		assert.Equal(t, 1003.4, r.StationPressure().Value())
	})

	t.Run("missing elevation", func(t *testing.T) {
		r := decode(t, qualitySectionRecord)

		assert.Equal(t, time.Date(1970, 5, 2, 0, 0, 0, 0, time.UTC), observedAt(t, r))
		assert.True(t, r.Elevation.Missing())
	})
}

func TestDecodeFailures(t *testing.T) {
	_, err := Decode(badLengthRecord)
	require.ErrorIs(t, err, ErrLengthMismatch)

	_, err = Decode("0000725300")
	require.ErrorIs(t, err, ErrTruncated)
}

func TestDecodeAdditionalData(t *testing.T) {
	t.Run("two sky cover layers in order", func(t *testing.T) {
		r := decode(t, twoLayerRecord)

		layers := r.SkyCover()
		require.Len(t, layers, 2)
		assert.Equal(t, 7.0, layers[0].Coverage.Value())
		assert.Equal(t, 2286.0, layers[0].BaseHeight.Value())
		assert.Equal(t, 8.0, layers[1].Coverage.Value())
		assert.Equal(t, 2743.0, layers[1].BaseHeight.Value())
		require.Len(t, r.SkyCondition(), 1)
		assert.True(t, r.SkyCondition()[0].TotalCoverage.Missing())

		entries, err := r.AdditionalField("GA")
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "GA1", entries[0].ID())
		assert.Equal(t, "GA2", entries[1].ID())
	})

	t.Run("liquid precipitation", func(t *testing.T) {
		r := decode(t, singleReadingRecord)

		precip := r.LiquidPrecipitation()
		require.Len(t, precip, 1)
		assert.Equal(t, 1, precip[0].Hours)
		assert.Equal(t, 0.2, precip[0].Depth.Value())
	})

	t.Run("summary of day precipitation", func(t *testing.T) {
		r := decode(t, summaryOfDayRecord)

		assert.Equal(t, time.Date(2008, 2, 2, 5, 59, 0, 0, time.UTC), observedAt(t, r))
		assert.Equal(t, "SOD", r.ReportType)
		precip := r.LiquidPrecipitation()
		require.Len(t, precip, 1)
		assert.Equal(t, 24, precip[0].Hours)
		assert.Equal(t, 3.6, precip[0].Depth.Value())

		entries, err := r.AdditionalField("AN1")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, Opaque{Body: "024008999"}, entries[0].Value)
	})

	t.Run("snowfall", func(t *testing.T) {
		r := decode(t, snowfallRecord)

		assert.Equal(t, 10.0, r.WindDirection.Value())
		assert.Equal(t, time.Date(2014, 1, 1, 5, 51, 0, 0, time.UTC), observedAt(t, r))
		assert.Len(t, r.LiquidPrecipitation(), 2)

		snow := r.SnowDepth()
		require.Len(t, snow, 1)
		assert.Equal(t, 8.0, snow[0].Depth.Value())
		assert.Equal(t, Centimeters, snow[0].Depth.Unit())
		assert.Equal(t, "5", snow[0].Depth.Quality())
		assert.Equal(t, "9", snow[0].Condition)
		assert.Equal(t, 7.6, snow[0].WaterEquivalent.Value())

		extremes := r.ExtremeTemperature()
		require.Len(t, extremes, 4)
		assert.Equal(t, ExtremeTemperature{Hours: 240, Code: "N", Temperature: NewMeasurement("-0167", Celsius, 10, "1")}, extremes[3])
		assert.Equal(t, []string{"Maximum", "Minimum", "Maximum", "Minimum"}, r.ExtremeTemperatureKinds())
	})

	t.Run("solar irradiance", func(t *testing.T) {
		r := decode(t, solarRecord)

		solar := r.SolarIrradiance()
		require.Len(t, solar, 1)
		assert.Equal(t, 60, solar[0].TimePeriod)
		assert.Equal(t, 1014.0, solar[0].Global.Value())
		assert.Equal(t, "06", solar[0].GlobalFlag)
	})

	t.Run("present weather", func(t *testing.T) {
		r := decode(t, lightSnowRecord)

		assert.Equal(t, []string{"Light Snow"}, r.PresentWeather())
		precip := r.LiquidPrecipitation()
		require.Len(t, precip, 1)
		assert.Equal(t, 0.5, precip[0].Depth.Value())

		conditions := r.WeatherCondition()
		require.Len(t, conditions, 1)
		assert.Equal(t, "71", conditions[0].Code)
	})

	t.Run("wind gust and supplementary wind", func(t *testing.T) {
		r := decode(t, kordSpeciRecord)

		gusts := r.WindGust()
		require.Len(t, gusts, 1)
		assert.Equal(t, 11.3, gusts[0].Speed.Value())

		wind := r.SupplementaryWind()
		require.Len(t, wind, 1)
		assert.Equal(t, "4", wind[0].Type)
		assert.Equal(t, 14.9, wind[0].Speed.Value())
		assert.Equal(t, 220.0, wind[0].Direction.Value())
	})

	t.Run("average temperature in hundredths", func(t *testing.T) {
		r := decode(t, summaryOfMonthRecord)

		avg := r.AverageTemperature()
		require.Len(t, avg, 3)
		assert.Equal(t, -6.67, avg[0].Temperature.Value())
		assert.Equal(t, 672, avg[0].Hours)
	})

	t.Run("lookup miss", func(t *testing.T) {
		r := decode(t, austinRecord)

		_, err := r.AdditionalField("AJ1")
		require.ErrorIs(t, err, ErrFieldNotPresent)
		assert.Empty(t, r.SnowDepth())
		assert.NotNil(t, r.SnowDepth())
	})
}

func TestDecodeRobustness(t *testing.T) {
	t.Run("unknown code is skipped", func(t *testing.T) {
		r := decode(t, withVariable(fm15Record, "ADDAA101000895ZZ1junkGA1085+005795991"))

		assert.Equal(t, []string{"ZZ1"}, r.Skipped)
		assert.Len(t, r.LiquidPrecipitation(), 1)
		assert.Len(t, r.SkyCover(), 1)
	})

	t.Run("unknown code before remarks", func(t *testing.T) {
		r := decode(t, withVariable(fm15Record, "ADDXX9REMMET005hello"))

		assert.Equal(t, []string{"XX9"}, r.Skipped)
		require.Len(t, r.Remarks, 1)
		assert.Equal(t, Remark{Kind: "MET", Text: "hello"}, r.Remarks[0])
	})

	t.Run("truncated final entry is present but empty", func(t *testing.T) {
		r := decode(t, withVariable(fm15Record, "ADDAA101000895GA1085+00"))

		entries, err := r.AdditionalField("GA")
		require.NoError(t, err)
		assert.Empty(t, entries)

		entries, err = r.AdditionalField("GA1")
		require.NoError(t, err)
		assert.Empty(t, entries)

		_, err = r.AdditionalField("KA")
		require.ErrorIs(t, err, ErrFieldNotPresent)
		assert.Equal(t, []string{"AA", "GA"}, r.Codes())
	})

	t.Run("short body does not swallow remarks", func(t *testing.T) {
		r := decode(t, withVariable(fm15Record, "ADDAA101000895GA1085REMMET005hello"))

		assert.Empty(t, r.SkyCover())
		entries, err := r.AdditionalField("GA1")
		require.NoError(t, err)
		assert.Empty(t, entries)
		assert.Len(t, r.LiquidPrecipitation(), 1)

		require.Len(t, r.Remarks, 1)
		assert.Equal(t, Remark{Kind: "MET", Text: "hello"}, r.Remarks[0])
		assert.Empty(t, r.Unparsed)
		assert.Empty(t, r.Skipped)
	})

	t.Run("quality section inside a body window", func(t *testing.T) {
		r := decode(t, withVariable(fm15Record, "ADDMA1EQDQ01+000002SCOTCV"))

		assert.Equal(t, []string{"MA"}, r.Codes())
		require.Len(t, r.QualityElements, 1)
		assert.Equal(t, "Q01", r.QualityElements[0].ID)
		assert.Empty(t, r.Unparsed)
	})

	t.Run("report-shaped remark text is not decoded", func(t *testing.T) {
		inner := fm15Record
		line := withVariable(snowfallRecord, fmt.Sprintf("ADDAA101000895REMMET%03d%s", len(inner), inner))
		r := decode(t, line)

		require.Len(t, r.Remarks, 1)
		assert.Equal(t, inner, r.Remarks[0].Text)
		assert.Len(t, r.LiquidPrecipitation(), 1)
		assert.Empty(t, r.SkyCover())
		assert.Equal(t, -12.2, r.AirTemperature.Value())
		assert.Equal(t, time.Date(2014, 1, 1, 5, 51, 0, 0, time.UTC), observedAt(t, r))
	})

	t.Run("nested remark kinds", func(t *testing.T) {
		r := decode(t, nestedRemarksRecord)

		assert.Equal(t, 140.0, r.WindDirection.Value())
		assert.Equal(t, time.Date(1973, 1, 31, 22, 0, 0, 0, time.UTC), observedAt(t, r))
		assert.Equal(t, []Remark{
			{Kind: "AWY", Text: "VA?ORD C1/78"},
			{Kind: "MET", Text: "?1/30"},
		}, r.Remarks)
		require.Len(t, r.QualityElements, 1)
		assert.Equal(t, "N01", r.QualityElements[0].ID)
		assert.Contains(t, r.OriginalObservation, "E11 1 00699")
		require.NotNil(t, r.Metar)
		assert.True(t, r.Metar.SeaLevelPressure.Missing())
	})

	t.Run("long summary remark", func(t *testing.T) {
		r := decode(t, summaryOfMonthRecord)

		assert.Equal(t, time.Date(2006, 3, 1, 5, 59, 0, 0, time.UTC), observedAt(t, r))
		require.Len(t, r.Remarks, 1)
		assert.Equal(t, "SOM", r.Remarks[0].Kind)
		assert.Len(t, r.Remarks[0].Text, 882)
		assert.Len(t, r.QualityElements, 18)
		assert.Empty(t, r.Unparsed)
	})

	t.Run("every sample record decodes", func(t *testing.T) {
		for _, line := range []string{
			solarRecord, kordSpeciRecord, twoLayerRecord, nycRecord, singleReadingRecord,
			thunderstormRecord, crnRecord, squallRecord, crnSecondRecord, lightSnowRecord,
			qualitySectionRecord, fm15Record, synopRecord, austinRecord, bostonRecord,
			snowfallRecord, summaryOfDayRecord, saoRecord, summaryOfMonthRecord,
			nestedRemarksRecord, weirdOldRecord, oldOrdRecord, midnightRecord,
		} {
			r, err := Decode(line)
			require.NoError(t, err, line[:30])
			assert.Empty(t, r.Skipped, line[:30])
			assert.Empty(t, r.Unparsed, line[:30])
		}
	})
}

func TestRelativeHumidity(t *testing.T) {
	assert.Equal(t, 77.0, decode(t, singleReadingRecord).RelativeHumidity().Value())
	assert.Equal(t, 70.0, decode(t, nycRecord).RelativeHumidity().Value())
	assert.True(t, decode(t, summaryOfDayRecord).RelativeHumidity().Missing())
}

func TestMetarRemarks(t *testing.T) {
	r := decode(t, snowfallRecord)
	require.NotNil(t, r.Metar)

	assert.Equal(t, 0.05, r.Metar.HourlyPrecipitation.Value())
	assert.Equal(t, 0.22, r.Metar.PeriodPrecipitation.Value())
	assert.Equal(t, 1026.5, r.Metar.SeaLevelPressure.Value())
	assert.Equal(t, -12.2, r.Metar.Temperature.Value())
	assert.Equal(t, -15.6, r.Metar.DewPoint.Value())
	assert.Equal(t, -11.1, r.Metar.SixHourMaxTemperature.Value())
	assert.Equal(t, -12.2, r.Metar.SixHourMinTemperature.Value())
	assert.Equal(t, -11.1, r.Metar.DailyMaxTemperature.Value())
	assert.Equal(t, -16.7, r.Metar.DailyMinTemperature.Value())
	assert.True(t, r.Metar.DailyPrecipitation.Missing())

	require.Len(t, r.QualityElements, 1)
	assert.Equal(t, QualityElement{ID: "Q01", Original: "  0055", Reason: "8", Parameter: "PRCP06"}, r.QualityElements[0])

	assert.Nil(t, decode(t, synopRecord).Metar)
}

func TestDecodeIsDeterministic(t *testing.T) {
	a := decode(t, snowfallRecord)
	b := decode(t, snowfallRecord)
	if diff := cmp.Diff(a, b, cmp.AllowUnexported(Report{}, Measurement{})); diff != "" {
		t.Errorf("decode mismatch (-first +second):\n%s", diff)
	}
}

func TestDecoderConcurrentUse(t *testing.T) {
	d := NewDecoder(DefaultDescriptions())
	want, err := json.Marshal(decode(t, thunderstormRecord))
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][]byte, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := d.Decode(thunderstormRecord)
			if err != nil {
				return
			}
			results[i], _ = json.Marshal(r)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.JSONEq(t, string(want), string(got))
	}
}

func TestCustomDescriptions(t *testing.T) {
	desc := DefaultDescriptions()
	desc.ReportTypes = map[string]string{"FM-15": "routine"}
	r, err := NewDecoder(desc).Decode(fm15Record)
	require.NoError(t, err)

	assert.Equal(t, "routine", r.ReportTypeDescription())
	assert.Equal(t, "FM-15", decode(t, fm15Record).ReportType)
}

func TestExtremeTemperatureKinds(t *testing.T) {
	t.Run("no KA entries", func(t *testing.T) {
		assert.Empty(t, decode(t, fm15Record).ExtremeTemperatureKinds())
	})

	t.Run("code outside the table", func(t *testing.T) {
		desc := DefaultDescriptions()
		desc.ExtremeTemperatureCodes = map[string]string{"M": "High"}
		r, err := NewDecoder(desc).Decode(synopRecord)
		require.NoError(t, err)

		assert.Equal(t, []string{"High", "N"}, r.ExtremeTemperatureKinds())
	})
}
