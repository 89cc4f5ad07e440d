// Package ish decodes NOAA Integrated Surface Hourly (ISH) observation lines.
//
// # Record Layout
//
// Every line starts with a fixed 105-character control and mandatory data
// section:
//
//	[0:4]    length of the variable section that follows column 105
//	[4:10]   USAF station id        [10:15]  WBAN id
//	[15:23]  date YYYYMMDD          [23:27]  time HHMM (UTC)
//	[28:34]  latitude  (÷1000)      [34:41]  longitude (÷1000)
//	[41:46]  report type, e.g. "FM-15"
//	[60:70]  wind direction, type, speed (÷10 m/s) with quality flags
//	[70:78]  ceiling height, determination, CAVOK
//	[78:87]  visibility and variability
//	[87:105] air temperature, dew point (÷10 °C), sea-level pressure (÷10 hPa)
//
// The optional variable section begins with "ADD", followed by tokens of a
// two-letter code, a one-digit variant and a body whose width is fixed per
// code ("AA101000231", "GA1085+004575991"). Trailers follow:
//
//	REM  repeated type(3) + length(3) + text, e.g. "MET123..."
//	EQD  repeated 16-character element quality entries
//	QNN  the original observation, kept raw
//
// # Missing Values
//
// A numeric field whose digits are all nines for its width ("9999",
// "+99999") is not reported. Older records without quality flags are built
// through [NewLegacyMeasurement], which also treats sentinel magnitudes such
// as 999.9 as missing while still comparing equal to them.
//
// # Remarks
//
// Remark text is stored verbatim and never decoded as a record, even when
// it contains report-shaped text. METAR remarks are scanned once for the
// hourly precipitation, SLP and precise temperature groups.
package ish
