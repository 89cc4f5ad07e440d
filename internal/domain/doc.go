// Package domain models decoded NOAA Integrated Surface Hourly (ISH)
// observations as they move through the ETL pipeline.
//
// # Data Source
//
// ISH files are published by NCEI at https://www.ncei.noaa.gov/data/global-hourly/.
// The upstream collector splits each station-year file into lines and
// publishes one fixed-width record per Kafka message on the source topic.
// Record decoding lives in package ish; this package turns a decoded
// [ish.Report] into an [Observation] with derived fields.
//
// # Derived Fields
//
// Station:
//
//	"<USAF>-<WBAN>", e.g. "725300-94846" for Chicago O'Hare.
//
// Coordinates:
//
//	Copied from the mandatory section when both latitude and longitude are
//	present. Missing coordinates leave Geo nil and skip geocoding.
//
// Relative humidity:
//
//	Derived from air temperature and dew point with the Magnus formula and
//	omitted when either input is missing.
//
// Time bucket:
//
//	The observation time truncated to the hour in UTC, RFC 3339 formatted.
//
// # ID Generation
//
// Observation IDs are "<station>-<hash>", where hash is the first 8 bytes of
// SHA-256 over USAF|WBAN|date|time|report type. Replays produce the same ID,
// which lets the archive ignore duplicates (INSERT OR IGNORE). See [generateID].
package domain
