// Package domain models typhoon season and track data and the statistics
// folded from it.
//
// # Data Source
//
// Seasons and tracks come from a typhoon data API that answers two queries:
// the storm list of a year and the point list of a storm. Both respond with
// loosely structured markup. Tag names are matched case-insensitively and
// an empty or missing field reads as "0".
//
// Storm list records ("typhoonlistmodel"):
//
//	tfid    storm id, e.g. 201909
//	name    local name, e.g. "利奇马"
//	enname  international name, e.g. "Lekima"
//
// Point records ("typhoonpointmodel"):
//
//	radius7    7-level wind circle radius in km, up to four directional
//	           readings separated by "|", e.g. "250|220|200|230"
//	power      strength level code
//	strong     strength label, e.g. "超强台风"
//	speed      maximum wind speed (m/s)
//	movespeed  move speed (km/h)
//	pressure   central pressure (hPa)
//	lat, lng   WGS-84 coordinates
//	time       observation time, kept verbatim
//
// Point records nested inside a "forecastmodel" block are forecasts, not
// observations, and are ignored.
//
// # Storm IDs
//
// Storm ids encode the season year in their leading four digits followed by
// a two-digit sequence number: 200101 is the first storm of 2001. The global
// cross-season averages rely on this to exclude storms before 2001; see
// [CountsTowardGlobal].
//
// # Running Averages
//
// Average tables are keyed by pressure bucket. Each insert replaces the
// bucket's value with (current + v) / 2, so later observations weigh more
// than earlier ones. This is not an arithmetic mean and is reproduced as is
// for compatibility with previously published reports. The same fold
// reduces multi-reading radius fields to one scalar; see [ReduceRadius].
package domain
