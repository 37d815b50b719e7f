// Package dostime converts packed MS-DOS date/time values, the timestamp
// representation used by ARJ (and ZIP) headers.
package dostime

import "time"

// dosEpoch is the smallest encodable value: 1980-01-01 00:00:00.
const dosEpoch = 0x00210000

// Time unpacks a DOS date/time value into a local time.Time. The zero
// value is not a valid DOS timestamp and maps to the zero time.
func Time(dos uint32) time.Time {
	if dos == 0 {
		return time.Time{}
	}
	return time.Date(
		int(dos>>25&0x7f)+1980,
		time.Month(dos>>21&0x0f),
		int(dos>>16&0x1f),
		int(dos>>11&0x1f),
		int(dos>>5&0x3f),
		int(dos&0x1f)*2,
		0,
		time.Local,
	)
}

// FromTime packs t into DOS format. Seconds are stored at two-second
// resolution; times before 1980 clamp to the DOS epoch.
func FromTime(t time.Time) uint32 {
	if t.Year() < 1980 {
		return dosEpoch
	}
	return uint32(t.Year()-1980)<<25 |
		uint32(t.Month())<<21 |
		uint32(t.Day())<<16 |
		uint32(t.Hour())<<11 |
		uint32(t.Minute())<<5 |
		uint32(t.Second()/2)
}
