package dostime

import (
	"testing"
	"time"
)

func TestRoundTrip(t *testing.T) {
	want := time.Date(2003, 7, 14, 10, 30, 42, 0, time.Local)
	got := Time(FromTime(want))
	if !got.Equal(want) {
		t.Fatalf("round trip: got %v want %v", got, want)
	}
}

func TestTwoSecondResolution(t *testing.T) {
	odd := time.Date(1999, 12, 31, 23, 59, 59, 0, time.Local)
	got := Time(FromTime(odd))
	if got.Second() != 58 {
		t.Fatalf("odd seconds must truncate to even: got %v", got)
	}
	if !got.Equal(odd.Add(-time.Second)) {
		t.Fatalf("got %v", got)
	}
}

func TestClampBefore1980(t *testing.T) {
	old := time.Date(1970, 1, 1, 0, 0, 0, 0, time.Local)
	dos := FromTime(old)
	if dos != dosEpoch {
		t.Fatalf("pre-1980 must clamp to the DOS epoch, got %#x", dos)
	}
	got := Time(dos)
	want := time.Date(1980, 1, 1, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("epoch decodes to %v", got)
	}
}

func TestZeroValue(t *testing.T) {
	if !Time(0).IsZero() {
		t.Fatalf("dos zero must map to the zero time, got %v", Time(0))
	}
	if FromTime(time.Time{}) != dosEpoch {
		t.Fatal("zero time must clamp on encode")
	}
}
