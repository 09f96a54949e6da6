package models

import (
	"testing"
	"time"
)

func TestSessionExpired(t *testing.T) {
	now := time.Now().UTC()
	session := Session{ExpiresAt: now.Add(time.Minute)}
	if session.Expired(now) {
		t.Fatal("session should not be expired before its expiry")
	}
	if !session.Expired(now.Add(2 * time.Minute)) {
		t.Fatal("session should be expired after its expiry")
	}
	// checking again yields the same answer, nothing mutates
	if !session.Expired(now.Add(2 * time.Minute)) {
		t.Fatal("expiry check should be idempotent")
	}
}

func TestSessionRecordRoundTrip(t *testing.T) {
	created := time.Date(2025, 1, 27, 10, 30, 0, 123456789, time.UTC)
	session := Session{
		ID:           "s1",
		UserID:       "u1",
		SessionToken: "tok1",
		CreatedAt:    created,
		ExpiresAt:    created.Add(7 * 24 * time.Hour),
	}

	rec := session.Record()
	back, err := rec.Session()
	if err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if !back.CreatedAt.Equal(session.CreatedAt) || !back.ExpiresAt.Equal(session.ExpiresAt) {
		t.Fatalf("timestamps changed in round trip: %+v", back)
	}
	if back.UserID != "u1" || back.SessionToken != "tok1" {
		t.Fatalf("fields changed in round trip: %+v", back)
	}
}

// Stored timestamps are compared as strings by the expiry sweep, so their
// string order must match their time order even across fractional-second
// boundaries.
func TestFormatTimeOrdering(t *testing.T) {
	base := time.Date(2025, 1, 27, 10, 30, 5, 0, time.UTC)
	times := []time.Time{
		base,
		base.Add(50 * time.Millisecond),
		base.Add(100 * time.Millisecond),
		base.Add(500 * time.Millisecond),
		base.Add(time.Second),
	}
	for i := 1; i < len(times); i++ {
		a, b := FormatTime(times[i-1]), FormatTime(times[i])
		if !(a < b) {
			t.Fatalf("string order broken: %q !< %q", a, b)
		}
	}
}

func TestParseTimeAcceptsPythonISOFormat(t *testing.T) {
	// records written by earlier deployments carry microsecond precision
	parsed, err := ParseTime("2025-01-27T10:30:00.123456+00:00")
	if err != nil {
		t.Fatalf("ParseTime: %v", err)
	}
	if parsed.UTC().Hour() != 10 || parsed.Nanosecond() != 123456000 {
		t.Fatalf("parsed wrong instant: %v", parsed)
	}
}
