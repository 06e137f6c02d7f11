package public

import (
	"testing"
	"time"
)

func TestParseChoice(t *testing.T) {
	cases := []struct {
		raw    string
		wantID uint
		wantOK bool
	}{
		{raw: "", wantID: 0, wantOK: true},
		{raw: " 12 ", wantID: 12, wantOK: true},
		{raw: "0", wantOK: false},
		{raw: "abc", wantOK: false},
		{raw: "-3", wantOK: false},
	}
	for _, tc := range cases {
		id, ok := parseChoice(tc.raw)
		if ok != tc.wantOK || id != tc.wantID {
			t.Fatalf("parseChoice(%q) = (%d, %v), want (%d, %v)", tc.raw, id, ok, tc.wantID, tc.wantOK)
		}
	}
}

func TestParsePubDateUsesSiteLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)

	got, ok := parsePubDate("2024-05-01T12:30", loc)
	if !ok {
		t.Fatalf("datetime-local input should parse")
	}
	want := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	if !got.Equal(want) || got.Location() != time.UTC {
		t.Fatalf("want %v got %v", want, got)
	}

	if _, ok := parsePubDate("2024-05-01", loc); !ok {
		t.Fatalf("date only input should parse")
	}
	if got, ok := parsePubDate("  ", loc); !ok || !got.IsZero() {
		t.Fatalf("blank input should be zero and accepted")
	}
	if _, ok := parsePubDate("01/05/2024", loc); ok {
		t.Fatalf("unknown layout should be rejected")
	}
}

func TestFormatPubDateRoundTrip(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	original := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	raw := formatPubDate(original, loc)
	if raw != "2024-05-01T12:30" {
		t.Fatalf("unexpected formatted value: %s", raw)
	}
	parsed, ok := parsePubDate(raw, loc)
	if !ok || !parsed.Equal(original) {
		t.Fatalf("round trip mismatch: %v", parsed)
	}
	if formatPubDate(time.Time{}, loc) != "" {
		t.Fatalf("zero time should format as empty")
	}
}

func TestIsChecked(t *testing.T) {
	for _, raw := range []string{"on", "TRUE", " 1 ", "yes"} {
		if !isChecked(raw) {
			t.Fatalf("%q should be checked", raw)
		}
	}
	for _, raw := range []string{"", "off", "0"} {
		if isChecked(raw) {
			t.Fatalf("%q should not be checked", raw)
		}
	}
}

func TestSafeNext(t *testing.T) {
	cases := map[string]string{
		"/posts/1/":          "/posts/1/",
		"":                   "",
		"https://evil.test/": "",
		"//evil.test/":       "",
		"/\\evil.test":       "",
		"posts/1/":           "",
	}
	for raw, want := range cases {
		if got := safeNext(raw); got != want {
			t.Fatalf("safeNext(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestLoginRedirectURL(t *testing.T) {
	if got := LoginRedirectURL(""); got != "/auth/login/" {
		t.Fatalf("unexpected url: %s", got)
	}
	if got := LoginRedirectURL("/posts/2/edit/"); got != "/auth/login/?next=%2Fposts%2F2%2Fedit%2F" {
		t.Fatalf("unexpected url: %s", got)
	}
}
