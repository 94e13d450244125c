package service

import (
	"testing"
	"time"
)

func TestParseTanggal(t *testing.T) {
	if _, err := parseTanggal("2026-08-15"); err != nil {
		t.Fatalf("date-only layout: %v", err)
	}
	if _, err := parseTanggal("2026-08-15T10:30:00Z"); err != nil {
		t.Fatalf("RFC3339 layout: %v", err)
	}
	if _, err := parseTanggal("15/08/2026"); err == nil {
		t.Fatal("expected error for unsupported layout")
	}
}

func TestFormatBulan(t *testing.T) {
	got := formatBulan(time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC))
	if got != "Agustus 2026" {
		t.Fatalf("formatBulan = %q, want Agustus 2026", got)
	}
}

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{70000, "Rp 70.000"},
		{1250000, "Rp 1.250.000"},
		{-30000, "-Rp 30.000"},
	}
	for _, tc := range cases {
		if got := formatRupiah(tc.in); got != tc.want {
			t.Errorf("formatRupiah(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
