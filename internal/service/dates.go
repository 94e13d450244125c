package service

import (
	"fmt"
	"time"
)

var tanggalLayouts = []string{"2006-01-02", time.RFC3339}

// parseTanggal parses the date formats the clients send
func parseTanggal(value string) (time.Time, error) {
	for _, layout := range tanggalLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

// Indonesian month names, keyed by time.Month
var bulanNames = map[time.Month]string{
	time.January: "Januari", time.February: "Februari", time.March: "Maret",
	time.April: "April", time.May: "Mei", time.June: "Juni",
	time.July: "Juli", time.August: "Agustus", time.September: "September",
	time.October: "Oktober", time.November: "November", time.December: "Desember",
}

// formatBulan renders a month as "Januari 2026"
func formatBulan(t time.Time) string {
	return fmt.Sprintf("%s %d", bulanNames[t.Month()], t.Year())
}

// formatRupiah renders an amount as "Rp 70.000" with dot thousand separators
func formatRupiah(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	digits := fmt.Sprintf("%.0f", amount)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	if negative {
		return "-Rp " + string(out)
	}
	return "Rp " + string(out)
}
