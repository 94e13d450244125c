package service

import (
	"strings"
	"testing"
	"time"

	"halodkm-be-svc/internal/models"
)

func TestPublishMonthlyRecap(t *testing.T) {
	kasRepo := newFakeKasRepo()
	infoRepo := newFakeInfoRepo()
	svc := NewRecapService(kasRepo, infoRepo, testLogger())

	// July entries land in the recap, June and August do not.
	seed := []models.KasTransaction{
		{Type: models.TransactionMasuk, Amount: 200000, Description: "Infaq", Tanggal: time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)},
		{Type: models.TransactionKeluar, Amount: 50000, Description: "Listrik", Tanggal: time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC)},
		{Type: models.TransactionMasuk, Amount: 999999, Description: "Juni", Tanggal: time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)},
		{Type: models.TransactionMasuk, Amount: 111111, Description: "Agustus", Tanggal: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)},
	}
	for i := range seed {
		if err := kasRepo.Create(&seed[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	now := time.Date(2026, 8, 1, 5, 0, 0, 0, time.UTC)
	info, err := svc.PublishMonthlyRecap(now)
	if err != nil {
		t.Fatalf("PublishMonthlyRecap: %v", err)
	}

	if info.Title != "Rekap Kas Juli 2026" {
		t.Fatalf("title = %q, want Rekap Kas Juli 2026", info.Title)
	}
	if info.Category != models.InfoCategoryPengumuman {
		t.Fatalf("category = %q, want %q", info.Category, models.InfoCategoryPengumuman)
	}
	for _, want := range []string{
		"Pemasukan: Rp 200.000",
		"Pengeluaran: Rp 50.000",
		"Selisih bulan ini: Rp 150.000",
	} {
		if !strings.Contains(info.Content, want) {
			t.Errorf("recap missing %q\n%s", want, info.Content)
		}
	}

	stored, err := infoRepo.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("announcements = %d, want 1", len(stored))
	}
}
