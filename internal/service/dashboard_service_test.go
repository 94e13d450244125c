package service

import (
	"testing"
	"time"

	"halodkm-be-svc/internal/models"
)

func TestDashboardGetStats(t *testing.T) {
	kasRepo := newFakeKasRepo()
	familyRepo := &fakeFamilyRepo{members: []models.FamilyMember{
		{ID: 1, Nama: "Budi"}, {ID: 2, Nama: "Siti"}, {ID: 3, Nama: "Andi"},
	}}
	svc := NewDashboardService(kasRepo, familyRepo, testLogger())

	now := time.Now()
	lastMonth := now.AddDate(0, -1, 0)
	seed := []models.KasTransaction{
		{Type: models.TransactionMasuk, Amount: 300000, Tanggal: lastMonth},
		{Type: models.TransactionMasuk, Amount: 100000, Tanggal: now},
		{Type: models.TransactionKeluar, Amount: 40000, Tanggal: now},
	}
	for i := range seed {
		if err := kasRepo.Create(&seed[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	stats, err := svc.GetStats()
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}

	if stats.Stats.TotalJamaah != 3 {
		t.Errorf("TotalJamaah = %d, want 3", stats.Stats.TotalJamaah)
	}
	if stats.Stats.SaldoKas != 360000 {
		t.Errorf("SaldoKas = %v, want 360000", stats.Stats.SaldoKas)
	}
	if stats.Stats.TotalPemasukan != 100000 {
		t.Errorf("TotalPemasukan = %v, want this month's 100000", stats.Stats.TotalPemasukan)
	}
	if stats.Stats.TotalPengeluaran != 40000 {
		t.Errorf("TotalPengeluaran = %v, want 40000", stats.Stats.TotalPengeluaran)
	}
}
