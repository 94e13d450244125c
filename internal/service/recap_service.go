package service

import (
	"fmt"
	"strings"
	"time"

	"halodkm-be-svc/internal/models"
	"halodkm-be-svc/internal/repository"
	"halodkm-be-svc/pkg/logger"
)

// RecapService publishes the monthly kas recap as a public announcement
type RecapService interface {
	PublishMonthlyRecap(now time.Time) (*models.InfoPublik, error)
}

// recapService implements RecapService
type recapService struct {
	kasRepo  repository.KasRepository
	infoRepo repository.InfoRepository
	logger   *logger.Logger
}

// NewRecapService creates a new instance of RecapService
func NewRecapService(kasRepo repository.KasRepository, infoRepo repository.InfoRepository, logger *logger.Logger) RecapService {
	return &recapService{
		kasRepo:  kasRepo,
		infoRepo: infoRepo,
		logger:   logger,
	}
}

// PublishMonthlyRecap summarizes the previous calendar month of kas flow and
// stores the recap as a Pengumuman announcement. The month is derived from
// now, so a run on the 1st recaps the month that just ended.
func (s *recapService) PublishMonthlyRecap(now time.Time) (*models.InfoPublik, error) {
	monthEnd := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthStart := monthEnd.AddDate(0, -1, 0)

	masuk, err := s.kasRepo.SumByTypeInRange(models.TransactionMasuk, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to total pemasukan: %w", err)
	}
	keluar, err := s.kasRepo.SumByTypeInRange(models.TransactionKeluar, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to total pengeluaran: %w", err)
	}

	totalMasuk, err := s.kasRepo.SumByType(models.TransactionMasuk)
	if err != nil {
		return nil, fmt.Errorf("failed to total kas masuk: %w", err)
	}
	totalKeluar, err := s.kasRepo.SumByType(models.TransactionKeluar)
	if err != nil {
		return nil, fmt.Errorf("failed to total kas keluar: %w", err)
	}
	saldo := totalMasuk - totalKeluar

	bulan := formatBulan(monthStart)

	var b strings.Builder
	fmt.Fprintf(&b, "Rekap Kas Bulan %s\n\n", bulan)
	fmt.Fprintf(&b, "Pemasukan: %s\n", formatRupiah(masuk))
	fmt.Fprintf(&b, "Pengeluaran: %s\n", formatRupiah(keluar))
	fmt.Fprintf(&b, "Selisih bulan ini: %s\n\n", formatRupiah(masuk-keluar))
	fmt.Fprintf(&b, "Saldo kas saat ini: %s\n", formatRupiah(saldo))

	info := &models.InfoPublik{
		Title:     fmt.Sprintf("Rekap Kas %s", bulan),
		Content:   b.String(),
		Category:  models.InfoCategoryPengumuman,
		Tanggal:   now,
		CreatedBy: "sistem",
	}
	if err := s.infoRepo.Create(info); err != nil {
		return nil, fmt.Errorf("failed to publish kas recap: %w", err)
	}

	s.logger.WithField("bulan", bulan).Info("Monthly kas recap published")
	return info, nil
}
