package service

import (
	"time"

	"halodkm-be-svc/internal/models"
	"halodkm-be-svc/internal/models/response"
	"halodkm-be-svc/internal/repository"
	"halodkm-be-svc/pkg/logger"
)

// DashboardService assembles the headline stats and the monthly kas chart
type DashboardService interface {
	GetStats() (*response.DashboardResponse, error)
}

// dashboardService implements DashboardService
type dashboardService struct {
	kasRepo    repository.KasRepository
	familyRepo repository.FamilyRepository
	logger     *logger.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(kasRepo repository.KasRepository, familyRepo repository.FamilyRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{
		kasRepo:    kasRepo,
		familyRepo: familyRepo,
		logger:     logger,
	}
}

// GetStats returns jamaah count, treasury balance, this month's flow and a
// six month balance chart.
func (s *dashboardService) GetStats() (*response.DashboardResponse, error) {
	totalJamaah, err := s.familyRepo.CountMembers()
	if err != nil {
		return nil, err
	}

	totalMasuk, err := s.kasRepo.SumByType(models.TransactionMasuk)
	if err != nil {
		return nil, err
	}
	totalKeluar, err := s.kasRepo.SumByType(models.TransactionKeluar)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	masukBulanIni, err := s.kasRepo.SumByTypeInRange(models.TransactionMasuk, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	keluarBulanIni, err := s.kasRepo.SumByTypeInRange(models.TransactionKeluar, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	totals, err := s.kasRepo.MonthlyTotals(6)
	if err != nil {
		return nil, err
	}
	chart := make([]response.ChartData, 0, len(totals))
	for _, t := range totals {
		chart = append(chart, response.ChartData{
			Label: formatBulan(t.Month),
			Value: t.TotalMasuk - t.TotalKeluar,
		})
	}

	return &response.DashboardResponse{
		Stats: response.DashboardStats{
			TotalJamaah:      totalJamaah,
			SaldoKas:         totalMasuk - totalKeluar,
			TotalPemasukan:   masukBulanIni,
			TotalPengeluaran: keluarBulanIni,
		},
		Chart: chart,
	}, nil
}
