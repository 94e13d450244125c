package response

import (
	"halodkm-be-svc/internal/models"
)

// KasSummary holds the running totals of the treasury ledger
type KasSummary struct {
	TotalMasuk  float64 `json:"total_masuk"`
	TotalKeluar float64 `json:"total_keluar"`
	Saldo       float64 `json:"saldo"`
}

// KasListResponse bundles kas transactions with their summary
type KasListResponse struct {
	Data    []models.KasTransaction `json:"data"`
	Summary KasSummary              `json:"summary"`
}

// PendudukKhususListResponse bundles ad-hoc residents with per-label counts
type PendudukKhususListResponse struct {
	Data        []models.PendudukKhusus `json:"data"`
	LabelCounts map[string]int64        `json:"labelCounts"`
}
