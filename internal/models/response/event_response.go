package response

import (
	"halodkm-be-svc/internal/models"
)

// EventListItem is an event row with derived totals for list views
type EventListItem struct {
	models.Event
	TotalMasuk      float64 `json:"total_masuk"`
	TotalKeluar     float64 `json:"total_keluar"`
	Saldo           float64 `json:"saldo"`
	TotalRecipients int64   `json:"total_recipients"`
}

// EventDetailResponse bundles an event with its ledger and fresh summary
type EventDetailResponse struct {
	Event        models.Event              `json:"event"`
	Transactions []models.EventTransaction `json:"transactions"`
	Summary      models.EventSummary       `json:"summary"`
}

// CompleteEventResponse reports the settlement result back to the caller
type CompleteEventResponse struct {
	TransferredAmount float64 `json:"transferred_amount"`
	TanggalSelesai    string  `json:"tanggal_selesai"`
}
