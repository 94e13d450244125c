package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"halodkm-be-svc/internal/apperrors"
	"halodkm-be-svc/internal/models"
	"halodkm-be-svc/internal/models/response"
	"halodkm-be-svc/internal/repository"
	"halodkm-be-svc/pkg/logger"
)

// KasTransactionRequest carries a kas mutation payload
type KasTransactionRequest struct {
	Type        string  `json:"type" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Category    *string `json:"category,omitempty"`
	Tanggal     string  `json:"tanggal" binding:"required"`
}

// KasService defines the treasury ledger business operations
type KasService interface {
	List(startDate, endDate, transType string) (*response.KasListResponse, error)
	Create(actor *models.User, req *KasTransactionRequest) (*models.KasTransaction, error)
	Update(actor *models.User, id uint, req *KasTransactionRequest) error
	Delete(actor *models.User, id uint) error
	Saldo() (float64, error)
	ExportToExcel(startDate, endDate, transType string) ([]byte, string, error)
}

// kasService implements KasService
type kasService struct {
	kasRepo  repository.KasRepository
	auditSvc AuditService
	logger   *logger.Logger
}

// NewKasService creates a new kas service
func NewKasService(kasRepo repository.KasRepository, auditSvc AuditService, logger *logger.Logger) KasService {
	return &kasService{
		kasRepo:  kasRepo,
		auditSvc: auditSvc,
		logger:   logger,
	}
}

func (s *kasService) buildFilter(startDate, endDate, transType string) (repository.KasFilter, error) {
	var filter repository.KasFilter
	if startDate != "" {
		start, err := parseTanggal(startDate)
		if err != nil {
			return filter, apperrors.NewValidation("start_date tidak valid")
		}
		filter.StartDate = &start
	}
	if endDate != "" {
		end, err := parseTanggal(endDate)
		if err != nil {
			return filter, apperrors.NewValidation("end_date tidak valid")
		}
		filter.EndDate = &end
	}
	if transType != "" {
		if transType != models.TransactionMasuk && transType != models.TransactionKeluar {
			return filter, apperrors.NewValidation("type harus masuk atau keluar")
		}
		filter.Type = transType
	}
	return filter, nil
}

func validateKasRequest(req *KasTransactionRequest) (time.Time, error) {
	if req.Type != models.TransactionMasuk && req.Type != models.TransactionKeluar {
		return time.Time{}, apperrors.NewValidation("type harus masuk atau keluar")
	}
	if req.Amount <= 0 {
		return time.Time{}, apperrors.NewValidation("amount harus lebih dari 0")
	}
	if strings.TrimSpace(req.Description) == "" {
		return time.Time{}, apperrors.NewValidation("description harus diisi")
	}
	tanggal, err := parseTanggal(req.Tanggal)
	if err != nil {
		return time.Time{}, apperrors.NewValidation("tanggal tidak valid")
	}
	return tanggal, nil
}

// List retrieves kas transactions with a summary recomputed over the
// returned set.
func (s *kasService) List(startDate, endDate, transType string) (*response.KasListResponse, error) {
	filter, err := s.buildFilter(startDate, endDate, transType)
	if err != nil {
		return nil, err
	}

	transactions, err := s.kasRepo.List(filter)
	if err != nil {
		return nil, err
	}

	var summary response.KasSummary
	for _, t := range transactions {
		switch t.Type {
		case models.TransactionMasuk:
			summary.TotalMasuk += t.Amount
		case models.TransactionKeluar:
			summary.TotalKeluar += t.Amount
		}
	}
	summary.Saldo = summary.TotalMasuk - summary.TotalKeluar

	return &response.KasListResponse{
		Data:    transactions,
		Summary: summary,
	}, nil
}

// Create appends an entry to the treasury ledger
func (s *kasService) Create(actor *models.User, req *KasTransactionRequest) (*models.KasTransaction, error) {
	tanggal, err := validateKasRequest(req)
	if err != nil {
		return nil, err
	}

	trans := &models.KasTransaction{
		Type:        req.Type,
		Amount:      req.Amount,
		Description: strings.TrimSpace(req.Description),
		Category:    req.Category,
		Tanggal:     tanggal,
	}
	if actor != nil {
		trans.CreatedBy = actor.FullName
	}

	if err := s.kasRepo.Create(trans); err != nil {
		return nil, err
	}

	s.auditSvc.Record(actor, fmt.Sprintf("Menambah transaksi kas %s: %s", trans.Type, trans.Description), "kas_transaction", trans.ID)
	return trans, nil
}

// Update modifies an existing kas entry
func (s *kasService) Update(actor *models.User, id uint, req *KasTransactionRequest) error {
	tanggal, err := validateKasRequest(req)
	if err != nil {
		return err
	}

	trans, err := s.kasRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("transaksi kas tidak ditemukan")
		}
		return err
	}

	trans.Type = req.Type
	trans.Amount = req.Amount
	trans.Description = strings.TrimSpace(req.Description)
	trans.Category = req.Category
	trans.Tanggal = tanggal

	if err := s.kasRepo.Update(trans); err != nil {
		return err
	}

	s.auditSvc.Record(actor, fmt.Sprintf("Mengubah transaksi kas: %s", trans.Description), "kas_transaction", trans.ID)
	return nil
}

// Delete removes a kas entry
func (s *kasService) Delete(actor *models.User, id uint) error {
	if err := s.kasRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("transaksi kas tidak ditemukan")
		}
		return err
	}

	s.auditSvc.Record(actor, "Menghapus transaksi kas", "kas_transaction", id)
	return nil
}

// Saldo returns the overall treasury balance
func (s *kasService) Saldo() (float64, error) {
	masuk, err := s.kasRepo.SumByType(models.TransactionMasuk)
	if err != nil {
		return 0, err
	}
	keluar, err := s.kasRepo.SumByType(models.TransactionKeluar)
	if err != nil {
		return 0, err
	}
	return masuk - keluar, nil
}

// ExportToExcel renders the filtered ledger as an xlsx workbook
func (s *kasService) ExportToExcel(startDate, endDate, transType string) ([]byte, string, error) {
	list, err := s.List(startDate, endDate, transType)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WithError(err).Error("Failed to close Excel file")
		}
	}()

	sheetName := "Kas Masjid"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"No", "Tanggal", "Tipe", "Kategori", "Keterangan", "Pemasukan", "Pengeluaran"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D3D3D3"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "G1", headerStyle)
	}

	for i, trans := range list.Data {
		row := i + 2
		category := ""
		if trans.Category != nil {
			category = *trans.Category
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), trans.Tanggal.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), trans.Type)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), category)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), trans.Description)
		if trans.Type == models.TransactionMasuk {
			f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), trans.Amount)
		} else {
			f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), trans.Amount)
		}
	}

	summaryRow := len(list.Data) + 3
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", summaryRow), "Total")
	f.SetCellValue(sheetName, fmt.Sprintf("F%d", summaryRow), list.Summary.TotalMasuk)
	f.SetCellValue(sheetName, fmt.Sprintf("G%d", summaryRow), list.Summary.TotalKeluar)
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", summaryRow+1), "Saldo")
	f.SetCellValue(sheetName, fmt.Sprintf("F%d", summaryRow+1), list.Summary.Saldo)

	for i := 1; i <= len(headers); i++ {
		col, _ := excelize.ColumnNumberToName(i)
		f.SetColWidth(sheetName, col, col, 18)
	}

	if f.GetSheetName(0) == "Sheet1" && sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("kas_masjid_%s.xlsx", timestamp)

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buffer.Bytes(), filename, nil
}
