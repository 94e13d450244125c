package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"halodkm-be-svc/internal/apperrors"
	"halodkm-be-svc/internal/models"
	"halodkm-be-svc/internal/models/response"
	"halodkm-be-svc/internal/repository"
	"halodkm-be-svc/pkg/logger"
)

// EventRequest carries an event create/update payload
type EventRequest struct {
	Nama         string  `json:"nama" binding:"required"`
	Deskripsi    *string `json:"deskripsi,omitempty"`
	Tipe         string  `json:"tipe" binding:"required"`
	TanggalMulai string  `json:"tanggal_mulai" binding:"required"`
}

// EventTransactionRequest carries a ledger entry payload
type EventTransactionRequest struct {
	Type        string  `json:"type" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Tanggal     string  `json:"tanggal" binding:"required"`
}

// EventRecipientRequest carries a recipient payload
type EventRecipientRequest struct {
	Nama         string  `json:"nama" binding:"required"`
	Alamat       *string `json:"alamat,omitempty"`
	NoHP         *string `json:"no_hp,omitempty"`
	JenisBantuan *string `json:"jenis_bantuan,omitempty"`
	Jumlah       *string `json:"jumlah,omitempty"`
	Keterangan   *string `json:"keterangan,omitempty"`
}

// EventPanitiaRequest carries a committee member payload
type EventPanitiaRequest struct {
	SourceType string  `json:"source_type,omitempty"`
	SourceID   *uint   `json:"source_id,omitempty"`
	Nama       string  `json:"nama" binding:"required"`
	Role       string  `json:"role" binding:"required"`
	NoHP       *string `json:"no_hp,omitempty"`
}

// EventReport is the pre-populated completion report draft
type EventReport struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// EventService owns the event lifecycle, its three registries and the
// settlement operation.
type EventService interface {
	GetEvents(status string) ([]*response.EventListItem, error)
	GetEventDetail(id uint) (*response.EventDetailResponse, error)
	CreateEvent(actor *models.User, req *EventRequest) (*models.Event, error)
	UpdateEvent(actor *models.User, id uint, req *EventRequest) error
	DeleteEvent(actor *models.User, id uint) error
	CompleteEvent(actor *models.User, id uint) (*response.CompleteEventResponse, error)
	GetEventReport(id uint) (*EventReport, error)

	AddTransaction(actor *models.User, eventID uint, req *EventTransactionRequest) (*models.EventTransaction, error)
	UpdateTransaction(actor *models.User, eventID, transID uint, req *EventTransactionRequest) error
	DeleteTransaction(actor *models.User, eventID, transID uint) error

	GetRecipients(eventID uint) ([]models.EventRecipient, error)
	AddRecipient(actor *models.User, eventID uint, req *EventRecipientRequest) (*models.EventRecipient, error)
	UpdateRecipient(actor *models.User, eventID, recipientID uint, req *EventRecipientRequest) error
	DeleteRecipient(actor *models.User, eventID, recipientID uint) error

	GetPanitia(eventID uint) ([]models.EventPanitia, error)
	AddPanitia(actor *models.User, eventID uint, req *EventPanitiaRequest) (*models.EventPanitia, error)
	UpdatePanitia(actor *models.User, eventID, panitiaID uint, req *EventPanitiaRequest) error
	DeletePanitia(actor *models.User, eventID, panitiaID uint) error
}

// eventService implements EventService
type eventService struct {
	eventRepo repository.EventRepository
	auditSvc  AuditService
	logger    *logger.Logger
}

// NewEventService creates a new event service
func NewEventService(eventRepo repository.EventRepository, auditSvc AuditService, logger *logger.Logger) EventService {
	return &eventService{
		eventRepo: eventRepo,
		auditSvc:  auditSvc,
		logger:    logger,
	}
}

// getEvent loads an event, translating the missing-record error
func (s *eventService) getEvent(id uint) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("event tidak ditemukan")
		}
		return nil, err
	}
	return event, nil
}

// getAktifEvent loads an event and rejects it when its registries are
// already frozen.
func (s *eventService) getAktifEvent(id uint) (*models.Event, error) {
	event, err := s.getEvent(id)
	if err != nil {
		return nil, err
	}
	if !event.IsAktif() {
		return nil, apperrors.NewState("event sudah selesai dan tidak dapat diubah")
	}
	return event, nil
}

// GetEvents lists events with derived totals, optionally filtered by status
func (s *eventService) GetEvents(status string) ([]*response.EventListItem, error) {
	if status != "" && status != models.EventStatusAktif && status != models.EventStatusSelesai {
		return nil, apperrors.NewValidation("status harus aktif atau selesai")
	}
	return s.eventRepo.GetAllWithTotals(status)
}

// GetEventDetail returns the event, its ledger and a freshly recomputed
// summary. The summary is never cached; the settlement invariant depends
// on fresh totals.
func (s *eventService) GetEventDetail(id uint) (*response.EventDetailResponse, error) {
	event, err := s.getEvent(id)
	if err != nil {
		return nil, err
	}

	transactions, err := s.eventRepo.GetTransactions(id)
	if err != nil {
		return nil, err
	}

	return &response.EventDetailResponse{
		Event:        *event,
		Transactions: transactions,
		Summary:      models.Summarize(transactions),
	}, nil
}

// CreateEvent registers a new campaign in the aktif state
func (s *eventService) CreateEvent(actor *models.User, req *EventRequest) (*models.Event, error) {
	if strings.TrimSpace(req.Nama) == "" {
		return nil, apperrors.NewValidation("nama event harus diisi")
	}
	if req.Tipe != models.EventTipePenggalanganDana && req.Tipe != models.EventTipeDistribusi {
		return nil, apperrors.NewValidation("tipe harus penggalangan_dana atau distribusi")
	}
	tanggalMulai, err := parseTanggal(req.TanggalMulai)
	if err != nil {
		return nil, apperrors.NewValidation("tanggal_mulai tidak valid")
	}

	event := &models.Event{
		Nama:         strings.TrimSpace(req.Nama),
		Deskripsi:    req.Deskripsi,
		Tipe:         req.Tipe,
		TanggalMulai: tanggalMulai,
		Status:       models.EventStatusAktif,
	}
	if err := s.eventRepo.Create(event); err != nil {
		return nil, err
	}

	s.auditSvc.Record(actor, fmt.Sprintf("Membuat event: %s", event.Nama), "event", event.ID)
	return event, nil
}

// UpdateEvent edits event metadata. Tipe is immutable after creation and
// a completed event cannot be edited at all.
func (s *eventService) UpdateEvent(actor *models.User, id uint, req *EventRequest) error {
	event, err := s.getAktifEvent(id)
	if err != nil {
		return err
	}

	if strings.TrimSpace(req.Nama) == "" {
		return apperrors.NewValidation("nama event harus diisi")
	}
	if req.Tipe != "" && req.Tipe != event.Tipe {
		return apperrors.NewValidation("tipe event tidak dapat diubah setelah dibuat")
	}
	tanggalMulai, err := parseTanggal(req.TanggalMulai)
	if err != nil {
		return apperrors.NewValidation("tanggal_mulai tidak valid")
	}

	event.Nama = strings.TrimSpace(req.Nama)
	event.Deskripsi = req.Deskripsi
	event.TanggalMulai = tanggalMulai

	if err := s.eventRepo.Update(event); err != nil {
		return err
	}

	s.auditSvc.Record(actor, fmt.Sprintf("Mengubah event: %s", event.Nama), "event", event.ID)
	return nil
}

// DeleteEvent removes an event that has no ledger entries yet
func (s *eventService) DeleteEvent(actor *models.User, id uint) error {
	event, err := s.getEvent(id)
	if err != nil {
		return err
	}

	count, err := s.eventRepo.CountTransactions(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.NewState("event yang memiliki transaksi tidak dapat dihapus")
	}

	if err := s.eventRepo.Delete(id); err != nil {
		return err
	}

	s.auditSvc.Record(actor, fmt.Sprintf("Menghapus event: %s", event.Nama), "event", id)
	return nil
}

// CompleteEvent settles an event: recomputes the balance, enforces the
// non-negative invariant, flips the lifecycle state and transfers any
// residual balance into the mosque treasury as a single masuk entry. The
// flip and the transfer are one database transaction, and the flip is
// conditional on the aktif state, so the transfer happens exactly once.
func (s *eventService) CompleteEvent(actor *models.User, id uint) (*response.CompleteEventResponse, error) {
	event, err := s.getEvent(id)
	if err != nil {
		return nil, err
	}
	if !event.IsAktif() {
		return nil, apperrors.NewState("event sudah diselesaikan")
	}

	transactions, err := s.eventRepo.GetTransactions(id)
	if err != nil {
		return nil, err
	}
	summary := models.Summarize(transactions)
	if summary.Saldo < 0 {
		return nil, apperrors.NewInvariant("event tidak dapat diselesaikan dengan saldo negatif")
	}

	now := time.Now()
	var kasEntry *models.KasTransaction
	if summary.Saldo > 0 {
		createdBy := ""
		if actor != nil {
			createdBy = actor.FullName
		}
		kasEntry = &models.KasTransaction{
			Type:        models.TransactionMasuk,
			Amount:      summary.Saldo,
			Description: fmt.Sprintf("Saldo event: %s", event.Nama),
			Tanggal:     now,
			CreatedBy:   createdBy,
		}
	}

	if err := s.eventRepo.Settle(id, now, kasEntry); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Another request settled the event between our read and the
			// conditional update; no second transfer happened.
			return nil, apperrors.NewState("event sudah diselesaikan")
		}
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"event_id":           id,
		"transferred_amount": summary.Saldo,
	}).Info("Event settled")
	s.auditSvc.Record(actor, fmt.Sprintf("Menyelesaikan event: %s (transfer %s ke Kas Masjid)", event.Nama, formatRupiah(summary.Saldo)), "event", id)

	return &response.CompleteEventResponse{
		TransferredAmount: summary.Saldo,
		TanggalSelesai:    now.Format(time.RFC3339),
	}, nil
}

// GetEventReport builds the report draft that completion offers to publish:
// financial breakdown, committee list and, for distribusi events, the
// recipient list.
func (s *eventService) GetEventReport(id uint) (*EventReport, error) {
	event, err := s.getEvent(id)
	if err != nil {
		return nil, err
	}
	transactions, err := s.eventRepo.GetTransactions(id)
	if err != nil {
		return nil, err
	}
	panitia, err := s.eventRepo.GetPanitia(id)
	if err != nil {
		return nil, err
	}
	recipients, err := s.eventRepo.GetRecipients(id)
	if err != nil {
		return nil, err
	}

	summary := models.Summarize(transactions)

	var b strings.Builder
	fmt.Fprintf(&b, "LAPORAN EVENT: %s\n", event.Nama)
	fmt.Fprintf(&b, "Tanggal: %d %s\n\n", time.Now().Day(), formatBulan(time.Now()))

	b.WriteString("RINGKASAN KEUANGAN\n")
	fmt.Fprintf(&b, "Total Pemasukan: %s\n", formatRupiah(summary.TotalMasuk))
	fmt.Fprintf(&b, "Total Pengeluaran: %s\n", formatRupiah(summary.TotalKeluar))
	fmt.Fprintf(&b, "Saldo Akhir: %s", formatRupiah(summary.Saldo))
	if summary.Saldo > 0 {
		b.WriteString(" (ditransfer ke Kas Masjid)")
	}
	b.WriteString("\n\n")

	writeItems := func(title, transType string) {
		var n int
		for _, t := range transactions {
			if t.Type != transType {
				continue
			}
			if n == 0 {
				b.WriteString(title + "\n")
			}
			n++
			fmt.Fprintf(&b, "%d. %s - %s (%s)\n", n, t.Description, formatRupiah(t.Amount), t.Tanggal.Format("02-01-2006"))
		}
		if n > 0 {
			b.WriteString("\n")
		}
	}
	writeItems("RINCIAN PEMASUKAN", models.TransactionMasuk)
	writeItems("RINCIAN PENGELUARAN", models.TransactionKeluar)

	if len(panitia) > 0 {
		b.WriteString("PANITIA\n")
		for _, p := range panitia {
			fmt.Fprintf(&b, "- %s (%s)", p.Nama, p.Role)
			if p.NoHP != nil && *p.NoHP != "" {
				fmt.Fprintf(&b, " - %s", *p.NoHP)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if event.Tipe == models.EventTipeDistribusi && len(recipients) > 0 {
		fmt.Fprintf(&b, "PENERIMA BANTUAN (%d orang)\n", len(recipients))
		for i, r := range recipients {
			fmt.Fprintf(&b, "%d. %s", i+1, r.Nama)
			if r.JenisBantuan != nil && *r.JenisBantuan != "" {
				fmt.Fprintf(&b, " - %s", *r.JenisBantuan)
			}
			if r.Jumlah != nil && *r.Jumlah != "" {
				fmt.Fprintf(&b, " (%s)", *r.Jumlah)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return &EventReport{
		Title:   fmt.Sprintf("Laporan Event: %s", event.Nama),
		Content: b.String(),
	}, nil
}

func validateEventTransactionRequest(req *EventTransactionRequest) (time.Time, error) {
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

// AddTransaction appends a ledger entry to an aktif event
func (s *eventService) AddTransaction(actor *models.User, eventID uint, req *EventTransactionRequest) (*models.EventTransaction, error) {
	event, err := s.getAktifEvent(eventID)
	if err != nil {
		return nil, err
	}
	tanggal, err := validateEventTransactionRequest(req)
	if err != nil {
		return nil, err
	}

	trans := &models.EventTransaction{
		EventID:     eventID,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: strings.TrimSpace(req.Description),
		Tanggal:     tanggal,
	}
	if err := s.eventRepo.CreateTransaction(trans); err != nil {
		return nil, err
	}

	s.auditSvc.Record(actor, fmt.Sprintf("Menambah transaksi %s pada event %s: %s", trans.Type, event.Nama, trans.Description), "event_transaction", trans.ID)
	return trans, nil
}

// UpdateTransaction edits a ledger entry of an aktif event
func (s *eventService) UpdateTransaction(actor *models.User, eventID, transID uint, req *EventTransactionRequest) error {
	event, err := s.getAktifEvent(eventID)
	if err != nil {
		return err
	}
	tanggal, err := validateEventTransactionRequest(req)
	if err != nil {
		return err
	}

	trans, err := s.eventRepo.GetTransactionByID(eventID, transID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("transaksi tidak ditemukan")
		}
		return err
	}

	trans.Type = req.Type
	trans.Amount = req.Amount
	trans.Description = strings.TrimSpace(req.Description)
	trans.Tanggal = tanggal

	if err := s.eventRepo.UpdateTransaction(trans); err != nil {
		return err
	}

	s.auditSvc.Record(actor, fmt.Sprintf("Mengubah transaksi pada event %s: %s", event.Nama, trans.Description), "event_transaction", trans.ID)
	return nil
}

// DeleteTransaction removes a ledger entry of an aktif event
func (s *eventService) DeleteTransaction(actor *models.User, eventID, transID uint) error {
	event, err := s.getAktifEvent(eventID)
	if err != nil {
		return err
	}

	if err := s.eventRepo.DeleteTransaction(eventID, transID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("transaksi tidak ditemukan")
		}
		return err
	}

	s.auditSvc.Record(actor, fmt.Sprintf("Menghapus transaksi pada event %s", event.Nama), "event_transaction", transID)
	return nil
}

// GetRecipients lists recipients; still readable after the event selesai
func (s *eventService) GetRecipients(eventID uint) ([]models.EventRecipient, error) {
	if _, err := s.getEvent(eventID); err != nil {
		return nil, err
	}
	return s.eventRepo.GetRecipients(eventID)
}

// AddRecipient registers a beneficiary on an aktif distribusi event
func (s *eventService) AddRecipient(actor *models.User, eventID uint, req *EventRecipientRequest) (*models.EventRecipient, error) {
	event, err := s.getAktifEvent(eventID)
	if err != nil {
		return nil, err
	}
	if event.Tipe != models.EventTipeDistribusi {
		return nil, apperrors.NewValidation("penerima hanya untuk event distribusi")
	}
	if strings.TrimSpace(req.Nama) == "" {
		return nil, apperrors.NewValidation("nama penerima harus diisi")
	}

	recipient := &models.EventRecipient{
		EventID:      eventID,
		Nama:         strings.TrimSpace(req.Nama),
		Alamat:       req.Alamat,
		NoHP:         req.NoHP,
		JenisBantuan: req.JenisBantuan,
		Jumlah:       req.Jumlah,
		Keterangan:   req.Keterangan,
	}
	if err := s.eventRepo.CreateRecipient(recipient); err != nil {
		return nil, err
	}

	s.auditSvc.Record(actor, fmt.Sprintf("Menambah penerima pada event %s: %s", event.Nama, recipient.Nama), "event_recipient", recipient.ID)
	return recipient, nil
}

// UpdateRecipient edits a beneficiary of an aktif event
func (s *eventService) UpdateRecipient(actor *models.User, eventID, recipientID uint, req *EventRecipientRequest) error {
	event, err := s.getAktifEvent(eventID)
	if err != nil {
		return err
	}
	if strings.TrimSpace(req.Nama) == "" {
		return apperrors.NewValidation("nama penerima harus diisi")
	}

	recipient, err := s.eventRepo.GetRecipientByID(eventID, recipientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("penerima tidak ditemukan")
		}
		return err
	}

	recipient.Nama = strings.TrimSpace(req.Nama)
	recipient.Alamat = req.Alamat
	recipient.NoHP = req.NoHP
	recipient.JenisBantuan = req.JenisBantuan
	recipient.Jumlah = req.Jumlah
	recipient.Keterangan = req.Keterangan

	if err := s.eventRepo.UpdateRecipient(recipient); err != nil {
		return err
	}

	s.auditSvc.Record(actor, fmt.Sprintf("Mengubah penerima pada event %s: %s", event.Nama, recipient.Nama), "event_recipient", recipient.ID)
	return nil
}

// DeleteRecipient removes a beneficiary of an aktif event
func (s *eventService) DeleteRecipient(actor *models.User, eventID, recipientID uint) error {
	event, err := s.getAktifEvent(eventID)
	if err != nil {
		return err
	}

	if err := s.eventRepo.DeleteRecipient(eventID, recipientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("penerima tidak ditemukan")
		}
		return err
	}

	s.auditSvc.Record(actor, fmt.Sprintf("Menghapus penerima pada event %s", event.Nama), "event_recipient", recipientID)
	return nil
}

// GetPanitia lists the committee; still readable after the event selesai
func (s *eventService) GetPanitia(eventID uint) ([]models.EventPanitia, error) {
	if _, err := s.getEvent(eventID); err != nil {
		return nil, err
	}
	return s.eventRepo.GetPanitia(eventID)
}

func validatePanitiaRequest(req *EventPanitiaRequest) error {
	if strings.TrimSpace(req.Nama) == "" {
		return apperrors.NewValidation("nama panitia harus diisi")
	}
	if strings.TrimSpace(req.Role) == "" {
		return apperrors.NewValidation("role panitia harus diisi")
	}
	switch req.SourceType {
	case "", models.PanitiaSourceManual, models.PanitiaSourcePendudukTetap, models.PanitiaSourcePendudukKhusus:
		return nil
	}
	return apperrors.NewValidation("source_type tidak valid")
}

// AddPanitia registers a committee member on an aktif event. The source
// link is advisory only; manual edits stay allowed.
func (s *eventService) AddPanitia(actor *models.User, eventID uint, req *EventPanitiaRequest) (*models.EventPanitia, error) {
	event, err := s.getAktifEvent(eventID)
	if err != nil {
		return nil, err
	}
	if err := validatePanitiaRequest(req); err != nil {
		return nil, err
	}

	sourceType := req.SourceType
	if sourceType == "" {
		sourceType = models.PanitiaSourceManual
	}

	panitia := &models.EventPanitia{
		EventID:    eventID,
		SourceType: sourceType,
		SourceID:   req.SourceID,
		Nama:       strings.TrimSpace(req.Nama),
		Role:       strings.TrimSpace(req.Role),
		NoHP:       req.NoHP,
	}
	if err := s.eventRepo.CreatePanitia(panitia); err != nil {
		return nil, err
	}

	s.auditSvc.Record(actor, fmt.Sprintf("Menambah panitia pada event %s: %s (%s)", event.Nama, panitia.Nama, panitia.Role), "event_panitia", panitia.ID)
	return panitia, nil
}

// UpdatePanitia edits a committee member of an aktif event
func (s *eventService) UpdatePanitia(actor *models.User, eventID, panitiaID uint, req *EventPanitiaRequest) error {
	event, err := s.getAktifEvent(eventID)
	if err != nil {
		return err
	}
	if err := validatePanitiaRequest(req); err != nil {
		return err
	}

	panitia, err := s.eventRepo.GetPanitiaByID(eventID, panitiaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("panitia tidak ditemukan")
		}
		return err
	}

	panitia.Nama = strings.TrimSpace(req.Nama)
	panitia.Role = strings.TrimSpace(req.Role)
	panitia.NoHP = req.NoHP
	if req.SourceType != "" {
		panitia.SourceType = req.SourceType
		panitia.SourceID = req.SourceID
	}

	if err := s.eventRepo.UpdatePanitia(panitia); err != nil {
		return err
	}

	s.auditSvc.Record(actor, fmt.Sprintf("Mengubah panitia pada event %s: %s", event.Nama, panitia.Nama), "event_panitia", panitia.ID)
	return nil
}

// DeletePanitia removes a committee member of an aktif event
func (s *eventService) DeletePanitia(actor *models.User, eventID, panitiaID uint) error {
	event, err := s.getAktifEvent(eventID)
	if err != nil {
		return err
	}

	if err := s.eventRepo.DeletePanitia(eventID, panitiaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("panitia tidak ditemukan")
		}
		return err
	}

	s.auditSvc.Record(actor, fmt.Sprintf("Menghapus panitia pada event %s", event.Nama), "event_panitia", panitiaID)
	return nil
}
