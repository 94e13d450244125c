package service

import (
	"time"

	"gorm.io/gorm"

	"halodkm-be-svc/internal/models"
	"halodkm-be-svc/internal/models/response"
	"halodkm-be-svc/internal/repository"
	"halodkm-be-svc/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.NewLogger("error", "text")
}

func testAdmin() *models.User {
	return &models.User{ID: 1, Username: "admin", FullName: "Pak Admin", Role: models.RoleAdmin}
}

// fakeAudit records audit actions in memory
type fakeAudit struct {
	actions []string
}

func (f *fakeAudit) Record(actor *models.User, action, entity string, entityID uint) {
	f.actions = append(f.actions, action)
}

func (f *fakeAudit) GetLogs(limit int) ([]models.AuditLog, error) {
	return nil, nil
}

// fakeEventRepo is an in-memory EventRepository. Settle mirrors the
// conditional-update semantics of the real implementation.
type fakeEventRepo struct {
	events       map[uint]*models.Event
	transactions map[uint]*models.EventTransaction
	recipients   map[uint]*models.EventRecipient
	panitia      map[uint]*models.EventPanitia
	kasEntries   []*models.KasTransaction
	nextID       uint

	// settleConflict simulates losing the settlement race to another
	// request after the event was read as aktif.
	settleConflict bool
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		events:       make(map[uint]*models.Event),
		transactions: make(map[uint]*models.EventTransaction),
		recipients:   make(map[uint]*models.EventRecipient),
		panitia:      make(map[uint]*models.EventPanitia),
	}
}

func (f *fakeEventRepo) id() uint {
	f.nextID++
	return f.nextID
}

func (f *fakeEventRepo) GetAllWithTotals(status string) ([]*response.EventListItem, error) {
	var items []*response.EventListItem
	for _, e := range f.events {
		if status != "" && e.Status != status {
			continue
		}
		item := &response.EventListItem{Event: *e}
		for _, t := range f.transactions {
			if t.EventID != e.ID {
				continue
			}
			switch t.Type {
			case models.TransactionMasuk:
				item.TotalMasuk += t.Amount
			case models.TransactionKeluar:
				item.TotalKeluar += t.Amount
			}
		}
		item.Saldo = item.TotalMasuk - item.TotalKeluar
		for _, r := range f.recipients {
			if r.EventID == e.ID {
				item.TotalRecipients++
			}
		}
		items = append(items, item)
	}
	return items, nil
}

func (f *fakeEventRepo) GetByID(id uint) (*models.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *e
	return &copied, nil
}

func (f *fakeEventRepo) Create(event *models.Event) error {
	event.ID = f.id()
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventRepo) Update(event *models.Event) error {
	if _, ok := f.events[event.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventRepo) Delete(id uint) error {
	if _, ok := f.events[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.events, id)
	return nil
}

func (f *fakeEventRepo) GetTransactions(eventID uint) ([]models.EventTransaction, error) {
	var out []models.EventTransaction
	for _, t := range f.transactions {
		if t.EventID == eventID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) GetTransactionByID(eventID, transID uint) (*models.EventTransaction, error) {
	t, ok := f.transactions[transID]
	if !ok || t.EventID != eventID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *t
	return &copied, nil
}

func (f *fakeEventRepo) CreateTransaction(trans *models.EventTransaction) error {
	trans.ID = f.id()
	f.transactions[trans.ID] = trans
	return nil
}

func (f *fakeEventRepo) UpdateTransaction(trans *models.EventTransaction) error {
	if _, ok := f.transactions[trans.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.transactions[trans.ID] = trans
	return nil
}

func (f *fakeEventRepo) DeleteTransaction(eventID, transID uint) error {
	t, ok := f.transactions[transID]
	if !ok || t.EventID != eventID {
		return gorm.ErrRecordNotFound
	}
	delete(f.transactions, transID)
	return nil
}

func (f *fakeEventRepo) CountTransactions(eventID uint) (int64, error) {
	var n int64
	for _, t := range f.transactions {
		if t.EventID == eventID {
			n++
		}
	}
	return n, nil
}

func (f *fakeEventRepo) GetRecipients(eventID uint) ([]models.EventRecipient, error) {
	var out []models.EventRecipient
	for _, r := range f.recipients {
		if r.EventID == eventID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) GetRecipientByID(eventID, recipientID uint) (*models.EventRecipient, error) {
	r, ok := f.recipients[recipientID]
	if !ok || r.EventID != eventID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeEventRepo) CreateRecipient(recipient *models.EventRecipient) error {
	recipient.ID = f.id()
	f.recipients[recipient.ID] = recipient
	return nil
}

func (f *fakeEventRepo) UpdateRecipient(recipient *models.EventRecipient) error {
	if _, ok := f.recipients[recipient.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.recipients[recipient.ID] = recipient
	return nil
}

func (f *fakeEventRepo) DeleteRecipient(eventID, recipientID uint) error {
	r, ok := f.recipients[recipientID]
	if !ok || r.EventID != eventID {
		return gorm.ErrRecordNotFound
	}
	delete(f.recipients, recipientID)
	return nil
}

func (f *fakeEventRepo) GetPanitia(eventID uint) ([]models.EventPanitia, error) {
	var out []models.EventPanitia
	for _, p := range f.panitia {
		if p.EventID == eventID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) GetPanitiaByID(eventID, panitiaID uint) (*models.EventPanitia, error) {
	p, ok := f.panitia[panitiaID]
	if !ok || p.EventID != eventID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeEventRepo) CreatePanitia(panitia *models.EventPanitia) error {
	panitia.ID = f.id()
	f.panitia[panitia.ID] = panitia
	return nil
}

func (f *fakeEventRepo) UpdatePanitia(panitia *models.EventPanitia) error {
	if _, ok := f.panitia[panitia.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.panitia[panitia.ID] = panitia
	return nil
}

func (f *fakeEventRepo) DeletePanitia(eventID, panitiaID uint) error {
	p, ok := f.panitia[panitiaID]
	if !ok || p.EventID != eventID {
		return gorm.ErrRecordNotFound
	}
	delete(f.panitia, panitiaID)
	return nil
}

func (f *fakeEventRepo) Settle(eventID uint, completedAt time.Time, kasEntry *models.KasTransaction) error {
	e, ok := f.events[eventID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if f.settleConflict || e.Status != models.EventStatusAktif {
		return gorm.ErrRecordNotFound
	}
	e.Status = models.EventStatusSelesai
	e.TanggalSelesai = &completedAt
	if kasEntry != nil {
		f.kasEntries = append(f.kasEntries, kasEntry)
	}
	return nil
}

// fakeKasRepo is an in-memory KasRepository
type fakeKasRepo struct {
	transactions map[uint]*models.KasTransaction
	nextID       uint
}

func newFakeKasRepo() *fakeKasRepo {
	return &fakeKasRepo{transactions: make(map[uint]*models.KasTransaction)}
}

func (f *fakeKasRepo) List(filter repository.KasFilter) ([]models.KasTransaction, error) {
	var out []models.KasTransaction
	for _, t := range f.transactions {
		if filter.Type != "" && t.Type != filter.Type {
			continue
		}
		if filter.StartDate != nil && t.Tanggal.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && t.Tanggal.After(*filter.EndDate) {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeKasRepo) GetByID(id uint) (*models.KasTransaction, error) {
	t, ok := f.transactions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *t
	return &copied, nil
}

func (f *fakeKasRepo) Create(trans *models.KasTransaction) error {
	f.nextID++
	trans.ID = f.nextID
	f.transactions[trans.ID] = trans
	return nil
}

func (f *fakeKasRepo) Update(trans *models.KasTransaction) error {
	if _, ok := f.transactions[trans.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.transactions[trans.ID] = trans
	return nil
}

func (f *fakeKasRepo) Delete(id uint) error {
	if _, ok := f.transactions[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.transactions, id)
	return nil
}

func (f *fakeKasRepo) SumByType(transType string) (float64, error) {
	var sum float64
	for _, t := range f.transactions {
		if t.Type == transType {
			sum += t.Amount
		}
	}
	return sum, nil
}

func (f *fakeKasRepo) SumByTypeInRange(transType string, start, end time.Time) (float64, error) {
	var sum float64
	for _, t := range f.transactions {
		if t.Type != transType {
			continue
		}
		if t.Tanggal.Before(start) || !t.Tanggal.Before(end) {
			continue
		}
		sum += t.Amount
	}
	return sum, nil
}

func (f *fakeKasRepo) MonthlyTotals(months int) ([]repository.MonthlyTotal, error) {
	return nil, nil
}

// fakeUserRepo is an in-memory UserRepository
type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User)}
}

func (f *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetAll() ([]*models.User, error) {
	var out []*models.User
	for _, u := range f.users {
		copied := *u
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeUserRepo) Create(user *models.User) error {
	f.nextID++
	user.ID = f.nextID
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(id uint) error {
	if _, ok := f.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) CountByRole(role string) (int64, error) {
	var n int64
	for _, u := range f.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

// fakeInfoRepo is an in-memory InfoRepository
type fakeInfoRepo struct {
	infos  map[uint]*models.InfoPublik
	nextID uint
}

func newFakeInfoRepo() *fakeInfoRepo {
	return &fakeInfoRepo{infos: make(map[uint]*models.InfoPublik)}
}

func (f *fakeInfoRepo) GetAll() ([]models.InfoPublik, error) {
	var out []models.InfoPublik
	for _, i := range f.infos {
		out = append(out, *i)
	}
	return out, nil
}

func (f *fakeInfoRepo) GetByID(id uint) (*models.InfoPublik, error) {
	i, ok := f.infos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *i
	return &copied, nil
}

func (f *fakeInfoRepo) Create(info *models.InfoPublik) error {
	f.nextID++
	info.ID = f.nextID
	f.infos[info.ID] = info
	return nil
}

func (f *fakeInfoRepo) Update(info *models.InfoPublik) error {
	if _, ok := f.infos[info.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.infos[info.ID] = info
	return nil
}

func (f *fakeInfoRepo) Delete(id uint) error {
	if _, ok := f.infos[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.infos, id)
	return nil
}
