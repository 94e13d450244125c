package service

import (
	"strings"
	"testing"

	"halodkm-be-svc/internal/apperrors"
	"halodkm-be-svc/internal/models"
)

func newTestEventService() (EventService, *fakeEventRepo, *fakeAudit) {
	repo := newFakeEventRepo()
	audit := &fakeAudit{}
	svc := NewEventService(repo, audit, testLogger())
	return svc, repo, audit
}

func createTestEvent(t *testing.T, svc EventService, tipe string) *models.Event {
	t.Helper()
	event, err := svc.CreateEvent(testAdmin(), &EventRequest{
		Nama:         "Santunan Anak Yatim",
		Tipe:         tipe,
		TanggalMulai: "2026-08-01",
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	return event
}

func addTestTransaction(t *testing.T, svc EventService, eventID uint, transType string, amount float64) {
	t.Helper()
	_, err := svc.AddTransaction(testAdmin(), eventID, &EventTransactionRequest{
		Type:        transType,
		Amount:      amount,
		Description: "Donasi jamaah",
		Tanggal:     "2026-08-05",
	})
	if err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}
}

func TestCreateEventValidation(t *testing.T) {
	svc, _, _ := newTestEventService()

	cases := []struct {
		name string
		req  EventRequest
	}{
		{"empty nama", EventRequest{Nama: "  ", Tipe: models.EventTipeDistribusi, TanggalMulai: "2026-08-01"}},
		{"bad tipe", EventRequest{Nama: "Kurban", Tipe: "arisan", TanggalMulai: "2026-08-01"}},
		{"bad tanggal", EventRequest{Nama: "Kurban", Tipe: models.EventTipeDistribusi, TanggalMulai: "kemarin"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateEvent(testAdmin(), &tc.req); !apperrors.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateEventStartsAktif(t *testing.T) {
	svc, _, audit := newTestEventService()
	event := createTestEvent(t, svc, models.EventTipePenggalanganDana)

	if event.Status != models.EventStatusAktif {
		t.Fatalf("new event status = %q, want aktif", event.Status)
	}
	if len(audit.actions) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(audit.actions))
	}
}

func TestUpdateEventTipeImmutable(t *testing.T) {
	svc, _, _ := newTestEventService()
	event := createTestEvent(t, svc, models.EventTipePenggalanganDana)

	err := svc.UpdateEvent(testAdmin(), event.ID, &EventRequest{
		Nama:         event.Nama,
		Tipe:         models.EventTipeDistribusi,
		TanggalMulai: "2026-08-01",
	})
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error on tipe change, got %v", err)
	}
}

func TestDeleteEventWithTransactionsRejected(t *testing.T) {
	svc, repo, _ := newTestEventService()
	event := createTestEvent(t, svc, models.EventTipePenggalanganDana)
	addTestTransaction(t, svc, event.ID, models.TransactionMasuk, 50000)

	if err := svc.DeleteEvent(testAdmin(), event.ID); !apperrors.IsState(err) {
		t.Fatalf("expected state error, got %v", err)
	}
	if _, ok := repo.events[event.ID]; !ok {
		t.Fatal("event should still exist after rejected delete")
	}
}

func TestCompleteEventTransfersSaldo(t *testing.T) {
	svc, repo, _ := newTestEventService()
	event := createTestEvent(t, svc, models.EventTipePenggalanganDana)
	addTestTransaction(t, svc, event.ID, models.TransactionMasuk, 100000)
	addTestTransaction(t, svc, event.ID, models.TransactionKeluar, 30000)

	result, err := svc.CompleteEvent(testAdmin(), event.ID)
	if err != nil {
		t.Fatalf("CompleteEvent: %v", err)
	}
	if result.TransferredAmount != 70000 {
		t.Fatalf("TransferredAmount = %v, want 70000", result.TransferredAmount)
	}

	if len(repo.kasEntries) != 1 {
		t.Fatalf("expected 1 kas entry, got %d", len(repo.kasEntries))
	}
	entry := repo.kasEntries[0]
	if entry.Type != models.TransactionMasuk || entry.Amount != 70000 {
		t.Fatalf("kas entry = %s %v, want masuk 70000", entry.Type, entry.Amount)
	}
	if !strings.Contains(entry.Description, event.Nama) {
		t.Fatalf("kas entry description %q should name the event", entry.Description)
	}

	settled := repo.events[event.ID]
	if settled.Status != models.EventStatusSelesai || settled.TanggalSelesai == nil {
		t.Fatalf("event not settled: status=%q tanggal_selesai=%v", settled.Status, settled.TanggalSelesai)
	}
}

func TestCompleteEventZeroSaldoNoKasEntry(t *testing.T) {
	svc, repo, _ := newTestEventService()
	event := createTestEvent(t, svc, models.EventTipeDistribusi)
	addTestTransaction(t, svc, event.ID, models.TransactionMasuk, 50000)
	addTestTransaction(t, svc, event.ID, models.TransactionKeluar, 50000)

	result, err := svc.CompleteEvent(testAdmin(), event.ID)
	if err != nil {
		t.Fatalf("CompleteEvent: %v", err)
	}
	if result.TransferredAmount != 0 {
		t.Fatalf("TransferredAmount = %v, want 0", result.TransferredAmount)
	}
	if len(repo.kasEntries) != 0 {
		t.Fatalf("zero saldo must not produce a kas entry, got %d", len(repo.kasEntries))
	}
	if repo.events[event.ID].Status != models.EventStatusSelesai {
		t.Fatal("event should still be settled on zero saldo")
	}
}

func TestCompleteEventNegativeSaldoRejected(t *testing.T) {
	svc, repo, _ := newTestEventService()
	event := createTestEvent(t, svc, models.EventTipeDistribusi)
	addTestTransaction(t, svc, event.ID, models.TransactionMasuk, 20000)
	addTestTransaction(t, svc, event.ID, models.TransactionKeluar, 50000)

	_, err := svc.CompleteEvent(testAdmin(), event.ID)
	if !apperrors.IsInvariant(err) {
		t.Fatalf("expected invariant violation, got %v", err)
	}
	if repo.events[event.ID].Status != models.EventStatusAktif {
		t.Fatal("event must stay aktif after rejected settlement")
	}
	if len(repo.kasEntries) != 0 {
		t.Fatal("rejected settlement must not touch the kas ledger")
	}
}

func TestCompleteEventTwice(t *testing.T) {
	svc, repo, _ := newTestEventService()
	event := createTestEvent(t, svc, models.EventTipePenggalanganDana)
	addTestTransaction(t, svc, event.ID, models.TransactionMasuk, 100000)

	if _, err := svc.CompleteEvent(testAdmin(), event.ID); err != nil {
		t.Fatalf("first CompleteEvent: %v", err)
	}
	if _, err := svc.CompleteEvent(testAdmin(), event.ID); !apperrors.IsState(err) {
		t.Fatalf("second CompleteEvent: expected state error, got %v", err)
	}
	if len(repo.kasEntries) != 1 {
		t.Fatalf("saldo transferred %d times, want exactly once", len(repo.kasEntries))
	}
}

func TestCompleteEventLosesRace(t *testing.T) {
	svc, repo, _ := newTestEventService()
	event := createTestEvent(t, svc, models.EventTipePenggalanganDana)
	addTestTransaction(t, svc, event.ID, models.TransactionMasuk, 100000)

	// The event reads as aktif but another request settles it before the
	// conditional update lands.
	repo.settleConflict = true

	if _, err := svc.CompleteEvent(testAdmin(), event.ID); !apperrors.IsState(err) {
		t.Fatalf("expected state error on lost race, got %v", err)
	}
	if len(repo.kasEntries) != 0 {
		t.Fatal("losing the settlement race must not transfer saldo")
	}
}

func TestMutationsAfterSelesaiRejected(t *testing.T) {
	svc, _, _ := newTestEventService()
	event := createTestEvent(t, svc, models.EventTipeDistribusi)
	recipient, err := svc.AddRecipient(testAdmin(), event.ID, &EventRecipientRequest{Nama: "Bu Siti"})
	if err != nil {
		t.Fatalf("AddRecipient: %v", err)
	}
	if _, err := svc.CompleteEvent(testAdmin(), event.ID); err != nil {
		t.Fatalf("CompleteEvent: %v", err)
	}

	req := &EventTransactionRequest{Type: models.TransactionMasuk, Amount: 1000, Description: "terlambat", Tanggal: "2026-08-20"}
	if _, err := svc.AddTransaction(testAdmin(), event.ID, req); !apperrors.IsState(err) {
		t.Fatalf("AddTransaction on selesai event: expected state error, got %v", err)
	}
	if _, err := svc.AddRecipient(testAdmin(), event.ID, &EventRecipientRequest{Nama: "Pak Budi"}); !apperrors.IsState(err) {
		t.Fatalf("AddRecipient on selesai event: expected state error, got %v", err)
	}
	if err := svc.UpdateEvent(testAdmin(), event.ID, &EventRequest{Nama: "Lain", TanggalMulai: "2026-08-01"}); !apperrors.IsState(err) {
		t.Fatalf("UpdateEvent on selesai event: expected state error, got %v", err)
	}
	if err := svc.DeleteRecipient(testAdmin(), event.ID, recipient.ID); !apperrors.IsState(err) {
		t.Fatalf("DeleteRecipient on selesai event: expected state error, got %v", err)
	}

	// Reads stay open after settlement.
	recipients, err := svc.GetRecipients(event.ID)
	if err != nil {
		t.Fatalf("GetRecipients after selesai: %v", err)
	}
	if len(recipients) != 1 {
		t.Fatalf("expected the registered recipient to remain readable, got %d", len(recipients))
	}
}

func TestAddRecipientRequiresDistribusi(t *testing.T) {
	svc, _, _ := newTestEventService()
	event := createTestEvent(t, svc, models.EventTipePenggalanganDana)

	_, err := svc.AddRecipient(testAdmin(), event.ID, &EventRecipientRequest{Nama: "Bu Siti"})
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAddPanitiaDefaultsToManualSource(t *testing.T) {
	svc, _, _ := newTestEventService()
	event := createTestEvent(t, svc, models.EventTipeDistribusi)

	panitia, err := svc.AddPanitia(testAdmin(), event.ID, &EventPanitiaRequest{Nama: "Pak RT", Role: "Ketua"})
	if err != nil {
		t.Fatalf("AddPanitia: %v", err)
	}
	if panitia.SourceType != models.PanitiaSourceManual {
		t.Fatalf("SourceType = %q, want manual", panitia.SourceType)
	}

	_, err = svc.AddPanitia(testAdmin(), event.ID, &EventPanitiaRequest{Nama: "Bu RW", Role: "Bendahara", SourceType: "impor"})
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error for unknown source type, got %v", err)
	}
}

func TestGetEventsStatusFilter(t *testing.T) {
	svc, _, _ := newTestEventService()
	first := createTestEvent(t, svc, models.EventTipePenggalanganDana)
	createTestEvent(t, svc, models.EventTipeDistribusi)
	if _, err := svc.CompleteEvent(testAdmin(), first.ID); err != nil {
		t.Fatalf("CompleteEvent: %v", err)
	}

	aktif, err := svc.GetEvents(models.EventStatusAktif)
	if err != nil {
		t.Fatalf("GetEvents(aktif): %v", err)
	}
	if len(aktif) != 1 {
		t.Fatalf("aktif events = %d, want 1", len(aktif))
	}

	if _, err := svc.GetEvents("batal"); !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error for unknown status, got %v", err)
	}
}

func TestGetEventDetailRecomputesSummary(t *testing.T) {
	svc, _, _ := newTestEventService()
	event := createTestEvent(t, svc, models.EventTipePenggalanganDana)
	addTestTransaction(t, svc, event.ID, models.TransactionMasuk, 75000)
	addTestTransaction(t, svc, event.ID, models.TransactionKeluar, 25000)

	detail, err := svc.GetEventDetail(event.ID)
	if err != nil {
		t.Fatalf("GetEventDetail: %v", err)
	}
	if detail.Summary.TotalMasuk != 75000 || detail.Summary.TotalKeluar != 25000 || detail.Summary.Saldo != 50000 {
		t.Fatalf("summary = %+v, want 75000/25000/50000", detail.Summary)
	}
	if len(detail.Transactions) != 2 {
		t.Fatalf("transactions = %d, want 2", len(detail.Transactions))
	}
}

func TestGetEventDetailNotFound(t *testing.T) {
	svc, _, _ := newTestEventService()

	if _, err := svc.GetEventDetail(99); !apperrors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetEventReportContent(t *testing.T) {
	svc, _, _ := newTestEventService()
	event := createTestEvent(t, svc, models.EventTipeDistribusi)
	addTestTransaction(t, svc, event.ID, models.TransactionMasuk, 100000)
	addTestTransaction(t, svc, event.ID, models.TransactionKeluar, 30000)
	jenis := "Sembako"
	if _, err := svc.AddRecipient(testAdmin(), event.ID, &EventRecipientRequest{Nama: "Bu Siti", JenisBantuan: &jenis}); err != nil {
		t.Fatalf("AddRecipient: %v", err)
	}
	if _, err := svc.AddPanitia(testAdmin(), event.ID, &EventPanitiaRequest{Nama: "Pak RT", Role: "Ketua"}); err != nil {
		t.Fatalf("AddPanitia: %v", err)
	}

	report, err := svc.GetEventReport(event.ID)
	if err != nil {
		t.Fatalf("GetEventReport: %v", err)
	}
	for _, want := range []string{
		"LAPORAN EVENT: Santunan Anak Yatim",
		"Total Pemasukan: Rp 100.000",
		"Total Pengeluaran: Rp 30.000",
		"Saldo Akhir: Rp 70.000",
		"PANITIA",
		"Pak RT (Ketua)",
		"PENERIMA BANTUAN (1 orang)",
		"Bu Siti - Sembako",
	} {
		if !strings.Contains(report.Content, want) {
			t.Errorf("report missing %q\n%s", want, report.Content)
		}
	}
}
