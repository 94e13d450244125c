package service

import (
	"testing"

	"halodkm-be-svc/internal/apperrors"
	"halodkm-be-svc/internal/models"
)

func newTestInfoService() (InfoService, *fakeInfoRepo) {
	repo := newFakeInfoRepo()
	svc := NewInfoService(repo, &fakeAudit{}, testLogger())
	return svc, repo
}

func TestInfoCreateCategoryValidation(t *testing.T) {
	svc, _ := newTestInfoService()

	req := InfoRequest{Title: "Kerja Bakti", Content: "Minggu pagi", Category: "Gosip", Tanggal: "2026-08-10"}
	if _, err := svc.Create(testAdmin(), &req); !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error for unknown category, got %v", err)
	}
}

func TestInfoCreateAndUpdate(t *testing.T) {
	svc, repo := newTestInfoService()

	info, err := svc.Create(testAdmin(), &InfoRequest{
		Title:    "Kerja Bakti",
		Content:  "Minggu pagi di halaman masjid",
		Category: models.InfoCategoryKegiatanDusun,
		Tanggal:  "2026-08-10",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if info.CreatedBy != "Pak Admin" {
		t.Fatalf("CreatedBy = %q, want the actor's full name", info.CreatedBy)
	}

	err = svc.Update(testAdmin(), info.ID, &InfoRequest{
		Title:    "Kerja Bakti RT 02",
		Content:  info.Content,
		Category: info.Category,
		Tanggal:  "2026-08-10",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if repo.infos[info.ID].Title != "Kerja Bakti RT 02" {
		t.Fatalf("title not updated: %q", repo.infos[info.ID].Title)
	}
}

func TestInfoUpdateNotFound(t *testing.T) {
	svc, _ := newTestInfoService()

	req := InfoRequest{Title: "X", Content: "Y", Category: models.InfoCategoryPengumuman, Tanggal: "2026-08-10"}
	if err := svc.Update(testAdmin(), 99, &req); !apperrors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := svc.Delete(testAdmin(), 99); !apperrors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
