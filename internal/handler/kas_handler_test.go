package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"halodkm-be-svc/internal/apperrors"
	"halodkm-be-svc/internal/models"
	"halodkm-be-svc/internal/models/response"
	"halodkm-be-svc/internal/service"
	"halodkm-be-svc/pkg/logger"
	"halodkm-be-svc/pkg/utils"
)

// stubKasService returns canned results so handler tests can exercise the
// HTTP error mapping without a database.
type stubKasService struct {
	err  error
	list *response.KasListResponse
}

func (s *stubKasService) List(startDate, endDate, transType string) (*response.KasListResponse, error) {
	return s.list, s.err
}

func (s *stubKasService) Create(actor *models.User, req *service.KasTransactionRequest) (*models.KasTransaction, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.KasTransaction{ID: 1, Type: req.Type, Amount: req.Amount, Description: req.Description}, nil
}

func (s *stubKasService) Update(actor *models.User, id uint, req *service.KasTransactionRequest) error {
	return s.err
}

func (s *stubKasService) Delete(actor *models.User, id uint) error {
	return s.err
}

func (s *stubKasService) Saldo() (float64, error) {
	return 0, s.err
}

func (s *stubKasService) ExportToExcel(startDate, endDate, transType string) ([]byte, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	return []byte("PK"), "kas.xlsx", nil
}

func newKasRouter(svc service.KasService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewKasHandler(svc, logger.NewLogger("error", "text"))
	router := gin.New()
	router.GET("/kas", h.List)
	router.POST("/kas", h.Create)
	router.PUT("/kas/:id", h.Update)
	router.DELETE("/kas/:id", h.Delete)
	router.GET("/kas/export", h.Export)
	return router
}

func TestKasHandlerErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", apperrors.NewValidation("type harus masuk atau keluar"), http.StatusBadRequest},
		{"not found", apperrors.NewNotFound("transaksi kas tidak ditemukan"), http.StatusNotFound},
		{"state", apperrors.NewState("tidak dapat diubah"), http.StatusConflict},
		{"invariant", apperrors.NewInvariant("saldo tidak boleh negatif"), http.StatusUnprocessableEntity},
	}

	body := `{"type":"masuk","amount":1000,"description":"infaq","tanggal":"2026-08-01"}`
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newKasRouter(&stubKasService{err: tc.err})

			req := httptest.NewRequest(http.MethodPut, "/kas/1", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}

			var resp utils.APIResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid response body: %v", err)
			}
			if resp.Success {
				t.Fatal("error response must have success=false")
			}
			if resp.Message != tc.err.Error() {
				t.Fatalf("message = %q, want %q", resp.Message, tc.err.Error())
			}
		})
	}
}

func TestKasHandlerCreate(t *testing.T) {
	router := newKasRouter(&stubKasService{})

	body := `{"type":"masuk","amount":90000,"description":"Infaq Jumat","tanggal":"2026-08-07"}`
	req := httptest.NewRequest(http.MethodPost, "/kas", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
}

func TestKasHandlerCreateRejectsBadJSON(t *testing.T) {
	router := newKasRouter(&stubKasService{})

	req := httptest.NewRequest(http.MethodPost, "/kas", strings.NewReader("{bukan json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestKasHandlerList(t *testing.T) {
	router := newKasRouter(&stubKasService{list: &response.KasListResponse{
		Data:    []models.KasTransaction{{ID: 1, Type: models.TransactionMasuk, Amount: 90000}},
		Summary: response.KasSummary{TotalMasuk: 90000, Saldo: 90000},
	}})

	req := httptest.NewRequest(http.MethodGet, "/kas", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"total_masuk":90000`) {
		t.Fatalf("summary missing from body: %s", rec.Body.String())
	}
}

func TestKasHandlerExport(t *testing.T) {
	router := newKasRouter(&stubKasService{})

	req := httptest.NewRequest(http.MethodGet, "/kas/export", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	disposition := rec.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "kas.xlsx") {
		t.Fatalf("Content-Disposition = %q, want attachment with filename", disposition)
	}
}

func TestKasHandlerInvalidID(t *testing.T) {
	router := newKasRouter(&stubKasService{})

	req := httptest.NewRequest(http.MethodDelete, "/kas/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
