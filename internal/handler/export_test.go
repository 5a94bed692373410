package handler_test

import (
	"net/http"
	"strings"
	"testing"
)

func TestExportCSV(t *testing.T) {
	r, _ := newTestServer(t)
	token := registerAndLogin(t, r, "a@x.com", "pw1")

	addExpense(t, r, token, "50.00", "food", "expense", "2024-03-05")
	addExpense(t, r, token, "10.25", "travel", "expense", "2024-03-06")

	w, _ := doJSON(t, r, http.MethodGet, "/export/csv", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("csv status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("content type = %q, want text/csv", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Errorf("content disposition = %q, want attachment", cd)
	}

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("csv lines = %d, want header + 2 rows", len(lines))
	}
	if strings.TrimSpace(lines[0]) != "id,amount,category,type,date" {
		t.Errorf("csv header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "50.00,food,expense,2024-03-05") {
		t.Errorf("first row = %q", lines[1])
	}
}

func TestExportCSVIsOwnerScoped(t *testing.T) {
	r, _ := newTestServer(t)
	tokenA := registerAndLogin(t, r, "a@x.com", "pw1")
	tokenB := registerAndLogin(t, r, "b@x.com", "pw2")

	addExpense(t, r, tokenA, "50.00", "food", "expense", "2024-03-05")

	w, _ := doJSON(t, r, http.MethodGet, "/export/csv", tokenB, nil)
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("user B csv lines = %d, want header only", len(lines))
	}
}

func TestExportXLSX(t *testing.T) {
	r, _ := newTestServer(t)
	token := registerAndLogin(t, r, "a@x.com", "pw1")

	addExpense(t, r, token, "50.00", "food", "expense", "2024-03-05")

	w, _ := doJSON(t, r, http.MethodGet, "/export/xlsx", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("xlsx status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("content type = %q", ct)
	}
	// xlsx files are zip archives
	if body := w.Body.Bytes(); len(body) < 4 || body[0] != 'P' || body[1] != 'K' {
		t.Error("xlsx body does not start with zip magic")
	}
}

func TestExportPDF(t *testing.T) {
	r, _ := newTestServer(t)
	token := registerAndLogin(t, r, "a@x.com", "pw1")

	addExpense(t, r, token, "50.00", "food", "expense", "2024-03-05")

	w, _ := doJSON(t, r, http.MethodGet, "/export/pdf", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("pdf status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q, want application/pdf", ct)
	}
	if !strings.HasPrefix(w.Body.String(), "%PDF") {
		t.Error("body does not start with %PDF")
	}
}

func TestExportPDFMonthly(t *testing.T) {
	r, _ := newTestServer(t)
	token := registerAndLogin(t, r, "a@x.com", "pw1")

	addExpense(t, r, token, "50.00", "food", "expense", "2024-03-05")

	w, _ := doJSON(t, r, http.MethodGet, "/export/pdf/monthly/2024-03", token, nil)
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Body.String(), "%PDF") {
		t.Fatalf("monthly pdf status = %d", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodGet, "/export/pdf/monthly/2024-3", token, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad month status = %d, want 400", w.Code)
	}
}

func TestExportAcceptsQueryToken(t *testing.T) {
	// download links cannot set an Authorization header
	r, _ := newTestServer(t)
	token := registerAndLogin(t, r, "a@x.com", "pw1")

	w, _ := doJSON(t, r, http.MethodGet, "/export/csv?token="+token, "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("query token status = %d, want 200", w.Code)
	}
}
