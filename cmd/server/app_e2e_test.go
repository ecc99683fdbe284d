package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/diewo77/go-customers/internal/config"
	"github.com/diewo77/go-customers/internal/models"
)

func setupE2E(t *testing.T) (*App, *gorm.DB) {
	t.Helper()
	dbi, err := gorm.Open(sqlite.Open("file:e2e_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := dbi.AutoMigrate(&models.Customer{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	cfg := &config.Config{}
	cfg.App.SessionSecret = "e2esecret"
	return NewApp(dbi, cfg), dbi
}

func postForm(t *testing.T, app *App, target string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	app.ServeHTTP(rr, req)
	return rr
}

func TestCustomerLifecycleE2E(t *testing.T) {
	app, dbi := setupE2E(t)

	// Create a customer through the real route.
	rr := postForm(t, app, "/create", url.Values{
		"number": {"K001"},
		"name":   {"jan peeters"},
		"email":  {"jan@example.com"},
	}, nil)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("create: expected 303 got %d body=%s", rr.Code, rr.Body.String())
	}

	var c models.Customer
	if err := dbi.First(&c).Error; err != nil {
		t.Fatalf("stored customer: %v", err)
	}
	if c.Name != "Jan Peeters" {
		t.Fatalf("stored name not normalized: %q", c.Name)
	}
	if !c.Active {
		t.Fatalf("stored customer not active")
	}

	// Follow the redirect; the flash cookie should produce a notice.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range rr.Result().Cookies() {
		req.AddCookie(ck)
	}
	list := httptest.NewRecorder()
	app.ServeHTTP(list, req)
	if list.Code != http.StatusOK {
		t.Fatalf("list: expected 200 got %d", list.Code)
	}
	body := list.Body.String()
	if !strings.Contains(body, "Jan Peeters") {
		t.Fatalf("created customer missing from listing: %s", body)
	}
	if !strings.Contains(body, "Customer added.") {
		t.Fatalf("flash notice missing from listing: %s", body)
	}

	// Editing with an invalid email must not touch the record.
	edit := postForm(t, app, "/edit/1", url.Values{
		"number": {"K001"},
		"name":   {"jan peeters"},
		"email":  {"not-an-email"},
	}, nil)
	if edit.Code != http.StatusBadRequest {
		t.Fatalf("edit: expected 400 got %d body=%s", edit.Code, edit.Body.String())
	}
	if !strings.Contains(edit.Body.String(), "Invalid email address.") {
		t.Fatalf("violation missing: %s", edit.Body.String())
	}

	var after models.Customer
	dbi.First(&after, c.ID)
	if after.Email != "jan@example.com" {
		t.Fatalf("record mutated by failed edit: %q", after.Email)
	}
}

func TestUnknownEditRedirectsWithNotice(t *testing.T) {
	app, _ := setupE2E(t)

	req := httptest.NewRequest(http.MethodGet, "/edit/42", nil)
	rr := httptest.NewRecorder()
	app.ServeHTTP(rr, req)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 got %d", rr.Code)
	}

	follow := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range rr.Result().Cookies() {
		follow.AddCookie(ck)
	}
	list := httptest.NewRecorder()
	app.ServeHTTP(list, follow)
	if !strings.Contains(list.Body.String(), "Customer not found.") {
		t.Fatalf("not-found notice missing: %s", list.Body.String())
	}
}

func TestHealthEndpoints(t *testing.T) {
	app, _ := setupE2E(t)
	for _, target := range []string{"/health", "/healthz"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rr := httptest.NewRecorder()
		app.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Errorf("%s: expected 200 got %d", target, rr.Code)
		}
		if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
			t.Errorf("%s: unexpected body %s", target, rr.Body.String())
		}
	}
}
