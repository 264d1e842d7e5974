package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pharmatrack/inventory-system/internal/core/domain"
	"github.com/pharmatrack/inventory-system/internal/core/ports"
)

type stubInventoryService struct {
	drugs    []domain.Drug
	sellIn   *ports.SellInput
	sellOut  *domain.Drug
	sellErr  error
	createIn *ports.DrugInput
}

func (s *stubInventoryService) List(_ context.Context) ([]domain.Drug, error) {
	return s.drugs, nil
}

func (s *stubInventoryService) Create(_ context.Context, _ ports.Actor, input ports.DrugInput) (*domain.Drug, error) {
	s.createIn = &input
	return &domain.Drug{ID: 1, Name: input.Name, Dosage: input.Dosage, Quantity: input.Quantity, Price: input.Price}, nil
}

func (s *stubInventoryService) Update(_ context.Context, _ ports.Actor, id int64, input ports.DrugInput) (*domain.Drug, error) {
	return &domain.Drug{ID: id, Name: input.Name, Quantity: input.Quantity, Price: input.Price}, nil
}

func (s *stubInventoryService) Delete(_ context.Context, _ ports.Actor, id int64) error {
	return nil
}

func (s *stubInventoryService) Sell(_ context.Context, input ports.SellInput) (*domain.Drug, error) {
	s.sellIn = &input
	if s.sellErr != nil {
		return nil, s.sellErr
	}
	return s.sellOut, nil
}

func TestDrugHandler_List(t *testing.T) {
	svc := &stubInventoryService{drugs: []domain.Drug{
		{ID: 1, Name: "Paracetamol", Quantity: 20, Price: 5},
		{ID: 2, Name: "Ibuprofen", Quantity: 10, Price: 3.25},
	}}
	h := NewDrugHandler(svc)

	c, rec := newTestContext(http.MethodGet, "/api/drugs", "")
	setActor(c, 2, "bob", "cashier")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got []domain.Drug
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("expected drugs ordered by id, got %+v", got)
	}
}

func TestDrugHandler_Create_ValidationRejects(t *testing.T) {
	h := NewDrugHandler(&stubInventoryService{})

	cases := []string{
		`{"dosage":"500mg","quantity":5,"price":2.5}`, // missing name
		`{"name":"Aspirin","quantity":-2,"price":2.5}`,
		`{"name":"Aspirin","quantity":5,"price":0}`,
	}
	for _, body := range cases {
		c, _ := newTestContext(http.MethodPost, "/api/drugs", body)
		setActor(c, 1, "admin", "admin")
		err := h.Create(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %v", body, err)
		}
	}
}

func TestDrugHandler_Create_Success(t *testing.T) {
	svc := &stubInventoryService{}
	h := NewDrugHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/api/drugs", `{"name":"Aspirin","dosage":"100mg","quantity":5,"price":2.5}`)
	setActor(c, 1, "admin", "admin")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.createIn == nil || svc.createIn.Name != "Aspirin" {
		t.Fatalf("unexpected create input: %+v", svc.createIn)
	}
}

func TestDrugHandler_Sell_Success(t *testing.T) {
	svc := &stubInventoryService{sellOut: &domain.Drug{ID: 3, Name: "Paracetamol", Quantity: 5, Price: 5}}
	h := NewDrugHandler(svc)

	c, rec := newTestContext(http.MethodPut, "/api/drugs/sell/3", `{"quantitySold":15}`)
	c.SetParamNames("id")
	c.SetParamValues("3")
	c.Request().Header.Set("Idempotency-Key", "sale-1")
	setActor(c, 2, "bob", "cashier")

	if err := h.Sell(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.sellIn.DrugID != 3 || svc.sellIn.Quantity != 15 {
		t.Fatalf("unexpected sell input: %+v", svc.sellIn)
	}
	if svc.sellIn.IdempotencyKey != "sale-1" {
		t.Fatalf("idempotency key not forwarded: %+v", svc.sellIn)
	}
	if svc.sellIn.Actor.Role != domain.RoleCashier {
		t.Fatalf("actor role not forwarded: %+v", svc.sellIn.Actor)
	}
}

func TestDrugHandler_Sell_InsufficientStockPassThrough(t *testing.T) {
	svc := &stubInventoryService{sellErr: &domain.InsufficientStockError{Available: 5}}
	h := NewDrugHandler(svc)

	c, _ := newTestContext(http.MethodPut, "/api/drugs/sell/3", `{"quantitySold":10}`)
	c.SetParamNames("id")
	c.SetParamValues("3")
	setActor(c, 2, "bob", "cashier")

	err := h.Sell(c)
	stockErr, ok := err.(*domain.InsufficientStockError)
	if !ok {
		t.Fatalf("expected InsufficientStockError to reach the error handler, got %v", err)
	}
	if stockErr.Available != 5 {
		t.Fatalf("expected available 5, got %d", stockErr.Available)
	}
}

func TestDrugHandler_Sell_InvalidID(t *testing.T) {
	h := NewDrugHandler(&stubInventoryService{})

	c, _ := newTestContext(http.MethodPut, "/api/drugs/sell/abc", `{"quantitySold":1}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	setActor(c, 2, "bob", "cashier")

	err := h.Sell(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %v", err)
	}
}
