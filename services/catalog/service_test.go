package catalog

import (
	"context"
	"testing"

	"impulso/apperrors"
	memoryRepo "impulso/database/repository/memory"
	"impulso/models"
)

func newService() *DefaultService {
	return &DefaultService{Catalog: memoryRepo.NewServiceRepo()}
}

func TestCreateService(t *testing.T) {
	svc := newService()
	got, err := svc.Create(context.Background(), models.Service{
		Name:          "Jardinagem",
		Category:      "jardinagem",
		BasePrice:     100,
		DurationHours: 2,
		OngID:         "ong-1",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.Status != models.ServiceAvailable {
		t.Errorf("status = %s, want available by default", got.Status)
	}
	if got.ID == "" {
		t.Error("no id assigned")
	}
}

func TestCreateServiceValidation(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	cases := []models.Service{
		{Category: "jardinagem"},                                       // no name
		{Name: "Jardinagem"},                                           // no category
		{Name: "Jardinagem", Category: "jardinagem", BasePrice: -1},    // negative price
		{Name: "Jardinagem", Category: "jardinagem", Status: "paused"}, // unknown status
	}
	for _, c := range cases {
		if _, err := svc.Create(ctx, c); !apperrors.IsValidation(err) {
			t.Errorf("Create(%+v) = %v, want validation error", c, err)
		}
	}
}

func TestListFilters(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	seed := []models.Service{
		{Name: "Jardinagem", Category: "jardinagem", OngID: "ong-1"},
		{Name: "Pintura", Category: "pintura", OngID: "ong-1"},
		{Name: "Faxina", Category: "limpeza", OngID: "ong-2", Status: models.ServiceInactive},
	}
	for _, s := range seed {
		if _, err := svc.Create(ctx, s); err != nil {
			t.Fatalf("seed %s: %v", s.Name, err)
		}
	}

	byCategory, err := svc.List(ctx, models.ServiceFilter{Category: "pintura"})
	if err != nil {
		t.Fatalf("List by category: %v", err)
	}
	if len(byCategory) != 1 || byCategory[0].Name != "Pintura" {
		t.Errorf("by category = %+v, want only Pintura", byCategory)
	}

	available, err := svc.List(ctx, models.ServiceFilter{Status: models.ServiceAvailable})
	if err != nil {
		t.Fatalf("List available: %v", err)
	}
	if len(available) != 2 {
		t.Errorf("available = %d entries, want 2", len(available))
	}

	byOng, err := svc.List(ctx, models.ServiceFilter{OngID: "ong-2"})
	if err != nil {
		t.Fatalf("List by ONG: %v", err)
	}
	if len(byOng) != 1 || byOng[0].Name != "Faxina" {
		t.Errorf("by ONG = %+v, want only Faxina", byOng)
	}
}

func TestUpdateService(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	created, err := svc.Create(ctx, models.Service{Name: "Jardinagem", Category: "jardinagem", BasePrice: 100})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	price := 120.0
	status := models.ServiceInactive
	got, err := svc.Update(ctx, created.ID, models.ServiceUpdate{BasePrice: &price, Status: &status})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.BasePrice != 120 || got.Status != models.ServiceInactive {
		t.Errorf("updated = %+v, want price 120 and inactive", got)
	}

	bad := -5.0
	if _, err := svc.Update(ctx, created.ID, models.ServiceUpdate{BasePrice: &bad}); !apperrors.IsValidation(err) {
		t.Errorf("negative price update = %v, want validation error", err)
	}
}

func TestDeleteService(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	created, err := svc.Create(ctx, models.Service{Name: "Jardinagem", Category: "jardinagem"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); !apperrors.IsNotFound(err) {
		t.Errorf("get after delete = %v, want not-found", err)
	}
}
