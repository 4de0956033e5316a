package ong

import (
	"context"
	"testing"

	"impulso/apperrors"
	memoryRepo "impulso/database/repository/memory"
	"impulso/models"
)

func newService(t *testing.T) (*DefaultService, string) {
	t.Helper()
	svc := &DefaultService{
		Ongs:   memoryRepo.NewOngRepo(),
		Jovens: memoryRepo.NewJovemRepo(),
	}
	id, err := svc.Ongs.Create(context.Background(), models.Ong{
		UserID: "user-1",
		Name:   "ONG Esperanca",
		Email:  "ong@x.com",
	})
	if err != nil {
		t.Fatalf("seed ONG: %v", err)
	}
	return svc, id
}

func TestGetByUserID(t *testing.T) {
	svc, id := newService(t)
	ctx := context.Background()

	got, err := svc.GetByUserID(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if got.ID != id {
		t.Errorf("id = %s, want %s", got.ID, id)
	}

	if _, err := svc.GetByUserID(ctx, "nobody"); !apperrors.IsNotFound(err) {
		t.Errorf("unknown user = %v, want not-found", err)
	}
}

func TestUpdateOng(t *testing.T) {
	svc, id := newService(t)
	ctx := context.Background()

	desc := "Capacitacao de jovens em servicos"
	loc := models.Location{State: "SP", City: "Sao Paulo"}
	got, err := svc.Update(ctx, id, models.OngUpdate{Description: &desc, Location: &loc})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Description != desc || got.Location.City != "Sao Paulo" {
		t.Errorf("updated = %+v, want description and location applied", got)
	}
	if got.Name != "ONG Esperanca" {
		t.Errorf("name = %s, want untouched", got.Name)
	}

	if _, err := svc.Update(ctx, "missing", models.OngUpdate{}); !apperrors.IsNotFound(err) {
		t.Errorf("update of unknown ONG = %v, want not-found", err)
	}
}

func TestRoster(t *testing.T) {
	svc, id := newService(t)
	ctx := context.Background()
	for _, name := range []string{"Joao", "Ana"} {
		if _, err := svc.Jovens.Create(ctx, models.Jovem{OngID: id, Name: name}); err != nil {
			t.Fatalf("seed jovem %s: %v", name, err)
		}
	}
	if _, err := svc.Jovens.Create(ctx, models.Jovem{OngID: "other-ong", Name: "Pedro"}); err != nil {
		t.Fatalf("seed jovem: %v", err)
	}

	got, err := svc.Roster(ctx, id)
	if err != nil {
		t.Fatalf("Roster: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("roster size = %d, want 2", len(got))
	}

	if _, err := svc.Roster(ctx, "missing"); !apperrors.IsNotFound(err) {
		t.Errorf("roster of unknown ONG = %v, want not-found", err)
	}
}
