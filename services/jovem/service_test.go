package jovem

import (
	"context"
	"testing"

	"impulso/apperrors"
	"impulso/config"
	memoryRepo "impulso/database/repository/memory"
	"impulso/models"
	"impulso/services/user"
)

func newService() *DefaultService {
	config.AppConfig.JWTSecret = "test-secret"
	catalog := memoryRepo.NewServiceRepo()
	catalog.Create(context.Background(), models.Service{
		ID: "svc-1", Name: "Jardinagem", Category: "jardinagem", Status: models.ServiceAvailable,
	})
	return &DefaultService{
		Jovens:  memoryRepo.NewJovemRepo(),
		Catalog: catalog,
		Accounts: &user.DefaultService{
			Users: memoryRepo.NewUserRepo(),
			Ongs:  memoryRepo.NewOngRepo(),
		},
	}
}

func TestCreateJovemDefaults(t *testing.T) {
	svc := newService()
	got, err := svc.Create(context.Background(), CreateRequest{
		OngID:  "ong-1",
		Name:   "Joao",
		Email:  "Joao@Example.com",
		Skills: []string{"jardinagem", "svc-pintura-parede"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !got.Availability {
		t.Error("new jovem not available by default")
	}
	if got.Stats != (models.JovemStats{}) {
		t.Errorf("stats = %+v, want zeroed", got.Stats)
	}
	if got.Email != "joao@example.com" {
		t.Errorf("email = %s, want lowercased", got.Email)
	}

	// Known categories resolve as category skills, the rest as service ids.
	want := models.SkillSet{
		{Kind: models.SkillCategory, Value: "jardinagem"},
		{Kind: models.SkillService, Value: "svc-pintura-parede"},
	}
	if len(got.Skills) != len(want) {
		t.Fatalf("skills = %+v, want %+v", got.Skills, want)
	}
	for i := range want {
		if got.Skills[i] != want[i] {
			t.Errorf("skill[%d] = %+v, want %+v", i, got.Skills[i], want[i])
		}
	}
}

func TestCreateJovemProvisionsAccount(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	got, err := svc.Create(ctx, CreateRequest{
		OngID: "ong-1", Name: "Joao", Email: "joao@x.com", TempPassword: "temp-123",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.UserID == "" {
		t.Fatal("no login account bound to the jovem")
	}

	acct, err := svc.Accounts.Get(ctx, got.UserID)
	if err != nil {
		t.Fatalf("load account: %v", err)
	}
	if acct.Type != models.RoleJovem || !acct.FirstLogin {
		t.Errorf("account = type %s firstLogin %v, want jovem with forced password change", acct.Type, acct.FirstLogin)
	}
}

func TestCreateJovemValidation(t *testing.T) {
	svc := newService()
	if _, err := svc.Create(context.Background(), CreateRequest{Name: "Joao"}); !apperrors.IsValidation(err) {
		t.Errorf("create without ongId = %v, want validation error", err)
	}
	if _, err := svc.Create(context.Background(), CreateRequest{OngID: "ong-1"}); !apperrors.IsValidation(err) {
		t.Errorf("create without name = %v, want validation error", err)
	}
}

func TestListByOng(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	for _, tc := range []struct{ name, ong string }{
		{"Joao", "ong-1"}, {"Ana", "ong-1"}, {"Pedro", "ong-2"},
	} {
		if _, err := svc.Create(ctx, CreateRequest{OngID: tc.ong, Name: tc.name}); err != nil {
			t.Fatalf("Create %s: %v", tc.name, err)
		}
	}

	got, err := svc.List(ctx, "ong-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2 for ong-1", len(got))
	}
}

func TestUpdateJovem(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	created, err := svc.Create(ctx, CreateRequest{OngID: "ong-1", Name: "Joao"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	off := false
	loc := models.Location{State: "SP", City: "Santos"}
	got, err := svc.Update(ctx, created.ID, models.JovemUpdate{
		Availability: &off,
		Location:     &loc,
		WeeklySchedule: map[string]models.DaySchedule{
			"saturday": {Enabled: true, Start: "09:00", End: "13:00"},
		},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Availability {
		t.Error("availability flag not applied")
	}
	if got.Location.City != "Santos" {
		t.Errorf("location = %+v, want Santos", got.Location)
	}
	if day, ok := got.WeeklySchedule["saturday"]; !ok || day.Start != "09:00" {
		t.Errorf("weeklySchedule = %+v, want saturday 09:00-13:00", got.WeeklySchedule)
	}
	if got.Name != "Joao" {
		t.Errorf("name = %s, want untouched", got.Name)
	}
}

func TestDeleteJovem(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	created, err := svc.Create(ctx, CreateRequest{OngID: "ong-1", Name: "Joao"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); !apperrors.IsNotFound(err) {
		t.Errorf("get after delete = %v, want not-found", err)
	}
	if err := svc.Delete(ctx, "missing"); !apperrors.IsNotFound(err) {
		t.Errorf("delete of unknown jovem = %v, want not-found", err)
	}
}
