package user

import (
	"context"
	"testing"

	"impulso/apperrors"
	"impulso/config"
	memoryRepo "impulso/database/repository/memory"
	"impulso/models"
)

func newService() *DefaultService {
	config.AppConfig.JWTSecret = "test-secret"
	return &DefaultService{
		Users: memoryRepo.NewUserRepo(),
		Ongs:  memoryRepo.NewOngRepo(),
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	created, err := svc.Register(ctx, RegisterRequest{
		Name:     "Maria",
		Email:    "Maria@Example.com",
		Password: "s3nh4-forte",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if created.Type != models.RoleCliente {
		t.Errorf("type = %s, want cliente by default", created.Type)
	}
	if created.Email != "maria@example.com" {
		t.Errorf("email = %s, want lowercased", created.Email)
	}
	if created.PasswordHash == "s3nh4-forte" || created.PasswordHash == "" {
		t.Error("password stored in clear or missing")
	}

	auth, err := svc.Login(ctx, "maria@example.com", "s3nh4-forte")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if auth.Token == "" {
		t.Error("login issued no token")
	}
	if auth.User.ID != created.ID {
		t.Errorf("login user = %s, want %s", auth.User.ID, created.ID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	if _, err := svc.Register(ctx, RegisterRequest{Name: "Maria", Email: "m@x.com", Password: "right"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := svc.Login(ctx, "m@x.com", "wrong")
	if !apperrors.IsAuthorization(err) {
		t.Errorf("login with wrong password = %v, want authorization error", err)
	}
	_, err = svc.Login(ctx, "nobody@x.com", "right")
	if !apperrors.IsAuthorization(err) {
		t.Errorf("login with unknown email = %v, want authorization error", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	if _, err := svc.Register(ctx, RegisterRequest{Name: "Maria", Email: "m@x.com", Password: "pw"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, err := svc.Register(ctx, RegisterRequest{Name: "Other", Email: "m@x.com", Password: "pw2"})
	if !apperrors.IsConflict(err) {
		t.Errorf("duplicate registration = %v, want conflict", err)
	}
}

func TestRegisterJovemForbidden(t *testing.T) {
	svc := newService()
	_, err := svc.Register(context.Background(), RegisterRequest{
		Name: "Joao", Email: "j@x.com", Password: "pw", Type: models.RoleJovem,
	})
	if !apperrors.IsValidation(err) {
		t.Errorf("jovem self-signup = %v, want validation error", err)
	}
}

func TestRegisterOngCreatesProfile(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	created, err := svc.Register(ctx, RegisterRequest{
		Name: "ONG Esperanca", Email: "ong@x.com", Password: "pw", Type: models.RoleOng,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	profile, err := svc.Ongs.GetByUserID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if profile == nil {
		t.Fatal("ONG registration left no organization profile")
	}
	if profile.Name != "ONG Esperanca" {
		t.Errorf("profile name = %s, want ONG Esperanca", profile.Name)
	}
}

func TestProvisionJovemAccount(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	acct, err := svc.ProvisionJovemAccount(ctx, "Joao", "joao@x.com", "temp-123")
	if err != nil {
		t.Fatalf("ProvisionJovemAccount: %v", err)
	}
	if acct.Type != models.RoleJovem {
		t.Errorf("type = %s, want jovem", acct.Type)
	}
	if !acct.FirstLogin {
		t.Error("provisioned account not flagged for forced password change")
	}

	if _, err := svc.Login(ctx, "joao@x.com", "temp-123"); err != nil {
		t.Errorf("login with temporary password: %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	acct, err := svc.ProvisionJovemAccount(ctx, "Joao", "joao@x.com", "temp-123")
	if err != nil {
		t.Fatalf("ProvisionJovemAccount: %v", err)
	}

	if err := svc.ChangePassword(ctx, acct.ID, "wrong", "new-pw"); !apperrors.IsAuthorization(err) {
		t.Errorf("change with wrong current password = %v, want authorization error", err)
	}
	if err := svc.ChangePassword(ctx, acct.ID, "temp-123", "new-pw"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	if _, err := svc.Login(ctx, "joao@x.com", "temp-123"); !apperrors.IsAuthorization(err) {
		t.Errorf("old password still accepted: %v", err)
	}
	auth, err := svc.Login(ctx, "joao@x.com", "new-pw")
	if err != nil {
		t.Fatalf("login with new password: %v", err)
	}
	if auth.User.FirstLogin {
		t.Error("firstLogin flag survived the password change")
	}
}

func TestUpdateProfile(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	created, err := svc.Register(ctx, RegisterRequest{Name: "Maria", Email: "m@x.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	phone := "+55 11 99999-0000"
	loc := models.Location{State: "SP", City: "Campinas"}
	got, err := svc.Update(ctx, created.ID, models.UserUpdate{Phone: &phone, Location: &loc})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Phone != phone || got.Location.City != "Campinas" {
		t.Errorf("updated profile = %+v, want phone and location applied", got)
	}
	if got.Name != "Maria" {
		t.Errorf("name = %s, want untouched", got.Name)
	}

	if _, err := svc.Update(ctx, "missing", models.UserUpdate{}); !apperrors.IsNotFound(err) {
		t.Errorf("update of unknown user = %v, want not-found", err)
	}
}
