// Package jovem manages worker profiles on behalf of their ONGs.
package jovem

import (
	"context"
	"strings"

	"impulso/apperrors"
	jovemRepo "impulso/database/repository/jovem"
	serviceRepo "impulso/database/repository/service"
	"impulso/models"
	"impulso/services/user"

	"go.uber.org/zap"
)

// CreateRequest is the ONG-originated payload for onboarding a jovem.
type CreateRequest struct {
	OngID    string          `json:"ongId"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Phone    string          `json:"phone,omitempty"`
	Skills   []string        `json:"skills,omitempty"`
	Location models.Location `json:"location,omitempty"`

	WeeklySchedule map[string]models.DaySchedule `json:"weeklySchedule,omitempty"`
	Window         *models.TimeWindow            `json:"window,omitempty"`
	WorkDays       []string                      `json:"workDays,omitempty"`

	// TempPassword, when set, provisions a login account for the jovem.
	TempPassword string `json:"tempPassword,omitempty"`
}

// Service is the jovem-profile operation surface.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*models.Jovem, error)
	Get(ctx context.Context, id string) (*models.Jovem, error)
	List(ctx context.Context, ongID string) ([]models.Jovem, error)
	Update(ctx context.Context, id string, upd models.JovemUpdate) (*models.Jovem, error)
	Delete(ctx context.Context, id string) error
}

// DefaultService is the production implementation.
type DefaultService struct {
	Jovens  jovemRepo.JovemRepository
	Catalog serviceRepo.ServiceRepository

	// Accounts provisions login accounts; nil disables account creation.
	Accounts user.Service

	Logger *zap.Logger
}

func (s *DefaultService) Create(ctx context.Context, req CreateRequest) (*models.Jovem, error) {
	if req.Name == "" || req.OngID == "" {
		return nil, apperrors.Validation("name and ongId are required")
	}

	categories, err := s.knownCategories(ctx)
	if err != nil {
		return nil, err
	}

	jovem := models.Jovem{
		OngID:        req.OngID,
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        req.Phone,
		Availability: true,
		Skills:       models.NormalizeSkills(req.Skills, categories),
		Location:     req.Location,

		WeeklySchedule: req.WeeklySchedule,
		Window:         req.Window,
		WorkDays:       req.WorkDays,
	}

	if req.TempPassword != "" && s.Accounts != nil {
		acct, err := s.Accounts.ProvisionJovemAccount(ctx, req.Name, jovem.Email, req.TempPassword)
		if err != nil {
			return nil, err
		}
		jovem.UserID = acct.ID
	}

	id, err := s.Jovens.Create(ctx, jovem)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to persist jovem")
	}

	s.log().Info("jovem onboarded", zap.String("jovemId", id), zap.String("ongId", req.OngID))
	return s.Jovens.GetByID(ctx, id)
}

func (s *DefaultService) Get(ctx context.Context, id string) (*models.Jovem, error) {
	return s.loadJovem(ctx, id)
}

func (s *DefaultService) List(ctx context.Context, ongID string) ([]models.Jovem, error) {
	jovens, err := s.Jovens.List(ctx, ongID)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to list jovens")
	}
	return jovens, nil
}

func (s *DefaultService) Update(ctx context.Context, id string, upd models.JovemUpdate) (*models.Jovem, error) {
	jovem, err := s.loadJovem(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		jovem.Name = *upd.Name
	}
	if upd.Phone != nil {
		jovem.Phone = *upd.Phone
	}
	if upd.Availability != nil {
		jovem.Availability = *upd.Availability
	}
	if upd.Skills != nil {
		jovem.Skills = upd.Skills
	}
	if upd.Location != nil {
		jovem.Location = *upd.Location
	}
	if upd.WeeklySchedule != nil {
		jovem.WeeklySchedule = upd.WeeklySchedule
	}
	if upd.Window != nil {
		jovem.Window = upd.Window
	}
	if upd.WorkDays != nil {
		jovem.WorkDays = upd.WorkDays
	}

	if err := s.Jovens.Update(ctx, *jovem); err != nil {
		return nil, apperrors.Storage(err, "failed to persist jovem %s", id)
	}
	return s.Jovens.GetByID(ctx, id)
}

func (s *DefaultService) Delete(ctx context.Context, id string) error {
	if _, err := s.loadJovem(ctx, id); err != nil {
		return err
	}
	if err := s.Jovens.Delete(ctx, id); err != nil {
		return apperrors.Storage(err, "failed to delete jovem %s", id)
	}
	return nil
}

// knownCategories collects the catalog's category set so legacy flat skill
// lists can be resolved into tagged skills.
func (s *DefaultService) knownCategories(ctx context.Context) (map[string]bool, error) {
	services, err := s.Catalog.List(ctx, models.ServiceFilter{})
	if err != nil {
		return nil, apperrors.Storage(err, "failed to list catalog categories")
	}
	categories := make(map[string]bool, len(services))
	for _, svc := range services {
		if svc.Category != "" {
			categories[svc.Category] = true
		}
	}
	return categories, nil
}

func (s *DefaultService) loadJovem(ctx context.Context, id string) (*models.Jovem, error) {
	jovem, err := s.Jovens.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to load jovem %s", id)
	}
	if jovem == nil {
		return nil, apperrors.NotFound("jovem %s not found", id)
	}
	return jovem, nil
}

func (s *DefaultService) log() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
