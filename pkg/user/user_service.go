package user

import (
	"FoodGuard-Backend/domain"
	"FoodGuard-Backend/entities"
	"FoodGuard-Backend/internal/utils"
	"FoodGuard-Backend/pkg/jwt"
	"FoodGuard-Backend/pkg/risk"
	"context"
	"errors"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"strings"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.UserRegisterRequest) (domain.UserRegisterResponse, error)
		Login(ctx context.Context, req domain.UserLoginRequest) (domain.UserLoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserMeResponse, error)
		UpdateHealthProfile(ctx context.Context, userID string, req domain.UpdateHealthProfileRequest) (domain.HealthProfileResponse, error)
		UpdateNotificationPreferences(ctx context.Context, userID string, req domain.NotificationPreferencesRequest) (domain.NotificationPreferencesResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.UserRegisterRequest) (domain.UserRegisterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	_, err := s.userRepository.GetUserByEmail(ctx, email)
	if err == nil {
		return domain.UserRegisterResponse{}, domain.ErrEmailAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserRegisterResponse{}, err
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return domain.UserRegisterResponse{}, domain.ErrHashPassword
	}

	user := &entities.User{
		ID:                      uuid.New(),
		Name:                    strings.TrimSpace(req.Name),
		Email:                   email,
		Password:                hashed,
		Phone:                   req.Phone,
		Role:                    domain.RoleUser,
		Allergies:               datatypes.NewJSONType([]entities.HealthCondition{}),
		Diseases:                datatypes.NewJSONType([]entities.HealthCondition{}),
		Medications:             datatypes.NewJSONType([]entities.HealthCondition{}),
		Symptoms:                datatypes.NewJSONType([]entities.HealthCondition{}),
		DietaryPreferences:      datatypes.NewJSONType([]string{}),
		NotificationPreferences: datatypes.NewJSONType(entities.DefaultNotificationPreferences()),
	}

	if err := s.userRepository.RegisterUser(ctx, user); err != nil {
		return domain.UserRegisterResponse{}, err
	}

	return domain.UserRegisterResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.UserLoginRequest) (domain.UserLoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserLoginResponse{}, domain.ErrCredentialsNotMatch
		}
		return domain.UserLoginResponse{}, err
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		return domain.UserLoginResponse{}, domain.ErrCredentialsNotMatch
	}

	return domain.UserLoginResponse{
		Token: s.jwtService.GenerateTokenUser(user.ID.String(), user.Role),
		Role:  user.Role,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserMeResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.UserMeResponse{}, err
	}

	return domain.UserMeResponse{
		ID:                      user.ID.String(),
		Name:                    user.Name,
		Email:                   user.Email,
		Phone:                   user.Phone,
		HealthProfile:           toHealthProfileResponse(user),
		NotificationPreferences: toNotificationPreferencesResponse(user.NotificationPreferences.Data()),
		CreatedAt:               user.CreatedAt,
	}, nil
}

// UpdateHealthProfile replaces every list in the profile; an omitted list is cleared.
func (s *userService) UpdateHealthProfile(ctx context.Context, userID string, req domain.UpdateHealthProfileRequest) (domain.HealthProfileResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.HealthProfileResponse{}, err
	}

	user.Allergies = datatypes.NewJSONType(toHealthConditions(req.Allergies))
	user.Diseases = datatypes.NewJSONType(toHealthConditions(req.Diseases))
	user.Medications = datatypes.NewJSONType(toHealthConditions(req.Medications))
	user.Symptoms = datatypes.NewJSONType(toHealthConditions(req.Symptoms))

	prefs := make([]string, 0, len(req.DietaryPreferences))
	seen := map[string]bool{}
	for _, p := range req.DietaryPreferences {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		prefs = append(prefs, p)
	}
	user.DietaryPreferences = datatypes.NewJSONType(prefs)

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.HealthProfileResponse{}, err
	}
	return toHealthProfileResponse(user), nil
}

// UpdateNotificationPreferences only touches the channels present in req.
func (s *userService) UpdateNotificationPreferences(ctx context.Context, userID string, req domain.NotificationPreferencesRequest) (domain.NotificationPreferencesResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.NotificationPreferencesResponse{}, err
	}

	prefs := user.NotificationPreferences.Data()
	set := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}
	set(&prefs.Email, req.Email)
	set(&prefs.SMS, req.SMS)
	set(&prefs.WhatsApp, req.WhatsApp)
	set(&prefs.InApp, req.InApp)
	set(&prefs.Push, req.Push)
	user.NotificationPreferences = datatypes.NewJSONType(prefs)

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.NotificationPreferencesResponse{}, err
	}
	return toNotificationPreferencesResponse(prefs), nil
}

func (s *userService) getUser(ctx context.Context, userID string) (*entities.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// ToRiskProfile projects the stored health profile onto the risk engine's input.
func ToRiskProfile(user *entities.User) risk.Profile {
	return risk.Profile{
		Allergies:          toConditions(user.Allergies.Data()),
		Diseases:           toConditions(user.Diseases.Data()),
		Medications:        toConditions(user.Medications.Data()),
		Symptoms:           toConditions(user.Symptoms.Data()),
		DietaryPreferences: user.DietaryPreferences.Data(),
	}
}

func toConditions(in []entities.HealthCondition) []risk.Condition {
	out := make([]risk.Condition, 0, len(in))
	for _, c := range in {
		out = append(out, risk.Condition{Name: c.Name, Severity: c.Severity, Frequency: c.Frequency})
	}
	return out
}

func toHealthConditions(in domain.ConditionList) []entities.HealthCondition {
	out := make([]entities.HealthCondition, 0, len(in))
	for _, c := range in {
		out = append(out, entities.HealthCondition{Name: c.Name, Severity: c.Severity, Frequency: c.Frequency})
	}
	return out
}

func toEntries(in []entities.HealthCondition) []domain.ConditionEntry {
	out := make([]domain.ConditionEntry, 0, len(in))
	for _, c := range in {
		out = append(out, domain.ConditionEntry{Name: c.Name, Severity: c.Severity, Frequency: c.Frequency})
	}
	return out
}

func toHealthProfileResponse(user *entities.User) domain.HealthProfileResponse {
	prefs := user.DietaryPreferences.Data()
	if prefs == nil {
		prefs = []string{}
	}
	return domain.HealthProfileResponse{
		Allergies:          toEntries(user.Allergies.Data()),
		Diseases:           toEntries(user.Diseases.Data()),
		Medications:        toEntries(user.Medications.Data()),
		Symptoms:           toEntries(user.Symptoms.Data()),
		DietaryPreferences: prefs,
	}
}

func toNotificationPreferencesResponse(p entities.NotificationPreferences) domain.NotificationPreferencesResponse {
	return domain.NotificationPreferencesResponse{
		Email:    p.Email,
		SMS:      p.SMS,
		WhatsApp: p.WhatsApp,
		InApp:    p.InApp,
		Push:     p.Push,
	}
}
