package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister                = "user registered successfully"
	MessageSuccessLogin                   = "login successful"
	MessageSuccessGetDetailUser           = "user retrieved successfully"
	MessageSuccessUpdateHealthProfile     = "health profile updated successfully"
	MessageSuccessUpdateNotificationPrefs = "notification preferences updated successfully"

	MessageFailedRegister                = "failed to register user"
	MessageFailedLogin                   = "failed to login"
	MessageFailedGetDetailUser           = "failed to get user"
	MessageFailedUpdateHealthProfile     = "failed to update health profile"
	MessageFailedUpdateNotificationPrefs = "failed to update notification preferences"

	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrCredentialsNotMatch = errors.New("credentials do not match")
	ErrHashPassword        = errors.New("failed to hash password")
)

type (
	UserRegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Phone    string `json:"phone" validate:"omitempty,e164"`
	}

	UserRegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	UserLoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	UserLoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateHealthProfileRequest struct {
		Allergies          ConditionList `json:"allergies"`
		Diseases           ConditionList `json:"diseases"`
		Medications        ConditionList `json:"medications"`
		Symptoms           ConditionList `json:"symptoms"`
		DietaryPreferences []string      `json:"dietaryPreferences" validate:"dive,dietary_preference"`
	}

	HealthProfileResponse struct {
		Allergies          []ConditionEntry `json:"allergies"`
		Diseases           []ConditionEntry `json:"diseases"`
		Medications        []ConditionEntry `json:"medications"`
		Symptoms           []ConditionEntry `json:"symptoms"`
		DietaryPreferences []string         `json:"dietaryPreferences"`
	}

	NotificationPreferencesRequest struct {
		Email    *bool `json:"email"`
		SMS      *bool `json:"sms"`
		WhatsApp *bool `json:"whatsapp"`
		InApp    *bool `json:"inApp"`
		Push     *bool `json:"push"`
	}

	NotificationPreferencesResponse struct {
		Email    bool `json:"email"`
		SMS      bool `json:"sms"`
		WhatsApp bool `json:"whatsapp"`
		InApp    bool `json:"inApp"`
		Push     bool `json:"push"`
	}

	UserMeResponse struct {
		ID                      string                          `json:"id"`
		Name                    string                          `json:"name"`
		Email                   string                          `json:"email"`
		Phone                   string                          `json:"phone,omitempty"`
		HealthProfile           HealthProfileResponse           `json:"healthProfile"`
		NotificationPreferences NotificationPreferencesResponse `json:"notificationPreferences"`
		CreatedAt               time.Time                       `json:"created_at"`
	}
)
