package notification

import (
	"FoodGuard-Backend/domain"
	"FoodGuard-Backend/entities"
	"FoodGuard-Backend/pkg/risk"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"time"
)

type (
	NotificationService interface {
		NotifyRisk(ctx context.Context, user *entities.User, item *entities.FoodItem, verdict risk.Verdict) error
		NotifyExpiry(ctx context.Context, user *entities.User, items []*entities.FoodItem) error
		GetNotifications(ctx context.Context, userID string, unreadOnly bool, page, limit int) ([]domain.NotificationResponse, int64, error)
		MarkAsRead(ctx context.Context, id string, userID string) error
	}

	notificationService struct {
		repo     NotificationRepository
		channels []Channel
		cooldown Cooldown
		logger   *zap.Logger
		now      func() time.Time
	}
)

// NewNotificationService dispatches alerts over channels. cooldown may be nil.
func NewNotificationService(repo NotificationRepository, channels []Channel, cooldown Cooldown, logger *zap.Logger) NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &notificationService{
		repo:     repo,
		channels: channels,
		cooldown: cooldown,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *notificationService) NotifyRisk(ctx context.Context, user *entities.User, item *entities.FoodItem, verdict risk.Verdict) error {
	return s.dispatch(ctx, user, BuildRiskAlert(user, item, verdict))
}

func (s *notificationService) NotifyExpiry(ctx context.Context, user *entities.User, items []*entities.FoodItem) error {
	return s.dispatch(ctx, user, BuildExpiryDigest(user, items, s.now()))
}

// dispatch sends alert over every channel the user enabled. A failing channel
// is logged and the rest still run; the joined errors are returned. When no
// enabled channel delivers, the cooldown window is released so a retry can fire.
func (s *notificationService) dispatch(ctx context.Context, user *entities.User, alert *Alert) error {
	if alert == nil {
		return nil
	}
	alert.CreatedAt = s.now()

	key := cooldownKey(alert)
	claimed := false
	if s.cooldown != nil {
		ok, err := s.cooldown.Allow(ctx, key)
		if err != nil {
			s.logger.Warn("Cooldown unavailable, sending anyway", zap.Error(err))
		} else if !ok {
			s.logger.Debug("Alert suppressed by cooldown",
				zap.String("user_id", alert.UserID),
				zap.String("food_item_id", alert.FoodItemID),
				zap.String("severity", alert.SeverityLabel),
			)
			return nil
		}
		claimed = err == nil
	}

	prefs := user.NotificationPreferences.Data()
	var errs []error
	enabled, delivered := 0, 0
	for _, ch := range s.channels {
		if !ch.Enabled(prefs) {
			continue
		}
		enabled++
		if err := ch.Send(ctx, user, alert); err != nil {
			s.logger.Error("Notification channel failed",
				zap.String("channel", ch.Name()),
				zap.String("user_id", alert.UserID),
				zap.String("type", alert.Type),
				zap.Error(err),
			)
			errs = append(errs, fmt.Errorf("%s: %w", ch.Name(), err))
			continue
		}
		delivered++
	}

	if claimed && enabled > 0 && delivered == 0 {
		if err := s.cooldown.Release(ctx, key); err != nil {
			s.logger.Warn("Cooldown release failed", zap.String("user_id", alert.UserID), zap.Error(err))
		}
	}
	return errors.Join(errs...)
}

func (s *notificationService) GetNotifications(ctx context.Context, userID string, unreadOnly bool, page, limit int) ([]domain.NotificationResponse, int64, error) {
	notifications, count, err := s.repo.GetNotifications(ctx, userID, unreadOnly, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		response = append(response, toNotificationResponse(n))
	}
	return response, count, nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, id string, userID string) error {
	notification, err := s.repo.GetNotificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotificationNotFound
		}
		return err
	}

	if notification.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}
	if notification.IsRead {
		return nil
	}
	return s.repo.MarkAsRead(ctx, id, s.now())
}

func toNotificationResponse(n *entities.Notification) domain.NotificationResponse {
	resp := domain.NotificationResponse{
		ID:        n.ID.String(),
		Type:      n.Type,
		Severity:  n.Severity,
		Title:     n.Title,
		Message:   n.Message,
		Data:      json.RawMessage(n.Data),
		IsRead:    n.IsRead,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
	if n.FoodItemID != nil {
		resp.FoodItemID = n.FoodItemID.String()
	}
	return resp
}
