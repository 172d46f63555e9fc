package notification

import (
	"FoodGuard-Backend/entities"
	"FoodGuard-Backend/internal/utils/mailing"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"html/template"
)

// Channel delivers an alert over one medium when the user has opted in.
type Channel interface {
	Name() string
	Enabled(prefs entities.NotificationPreferences) bool
	Send(ctx context.Context, user *entities.User, alert *Alert) error
}

type inAppChannel struct {
	repo NotificationRepository
}

func NewInAppChannel(repo NotificationRepository) Channel {
	return &inAppChannel{repo: repo}
}

func (c *inAppChannel) Name() string { return "in_app" }

func (c *inAppChannel) Enabled(prefs entities.NotificationPreferences) bool { return prefs.InApp }

func (c *inAppChannel) Send(ctx context.Context, user *entities.User, alert *Alert) error {
	data, err := json.Marshal(alert)
	if err != nil {
		return err
	}

	notification := &entities.Notification{
		ID:       uuid.New(),
		UserID:   user.ID,
		Type:     alert.Type,
		Severity: alert.SeverityLabel,
		Title:    alert.Title,
		Message:  alert.Message,
		Data:     datatypes.JSON(data),
	}
	if alert.FoodItemID != "" {
		if id, err := uuid.Parse(alert.FoodItemID); err == nil {
			notification.FoodItemID = &id
		}
	}
	return c.repo.CreateNotification(ctx, notification)
}

var emailTemplate = template.Must(template.New("alert").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <h2>{{.Title}}</h2>
  <p><strong>{{.SeverityLabel}}</strong></p>
  <p>{{.Message}}</p>
  {{if .FoodItems}}
  <ul>
    {{range .FoodItems}}<li>{{.Name}}{{if .Brand}} ({{.Brand}}){{end}}{{if .ExpiryDate}}, expires {{.ExpiryDate.Format "2006-01-02"}}{{end}}</li>
    {{end}}
  </ul>
  {{end}}
  {{if .Recommendations}}
  <h3>Recommendations</h3>
  <ul>
    {{range .Recommendations}}<li>{{.}}</li>
    {{end}}
  </ul>
  {{end}}
  <p style="font-size: 12px; color: #777;">You receive this email because email alerts are enabled in your FoodGuard notification settings.</p>
</body>
</html>`))

type emailChannel struct {
	mailer mailing.Mailer
}

func NewEmailChannel(mailer mailing.Mailer) Channel {
	return &emailChannel{mailer: mailer}
}

func (c *emailChannel) Name() string { return "email" }

func (c *emailChannel) Enabled(prefs entities.NotificationPreferences) bool { return prefs.Email }

func (c *emailChannel) Send(_ context.Context, user *entities.User, alert *Alert) error {
	if user.Email == "" {
		return fmt.Errorf("user %s has no email address", user.ID)
	}
	body, err := RenderEmail(alert)
	if err != nil {
		return err
	}
	return c.mailer.SendMail(user.Email, fmt.Sprintf("[FoodGuard] %s", alert.Title), body)
}

func RenderEmail(alert *Alert) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, alert); err != nil {
		return "", fmt.Errorf("failed to render email: %w", err)
	}
	return buf.String(), nil
}

// externalChannel forwards to the delivery subsystem for sms, whatsapp and push.
type externalChannel struct {
	publisher Publisher
}

func NewExternalChannel(publisher Publisher) Channel {
	return &externalChannel{publisher: publisher}
}

func (c *externalChannel) Name() string { return "external" }

func (c *externalChannel) Enabled(prefs entities.NotificationPreferences) bool {
	return len(externalChannels(prefs)) > 0
}

func (c *externalChannel) Send(ctx context.Context, user *entities.User, alert *Alert) error {
	routed := *alert
	routed.Channels = externalChannels(user.NotificationPreferences.Data())
	return c.publisher.Publish(ctx, &routed)
}

func externalChannels(prefs entities.NotificationPreferences) []string {
	var out []string
	if prefs.SMS {
		out = append(out, "sms")
	}
	if prefs.WhatsApp {
		out = append(out, "whatsapp")
	}
	if prefs.Push {
		out = append(out, "push")
	}
	return out
}
