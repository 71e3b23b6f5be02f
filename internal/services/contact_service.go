package services

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"softwarehouse.dev/internal/config"
	"softwarehouse.dev/internal/mail"
	"softwarehouse.dev/internal/models"
)

// FieldError describes a single contact-form rule violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ContactService validates contact submissions and relays them by email
type ContactService struct {
	mailer   mail.Mailer
	validate *validator.Validate
	notifyTo string
	contact  config.ContactConfig
	logger   *slog.Logger
}

// NewContactService creates a new ContactService
func NewContactService(mailer mail.Mailer, cfg *config.Config, logger *slog.Logger) *ContactService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// Report violations under the JSON field names the client submitted.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &ContactService{
		mailer:   mailer,
		validate: validate,
		notifyTo: cfg.SMTP.NotifyTo,
		contact:  cfg.Contact,
		logger:   logger,
	}
}

// Validate trims the submission in place and returns any rule violations.
func (s *ContactService) Validate(msg *models.ContactMessage) []FieldError {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Message = strings.TrimSpace(msg.Message)

	err := s.validate.Struct(msg)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: "invalid submission"}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return out
}

// Send delivers the business notification and then the auto-reply to the
// sender. Both must succeed for the submission to count as sent; if the
// auto-reply fails after the notification went out, the error still fails
// the request but the log records the partial delivery.
func (s *ContactService) Send(ctx context.Context, msg models.ContactMessage) error {
	notify, err := mail.NotifyMessage(s.notifyTo, msg)
	if err != nil {
		return err
	}
	if err := s.mailer.Send(ctx, notify); err != nil {
		return fmt.Errorf("notification email: %w", err)
	}

	reply, err := mail.AutoReplyMessage(msg)
	if err != nil {
		return err
	}
	if err := s.mailer.Send(ctx, reply); err != nil {
		s.logger.Warn("auto-reply failed after notification was delivered",
			"to", msg.Email, "error", err)
		return fmt.Errorf("auto-reply email: %w", err)
	}
	return nil
}

// Info returns the public contact metadata
func (s *ContactService) Info() models.ContactInfo {
	return models.ContactInfo{
		Email:   s.contact.Email,
		Phone:   s.contact.Phone,
		Address: s.contact.Address,
		Social: models.SocialLinks{
			LinkedIn: s.contact.LinkedIn,
			Twitter:  s.contact.Twitter,
			GitHub:   s.contact.GitHub,
		},
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "email must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
