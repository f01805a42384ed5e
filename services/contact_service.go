package services

import (
	"fmt"
	"strings"
	"time"

	"firmsite/captcha"
	"firmsite/mailer"
	"firmsite/models"
	"firmsite/repositories"

	"go.uber.org/zap"
)

type ContactService interface {
	SubmitContact(req models.ContactRequest, remoteIP string) (*models.ContactMessage, error)
	SubmitAppointment(req models.AppointmentRequest, remoteIP string) (*models.ContactMessage, error)
	GetMessages(kind models.ContactKind, page, limit int) ([]models.ContactMessage, int64, error)
}

type contactService struct {
	contactRepo repositories.ContactRepository
	mail        mailer.Mailer
	verifier    captcha.Verifier
	notifyTo    string
	sendTimeout time.Duration
	log         *zap.Logger
}

func NewContactService(
	contactRepo repositories.ContactRepository,
	mail mailer.Mailer,
	verifier captcha.Verifier,
	notifyTo string,
	sendTimeout time.Duration,
	log *zap.Logger,
) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		mail:        mail,
		verifier:    verifier,
		notifyTo:    notifyTo,
		sendTimeout: sendTimeout,
		log:         log,
	}
}

func (s *contactService) SubmitContact(req models.ContactRequest, remoteIP string) (*models.ContactMessage, error) {
	if err := s.verifier.Verify(req.CaptchaToken, remoteIP); err != nil {
		return nil, models.NewValidationError("captcha verification failed", map[string]string{
			"captcha_token": "invalid captcha",
		})
	}

	message := &models.ContactMessage{
		Kind:    models.KindContact,
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Subject: strings.TrimSpace(req.Subject),
		Message: req.Message,
	}

	if err := s.contactRepo.Create(message); err != nil {
		return nil, models.NewStorageError("create contact message", err)
	}

	s.notify(message)
	return message, nil
}

func (s *contactService) SubmitAppointment(req models.AppointmentRequest, remoteIP string) (*models.ContactMessage, error) {
	if err := s.verifier.Verify(req.CaptchaToken, remoteIP); err != nil {
		return nil, models.NewValidationError("captcha verification failed", map[string]string{
			"captcha_token": "invalid captcha",
		})
	}

	message := &models.ContactMessage{
		Kind:    models.KindAppointment,
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Subject: strings.TrimSpace(req.Service),
		Message: req.Message,
	}

	if req.PreferredDate != "" {
		// Date only; appointments are confirmed by phone, not booked to a slot.
		if parsed, err := time.Parse("2006-01-02", req.PreferredDate); err == nil {
			message.PreferredDate = &parsed
		} else {
			return nil, models.NewValidationError("invalid preferred date", map[string]string{
				"preferred_date": "expected YYYY-MM-DD",
			})
		}
	}

	if err := s.contactRepo.Create(message); err != nil {
		return nil, models.NewStorageError("create appointment request", err)
	}

	s.notify(message)
	return message, nil
}

func (s *contactService) GetMessages(kind models.ContactKind, page, limit int) ([]models.ContactMessage, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	return s.contactRepo.GetList(kind, page, limit)
}

// notify races the email send against a fixed wall-clock timer so a slow
// SMTP hop never stalls the request. The submission is already persisted;
// a lost or late notification only loses the email, not the message.
func (s *contactService) notify(message *models.ContactMessage) {
	if s.notifyTo == "" {
		return
	}

	subject := fmt.Sprintf("New %s from %s", message.Kind, message.Name)
	body := s.notificationBody(message)

	done := make(chan error, 1)
	go func() {
		done <- s.mail.Send(s.notifyTo, subject, body)
	}()

	select {
	case err := <-done:
		if err != nil {
			s.log.Error("notification email failed",
				zap.Uint("message_id", message.ID),
				zap.Error(err))
			return
		}
		now := time.Now()
		message.NotifiedAt = &now
		if err := s.contactRepo.Update(message); err != nil {
			s.log.Warn("could not record notification time",
				zap.Uint("message_id", message.ID),
				zap.Error(err))
		}
	case <-time.After(s.sendTimeout):
		s.log.Warn("notification email timed out",
			zap.Uint("message_id", message.ID),
			zap.Duration("timeout", s.sendTimeout))
	}
}

func (s *contactService) notificationBody(message *models.ContactMessage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", message.Name)
	fmt.Fprintf(&b, "Email: %s\n", message.Email)
	if message.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", message.Phone)
	}
	if message.Subject != "" {
		fmt.Fprintf(&b, "Subject: %s\n", message.Subject)
	}
	if message.PreferredDate != nil {
		fmt.Fprintf(&b, "Preferred date: %s\n", message.PreferredDate.Format("2006-01-02"))
	}
	fmt.Fprintf(&b, "\n%s\n", message.Message)
	return b.String()
}
