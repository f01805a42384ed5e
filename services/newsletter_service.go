package services

import (
	"errors"
	"strings"
	"time"

	"firmsite/captcha"
	"firmsite/models"
	"firmsite/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsletterService interface {
	Subscribe(req models.SubscribeRequest, remoteIP string) (*models.NewsletterSubscriber, error)
	Unsubscribe(token string) error
	GetSubscribers() ([]models.NewsletterSubscriber, error)
}

type newsletterService struct {
	newsletterRepo repositories.NewsletterRepository
	verifier       captcha.Verifier
}

func NewNewsletterService(newsletterRepo repositories.NewsletterRepository, verifier captcha.Verifier) NewsletterService {
	return &newsletterService{
		newsletterRepo: newsletterRepo,
		verifier:       verifier,
	}
}

// Subscribe is idempotent per email: an existing active subscription is
// returned as-is, and an unsubscribed one is reactivated with a fresh token.
func (s *newsletterService) Subscribe(req models.SubscribeRequest, remoteIP string) (*models.NewsletterSubscriber, error) {
	if err := s.verifier.Verify(req.CaptchaToken, remoteIP); err != nil {
		return nil, models.NewValidationError("captcha verification failed", map[string]string{
			"captcha_token": "invalid captcha",
		})
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.newsletterRepo.GetByEmail(email)
	if err == nil {
		if existing.UnsubscribedAt == nil {
			return existing, nil
		}
		existing.UnsubscribedAt = nil
		existing.UnsubscribeToken = uuid.NewString()
		if err := s.newsletterRepo.Update(existing); err != nil {
			return nil, models.NewStorageError("reactivate subscriber", err)
		}
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewStorageError("get subscriber", err)
	}

	subscriber := &models.NewsletterSubscriber{
		Email:            email,
		UnsubscribeToken: uuid.NewString(),
	}
	if err := s.newsletterRepo.Create(subscriber); err != nil {
		return nil, models.NewStorageError("create subscriber", err)
	}
	return subscriber, nil
}

func (s *newsletterService) Unsubscribe(token string) error {
	subscriber, err := s.newsletterRepo.GetByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Resource: "subscription"}
		}
		return models.NewStorageError("get subscriber", err)
	}

	if subscriber.UnsubscribedAt != nil {
		return nil
	}

	now := time.Now()
	subscriber.UnsubscribedAt = &now
	if err := s.newsletterRepo.Update(subscriber); err != nil {
		return models.NewStorageError("update subscriber", err)
	}
	return nil
}

func (s *newsletterService) GetSubscribers() ([]models.NewsletterSubscriber, error) {
	return s.newsletterRepo.GetActive()
}
