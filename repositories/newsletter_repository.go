package repositories

import (
	"firmsite/models"

	"gorm.io/gorm"
)

type NewsletterRepository interface {
	Create(subscriber *models.NewsletterSubscriber) error
	GetByEmail(email string) (*models.NewsletterSubscriber, error)
	GetByToken(token string) (*models.NewsletterSubscriber, error)
	GetActive() ([]models.NewsletterSubscriber, error)
	Update(subscriber *models.NewsletterSubscriber) error
}

type newsletterRepository struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) Create(subscriber *models.NewsletterSubscriber) error {
	return r.db.Create(subscriber).Error
}

func (r *newsletterRepository) GetByEmail(email string) (*models.NewsletterSubscriber, error) {
	var subscriber models.NewsletterSubscriber
	err := r.db.Where("email = ?", email).First(&subscriber).Error
	return &subscriber, err
}

func (r *newsletterRepository) GetByToken(token string) (*models.NewsletterSubscriber, error) {
	var subscriber models.NewsletterSubscriber
	err := r.db.Where("unsubscribe_token = ?", token).First(&subscriber).Error
	return &subscriber, err
}

func (r *newsletterRepository) GetActive() ([]models.NewsletterSubscriber, error) {
	var subscribers []models.NewsletterSubscriber
	err := r.db.Where("unsubscribed_at IS NULL").Order("created_at asc").Find(&subscribers).Error
	return subscribers, err
}

func (r *newsletterRepository) Update(subscriber *models.NewsletterSubscriber) error {
	return r.db.Save(subscriber).Error
}
