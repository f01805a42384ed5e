package repositories

import (
	"firmsite/models"

	"gorm.io/gorm"
)

type TestimonialRepository interface {
	Create(testimonial *models.Testimonial) error
	GetByID(id uint) (*models.Testimonial, error)
	GetAll(approvedOnly bool) ([]models.Testimonial, error)
	Update(testimonial *models.Testimonial) error
	Delete(id uint) error
}

type testimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &testimonialRepository{db: db}
}

func (r *testimonialRepository) Create(testimonial *models.Testimonial) error {
	return r.db.Create(testimonial).Error
}

func (r *testimonialRepository) GetByID(id uint) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	err := r.db.First(&testimonial, id).Error
	return &testimonial, err
}

func (r *testimonialRepository) GetAll(approvedOnly bool) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	query := r.db.Order("sort_order asc, created_at desc")
	if approvedOnly {
		query = query.Where("approved = ?", true)
	}
	err := query.Find(&testimonials).Error
	return testimonials, err
}

func (r *testimonialRepository) Update(testimonial *models.Testimonial) error {
	return r.db.Save(testimonial).Error
}

func (r *testimonialRepository) Delete(id uint) error {
	return r.db.Delete(&models.Testimonial{}, id).Error
}
