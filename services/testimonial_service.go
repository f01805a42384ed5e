package services

import (
	"errors"

	"firmsite/models"
	"firmsite/repositories"

	"gorm.io/gorm"
)

type TestimonialService interface {
	CreateTestimonial(req models.TestimonialRequest) (*models.Testimonial, error)
	GetTestimonials(approvedOnly bool) ([]models.Testimonial, error)
	UpdateTestimonial(id uint, req models.TestimonialRequest) (*models.Testimonial, error)
	DeleteTestimonial(id uint) error
}

type testimonialService struct {
	testimonialRepo repositories.TestimonialRepository
}

func NewTestimonialService(testimonialRepo repositories.TestimonialRepository) TestimonialService {
	return &testimonialService{testimonialRepo: testimonialRepo}
}

func (s *testimonialService) CreateTestimonial(req models.TestimonialRequest) (*models.Testimonial, error) {
	rating := req.Rating
	if rating == 0 {
		rating = 5
	}

	testimonial := &models.Testimonial{
		ClientName:  req.ClientName,
		ClientTitle: req.ClientTitle,
		Quote:       req.Quote,
		Rating:      rating,
		Approved:    req.Approved,
		SortOrder:   req.SortOrder,
	}

	if err := s.testimonialRepo.Create(testimonial); err != nil {
		return nil, models.NewStorageError("create testimonial", err)
	}
	return testimonial, nil
}

func (s *testimonialService) GetTestimonials(approvedOnly bool) ([]models.Testimonial, error) {
	return s.testimonialRepo.GetAll(approvedOnly)
}

func (s *testimonialService) UpdateTestimonial(id uint, req models.TestimonialRequest) (*models.Testimonial, error) {
	testimonial, err := s.testimonialRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Resource: "testimonial", ID: id}
		}
		return nil, models.NewStorageError("get testimonial", err)
	}

	testimonial.ClientName = req.ClientName
	testimonial.ClientTitle = req.ClientTitle
	testimonial.Quote = req.Quote
	if req.Rating != 0 {
		testimonial.Rating = req.Rating
	}
	testimonial.Approved = req.Approved
	testimonial.SortOrder = req.SortOrder

	if err := s.testimonialRepo.Update(testimonial); err != nil {
		return nil, models.NewStorageError("update testimonial", err)
	}
	return testimonial, nil
}

func (s *testimonialService) DeleteTestimonial(id uint) error {
	if _, err := s.testimonialRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Resource: "testimonial", ID: id}
		}
		return models.NewStorageError("get testimonial", err)
	}
	if err := s.testimonialRepo.Delete(id); err != nil {
		return models.NewStorageError("delete testimonial", err)
	}
	return nil
}
