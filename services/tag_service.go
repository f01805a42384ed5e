package services

import (
	"errors"
	"math"
	"time"

	"firmsite/models"
	"firmsite/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type TagService interface {
	GetTags() ([]models.Tag, error)
	GetTag(id uint) (*models.Tag, error)
	RefreshTagStats() error
}

type tagService struct {
	tagRepo  repositories.TagRepository
	postRepo repositories.PostRepository
	log      *zap.Logger
}

func NewTagService(tagRepo repositories.TagRepository, postRepo repositories.PostRepository, log *zap.Logger) TagService {
	return &tagService{
		tagRepo:  tagRepo,
		postRepo: postRepo,
		log:      log,
	}
}

func (s *tagService) GetTags() ([]models.Tag, error) {
	return s.tagRepo.GetAll()
}

func (s *tagService) GetTag(id uint) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Resource: "tag", ID: id}
		}
		return nil, err
	}
	return tag, nil
}

// RefreshTagStats recomputes usage counts from published posts and a
// recency-weighted trending score per tag. Runs on a cron schedule.
func (s *tagService) RefreshTagStats() error {
	tagCounts, err := s.postRepo.CountPublishedByTag()
	if err != nil {
		return err
	}

	allTags, err := s.tagRepo.GetAll()
	if err != nil {
		return err
	}
	if len(allTags) == 0 {
		return nil
	}

	for i := range allTags {
		allTags[i].UsageCount = tagCounts[allTags[i].ID]

		daysSinceCreated := time.Since(allTags[i].CreatedAt).Hours() / 24
		if daysSinceCreated > 0 {
			allTags[i].TrendingScore = float64(allTags[i].UsageCount) / math.Log(daysSinceCreated+1)
		} else {
			allTags[i].TrendingScore = float64(allTags[i].UsageCount)
		}
	}

	if err := s.tagRepo.BulkUpdate(allTags); err != nil {
		return err
	}

	s.log.Debug("tag stats refreshed", zap.Int("tags", len(allTags)))
	return nil
}
