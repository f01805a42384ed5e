package repositories

import (
	"errors"
	"fmt"

	"firmsite/models"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	GetBySlug(slug string, publishedOnly bool) (*models.Post, error)
	GetList(params models.PostListParams, publishedOnly bool) ([]models.Post, int64, error)
	SlugExists(slug string, excludeID uint) (bool, error)
	Update(post *models.Post) error
	ReplaceTags(post *models.Post, tags []models.Tag) error
	Delete(id uint) error
	CountPublishedByTag() (map[uint]int, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author").Preload("Tags").First(&post, id).Error
	return &post, err
}

func (r *postRepository) GetBySlug(slug string, publishedOnly bool) (*models.Post, error) {
	var post models.Post
	query := r.db.Preload("Author").Preload("Tags").Where("slug = ?", slug)
	if publishedOnly {
		query = query.Where("status = ?", models.StatusPublished)
	}
	err := query.First(&post).Error
	return &post, err
}

func (r *postRepository) GetList(params models.PostListParams, publishedOnly bool) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	query := r.db.Model(&models.Post{}).Preload("Author").Preload("Tags")

	if publishedOnly {
		query = query.Where("posts.status = ?", models.StatusPublished)
	} else if params.Status != "" {
		query = query.Where("posts.status = ?", params.Status)
	}

	if params.AuthorID > 0 {
		query = query.Where("author_id = ?", params.AuthorID)
	}

	if params.Featured != nil {
		query = query.Where("featured = ?", *params.Featured)
	}

	if params.TagSlug != "" {
		query = query.Joins("JOIN post_tags ON post_tags.post_id = posts.id").
			Joins("JOIN tags ON tags.id = post_tags.tag_id").
			Where("tags.slug = ?", params.TagSlug)
	}

	query.Count(&total)

	sortBy := params.SortBy
	switch sortBy {
	case "created_at", "updated_at", "published_at", "title":
	default:
		sortBy = "created_at"
	}

	sortOrder := params.SortOrder
	if sortOrder != "asc" {
		sortOrder = "desc"
	}

	query = query.Order(fmt.Sprintf("posts.%s %s", sortBy, sortOrder))

	offset := (params.Page - 1) * params.Limit
	err := query.Offset(offset).Limit(params.Limit).Find(&posts).Error

	return posts, total, err
}

func (r *postRepository) SlugExists(slug string, excludeID uint) (bool, error) {
	var post models.Post
	query := r.db.Select("id").Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *postRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

// ReplaceTags swaps the post's tag associations for the given set. Tag rows
// themselves are never deleted here.
func (r *postRepository) ReplaceTags(post *models.Post, tags []models.Tag) error {
	return r.db.Model(post).Association("Tags").Replace(tags)
}

func (r *postRepository) Delete(id uint) error {
	post := models.Post{ID: id}
	if err := r.db.Model(&post).Association("Tags").Clear(); err != nil {
		return err
	}
	return r.db.Delete(&post).Error
}

func (r *postRepository) CountPublishedByTag() (map[uint]int, error) {
	var results []struct {
		TagID uint
		Count int
	}

	query := `
		SELECT
			pt.tag_id,
			COUNT(*) as count
		FROM post_tags pt
		JOIN posts p ON pt.post_id = p.id
		WHERE p.status = 'published' AND p.deleted_at IS NULL
		GROUP BY pt.tag_id
	`

	err := r.db.Raw(query).Scan(&results).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int)
	for _, result := range results {
		counts[result.TagID] = result.Count
	}

	return counts, nil
}
