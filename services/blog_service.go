package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"firmsite/models"
	"firmsite/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// slugWriteAttempts bounds the duplicate-key retry on post writes. The
// application-level uniqueness check is a pre-check only; the unique index
// on posts.slug is the real backstop, and a concurrent writer landing the
// same slug first surfaces as gorm.ErrDuplicatedKey here.
const slugWriteAttempts = 3

type BlogService interface {
	CreatePost(req models.CreatePostRequest, authorID uint) (*models.Post, error)
	GetPost(id uint) (*models.Post, error)
	GetPostBySlug(slug string, publishedOnly bool) (*models.Post, error)
	GetPosts(params models.PostListParams, publishedOnly bool) ([]models.Post, int64, error)
	UpdatePost(id uint, req models.UpdatePostRequest) (*models.Post, error)
	DeletePost(id uint) error
}

type blogService struct {
	postRepo repositories.PostRepository
	tagRepo  repositories.TagRepository
	log      *zap.Logger
}

func NewBlogService(postRepo repositories.PostRepository, tagRepo repositories.TagRepository, log *zap.Logger) BlogService {
	return &blogService{
		postRepo: postRepo,
		tagRepo:  tagRepo,
		log:      log,
	}
}

func (s *blogService) CreatePost(req models.CreatePostRequest, authorID uint) (*models.Post, error) {
	fields := map[string]string{}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(req.Content) == "" {
		fields["content"] = "content is required"
	}
	if len(fields) > 0 {
		return nil, models.NewValidationError("missing required fields", fields)
	}

	candidate := GenerateSlug(req.Slug)
	if candidate == "" {
		candidate = GenerateSlug(title)
	}
	if candidate == "" {
		return nil, models.NewValidationError("title must contain at least one letter or digit", map[string]string{
			"title": "cannot derive a slug from this title",
		})
	}

	status := models.NormalizeStatus(req.Status)
	if !models.ValidStatus(status) {
		status = models.StatusDraft
	}

	tags, err := s.reconcileTags(req.Tags)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		AuthorID:        authorID,
		Title:           title,
		Excerpt:         req.Excerpt,
		Content:         req.Content,
		CoverImage:      req.CoverImage,
		Status:          status,
		Featured:        req.Featured,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		FocusKeyword:    req.FocusKeyword,
		OGImage:         req.OGImage,
		Tags:            dedupeTags(tags),
	}

	if status == models.StatusPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	for attempt := 0; attempt < slugWriteAttempts; attempt++ {
		slug, err := s.resolveUniqueSlug(candidate, 0)
		if err != nil {
			return nil, models.NewStorageError("resolve slug", err)
		}
		post.Slug = slug

		err = s.postRepo.Create(post)
		if err == nil {
			return s.loadPost(post.ID)
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewStorageError("create post", err)
		}
		s.log.Warn("slug collided on insert, retrying",
			zap.String("slug", slug),
			zap.Int("attempt", attempt+1))
	}

	return nil, models.NewStorageError("create post", fmt.Errorf("could not allocate a unique slug for %q", candidate))
}

func (s *blogService) GetPost(id uint) (*models.Post, error) {
	return s.loadPost(id)
}

func (s *blogService) GetPostBySlug(slug string, publishedOnly bool) (*models.Post, error) {
	post, err := s.postRepo.GetBySlug(slug, publishedOnly)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Resource: "post"}
		}
		return nil, models.NewStorageError("get post", err)
	}
	return post, nil
}

func (s *blogService) GetPosts(params models.PostListParams, publishedOnly bool) ([]models.Post, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}
	params.Status = string(models.NormalizeStatus(models.PostStatus(params.Status)))
	return s.postRepo.GetList(params, publishedOnly)
}

func (s *blogService) UpdatePost(id uint, req models.UpdatePostRequest) (*models.Post, error) {
	post, err := s.loadPost(id)
	if err != nil {
		return nil, err
	}

	slugChanged := false
	candidate := ""
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, models.NewValidationError("title cannot be empty", map[string]string{
				"title": "title is required",
			})
		}
		if title != post.Title {
			candidate = GenerateSlug(title)
			if candidate == "" {
				return nil, models.NewValidationError("title must contain at least one letter or digit", map[string]string{
					"title": "cannot derive a slug from this title",
				})
			}
			slugChanged = true
		}
		post.Title = title
	}

	// A custom slug wins over the title-derived one, exactly as on create.
	if req.Slug != nil && strings.TrimSpace(*req.Slug) != "" {
		custom := GenerateSlug(*req.Slug)
		if custom == "" {
			return nil, models.NewValidationError("slug must contain at least one letter or digit", map[string]string{
				"slug": "cannot derive a slug from this value",
			})
		}
		if custom != post.Slug {
			candidate = custom
			slugChanged = true
		} else {
			candidate = ""
			slugChanged = false
		}
	}

	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return nil, models.NewValidationError("content cannot be empty", map[string]string{
				"content": "content is required",
			})
		}
		post.Content = *req.Content
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.CoverImage != nil {
		post.CoverImage = *req.CoverImage
	}
	if req.Featured != nil {
		post.Featured = *req.Featured
	}
	if req.MetaTitle != nil {
		post.MetaTitle = *req.MetaTitle
	}
	if req.MetaDescription != nil {
		post.MetaDescription = *req.MetaDescription
	}
	if req.FocusKeyword != nil {
		post.FocusKeyword = *req.FocusKeyword
	}
	if req.OGImage != nil {
		post.OGImage = *req.OGImage
	}

	if req.Status != nil {
		if status := models.NormalizeStatus(*req.Status); models.ValidStatus(status) {
			// The publish timestamp is written once, on the first transition
			// into published, and preserved through archive/republish cycles.
			if status == models.StatusPublished && post.Status != models.StatusPublished && post.PublishedAt == nil {
				now := time.Now()
				post.PublishedAt = &now
			}
			post.Status = status
		}
	}

	if req.Tags != nil {
		tags, err := s.reconcileTags(*req.Tags)
		if err != nil {
			return nil, err
		}
		deduped := dedupeTags(tags)
		if err := s.postRepo.ReplaceTags(post, deduped); err != nil {
			return nil, models.NewStorageError("replace tags", err)
		}
		post.Tags = deduped
	}

	for attempt := 0; attempt < slugWriteAttempts; attempt++ {
		if slugChanged {
			slug, err := s.resolveUniqueSlug(candidate, post.ID)
			if err != nil {
				return nil, models.NewStorageError("resolve slug", err)
			}
			post.Slug = slug
		}

		err = s.postRepo.Update(post)
		if err == nil {
			return s.loadPost(post.ID)
		}
		if !slugChanged || !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewStorageError("update post", err)
		}
		s.log.Warn("slug collided on update, retrying",
			zap.Uint("post_id", post.ID),
			zap.String("slug", post.Slug),
			zap.Int("attempt", attempt+1))
	}

	return nil, models.NewStorageError("update post", fmt.Errorf("could not allocate a unique slug for %q", candidate))
}

func (s *blogService) DeletePost(id uint) error {
	_, err := s.loadPost(id)
	if err != nil {
		return err
	}
	if err := s.postRepo.Delete(id); err != nil {
		return models.NewStorageError("delete post", err)
	}
	return nil
}

func (s *blogService) loadPost(id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Resource: "post", ID: id}
		}
		return nil, models.NewStorageError("get post", err)
	}
	return post, nil
}

// resolveUniqueSlug returns the first of candidate, candidate-1, candidate-2,
// ... that no other post holds at check time. excludeID lets an update keep
// its own slug without counting it as a collision.
func (s *blogService) resolveUniqueSlug(candidate string, excludeID uint) (string, error) {
	slug := candidate
	for n := 1; ; n++ {
		exists, err := s.postRepo.SlugExists(slug, excludeID)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", candidate, n)
	}
}

// reconcileTags maps free-text tag names to persisted tags, creating any
// that do not yet exist. Names are trimmed, blanks skipped, and names that
// normalize to the same slug resolve to the same tag. Output order follows
// input order and may repeat a tag.
func (s *blogService) reconcileTags(names []string) ([]models.Tag, error) {
	var tags []models.Tag

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		slug := GenerateSlug(name)
		if slug == "" {
			continue
		}

		tag, err := s.tagRepo.GetBySlug(slug)
		if err == nil {
			tags = append(tags, *tag)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewStorageError("get tag", err)
		}

		newTag := &models.Tag{Name: name, Slug: slug}
		if err := s.tagRepo.Create(newTag); err != nil {
			// Lost a race to a concurrent writer; the row is there now.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				tag, err = s.tagRepo.GetBySlug(slug)
				if err != nil {
					return nil, models.NewStorageError("get tag", err)
				}
				tags = append(tags, *tag)
				continue
			}
			return nil, models.NewStorageError("create tag", err)
		}
		tags = append(tags, *newTag)
	}

	return tags, nil
}

func dedupeTags(tags []models.Tag) []models.Tag {
	seen := make(map[uint]bool, len(tags))
	out := tags[:0:0]
	for _, tag := range tags {
		if seen[tag.ID] {
			continue
		}
		seen[tag.ID] = true
		out = append(out, tag)
	}
	return out
}
