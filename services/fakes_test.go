package services

import (
	"time"

	"firmsite/models"

	"gorm.io/gorm"
)

// In-memory repository fakes for service tests. They mimic the parts of
// GORM behavior the services depend on: copy-on-read, ErrRecordNotFound,
// and ErrDuplicatedKey on unique-slug violations.

type fakePostRepo struct {
	posts    map[uint]*models.Post
	nextID   uint
	writes   int
	lastList models.PostListParams
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[uint]*models.Post{}}
}

func (r *fakePostRepo) Create(post *models.Post) error {
	for _, p := range r.posts {
		if p.Slug == post.Slug {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	post.ID = r.nextID
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	cp := *post
	r.posts[post.ID] = &cp
	r.writes++
	return nil
}

func (r *fakePostRepo) GetByID(id uint) (*models.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return &models.Post{}, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePostRepo) GetBySlug(slug string, publishedOnly bool) (*models.Post, error) {
	for _, p := range r.posts {
		if p.Slug != slug {
			continue
		}
		if publishedOnly && p.Status != models.StatusPublished {
			continue
		}
		cp := *p
		return &cp, nil
	}
	return &models.Post{}, gorm.ErrRecordNotFound
}

func (r *fakePostRepo) GetList(params models.PostListParams, publishedOnly bool) ([]models.Post, int64, error) {
	r.lastList = params
	var out []models.Post
	for _, p := range r.posts {
		if publishedOnly && p.Status != models.StatusPublished {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *fakePostRepo) SlugExists(slug string, excludeID uint) (bool, error) {
	for _, p := range r.posts {
		if p.Slug == slug && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePostRepo) Update(post *models.Post) error {
	if _, ok := r.posts[post.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	for _, p := range r.posts {
		if p.Slug == post.Slug && p.ID != post.ID {
			return gorm.ErrDuplicatedKey
		}
	}
	cp := *post
	r.posts[post.ID] = &cp
	r.writes++
	return nil
}

func (r *fakePostRepo) ReplaceTags(post *models.Post, tags []models.Tag) error {
	stored, ok := r.posts[post.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Tags = append([]models.Tag(nil), tags...)
	r.writes++
	return nil
}

func (r *fakePostRepo) Delete(id uint) error {
	delete(r.posts, id)
	r.writes++
	return nil
}

func (r *fakePostRepo) CountPublishedByTag() (map[uint]int, error) {
	counts := map[uint]int{}
	for _, p := range r.posts {
		if p.Status != models.StatusPublished {
			continue
		}
		for _, tag := range p.Tags {
			counts[tag.ID]++
		}
	}
	return counts, nil
}

type fakeTagRepo struct {
	tags    map[string]*models.Tag // keyed by slug
	nextID  uint
	creates int
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: map[string]*models.Tag{}}
}

func (r *fakeTagRepo) Create(tag *models.Tag) error {
	if _, ok := r.tags[tag.Slug]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.nextID++
	tag.ID = r.nextID
	tag.CreatedAt = time.Now()
	cp := *tag
	r.tags[tag.Slug] = &cp
	r.creates++
	return nil
}

func (r *fakeTagRepo) GetBySlug(slug string) (*models.Tag, error) {
	tag, ok := r.tags[slug]
	if !ok {
		return &models.Tag{}, gorm.ErrRecordNotFound
	}
	cp := *tag
	return &cp, nil
}

func (r *fakeTagRepo) GetByID(id uint) (*models.Tag, error) {
	for _, tag := range r.tags {
		if tag.ID == id {
			cp := *tag
			return &cp, nil
		}
	}
	return &models.Tag{}, gorm.ErrRecordNotFound
}

func (r *fakeTagRepo) GetAll() ([]models.Tag, error) {
	var out []models.Tag
	for _, tag := range r.tags {
		out = append(out, *tag)
	}
	return out, nil
}

func (r *fakeTagRepo) Update(tag *models.Tag) error {
	cp := *tag
	r.tags[tag.Slug] = &cp
	return nil
}

func (r *fakeTagRepo) BulkUpdate(tags []models.Tag) error {
	for _, tag := range tags {
		cp := tag
		r.tags[tag.Slug] = &cp
	}
	return nil
}
