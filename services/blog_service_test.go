package services

import (
	"testing"

	"firmsite/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestBlogService() (BlogService, *fakePostRepo, *fakeTagRepo) {
	postRepo := newFakePostRepo()
	tagRepo := newFakeTagRepo()
	return NewBlogService(postRepo, tagRepo, zap.NewNop()), postRepo, tagRepo
}

func TestCreatePostRequiresTitleAndContent(t *testing.T) {
	svc, postRepo, tagRepo := newTestBlogService()

	cases := []models.CreatePostRequest{
		{Title: "", Content: "body"},
		{Title: "Title", Content: ""},
		{Title: "   ", Content: "   "},
	}

	for _, req := range cases {
		_, err := svc.CreatePost(req, 1)
		require.Error(t, err)
		var validationErr models.ErrorValidation
		require.ErrorAs(t, err, &validationErr)
	}

	assert.Zero(t, postRepo.writes, "validation failures must not write")
	assert.Zero(t, tagRepo.creates, "validation failures must not create tags")
}

func TestCreatePostRejectsUnsluggableTitle(t *testing.T) {
	svc, postRepo, _ := newTestBlogService()

	_, err := svc.CreatePost(models.CreatePostRequest{Title: "🎉🎉", Content: "body"}, 1)
	var validationErr models.ErrorValidation
	require.ErrorAs(t, err, &validationErr)
	assert.Zero(t, postRepo.writes)
}

func TestCreatePostDefaults(t *testing.T) {
	svc, _, _ := newTestBlogService()

	post, err := svc.CreatePost(models.CreatePostRequest{
		Title:   "Year-End Tax Checklist",
		Content: "body",
		Status:  "bogus",
	}, 7)
	require.NoError(t, err)

	assert.Equal(t, "year-end-tax-checklist", post.Slug)
	assert.Equal(t, models.StatusDraft, post.Status)
	assert.Nil(t, post.PublishedAt)
	assert.Equal(t, uint(7), post.AuthorID)
}

func TestCreatePostPublishedSetsTimestamp(t *testing.T) {
	svc, _, _ := newTestBlogService()

	post, err := svc.CreatePost(models.CreatePostRequest{
		Title:   "GST Update",
		Content: "body",
		Status:  models.StatusPublished,
	}, 1)
	require.NoError(t, err)
	require.NotNil(t, post.PublishedAt)
}

func TestCreatePostAcceptsUppercaseStatus(t *testing.T) {
	svc, _, _ := newTestBlogService()

	post, err := svc.CreatePost(models.CreatePostRequest{
		Title:   "Spec Cased Status",
		Content: "body",
		Status:  "PUBLISHED",
	}, 1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPublished, post.Status)
	require.NotNil(t, post.PublishedAt)
}

func TestUpdatePostAcceptsUppercaseStatus(t *testing.T) {
	svc, _, _ := newTestBlogService()

	post, err := svc.CreatePost(models.CreatePostRequest{Title: "Cased Update", Content: "body"}, 1)
	require.NoError(t, err)
	require.Nil(t, post.PublishedAt)

	status := models.PostStatus("PUBLISHED")
	updated, err := svc.UpdatePost(post.ID, models.UpdatePostRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPublished, updated.Status)
	require.NotNil(t, updated.PublishedAt)
}

func TestGetPostsNormalizesStatusFilter(t *testing.T) {
	svc, postRepo, _ := newTestBlogService()

	_, _, err := svc.GetPosts(models.PostListParams{Status: "PUBLISHED"}, false)
	require.NoError(t, err)
	assert.Equal(t, "published", postRepo.lastList.Status)
}

func TestCreatePostCustomSlug(t *testing.T) {
	svc, _, _ := newTestBlogService()

	post, err := svc.CreatePost(models.CreatePostRequest{
		Title:   "Some Long Marketing Title",
		Content: "body",
		Slug:    "Short Slug",
	}, 1)
	require.NoError(t, err)
	assert.Equal(t, "short-slug", post.Slug)
}

func TestCreatePostDuplicateTitleGetsSuffix(t *testing.T) {
	svc, _, _ := newTestBlogService()

	first, err := svc.CreatePost(models.CreatePostRequest{Title: "Duplicate Title", Content: "body"}, 1)
	require.NoError(t, err)
	assert.Equal(t, "duplicate-title", first.Slug)

	second, err := svc.CreatePost(models.CreatePostRequest{Title: "Duplicate Title", Content: "body"}, 1)
	require.NoError(t, err)
	assert.Equal(t, "duplicate-title-1", second.Slug)

	third, err := svc.CreatePost(models.CreatePostRequest{Title: "Duplicate Title", Content: "body"}, 1)
	require.NoError(t, err)
	assert.Equal(t, "duplicate-title-2", third.Slug)
}

func TestResolveSuffixSkipsOccupiedRun(t *testing.T) {
	svc, postRepo, _ := newTestBlogService()

	// Occupy c, c-1, c-2 directly; the next create must land on c-3.
	for _, slug := range []string{"c", "c-1", "c-2"} {
		require.NoError(t, postRepo.Create(&models.Post{Title: "x", Slug: slug, Content: "b"}))
	}

	post, err := svc.CreatePost(models.CreatePostRequest{Title: "C", Content: "body"}, 1)
	require.NoError(t, err)
	assert.Equal(t, "c-3", post.Slug)
}

func TestTagReconciliationCollapsesCase(t *testing.T) {
	svc, _, tagRepo := newTestBlogService()

	post, err := svc.CreatePost(models.CreatePostRequest{
		Title:   "Tagged",
		Content: "body",
		Tags:    []string{"Tax", "tax", "  ", "Audit"},
	}, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, tagRepo.creates, "Tax and tax must collapse to one tag row")
	require.Len(t, post.Tags, 2)

	slugs := []string{post.Tags[0].Slug, post.Tags[1].Slug}
	assert.Contains(t, slugs, "tax")
	assert.Contains(t, slugs, "audit")
}

func TestTagReconciliationIsIdempotent(t *testing.T) {
	svc, _, tagRepo := newTestBlogService()

	first, err := svc.CreatePost(models.CreatePostRequest{Title: "One", Content: "body", Tags: []string{"Tax"}}, 1)
	require.NoError(t, err)
	second, err := svc.CreatePost(models.CreatePostRequest{Title: "Two", Content: "body", Tags: []string{"Tax"}}, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, tagRepo.creates)
	require.Len(t, first.Tags, 1)
	require.Len(t, second.Tags, 1)
	assert.Equal(t, first.Tags[0].ID, second.Tags[0].ID)
}

func TestUpdatePostNotFound(t *testing.T) {
	svc, postRepo, _ := newTestBlogService()

	title := "New Title"
	_, err := svc.UpdatePost(999, models.UpdatePostRequest{Title: &title})
	var notFoundErr models.ErrorNotFound
	require.ErrorAs(t, err, &notFoundErr)
	assert.Zero(t, postRepo.writes)
}

func TestUpdatePostContentOnlyKeepsSlug(t *testing.T) {
	svc, _, _ := newTestBlogService()

	post, err := svc.CreatePost(models.CreatePostRequest{Title: "Stable Title", Content: "v1"}, 1)
	require.NoError(t, err)

	content := "v2"
	updated, err := svc.UpdatePost(post.ID, models.UpdatePostRequest{Content: &content})
	require.NoError(t, err)

	assert.Equal(t, post.Slug, updated.Slug)
	assert.Equal(t, "v2", updated.Content)
}

func TestUpdatePostSameTitleKeepsSlug(t *testing.T) {
	svc, _, _ := newTestBlogService()

	post, err := svc.CreatePost(models.CreatePostRequest{Title: "Same Same", Content: "body"}, 1)
	require.NoError(t, err)

	title := "Same Same"
	updated, err := svc.UpdatePost(post.ID, models.UpdatePostRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, post.Slug, updated.Slug)
}

func TestUpdatePostTitleChangeRecomputesSlugExcludingSelf(t *testing.T) {
	svc, _, _ := newTestBlogService()

	post, err := svc.CreatePost(models.CreatePostRequest{Title: "Original", Content: "body"}, 1)
	require.NoError(t, err)

	title := "Renamed Post"
	updated, err := svc.UpdatePost(post.ID, models.UpdatePostRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "renamed-post", updated.Slug)

	// Renaming back must not collide with the post's own old slug row.
	title = "Original"
	updated, err = svc.UpdatePost(post.ID, models.UpdatePostRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "original", updated.Slug)
}

func TestUpdatePostCustomSlug(t *testing.T) {
	svc, _, _ := newTestBlogService()

	post, err := svc.CreatePost(models.CreatePostRequest{Title: "Slug Source", Content: "body"}, 1)
	require.NoError(t, err)
	require.Equal(t, "slug-source", post.Slug)

	slug := "Preferred Path"
	updated, err := svc.UpdatePost(post.ID, models.UpdatePostRequest{Slug: &slug})
	require.NoError(t, err)
	assert.Equal(t, "preferred-path", updated.Slug)
	assert.Equal(t, "Slug Source", updated.Title)
}

func TestUpdatePostCustomSlugWinsOverTitle(t *testing.T) {
	svc, _, _ := newTestBlogService()

	post, err := svc.CreatePost(models.CreatePostRequest{Title: "Old Title", Content: "body"}, 1)
	require.NoError(t, err)

	title := "New Title"
	slug := "hand-picked"
	updated, err := svc.UpdatePost(post.ID, models.UpdatePostRequest{Title: &title, Slug: &slug})
	require.NoError(t, err)
	assert.Equal(t, "hand-picked", updated.Slug)
	assert.Equal(t, "New Title", updated.Title)
}

func TestUpdatePostCustomSlugResolvesCollision(t *testing.T) {
	svc, _, _ := newTestBlogService()

	_, err := svc.CreatePost(models.CreatePostRequest{Title: "Taken", Content: "body"}, 1)
	require.NoError(t, err)

	post, err := svc.CreatePost(models.CreatePostRequest{Title: "Other", Content: "body"}, 1)
	require.NoError(t, err)

	slug := "taken"
	updated, err := svc.UpdatePost(post.ID, models.UpdatePostRequest{Slug: &slug})
	require.NoError(t, err)
	assert.Equal(t, "taken-1", updated.Slug)
}

func TestUpdatePostRejectsUnsluggableCustomSlug(t *testing.T) {
	svc, _, _ := newTestBlogService()

	post, err := svc.CreatePost(models.CreatePostRequest{Title: "Fine", Content: "body"}, 1)
	require.NoError(t, err)

	slug := "🎉🎉"
	_, err = svc.UpdatePost(post.ID, models.UpdatePostRequest{Slug: &slug})
	var validationErr models.ErrorValidation
	require.ErrorAs(t, err, &validationErr)
}

func TestPublishTransitionSetsTimestampOnce(t *testing.T) {
	svc, _, _ := newTestBlogService()

	post, err := svc.CreatePost(models.CreatePostRequest{Title: "Lifecycle", Content: "body"}, 1)
	require.NoError(t, err)
	require.Nil(t, post.PublishedAt)

	published := models.StatusPublished
	updated, err := svc.UpdatePost(post.ID, models.UpdatePostRequest{Status: &published})
	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)
	firstPublished := *updated.PublishedAt

	// Publishing again must not touch the timestamp.
	updated, err = svc.UpdatePost(post.ID, models.UpdatePostRequest{Status: &published})
	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)
	assert.Equal(t, firstPublished, *updated.PublishedAt)
}

func TestRepublishAfterArchivePreservesTimestamp(t *testing.T) {
	svc, _, _ := newTestBlogService()

	post, err := svc.CreatePost(models.CreatePostRequest{
		Title:   "Archive Cycle",
		Content: "body",
		Status:  models.StatusPublished,
	}, 1)
	require.NoError(t, err)
	require.NotNil(t, post.PublishedAt)
	original := *post.PublishedAt

	archived := models.StatusArchived
	updated, err := svc.UpdatePost(post.ID, models.UpdatePostRequest{Status: &archived})
	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)

	published := models.StatusPublished
	updated, err = svc.UpdatePost(post.ID, models.UpdatePostRequest{Status: &published})
	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)
	assert.Equal(t, original, *updated.PublishedAt)
}

func TestUpdatePostReplacesTags(t *testing.T) {
	svc, _, _ := newTestBlogService()

	post, err := svc.CreatePost(models.CreatePostRequest{
		Title:   "Retagged",
		Content: "body",
		Tags:    []string{"Tax", "Audit"},
	}, 1)
	require.NoError(t, err)
	require.Len(t, post.Tags, 2)

	tags := []string{"Payroll"}
	updated, err := svc.UpdatePost(post.ID, models.UpdatePostRequest{Tags: &tags})
	require.NoError(t, err)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, "payroll", updated.Tags[0].Slug)
}

func TestDeletePost(t *testing.T) {
	svc, _, _ := newTestBlogService()

	post, err := svc.CreatePost(models.CreatePostRequest{Title: "Doomed", Content: "body"}, 1)
	require.NoError(t, err)

	require.NoError(t, svc.DeletePost(post.ID))

	_, err = svc.GetPost(post.ID)
	var notFoundErr models.ErrorNotFound
	require.ErrorAs(t, err, &notFoundErr)
}

func TestDeletePostNotFound(t *testing.T) {
	svc, _, _ := newTestBlogService()

	err := svc.DeletePost(12345)
	var notFoundErr models.ErrorNotFound
	require.ErrorAs(t, err, &notFoundErr)
}

func TestGetPostBySlugPublishedOnly(t *testing.T) {
	svc, _, _ := newTestBlogService()

	_, err := svc.CreatePost(models.CreatePostRequest{Title: "Hidden Draft", Content: "body"}, 1)
	require.NoError(t, err)

	_, err = svc.GetPostBySlug("hidden-draft", true)
	var notFoundErr models.ErrorNotFound
	require.ErrorAs(t, err, &notFoundErr)

	found, err := svc.GetPostBySlug("hidden-draft", false)
	require.NoError(t, err)
	assert.Equal(t, "Hidden Draft", found.Title)
}
