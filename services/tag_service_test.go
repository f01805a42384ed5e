package services

import (
	"testing"

	"firmsite/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRefreshTagStatsCountsPublishedOnly(t *testing.T) {
	postRepo := newFakePostRepo()
	tagRepo := newFakeTagRepo()
	blog := NewBlogService(postRepo, tagRepo, zap.NewNop())
	svc := NewTagService(tagRepo, postRepo, zap.NewNop())

	_, err := blog.CreatePost(models.CreatePostRequest{
		Title:   "Published One",
		Content: "body",
		Status:  models.StatusPublished,
		Tags:    []string{"Tax"},
	}, 1)
	require.NoError(t, err)

	_, err = blog.CreatePost(models.CreatePostRequest{
		Title:   "Draft One",
		Content: "body",
		Tags:    []string{"Tax", "Audit"},
	}, 1)
	require.NoError(t, err)

	require.NoError(t, svc.RefreshTagStats())

	tax, err := tagRepo.GetBySlug("tax")
	require.NoError(t, err)
	assert.Equal(t, 1, tax.UsageCount, "draft posts do not count toward usage")

	audit, err := tagRepo.GetBySlug("audit")
	require.NoError(t, err)
	assert.Equal(t, 0, audit.UsageCount)
}
