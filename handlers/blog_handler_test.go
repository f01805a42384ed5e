package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"firmsite/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBlogService struct {
	createErr error
	updateErr error
	deleteErr error
	post      *models.Post
}

func (s *stubBlogService) CreatePost(req models.CreatePostRequest, authorID uint) (*models.Post, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.post, nil
}

func (s *stubBlogService) GetPost(id uint) (*models.Post, error) {
	if s.post == nil {
		return nil, models.ErrorNotFound{Resource: "post", ID: id}
	}
	return s.post, nil
}

func (s *stubBlogService) GetPostBySlug(slug string, publishedOnly bool) (*models.Post, error) {
	if s.post == nil {
		return nil, models.ErrorNotFound{Resource: "post"}
	}
	return s.post, nil
}

func (s *stubBlogService) GetPosts(params models.PostListParams, publishedOnly bool) ([]models.Post, int64, error) {
	return nil, 0, nil
}

func (s *stubBlogService) UpdatePost(id uint, req models.UpdatePostRequest) (*models.Post, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return s.post, nil
}

func (s *stubBlogService) DeletePost(id uint) error {
	return s.deleteErr
}

func setupBlogRouter(svc *stubBlogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewBlogHandler(svc)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", uint(1))
		c.Next()
	})
	router.POST("/posts", handler.CreatePost)
	router.GET("/posts/:id", handler.GetPost)
	router.PUT("/posts/:id", handler.UpdatePost)
	router.DELETE("/posts/:id", handler.DeletePost)
	return router
}

func TestCreatePostReturns201(t *testing.T) {
	router := setupBlogRouter(&stubBlogService{post: &models.Post{ID: 1, Title: "T", Slug: "t"}})

	body, _ := json.Marshal(models.CreatePostRequest{Title: "T", Content: "c"})
	req := httptest.NewRequest("POST", "/posts", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreatePostValidationErrorReturns400(t *testing.T) {
	router := setupBlogRouter(&stubBlogService{
		createErr: models.NewValidationError("missing required fields", map[string]string{"title": "title is required"}),
	})

	body, _ := json.Marshal(models.CreatePostRequest{Content: "c"})
	req := httptest.NewRequest("POST", "/posts", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Code int `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 400, resp.Code)
}

func TestUpdatePostNotFoundReturns404(t *testing.T) {
	router := setupBlogRouter(&stubBlogService{
		updateErr: models.ErrorNotFound{Resource: "post", ID: 99},
	})

	body, _ := json.Marshal(models.UpdatePostRequest{})
	req := httptest.NewRequest("PUT", "/posts/99", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePostNotFoundReturns404(t *testing.T) {
	router := setupBlogRouter(&stubBlogService{
		deleteErr: models.ErrorNotFound{Resource: "post", ID: 99},
	})

	req := httptest.NewRequest("DELETE", "/posts/99", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePostStorageErrorReturns500(t *testing.T) {
	router := setupBlogRouter(&stubBlogService{
		deleteErr: models.NewStorageError("delete post", assert.AnError),
	})

	req := httptest.NewRequest("DELETE", "/posts/1", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetPostInvalidIDReturns400(t *testing.T) {
	router := setupBlogRouter(&stubBlogService{post: &models.Post{ID: 1}})

	req := httptest.NewRequest("GET", "/posts/abc", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
