package tagHandler

import (
	tags "BlogGolang/internal/api/tag"
	"BlogGolang/internal/middleware"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTagsService struct {
	tags map[string]tags.TagResponse
}

func newFakeTagsService() *fakeTagsService {
	return &fakeTagsService{tags: make(map[string]tags.TagResponse)}
}

func (f *fakeTagsService) CreateTag(ctx context.Context, req tags.CreateTagRequest) (string, error) {
	for _, tag := range f.tags {
		if tag.Slug == req.Slug {
			return "", tags.ErrTagSlugTaken
		}
	}

	id := "01K0TESTULID0000000000TG00"
	f.tags[id] = tags.TagResponse{ID: id, Name: req.Name, Slug: req.Slug}
	return id, nil
}

func (f *fakeTagsService) GetTagByID(ctx context.Context, id string) (tags.TagResponse, error) {
	tag, ok := f.tags[id]
	if !ok {
		return tags.TagResponse{}, tags.ErrTagNotFound
	}
	return tag, nil
}

func (f *fakeTagsService) GetAllTags(ctx context.Context) (*tags.TagListResponse, error) {
	all := make([]tags.TagResponse, 0, len(f.tags))
	for _, tag := range f.tags {
		all = append(all, tag)
	}
	return &tags.TagListResponse{Tags: all}, nil
}

func (f *fakeTagsService) UpdateTag(ctx context.Context, id string, req tags.UpdateTagRequest) error {
	if _, ok := f.tags[id]; !ok {
		return tags.ErrTagNotFound
	}
	return nil
}

func (f *fakeTagsService) DeleteTag(ctx context.Context, id string) error {
	if _, ok := f.tags[id]; !ok {
		return tags.ErrTagNotFound
	}
	delete(f.tags, id)
	return nil
}

func newTestApp(svc *fakeTagsService) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New()
	mw := middleware.New(logger)
	app.Use(mw.NewRequestIDMiddleware())

	handler := New(logger, validator.New(), mw, svc)
	handler.Start(app.Group("/api"))

	return app
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateTagEndpoint(t *testing.T) {
	app := newTestApp(newFakeTagsService())

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/tags/", map[string]string{
		"name": "Go",
		"slug": "go",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Tag created successfully", body["message"])
	assert.NotEmpty(t, body["tag_id"])
}

func TestCreateTagEndpointValidation(t *testing.T) {
	app := newTestApp(newFakeTagsService())

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/tags/", map[string]string{
		"name": "Go",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateTagEndpointDuplicateSlug(t *testing.T) {
	svc := newFakeTagsService()
	svc.tags["t1"] = tags.TagResponse{ID: "t1", Name: "Go", Slug: "go"}
	app := newTestApp(svc)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/tags/", map[string]string{
		"name": "Golang",
		"slug": "go",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetTagEndpoint(t *testing.T) {
	svc := newFakeTagsService()
	svc.tags["t1"] = tags.TagResponse{ID: "t1", Name: "Go", Slug: "go"}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/tags/t1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body tags.TagResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Go", body.Name)
	assert.Equal(t, "go", body.Slug)
}

func TestGetTagEndpointNotFound(t *testing.T) {
	app := newTestApp(newFakeTagsService())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/tags/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetAllTagsEndpoint(t *testing.T) {
	svc := newFakeTagsService()
	svc.tags["t1"] = tags.TagResponse{ID: "t1", Name: "Go", Slug: "go"}
	svc.tags["t2"] = tags.TagResponse{ID: "t2", Name: "Rust", Slug: "rust"}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/tags/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body tags.TagListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Tags, 2)
}

func TestDeleteTagEndpoint(t *testing.T) {
	svc := newFakeTagsService()
	svc.tags["t1"] = tags.TagResponse{ID: "t1", Name: "Go", Slug: "go"}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/tags/t1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, svc.tags)
}
