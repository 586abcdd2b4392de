package blogService

import (
	blogs "BlogGolang/internal/api/blog"
	blogRepository "BlogGolang/internal/api/blog/repository"
	"BlogGolang/internal/entity"
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBlogStore struct {
	blogs      map[string]entity.Blog
	categories map[string]entity.Category
	tags       map[string]entity.Tag
	blogTags   map[string][]string
	authors    map[string]bool
	comments   map[string][]string

	commits  int
	deletion []string
}

func newFakeBlogStore() *fakeBlogStore {
	return &fakeBlogStore{
		blogs:      make(map[string]entity.Blog),
		categories: make(map[string]entity.Category),
		tags:       make(map[string]entity.Tag),
		blogTags:   make(map[string][]string),
		authors:    make(map[string]bool),
		comments:   make(map[string][]string),
	}
}

func (f *fakeBlogStore) NewClient(tx bool) (blogRepository.Client, error) {
	return blogRepository.Client{
		Blogs:      f,
		Categories: f,
		BlogTags:   f,
		Commit:     func() error { f.commits++; return nil },
		Rollback:   func() error { return nil },
	}, nil
}

func (f *fakeBlogStore) CreateBlog(ctx context.Context, blog entity.Blog) error {
	for _, existing := range f.blogs {
		if existing.Slug == blog.Slug {
			return blogs.ErrBlogSlugTaken
		}
	}
	f.blogs[blog.ID] = blog
	return nil
}

func (f *fakeBlogStore) GetBlogByID(ctx context.Context, id string) (entity.BlogWithRefs, error) {
	blog, ok := f.blogs[id]
	if !ok {
		return entity.BlogWithRefs{}, blogs.ErrBlogNotFound
	}
	category := f.categories[blog.CategoryID]
	return entity.BlogWithRefs{
		Blog:           blog,
		AuthorUsername: "author-" + blog.AuthorID,
		CategoryName:   category.Name,
		CategorySlug:   category.Slug,
	}, nil
}

func (f *fakeBlogStore) GetAllBlogs(ctx context.Context, limit, offset int) ([]entity.Blog, int, error) {
	all := make([]entity.Blog, 0, len(f.blogs))
	for _, blog := range f.blogs {
		all = append(all, blog)
	}
	return all, len(all), nil
}

func (f *fakeBlogStore) GetBlogsByCategory(ctx context.Context, categoryID string, limit, offset int) ([]entity.Blog, int, error) {
	matched := make([]entity.Blog, 0)
	for _, blog := range f.blogs {
		if blog.CategoryID == categoryID {
			matched = append(matched, blog)
		}
	}
	return matched, len(matched), nil
}

func (f *fakeBlogStore) UpdateBlog(ctx context.Context, blog entity.Blog) error {
	if _, ok := f.blogs[blog.ID]; !ok {
		return blogs.ErrBlogNotFound
	}
	f.blogs[blog.ID] = blog
	return nil
}

func (f *fakeBlogStore) DeleteBlog(ctx context.Context, id string) error {
	if _, ok := f.blogs[id]; !ok {
		return blogs.ErrBlogNotFound
	}
	delete(f.blogs, id)
	f.deletion = append(f.deletion, "blog")
	return nil
}

func (f *fakeBlogStore) DeleteCommentsByBlog(ctx context.Context, blogID string) error {
	delete(f.comments, blogID)
	f.deletion = append(f.deletion, "comments")
	return nil
}

func (f *fakeBlogStore) AuthorExists(ctx context.Context, authorID string) (bool, error) {
	return f.authors[authorID], nil
}

func (f *fakeBlogStore) CreateCategory(ctx context.Context, category entity.Category) error {
	for _, existing := range f.categories {
		if existing.Slug == category.Slug {
			return blogs.ErrCategorySlugTaken
		}
	}
	f.categories[category.ID] = category
	return nil
}

func (f *fakeBlogStore) GetCategoryByID(ctx context.Context, id string) (entity.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return entity.Category{}, blogs.ErrCategoryNotFound
	}
	return category, nil
}

func (f *fakeBlogStore) GetAllCategories(ctx context.Context) ([]entity.Category, error) {
	all := make([]entity.Category, 0, len(f.categories))
	for _, category := range f.categories {
		all = append(all, category)
	}
	return all, nil
}

func (f *fakeBlogStore) UpdateCategory(ctx context.Context, category entity.Category) error {
	if _, ok := f.categories[category.ID]; !ok {
		return blogs.ErrCategoryNotFound
	}
	f.categories[category.ID] = category
	return nil
}

func (f *fakeBlogStore) DeleteCategory(ctx context.Context, id string) error {
	if _, ok := f.categories[id]; !ok {
		return blogs.ErrCategoryNotFound
	}
	delete(f.categories, id)
	return nil
}

func (f *fakeBlogStore) GetTagByID(ctx context.Context, id string) (entity.Tag, bool, error) {
	tag, ok := f.tags[id]
	return tag, ok, nil
}

func (f *fakeBlogStore) AttachTag(ctx context.Context, blogID, tagID string) error {
	f.blogTags[blogID] = append(f.blogTags[blogID], tagID)
	return nil
}

func (f *fakeBlogStore) GetTagsByBlog(ctx context.Context, blogID string) ([]entity.Tag, error) {
	result := make([]entity.Tag, 0)
	for _, tagID := range f.blogTags[blogID] {
		result = append(result, f.tags[tagID])
	}
	return result, nil
}

func (f *fakeBlogStore) DeleteByBlog(ctx context.Context, blogID string) error {
	delete(f.blogTags, blogID)
	f.deletion = append(f.deletion, "blog_tags")
	return nil
}

type blogUtilsStub struct{}

func (blogUtilsStub) NewULIDFromTimestamp(_ time.Time) (string, error) {
	return "01K0TESTULID0000000000BL00", nil
}

func newTestBlogService(store *fakeBlogStore) IBlogsService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewBlogsService(logger, store, blogUtilsStub{})
}

func TestCreateBlog(t *testing.T) {
	store := newFakeBlogStore()
	store.authors["author-1"] = true
	store.categories["cat-1"] = entity.Category{ID: "cat-1", Name: "Tech", Slug: "tech"}
	store.tags["tag-1"] = entity.Tag{ID: "tag-1", Name: "Go", Slug: "go"}
	svc := newTestBlogService(store)

	blogID, err := svc.CreateBlog(context.Background(), blogs.CreateBlogRequest{
		Title:      "First Post",
		Slug:       "first-post",
		Content:    "hello",
		AuthorID:   "author-1",
		CategoryID: "cat-1",
		Tags:       []string{"tag-1"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, blogID)

	assert.Contains(t, store.blogs, blogID)
	assert.Equal(t, []string{"tag-1"}, store.blogTags[blogID])
	assert.Equal(t, 1, store.commits)
}

func TestCreateBlogSkipsUnknownTags(t *testing.T) {
	store := newFakeBlogStore()
	store.authors["author-1"] = true
	store.categories["cat-1"] = entity.Category{ID: "cat-1"}
	store.tags["tag-1"] = entity.Tag{ID: "tag-1", Name: "Go", Slug: "go"}
	svc := newTestBlogService(store)

	blogID, err := svc.CreateBlog(context.Background(), blogs.CreateBlogRequest{
		Title:      "First Post",
		Slug:       "first-post",
		Content:    "hello",
		AuthorID:   "author-1",
		CategoryID: "cat-1",
		Tags:       []string{"tag-1", "no-such-tag"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"tag-1"}, store.blogTags[blogID])
}

func TestCreateBlogUnknownAuthor(t *testing.T) {
	store := newFakeBlogStore()
	store.categories["cat-1"] = entity.Category{ID: "cat-1"}
	svc := newTestBlogService(store)

	_, err := svc.CreateBlog(context.Background(), blogs.CreateBlogRequest{
		Title:      "First Post",
		Slug:       "first-post",
		Content:    "hello",
		AuthorID:   "ghost",
		CategoryID: "cat-1",
	})

	assert.ErrorIs(t, err, blogs.ErrInvalidAuthor)
}

func TestCreateBlogUnknownCategory(t *testing.T) {
	store := newFakeBlogStore()
	store.authors["author-1"] = true
	svc := newTestBlogService(store)

	_, err := svc.CreateBlog(context.Background(), blogs.CreateBlogRequest{
		Title:      "First Post",
		Slug:       "first-post",
		Content:    "hello",
		AuthorID:   "author-1",
		CategoryID: "ghost",
	})

	assert.ErrorIs(t, err, blogs.ErrInvalidCategory)
}

func TestCreateBlogDuplicateSlug(t *testing.T) {
	store := newFakeBlogStore()
	store.authors["author-1"] = true
	store.categories["cat-1"] = entity.Category{ID: "cat-1"}
	store.blogs["b1"] = entity.Blog{ID: "b1", Slug: "first-post"}
	svc := newTestBlogService(store)

	_, err := svc.CreateBlog(context.Background(), blogs.CreateBlogRequest{
		Title:      "Another Post",
		Slug:       "first-post",
		Content:    "hello",
		AuthorID:   "author-1",
		CategoryID: "cat-1",
	})

	assert.ErrorIs(t, err, blogs.ErrBlogSlugTaken)
}

func TestGetBlogByID(t *testing.T) {
	store := newFakeBlogStore()
	store.categories["cat-1"] = entity.Category{ID: "cat-1", Name: "Tech", Slug: "tech"}
	store.blogs["b1"] = entity.Blog{
		ID:         "b1",
		Title:      "First Post",
		Slug:       "first-post",
		Content:    "hello",
		AuthorID:   "author-1",
		CategoryID: "cat-1",
	}
	store.tags["tag-1"] = entity.Tag{ID: "tag-1", Name: "Go", Slug: "go"}
	store.blogTags["b1"] = []string{"tag-1"}
	svc := newTestBlogService(store)

	blog, err := svc.GetBlogByID(context.Background(), "b1")
	require.NoError(t, err)

	assert.Equal(t, "First Post", blog.Title)
	assert.Equal(t, "author-1", blog.Author.ID)
	assert.Equal(t, "Tech", blog.Category.Name)
	require.Len(t, blog.Tags, 1)
	assert.Equal(t, "Go", blog.Tags[0].Name)
}

func TestGetBlogByIDNotFound(t *testing.T) {
	store := newFakeBlogStore()
	svc := newTestBlogService(store)

	_, err := svc.GetBlogByID(context.Background(), "missing")
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
}

func TestUpdateBlogPartial(t *testing.T) {
	store := newFakeBlogStore()
	store.categories["cat-1"] = entity.Category{ID: "cat-1"}
	store.blogs["b1"] = entity.Blog{
		ID:         "b1",
		Title:      "First Post",
		Slug:       "first-post",
		Content:    "hello",
		AuthorID:   "author-1",
		CategoryID: "cat-1",
	}
	svc := newTestBlogService(store)

	newTitle := "Renamed Post"
	err := svc.UpdateBlog(context.Background(), "b1", blogs.UpdateBlogRequest{
		Title: &newTitle,
	})
	require.NoError(t, err)

	updated := store.blogs["b1"]
	assert.Equal(t, "Renamed Post", updated.Title)
	assert.Equal(t, "first-post", updated.Slug)
	assert.Equal(t, "hello", updated.Content)
	assert.Equal(t, "cat-1", updated.CategoryID)
}

func TestUpdateBlogUnknownCategory(t *testing.T) {
	store := newFakeBlogStore()
	store.categories["cat-1"] = entity.Category{ID: "cat-1"}
	store.blogs["b1"] = entity.Blog{ID: "b1", CategoryID: "cat-1"}
	svc := newTestBlogService(store)

	ghost := "ghost"
	err := svc.UpdateBlog(context.Background(), "b1", blogs.UpdateBlogRequest{
		CategoryID: &ghost,
	})

	assert.ErrorIs(t, err, blogs.ErrInvalidCategory)
	assert.Equal(t, "cat-1", store.blogs["b1"].CategoryID)
}

func TestDeleteBlogCascades(t *testing.T) {
	store := newFakeBlogStore()
	store.blogs["b1"] = entity.Blog{ID: "b1"}
	store.blogTags["b1"] = []string{"tag-1"}
	store.comments["b1"] = []string{"c1", "c2"}
	svc := newTestBlogService(store)

	err := svc.DeleteBlog(context.Background(), "b1")
	require.NoError(t, err)

	assert.NotContains(t, store.blogs, "b1")
	assert.NotContains(t, store.blogTags, "b1")
	assert.NotContains(t, store.comments, "b1")
	assert.Equal(t, []string{"comments", "blog_tags", "blog"}, store.deletion)
	assert.Equal(t, 1, store.commits)
}

func TestDeleteBlogNotFound(t *testing.T) {
	store := newFakeBlogStore()
	svc := newTestBlogService(store)

	err := svc.DeleteBlog(context.Background(), "missing")
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
}

func TestCreateCategoryDuplicateSlug(t *testing.T) {
	store := newFakeBlogStore()
	store.categories["cat-1"] = entity.Category{ID: "cat-1", Slug: "tech"}
	svc := newTestBlogService(store)

	_, err := svc.CreateCategory(context.Background(), blogs.CreateCategoryRequest{
		Name: "Technology",
		Slug: "tech",
	})

	assert.ErrorIs(t, err, blogs.ErrCategorySlugTaken)
}

func TestGetAllCategories(t *testing.T) {
	store := newFakeBlogStore()
	store.categories["cat-1"] = entity.Category{ID: "cat-1", Name: "Tech", Slug: "tech"}
	store.categories["cat-2"] = entity.Category{ID: "cat-2", Name: "Life", Slug: "life"}
	svc := newTestBlogService(store)

	result, err := svc.GetAllCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, result.Categories, 2)
}

func TestGetBlogsByCategoryUnknownCategory(t *testing.T) {
	store := newFakeBlogStore()
	svc := newTestBlogService(store)

	_, err := svc.GetBlogsByCategory(context.Background(), "missing", 1, 10)
	assert.ErrorIs(t, err, blogs.ErrCategoryNotFound)
}
