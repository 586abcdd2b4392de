package blogService

import (
	blogs "BlogGolang/internal/api/blog"
	blogRepository "BlogGolang/internal/api/blog/repository"
	"BlogGolang/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type IBlogsService interface {
	CreateBlog(ctx context.Context, req blogs.CreateBlogRequest) (string, error)
	GetBlogByID(ctx context.Context, id string) (*blogs.BlogResponse, error)
	GetAllBlogs(ctx context.Context, page, limit int) (*blogs.BlogListResponse, error)
	GetBlogsByCategory(ctx context.Context, categoryID string, page, limit int) (*blogs.BlogListResponse, error)
	UpdateBlog(ctx context.Context, id string, req blogs.UpdateBlogRequest) error
	DeleteBlog(ctx context.Context, id string) error

	CreateCategory(ctx context.Context, req blogs.CreateCategoryRequest) (string, error)
	GetCategoryByID(ctx context.Context, id string) (blogs.CategoryResponse, error)
	GetAllCategories(ctx context.Context) (*blogs.CategoryListResponse, error)
	UpdateCategory(ctx context.Context, id string, req blogs.UpdateCategoryRequest) error
	DeleteCategory(ctx context.Context, id string) error
}

type blogsService struct {
	log       *logrus.Logger
	blogsRepo blogRepository.Repository
	utils     utils.IUtils
}

func NewBlogsService(
	log *logrus.Logger,
	blogsRepo blogRepository.Repository,
	utils utils.IUtils,
) IBlogsService {
	return &blogsService{
		log:       log,
		blogsRepo: blogsRepo,
		utils:     utils,
	}
}
