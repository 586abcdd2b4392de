package blogService

import (
	blogs "BlogGolang/internal/api/blog"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *blogsService) CreateCategory(ctx context.Context, req blogs.CreateCategoryRequest) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return "", err
	}

	categoryID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return "", err
	}

	category := entity.Category{
		ID:   categoryID,
		Name: req.Name,
		Slug: req.Slug,
	}

	if err := repo.Categories.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, blogs.ErrCategorySlugTaken) {
			return "", err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create category")
		return "", blogs.ErrCreateCategory
	}

	return categoryID, nil
}

func (s *blogsService) GetCategoryByID(ctx context.Context, id string) (blogs.CategoryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.CategoryResponse{}, err
	}

	category, err := repo.Categories.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, blogs.ErrCategoryNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Category not found")
		}
		return blogs.CategoryResponse{}, err
	}

	return makeCategoryResponse(category), nil
}

func (s *blogsService) GetAllCategories(ctx context.Context) (*blogs.CategoryListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	categories, err := repo.Categories.GetAllCategories(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]blogs.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, makeCategoryResponse(category))
	}

	return &blogs.CategoryListResponse{Categories: responses}, nil
}

func (s *blogsService) UpdateCategory(ctx context.Context, id string, req blogs.UpdateCategoryRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	category, err := repo.Categories.GetCategoryByID(ctx, id)
	if err != nil {
		return err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Slug != nil {
		category.Slug = *req.Slug
	}

	if err := repo.Categories.UpdateCategory(ctx, category); err != nil {
		if errors.Is(err, blogs.ErrCategoryNotFound) || errors.Is(err, blogs.ErrCategorySlugTaken) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update category")
		return blogs.ErrUpdateCategory
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blogs.ErrUpdateCategory
	}

	return nil
}

func (s *blogsService) DeleteCategory(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Categories.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, blogs.ErrCategoryNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete category")
		return blogs.ErrDeleteCategory
	}

	return nil
}

func makeCategoryResponse(category entity.Category) blogs.CategoryResponse {
	return blogs.CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
		Slug: category.Slug,
	}
}
