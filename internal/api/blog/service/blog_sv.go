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

func (s *blogsService) CreateBlog(ctx context.Context, req blogs.CreateBlogRequest) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return "", err
	}
	defer repo.Rollback()

	exists, err := repo.Blogs.AuthorExists(ctx, req.AuthorID)
	if err != nil {
		return "", err
	}
	if !exists {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"author_id":  req.AuthorID,
		}).Warn("Blog author not found")
		return "", blogs.ErrInvalidAuthor
	}

	if _, err := repo.Categories.GetCategoryByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, blogs.ErrCategoryNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id":  requestID,
				"category_id": req.CategoryID,
			}).Warn("Blog category not found")
			return "", blogs.ErrInvalidCategory
		}
		return "", err
	}

	blogID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return "", err
	}

	blog := entity.Blog{
		ID:           blogID,
		Title:        req.Title,
		Slug:         req.Slug,
		Content:      req.Content,
		AuthorID:     req.AuthorID,
		CategoryID:   req.CategoryID,
		CreationDate: time.Now(),
	}

	if err := repo.Blogs.CreateBlog(ctx, blog); err != nil {
		if errors.Is(err, blogs.ErrBlogSlugTaken) {
			return "", err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create blog")
		return "", blogs.ErrCreateBlog
	}

	// Unknown tag ids are skipped, not an error.
	for _, tagID := range req.Tags {
		_, found, err := repo.BlogTags.GetTagByID(ctx, tagID)
		if err != nil {
			return "", blogs.ErrCreateBlog
		}
		if !found {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"tag_id":     tagID,
			}).Warn("Ignoring unknown tag id on blog create")
			continue
		}

		if err := repo.BlogTags.AttachTag(ctx, blogID, tagID); err != nil {
			return "", blogs.ErrCreateBlog
		}
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return "", blogs.ErrCreateBlog
	}

	return blogID, nil
}

func (s *blogsService) GetBlogByID(ctx context.Context, id string) (*blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	blog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Blog not found")
		}
		return nil, err
	}

	tags, err := repo.BlogTags.GetTagsByBlog(ctx, id)
	if err != nil {
		return nil, err
	}

	tagSummaries := make([]blogs.TagSummary, 0, len(tags))
	for _, tag := range tags {
		tagSummaries = append(tagSummaries, blogs.TagSummary{
			ID:   tag.ID,
			Name: tag.Name,
			Slug: tag.Slug,
		})
	}

	return &blogs.BlogResponse{
		ID:           blog.ID,
		Title:        blog.Title,
		Slug:         blog.Slug,
		Content:      blog.Content,
		CreationDate: blog.CreationDate,
		Author: blogs.AuthorSummary{
			ID:       blog.AuthorID,
			Username: blog.AuthorUsername,
		},
		Category: blogs.CategoryResponse{
			ID:   blog.CategoryID,
			Name: blog.CategoryName,
			Slug: blog.CategorySlug,
		},
		Tags: tagSummaries,
	}, nil
}

func (s *blogsService) GetAllBlogs(ctx context.Context, page, limit int) (*blogs.BlogListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	offset := (page - 1) * limit

	blogsList, total, err := repo.Blogs.GetAllBlogs(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	return makeBlogListResponse(blogsList, total), nil
}

func (s *blogsService) GetBlogsByCategory(ctx context.Context, categoryID string, page, limit int) (*blogs.BlogListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	if _, err := repo.Categories.GetCategoryByID(ctx, categoryID); err != nil {
		return nil, err
	}

	offset := (page - 1) * limit

	blogsList, total, err := repo.Blogs.GetBlogsByCategory(ctx, categoryID, limit, offset)
	if err != nil {
		return nil, err
	}

	return makeBlogListResponse(blogsList, total), nil
}

func (s *blogsService) UpdateBlog(ctx context.Context, id string, req blogs.UpdateBlogRequest) error {
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

	existing, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		return err
	}

	blog := existing.Blog

	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Slug != nil {
		blog.Slug = *req.Slug
	}
	if req.Content != nil {
		blog.Content = *req.Content
	}
	if req.CategoryID != nil {
		if _, err := repo.Categories.GetCategoryByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, blogs.ErrCategoryNotFound) {
				return blogs.ErrInvalidCategory
			}
			return err
		}
		blog.CategoryID = *req.CategoryID
	}

	if err := repo.Blogs.UpdateBlog(ctx, blog); err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) || errors.Is(err, blogs.ErrBlogSlugTaken) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update blog")
		return blogs.ErrUpdateBlog
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blogs.ErrUpdateBlog
	}

	return nil
}

// DeleteBlog removes the blog and everything hanging off it in one
// transaction: comments first, then tag associations, then the row itself.
func (s *blogsService) DeleteBlog(ctx context.Context, id string) error {
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

	if _, err := repo.Blogs.GetBlogByID(ctx, id); err != nil {
		return err
	}

	if err := repo.Blogs.DeleteCommentsByBlog(ctx, id); err != nil {
		return blogs.ErrDeleteBlog
	}

	if err := repo.BlogTags.DeleteByBlog(ctx, id); err != nil {
		return blogs.ErrDeleteBlog
	}

	if err := repo.Blogs.DeleteBlog(ctx, id); err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete blog")
		return blogs.ErrDeleteBlog
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blogs.ErrDeleteBlog
	}

	return nil
}

func makeBlogListResponse(blogsList []entity.Blog, total int) *blogs.BlogListResponse {
	items := make([]blogs.BlogListItem, 0, len(blogsList))
	for _, blog := range blogsList {
		items = append(items, blogs.BlogListItem{
			ID:           blog.ID,
			Title:        blog.Title,
			Slug:         blog.Slug,
			CategoryID:   blog.CategoryID,
			AuthorID:     blog.AuthorID,
			CreationDate: blog.CreationDate,
		})
	}

	return &blogs.BlogListResponse{
		Blogs: items,
		Total: total,
	}
}
