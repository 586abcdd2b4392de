package blogRepository

import (
	blogs "BlogGolang/internal/api/blog"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type BlogDB struct {
	ID           sql.NullString `db:"id"`
	Title        sql.NullString `db:"title"`
	Slug         sql.NullString `db:"slug"`
	Content      sql.NullString `db:"content"`
	AuthorID     sql.NullString `db:"author_id"`
	CategoryID   sql.NullString `db:"category_id"`
	CreationDate time.Time      `db:"creation_date"`
}

type BlogWithRefsDB struct {
	BlogDB
	AuthorUsername sql.NullString `db:"author_username"`
	CategoryName   sql.NullString `db:"category_name"`
	CategorySlug   sql.NullString `db:"category_slug"`
}

func (r *blogsRepository) CreateBlog(ctx context.Context, blog entity.Blog) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":            blog.ID,
		"title":         blog.Title,
		"slug":          blog.Slug,
		"content":       blog.Content,
		"author_id":     blog.AuthorID,
		"category_id":   blog.CategoryID,
		"creation_date": blog.CreationDate,
	}

	query, args, err := sqlx.Named(queryCreateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateBlog")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			if pqErr.Constraint == "blogs_slug_key" {
				r.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"slug":       blog.Slug,
				}).Warn("Blog slug already exists")
				return blogs.ErrBlogSlugTaken
			}
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating blog")
		return err
	}

	return nil
}

func (r *blogsRepository) GetBlogByID(ctx context.Context, id string) (entity.BlogWithRefs, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var blog BlogWithRefsDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetBlogByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID named query preparation err")
		return entity.BlogWithRefs{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&blog); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetBlogByID no rows found")
			return entity.BlogWithRefs{}, blogs.ErrBlogNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID execution err")
		return entity.BlogWithRefs{}, err
	}

	return entity.BlogWithRefs{
		Blog:           r.makeBlog(blog.BlogDB),
		AuthorUsername: blog.AuthorUsername.String,
		CategoryName:   blog.CategoryName.String,
		CategorySlug:   blog.CategorySlug.String,
	}, nil
}

func (r *blogsRepository) GetAllBlogs(ctx context.Context, limit, offset int) ([]entity.Blog, int, error) {
	return r.listBlogs(ctx, queryGetAllBlogs, queryCountAllBlogs, map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	}, map[string]interface{}{}, "GetAllBlogs")
}

func (r *blogsRepository) GetBlogsByCategory(ctx context.Context, categoryID string, limit, offset int) ([]entity.Blog, int, error) {
	return r.listBlogs(ctx, queryGetBlogsByCategory, queryCountBlogsByCategory, map[string]interface{}{
		"category_id": categoryID,
		"limit":       limit,
		"offset":      offset,
	}, map[string]interface{}{
		"category_id": categoryID,
	}, "GetBlogsByCategory")
}

func (r *blogsRepository) listBlogs(ctx context.Context, listQuery, countQuery string, listArgs, countArgs map[string]interface{}, operation string) ([]entity.Blog, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var blogsList []BlogDB
	var total int

	cq, cargs, err := sqlx.Named(countQuery, countArgs)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"operation":  operation,
			"error":      err.Error(),
		}).Error("Blog count named query preparation err")
		return nil, 0, err
	}

	cq = r.q.Rebind(cq)

	if err := r.q.QueryRowxContext(ctx, cq, cargs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"operation":  operation,
			"error":      err.Error(),
		}).Error("Blog count execution err")
		return nil, 0, err
	}

	query, args, err := sqlx.Named(listQuery, listArgs)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"operation":  operation,
			"error":      err.Error(),
		}).Error("Blog list named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &blogsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"operation":  operation,
			"error":      err.Error(),
		}).Error("Blog list execution err")
		return nil, 0, err
	}

	var result []entity.Blog
	for _, blogDB := range blogsList {
		result = append(result, r.makeBlog(blogDB))
	}

	return result, total, nil
}

func (r *blogsRepository) UpdateBlog(ctx context.Context, blog entity.Blog) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          blog.ID,
		"title":       blog.Title,
		"slug":        blog.Slug,
		"content":     blog.Content,
		"category_id": blog.CategoryID,
	}

	query, args, err := sqlx.Named(queryUpdateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBlog named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			if pqErr.Constraint == "blogs_slug_key" {
				r.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"slug":       blog.Slug,
				}).Warn("Blog slug already exists")
				return blogs.ErrBlogSlugTaken
			}
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBlog execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBlog rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         blog.ID,
		}).Warn("UpdateBlog no rows affected")
		return blogs.ErrBlogNotFound
	}

	return nil
}

func (r *blogsRepository) DeleteBlog(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBlog named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBlog execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBlog rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeleteBlog no rows affected")
		return blogs.ErrBlogNotFound
	}

	return nil
}

func (r *blogsRepository) DeleteCommentsByBlog(ctx context.Context, blogID string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"blog_id": blogID,
	}

	query, args, err := sqlx.Named(queryDeleteCommentsByBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCommentsByBlog named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCommentsByBlog execution err")
		return err
	}

	return nil
}

func (r *blogsRepository) AuthorExists(ctx context.Context, authorID string) (bool, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var exists bool

	argsKV := map[string]interface{}{
		"id": authorID,
	}

	query, args, err := sqlx.Named(queryAuthorExists, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AuthorExists named query preparation err")
		return false, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&exists); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AuthorExists execution err")
		return false, err
	}

	return exists, nil
}

func (r *blogsRepository) makeBlog(blog BlogDB) entity.Blog {
	return entity.Blog{
		ID:           blog.ID.String,
		Title:        blog.Title.String,
		Slug:         blog.Slug.String,
		Content:      blog.Content.String,
		AuthorID:     blog.AuthorID.String,
		CategoryID:   blog.CategoryID.String,
		CreationDate: blog.CreationDate,
	}
}
