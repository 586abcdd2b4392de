package blogRepository

import (
	blogs "BlogGolang/internal/api/blog"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type CategoryDB struct {
	ID   sql.NullString `db:"id"`
	Name sql.NullString `db:"name"`
	Slug sql.NullString `db:"slug"`
}

func (r *categoriesRepository) CreateCategory(ctx context.Context, category entity.Category) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":   category.ID,
		"name": category.Name,
		"slug": category.Slug,
	}

	query, args, err := sqlx.Named(queryCreateCategory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateCategory")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			if pqErr.Constraint == "categories_slug_key" {
				r.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"slug":       category.Slug,
				}).Warn("Category slug already exists")
				return blogs.ErrCategorySlugTaken
			}
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating category")
		return err
	}

	return nil
}

func (r *categoriesRepository) GetCategoryByID(ctx context.Context, id string) (entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var category CategoryDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetCategoryByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryByID named query preparation err")
		return entity.Category{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&category); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetCategoryByID no rows found")
			return entity.Category{}, blogs.ErrCategoryNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryByID execution err")
		return entity.Category{}, err
	}

	return r.makeCategory(category), nil
}

func (r *categoriesRepository) GetAllCategories(ctx context.Context) ([]entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var categoriesList []CategoryDB

	query, args, err := sqlx.Named(queryGetAllCategories, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllCategories named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &categoriesList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllCategories execution err")
		return nil, err
	}

	var result []entity.Category
	for _, categoryDB := range categoriesList {
		result = append(result, r.makeCategory(categoryDB))
	}

	return result, nil
}

func (r *categoriesRepository) UpdateCategory(ctx context.Context, category entity.Category) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":   category.ID,
		"name": category.Name,
		"slug": category.Slug,
	}

	query, args, err := sqlx.Named(queryUpdateCategory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateCategory named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			if pqErr.Constraint == "categories_slug_key" {
				r.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"slug":       category.Slug,
				}).Warn("Category slug already exists")
				return blogs.ErrCategorySlugTaken
			}
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateCategory execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateCategory rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         category.ID,
		}).Warn("UpdateCategory no rows affected")
		return blogs.ErrCategoryNotFound
	}

	return nil
}

func (r *categoriesRepository) DeleteCategory(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteCategory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCategory named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCategory execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCategory rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeleteCategory no rows affected")
		return blogs.ErrCategoryNotFound
	}

	return nil
}

func (r *categoriesRepository) makeCategory(category CategoryDB) entity.Category {
	return entity.Category{
		ID:   category.ID.String,
		Name: category.Name.String,
		Slug: category.Slug.String,
	}
}
