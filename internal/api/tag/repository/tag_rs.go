package tagRepository

import (
	tags "BlogGolang/internal/api/tag"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type TagDB struct {
	ID   sql.NullString `db:"id"`
	Name sql.NullString `db:"name"`
	Slug sql.NullString `db:"slug"`
}

func (r *tagsRepository) CreateTag(ctx context.Context, tag entity.Tag) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":   tag.ID,
		"name": tag.Name,
		"slug": tag.Slug,
	}

	query, args, err := sqlx.Named(queryCreateTag, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateTag named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			if pqErr.Constraint == "tags_slug_key" {
				r.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"slug":       tag.Slug,
				}).Warn("Tag slug already exists")
				return tags.ErrTagSlugTaken
			}
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateTag execution err")
		return err
	}

	return nil
}

func (r *tagsRepository) GetTagByID(ctx context.Context, id string) (entity.Tag, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var tag TagDB

	query, args, err := sqlx.Named(queryGetTagByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTagByID named query preparation err")
		return entity.Tag{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&tag); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Tag no rows found")
			return entity.Tag{}, tags.ErrTagNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTagByID query execution err")
		return entity.Tag{}, err
	}

	return makeTag(tag), nil
}

func (r *tagsRepository) GetAllTags(ctx context.Context) ([]entity.Tag, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []TagDB

	query := r.q.Rebind(queryGetAllTags)

	if err := r.q.SelectContext(ctx, &rows, query); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllTags query execution err")
		return nil, err
	}

	result := make([]entity.Tag, 0, len(rows))
	for _, row := range rows {
		result = append(result, makeTag(row))
	}

	return result, nil
}

func (r *tagsRepository) UpdateTag(ctx context.Context, tag entity.Tag) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":   tag.ID,
		"name": tag.Name,
		"slug": tag.Slug,
	}

	query, args, err := sqlx.Named(queryUpdateTag, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTag named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			if pqErr.Constraint == "tags_slug_key" {
				r.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"slug":       tag.Slug,
				}).Warn("Tag slug already exists")
				return tags.ErrTagSlugTaken
			}
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTag execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTag rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         tag.ID,
		}).Warn("UpdateTag no rows affected")
		return tags.ErrTagNotFound
	}

	return nil
}

func (r *tagsRepository) DeleteTag(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteTag, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTag named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTag execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTag rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeleteTag no rows affected")
		return tags.ErrTagNotFound
	}

	return nil
}

func (r *tagsRepository) DeleteBlogTagsByTag(ctx context.Context, tagID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteBlogTagsByTag, map[string]interface{}{"tag_id": tagID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBlogTagsByTag named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBlogTagsByTag execution err")
		return err
	}

	return nil
}

func makeTag(tag TagDB) entity.Tag {
	return entity.Tag{
		ID:   tag.ID.String,
		Name: tag.Name.String,
		Slug: tag.Slug.String,
	}
}
