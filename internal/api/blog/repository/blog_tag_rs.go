package blogRepository

import (
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type TagDB struct {
	ID   sql.NullString `db:"id"`
	Name sql.NullString `db:"name"`
	Slug sql.NullString `db:"slug"`
}

// GetTagByID reports found=false for unknown ids instead of an error so a
// blog create can skip them silently.
func (r *blogTagsRepository) GetTagByID(ctx context.Context, id string) (entity.Tag, bool, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var tag TagDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetTagByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTagByID named query preparation err")
		return entity.Tag{}, false, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&tag); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Tag{}, false, nil
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTagByID execution err")
		return entity.Tag{}, false, err
	}

	return entity.Tag{
		ID:   tag.ID.String,
		Name: tag.Name.String,
		Slug: tag.Slug.String,
	}, true, nil
}

func (r *blogTagsRepository) AttachTag(ctx context.Context, blogID, tagID string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"blog_id": blogID,
		"tag_id":  tagID,
	}

	query, args, err := sqlx.Named(queryAttachTag, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AttachTag named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    blogID,
			"tag_id":     tagID,
			"error":      err.Error(),
		}).Error("AttachTag execution err")
		return err
	}

	return nil
}

func (r *blogTagsRepository) GetTagsByBlog(ctx context.Context, blogID string) ([]entity.Tag, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var tagsList []TagDB

	argsKV := map[string]interface{}{
		"blog_id": blogID,
	}

	query, args, err := sqlx.Named(queryGetTagsByBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTagsByBlog named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &tagsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTagsByBlog execution err")
		return nil, err
	}

	var result []entity.Tag
	for _, tagDB := range tagsList {
		result = append(result, entity.Tag{
			ID:   tagDB.ID.String,
			Name: tagDB.Name.String,
			Slug: tagDB.Slug.String,
		})
	}

	return result, nil
}

func (r *blogTagsRepository) DeleteByBlog(ctx context.Context, blogID string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"blog_id": blogID,
	}

	query, args, err := sqlx.Named(queryDeleteBlogTagsByBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteByBlog named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    blogID,
			"error":      err.Error(),
		}).Error("DeleteByBlog execution err")
		return err
	}

	return nil
}
