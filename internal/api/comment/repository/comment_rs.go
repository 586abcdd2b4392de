package commentRepository

import (
	comments "BlogGolang/internal/api/comment"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type CommentWithRefsDB struct {
	ID           sql.NullString `db:"id"`
	Content      sql.NullString `db:"content"`
	UserID       sql.NullString `db:"user_id"`
	BlogID       sql.NullString `db:"blog_id"`
	CreationDate sql.NullTime   `db:"creation_date"`
	Username     sql.NullString `db:"username"`
	BlogTitle    sql.NullString `db:"blog_title"`
}

func (r *commentsRepository) CreateComment(ctx context.Context, comment entity.Comment) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":            comment.ID,
		"content":       comment.Content,
		"user_id":       comment.UserID,
		"blog_id":       comment.BlogID,
		"creation_date": comment.CreationDate,
	}

	query, args, err := sqlx.Named(queryCreateComment, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateComment named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateComment execution err")
		return err
	}

	return nil
}

func (r *commentsRepository) GetCommentByID(ctx context.Context, id string) (entity.CommentWithRefs, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var comment CommentWithRefsDB

	query, args, err := sqlx.Named(queryGetCommentByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentByID named query preparation err")
		return entity.CommentWithRefs{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&comment); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Comment no rows found")
			return entity.CommentWithRefs{}, comments.ErrCommentNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentByID query execution err")
		return entity.CommentWithRefs{}, err
	}

	return makeCommentWithRefs(comment), nil
}

func (r *commentsRepository) GetCommentsByBlog(ctx context.Context, blogID string) ([]entity.CommentWithRefs, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []CommentWithRefsDB

	query, args, err := sqlx.Named(queryGetCommentsByBlog, map[string]interface{}{"blog_id": blogID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentsByBlog named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentsByBlog query execution err")
		return nil, err
	}

	result := make([]entity.CommentWithRefs, 0, len(rows))
	for _, row := range rows {
		result = append(result, makeCommentWithRefs(row))
	}

	return result, nil
}

func (r *commentsRepository) DeleteComment(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteComment, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteComment named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteComment execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteComment rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeleteComment no rows affected")
		return comments.ErrCommentNotFound
	}

	return nil
}

func (r *commentsRepository) UserExists(ctx context.Context, userID string) (bool, error) {
	return r.exists(ctx, queryUserExists, userID, "UserExists")
}

func (r *commentsRepository) BlogExists(ctx context.Context, blogID string) (bool, error) {
	return r.exists(ctx, queryBlogExists, blogID, "BlogExists")
}

func (r *commentsRepository) exists(ctx context.Context, namedQuery, id, operation string) (bool, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var exists bool

	query, args, err := sqlx.Named(namedQuery, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"operation":  operation,
			"error":      err.Error(),
		}).Error("Exists named query preparation err")
		return false, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&exists); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"operation":  operation,
			"error":      err.Error(),
		}).Error("Exists execution err")
		return false, err
	}

	return exists, nil
}

func makeCommentWithRefs(comment CommentWithRefsDB) entity.CommentWithRefs {
	return entity.CommentWithRefs{
		Comment: entity.Comment{
			ID:           comment.ID.String,
			Content:      comment.Content.String,
			UserID:       comment.UserID.String,
			BlogID:       comment.BlogID.String,
			CreationDate: comment.CreationDate.Time,
		},
		Username:  comment.Username.String,
		BlogTitle: comment.BlogTitle.String,
	}
}
