package commentService

import (
	comments "BlogGolang/internal/api/comment"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *commentsService) CreateComment(ctx context.Context, req comments.CreateCommentRequest) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.commentsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return "", err
	}

	userExists, err := repo.Comments.UserExists(ctx, req.UserID)
	if err != nil {
		return "", err
	}
	if !userExists {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    req.UserID,
		}).Warn("Comment user not found")
		return "", comments.ErrInvalidUser
	}

	blogExists, err := repo.Comments.BlogExists(ctx, req.BlogID)
	if err != nil {
		return "", err
	}
	if !blogExists {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    req.BlogID,
		}).Warn("Comment blog not found")
		return "", comments.ErrInvalidBlog
	}

	commentID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return "", err
	}

	comment := entity.Comment{
		ID:           commentID,
		Content:      req.Content,
		UserID:       req.UserID,
		BlogID:       req.BlogID,
		CreationDate: time.Now(),
	}

	if err := repo.Comments.CreateComment(ctx, comment); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create comment")
		return "", comments.ErrCreateComment
	}

	return commentID, nil
}

func (s *commentsService) GetCommentByID(ctx context.Context, id string) (*comments.CommentResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.commentsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	comment, err := repo.Comments.GetCommentByID(ctx, id)
	if err != nil {
		if errors.Is(err, comments.ErrCommentNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Comment not found")
		}
		return nil, err
	}

	response := makeCommentResponse(comment)

	return &response, nil
}

func (s *commentsService) GetCommentsByBlog(ctx context.Context, blogID string) (*comments.CommentListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.commentsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	blogExists, err := repo.Comments.BlogExists(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if !blogExists {
		return nil, comments.ErrInvalidBlog
	}

	commentsList, err := repo.Comments.GetCommentsByBlog(ctx, blogID)
	if err != nil {
		return nil, err
	}

	responses := make([]comments.CommentResponse, 0, len(commentsList))
	for _, comment := range commentsList {
		responses = append(responses, makeCommentResponse(comment))
	}

	return &comments.CommentListResponse{Comments: responses}, nil
}

func (s *commentsService) DeleteComment(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.commentsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Comments.DeleteComment(ctx, id); err != nil {
		if errors.Is(err, comments.ErrCommentNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete comment")
		return comments.ErrDeleteComment
	}

	return nil
}

func makeCommentResponse(comment entity.CommentWithRefs) comments.CommentResponse {
	return comments.CommentResponse{
		ID:           comment.ID,
		Content:      comment.Content,
		CreationDate: comment.CreationDate,
		User: comments.CommentUser{
			ID:       comment.UserID,
			Username: comment.Username,
		},
		Blog: comments.CommentBlog{
			ID:    comment.BlogID,
			Title: comment.BlogTitle,
		},
	}
}
