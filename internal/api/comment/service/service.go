package commentService

import (
	comments "BlogGolang/internal/api/comment"
	commentRepository "BlogGolang/internal/api/comment/repository"
	"BlogGolang/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type ICommentsService interface {
	CreateComment(ctx context.Context, req comments.CreateCommentRequest) (string, error)
	GetCommentByID(ctx context.Context, id string) (*comments.CommentResponse, error)
	GetCommentsByBlog(ctx context.Context, blogID string) (*comments.CommentListResponse, error)
	DeleteComment(ctx context.Context, id string) error
}

type commentsService struct {
	log          *logrus.Logger
	commentsRepo commentRepository.Repository
	utils        utils.IUtils
}

func NewCommentsService(
	log *logrus.Logger,
	commentsRepo commentRepository.Repository,
	utils utils.IUtils,
) ICommentsService {
	return &commentsService{
		log:          log,
		commentsRepo: commentsRepo,
		utils:        utils,
	}
}
