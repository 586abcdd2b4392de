package commentHandler

import (
	commentService "BlogGolang/internal/api/comment/service"
	"BlogGolang/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CommentsHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	commentsService commentService.ICommentsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs commentService.ICommentsService,
) *CommentsHandler {
	return &CommentsHandler{
		log:             log,
		validator:       validate,
		middleware:      middleware,
		commentsService: cs,
	}
}

func (h *CommentsHandler) Start(srv fiber.Router) {
	comments := srv.Group("/comments")

	comments.Post("/", h.CreateComment)
	comments.Get("/blog/:id", h.GetCommentsByBlog)
	comments.Get("/:id", h.GetCommentByID)
	comments.Delete("/:id", h.DeleteComment)
}
