package tagHandler

import (
	tagService "BlogGolang/internal/api/tag/service"
	"BlogGolang/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TagsHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	tagsService tagService.ITagsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ts tagService.ITagsService,
) *TagsHandler {
	return &TagsHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		tagsService: ts,
	}
}

func (h *TagsHandler) Start(srv fiber.Router) {
	tags := srv.Group("/tags")

	tags.Post("/", h.CreateTag)
	tags.Get("/", h.GetAllTags)
	tags.Get("/:id", h.GetTagByID)
	tags.Put("/:id", h.UpdateTag)
	tags.Delete("/:id", h.DeleteTag)
}
