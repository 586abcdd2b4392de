package blogHandler

import (
	blogService "BlogGolang/internal/api/blog/service"
	"BlogGolang/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogsHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	blogsService blogService.IBlogsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	bs blogService.IBlogsService,
) *BlogsHandler {
	return &BlogsHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		blogsService: bs,
	}
}

func (h *BlogsHandler) Start(srv fiber.Router) {
	blogs := srv.Group("/blogs")

	blogs.Post("/", h.CreateBlog)
	blogs.Get("/", h.GetAllBlogs)
	blogs.Get("/category/:id", h.GetBlogsByCategory)
	blogs.Get("/:id", h.GetBlogByID)
	blogs.Put("/:id", h.UpdateBlog)
	blogs.Delete("/:id", h.DeleteBlog)

	categories := srv.Group("/categories")

	categories.Post("/", h.CreateCategory)
	categories.Get("/", h.GetAllCategories)
	categories.Get("/:id", h.GetCategoryByID)
	categories.Put("/:id", h.UpdateCategory)
	categories.Delete("/:id", h.DeleteCategory)
}
