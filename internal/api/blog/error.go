package blogs

import (
	"BlogGolang/pkg/response"
	"net/http"
)

var (
	ErrBlogNotFound      = response.NewError(http.StatusNotFound, "blog not found")
	ErrCategoryNotFound  = response.NewError(http.StatusNotFound, "category not found")
	ErrBlogSlugTaken     = response.NewError(http.StatusBadRequest, "blog slug already exists")
	ErrCategorySlugTaken = response.NewError(http.StatusBadRequest, "category slug already exists")
	ErrInvalidAuthor     = response.NewError(http.StatusBadRequest, "author does not exist")
	ErrInvalidCategory   = response.NewError(http.StatusBadRequest, "category does not exist")
	ErrCreateBlog        = response.NewError(http.StatusInternalServerError, "failed to create blog")
	ErrUpdateBlog        = response.NewError(http.StatusInternalServerError, "failed to update blog")
	ErrDeleteBlog        = response.NewError(http.StatusInternalServerError, "failed to delete blog")
	ErrCreateCategory    = response.NewError(http.StatusInternalServerError, "failed to create category")
	ErrUpdateCategory    = response.NewError(http.StatusInternalServerError, "failed to update category")
	ErrDeleteCategory    = response.NewError(http.StatusInternalServerError, "failed to delete category")
)
