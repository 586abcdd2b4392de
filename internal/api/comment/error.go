package comments

import (
	"BlogGolang/pkg/response"
	"net/http"
)

var (
	ErrCommentNotFound = response.NewError(http.StatusNotFound, "comment not found")
	ErrInvalidUser     = response.NewError(http.StatusBadRequest, "user does not exist")
	ErrInvalidBlog     = response.NewError(http.StatusBadRequest, "blog does not exist")
	ErrCreateComment   = response.NewError(http.StatusInternalServerError, "failed to create comment")
	ErrDeleteComment   = response.NewError(http.StatusInternalServerError, "failed to delete comment")
)
