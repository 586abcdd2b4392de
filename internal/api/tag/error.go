package tags

import (
	"BlogGolang/pkg/response"
	"net/http"
)

var (
	ErrTagNotFound  = response.NewError(http.StatusNotFound, "tag not found")
	ErrTagSlugTaken = response.NewError(http.StatusBadRequest, "tag slug already exists")
	ErrCreateTag    = response.NewError(http.StatusInternalServerError, "failed to create tag")
	ErrUpdateTag    = response.NewError(http.StatusInternalServerError, "failed to update tag")
	ErrDeleteTag    = response.NewError(http.StatusInternalServerError, "failed to delete tag")
)
