package users

import (
	"BlogGolang/pkg/response"
	"net/http"
)

var (
	ErrUserNotFound              = response.NewError(http.StatusNotFound, "user not found")
	ErrUsernameOrEmailTaken      = response.NewError(http.StatusBadRequest, "username or email already exists")
	ErrInvalidUsernameOrPassword = response.NewError(http.StatusUnauthorized, "invalid username or password")
	ErrCurrentPasswordMismatch   = response.NewError(http.StatusBadRequest, "current password is incorrect")
	ErrCreateUser                = response.NewError(http.StatusInternalServerError, "failed to create user")
	ErrUpdateUser                = response.NewError(http.StatusInternalServerError, "failed to update user")
	ErrDeleteUser                = response.NewError(http.StatusInternalServerError, "failed to delete user")
)
