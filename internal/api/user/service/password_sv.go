package userService

import (
	users "BlogGolang/internal/api/user"
	contextPkg "BlogGolang/pkg/context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *usersService) ChangePassword(ctx context.Context, id string, req users.ChangePasswordRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.usersRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	user, err := repo.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("User not found")
		}
		return err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.CurrentPassword); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Current password mismatch")
		return users.ErrCurrentPasswordMismatch
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return err
	}

	if err := repo.Users.UpdatePassword(ctx, id, hashedPassword); err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update user password")
		return users.ErrUpdateUser
	}

	return nil
}
