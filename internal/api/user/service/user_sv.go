package userService

import (
	users "BlogGolang/internal/api/user"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *usersService) CreateUser(ctx context.Context, req users.CreateUserRequest) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.usersRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return "", err
	}
	defer repo.Rollback()

	// Best-effort pre-check; the unique constraints are the real guard.
	if _, err := repo.Users.GetByUsername(ctx, req.Username); err == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"username":   req.Username,
		}).Warn("Username already exists")
		return "", users.ErrUsernameOrEmailTaken
	} else if !errors.Is(err, users.ErrUserNotFound) {
		return "", err
	}

	if _, err := repo.Users.GetByEmail(ctx, req.Email); err == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Email already exists")
		return "", users.ErrUsernameOrEmailTaken
	} else if !errors.Is(err, users.ErrUserNotFound) {
		return "", err
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return "", err
	}

	userID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return "", err
	}

	now := time.Now()

	user := entity.User{
		ID:        userID,
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashedPassword,
		Address:   req.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if req.Address != "" {
		if lat, lng, ok := s.geocoder.Resolve(ctx, req.Address); ok {
			user.Lat = &lat
			user.Lng = &lng
		}
	}

	if err := repo.Users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, users.ErrUsernameOrEmailTaken) {
			return "", err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return "", users.ErrCreateUser
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return "", users.ErrCreateUser
	}

	return userID, nil
}

func (s *usersService) GetUserByID(ctx context.Context, id string) (users.UserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.usersRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return users.UserResponse{}, err
	}

	user, err := repo.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("User not found")
		}
		return users.UserResponse{}, err
	}

	return makeUserResponse(user), nil
}

func (s *usersService) UpdateUser(ctx context.Context, id string, req users.UpdateUserRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.usersRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	user, err := repo.Users.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hashedPassword, err := s.bcryptUtils.HashPassword(*req.Password)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to hash password")
			return err
		}
		user.Password = hashedPassword
	}

	// Coordinates are re-resolved only when this request carries an address.
	if req.Address != nil {
		user.Address = *req.Address
		user.Lat = nil
		user.Lng = nil

		if *req.Address != "" {
			if lat, lng, ok := s.geocoder.Resolve(ctx, *req.Address); ok {
				user.Lat = &lat
				user.Lng = &lng
			}
		}
	}

	if err := repo.Users.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, users.ErrUserNotFound) || errors.Is(err, users.ErrUsernameOrEmailTaken) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update user")
		return users.ErrUpdateUser
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return users.ErrUpdateUser
	}

	return nil
}

func (s *usersService) DeleteUser(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.usersRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Users.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete user")
		return users.ErrDeleteUser
	}

	return nil
}

func (s *usersService) Login(ctx context.Context, req users.LoginRequest) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.usersRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return "", err
	}

	user, err := repo.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			// Unknown username answers the same as a wrong password.
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("Login attempt for unknown username")
			return "", users.ErrInvalidUsernameOrPassword
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by username")
		return "", err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Password comparison failed")
		return "", users.ErrInvalidUsernameOrPassword
	}

	return user.ID, nil
}

func makeUserResponse(user entity.User) users.UserResponse {
	return users.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Address:   user.Address,
		Lat:       user.Lat,
		Lng:       user.Lng,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
