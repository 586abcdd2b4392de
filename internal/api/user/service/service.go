package userService

import (
	users "BlogGolang/internal/api/user"
	userRepository "BlogGolang/internal/api/user/repository"
	"BlogGolang/pkg/bcrypt"
	"BlogGolang/pkg/geocode"
	"BlogGolang/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type IUsersService interface {
	CreateUser(ctx context.Context, req users.CreateUserRequest) (string, error)
	GetUserByID(ctx context.Context, id string) (users.UserResponse, error)
	UpdateUser(ctx context.Context, id string, req users.UpdateUserRequest) error
	DeleteUser(ctx context.Context, id string) error
	ChangePassword(ctx context.Context, id string, req users.ChangePasswordRequest) error
	Login(ctx context.Context, req users.LoginRequest) (string, error)
}

type usersService struct {
	log         *logrus.Logger
	usersRepo   userRepository.Repository
	bcryptUtils bcrypt.IBcrypt
	geocoder    geocode.ItfGeocode
	utils       utils.IUtils
}

func New(
	log *logrus.Logger,
	usersRepo userRepository.Repository,
	bcryptUtils bcrypt.IBcrypt,
	geocoder geocode.ItfGeocode,
	utils utils.IUtils,
) IUsersService {
	return &usersService{
		log:         log,
		usersRepo:   usersRepo,
		bcryptUtils: bcryptUtils,
		geocoder:    geocoder,
		utils:       utils,
	}
}
