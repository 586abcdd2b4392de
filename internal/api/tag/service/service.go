package tagService

import (
	tags "BlogGolang/internal/api/tag"
	tagRepository "BlogGolang/internal/api/tag/repository"
	"BlogGolang/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type ITagsService interface {
	CreateTag(ctx context.Context, req tags.CreateTagRequest) (string, error)
	GetTagByID(ctx context.Context, id string) (tags.TagResponse, error)
	GetAllTags(ctx context.Context) (*tags.TagListResponse, error)
	UpdateTag(ctx context.Context, id string, req tags.UpdateTagRequest) error
	DeleteTag(ctx context.Context, id string) error
}

type tagsService struct {
	log      *logrus.Logger
	tagsRepo tagRepository.Repository
	utils    utils.IUtils
}

func NewTagsService(
	log *logrus.Logger,
	tagsRepo tagRepository.Repository,
	utils utils.IUtils,
) ITagsService {
	return &tagsService{
		log:      log,
		tagsRepo: tagsRepo,
		utils:    utils,
	}
}
