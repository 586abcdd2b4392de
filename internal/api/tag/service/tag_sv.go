package tagService

import (
	tags "BlogGolang/internal/api/tag"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *tagsService) CreateTag(ctx context.Context, req tags.CreateTagRequest) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.tagsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return "", err
	}

	tagID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return "", err
	}

	tag := entity.Tag{
		ID:   tagID,
		Name: req.Name,
		Slug: req.Slug,
	}

	if err := repo.Tags.CreateTag(ctx, tag); err != nil {
		if errors.Is(err, tags.ErrTagSlugTaken) {
			return "", err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create tag")
		return "", tags.ErrCreateTag
	}

	return tagID, nil
}

func (s *tagsService) GetTagByID(ctx context.Context, id string) (tags.TagResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.tagsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return tags.TagResponse{}, err
	}

	tag, err := repo.Tags.GetTagByID(ctx, id)
	if err != nil {
		if errors.Is(err, tags.ErrTagNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Tag not found")
		}
		return tags.TagResponse{}, err
	}

	return makeTagResponse(tag), nil
}

func (s *tagsService) GetAllTags(ctx context.Context) (*tags.TagListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.tagsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	tagsList, err := repo.Tags.GetAllTags(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]tags.TagResponse, 0, len(tagsList))
	for _, tag := range tagsList {
		responses = append(responses, makeTagResponse(tag))
	}

	return &tags.TagListResponse{Tags: responses}, nil
}

func (s *tagsService) UpdateTag(ctx context.Context, id string, req tags.UpdateTagRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.tagsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	tag, err := repo.Tags.GetTagByID(ctx, id)
	if err != nil {
		return err
	}

	if req.Name != nil {
		tag.Name = *req.Name
	}
	if req.Slug != nil {
		tag.Slug = *req.Slug
	}

	if err := repo.Tags.UpdateTag(ctx, tag); err != nil {
		if errors.Is(err, tags.ErrTagNotFound) || errors.Is(err, tags.ErrTagSlugTaken) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update tag")
		return tags.ErrUpdateTag
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return tags.ErrUpdateTag
	}

	return nil
}

// DeleteTag detaches the tag from every blog before removing it,
// inside a single transaction.
func (s *tagsService) DeleteTag(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.tagsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	if _, err := repo.Tags.GetTagByID(ctx, id); err != nil {
		return err
	}

	if err := repo.Tags.DeleteBlogTagsByTag(ctx, id); err != nil {
		return tags.ErrDeleteTag
	}

	if err := repo.Tags.DeleteTag(ctx, id); err != nil {
		if errors.Is(err, tags.ErrTagNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete tag")
		return tags.ErrDeleteTag
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return tags.ErrDeleteTag
	}

	return nil
}

func makeTagResponse(tag entity.Tag) tags.TagResponse {
	return tags.TagResponse{
		ID:   tag.ID,
		Name: tag.Name,
		Slug: tag.Slug,
	}
}
