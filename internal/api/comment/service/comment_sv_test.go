package commentService

import (
	comments "BlogGolang/internal/api/comment"
	commentRepository "BlogGolang/internal/api/comment/repository"
	"BlogGolang/internal/entity"
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommentStore struct {
	comments map[string]entity.CommentWithRefs
	users    map[string]bool
	blogs    map[string]bool
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{
		comments: make(map[string]entity.CommentWithRefs),
		users:    make(map[string]bool),
		blogs:    make(map[string]bool),
	}
}

func (f *fakeCommentStore) NewClient(tx bool) (commentRepository.Client, error) {
	return commentRepository.Client{
		Comments: f,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func (f *fakeCommentStore) CreateComment(ctx context.Context, comment entity.Comment) error {
	f.comments[comment.ID] = entity.CommentWithRefs{
		Comment:   comment,
		Username:  "user-" + comment.UserID,
		BlogTitle: "blog-" + comment.BlogID,
	}
	return nil
}

func (f *fakeCommentStore) GetCommentByID(ctx context.Context, id string) (entity.CommentWithRefs, error) {
	comment, ok := f.comments[id]
	if !ok {
		return entity.CommentWithRefs{}, comments.ErrCommentNotFound
	}
	return comment, nil
}

func (f *fakeCommentStore) GetCommentsByBlog(ctx context.Context, blogID string) ([]entity.CommentWithRefs, error) {
	result := make([]entity.CommentWithRefs, 0)
	for _, comment := range f.comments {
		if comment.BlogID == blogID {
			result = append(result, comment)
		}
	}
	return result, nil
}

func (f *fakeCommentStore) DeleteComment(ctx context.Context, id string) error {
	if _, ok := f.comments[id]; !ok {
		return comments.ErrCommentNotFound
	}
	delete(f.comments, id)
	return nil
}

func (f *fakeCommentStore) UserExists(ctx context.Context, userID string) (bool, error) {
	return f.users[userID], nil
}

func (f *fakeCommentStore) BlogExists(ctx context.Context, blogID string) (bool, error) {
	return f.blogs[blogID], nil
}

type commentUtilsStub struct{}

func (commentUtilsStub) NewULIDFromTimestamp(_ time.Time) (string, error) {
	return "01K0TESTULID0000000000CM00", nil
}

func newTestCommentService(store *fakeCommentStore) ICommentsService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewCommentsService(logger, store, commentUtilsStub{})
}

func TestCreateComment(t *testing.T) {
	store := newFakeCommentStore()
	store.users["u1"] = true
	store.blogs["b1"] = true
	svc := newTestCommentService(store)

	commentID, err := svc.CreateComment(context.Background(), comments.CreateCommentRequest{
		Content: "nice post",
		UserID:  "u1",
		BlogID:  "b1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, commentID)

	assert.Contains(t, store.comments, commentID)
}

func TestCreateCommentUnknownUser(t *testing.T) {
	store := newFakeCommentStore()
	store.blogs["b1"] = true
	svc := newTestCommentService(store)

	_, err := svc.CreateComment(context.Background(), comments.CreateCommentRequest{
		Content: "nice post",
		UserID:  "ghost",
		BlogID:  "b1",
	})

	assert.ErrorIs(t, err, comments.ErrInvalidUser)
	assert.Empty(t, store.comments)
}

func TestCreateCommentUnknownBlog(t *testing.T) {
	store := newFakeCommentStore()
	store.users["u1"] = true
	svc := newTestCommentService(store)

	_, err := svc.CreateComment(context.Background(), comments.CreateCommentRequest{
		Content: "nice post",
		UserID:  "u1",
		BlogID:  "ghost",
	})

	assert.ErrorIs(t, err, comments.ErrInvalidBlog)
	assert.Empty(t, store.comments)
}

func TestGetCommentByIDIncludesRefs(t *testing.T) {
	store := newFakeCommentStore()
	store.comments["c1"] = entity.CommentWithRefs{
		Comment: entity.Comment{
			ID:      "c1",
			Content: "nice post",
			UserID:  "u1",
			BlogID:  "b1",
		},
		Username:  "alice",
		BlogTitle: "First Post",
	}
	svc := newTestCommentService(store)

	comment, err := svc.GetCommentByID(context.Background(), "c1")
	require.NoError(t, err)

	assert.Equal(t, "nice post", comment.Content)
	assert.Equal(t, "u1", comment.User.ID)
	assert.Equal(t, "alice", comment.User.Username)
	assert.Equal(t, "b1", comment.Blog.ID)
	assert.Equal(t, "First Post", comment.Blog.Title)
}

func TestGetCommentByIDNotFound(t *testing.T) {
	store := newFakeCommentStore()
	svc := newTestCommentService(store)

	_, err := svc.GetCommentByID(context.Background(), "missing")
	assert.ErrorIs(t, err, comments.ErrCommentNotFound)
}

func TestGetCommentsByBlog(t *testing.T) {
	store := newFakeCommentStore()
	store.blogs["b1"] = true
	store.comments["c1"] = entity.CommentWithRefs{
		Comment: entity.Comment{ID: "c1", BlogID: "b1", UserID: "u1"},
	}
	store.comments["c2"] = entity.CommentWithRefs{
		Comment: entity.Comment{ID: "c2", BlogID: "b2", UserID: "u1"},
	}
	svc := newTestCommentService(store)

	result, err := svc.GetCommentsByBlog(context.Background(), "b1")
	require.NoError(t, err)

	require.Len(t, result.Comments, 1)
	assert.Equal(t, "c1", result.Comments[0].ID)
}

func TestGetCommentsByBlogUnknownBlog(t *testing.T) {
	store := newFakeCommentStore()
	svc := newTestCommentService(store)

	_, err := svc.GetCommentsByBlog(context.Background(), "ghost")
	assert.ErrorIs(t, err, comments.ErrInvalidBlog)
}

func TestDeleteComment(t *testing.T) {
	store := newFakeCommentStore()
	store.comments["c1"] = entity.CommentWithRefs{
		Comment: entity.Comment{ID: "c1"},
	}
	svc := newTestCommentService(store)

	require.NoError(t, svc.DeleteComment(context.Background(), "c1"))
	assert.Empty(t, store.comments)
}

func TestDeleteCommentNotFound(t *testing.T) {
	store := newFakeCommentStore()
	svc := newTestCommentService(store)

	err := svc.DeleteComment(context.Background(), "missing")
	assert.ErrorIs(t, err, comments.ErrCommentNotFound)
}
