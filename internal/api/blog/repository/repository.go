package blogRepository

import (
	"BlogGolang/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Blogs:      &blogsRepository{q: sqlExecutor, log: r.log},
		Categories: &categoriesRepository{q: sqlExecutor, log: r.log},
		BlogTags:   &blogTagsRepository{q: sqlExecutor, log: r.log},
		Commit:     commitFunc,
		Rollback:   rollbackFunc,
	}, nil
}

type Client struct {
	Blogs interface {
		CreateBlog(ctx context.Context, blog entity.Blog) error
		GetBlogByID(ctx context.Context, id string) (entity.BlogWithRefs, error)
		GetAllBlogs(ctx context.Context, limit, offset int) ([]entity.Blog, int, error)
		GetBlogsByCategory(ctx context.Context, categoryID string, limit, offset int) ([]entity.Blog, int, error)
		UpdateBlog(ctx context.Context, blog entity.Blog) error
		DeleteBlog(ctx context.Context, id string) error
		DeleteCommentsByBlog(ctx context.Context, blogID string) error
		AuthorExists(ctx context.Context, authorID string) (bool, error)
	}

	Categories interface {
		CreateCategory(ctx context.Context, category entity.Category) error
		GetCategoryByID(ctx context.Context, id string) (entity.Category, error)
		GetAllCategories(ctx context.Context) ([]entity.Category, error)
		UpdateCategory(ctx context.Context, category entity.Category) error
		DeleteCategory(ctx context.Context, id string) error
	}

	BlogTags interface {
		GetTagByID(ctx context.Context, id string) (entity.Tag, bool, error)
		AttachTag(ctx context.Context, blogID, tagID string) error
		GetTagsByBlog(ctx context.Context, blogID string) ([]entity.Tag, error)
		DeleteByBlog(ctx context.Context, blogID string) error
	}

	Commit   func() error
	Rollback func() error
}

type blogsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type categoriesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type blogTagsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
