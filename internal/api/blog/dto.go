package blogs

import "time"

type CreateBlogRequest struct {
	Title      string   `json:"title" validate:"required,min=3,max=256"`
	Slug       string   `json:"slug" validate:"required,min=1,max=256"`
	Content    string   `json:"content" validate:"required"`
	AuthorID   string   `json:"author_id" validate:"required"`
	CategoryID string   `json:"category_id" validate:"required"`
	Tags       []string `json:"tags" validate:"omitempty,dive,required"`
}

type UpdateBlogRequest struct {
	Title      *string `json:"title" validate:"omitempty,min=3,max=256"`
	Slug       *string `json:"slug" validate:"omitempty,min=1,max=256"`
	Content    *string `json:"content" validate:"omitempty"`
	CategoryID *string `json:"category_id" validate:"omitempty"`
}

type AuthorSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type BlogResponse struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Slug         string           `json:"slug"`
	Content      string           `json:"content"`
	CreationDate time.Time        `json:"creation_date"`
	Author       AuthorSummary    `json:"author"`
	Category     CategoryResponse `json:"category"`
	Tags         []TagSummary     `json:"tags"`
}

type BlogListItem struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	CategoryID   string    `json:"category_id"`
	AuthorID     string    `json:"author_id"`
	CreationDate time.Time `json:"creation_date"`
}

type BlogListResponse struct {
	Blogs []BlogListItem `json:"blogs"`
	Total int            `json:"total"`
}

type TagSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=256"`
	Slug string `json:"slug" validate:"required,min=1,max=256"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=256"`
	Slug *string `json:"slug" validate:"omitempty,min=1,max=256"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
