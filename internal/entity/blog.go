package entity

import "time"

type Blog struct {
	ID           string    `db:"id"`
	Title        string    `db:"title"`
	Slug         string    `db:"slug"`
	Content      string    `db:"content"`
	AuthorID     string    `db:"author_id"`
	CategoryID   string    `db:"category_id"`
	CreationDate time.Time `db:"creation_date"`
}

// BlogWithRefs is a blog row joined with its author and category, the shape
// the detail endpoint serves.
type BlogWithRefs struct {
	Blog
	AuthorUsername string `db:"author_username"`
	CategoryName   string `db:"category_name"`
	CategorySlug   string `db:"category_slug"`
}

type Category struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	Slug string `db:"slug"`
}

type Tag struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	Slug string `db:"slug"`
}
