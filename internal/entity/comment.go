package entity

import "time"

type Comment struct {
	ID           string    `db:"id"`
	Content      string    `db:"content"`
	UserID       string    `db:"user_id"`
	BlogID       string    `db:"blog_id"`
	CreationDate time.Time `db:"creation_date"`
}

type CommentWithRefs struct {
	Comment
	Username  string `db:"username"`
	BlogTitle string `db:"blog_title"`
}
