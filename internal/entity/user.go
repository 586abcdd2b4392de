package entity

import "time"

type User struct {
	ID        string    `db:"id"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	Address   string    `db:"address"`
	Lat       *float64  `db:"lat"`
	Lng       *float64  `db:"lng"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
