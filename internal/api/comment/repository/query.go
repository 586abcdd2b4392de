package commentRepository

const (
	queryCreateComment = `
		INSERT INTO comments (
			id,
			content,
			user_id,
			blog_id,
			creation_date
		) VALUES (
			:id,
			:content,
			:user_id,
			:blog_id,
			:creation_date
		)
	`

	queryGetCommentByID = `
		SELECT
			c.id,
			c.content,
			c.user_id,
			c.blog_id,
			c.creation_date,
			u.username AS username,
			b.title AS blog_title
		FROM comments c
		JOIN users u ON u.id = c.user_id
		JOIN blogs b ON b.id = c.blog_id
		WHERE c.id = :id
	`

	queryGetCommentsByBlog = `
		SELECT
			c.id,
			c.content,
			c.user_id,
			c.blog_id,
			c.creation_date,
			u.username AS username,
			b.title AS blog_title
		FROM comments c
		JOIN users u ON u.id = c.user_id
		JOIN blogs b ON b.id = c.blog_id
		WHERE c.blog_id = :blog_id
		ORDER BY c.creation_date DESC
	`

	queryDeleteComment = `
		DELETE FROM comments
		WHERE id = :id
	`

	queryUserExists = `
		SELECT EXISTS (
			SELECT 1
			FROM users
			WHERE id = :id
		)
	`

	queryBlogExists = `
		SELECT EXISTS (
			SELECT 1
			FROM blogs
			WHERE id = :id
		)
	`
)
