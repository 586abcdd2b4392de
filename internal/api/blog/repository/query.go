package blogRepository

const (
	queryCreateBlog = `
		INSERT INTO blogs (
			id,
			title,
			slug,
			content,
			author_id,
			category_id,
			creation_date
		) VALUES (
			:id,
			:title,
			:slug,
			:content,
			:author_id,
			:category_id,
			:creation_date
		)
	`

	queryGetBlogByID = `
		SELECT
			b.id,
			b.title,
			b.slug,
			b.content,
			b.author_id,
			b.category_id,
			b.creation_date,
			u.username AS author_username,
			c.name AS category_name,
			c.slug AS category_slug
		FROM blogs b
		JOIN users u ON u.id = b.author_id
		JOIN categories c ON c.id = b.category_id
		WHERE b.id = :id
	`

	queryGetAllBlogs = `
		SELECT
			id,
			title,
			slug,
			content,
			author_id,
			category_id,
			creation_date
		FROM blogs
		ORDER BY creation_date DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountAllBlogs = `
		SELECT COUNT(*)
		FROM blogs
	`

	queryGetBlogsByCategory = `
		SELECT
			id,
			title,
			slug,
			content,
			author_id,
			category_id,
			creation_date
		FROM blogs
		WHERE category_id = :category_id
		ORDER BY creation_date DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountBlogsByCategory = `
		SELECT COUNT(*)
		FROM blogs
		WHERE category_id = :category_id
	`

	queryUpdateBlog = `
		UPDATE blogs
		SET
			title = :title,
			slug = :slug,
			content = :content,
			category_id = :category_id
		WHERE id = :id
	`

	queryDeleteBlog = `
		DELETE FROM blogs
		WHERE id = :id
	`

	queryDeleteCommentsByBlog = `
		DELETE FROM comments
		WHERE blog_id = :blog_id
	`

	queryAuthorExists = `
		SELECT EXISTS (
			SELECT 1
			FROM users
			WHERE id = :id
		)
	`

	queryCreateCategory = `
		INSERT INTO categories (
			id,
			name,
			slug
		) VALUES (
			:id,
			:name,
			:slug
		)
	`

	queryGetCategoryByID = `
		SELECT
			id,
			name,
			slug
		FROM categories
		WHERE id = :id
	`

	queryGetAllCategories = `
		SELECT
			id,
			name,
			slug
		FROM categories
		ORDER BY name ASC
	`

	queryUpdateCategory = `
		UPDATE categories
		SET
			name = :name,
			slug = :slug
		WHERE id = :id
	`

	queryDeleteCategory = `
		DELETE FROM categories
		WHERE id = :id
	`

	queryGetTagByID = `
		SELECT
			id,
			name,
			slug
		FROM tags
		WHERE id = :id
	`

	queryAttachTag = `
		INSERT INTO blog_tags (
			blog_id,
			tag_id
		) VALUES (
			:blog_id,
			:tag_id
		)
		ON CONFLICT (blog_id, tag_id) DO NOTHING
	`

	queryGetTagsByBlog = `
		SELECT
			t.id,
			t.name,
			t.slug
		FROM tags t
		JOIN blog_tags bt ON bt.tag_id = t.id
		WHERE bt.blog_id = :blog_id
		ORDER BY t.name ASC
	`

	queryDeleteBlogTagsByBlog = `
		DELETE FROM blog_tags
		WHERE blog_id = :blog_id
	`
)
