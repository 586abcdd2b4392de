package tagRepository

const (
	queryCreateTag = `
		INSERT INTO tags (
			id,
			name,
			slug
		) VALUES (
			:id,
			:name,
			:slug
		)
	`

	queryGetTagByID = `
		SELECT
			id,
			name,
			slug
		FROM tags
		WHERE id = :id
	`

	queryGetAllTags = `
		SELECT
			id,
			name,
			slug
		FROM tags
		ORDER BY name ASC
	`

	queryUpdateTag = `
		UPDATE tags
		SET
			name = :name,
			slug = :slug
		WHERE id = :id
	`

	queryDeleteTag = `
		DELETE FROM tags
		WHERE id = :id
	`

	queryDeleteBlogTagsByTag = `
		DELETE FROM blog_tags
		WHERE tag_id = :tag_id
	`
)
