package userRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			id,
			username,
			email,
			password,
			address,
			lat,
			lng,
			created_at,
			updated_at
		) VALUES (
			:id,
			:username,
			:email,
			:password,
			:address,
			:lat,
			:lng,
			:created_at,
			:updated_at
		)
	`

	queryGetUserByID = `
		SELECT
			id,
			username,
			email,
			password,
			address,
			lat,
			lng,
			created_at,
			updated_at
		FROM users
		WHERE id = :id
	`

	queryGetUserByUsername = `
		SELECT
			id,
			username,
			email,
			password,
			address,
			lat,
			lng,
			created_at,
			updated_at
		FROM users
		WHERE username = :username
	`

	queryGetUserByEmail = `
		SELECT
			id,
			username,
			email,
			password,
			address,
			lat,
			lng,
			created_at,
			updated_at
		FROM users
		WHERE email = :email
	`

	queryUpdateUser = `
		UPDATE users
		SET
			username = :username,
			email = :email,
			password = :password,
			address = :address,
			lat = :lat,
			lng = :lng,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryUpdateUserPassword = `
		UPDATE users
		SET
			password = :password,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteUser = `
		DELETE FROM users
		WHERE id = :id
	`
)
