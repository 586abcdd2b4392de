package userRepository

import (
	users "BlogGolang/internal/api/user"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type UserDB struct {
	ID        sql.NullString  `db:"id"`
	Username  sql.NullString  `db:"username"`
	Email     sql.NullString  `db:"email"`
	Password  sql.NullString  `db:"password"`
	Address   sql.NullString  `db:"address"`
	Lat       sql.NullFloat64 `db:"lat"`
	Lng       sql.NullFloat64 `db:"lng"`
	CreatedAt sql.NullTime    `db:"created_at"`
	UpdatedAt sql.NullTime    `db:"updated_at"`
}

func (r *usersRepository) CreateUser(ctx context.Context, user entity.User) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"password":   user.Password,
		"address":    nullString(user.Address),
		"lat":        user.Lat,
		"lng":        user.Lng,
		"created_at": user.CreatedAt,
		"updated_at": user.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateUser")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			switch pqErr.Constraint {
			case "users_username_key", "users_email_key":
				r.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"constraint": pqErr.Constraint,
				}).Warn("Username or email already exists")
				return users.ErrUsernameOrEmailTaken
			}
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating user")
		return err
	}

	return nil
}

func (r *usersRepository) GetByID(ctx context.Context, id string) (entity.User, error) {
	return r.getOne(ctx, queryGetUserByID, map[string]interface{}{"id": id}, "GetByID")
}

func (r *usersRepository) GetByUsername(ctx context.Context, username string) (entity.User, error) {
	return r.getOne(ctx, queryGetUserByUsername, map[string]interface{}{"username": username}, "GetByUsername")
}

func (r *usersRepository) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	return r.getOne(ctx, queryGetUserByEmail, map[string]interface{}{"email": email}, "GetByEmail")
}

func (r *usersRepository) getOne(ctx context.Context, namedQuery string, argsKV map[string]interface{}, operation string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var user UserDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"operation":  operation,
			"error":      err.Error(),
		}).Error("User named query preparation err")
		return entity.User{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"operation":  operation,
			}).Warn("User no rows found")
			return entity.User{}, users.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"operation":  operation,
			"error":      err.Error(),
		}).Error("User query execution err")
		return entity.User{}, err
	}

	return r.makeUser(user), nil
}

func (r *usersRepository) UpdateUser(ctx context.Context, user entity.User) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"password":   user.Password,
		"address":    nullString(user.Address),
		"lat":        user.Lat,
		"lng":        user.Lng,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateUser named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			switch pqErr.Constraint {
			case "users_username_key", "users_email_key":
				r.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"constraint": pqErr.Constraint,
				}).Warn("Username or email already exists")
				return users.ErrUsernameOrEmailTaken
			}
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateUser execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateUser rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         user.ID,
		}).Warn("UpdateUser no rows affected")
		return users.ErrUserNotFound
	}

	return nil
}

func (r *usersRepository) UpdatePassword(ctx context.Context, id string, hashedPassword string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         id,
		"password":   hashedPassword,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateUserPassword, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdatePassword named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdatePassword execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdatePassword rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("UpdatePassword no rows affected")
		return users.ErrUserNotFound
	}

	return nil
}

func (r *usersRepository) DeleteUser(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteUser named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteUser execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteUser rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeleteUser no rows affected")
		return users.ErrUserNotFound
	}

	return nil
}

func (r *usersRepository) makeUser(user UserDB) entity.User {
	res := entity.User{
		ID:        user.ID.String,
		Username:  user.Username.String,
		Email:     user.Email.String,
		Password:  user.Password.String,
		Address:   user.Address.String,
		CreatedAt: user.CreatedAt.Time,
		UpdatedAt: user.UpdatedAt.Time,
	}

	if user.Lat.Valid {
		lat := user.Lat.Float64
		res.Lat = &lat
	}
	if user.Lng.Valid {
		lng := user.Lng.Float64
		res.Lng = &lng
	}

	return res
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
