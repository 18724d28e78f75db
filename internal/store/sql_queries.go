package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (first_name, last_name, email, api_key)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, first_name, last_name, email, api_key, registered_at, last_login;`

	createKey = `INSERT INTO api_keys (api_key, expires_at)
    VALUES ($1, $2)
    RETURNING api_key, created_at, expires_at, active, last_used;`

	findUserByKey = `SELECT u.user_id, u.first_name, u.last_name, u.email, u.api_key, u.registered_at, u.last_login,
       k.created_at, k.expires_at, k.active, k.last_used
    FROM users u
    JOIN api_keys k ON u.api_key = k.api_key
    WHERE u.api_key = $1;`

	deleteUser = `DELETE FROM users WHERE user_id = $1;`

	createAdmin = `INSERT INTO admins (email, password_hash)
    VALUES ($1, $2)
    RETURNING admin_id, email, password_hash, created_at;`

	findAdminByEmail = `SELECT admin_id, email, password_hash, created_at
    FROM admins
    WHERE email = $1;`
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// ($N) placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListUsersQuery builds the dashboard listing query: every user joined
// with its key metadata, newest registration first. The join is LEFT so that
// a user row surviving from before the cascade schema still shows up.
func buildListUsersQuery() (string, []any, error) {
	return psql.
		Select(
			"u.user_id", "u.first_name", "u.last_name", "u.email", "u.api_key",
			"u.registered_at", "u.last_login",
			"k.created_at", "k.expires_at", "k.active", "k.last_used",
		).
		From("users u").
		LeftJoin("api_keys k ON u.api_key = k.api_key").
		OrderBy("u.registered_at DESC").
		ToSql()
}

// buildTouchLastUsedQuery builds the fire-and-forget update of a key's
// last_used timestamp after a successful validation.
func buildTouchLastUsedQuery(apiKey string) (string, []any, error) {
	return psql.
		Update("api_keys").
		Set("last_used", sq.Expr("NOW()")).
		Where(sq.Eq{"api_key": apiKey}).
		ToSql()
}

// buildTouchLastLoginQuery builds the update of a user's last_login
// timestamp after a successful key login.
func buildTouchLastLoginQuery(apiKey string) (string, []any, error) {
	return psql.
		Update("users").
		Set("last_login", sq.Expr("NOW()")).
		Where(sq.Eq{"api_key": apiKey}).
		ToSql()
}

// buildSetActiveQuery builds the admin toggle of a key's active flag.
func buildSetActiveQuery(apiKey string, active bool) (string, []any, error) {
	return psql.
		Update("api_keys").
		Set("active", active).
		Where(sq.Eq{"api_key": apiKey}).
		ToSql()
}
