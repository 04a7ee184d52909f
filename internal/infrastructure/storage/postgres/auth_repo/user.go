// Package auth_repo provides PostgreSQL implementations for auth repositories.
package auth_repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"barstock/internal/core/apperror"
	"barstock/internal/core/id"
	"barstock/internal/domain/auth"
	"barstock/internal/infrastructure/storage/postgres"
)

const userColumns = `id, email, password_hash, name,
	   is_active, is_admin, last_login_at,
	   failed_login_attempts, locked_until,
	   created_at, updated_at, deleted_at, version`

// UserRepo implements auth.UserRepository.
type UserRepo struct {
	txm *postgres.TxManager
}

// NewUserRepo creates a new user repository.
func NewUserRepo(txm *postgres.TxManager) *UserRepo {
	return &UserRepo{txm: txm}
}

// Create creates a new user.
func (r *UserRepo) Create(ctx context.Context, user *auth.User) error {
	q := r.txm.GetQuerier(ctx)

	query := `
		INSERT INTO users (
			id, email, password_hash, name,
			is_active, is_admin, created_at, updated_at, version
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := q.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name,
		user.IsActive, user.IsAdmin, user.CreatedAt, user.UpdatedAt, user.Version,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepo) scanUser(row pgx.Row) (*auth.User, error) {
	var user auth.User
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Name,
		&user.IsActive, &user.IsAdmin, &user.LastLoginAt,
		&user.FailedLoginAttempts, &user.LockedUntil,
		&user.CreatedAt, &user.UpdatedAt, &user.DeletedAt, &user.Version,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID retrieves user by ID.
func (r *UserRepo) GetByID(ctx context.Context, userID id.ID) (*auth.User, error) {
	q := r.txm.GetQuerier(ctx)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND deleted_at IS NULL`

	user, err := r.scanUser(q.QueryRow(ctx, query, userID))
	if err == pgx.ErrNoRows {
		return nil, apperror.NewNotFound("user", userID.String())
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	q := r.txm.GetQuerier(ctx)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND deleted_at IS NULL`

	user, err := r.scanUser(q.QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, apperror.NewNotFound("user", email)
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}

	return user, nil
}

// Update updates user data with optimistic locking.
func (r *UserRepo) Update(ctx context.Context, user *auth.User) error {
	q := r.txm.GetQuerier(ctx)

	query := `
		UPDATE users SET
			name = $2,
			is_active = $3,
			is_admin = $4,
			last_login_at = $5,
			failed_login_attempts = $6,
			locked_until = $7,
			updated_at = NOW(),
			version = version + 1
		WHERE id = $1 AND deleted_at IS NULL AND version = $8
	`

	result, err := q.Exec(ctx, query,
		user.ID, user.Name, user.IsActive, user.IsAdmin,
		user.LastLoginAt, user.FailedLoginAttempts, user.LockedUntil,
		user.Version,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification("user", user.ID)
	}

	user.Version++
	return nil
}

// Delete soft-deletes a user.
func (r *UserRepo) Delete(ctx context.Context, userID id.ID) error {
	q := r.txm.GetQuerier(ctx)

	query := `
		UPDATE users SET deleted_at = NOW(), version = version + 1
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := q.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("user", userID.String())
	}

	return nil
}

// List retrieves users with filtering.
func (r *UserRepo) List(ctx context.Context, filter auth.UserFilter) ([]auth.User, int, error) {
	q := r.txm.GetQuerier(ctx)

	query := `SELECT ` + userColumns + ` FROM users WHERE deleted_at IS NULL`
	countQuery := `SELECT COUNT(*) FROM users WHERE deleted_at IS NULL`

	var args []interface{}
	argIdx := 1

	if filter.Search != "" {
		cond := fmt.Sprintf(" AND (email ILIKE $%d OR name ILIKE $%d)", argIdx, argIdx)
		query += cond
		countQuery += cond
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	if filter.IsActive != nil {
		cond := fmt.Sprintf(" AND is_active = $%d", argIdx)
		query += cond
		countQuery += cond
		args = append(args, *filter.IsActive)
		argIdx++
	}

	if filter.VenueID != "" {
		cond := fmt.Sprintf(" AND id IN (SELECT user_id FROM venue_members WHERE venue_id = $%d)", argIdx)
		query += cond
		countQuery += cond
		args = append(args, filter.VenueID)
		argIdx++
	}

	var total int
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query += " ORDER BY email ASC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []auth.User
	for rows.Next() {
		user, err := r.scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *user)
	}

	return users, total, rows.Err()
}

// LoadMemberships loads the user's venue memberships.
func (r *UserRepo) LoadMemberships(ctx context.Context, userID id.ID) ([]auth.Membership, error) {
	q := r.txm.GetQuerier(ctx)

	query := `
		SELECT venue_id, role
		FROM venue_members
		WHERE user_id = $1
		ORDER BY venue_id
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query memberships: %w", err)
	}
	defer rows.Close()

	var memberships []auth.Membership
	for rows.Next() {
		var m auth.Membership
		if err := rows.Scan(&m.VenueID, &m.Role); err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		memberships = append(memberships, m)
	}

	return memberships, rows.Err()
}

// AssignVenue grants a user a role in a venue. Re-assigning replaces the role.
func (r *UserRepo) AssignVenue(ctx context.Context, userID id.ID, venueID, role string, grantedBy id.ID) error {
	q := r.txm.GetQuerier(ctx)

	query := `
		INSERT INTO venue_members (user_id, venue_id, role, granted_by)
		VALUES ($1, $2, $3, NULLIF($4, '00000000-0000-0000-0000-000000000000'::uuid))
		ON CONFLICT (user_id, venue_id) DO UPDATE SET role = EXCLUDED.role, granted_by = EXCLUDED.granted_by
	`

	_, err := q.Exec(ctx, query, userID, venueID, role, grantedBy)
	if err != nil {
		return fmt.Errorf("assign venue: %w", err)
	}

	return nil
}

// RevokeVenue removes a user's membership in a venue.
func (r *UserRepo) RevokeVenue(ctx context.Context, userID id.ID, venueID string) error {
	q := r.txm.GetQuerier(ctx)

	query := `DELETE FROM venue_members WHERE user_id = $1 AND venue_id = $2`
	result, err := q.Exec(ctx, query, userID, venueID)
	if err != nil {
		return fmt.Errorf("revoke venue: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("membership", userID.String())
	}

	return nil
}

// ListByVenue retrieves all members of a venue with memberships loaded.
func (r *UserRepo) ListByVenue(ctx context.Context, venueID string) ([]auth.User, error) {
	q := r.txm.GetQuerier(ctx)

	query := `
		SELECT u.id, u.email, u.password_hash, u.name,
			   u.is_active, u.is_admin, u.last_login_at,
			   u.failed_login_attempts, u.locked_until,
			   u.created_at, u.updated_at, u.deleted_at, u.version,
			   vm.role
		FROM users u
		INNER JOIN venue_members vm ON vm.user_id = u.id
		WHERE vm.venue_id = $1 AND u.deleted_at IS NULL
		ORDER BY u.email ASC
	`

	rows, err := q.Query(ctx, query, venueID)
	if err != nil {
		return nil, fmt.Errorf("query venue members: %w", err)
	}
	defer rows.Close()

	var users []auth.User
	for rows.Next() {
		var (
			user auth.User
			role string
		)
		err := rows.Scan(
			&user.ID, &user.Email, &user.PasswordHash, &user.Name,
			&user.IsActive, &user.IsAdmin, &user.LastLoginAt,
			&user.FailedLoginAttempts, &user.LockedUntil,
			&user.CreatedAt, &user.UpdatedAt, &user.DeletedAt, &user.Version,
			&role,
		)
		if err != nil {
			return nil, fmt.Errorf("scan venue member: %w", err)
		}
		user.Memberships = []auth.Membership{{VenueID: venueID, Role: role}}
		users = append(users, user)
	}

	return users, rows.Err()
}

// Exists checks if the email is already registered.
func (r *UserRepo) Exists(ctx context.Context, email string) (bool, error) {
	q := r.txm.GetQuerier(ctx)

	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND deleted_at IS NULL)`

	var exists bool
	if err := q.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("check exists: %w", err)
	}

	return exists, nil
}

// Ensure interface compliance
var _ auth.UserRepository = (*UserRepo)(nil)
