package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned CreatedAt.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.ID, user.Name, user.Email, user.Password)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, classifyError(err, ErrExecutingQuery)
	}

	// scan saved user from db
	var created models.User
	if err := row.Scan(&created.ID, &created.Name, &created.Email, &created.Password, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error scanning created user")
		return models.User{}, classifyError(err, ErrScanningRow)
	}

	return created, nil
}

// FindUserByEmail retrieves the user whose email equals email.
//
// Returns [ErrNotFound] when no user has that email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	// scan found user from db
	if err := row.Scan(&foundUser.ID, &foundUser.Name, &foundUser.Email, &foundUser.Password, &foundUser.CreatedAt); err != nil {
		err = classifyError(err, ErrExecutingQuery)
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user by email")
		}
		return models.User{}, err
	}

	return foundUser, nil
}
