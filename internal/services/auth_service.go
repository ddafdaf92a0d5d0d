package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hearlab/hearing-loss-be/internal/models"
	"golang.org/x/crypto/bcrypt"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Error strings for the recoverable failures are user-facing and returned
// verbatim in the response body.
var (
	ErrEmailInUse         = errors.New("Error: Email is already in use!")
	ErrMissingFields      = errors.New("Error: Email, full name and password are required!")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthServiceProvider defines the interface for account services.
type AuthServiceProvider interface {
	Signup(email, fullName, password string) (models.User, error)
	Authenticate(email, password string) (models.User, []string, error)
	GetUserByID(id string) (models.User, error)
}

// AuthService provides signup and credential verification backed by the
// users table.
type AuthService struct {
	db *sql.DB
}

// NewAuthService creates a new AuthService.
func NewAuthService(db *sql.DB) *AuthService {
	return &AuthService{db: db}
}

// Signup registers a new account, hashing the password before it is stored.
// The duplicate-email lookup is advisory; the unique index on users.email is
// the authoritative guard, so concurrent signups with the same email resolve
// to exactly one success.
func (s *AuthService) Signup(email, fullName, password string) (models.User, error) {
	if email == "" || fullName == "" || password == "" {
		return models.User{}, ErrMissingFields
	}

	var existing string
	err := s.db.QueryRow("SELECT id FROM users WHERE email = ?", email).Scan(&existing)
	if err == nil {
		return models.User{}, ErrEmailInUse
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.User{}, fmt.Errorf("failed to look up account: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(hashedPassword),
	}

	stmt, err := s.db.Prepare("INSERT INTO users(id, email, full_name, password_hash) VALUES(?, ?, ?, ?)")
	if err != nil {
		return models.User{}, fmt.Errorf("failed to save account: %w", err)
	}
	defer stmt.Close()

	if _, err = stmt.Exec(user.ID, user.Email, user.FullName, user.PasswordHash); err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailInUse
		}
		return models.User{}, fmt.Errorf("failed to save account: %w", err)
	}

	// Return user without password hash
	user.PasswordHash = ""
	return user, nil
}

// Authenticate verifies a plaintext password against the stored hash and
// returns the account together with its authority set. No roles exist yet,
// so the set is always empty.
func (s *AuthService) Authenticate(email, password string) (models.User, []string, error) {
	user, err := s.getUserByEmail(email)
	if err != nil {
		return models.User{}, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, nil, ErrInvalidCredentials
	}

	// Don't send the password hash to the client
	user.PasswordHash = ""
	return user, []string{}, nil
}

// GetUserByID retrieves a single account by its ID.
func (s *AuthService) GetUserByID(id string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, email, full_name, created_at FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Email, &user.FullName, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("account with ID %s not found", id)
		}
		return models.User{}, err
	}
	return user, nil
}

// getUserByEmail retrieves a single account by email, including the password hash.
func (s *AuthService) getUserByEmail(email string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, email, full_name, password_hash, created_at FROM users WHERE email = ?", email)
	err := row.Scan(&user.ID, &user.Email, &user.FullName, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("account with email %s not found", email)
		}
		return models.User{}, err
	}
	return user, nil
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
