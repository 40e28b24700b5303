package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hyunjk/bookreview/internal/logger"
	"github.com/hyunjk/bookreview/internal/models"
	"github.com/hyunjk/bookreview/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the fixed work factor for password hashing.
const bcryptCost = 12

// MinPasswordLength is enforced before hashing at registration.
const MinPasswordLength = 6

var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
)

// UserReader defines read-only operations on the credential store needed
// by authentication.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines the insert operation on the credential store.
type UserWriter interface {
	Save(ctx context.Context, username string, email *string, passwordHash string) (*models.UserDB, error)
}

// TokenGenerator mints a signed session token for an identity.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, username string, isAdmin bool) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	jwt         TokenGenerator
	kafkaWriter KafkaWriter
}

// NewAuthService creates a new AuthService. kafkaWriter may be nil, in
// which case audit events are skipped.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenGenerator, kafkaWriter KafkaWriter) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		jwt:         jwt,
		kafkaWriter: kafkaWriter,
	}
}

// Register creates a new non-admin user. The username is trimmed and the
// email, when given, trimmed and lowercased. Duplicates surface as
// ErrUserAlreadyExists whether caught by the pre-check or by the store's
// uniqueness constraint.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)

	if len(password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	var normEmail *string
	if trimmed := strings.ToLower(strings.TrimSpace(email)); trimmed != "" {
		existing, err := svc.reader.GetByEmail(ctx, trimmed)
		if err != nil {
			logger.Log.Errorw("failed to check email", "err", err)
			return nil, err
		}
		if existing != nil {
			return nil, ErrUserAlreadyExists
		}
		normEmail = &trimmed
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, username, normEmail, string(hashedPassword))
	if errors.Is(err, repositories.ErrAlreadyExists) {
		return nil, ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	publishAudit(ctx, svc.kafkaWriter, "user.registered", user.ID.String(), user.ID.String(),
		fmt.Sprintf("username=%s", user.Username))

	logger.Log.Infow("user registered", "username", user.Username, "user_id", user.ID)
	return user.Public(), nil
}

// Login verifies credentials and mints a session token. An unknown
// username and a wrong password are indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	username = strings.TrimSpace(username)

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("login rejected", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Username, user.IsAdmin)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return "", nil, err
	}

	return token, user.Public(), nil
}
