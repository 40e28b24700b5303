package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hyunjk/bookreview/internal/logger"
	"github.com/hyunjk/bookreview/internal/models"
	"github.com/hyunjk/bookreview/internal/repositories"
)

var ErrUserNotFound = errors.New("user not found")

// UserLister lists users from the credential store without hashes.
type UserLister interface {
	ListAll(ctx context.Context) ([]models.User, error)
}

// AdminWriter mutates the admin flag in the credential store.
type AdminWriter interface {
	UpdateIsAdmin(ctx context.Context, userID uuid.UUID, isAdmin bool) (*models.UserDB, error)
}

// UserService exposes the admin-only user management operations.
type UserService struct {
	lister      UserLister
	writer      AdminWriter
	kafkaWriter KafkaWriter
}

// NewUserService creates a new UserService. kafkaWriter may be nil, in
// which case audit events are skipped.
func NewUserService(lister UserLister, writer AdminWriter, kafkaWriter KafkaWriter) *UserService {
	return &UserService{
		lister:      lister,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// List returns all users. Password hashes are excluded by the store
// projection, not by filtering here.
func (svc *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := svc.lister.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// SetAdmin toggles the admin flag of any user, including the caller's
// own. The change takes effect in the store immediately; tokens already
// issued keep their embedded claim until they expire or are reissued.
func (svc *UserService) SetAdmin(ctx context.Context, userID uuid.UUID, isAdmin bool, actorID string) (*models.User, error) {
	user, err := svc.writer.UpdateIsAdmin(ctx, userID, isAdmin)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to update admin flag", "user_id", userID, "err", err)
		return nil, err
	}

	publishAudit(ctx, svc.kafkaWriter, "user.admin_changed", actorID, user.ID.String(),
		fmt.Sprintf("is_admin=%t", isAdmin))

	logger.Log.Infow("admin flag updated", "user_id", user.ID, "is_admin", isAdmin, "actor", actorID)
	return user.Public(), nil
}
