// Package repository provides data access layer for the user module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/flexquotes/backend/internal/user/model"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// GetByID finds a user by id.
	GetByID(ctx context.Context, userID string) (*model.User, error)

	// Upsert creates the user document or refreshes its profile fields.
	// The membership pointer is never touched here.
	Upsert(ctx context.Context, user *model.User) (*model.User, error)

	// ListByTeam returns all user documents whose memberOf equals the team.
	ListByTeam(ctx context.Context, teamUID string) ([]model.User, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new user repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// GetByID finds a user by id.
func (r *repository) GetByID(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		r.logger.Errorw("GetByID database error", "user_id", userID, "error", err)
		return nil, err
	}

	return &user, nil
}

// Upsert creates the user document or refreshes its profile fields.
func (r *repository) Upsert(ctx context.Context, user *model.User) (*model.User, error) {
	r.logger.Debugw("Upsert called", "user_id", user.ID)

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "email", "image", "email_verified", "updated_at"}),
		}).
		Create(user).Error

	if err != nil {
		r.logger.Errorw("Upsert database error", "user_id", user.ID, "error", err)
		return nil, err
	}

	return r.GetByID(ctx, user.ID)
}

// ListByTeam returns all user documents whose memberOf equals the team.
func (r *repository) ListByTeam(ctx context.Context, teamUID string) ([]model.User, error) {
	var users []model.User

	err := r.db.WithContext(ctx).
		Where("member_of = ?", teamUID).
		Order("id ASC").
		Find(&users).Error

	if err != nil {
		r.logger.Errorw("ListByTeam database error", "team_uid", teamUID, "error", err)
		return nil, err
	}

	if users == nil {
		users = []model.User{}
	}

	return users, nil
}
