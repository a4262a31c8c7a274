// Package service provides business logic layer for the user module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/flexquotes/backend/internal/user/model"
	"github.com/flexquotes/backend/internal/user/repository"
	"github.com/flexquotes/backend/pkg/authtoken"
)

// Service defines the interface for user business logic operations.
type Service interface {
	// Sync mirrors the session profile into the users collection.
	Sync(ctx context.Context, identity *authtoken.Identity, req *model.SyncProfileRequest) (*model.User, error)

	// Me returns the caller's user document.
	Me(ctx context.Context, userID string) (*model.User, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new user service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// Sync mirrors the session profile into the users collection. Request
// fields override the claims when present; memberOf is never touched.
func (s *service) Sync(ctx context.Context, identity *authtoken.Identity, req *model.SyncProfileRequest) (*model.User, error) {
	user := &model.User{
		ID:            identity.ID,
		Name:          identity.Name,
		Email:         identity.Email,
		Image:         identity.Image,
		EmailVerified: identity.EmailVerified,
	}

	if req != nil {
		if req.Name != nil {
			user.Name = *req.Name
		}
		if req.Image != nil {
			user.Image = *req.Image
		}
	}

	synced, err := s.repo.Upsert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Debugw("profile synced", "user_id", synced.ID)
	return synced, nil
}

// Me returns the caller's user document.
func (s *service) Me(ctx context.Context, userID string) (*model.User, error) {
	return s.repo.GetByID(ctx, userID)
}
