// Package service provides business logic layer for the quote module.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/flexquotes/backend/internal/quote/model"
	"github.com/flexquotes/backend/internal/quote/repository"
	teamModel "github.com/flexquotes/backend/internal/team/model"
	teamRepository "github.com/flexquotes/backend/internal/team/repository"
	userRepository "github.com/flexquotes/backend/internal/user/repository"
)

// Service defines the interface for quote business logic operations.
type Service interface {
	// Add posts a new quote attributed to a teammate of the caller.
	Add(ctx context.Context, userID string, req *model.AddQuoteRequest) (*model.Quote, error)

	// Delete removes a quote. Reserved for the team creator.
	Delete(ctx context.Context, userID, quoteID string) error

	// Rate toggles the caller's up-vote on a quote.
	Rate(ctx context.Context, userID, quoteID string) (*model.RateQuoteResponse, error)
}

type service struct {
	repo   repository.Repository
	teams  teamRepository.Repository
	users  userRepository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new quote service instance.
func New(
	repo repository.Repository,
	teams teamRepository.Repository,
	users userRepository.Repository,
	db *gorm.DB,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:   repo,
		teams:  teams,
		users:  users,
		db:     db,
		logger: logger,
	}
}

// Add posts a new quote. The caller must belong to a team and the
// attributed author must be a member of the same team; the author's
// name and image are snapshotted at post time.
func (s *service) Add(ctx context.Context, userID string, req *model.AddQuoteRequest) (*model.Quote, error) {
	if err := model.ValidateQuoteText(req.Text); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.MemberOf == nil {
		return nil, teamModel.ErrNotMember
	}
	teamUID := *user.MemberOf

	author, err := s.users.GetByID(ctx, req.AuthorUID)
	if err != nil {
		return nil, err
	}
	if author.MemberOf == nil || *author.MemberOf != teamUID {
		return nil, model.ErrAuthorNotMember
	}

	createdAt := time.Now().UTC()
	if req.CreatedAt != nil {
		createdAt = req.CreatedAt.UTC()
	}

	quote := &model.Quote{
		ID:        uuid.NewString(),
		TeamUID:   teamUID,
		AuthorUID: author.ID,
		Image:     author.Image,
		Name:      author.Name,
		Text:      req.Text,
		Rating:    0,
		CreatedAt: createdAt,
		RatedBy:   []string{},
	}

	created, err := s.repo.Create(ctx, quote)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("quote added", "quote_id", created.ID, "team_uid", teamUID, "author_uid", author.ID)
	return created, nil
}

// Delete removes a quote. Only the creator of the owning team may do it.
func (s *service) Delete(ctx context.Context, userID, quoteID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)
		txTeams := teamRepository.New(tx, s.logger)

		quote, err := txRepo.GetByID(ctx, quoteID)
		if err != nil {
			return err
		}

		team, err := txTeams.GetByUID(ctx, quote.TeamUID)
		if err != nil {
			return err
		}
		if team.CreatorID != userID {
			return teamModel.ErrNotCreator
		}

		return txRepo.Delete(ctx, quoteID)
	})
}

// Rate toggles the caller's up-vote. Vote row and counter change inside
// one transaction, keeping rating equal to the voter set size.
func (s *service) Rate(ctx context.Context, userID, quoteID string) (*model.RateQuoteResponse, error) {
	var result *model.RateQuoteResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		quote, err := txRepo.GetByID(ctx, quoteID)
		if err != nil {
			return err
		}

		rated, err := txRepo.HasRated(ctx, quoteID, userID)
		if err != nil {
			return err
		}

		if rated {
			if err := txRepo.RemoveRating(ctx, quoteID, userID); err != nil {
				return err
			}
		} else {
			if err := txRepo.AddRating(ctx, quoteID, userID); err != nil {
				return err
			}
		}

		refreshed, err := txRepo.GetByID(ctx, quote.ID)
		if err != nil {
			return err
		}

		result = &model.RateQuoteResponse{
			QuoteID: refreshed.ID,
			Rating:  refreshed.Rating,
			Rated:   !rated,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
