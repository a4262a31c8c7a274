// Package repository provides data access layer for the quote module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/flexquotes/backend/internal/quote/model"
)

// Repository defines the interface for quote data access operations.
type Repository interface {
	// Create inserts a new quote document.
	Create(ctx context.Context, quote *model.Quote) (*model.Quote, error)

	// GetByID finds a quote by id.
	GetByID(ctx context.Context, quoteID string) (*model.Quote, error)

	// Delete removes a quote and its rating rows.
	Delete(ctx context.Context, quoteID string) error

	// DeleteByTeam removes every quote of a team along with their ratings.
	DeleteByTeam(ctx context.Context, teamUID string) error

	// ListByTeam returns all quotes of a team with ratedBy assembled.
	ListByTeam(ctx context.Context, teamUID string) ([]model.Quote, error)

	// HasRated reports whether the user has up-voted the quote.
	HasRated(ctx context.Context, quoteID, userID string) (bool, error)

	// AddRating records an up-vote and increments the counter.
	AddRating(ctx context.Context, quoteID, userID string) error

	// RemoveRating deletes an up-vote and decrements the counter,
	// never below zero.
	RemoveRating(ctx context.Context, quoteID, userID string) error

	// RatedBy returns the ids of users who up-voted the quote.
	RatedBy(ctx context.Context, quoteID string) ([]string, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new quote repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts a new quote document.
func (r *repository) Create(ctx context.Context, quote *model.Quote) (*model.Quote, error) {
	r.logger.Debugw("Create called", "quote_id", quote.ID, "team_uid", quote.TeamUID)

	if err := r.db.WithContext(ctx).Create(quote).Error; err != nil {
		r.logger.Errorw("Create database error", "quote_id", quote.ID, "error", err)
		return nil, err
	}

	if quote.RatedBy == nil {
		quote.RatedBy = []string{}
	}

	return quote, nil
}

// GetByID finds a quote by id.
func (r *repository) GetByID(ctx context.Context, quoteID string) (*model.Quote, error) {
	var quote model.Quote
	err := r.db.WithContext(ctx).
		Where("id = ?", quoteID).
		First(&quote).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrQuoteNotFound
		}
		r.logger.Errorw("GetByID database error", "quote_id", quoteID, "error", err)
		return nil, err
	}

	ratedBy, err := r.RatedBy(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	quote.RatedBy = ratedBy

	return &quote, nil
}

// Delete removes a quote and its rating rows.
func (r *repository) Delete(ctx context.Context, quoteID string) error {
	r.logger.Infow("Delete called", "quote_id", quoteID)

	if err := r.db.WithContext(ctx).
		Where("quote_id = ?", quoteID).
		Delete(&model.Rating{}).Error; err != nil {
		r.logger.Errorw("Delete ratings database error", "quote_id", quoteID, "error", err)
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ?", quoteID).
		Delete(&model.Quote{})

	if result.Error != nil {
		r.logger.Errorw("Delete database error", "quote_id", quoteID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrQuoteNotFound
	}

	return nil
}

// DeleteByTeam removes every quote of a team along with their ratings.
func (r *repository) DeleteByTeam(ctx context.Context, teamUID string) error {
	r.logger.Infow("DeleteByTeam called", "team_uid", teamUID)

	err := r.db.WithContext(ctx).
		Where("quote_id IN (?)",
			r.db.Model(&model.Quote{}).Select("id").Where("team_uid = ?", teamUID)).
		Delete(&model.Rating{}).Error
	if err != nil {
		r.logger.Errorw("DeleteByTeam ratings database error", "team_uid", teamUID, "error", err)
		return err
	}

	if err := r.db.WithContext(ctx).
		Where("team_uid = ?", teamUID).
		Delete(&model.Quote{}).Error; err != nil {
		r.logger.Errorw("DeleteByTeam database error", "team_uid", teamUID, "error", err)
		return err
	}

	return nil
}

// ListByTeam returns all quotes of a team with ratedBy assembled.
func (r *repository) ListByTeam(ctx context.Context, teamUID string) ([]model.Quote, error) {
	var quotes []model.Quote

	err := r.db.WithContext(ctx).
		Where("team_uid = ?", teamUID).
		Order("created_at DESC").
		Find(&quotes).Error
	if err != nil {
		r.logger.Errorw("ListByTeam database error", "team_uid", teamUID, "error", err)
		return nil, err
	}

	if len(quotes) == 0 {
		return []model.Quote{}, nil
	}

	quoteIDs := make([]string, len(quotes))
	for i := range quotes {
		quoteIDs[i] = quotes[i].ID
	}

	var ratings []model.Rating
	err = r.db.WithContext(ctx).
		Where("quote_id IN ?", quoteIDs).
		Order("user_id ASC").
		Find(&ratings).Error
	if err != nil {
		r.logger.Errorw("ListByTeam ratings database error", "team_uid", teamUID, "error", err)
		return nil, err
	}

	ratedBy := make(map[string][]string, len(quotes))
	for _, rating := range ratings {
		ratedBy[rating.QuoteID] = append(ratedBy[rating.QuoteID], rating.UserID)
	}

	for i := range quotes {
		if ids, ok := ratedBy[quotes[i].ID]; ok {
			quotes[i].RatedBy = ids
		} else {
			quotes[i].RatedBy = []string{}
		}
	}

	return quotes, nil
}

// HasRated reports whether the user has up-voted the quote.
func (r *repository) HasRated(ctx context.Context, quoteID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Rating{}).
		Where("quote_id = ? AND user_id = ?", quoteID, userID).
		Count(&count).Error

	if err != nil {
		r.logger.Errorw("HasRated database error", "quote_id", quoteID, "user_id", userID, "error", err)
		return false, err
	}

	return count > 0, nil
}

// AddRating records an up-vote and increments the counter.
func (r *repository) AddRating(ctx context.Context, quoteID, userID string) error {
	rating := &model.Rating{QuoteID: quoteID, UserID: userID}
	if err := r.db.WithContext(ctx).Create(rating).Error; err != nil {
		r.logger.Errorw("AddRating database error", "quote_id", quoteID, "user_id", userID, "error", err)
		return err
	}

	err := r.db.WithContext(ctx).
		Model(&model.Quote{}).
		Where("id = ?", quoteID).
		Update("rating", gorm.Expr("rating + 1")).Error
	if err != nil {
		r.logger.Errorw("AddRating counter database error", "quote_id", quoteID, "error", err)
		return err
	}

	return nil
}

// RemoveRating deletes an up-vote and decrements the counter. The counter
// is floored at zero so a lost vote row can never drive it negative.
func (r *repository) RemoveRating(ctx context.Context, quoteID, userID string) error {
	result := r.db.WithContext(ctx).
		Where("quote_id = ? AND user_id = ?", quoteID, userID).
		Delete(&model.Rating{})
	if result.Error != nil {
		r.logger.Errorw("RemoveRating database error", "quote_id", quoteID, "user_id", userID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).
		Model(&model.Quote{}).
		Where("id = ? AND rating > 0", quoteID).
		Update("rating", gorm.Expr("rating - 1")).Error
	if err != nil {
		r.logger.Errorw("RemoveRating counter database error", "quote_id", quoteID, "error", err)
		return err
	}

	return nil
}

// RatedBy returns the ids of users who up-voted the quote.
func (r *repository) RatedBy(ctx context.Context, quoteID string) ([]string, error) {
	var userIDs []string

	err := r.db.WithContext(ctx).
		Model(&model.Rating{}).
		Where("quote_id = ?", quoteID).
		Order("user_id ASC").
		Pluck("user_id", &userIDs).Error
	if err != nil {
		r.logger.Errorw("RatedBy database error", "quote_id", quoteID, "error", err)
		return nil, err
	}

	if userIDs == nil {
		userIDs = []string{}
	}

	return userIDs, nil
}
