// Package repository provides data access layer for the team module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	teamModel "github.com/flexquotes/backend/internal/team/model"
	userModel "github.com/flexquotes/backend/internal/user/model"
)

// Repository defines the interface for team data access operations.
//
// Write methods are single statements; multi-step flows (create, join,
// leave, delete) are composed by the service inside a store transaction.
type Repository interface {
	// Create inserts a new team document.
	Create(ctx context.Context, team *teamModel.Team) (*teamModel.Team, error)

	// GetByUID finds a team by team_uid.
	GetByUID(ctx context.Context, teamUID string) (*teamModel.Team, error)

	// FindByJoinKey finds the team matching the name/teamId/passcode triple.
	FindByJoinKey(ctx context.Context, name, teamID, passcode string) (*teamModel.Team, error)

	// FindByMember returns the teams whose member set contains the user
	// (at most one, modeled as a list).
	FindByMember(ctx context.Context, userID string) ([]teamModel.Team, error)

	// UpdateInfo merge-writes the team's name and passcode.
	UpdateInfo(ctx context.Context, teamUID, name, passcode string) error

	// UpdateCreator reassigns the team's creator.
	UpdateCreator(ctx context.Context, teamUID, creatorID string) error

	// Delete removes the team document and all of its membership rows.
	Delete(ctx context.Context, teamUID string) error

	// AddMember inserts a membership row. Adding an existing member is a no-op.
	AddMember(ctx context.Context, teamUID, userID string) error

	// RemoveMember deletes a membership row.
	RemoveMember(ctx context.Context, teamUID, userID string) error

	// MemberIDs returns the ids of the team's member set.
	MemberIDs(ctx context.Context, teamUID string) ([]string, error)

	// SetMembership points a user's memberOf at a team, or clears it when nil.
	SetMembership(ctx context.Context, userID string, teamUID *string) error

	// ClearMemberships clears memberOf for every user pointing at the team.
	ClearMemberships(ctx context.Context, teamUID string) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts a new team document.
func (r *repository) Create(ctx context.Context, team *teamModel.Team) (*teamModel.Team, error) {
	r.logger.Debugw("Create called", "team_uid", team.TeamUID, "team_id", team.TeamID)

	if err := r.db.WithContext(ctx).Create(team).Error; err != nil {
		r.logger.Errorw("Create database error", "team_uid", team.TeamUID, "error", err)
		return nil, err
	}

	return team, nil
}

// GetByUID finds a team by team_uid.
func (r *repository) GetByUID(ctx context.Context, teamUID string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("team_uid = ?", teamUID).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		r.logger.Errorw("GetByUID database error", "team_uid", teamUID, "error", err)
		return nil, err
	}

	return &team, nil
}

// FindByJoinKey finds the team matching the name/teamId/passcode triple.
// A missing match is a typed not-found, never an index fault.
func (r *repository) FindByJoinKey(ctx context.Context, name, teamID, passcode string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("name = ? AND team_id = ? AND passcode = ?", name, teamID, passcode).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		r.logger.Errorw("FindByJoinKey database error", "team_id", teamID, "error", err)
		return nil, err
	}

	return &team, nil
}

// FindByMember returns the teams whose member set contains the user.
func (r *repository) FindByMember(ctx context.Context, userID string) ([]teamModel.Team, error) {
	var teams []teamModel.Team

	err := r.db.WithContext(ctx).
		Joins("JOIN team_members ON team_members.team_uid = teams.team_uid").
		Where("team_members.user_id = ?", userID).
		Find(&teams).Error

	if err != nil {
		r.logger.Errorw("FindByMember database error", "user_id", userID, "error", err)
		return nil, err
	}

	if teams == nil {
		teams = []teamModel.Team{}
	}

	return teams, nil
}

// UpdateInfo merge-writes the team's name and passcode.
func (r *repository) UpdateInfo(ctx context.Context, teamUID, name, passcode string) error {
	result := r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Where("team_uid = ?", teamUID).
		Updates(map[string]interface{}{"name": name, "passcode": passcode})

	if result.Error != nil {
		r.logger.Errorw("UpdateInfo database error", "team_uid", teamUID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return teamModel.ErrTeamNotFound
	}

	return nil
}

// UpdateCreator reassigns the team's creator.
func (r *repository) UpdateCreator(ctx context.Context, teamUID, creatorID string) error {
	result := r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Where("team_uid = ?", teamUID).
		Update("creator_id", creatorID)

	if result.Error != nil {
		r.logger.Errorw("UpdateCreator database error", "team_uid", teamUID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return teamModel.ErrTeamNotFound
	}

	return nil
}

// Delete removes the team document and all of its membership rows.
func (r *repository) Delete(ctx context.Context, teamUID string) error {
	r.logger.Infow("Delete called", "team_uid", teamUID)

	if err := r.db.WithContext(ctx).
		Where("team_uid = ?", teamUID).
		Delete(&teamModel.Membership{}).Error; err != nil {
		r.logger.Errorw("Delete memberships database error", "team_uid", teamUID, "error", err)
		return err
	}

	result := r.db.WithContext(ctx).
		Where("team_uid = ?", teamUID).
		Delete(&teamModel.Team{})

	if result.Error != nil {
		r.logger.Errorw("Delete database error", "team_uid", teamUID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return teamModel.ErrTeamNotFound
	}

	return nil
}

// AddMember inserts a membership row. The composite primary key makes a
// duplicate insert a conflict, which is swallowed: joining twice must not
// append twice.
func (r *repository) AddMember(ctx context.Context, teamUID, userID string) error {
	membership := &teamModel.Membership{TeamUID: teamUID, UserID: userID}

	err := r.db.WithContext(ctx).Create(membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateError(err) {
			return nil
		}
		r.logger.Errorw("AddMember database error", "team_uid", teamUID, "user_id", userID, "error", err)
		return err
	}

	return nil
}

// isDuplicateError checks if error is a duplicate key error.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return contains(msg, "duplicate key") || contains(msg, "UNIQUE constraint")
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}

// RemoveMember deletes a membership row.
func (r *repository) RemoveMember(ctx context.Context, teamUID, userID string) error {
	result := r.db.WithContext(ctx).
		Where("team_uid = ? AND user_id = ?", teamUID, userID).
		Delete(&teamModel.Membership{})

	if result.Error != nil {
		r.logger.Errorw("RemoveMember database error", "team_uid", teamUID, "user_id", userID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return teamModel.ErrNotMember
	}

	return nil
}

// MemberIDs returns the ids of the team's member set, ordered for stable output.
func (r *repository) MemberIDs(ctx context.Context, teamUID string) ([]string, error) {
	var userIDs []string

	err := r.db.WithContext(ctx).
		Model(&teamModel.Membership{}).
		Where("team_uid = ?", teamUID).
		Order("user_id ASC").
		Pluck("user_id", &userIDs).Error

	if err != nil {
		r.logger.Errorw("MemberIDs database error", "team_uid", teamUID, "error", err)
		return nil, err
	}

	if userIDs == nil {
		userIDs = []string{}
	}

	return userIDs, nil
}

// SetMembership points a user's memberOf at a team, or clears it when nil.
func (r *repository) SetMembership(ctx context.Context, userID string, teamUID *string) error {
	result := r.db.WithContext(ctx).
		Model(&userModel.User{}).
		Where("id = ?", userID).
		Update("member_of", teamUID)

	if result.Error != nil {
		r.logger.Errorw("SetMembership database error", "user_id", userID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return userModel.ErrUserNotFound
	}

	return nil
}

// ClearMemberships clears memberOf for every user pointing at the team.
func (r *repository) ClearMemberships(ctx context.Context, teamUID string) error {
	err := r.db.WithContext(ctx).
		Model(&userModel.User{}).
		Where("member_of = ?", teamUID).
		Update("member_of", nil).Error

	if err != nil {
		r.logger.Errorw("ClearMemberships database error", "team_uid", teamUID, "error", err)
		return err
	}

	return nil
}
