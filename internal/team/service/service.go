// Package service provides business logic layer for the team module.
package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	quoteRepository "github.com/flexquotes/backend/internal/quote/repository"
	teamModel "github.com/flexquotes/backend/internal/team/model"
	"github.com/flexquotes/backend/internal/team/repository"
	userModel "github.com/flexquotes/backend/internal/user/model"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// Create creates a team and makes the caller its creator and first member.
	Create(ctx context.Context, userID string, req *teamModel.CreateTeamRequest) (*teamModel.TeamResponse, error)

	// Join adds the caller to the team matching the name/teamId/passcode triple.
	Join(ctx context.Context, userID string, req *teamModel.JoinTeamRequest) (*teamModel.TeamResponse, error)

	// Leave removes the caller from the team, reassigning the creator or
	// deleting the team when it empties.
	Leave(ctx context.Context, userID, teamUID string) error

	// Delete removes the team, its quotes, and every member's pointer.
	// Reserved for the creator.
	Delete(ctx context.Context, userID, teamUID string) error

	// ChangeInfo updates the team's name and passcode. Reserved for the creator.
	ChangeInfo(ctx context.Context, userID string, req *teamModel.ChangeTeamInfoRequest) (*teamModel.TeamResponse, error)
}

type service struct {
	repo   repository.Repository
	quotes quoteRepository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, quotes quoteRepository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		quotes: quotes,
		db:     db,
		logger: logger,
	}
}

// newTeamID generates the short shareable code shown to teammates:
// "#" followed by the first six characters of a fresh uuid. Collisions
// are accepted; join lookups also match name and passcode.
func newTeamID() string {
	return "#" + strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
}

// Create creates a team and makes the caller its creator and first member.
func (s *service) Create(ctx context.Context, userID string, req *teamModel.CreateTeamRequest) (*teamModel.TeamResponse, error) {
	if err := teamModel.ValidateTeamName(req.Name); err != nil {
		return nil, err
	}
	if err := teamModel.ValidatePasscode(req.Passcode); err != nil {
		return nil, err
	}

	team := &teamModel.Team{
		TeamUID:   uuid.NewString(),
		TeamID:    newTeamID(),
		Name:      req.Name,
		Passcode:  req.Passcode,
		CreatorID: userID,
	}

	var result *teamModel.TeamResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		if err := requireNoTeam(ctx, tx, userID); err != nil {
			return err
		}

		if _, err := txRepo.Create(ctx, team); err != nil {
			return err
		}
		if err := txRepo.AddMember(ctx, team.TeamUID, userID); err != nil {
			return err
		}
		if err := txRepo.SetMembership(ctx, userID, &team.TeamUID); err != nil {
			return err
		}

		result = teamResponse(team, []string{userID}, true)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team created", "team_uid", team.TeamUID, "creator_id", userID)
	return result, nil
}

// Join adds the caller to the team matching the name/teamId/passcode triple.
func (s *service) Join(ctx context.Context, userID string, req *teamModel.JoinTeamRequest) (*teamModel.TeamResponse, error) {
	if err := teamModel.ValidateTeamName(req.Name); err != nil {
		return nil, err
	}
	if err := teamModel.ValidateTeamID(req.TeamID); err != nil {
		return nil, err
	}
	if err := teamModel.ValidatePasscode(req.Passcode); err != nil {
		return nil, err
	}

	var result *teamModel.TeamResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		team, err := txRepo.FindByJoinKey(ctx, req.Name, req.TeamID, req.Passcode)
		if err != nil {
			return err
		}

		if err := requireNoTeam(ctx, tx, userID); err != nil {
			return err
		}

		if err := txRepo.AddMember(ctx, team.TeamUID, userID); err != nil {
			return err
		}
		if err := txRepo.SetMembership(ctx, userID, &team.TeamUID); err != nil {
			return err
		}

		members, err := txRepo.MemberIDs(ctx, team.TeamUID)
		if err != nil {
			return err
		}

		result = teamResponse(team, members, team.CreatorID == userID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("user joined team", "team_uid", result.TeamUID, "user_id", userID)
	return result, nil
}

// Leave removes the caller from the team. The last member leaving deletes
// the team entirely; a departing creator hands the role to a member
// picked uniformly at random.
func (s *service) Leave(ctx context.Context, userID, teamUID string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)
		txQuotes := quoteRepository.New(tx, s.logger)

		team, err := txRepo.GetByUID(ctx, teamUID)
		if err != nil {
			return err
		}

		members, err := txRepo.MemberIDs(ctx, teamUID)
		if err != nil {
			return err
		}

		remaining := make([]string, 0, len(members))
		found := false
		for _, member := range members {
			if member == userID {
				found = true
				continue
			}
			remaining = append(remaining, member)
		}
		if !found {
			return teamModel.ErrNotMember
		}

		if len(remaining) == 0 {
			return s.deleteTeamTx(ctx, txRepo, txQuotes, teamUID)
		}

		if team.CreatorID == userID {
			//nolint:gosec // replacement choice has no security requirement
			successor := remaining[rand.Intn(len(remaining))]
			if err := txRepo.UpdateCreator(ctx, teamUID, successor); err != nil {
				return err
			}
			s.logger.Infow("team creator reassigned", "team_uid", teamUID, "creator_id", successor)
		}

		if err := txRepo.SetMembership(ctx, userID, nil); err != nil {
			return err
		}
		return txRepo.RemoveMember(ctx, teamUID, userID)
	})
	if err != nil {
		return err
	}

	s.logger.Infow("user left team", "team_uid", teamUID, "user_id", userID)
	return nil
}

// Delete removes the team, its quotes, and every member's pointer.
func (s *service) Delete(ctx context.Context, userID, teamUID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)
		txQuotes := quoteRepository.New(tx, s.logger)

		team, err := txRepo.GetByUID(ctx, teamUID)
		if err != nil {
			return err
		}
		if team.CreatorID != userID {
			return teamModel.ErrNotCreator
		}

		return s.deleteTeamTx(ctx, txRepo, txQuotes, teamUID)
	})
}

// deleteTeamTx performs the cascade: member pointers, quotes with their
// ratings, membership rows, then the team document. Runs inside the
// caller's transaction.
func (s *service) deleteTeamTx(
	ctx context.Context,
	txRepo repository.Repository,
	txQuotes quoteRepository.Repository,
	teamUID string,
) error {
	if err := txRepo.ClearMemberships(ctx, teamUID); err != nil {
		return err
	}
	if err := txQuotes.DeleteByTeam(ctx, teamUID); err != nil {
		return err
	}
	if err := txRepo.Delete(ctx, teamUID); err != nil {
		return err
	}

	s.logger.Infow("team deleted", "team_uid", teamUID)
	return nil
}

// ChangeInfo updates the team's name and passcode.
func (s *service) ChangeInfo(ctx context.Context, userID string, req *teamModel.ChangeTeamInfoRequest) (*teamModel.TeamResponse, error) {
	if err := teamModel.ValidateTeamName(req.Name); err != nil {
		return nil, err
	}
	if err := teamModel.ValidatePasscode(req.Passcode); err != nil {
		return nil, err
	}

	var result *teamModel.TeamResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		team, err := txRepo.GetByUID(ctx, req.TeamUID)
		if err != nil {
			return err
		}
		if team.CreatorID != userID {
			return teamModel.ErrNotCreator
		}

		if err := txRepo.UpdateInfo(ctx, req.TeamUID, req.Name, req.Passcode); err != nil {
			return err
		}

		members, err := txRepo.MemberIDs(ctx, req.TeamUID)
		if err != nil {
			return err
		}

		team.Name = req.Name
		team.Passcode = req.Passcode
		result = teamResponse(team, members, true)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// requireNoTeam returns ErrAlreadyInTeam when the user's memberOf pointer
// is set. The profile must have been synced before team operations.
func requireNoTeam(ctx context.Context, tx *gorm.DB, userID string) error {
	var user userModel.User
	err := tx.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: sync the profile before team operations", userModel.ErrUserNotFound)
		}
		return err
	}
	if user.MemberOf != nil {
		return teamModel.ErrAlreadyInTeam
	}
	return nil
}

// teamResponse shapes a team for API output. Passcode is redacted for
// everyone but the creator.
func teamResponse(team *teamModel.Team, members []string, includePasscode bool) *teamModel.TeamResponse {
	resp := &teamModel.TeamResponse{
		TeamUID:   team.TeamUID,
		TeamID:    team.TeamID,
		Name:      team.Name,
		CreatorID: team.CreatorID,
		Members:   members,
	}
	if includePasscode {
		resp.Passcode = team.Passcode
	}
	return resp
}
