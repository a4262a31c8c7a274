// Package model provides domain models and DTOs for the team module.
package model

// CreateTeamRequest represents the request to create a team.
type CreateTeamRequest struct {
	Name     string `json:"name" binding:"required"`
	Passcode string `json:"passcode" binding:"required"`
}

// JoinTeamRequest represents the request to join a team. All three fields
// must match a stored team exactly.
type JoinTeamRequest struct {
	Name     string `json:"name" binding:"required"`
	TeamID   string `json:"team_id" binding:"required"`
	Passcode string `json:"passcode" binding:"required"`
}

// LeaveTeamRequest represents the request to leave a team.
type LeaveTeamRequest struct {
	TeamUID string `json:"team_uid" binding:"required"`
}

// DeleteTeamRequest represents the request to delete a team.
type DeleteTeamRequest struct {
	TeamUID string `json:"team_uid" binding:"required"`
}

// ChangeTeamInfoRequest represents the request to change a team's
// name and passcode.
type ChangeTeamInfoRequest struct {
	TeamUID  string `json:"team_uid" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Passcode string `json:"passcode" binding:"required"`
}

// TeamResponse represents a team in API responses. Passcode is included
// only for the team creator.
type TeamResponse struct {
	TeamUID   string   `json:"teamUid"`
	TeamID    string   `json:"teamId"`
	Name      string   `json:"name"`
	Passcode  string   `json:"passcode,omitempty"`
	CreatorID string   `json:"creatorId"`
	Members   []string `json:"members"`
}
