package model

import "errors"

var (
	// ErrTeamNotFound indicates that the requested team does not exist,
	// including a join attempt whose name/teamId/passcode triple matches nothing.
	ErrTeamNotFound = errors.New("team not found")
	// ErrAlreadyInTeam indicates that the user already belongs to a team.
	ErrAlreadyInTeam = errors.New("user already belongs to a team")
	// ErrNotMember indicates that the user is not a member of the team.
	ErrNotMember = errors.New("user is not a member of the team")
	// ErrNotCreator indicates that the operation is reserved for the team creator.
	ErrNotCreator = errors.New("operation allowed only for the team creator")
	// ErrInvalidTeamName indicates that the team name fails format constraints.
	ErrInvalidTeamName = errors.New("invalid team name")
	// ErrInvalidTeamID indicates that the shareable team id fails format constraints.
	ErrInvalidTeamID = errors.New("invalid team id")
	// ErrInvalidPasscode indicates that the passcode fails format constraints.
	ErrInvalidPasscode = errors.New("invalid passcode")
)
