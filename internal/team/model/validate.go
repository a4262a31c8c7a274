package model

import (
	"regexp"
	"unicode/utf8"
)

// Format constraints carried over from the original sign-up forms:
// names allow latin, cyrillic and digits; passcodes are lowercase
// alphanumeric; the shareable id is "#" followed by six [a-z0-9].
var (
	teamNameRe = regexp.MustCompile(`^[a-zA-Z0-9а-яА-ЯіІґҐїЇєЄ]+$`)
	teamIDRe   = regexp.MustCompile(`^#[a-z0-9]{6}$`)
	passcodeRe = regexp.MustCompile(`^[a-z0-9]+$`)
)

// ValidateTeamName checks team name length and character set.
func ValidateTeamName(name string) error {
	length := utf8.RuneCountInString(name)
	if length < 3 || length > 15 || !teamNameRe.MatchString(name) {
		return ErrInvalidTeamName
	}
	return nil
}

// ValidateTeamID checks the shareable team id format.
func ValidateTeamID(teamID string) error {
	if !teamIDRe.MatchString(teamID) {
		return ErrInvalidTeamID
	}
	return nil
}

// ValidatePasscode checks passcode length and character set.
func ValidatePasscode(passcode string) error {
	if len(passcode) < 3 || len(passcode) > 15 || !passcodeRe.MatchString(passcode) {
		return ErrInvalidPasscode
	}
	return nil
}
