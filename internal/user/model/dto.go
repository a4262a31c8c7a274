package model

// SyncProfileRequest carries optional profile overrides for /user/sync.
// Absent fields fall back to the session claims.
type SyncProfileRequest struct {
	Name  *string `json:"name"`
	Image *string `json:"image"`
}
