package domain

// Author is the publishing profile attached to a user. A user has at most one.
type Author struct {
	ID          int64
	UserID      int64
	DisplayName string
	Bio         *string
	ProfilePic  *string
}

// ProfileUpdate carries the fields of an author profile update. A nil field
// is left unchanged. An empty Bio or ProfilePic clears it.
type ProfileUpdate struct {
	DisplayName *string
	Bio         *string
	ProfilePic  *string
}
