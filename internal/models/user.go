package models

// ProfileInfo is the editable part of a user record.
type ProfileInfo struct {
	Name  string `json:"name" firestore:"name" validate:"required,max=100"`
	Email string `json:"email" firestore:"email" validate:"required,email"`
}

// User holds a hiker's profile and four trail-ID lists. Marking a trail
// completed removes it from favourites and wishlist.
type User struct {
	ID              string      `json:"id" firestore:"-"`
	ProfileInfo     ProfileInfo `json:"profileInfo" firestore:"profileInfo"`
	SubmittedTrails []string    `json:"submittedTrails" firestore:"submittedTrails"`
	Favourites      []string    `json:"favourites" firestore:"favourites"`
	Wishlist        []string    `json:"wishlist" firestore:"wishlist"`
	Completed       []string    `json:"completed" firestore:"completed"`
}

// TrailList names one of the user's trail-reference lists as stored in the
// backend document.
type TrailList string

const (
	ListFavourites TrailList = "favourites"
	ListWishlist   TrailList = "wishlist"
	ListCompleted  TrailList = "completed"
)

// SavedTrails is the resolved view of a user's three lists.
type SavedTrails struct {
	Favourites []*Trail `json:"favourites"`
	Wishlist   []*Trail `json:"wishlist"`
	Completed  []*Trail `json:"completed"`
}
