package models

import "time"

// DefaultTutorialImage is used when a tutorial is created without a cover image.
const DefaultTutorialImage = "https://images.unsplash.com/photo-1612367990403-73ef3e67bc4f?q=80&w=2670&auto=format&fit=crop"

// Tutorial difficulty levels accepted by the API.
const (
	LevelBeginner     = "Beginner Friendly"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced Level"
)

// ValidTutorialLevel reports whether level is one of the accepted
// difficulty levels.
func ValidTutorialLevel(level string) bool {
	switch level {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Tutorial is a learning-content entity of the learning variant.
//
// Unlike [Product], every tutorial is owned by the user who created it:
// CreatedBy is set exactly once, at creation, to the authenticated
// creator's ID and is immutable afterwards. Update and delete are gated
// on ownership.
type Tutorial struct {
	TutorialID  int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	VideoURL    string `json:"video_url"`

	// Duration is the estimated completion time in minutes.
	Duration int64  `json:"duration"`
	Category string `json:"category"`
	Level    string `json:"level"`
	Image    string `json:"image"`

	// CreatedBy references the owning user. Immutable after creation.
	CreatedBy int64 `json:"created_by"`

	// CreatorName is the display name of the owning user, joined from the
	// users table on read paths. Not a column of the tutorials table.
	CreatorName string `json:"creator_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Tutorial model.
func (t Tutorial) TableName() string {
	return "tutorials"
}

// TutorialUpdate describes a partial update of a tutorial.
// Nil fields are left untouched by the persistence layer.
// CreatedBy deliberately has no counterpart here: ownership never changes.
type TutorialUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	VideoURL    *string `json:"video_url"`
	Duration    *int64  `json:"duration"`
	Category    *string `json:"category"`
	Level       *string `json:"level"`
	Image       *string `json:"image"`
}

// Empty reports whether the update carries no fields at all.
func (u TutorialUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Content == nil &&
		u.VideoURL == nil && u.Duration == nil && u.Category == nil &&
		u.Level == nil && u.Image == nil
}
