package blogs

import "time"

// Blog is the persisted blog post. Title and Author are validated by the
// API layer before anything reaches the database; the model itself only
// constrains presence.
type Blog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title  string `gorm:"not null" json:"title"`
	Author string `gorm:"not null" json:"author"`

	Description *string `json:"description"`
	ShortDesc   *string `gorm:"column:short_desc" json:"shortDesc"`

	// Filename inside the image store, never a client-supplied path.
	Image *string `json:"image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
