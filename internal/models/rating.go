package models

import "time"

// RatingStar holds the fixed scale a rating can reference. Rows are seeded
// at migration time and looked up by value, not by primary key.
type RatingStar struct {
	ID    uint `gorm:"primaryKey" json:"id"`
	Value int  `gorm:"uniqueIndex;not null" json:"value" example:"7"`
}

func (RatingStar) TableName() string {
	return "rating_stars"
}

// Rating links one user's star choice to a movie. At most one row per
// (user, movie) pair exists after a rating call; the service enforces this
// with an upsert, there is no unique constraint at the storage layer.
type Rating struct {
	ID      uint       `gorm:"primaryKey" json:"id"`
	UserID  uint       `gorm:"index;not null" json:"user_id"`
	User    *User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	MovieID uint       `gorm:"index;not null" json:"movie_id"`
	StarID  uint       `gorm:"not null" json:"star_id"`
	Star    *RatingStar `gorm:"foreignKey:StarID;constraint:OnDelete:CASCADE" json:"star,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Rating) TableName() string {
	return "ratings"
}

// RatingItem is the public shape of a single rating on a movie.
type RatingItem struct {
	User string `json:"user"`
	Star int    `json:"star"`
}
