package models

import "time"

// Actor and Director are separate tables on purpose: they are independent
// reference entities with their own many-to-many links to movies.

type Actor struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null;index;size:255" json:"name" example:"Tom Cruise"`
	Age         int       `gorm:"check:age >= 0" json:"age" example:"56"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Actor) TableName() string {
	return "actors"
}

type Director struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null;index;size:255" json:"name" example:"James Cameron"`
	Age         int       `gorm:"check:age >= 0" json:"age" example:"64"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Director) TableName() string {
	return "directors"
}

// PersonListItem is the compact shape used by actor/director listings.
type PersonListItem struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}
