package models

import "time"

// Review is a threaded comment on a movie. ParentID is self-referential;
// deleting a parent re-parents its children to the top level instead of
// cascading.
type Review struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	UserID   uint    `gorm:"index;not null" json:"user_id"`
	User     *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	MovieID  uint    `gorm:"index;not null" json:"movie_id"`
	Text     string  `gorm:"type:text" json:"text"`
	ParentID *uint   `gorm:"index" json:"parent_id"`
	Children []Review `gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL" json:"children,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}

// ReviewNode is the recursive public shape of a review thread. Children carry
// the same shape as their parent, nested to arbitrary depth.
type ReviewNode struct {
	ID       uint         `json:"id"`
	User     string       `json:"user"`
	Text     string       `json:"text"`
	Children []ReviewNode `json:"children"`
}
