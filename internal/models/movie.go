package models

import "time"

type Movie struct {
	ID            uint       `gorm:"primaryKey" json:"id" example:"1"`
	Title         string     `gorm:"not null;index;size:255" json:"title" example:"Terminator"`
	Tagline       string     `gorm:"size:255" json:"tagline"`
	Description   string     `gorm:"type:text" json:"description"`
	Poster        string     `json:"poster"`
	YearOfRelease int        `gorm:"index" json:"year_of_release" example:"1984"`
	Country       string     `gorm:"size:255" json:"country" example:"USA"`
	WorldPremiere *time.Time `json:"world_premiere"`
	Budget        int64      `gorm:"check:budget >= 0" json:"budget"`
	FeesInTheUSA  int64      `gorm:"column:fees_in_the_usa;check:fees_in_the_usa >= 0" json:"fees_in_the_usa"`
	FeesInTheWorld int64     `gorm:"check:fees_in_the_world >= 0" json:"fees_in_the_world"`
	Draft         bool       `gorm:"index;default:false" json:"draft"`

	CategoryID *uint     `gorm:"index" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`

	Directors []Director   `gorm:"many2many:movie_directors" json:"directors,omitempty"`
	Actors    []Actor      `gorm:"many2many:movie_actors" json:"actors,omitempty"`
	Genres    []Genre      `gorm:"many2many:movie_genres" json:"genres,omitempty"`
	Frames    []MovieFrame `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE" json:"frames,omitempty"`
	Ratings   []Rating     `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE" json:"ratings,omitempty"`
	Reviews   []Review     `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`

	// Filled by the repository from an AVG subquery, never migrated.
	AverageRating *float64 `gorm:"->;-:migration" json:"average_rating"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`
}

func (Movie) TableName() string {
	return "movies"
}

type MovieFrame struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null;size:255" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `json:"image"`
	MovieID     uint      `gorm:"index;not null" json:"movie_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (MovieFrame) TableName() string {
	return "movie_frames"
}

// MovieListItem is the compact shape used by the public movie listing.
type MovieListItem struct {
	ID            uint     `json:"id"`
	Title         string   `json:"title"`
	Tagline       string   `json:"tagline"`
	Poster        string   `json:"poster"`
	Category      string   `json:"category,omitempty"`
	AverageRating *float64 `json:"average_rating"`
}

// MovieDetail is the full public shape for a single movie, including the
// threaded review tree.
type MovieDetail struct {
	ID             uint             `json:"id"`
	Title          string           `json:"title"`
	Tagline        string           `json:"tagline"`
	Description    string           `json:"description"`
	Poster         string           `json:"poster"`
	YearOfRelease  int              `json:"year_of_release"`
	Country        string           `json:"country"`
	WorldPremiere  *time.Time       `json:"world_premiere"`
	Budget         int64            `json:"budget"`
	FeesInTheUSA   int64            `json:"fees_in_the_usa"`
	FeesInTheWorld int64            `json:"fees_in_the_world"`
	Category       string           `json:"category,omitempty"`
	Genres         []string         `json:"genres"`
	Directors      []PersonListItem `json:"directors"`
	Actors         []PersonListItem `json:"actors"`
	Frames         []MovieFrame     `json:"frames"`
	Ratings        []RatingItem     `json:"ratings"`
	AverageRating  *float64         `json:"average_rating"`
	Reviews        []ReviewNode     `json:"reviews"`
}

type DashboardStats struct {
	TotalMovies   int64    `json:"total_movies"`
	DraftMovies   int64    `json:"draft_movies"`
	TotalRatings  int64    `json:"total_ratings"`
	TotalReviews  int64    `json:"total_reviews"`
	AverageRating *float64 `json:"average_rating"`
	TopRated      []MovieListItem `json:"top_rated"`
}
