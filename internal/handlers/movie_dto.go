package handlers

import (
	"fmt"
	"time"

	"movie-catalog/internal/services"
)

const premiereDateLayout = "2006-01-02"

type MovieRequest struct {
	Title          string `json:"title" validate:"required"`
	Tagline        string `json:"tagline"`
	Description    string `json:"description"`
	YearOfRelease  int    `json:"year_of_release" validate:"omitempty,gte=1888"`
	Country        string `json:"country"`
	WorldPremiere  string `json:"world_premiere"`
	Budget         int64  `json:"budget" validate:"gte=0"`
	FeesInTheUSA   int64  `json:"fees_in_the_usa" validate:"gte=0"`
	FeesInTheWorld int64  `json:"fees_in_the_world" validate:"gte=0"`
	Draft          bool   `json:"draft"`
	CategoryID     *uint  `json:"category"`
	DirectorIDs    []uint `json:"directors"`
	ActorIDs       []uint `json:"actors"`
	GenreIDs       []uint `json:"genres"`
}

func (r *MovieRequest) toInput() (services.MovieInput, error) {
	in := services.MovieInput{
		Title:          r.Title,
		Tagline:        r.Tagline,
		Description:    r.Description,
		YearOfRelease:  r.YearOfRelease,
		Country:        r.Country,
		Budget:         r.Budget,
		FeesInTheUSA:   r.FeesInTheUSA,
		FeesInTheWorld: r.FeesInTheWorld,
		Draft:          r.Draft,
		CategoryID:     r.CategoryID,
		DirectorIDs:    r.DirectorIDs,
		ActorIDs:       r.ActorIDs,
		GenreIDs:       r.GenreIDs,
	}
	if r.WorldPremiere != "" {
		premiere, err := time.Parse(premiereDateLayout, r.WorldPremiere)
		if err != nil {
			return in, fmt.Errorf("world_premiere must be YYYY-MM-DD: %w", err)
		}
		in.WorldPremiere = &premiere
	}
	return in, nil
}

type MoviePatchRequest struct {
	Title          *string `json:"title"`
	Tagline        *string `json:"tagline"`
	Description    *string `json:"description"`
	YearOfRelease  *int    `json:"year_of_release" validate:"omitempty,gte=1888"`
	Country        *string `json:"country"`
	WorldPremiere  *string `json:"world_premiere"`
	Budget         *int64  `json:"budget" validate:"omitempty,gte=0"`
	FeesInTheUSA   *int64  `json:"fees_in_the_usa" validate:"omitempty,gte=0"`
	FeesInTheWorld *int64  `json:"fees_in_the_world" validate:"omitempty,gte=0"`
	Draft          *bool   `json:"draft"`
	CategoryID     *uint   `json:"category"`
}

func (r *MoviePatchRequest) toPatch() (services.MoviePatch, error) {
	patch := services.MoviePatch{
		Title:          r.Title,
		Tagline:        r.Tagline,
		Description:    r.Description,
		YearOfRelease:  r.YearOfRelease,
		Country:        r.Country,
		Budget:         r.Budget,
		FeesInTheUSA:   r.FeesInTheUSA,
		FeesInTheWorld: r.FeesInTheWorld,
		Draft:          r.Draft,
		CategoryID:     r.CategoryID,
	}
	if r.WorldPremiere != nil {
		premiere, err := time.Parse(premiereDateLayout, *r.WorldPremiere)
		if err != nil {
			return patch, fmt.Errorf("world_premiere must be YYYY-MM-DD: %w", err)
		}
		patch.WorldPremiere = &premiere
	}
	return patch, nil
}

type MovieFrameRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	MovieID     uint   `json:"movie" validate:"required"`
}
