package routes

import (
	"movie-catalog/internal/handlers"
	"movie-catalog/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Movies    *handlers.MovieHandler
	Actors    *handlers.ActorHandler
	Directors *handlers.DirectorHandler
	Taxonomy  *handlers.TaxonomyHandler
	Reviews   *handlers.ReviewHandler
	Ratings   *handlers.RatingHandler
	Users     *handlers.UserHandler
}

func Setup(app *fiber.App, h Handlers, auth *middleware.Auth) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Movie routes - public reads resolve the caller so staff see drafts
	movies := v1.Group("/movies")
	{
		movies.Get("/", auth.Optional(), h.Movies.GetAllMovies)
		movies.Get("/:id", auth.Optional(), h.Movies.GetMovieByID)
		movies.Post("/", auth.AdminOnly(), h.Movies.CreateMovie)
		movies.Put("/:id", auth.AdminOnly(), h.Movies.UpdateMovie)
		movies.Patch("/:id", auth.AdminOnly(), h.Movies.PatchMovie)
		movies.Delete("/:id", auth.AdminOnly(), h.Movies.DeleteMovie)
		movies.Post("/:id/upload-poster", auth.AdminOnly(), h.Movies.UploadPoster)
	}

	frames := v1.Group("/movie-frames")
	{
		frames.Post("/", auth.AdminOnly(), h.Movies.CreateFrame)
		frames.Post("/:id/upload-image", auth.AdminOnly(), h.Movies.UploadFrameImage)
	}

	actors := v1.Group("/actors")
	{
		actors.Get("/", h.Actors.GetAllActors)
		actors.Get("/:id", h.Actors.GetActorByID)
		actors.Post("/", auth.AdminOnly(), h.Actors.CreateActor)
		actors.Put("/:id", auth.AdminOnly(), h.Actors.UpdateActor)
		actors.Delete("/:id", auth.AdminOnly(), h.Actors.DeleteActor)
		actors.Post("/:id/upload-image", auth.AdminOnly(), h.Actors.UploadActorImage)
	}

	directors := v1.Group("/directors")
	{
		directors.Get("/", h.Directors.GetAllDirectors)
		directors.Get("/:id", h.Directors.GetDirectorByID)
		directors.Post("/", auth.AdminOnly(), h.Directors.CreateDirector)
		directors.Put("/:id", auth.AdminOnly(), h.Directors.UpdateDirector)
		directors.Delete("/:id", auth.AdminOnly(), h.Directors.DeleteDirector)
		directors.Post("/:id/upload-image", auth.AdminOnly(), h.Directors.UploadDirectorImage)
	}

	categories := v1.Group("/categories")
	{
		categories.Get("/", h.Taxonomy.GetAllCategories)
		categories.Post("/", auth.AdminOnly(), h.Taxonomy.CreateCategory)
		categories.Delete("/:id", auth.AdminOnly(), h.Taxonomy.DeleteCategory)
	}

	genres := v1.Group("/genres")
	{
		genres.Get("/", h.Taxonomy.GetAllGenres)
		genres.Post("/", auth.AdminOnly(), h.Taxonomy.CreateGenre)
	}

	reviews := v1.Group("/reviews")
	{
		reviews.Post("/", auth.Required(), h.Reviews.CreateReview)
		reviews.Delete("/:id", auth.AdminOnly(), h.Reviews.DeleteReview)
	}

	ratings := v1.Group("/ratings")
	{
		ratings.Get("/stars", h.Ratings.GetRatingStars)
		ratings.Post("/", auth.Required(), h.Ratings.CreateRating)
	}

	user := v1.Group("/user")
	{
		user.Post("/register", h.Users.Register)
		user.Post("/token", h.Users.Token)
		user.Get("/me", auth.Required(), h.Users.GetMe)
		user.Put("/me", auth.Required(), h.Users.UpdateMe)
		user.Post("/me/profile", auth.Required(), h.Users.CreateProfile)
		user.Patch("/me/profile", auth.Required(), h.Users.UpdateProfile)
	}

	// Dashboard routes - Analytics and statistics
	dashboard := v1.Group("/dashboard")
	{
		dashboard.Get("/stats", auth.AdminOnly(), h.Movies.GetDashboardStats)
	}
}
