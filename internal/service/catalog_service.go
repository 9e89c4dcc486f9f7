package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/cinebook/internal/catalog"
	"github.com/mmynk/cinebook/pkg/api"
)

// CatalogService implements the CatalogService RPC interface. Upstream
// failures degrade to empty responses; they are logged and never returned.
type CatalogService struct {
	client *catalog.Client
	logger *slog.Logger
}

// NewCatalogService creates the catalog service.
func NewCatalogService(client *catalog.Client, logger *slog.Logger) *CatalogService {
	return &CatalogService{client: client, logger: logger}
}

func (s *CatalogService) movies(ctx context.Context, what string, fetch func(context.Context) ([]catalog.Movie, error)) *connect.Response[api.ListMoviesResponse] {
	list, err := fetch(ctx)
	if err != nil {
		s.logger.Warn("Catalog unavailable", "list", what, "error", err)
	}
	resp := &api.ListMoviesResponse{Movies: make([]*api.Movie, 0, len(list))}
	for _, m := range list {
		resp.Movies = append(resp.Movies, toAPIMovie(s.client, m))
	}
	return connect.NewResponse(resp)
}

func (s *CatalogService) NowPlaying(ctx context.Context, _ *connect.Request[api.ListMoviesRequest]) (*connect.Response[api.ListMoviesResponse], error) {
	return s.movies(ctx, "now_playing", s.client.NowPlaying), nil
}

func (s *CatalogService) Upcoming(ctx context.Context, _ *connect.Request[api.ListMoviesRequest]) (*connect.Response[api.ListMoviesResponse], error) {
	return s.movies(ctx, "upcoming", s.client.Upcoming), nil
}

func (s *CatalogService) Popular(ctx context.Context, _ *connect.Request[api.ListMoviesRequest]) (*connect.Response[api.ListMoviesResponse], error) {
	return s.movies(ctx, "popular", s.client.Popular), nil
}

func (s *CatalogService) Search(ctx context.Context, req *connect.Request[api.SearchRequest]) (*connect.Response[api.ListMoviesResponse], error) {
	return s.movies(ctx, "search", func(ctx context.Context) ([]catalog.Movie, error) {
		return s.client.Search(ctx, req.Msg.Query)
	}), nil
}

// MovieDetails combines details, cast and the trailer. Each part degrades on
// its own; a missing movie yields a response without Movie.
func (s *CatalogService) MovieDetails(ctx context.Context, req *connect.Request[api.MovieDetailsRequest]) (*connect.Response[api.MovieDetailsResponse], error) {
	id := req.Msg.ID
	resp := &api.MovieDetailsResponse{Genres: []string{}, Cast: []*api.CastMember{}}

	details, err := s.client.Details(ctx, id)
	if err != nil {
		s.logger.Warn("Movie details unavailable", "movie_id", id, "error", err)
		return connect.NewResponse(resp), nil
	}
	resp.Movie = toAPIMovie(s.client, details.Movie)
	resp.Tagline = details.Tagline
	resp.Runtime = details.Runtime
	for _, g := range details.Genres {
		resp.Genres = append(resp.Genres, g.Name)
	}

	if cast, err := s.client.Credits(ctx, id); err != nil {
		s.logger.Warn("Cast unavailable", "movie_id", id, "error", err)
	} else {
		for _, c := range cast {
			resp.Cast = append(resp.Cast, &api.CastMember{
				Name:       c.Name,
				Character:  c.Character,
				ProfileURL: s.client.ImageURL(profileSize, c.ProfilePath),
			})
		}
	}

	if videos, err := s.client.Videos(ctx, id); err != nil {
		s.logger.Warn("Videos unavailable", "movie_id", id, "error", err)
	} else {
		resp.TrailerKey = catalog.PickTrailer(videos)
	}

	return connect.NewResponse(resp), nil
}
