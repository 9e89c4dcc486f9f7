package service

import (
	"github.com/mmynk/cinebook/internal/booking"
	"github.com/mmynk/cinebook/internal/catalog"
	"github.com/mmynk/cinebook/internal/models"
	"github.com/mmynk/cinebook/pkg/api"
)

// TMDB image sizes used by the UI.
const (
	posterSize   = "w342"
	backdropSize = "w780"
	profileSize  = "w185"
)

func toAPIUser(p *models.UserProfile) *api.User {
	if p == nil {
		return nil
	}
	return &api.User{ID: p.IDFromBackend, Email: p.Email, Name: p.Name}
}

func toAPITicket(t *models.Ticket) *api.Ticket {
	return &api.Ticket{
		BookingID:  t.BookingID,
		MovieTitle: t.MovieTitle,
		PosterURL:  t.PosterURL,
		Seats:      t.SeatNumbers,
		ShowDate:   t.ShowDate,
		ShowDay:    t.ShowDay,
		ShowTime:   t.ShowTime,
		CreatedAt:  t.CreatedAt,
	}
}

func toAPIReservation(id string, v booking.View) *api.Reservation {
	seats := make([][]api.SeatCell, len(v.Grid))
	for r, row := range v.Grid {
		seats[r] = make([]api.SeatCell, len(row))
		for c, cell := range row {
			if cell.IsAisle() {
				seats[r][c] = api.SeatCell{Aisle: true}
				continue
			}
			seats[r][c] = api.SeatCell{
				Number:   cell.Seat.Number,
				Taken:    cell.Seat.Taken,
				Selected: cell.Seat.Selected,
			}
		}
	}

	dates := make([]api.DateOption, len(v.Dates))
	for i, d := range v.Dates {
		dates[i] = api.DateOption{Label: d.Label(), Date: d.ISO()}
	}

	return &api.Reservation{
		ID:         id,
		MovieTitle: v.MovieTitle,
		PosterURL:  v.PosterURL,
		Seats:      seats,
		Selected:   v.Selected,
		Dates:      dates,
		Times:      v.Times,
		DateIndex:  v.DateIndex,
		TimeIndex:  v.TimeIndex,
		UnitPrice:  v.UnitPrice,
		TotalPrice: v.Price,
	}
}

func toAPIMovie(c *catalog.Client, m catalog.Movie) *api.Movie {
	return &api.Movie{
		ID:          m.ID,
		Title:       m.DisplayTitle(),
		Overview:    m.Overview,
		PosterURL:   c.ImageURL(posterSize, m.PosterPath),
		BackdropURL: c.ImageURL(backdropSize, m.BackdropPath),
		ReleaseDate: m.ReleaseDate,
		VoteAverage: m.VoteAverage,
	}
}
