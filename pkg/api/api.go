// Package api defines the cinebook.v1 RPC surface: procedure names, request
// and response messages, and typed Connect clients. Messages travel as JSON.
package api

// Service names.
const (
	AccountServiceName = "cinebook.v1.AccountService"
	BookingServiceName = "cinebook.v1.BookingService"
	TicketServiceName  = "cinebook.v1.TicketService"
	CatalogServiceName = "cinebook.v1.CatalogService"
)

// Procedure paths.
const (
	AccountServiceRegisterProcedure          = "/" + AccountServiceName + "/Register"
	AccountServiceLoginProcedure             = "/" + AccountServiceName + "/Login"
	AccountServiceLogoutProcedure            = "/" + AccountServiceName + "/Logout"
	AccountServiceRestoreSessionProcedure    = "/" + AccountServiceName + "/RestoreSession"
	AccountServiceChangePasswordProcedure    = "/" + AccountServiceName + "/ChangePassword"
	AccountServiceUpdateDisplayNameProcedure = "/" + AccountServiceName + "/UpdateDisplayName"

	BookingServiceStartReservationProcedure  = "/" + BookingServiceName + "/StartReservation"
	BookingServiceToggleSeatProcedure        = "/" + BookingServiceName + "/ToggleSeat"
	BookingServiceSelectShowtimeProcedure    = "/" + BookingServiceName + "/SelectShowtime"
	BookingServiceConfirmBookingProcedure    = "/" + BookingServiceName + "/ConfirmBooking"
	BookingServiceCancelReservationProcedure = "/" + BookingServiceName + "/CancelReservation"

	TicketServiceListTicketsProcedure  = "/" + TicketServiceName + "/ListTickets"
	TicketServiceGetTicketProcedure    = "/" + TicketServiceName + "/GetTicket"
	TicketServiceClearTicketsProcedure = "/" + TicketServiceName + "/ClearTickets"

	CatalogServiceNowPlayingProcedure   = "/" + CatalogServiceName + "/NowPlaying"
	CatalogServiceUpcomingProcedure     = "/" + CatalogServiceName + "/Upcoming"
	CatalogServicePopularProcedure      = "/" + CatalogServiceName + "/Popular"
	CatalogServiceSearchProcedure       = "/" + CatalogServiceName + "/Search"
	CatalogServiceMovieDetailsProcedure = "/" + CatalogServiceName + "/MovieDetails"
)

// User is the signed-in profile.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
	// SessionSaved is false when the device session could not be written.
	// The token is then refused by protected calls until a later login succeeds.
	SessionSaved bool `json:"session_saved"`
}

type LogoutRequest struct{}

type LogoutResponse struct{}

type RestoreSessionRequest struct{}

// RestoreSessionResponse has a nil User when nobody is signed in.
type RestoreSessionResponse struct {
	User  *User  `json:"user,omitempty"`
	Token string `json:"token,omitempty"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type ChangePasswordResponse struct{}

type UpdateDisplayNameRequest struct {
	Name string `json:"name"`
}

type UpdateDisplayNameResponse struct {
	Name         string `json:"name"`
	CacheUpdated bool   `json:"cache_updated"`
	// Warning describes a cached-profile failure; the account was still renamed.
	Warning string `json:"warning,omitempty"`
}

// SeatCell is one grid position. Number is 0 for aisles.
type SeatCell struct {
	Number   int  `json:"number"`
	Aisle    bool `json:"aisle"`
	Taken    bool `json:"taken"`
	Selected bool `json:"selected"`
}

type DateOption struct {
	Label string `json:"label"`
	Date  string `json:"date"`
}

type Reservation struct {
	ID         string       `json:"id"`
	MovieTitle string       `json:"movie_title"`
	PosterURL  string       `json:"poster_url"`
	Seats      [][]SeatCell `json:"seats"`
	Selected   []int        `json:"selected"`
	Dates      []DateOption `json:"dates"`
	Times      []string     `json:"times"`
	DateIndex  int          `json:"date_index"`
	TimeIndex  int          `json:"time_index"`
	UnitPrice  int64        `json:"unit_price"`
	TotalPrice int64        `json:"total_price"`
}

type StartReservationRequest struct {
	MovieTitle string `json:"movie_title"`
	PosterURL  string `json:"poster_url"`
}

type ReservationResponse struct {
	Reservation *Reservation `json:"reservation"`
}

// ToggleSeatRequest addresses a seat by number, or by row and column when
// SeatNumber is zero.
type ToggleSeatRequest struct {
	ReservationID string `json:"reservation_id"`
	SeatNumber    int    `json:"seat_number,omitempty"`
	Row           int    `json:"row"`
	Col           int    `json:"col"`
}

// SelectShowtimeRequest changes whichever index is set.
type SelectShowtimeRequest struct {
	ReservationID string `json:"reservation_id"`
	DateIndex     *int   `json:"date_index,omitempty"`
	TimeIndex     *int   `json:"time_index,omitempty"`
}

type ConfirmBookingRequest struct {
	ReservationID string `json:"reservation_id"`
}

type ConfirmBookingResponse struct {
	Ticket     *Ticket `json:"ticket"`
	TotalPrice int64   `json:"total_price"`
}

type CancelReservationRequest struct {
	ReservationID string `json:"reservation_id"`
}

type CancelReservationResponse struct{}

type Ticket struct {
	BookingID  string `json:"booking_id"`
	MovieTitle string `json:"movie_title"`
	PosterURL  string `json:"poster_url"`
	Seats      []int  `json:"seats"`
	ShowDate   string `json:"show_date"`
	ShowDay    string `json:"show_day,omitempty"`
	ShowTime   string `json:"show_time"`
	CreatedAt  int64  `json:"created_at"`
}

type ListTicketsRequest struct{}

type ListTicketsResponse struct {
	Tickets []*Ticket `json:"tickets"`
}

type GetTicketRequest struct {
	BookingID string `json:"booking_id"`
}

type GetTicketResponse struct {
	Ticket *Ticket `json:"ticket"`
}

type ClearTicketsRequest struct{}

type ClearTicketsResponse struct {
	Deleted int64 `json:"deleted"`
}

type Movie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterURL   string  `json:"poster_url"`
	BackdropURL string  `json:"backdrop_url"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
}

type ListMoviesRequest struct{}

type SearchRequest struct {
	Query string `json:"query"`
}

type ListMoviesResponse struct {
	Movies []*Movie `json:"movies"`
}

type MovieDetailsRequest struct {
	ID int64 `json:"id"`
}

type CastMember struct {
	Name       string `json:"name"`
	Character  string `json:"character"`
	ProfileURL string `json:"profile_url"`
}

type MovieDetailsResponse struct {
	Movie      *Movie        `json:"movie"`
	Tagline    string        `json:"tagline,omitempty"`
	Runtime    int           `json:"runtime"`
	Genres     []string      `json:"genres"`
	Cast       []*CastMember `json:"cast"`
	TrailerKey string        `json:"trailer_key,omitempty"`
}
