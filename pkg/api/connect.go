package api

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

// AccountServiceClient is a client for the Account service.
type AccountServiceClient struct {
	register          *connect.Client[RegisterRequest, RegisterResponse]
	login             *connect.Client[LoginRequest, LoginResponse]
	logout            *connect.Client[LogoutRequest, LogoutResponse]
	restoreSession    *connect.Client[RestoreSessionRequest, RestoreSessionResponse]
	changePassword    *connect.Client[ChangePasswordRequest, ChangePasswordResponse]
	updateDisplayName *connect.Client[UpdateDisplayNameRequest, UpdateDisplayNameResponse]
}

// NewAccountServiceClient creates a client for baseURL. The JSON codec is always used.
func NewAccountServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AccountServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &AccountServiceClient{
		register:          connect.NewClient[RegisterRequest, RegisterResponse](httpClient, baseURL+AccountServiceRegisterProcedure, opts...),
		login:             connect.NewClient[LoginRequest, LoginResponse](httpClient, baseURL+AccountServiceLoginProcedure, opts...),
		logout:            connect.NewClient[LogoutRequest, LogoutResponse](httpClient, baseURL+AccountServiceLogoutProcedure, opts...),
		restoreSession:    connect.NewClient[RestoreSessionRequest, RestoreSessionResponse](httpClient, baseURL+AccountServiceRestoreSessionProcedure, opts...),
		changePassword:    connect.NewClient[ChangePasswordRequest, ChangePasswordResponse](httpClient, baseURL+AccountServiceChangePasswordProcedure, opts...),
		updateDisplayName: connect.NewClient[UpdateDisplayNameRequest, UpdateDisplayNameResponse](httpClient, baseURL+AccountServiceUpdateDisplayNameProcedure, opts...),
	}
}

func (c *AccountServiceClient) Register(ctx context.Context, req *connect.Request[RegisterRequest]) (*connect.Response[RegisterResponse], error) {
	return c.register.CallUnary(ctx, req)
}

func (c *AccountServiceClient) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *AccountServiceClient) Logout(ctx context.Context, req *connect.Request[LogoutRequest]) (*connect.Response[LogoutResponse], error) {
	return c.logout.CallUnary(ctx, req)
}

func (c *AccountServiceClient) RestoreSession(ctx context.Context, req *connect.Request[RestoreSessionRequest]) (*connect.Response[RestoreSessionResponse], error) {
	return c.restoreSession.CallUnary(ctx, req)
}

func (c *AccountServiceClient) ChangePassword(ctx context.Context, req *connect.Request[ChangePasswordRequest]) (*connect.Response[ChangePasswordResponse], error) {
	return c.changePassword.CallUnary(ctx, req)
}

func (c *AccountServiceClient) UpdateDisplayName(ctx context.Context, req *connect.Request[UpdateDisplayNameRequest]) (*connect.Response[UpdateDisplayNameResponse], error) {
	return c.updateDisplayName.CallUnary(ctx, req)
}

// AccountServiceHandler is implemented by the server side of the Account service.
type AccountServiceHandler interface {
	Register(context.Context, *connect.Request[RegisterRequest]) (*connect.Response[RegisterResponse], error)
	Login(context.Context, *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error)
	Logout(context.Context, *connect.Request[LogoutRequest]) (*connect.Response[LogoutResponse], error)
	RestoreSession(context.Context, *connect.Request[RestoreSessionRequest]) (*connect.Response[RestoreSessionResponse], error)
	ChangePassword(context.Context, *connect.Request[ChangePasswordRequest]) (*connect.Response[ChangePasswordResponse], error)
	UpdateDisplayName(context.Context, *connect.Request[UpdateDisplayNameRequest]) (*connect.Response[UpdateDisplayNameResponse], error)
}

// NewAccountServiceHandler builds an HTTP handler for svc and returns the path to mount it on.
func NewAccountServiceHandler(svc AccountServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
	mux := http.NewServeMux()
	mux.Handle(AccountServiceRegisterProcedure, connect.NewUnaryHandler(AccountServiceRegisterProcedure, svc.Register, opts...))
	mux.Handle(AccountServiceLoginProcedure, connect.NewUnaryHandler(AccountServiceLoginProcedure, svc.Login, opts...))
	mux.Handle(AccountServiceLogoutProcedure, connect.NewUnaryHandler(AccountServiceLogoutProcedure, svc.Logout, opts...))
	mux.Handle(AccountServiceRestoreSessionProcedure, connect.NewUnaryHandler(AccountServiceRestoreSessionProcedure, svc.RestoreSession, opts...))
	mux.Handle(AccountServiceChangePasswordProcedure, connect.NewUnaryHandler(AccountServiceChangePasswordProcedure, svc.ChangePassword, opts...))
	mux.Handle(AccountServiceUpdateDisplayNameProcedure, connect.NewUnaryHandler(AccountServiceUpdateDisplayNameProcedure, svc.UpdateDisplayName, opts...))
	return "/" + AccountServiceName + "/", mux
}

// BookingServiceClient is a client for the Booking service.
type BookingServiceClient struct {
	startReservation  *connect.Client[StartReservationRequest, ReservationResponse]
	toggleSeat        *connect.Client[ToggleSeatRequest, ReservationResponse]
	selectShowtime    *connect.Client[SelectShowtimeRequest, ReservationResponse]
	confirmBooking    *connect.Client[ConfirmBookingRequest, ConfirmBookingResponse]
	cancelReservation *connect.Client[CancelReservationRequest, CancelReservationResponse]
}

// NewBookingServiceClient creates a client for baseURL. The JSON codec is always used.
func NewBookingServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *BookingServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &BookingServiceClient{
		startReservation:  connect.NewClient[StartReservationRequest, ReservationResponse](httpClient, baseURL+BookingServiceStartReservationProcedure, opts...),
		toggleSeat:        connect.NewClient[ToggleSeatRequest, ReservationResponse](httpClient, baseURL+BookingServiceToggleSeatProcedure, opts...),
		selectShowtime:    connect.NewClient[SelectShowtimeRequest, ReservationResponse](httpClient, baseURL+BookingServiceSelectShowtimeProcedure, opts...),
		confirmBooking:    connect.NewClient[ConfirmBookingRequest, ConfirmBookingResponse](httpClient, baseURL+BookingServiceConfirmBookingProcedure, opts...),
		cancelReservation: connect.NewClient[CancelReservationRequest, CancelReservationResponse](httpClient, baseURL+BookingServiceCancelReservationProcedure, opts...),
	}
}

func (c *BookingServiceClient) StartReservation(ctx context.Context, req *connect.Request[StartReservationRequest]) (*connect.Response[ReservationResponse], error) {
	return c.startReservation.CallUnary(ctx, req)
}

func (c *BookingServiceClient) ToggleSeat(ctx context.Context, req *connect.Request[ToggleSeatRequest]) (*connect.Response[ReservationResponse], error) {
	return c.toggleSeat.CallUnary(ctx, req)
}

func (c *BookingServiceClient) SelectShowtime(ctx context.Context, req *connect.Request[SelectShowtimeRequest]) (*connect.Response[ReservationResponse], error) {
	return c.selectShowtime.CallUnary(ctx, req)
}

func (c *BookingServiceClient) ConfirmBooking(ctx context.Context, req *connect.Request[ConfirmBookingRequest]) (*connect.Response[ConfirmBookingResponse], error) {
	return c.confirmBooking.CallUnary(ctx, req)
}

func (c *BookingServiceClient) CancelReservation(ctx context.Context, req *connect.Request[CancelReservationRequest]) (*connect.Response[CancelReservationResponse], error) {
	return c.cancelReservation.CallUnary(ctx, req)
}

// BookingServiceHandler is implemented by the server side of the Booking service.
type BookingServiceHandler interface {
	StartReservation(context.Context, *connect.Request[StartReservationRequest]) (*connect.Response[ReservationResponse], error)
	ToggleSeat(context.Context, *connect.Request[ToggleSeatRequest]) (*connect.Response[ReservationResponse], error)
	SelectShowtime(context.Context, *connect.Request[SelectShowtimeRequest]) (*connect.Response[ReservationResponse], error)
	ConfirmBooking(context.Context, *connect.Request[ConfirmBookingRequest]) (*connect.Response[ConfirmBookingResponse], error)
	CancelReservation(context.Context, *connect.Request[CancelReservationRequest]) (*connect.Response[CancelReservationResponse], error)
}

// NewBookingServiceHandler builds an HTTP handler for svc and returns the path to mount it on.
func NewBookingServiceHandler(svc BookingServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
	mux := http.NewServeMux()
	mux.Handle(BookingServiceStartReservationProcedure, connect.NewUnaryHandler(BookingServiceStartReservationProcedure, svc.StartReservation, opts...))
	mux.Handle(BookingServiceToggleSeatProcedure, connect.NewUnaryHandler(BookingServiceToggleSeatProcedure, svc.ToggleSeat, opts...))
	mux.Handle(BookingServiceSelectShowtimeProcedure, connect.NewUnaryHandler(BookingServiceSelectShowtimeProcedure, svc.SelectShowtime, opts...))
	mux.Handle(BookingServiceConfirmBookingProcedure, connect.NewUnaryHandler(BookingServiceConfirmBookingProcedure, svc.ConfirmBooking, opts...))
	mux.Handle(BookingServiceCancelReservationProcedure, connect.NewUnaryHandler(BookingServiceCancelReservationProcedure, svc.CancelReservation, opts...))
	return "/" + BookingServiceName + "/", mux
}

// TicketServiceClient is a client for the Ticket service.
type TicketServiceClient struct {
	listTickets  *connect.Client[ListTicketsRequest, ListTicketsResponse]
	getTicket    *connect.Client[GetTicketRequest, GetTicketResponse]
	clearTickets *connect.Client[ClearTicketsRequest, ClearTicketsResponse]
}

// NewTicketServiceClient creates a client for baseURL. The JSON codec is always used.
func NewTicketServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *TicketServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &TicketServiceClient{
		listTickets:  connect.NewClient[ListTicketsRequest, ListTicketsResponse](httpClient, baseURL+TicketServiceListTicketsProcedure, opts...),
		getTicket:    connect.NewClient[GetTicketRequest, GetTicketResponse](httpClient, baseURL+TicketServiceGetTicketProcedure, opts...),
		clearTickets: connect.NewClient[ClearTicketsRequest, ClearTicketsResponse](httpClient, baseURL+TicketServiceClearTicketsProcedure, opts...),
	}
}

func (c *TicketServiceClient) ListTickets(ctx context.Context, req *connect.Request[ListTicketsRequest]) (*connect.Response[ListTicketsResponse], error) {
	return c.listTickets.CallUnary(ctx, req)
}

func (c *TicketServiceClient) GetTicket(ctx context.Context, req *connect.Request[GetTicketRequest]) (*connect.Response[GetTicketResponse], error) {
	return c.getTicket.CallUnary(ctx, req)
}

func (c *TicketServiceClient) ClearTickets(ctx context.Context, req *connect.Request[ClearTicketsRequest]) (*connect.Response[ClearTicketsResponse], error) {
	return c.clearTickets.CallUnary(ctx, req)
}

// TicketServiceHandler is implemented by the server side of the Ticket service.
type TicketServiceHandler interface {
	ListTickets(context.Context, *connect.Request[ListTicketsRequest]) (*connect.Response[ListTicketsResponse], error)
	GetTicket(context.Context, *connect.Request[GetTicketRequest]) (*connect.Response[GetTicketResponse], error)
	ClearTickets(context.Context, *connect.Request[ClearTicketsRequest]) (*connect.Response[ClearTicketsResponse], error)
}

// NewTicketServiceHandler builds an HTTP handler for svc and returns the path to mount it on.
func NewTicketServiceHandler(svc TicketServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
	mux := http.NewServeMux()
	mux.Handle(TicketServiceListTicketsProcedure, connect.NewUnaryHandler(TicketServiceListTicketsProcedure, svc.ListTickets, opts...))
	mux.Handle(TicketServiceGetTicketProcedure, connect.NewUnaryHandler(TicketServiceGetTicketProcedure, svc.GetTicket, opts...))
	mux.Handle(TicketServiceClearTicketsProcedure, connect.NewUnaryHandler(TicketServiceClearTicketsProcedure, svc.ClearTickets, opts...))
	return "/" + TicketServiceName + "/", mux
}

// CatalogServiceClient is a client for the Catalog service.
type CatalogServiceClient struct {
	nowPlaying   *connect.Client[ListMoviesRequest, ListMoviesResponse]
	upcoming     *connect.Client[ListMoviesRequest, ListMoviesResponse]
	popular      *connect.Client[ListMoviesRequest, ListMoviesResponse]
	search       *connect.Client[SearchRequest, ListMoviesResponse]
	movieDetails *connect.Client[MovieDetailsRequest, MovieDetailsResponse]
}

// NewCatalogServiceClient creates a client for baseURL. The JSON codec is always used.
func NewCatalogServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *CatalogServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &CatalogServiceClient{
		nowPlaying:   connect.NewClient[ListMoviesRequest, ListMoviesResponse](httpClient, baseURL+CatalogServiceNowPlayingProcedure, opts...),
		upcoming:     connect.NewClient[ListMoviesRequest, ListMoviesResponse](httpClient, baseURL+CatalogServiceUpcomingProcedure, opts...),
		popular:      connect.NewClient[ListMoviesRequest, ListMoviesResponse](httpClient, baseURL+CatalogServicePopularProcedure, opts...),
		search:       connect.NewClient[SearchRequest, ListMoviesResponse](httpClient, baseURL+CatalogServiceSearchProcedure, opts...),
		movieDetails: connect.NewClient[MovieDetailsRequest, MovieDetailsResponse](httpClient, baseURL+CatalogServiceMovieDetailsProcedure, opts...),
	}
}

func (c *CatalogServiceClient) NowPlaying(ctx context.Context, req *connect.Request[ListMoviesRequest]) (*connect.Response[ListMoviesResponse], error) {
	return c.nowPlaying.CallUnary(ctx, req)
}

func (c *CatalogServiceClient) Upcoming(ctx context.Context, req *connect.Request[ListMoviesRequest]) (*connect.Response[ListMoviesResponse], error) {
	return c.upcoming.CallUnary(ctx, req)
}

func (c *CatalogServiceClient) Popular(ctx context.Context, req *connect.Request[ListMoviesRequest]) (*connect.Response[ListMoviesResponse], error) {
	return c.popular.CallUnary(ctx, req)
}

func (c *CatalogServiceClient) Search(ctx context.Context, req *connect.Request[SearchRequest]) (*connect.Response[ListMoviesResponse], error) {
	return c.search.CallUnary(ctx, req)
}

func (c *CatalogServiceClient) MovieDetails(ctx context.Context, req *connect.Request[MovieDetailsRequest]) (*connect.Response[MovieDetailsResponse], error) {
	return c.movieDetails.CallUnary(ctx, req)
}

// CatalogServiceHandler is implemented by the server side of the Catalog service.
type CatalogServiceHandler interface {
	NowPlaying(context.Context, *connect.Request[ListMoviesRequest]) (*connect.Response[ListMoviesResponse], error)
	Upcoming(context.Context, *connect.Request[ListMoviesRequest]) (*connect.Response[ListMoviesResponse], error)
	Popular(context.Context, *connect.Request[ListMoviesRequest]) (*connect.Response[ListMoviesResponse], error)
	Search(context.Context, *connect.Request[SearchRequest]) (*connect.Response[ListMoviesResponse], error)
	MovieDetails(context.Context, *connect.Request[MovieDetailsRequest]) (*connect.Response[MovieDetailsResponse], error)
}

// NewCatalogServiceHandler builds an HTTP handler for svc and returns the path to mount it on.
func NewCatalogServiceHandler(svc CatalogServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
	mux := http.NewServeMux()
	mux.Handle(CatalogServiceNowPlayingProcedure, connect.NewUnaryHandler(CatalogServiceNowPlayingProcedure, svc.NowPlaying, opts...))
	mux.Handle(CatalogServiceUpcomingProcedure, connect.NewUnaryHandler(CatalogServiceUpcomingProcedure, svc.Upcoming, opts...))
	mux.Handle(CatalogServicePopularProcedure, connect.NewUnaryHandler(CatalogServicePopularProcedure, svc.Popular, opts...))
	mux.Handle(CatalogServiceSearchProcedure, connect.NewUnaryHandler(CatalogServiceSearchProcedure, svc.Search, opts...))
	mux.Handle(CatalogServiceMovieDetailsProcedure, connect.NewUnaryHandler(CatalogServiceMovieDetailsProcedure, svc.MovieDetails, opts...))
	return "/" + CatalogServiceName + "/", mux
}
