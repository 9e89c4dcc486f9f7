package service

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/cinebook/internal/booking"
	"github.com/mmynk/cinebook/internal/metrics"
	"github.com/mmynk/cinebook/internal/middleware"
	"github.com/mmynk/cinebook/pkg/api"
)

// BookingService implements the BookingService RPC interface. Every call
// needs a signed-in user; RequireAuth puts the email in the context.
type BookingService struct {
	engine       *booking.Engine
	reservations *reservationRegistry
	unitPrice    int64
	seatOptions  []booking.Option
	now          func() time.Time
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// NewBookingService creates the booking service. seatOptions are passed to
// every new seat map.
func NewBookingService(engine *booking.Engine, unitPrice int64, m *metrics.Metrics, logger *slog.Logger, seatOptions ...booking.Option) *BookingService {
	return &BookingService{
		engine:       engine,
		reservations: newReservationRegistry(),
		unitPrice:    unitPrice,
		seatOptions:  seatOptions,
		now:          time.Now,
		metrics:      m,
		logger:       logger,
	}
}

func (s *BookingService) lookup(ctx context.Context, id string) (string, *booking.Reservation, error) {
	email := middleware.GetEmail(ctx)
	if email == "" {
		return "", nil, toConnectError(booking.ErrNotAuthenticated)
	}
	res, err := s.reservations.get(email, id)
	if err != nil {
		return "", nil, toConnectError(err)
	}
	return email, res, nil
}

// StartReservation opens a booking screen with a freshly generated seat map.
func (s *BookingService) StartReservation(ctx context.Context, req *connect.Request[api.StartReservationRequest]) (*connect.Response[api.ReservationResponse], error) {
	email := middleware.GetEmail(ctx)
	if email == "" {
		return nil, toConnectError(booking.ErrNotAuthenticated)
	}

	res := booking.NewReservation(req.Msg.MovieTitle, req.Msg.PosterURL, s.unitPrice, s.now(), s.seatOptions...)
	id := s.reservations.add(email, res)
	s.logger.Debug("Reservation started", "reservation_id", id, "email", email, "movie", req.Msg.MovieTitle)

	return connect.NewResponse(&api.ReservationResponse{Reservation: toAPIReservation(id, res.Snapshot())}), nil
}

// ToggleSeat flips one seat. Aisles and taken seats are left as they are.
func (s *BookingService) ToggleSeat(ctx context.Context, req *connect.Request[api.ToggleSeatRequest]) (*connect.Response[api.ReservationResponse], error) {
	_, res, err := s.lookup(ctx, req.Msg.ReservationID)
	if err != nil {
		return nil, err
	}

	if req.Msg.SeatNumber > 0 {
		res.ToggleSeatNumber(req.Msg.SeatNumber)
	} else {
		res.ToggleSeat(req.Msg.Row, req.Msg.Col)
	}
	return connect.NewResponse(&api.ReservationResponse{Reservation: toAPIReservation(req.Msg.ReservationID, res.Snapshot())}), nil
}

// SelectShowtime sets the date and/or time index.
func (s *BookingService) SelectShowtime(ctx context.Context, req *connect.Request[api.SelectShowtimeRequest]) (*connect.Response[api.ReservationResponse], error) {
	_, res, err := s.lookup(ctx, req.Msg.ReservationID)
	if err != nil {
		return nil, err
	}

	if req.Msg.DateIndex != nil {
		if err := res.SelectDate(*req.Msg.DateIndex); err != nil {
			return nil, toConnectError(err)
		}
	}
	if req.Msg.TimeIndex != nil {
		if err := res.SelectTime(*req.Msg.TimeIndex); err != nil {
			return nil, toConnectError(err)
		}
	}
	return connect.NewResponse(&api.ReservationResponse{Reservation: toAPIReservation(req.Msg.ReservationID, res.Snapshot())}), nil
}

// ConfirmBooking writes the ticket and closes the reservation. On failure
// the reservation stays open so the user can fix the selection and retry.
func (s *BookingService) ConfirmBooking(ctx context.Context, req *connect.Request[api.ConfirmBookingRequest]) (*connect.Response[api.ConfirmBookingResponse], error) {
	email, res, err := s.lookup(ctx, req.Msg.ReservationID)
	if err != nil {
		return nil, err
	}

	bookingReq := res.Request(email)
	ticket, err := s.engine.Confirm(ctx, bookingReq)
	if err != nil {
		s.metrics.ObserveBooking(len(bookingReq.Seats), false)
		return nil, toConnectError(err)
	}
	s.metrics.ObserveBooking(len(ticket.SeatNumbers), true)
	s.reservations.remove(email, req.Msg.ReservationID)

	return connect.NewResponse(&api.ConfirmBookingResponse{
		Ticket:     toAPITicket(ticket),
		TotalPrice: booking.Price(len(ticket.SeatNumbers), bookingReq.UnitPrice),
	}), nil
}

// CancelReservation discards an open reservation. Unknown IDs are ignored.
func (s *BookingService) CancelReservation(ctx context.Context, req *connect.Request[api.CancelReservationRequest]) (*connect.Response[api.CancelReservationResponse], error) {
	email := middleware.GetEmail(ctx)
	if email == "" {
		return nil, toConnectError(booking.ErrNotAuthenticated)
	}
	if s.reservations.remove(email, req.Msg.ReservationID) {
		s.logger.Debug("Reservation cancelled", "reservation_id", req.Msg.ReservationID)
	}
	return connect.NewResponse(&api.CancelReservationResponse{}), nil
}
