package middleware

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/cinebook/pkg/api"
)

// LoggingInterceptor returns a Connect interceptor that logs every RPC call
// with its procedure, caller email, duration and the reservation or booking
// it touched. Client mistakes log at warn, server faults at error.
func LoggingInterceptor(logger *slog.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()

			resp, err := next(ctx, req)

			attrs := []any{
				"procedure", req.Spec().Procedure,
				"email", GetEmail(ctx), // empty before auth
				"duration_ms", time.Since(start).Milliseconds(),
			}
			attrs = append(attrs, subjectAttrs(req.Any())...)

			// On error resp may hold a typed nil, so it is only read on success.
			if err == nil {
				attrs = append(attrs, subjectAttrs(resp.Any())...)
				logger.Info("RPC ok", attrs...)
				return resp, nil
			}

			code := connect.CodeOf(err)
			attrs = append(attrs, "code", code, "error", err)
			if serverFault(code) {
				logger.Error("RPC failed", attrs...)
			} else {
				logger.Warn("RPC rejected", attrs...)
			}
			return resp, err
		}
	}
}

func serverFault(code connect.Code) bool {
	switch code {
	case connect.CodeInternal, connect.CodeUnknown, connect.CodeUnavailable, connect.CodeDataLoss:
		return true
	}
	return false
}

// subjectAttrs pulls the reservation and booking ids out of a message.
func subjectAttrs(msg any) []any {
	switch m := msg.(type) {
	case *api.ToggleSeatRequest:
		return []any{"reservation_id", m.ReservationID}
	case *api.SelectShowtimeRequest:
		return []any{"reservation_id", m.ReservationID}
	case *api.ConfirmBookingRequest:
		return []any{"reservation_id", m.ReservationID}
	case *api.CancelReservationRequest:
		return []any{"reservation_id", m.ReservationID}
	case *api.GetTicketRequest:
		return []any{"booking_id", m.BookingID}
	case *api.ReservationResponse:
		if m.Reservation != nil {
			return []any{"reservation_id", m.Reservation.ID}
		}
	case *api.ConfirmBookingResponse:
		if m.Ticket != nil {
			return []any{"booking_id", m.Ticket.BookingID}
		}
	}
	return nil
}
