package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/cinebook/internal/middleware"
	"github.com/mmynk/cinebook/internal/tickets"
	"github.com/mmynk/cinebook/pkg/api"
)

// TicketService implements the TicketService RPC interface.
type TicketService struct {
	tickets *tickets.Service
	logger  *slog.Logger
}

// NewTicketService creates the ticket service.
func NewTicketService(svc *tickets.Service, logger *slog.Logger) *TicketService {
	return &TicketService{tickets: svc, logger: logger}
}

// ListTickets returns the caller's tickets, most recent show first. The UI
// calls it again after a booking to refresh the list.
func (s *TicketService) ListTickets(ctx context.Context, _ *connect.Request[api.ListTicketsRequest]) (*connect.Response[api.ListTicketsResponse], error) {
	list, err := s.tickets.ForUser(ctx, middleware.GetEmail(ctx))
	if err != nil {
		s.logger.Error("Failed to list tickets", "error", err)
		return nil, toConnectError(err)
	}

	resp := &api.ListTicketsResponse{Tickets: make([]*api.Ticket, 0, len(list))}
	for i := range list {
		resp.Tickets = append(resp.Tickets, toAPITicket(&list[i]))
	}
	return connect.NewResponse(resp), nil
}

// GetTicket returns one of the caller's tickets.
func (s *TicketService) GetTicket(ctx context.Context, req *connect.Request[api.GetTicketRequest]) (*connect.Response[api.GetTicketResponse], error) {
	t, err := s.tickets.Get(ctx, middleware.GetEmail(ctx), req.Msg.BookingID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.GetTicketResponse{Ticket: toAPITicket(t)}), nil
}

// ClearTickets deletes all of the caller's tickets.
func (s *TicketService) ClearTickets(ctx context.Context, _ *connect.Request[api.ClearTicketsRequest]) (*connect.Response[api.ClearTicketsResponse], error) {
	n, err := s.tickets.ClearForUser(ctx, middleware.GetEmail(ctx))
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.ClearTicketsResponse{Deleted: n}), nil
}
