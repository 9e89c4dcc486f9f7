package service

import (
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/cinebook/internal/auth"
	"github.com/mmynk/cinebook/internal/metrics"
	"github.com/mmynk/cinebook/internal/middleware"
	"github.com/mmynk/cinebook/pkg/api"
)

// Services bundles the RPC implementations mounted by Mount.
type Services struct {
	Account *AccountService
	Booking *BookingService
	Tickets *TicketService
	Catalog *CatalogService
}

// Mount registers every service on mux. Metrics wrap everything so that
// rejected calls are counted too. Tokens only authenticate while their
// account holds the device session.
func Mount(mux *http.ServeMux, svcs Services, jwtManager *auth.JWTManager, sessions middleware.SessionSource, m *metrics.Metrics) {
	observe := middleware.MetricsInterceptor(m)
	logging := middleware.LoggingInterceptor(slog.Default().With("component", "rpc"))

	public := connect.WithInterceptors(observe, middleware.OptionalAuth(jwtManager, sessions), logging)
	private := connect.WithInterceptors(observe, middleware.RequireAuth(jwtManager, sessions), logging)
	open := connect.WithInterceptors(observe, logging)

	mux.Handle(api.NewAccountServiceHandler(svcs.Account, public))
	mux.Handle(api.NewBookingServiceHandler(svcs.Booking, private))
	mux.Handle(api.NewTicketServiceHandler(svcs.Tickets, private))
	mux.Handle(api.NewCatalogServiceHandler(svcs.Catalog, open))
}
