package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/cinebook/pkg/api"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("bad log line %q: %v", line, err)
		}
		records = append(records, rec)
	}
	return records
}

func TestLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	interceptor := LoggingInterceptor(logger)

	confirm := func(ctx context.Context, _ connect.AnyRequest) (connect.AnyResponse, error) {
		return connect.NewResponse(&api.ConfirmBookingResponse{Ticket: &api.Ticket{BookingID: "local_1_ab"}}), nil
	}
	ctx := WithEmail(context.Background(), "a@x.com")
	if _, err := interceptor(confirm)(ctx, connect.NewRequest(&api.ConfirmBookingRequest{ReservationID: "r1"})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var typedNil *connect.Response[api.ConfirmBookingResponse]
	rejected := func(context.Context, connect.AnyRequest) (connect.AnyResponse, error) {
		return typedNil, connect.NewError(connect.CodeInvalidArgument, errors.New("seat taken"))
	}
	interceptor(rejected)(ctx, connect.NewRequest(&api.ToggleSeatRequest{ReservationID: "r2"}))

	broken := func(context.Context, connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodeInternal, errors.New("disk full"))
	}
	interceptor(broken)(ctx, connect.NewRequest(&api.GetTicketRequest{BookingID: "local_2_cd"}))

	records := decodeLines(t, &buf)
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	ok := records[0]
	if ok["level"] != "INFO" || ok["email"] != "a@x.com" || ok["reservation_id"] != "r1" || ok["booking_id"] != "local_1_ab" {
		t.Errorf("unexpected success record: %v", ok)
	}
	if rec := records[1]; rec["level"] != "WARN" || rec["reservation_id"] != "r2" {
		t.Errorf("unexpected rejection record: %v", rec)
	}
	if rec := records[2]; rec["level"] != "ERROR" || rec["booking_id"] != "local_2_cd" {
		t.Errorf("unexpected failure record: %v", rec)
	}
}
