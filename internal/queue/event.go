// Package queue defines the booking events published to the message broker
// and the publishers that deliver them.
package queue

import "context"

// BookingConfirmedQueue is the queue confirmed bookings are published to.
const BookingConfirmedQueue = "booking.confirmed"

// BookingConfirmedEvent is published after a ticket has been written.
type BookingConfirmedEvent struct {
	BookingID   string `json:"booking_id"`
	UserEmail   string `json:"user_email"`
	MovieTitle  string `json:"movie_title"`
	Seats       []int  `json:"seats"`
	ShowDate    string `json:"show_date"`
	ShowDay     string `json:"show_day,omitempty"`
	ShowTime    string `json:"show_time"`
	TotalAmount int64  `json:"total_amount"`
	ConfirmedAt string `json:"confirmed_at"`
}

// Publisher delivers booking events.
type Publisher interface {
	PublishBookingConfirmed(ctx context.Context, event BookingConfirmedEvent) error
	Close() error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishBookingConfirmed(context.Context, BookingConfirmedEvent) error {
	return nil
}

func (NopPublisher) Close() error { return nil }
