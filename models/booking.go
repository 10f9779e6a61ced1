// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingActive    BookingStatus = "Active"
	BookingCompleted BookingStatus = "Completed"
	BookingCancelled BookingStatus = "Cancelled"
)

// Booking is a reservation of a room by a guest.
//
// CheckIn and CheckOut are kept as returned by the server; use [Booking.Stay]
// to get parsed dates.
type Booking struct {
	ID          int64         `json:"id"`
	GuestID     int64         `json:"guest_id"`
	GuestName   string        `json:"guest_name,omitempty"`
	RoomID      int64         `json:"room_id"`
	RoomNumber  string        `json:"room_number,omitempty"`
	CheckIn     string        `json:"check_in"`
	CheckOut    string        `json:"check_out"`
	Status      BookingStatus `json:"status"`
	Source      string        `json:"source"`
	RateApplied float64       `json:"rate_applied"`
	PropertyID  int64         `json:"property_id"`
}

// Stay parses the check-in and check-out dates.
func (b Booking) Stay() (checkIn, checkOut time.Time, err error) {
	checkIn, err = ParseDate(b.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("booking %d check_in: %w", b.ID, err)
	}
	checkOut, err = ParseDate(b.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("booking %d check_out: %w", b.ID, err)
	}
	return checkIn, checkOut, nil
}

// Nights returns the number of nights between check-in and check-out.
func (b Booking) Nights() (int, error) {
	in, out, err := b.Stay()
	if err != nil {
		return 0, err
	}
	in = truncateToDay(in)
	out = truncateToDay(out)
	if !out.After(in) {
		return 0, fmt.Errorf("booking %d: check_out is not after check_in", b.ID)
	}
	return int(out.Sub(in).Hours() / 24), nil
}

// CreateBookingRequest is the payload of POST /bookings.
type CreateBookingRequest struct {
	GuestID     int64     `json:"guest_id"`
	RoomID      int64     `json:"room_id"`
	CheckIn     time.Time `json:"-"`
	CheckOut    time.Time `json:"-"`
	Source      string    `json:"source"`
	RateApplied float64   `json:"rate_applied"`
	PropertyID  int64     `json:"property_id"`
}

// bookingPayload is the wire form of CreateBookingRequest with dates
// rendered in [DateLayout].
type bookingPayload struct {
	GuestID     int64   `json:"guest_id"`
	RoomID      int64   `json:"room_id"`
	CheckIn     string  `json:"check_in"`
	CheckOut    string  `json:"check_out"`
	Source      string  `json:"source"`
	RateApplied float64 `json:"rate_applied"`
	PropertyID  int64   `json:"property_id"`
}

// Payload returns the JSON body sent to the server.
func (r CreateBookingRequest) Payload() any {
	return bookingPayload{
		GuestID:     r.GuestID,
		RoomID:      r.RoomID,
		CheckIn:     r.CheckIn.Format(DateLayout),
		CheckOut:    r.CheckOut.Format(DateLayout),
		Source:      r.Source,
		RateApplied: r.RateApplied,
		PropertyID:  r.PropertyID,
	}
}

// CheckOutRequest is the payload of PUT /bookings/{id}/check-out.
type CheckOutRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// ParseDate accepts either a calendar date ("2006-01-02") or an RFC 3339
// timestamp, the two forms the API is known to return.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unsupported date %q", s)
	}
	return t, nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
