// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apitest

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-hotel-desk/internal/utils"
	"github.com/MKhiriev/go-hotel-desk/models"
)

// invoiceTaxRate is the rate the fake applies when it issues an invoice at
// check-out.
const invoiceTaxRate = 0.1

func (s *Server) listBookings(w http.ResponseWriter, r *http.Request) {
	start, end := r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date")

	out := make([]record, 0)
	for _, rec := range s.data.all(collBookings) {
		if start != "" && dateOf(rec.str("check_out")) < start {
			continue
		}
		if end != "" && dateOf(rec.str("check_in")) > end {
			continue
		}
		out = append(out, rec)
	}
	_, _ = utils.WriteJSON(w, out, http.StatusOK)
}

func (s *Server) guestBookings(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.WriteError(w, "invalid id", http.StatusBadRequest)
		return
	}
	if _, found := s.data.get(collGuests, id); !found {
		utils.WriteError(w, "guest not found", http.StatusNotFound)
		return
	}

	out := make([]record, 0)
	for _, rec := range s.data.all(collBookings) {
		if rec.str("guest_id") == strconv.FormatInt(id, 10) {
			out = append(out, rec)
		}
	}
	_, _ = utils.WriteJSON(w, out, http.StatusOK)
}

func (s *Server) createBooking(w http.ResponseWriter, r *http.Request) {
	rec, err := decodeRecord(r)
	if err != nil {
		utils.WriteError(w, "invalid body", http.StatusBadRequest)
		return
	}

	guest, ok := s.lookup(collGuests, rec["guest_id"])
	if !ok {
		utils.WriteError(w, "guest not found", http.StatusBadRequest)
		return
	}
	room, ok := s.lookup(collRooms, rec["room_id"])
	if !ok {
		utils.WriteError(w, "room not found", http.StatusBadRequest)
		return
	}
	if s.overlapsActiveBooking(room.id(), rec.str("check_in"), rec.str("check_out")) {
		utils.WriteError(w, "room already booked", http.StatusConflict)
		return
	}

	rec["status"] = string(models.BookingActive)
	rec["guest_name"] = guest.str("name")
	rec["room_number"] = room.str("room_number")

	_, _ = utils.WriteJSON(w, s.data.insert(collBookings, rec), http.StatusCreated)
}

func (s *Server) checkIn(w http.ResponseWriter, r *http.Request) {
	booking, ok := s.activeBooking(w, r)
	if !ok {
		return
	}
	s.data.update(collRooms, int64(asFloat(booking["room_id"])), record{"status": string(models.RoomOccupied)})
	_, _ = utils.WriteJSON(w, booking, http.StatusOK)
}

func (s *Server) checkOut(w http.ResponseWriter, r *http.Request) {
	booking, ok := s.activeBooking(w, r)
	if !ok {
		return
	}

	req, err := decodeRecord(r)
	if err != nil || req.str("payment_method") == "" {
		utils.WriteError(w, "payment_method is required", http.StatusBadRequest)
		return
	}

	updated, _ := s.data.update(collBookings, booking.id(), record{"status": string(models.BookingCompleted)})
	s.data.update(collRooms, int64(asFloat(booking["room_id"])), record{"status": string(models.RoomDirty)})

	nights := 1
	if b, err := bookingFromRecord(updated); err == nil {
		if n, err := b.Nights(); err == nil {
			nights = n
		}
	}
	subtotal := asFloat(updated["rate_applied"]) * float64(nights)
	tax := round2(subtotal * invoiceTaxRate)

	s.data.insert(collInvoices, record{
		"booking_id":     booking.id(),
		"guest_id":       updated["guest_id"],
		"amount":         round2(subtotal + tax),
		"tax":            tax,
		"receipt":        fmt.Sprintf("Invoice for booking %d", booking.id()),
		"status":         string(models.InvoicePaid),
		"payment_method": req.str("payment_method"),
		"property_id":    updated["property_id"],
	})

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (s *Server) cancel(w http.ResponseWriter, r *http.Request) {
	booking, ok := s.activeBooking(w, r)
	if !ok {
		return
	}
	updated, _ := s.data.update(collBookings, booking.id(), record{"status": string(models.BookingCancelled)})
	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (s *Server) roomAvailability(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start, end, property := q.Get("start_date"), q.Get("end_date"), q.Get("property_id")
	if start == "" || end == "" || property == "" {
		utils.WriteError(w, "start_date, end_date and property_id are required", http.StatusBadRequest)
		return
	}
	roomType := q.Get("room_type_id")

	out := make([]record, 0)
	for _, room := range s.data.all(collRooms) {
		if room.str("property_id") != property {
			continue
		}
		if roomType != "" && room.str("room_type_id") != roomType {
			continue
		}
		if room.str("status") == string(models.RoomMaintenance) {
			continue
		}
		if s.overlapsActiveBooking(room.id(), start, end) {
			continue
		}
		out = append(out, room)
	}
	_, _ = utils.WriteJSON(w, out, http.StatusOK)
}

func (s *Server) activeBooking(w http.ResponseWriter, r *http.Request) (record, bool) {
	id, ok := pathID(r)
	if !ok {
		utils.WriteError(w, "invalid id", http.StatusBadRequest)
		return nil, false
	}
	booking, found := s.data.get(collBookings, id)
	if !found {
		utils.WriteError(w, "booking not found", http.StatusNotFound)
		return nil, false
	}
	if booking.str("status") != string(models.BookingActive) {
		utils.WriteError(w, "booking is not active", http.StatusConflict)
		return nil, false
	}
	return booking, true
}

func (s *Server) lookup(name string, rawID any) (record, bool) {
	id := int64(asFloat(rawID))
	if id <= 0 {
		return nil, false
	}
	return s.data.get(name, id)
}

func (s *Server) overlapsActiveBooking(roomID int64, checkIn, checkOut string) bool {
	in, out := dateOf(checkIn), dateOf(checkOut)
	for _, b := range s.data.all(collBookings) {
		if int64(asFloat(b["room_id"])) != roomID || b.str("status") != string(models.BookingActive) {
			continue
		}
		if in < dateOf(b.str("check_out")) && dateOf(b.str("check_in")) < out {
			return true
		}
	}
	return false
}

func bookingFromRecord(r record) (models.Booking, error) {
	var b models.Booking
	err := fromRecord(r, &b)
	return b, err
}

// dateOf cuts an RFC 3339 timestamp down to its calendar date so that dates
// compare as strings.
func dateOf(s string) string {
	if len(s) > len(models.DateLayout) {
		return s[:len(models.DateLayout)]
	}
	return s
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case string:
		f, _ := strconv.ParseFloat(n, 64)
		return f
	default:
		return 0
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
