// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math"
	"net/http"

	"github.com/MKhiriev/go-hotel-desk/internal/adapter"
	"github.com/MKhiriev/go-hotel-desk/internal/logger"
	"github.com/MKhiriev/go-hotel-desk/models"
)

type invoiceService struct {
	api      adapter.APIClient
	bookings BookingService
	taxRate  float64

	logger *logger.Logger
}

// NewInvoiceService returns an InvoiceService whose previews apply taxRate
// (0.1 is ten percent) to the room charge.
func NewInvoiceService(api adapter.APIClient, bookings BookingService, taxRate float64, logger *logger.Logger) InvoiceService {
	return &invoiceService{api: api, bookings: bookings, taxRate: taxRate, logger: logger}
}

func (s *invoiceService) List(ctx context.Context) ([]models.Invoice, error) {
	return call[[]models.Invoice](ctx, s.api, http.MethodGet, "/invoices", nil, nil)
}

// Preview charges every night of the stay at the booking's rate. A stay
// whose dates cannot be read is charged as a single night.
func (s *invoiceService) Preview(booking models.Booking) (models.InvoicePreview, bool) {
	if booking.Status != models.BookingCompleted {
		return models.InvoicePreview{}, false
	}

	nights, err := booking.Nights()
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "invoiceService.Preview").Int64("booking_id", booking.ID).Msg("charging a single night")
		nights = 1
	}

	subtotal := roundCents(booking.RateApplied * float64(nights))
	tax := roundCents(subtotal * s.taxRate)

	return models.InvoicePreview{
		BookingID:  booking.ID,
		GuestID:    booking.GuestID,
		GuestName:  booking.GuestName,
		RoomNumber: booking.RoomNumber,
		Nights:     nights,
		Subtotal:   subtotal,
		Tax:        tax,
		Amount:     roundCents(subtotal + tax),
		Receipt:    fmt.Sprintf("Invoice for booking %d", booking.ID),
		PropertyID: booking.PropertyID,
		Estimated:  true,
	}, true
}

func (s *invoiceService) Previews(ctx context.Context, filter models.BookingFilter) ([]models.InvoicePreview, error) {
	bookings, err := s.bookings.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	previews := make([]models.InvoicePreview, 0, len(bookings))
	for _, b := range bookings {
		if p, ok := s.Preview(b); ok {
			previews = append(previews, p)
		}
	}
	return previews, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
