// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "Pending"
	InvoicePaid    InvoiceStatus = "Paid"
)

// Invoice is a bill issued by the server for a booking.
type Invoice struct {
	ID            int64         `json:"id"`
	BookingID     int64         `json:"booking_id"`
	GuestID       int64         `json:"guest_id,omitempty"`
	Amount        float64       `json:"amount"`
	Tax           float64       `json:"tax"`
	Receipt       string        `json:"receipt"`
	Status        InvoiceStatus `json:"status"`
	PaymentMethod string        `json:"payment_method"`
	PropertyID    int64         `json:"property_id"`
}

// InvoicePreview is a client-side estimate for a completed booking. It is
// not an invoice issued by the server and is always marked Estimated.
type InvoicePreview struct {
	BookingID  int64   `json:"booking_id"`
	GuestID    int64   `json:"guest_id"`
	GuestName  string  `json:"guest_name,omitempty"`
	RoomNumber string  `json:"room_number,omitempty"`
	Nights     int     `json:"nights"`
	Subtotal   float64 `json:"subtotal"`
	Tax        float64 `json:"tax"`
	Amount     float64 `json:"amount"`
	Receipt    string  `json:"receipt"`
	PropertyID int64   `json:"property_id"`
	Estimated  bool    `json:"estimated"`
}
