// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apitest

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *Server) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withRequestID, s.withRecording, s.withLogging)

	router.Route(BasePath, func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/users/login", s.login)
			r.Post("/users/refresh-token", s.refresh)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.auth)

			r.Get("/users", s.list(collUsers))
			r.Post("/users", s.createUser)

			r.Get("/rooms", s.list(collRooms))
			r.Get("/rooms/availability", s.roomAvailability)
			r.Post("/rooms", s.create(collRooms))
			r.Put("/rooms/{id}", s.update(collRooms))
			r.Delete("/rooms/{id}", s.remove(collRooms))

			r.Get("/guests", s.list(collGuests))
			r.Get("/guests/{id}", s.get(collGuests))
			r.Get("/guests/{id}/bookings", s.guestBookings)
			r.Post("/guests", s.create(collGuests))
			r.Put("/guests/{id}", s.update(collGuests))
			r.Delete("/guests/{id}", s.remove(collGuests))

			r.Get("/bookings", s.listBookings)
			r.Post("/bookings", s.createBooking)
			r.Put("/bookings/{id}/check-in", s.checkIn)
			r.Put("/bookings/{id}/check-out", s.checkOut)
			r.Put("/bookings/{id}/cancel", s.cancel)

			r.Get("/invoices", s.list(collInvoices))

			r.Get("/maintenance", s.list(collMaintenance))
			r.Post("/maintenance", s.create(collMaintenance))
			r.Put("/maintenance/{id}", s.update(collMaintenance))
			r.Delete("/maintenance/{id}", s.remove(collMaintenance))

			r.Get("/housekeepings", s.list(collHousekeeping))
			r.Post("/housekeepings", s.create(collHousekeeping))

			r.Get("/notifications", s.list(collNotifications))
		})
	})

	return router
}
