// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"flag"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-hotel-desk/internal/session"
	"github.com/MKhiriev/go-hotel-desk/models"
)

type command struct {
	// needsSession restores the persisted session before run.
	needsSession bool
	run          func(ctx context.Context, args []string) error
}

func (a *App) commands() map[string]command {
	return map[string]command{
		"login":         {run: a.login},
		"logout":        {run: a.logout},
		"version":       {run: a.version},
		"whoami":        {needsSession: true, run: a.whoami},
		"rooms":         {needsSession: true, run: a.rooms},
		"bookings":      {needsSession: true, run: a.bookings},
		"invoices":      {needsSession: true, run: a.invoices},
		"maintenance":   {needsSession: true, run: a.maintenance},
		"notifications": {needsSession: true, run: a.notifications},
		"keepalive":     {needsSession: true, run: a.keepalive},
	}
}

func commandNames() string {
	names := make([]string, 0, 10)
	for name := range (&App{}).commands() {
		names = append(names, name)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.services.AuthService.Login(ctx, *username, *password)
	if err != nil {
		return err
	}
	return a.printJSON(user)
}

func (a *App) logout(ctx context.Context, _ []string) error {
	return a.services.AuthService.Logout(ctx)
}

func (a *App) version(ctx context.Context, _ []string) error {
	return a.printJSON(map[string]string{"version": a.services.AppInfoService.GetAppVersion(ctx)})
}

// whoami prints the installed session. An expired access token is
// refreshed first.
func (a *App) whoami(ctx context.Context, _ []string) error {
	current, err := a.services.AuthService.Current()
	if errors.Is(err, session.ErrSessionExpired) {
		if _, err = a.api.RefreshSession(ctx); err != nil {
			return err
		}
		current, err = a.services.AuthService.Current()
	}
	if err != nil {
		return err
	}
	return a.printJSON(current)
}

func (a *App) rooms(ctx context.Context, args []string) error {
	fs := newFlagSet("rooms")
	status := fs.String("status", "", "Available, Occupied, Maintenance or Dirty")
	floor := fs.Int("floor", 0, "floor number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rooms, err := a.services.RoomService.List(ctx, models.RoomFilter{Status: models.RoomStatus(*status), Floor: *floor})
	if err != nil {
		return err
	}
	return a.printJSON(rooms)
}

func (a *App) bookings(ctx context.Context, args []string) error {
	fs := newFlagSet("bookings")
	from, to := dateRangeFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter, err := bookingFilter(*from, *to)
	if err != nil {
		return err
	}
	bookings, err := a.services.BookingService.List(ctx, filter)
	if err != nil {
		return err
	}
	return a.printJSON(bookings)
}

// invoices prints the invoices issued by the server, or with -preview the
// estimated invoices of completed bookings.
func (a *App) invoices(ctx context.Context, args []string) error {
	fs := newFlagSet("invoices")
	preview := fs.Bool("preview", false, "estimate invoices of completed bookings")
	from, to := dateRangeFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if !*preview {
		invoices, err := a.services.InvoiceService.List(ctx)
		if err != nil {
			return err
		}
		return a.printJSON(invoices)
	}

	filter, err := bookingFilter(*from, *to)
	if err != nil {
		return err
	}
	previews, err := a.services.InvoiceService.Previews(ctx, filter)
	if err != nil {
		return err
	}
	return a.printJSON(previews)
}

func (a *App) maintenance(ctx context.Context, args []string) error {
	fs := newFlagSet("maintenance")
	status := fs.String("status", "", "Open, In Progress or Resolved")
	priority := fs.String("priority", "", "Low, Medium or High")
	roomID := fs.Int64("room", 0, "room id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	requests, err := a.services.MaintenanceService.List(ctx, models.MaintenanceFilter{
		Status:   models.MaintenanceStatus(*status),
		Priority: models.MaintenancePriority(*priority),
		RoomID:   *roomID,
	})
	if err != nil {
		return err
	}
	return a.printJSON(requests)
}

func (a *App) notifications(ctx context.Context, _ []string) error {
	notifications, err := a.services.NotificationService.List(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(notifications)
}

// keepalive refreshes the session ahead of expiry until ctx is cancelled.
func (a *App) keepalive(ctx context.Context, _ []string) error {
	if err := a.refreshJob.RefreshIfExpiring(ctx); err != nil {
		return err
	}

	a.workers.Run(ctx)
	defer a.workers.Stop()

	a.logger.Info().Str("func", "App.keepalive").Msg("keeping the session alive")
	<-ctx.Done()
	return nil
}

func dateRangeFlags(fs *flag.FlagSet) (from, to *string) {
	from = fs.String("from", "", "first day, "+models.DateLayout)
	to = fs.String("to", "", "last day, "+models.DateLayout)
	return from, to
}

func bookingFilter(from, to string) (models.BookingFilter, error) {
	var (
		filter models.BookingFilter
		err    error
	)
	if filter.StartDate, err = parseDay(from); err != nil {
		return models.BookingFilter{}, err
	}
	if filter.EndDate, err = parseDay(to); err != nil {
		return models.BookingFilter{}, err
	}
	return filter, nil
}

func parseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(models.DateLayout, s)
}
