// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-hotel-desk/internal/adapter"
	"github.com/MKhiriev/go-hotel-desk/internal/apitest"
	"github.com/MKhiriev/go-hotel-desk/internal/config"
	"github.com/MKhiriev/go-hotel-desk/internal/logger"
	"github.com/MKhiriev/go-hotel-desk/internal/service"
	"github.com/MKhiriev/go-hotel-desk/models"
)

var frontDesk = models.User{ID: 7, Username: "frontdesk", Role: models.RoleReceptionist, PropertyID: 1}

func testConfig(baseURL, dsn string) *config.ClientConfig {
	return &config.ClientConfig{
		App: config.ClientApp{
			RefreshLeeway:  5 * time.Minute,
			InvoiceTaxRate: 0.1,
			Version:        "1.0.0-test",
		},
		Adapter: config.ClientAdapter{HTTPAddress: baseURL, RequestTimeout: 5 * time.Second},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: dsn}},
		Workers: config.ClientWorkers{RefreshInterval: time.Minute},
	}
}

func newTestApp(t *testing.T, cfg *config.ClientConfig) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	app, err := NewApp(context.Background(), cfg, logger.Nop(), out)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app, out
}

func startServer(t *testing.T, opts ...apitest.Option) *apitest.Server {
	t.Helper()
	srv := apitest.NewServer(append([]apitest.Option{apitest.WithAccount(frontDesk, "secret")}, opts...)...)
	t.Cleanup(srv.Close)
	return srv
}

func decodeOutput(t *testing.T, out *bytes.Buffer, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(out).Decode(v))
	out.Reset()
}

func login(t *testing.T, app *App, out *bytes.Buffer) {
	t.Helper()
	require.NoError(t, app.Execute(context.Background(), []string{"login", "-u", "frontdesk", "-p", "secret"}))
	out.Reset()
}

func TestApp_LoginThenRooms(t *testing.T) {
	srv := startServer(t)
	_, err := srv.SeedRoom(models.Room{RoomNumber: "101", Floor: 1, RoomTypeID: 1, Status: models.RoomAvailable, PropertyID: 1})
	require.NoError(t, err)

	app, out := newTestApp(t, testConfig(srv.BaseURL(), ":memory:"))
	ctx := context.Background()

	require.NoError(t, app.Execute(ctx, []string{"login", "-u", "frontdesk", "-p", "secret"}))
	var user models.User
	decodeOutput(t, out, &user)
	assert.Equal(t, frontDesk.ID, user.ID)

	require.NoError(t, app.Execute(ctx, []string{"rooms", "-status", "Available"}))
	var rooms []models.Room
	decodeOutput(t, out, &rooms)
	require.Len(t, rooms, 1)
	assert.Equal(t, "101", rooms[0].RoomNumber)

	reqs := srv.RequestsTo("/rooms")
	require.Len(t, reqs, 1)
	assert.Equal(t, "status=Available", reqs[0].Query)
	assert.NotEmpty(t, reqs[0].Authorization)
}

func TestApp_CommandWithoutSession(t *testing.T) {
	srv := startServer(t)
	app, _ := newTestApp(t, testConfig(srv.BaseURL(), ":memory:"))

	err := app.Execute(context.Background(), []string{"rooms"})

	assert.ErrorIs(t, err, ErrLoginRequired)
	assert.Empty(t, srv.RequestsTo("/rooms"))
}

func TestApp_UnknownCommand(t *testing.T) {
	srv := startServer(t)
	app, _ := newTestApp(t, testConfig(srv.BaseURL(), ":memory:"))

	assert.ErrorIs(t, app.Execute(context.Background(), []string{"checkout-everyone"}), ErrUnknownCommand)
	assert.ErrorIs(t, app.Execute(context.Background(), nil), ErrNoCommand)
}

func TestApp_Version(t *testing.T) {
	srv := startServer(t)
	app, out := newTestApp(t, testConfig(srv.BaseURL(), ":memory:"))

	require.NoError(t, app.Execute(context.Background(), []string{"version"}))

	var got map[string]string
	decodeOutput(t, out, &got)
	assert.Equal(t, "1.0.0-test", got["version"])
}

func TestApp_LoginWrongPassword(t *testing.T) {
	srv := startServer(t)
	app, _ := newTestApp(t, testConfig(srv.BaseURL(), ":memory:"))

	err := app.Execute(context.Background(), []string{"login", "-u", "frontdesk", "-p", "guess"})

	assert.ErrorIs(t, err, service.ErrWrongPassword)
}

func TestApp_LoginBadFlag(t *testing.T) {
	srv := startServer(t)
	app, _ := newTestApp(t, testConfig(srv.BaseURL(), ":memory:"))

	assert.Error(t, app.Execute(context.Background(), []string{"login", "-x"}))
	assert.Zero(t, srv.LoginCalls())
}

func TestApp_Logout(t *testing.T) {
	srv := startServer(t)
	app, out := newTestApp(t, testConfig(srv.BaseURL(), ":memory:"))
	ctx := context.Background()
	login(t, app, out)

	require.NoError(t, app.Execute(ctx, []string{"logout"}))

	assert.ErrorIs(t, app.Execute(ctx, []string{"notifications"}), ErrLoginRequired)
}

func TestApp_Whoami(t *testing.T) {
	srv := startServer(t)
	app, out := newTestApp(t, testConfig(srv.BaseURL(), ":memory:"))
	login(t, app, out)

	require.NoError(t, app.Execute(context.Background(), []string{"whoami"}))

	var current models.Session
	decodeOutput(t, out, &current)
	assert.Equal(t, frontDesk.ID, current.UserID)
	assert.True(t, current.ExpiresAt.After(time.Now()))
}

func TestApp_RefreshesOnExpiredAccessToken(t *testing.T) {
	srv := startServer(t)
	app, out := newTestApp(t, testConfig(srv.BaseURL(), ":memory:"))
	ctx := context.Background()
	login(t, app, out)

	srv.RevokeAccessTokens()

	require.NoError(t, app.Execute(ctx, []string{"notifications"}))
	assert.Equal(t, 1, srv.RefreshCalls())
	assert.Len(t, srv.RequestsTo("/notifications"), 2)
}

func TestApp_RefreshRejectedRequiresLogin(t *testing.T) {
	srv := startServer(t)
	app, out := newTestApp(t, testConfig(srv.BaseURL(), ":memory:"))
	ctx := context.Background()
	login(t, app, out)

	srv.RevokeAccessTokens()
	srv.RevokeRefreshTokens()

	err := app.Execute(ctx, []string{"bookings"})
	assert.ErrorIs(t, err, ErrLoginRequired)
	assert.ErrorIs(t, err, adapter.ErrAuthExpired)

	// The session was cleared, so nothing is sent any more.
	srv.ResetRequests()
	assert.ErrorIs(t, app.Execute(ctx, []string{"bookings"}), ErrLoginRequired)
	assert.Empty(t, srv.RequestsTo("/bookings"))
}

func TestApp_RestoresSessionFromFile(t *testing.T) {
	srv := startServer(t)
	cfg := testConfig(srv.BaseURL(), filepath.Join(t.TempDir(), "session.json"))
	cfg.App.StorageKey = "front-desk-passphrase"
	ctx := context.Background()

	first, out := newTestApp(t, cfg)
	login(t, first, out)
	require.NoError(t, first.Close())

	second, out := newTestApp(t, cfg)
	require.NoError(t, second.Execute(ctx, []string{"maintenance", "-status", "Open"}))

	var requests []models.Maintenance
	decodeOutput(t, out, &requests)
	assert.Empty(t, requests)
	assert.Equal(t, 1, srv.LoginCalls())
}

func TestApp_InvoicePreviews(t *testing.T) {
	srv := startServer(t)
	_, err := srv.SeedBooking(models.Booking{
		GuestID: 1, RoomID: 1, CheckIn: "2026-03-01", CheckOut: "2026-03-04",
		Status: models.BookingCompleted, RateApplied: 100, PropertyID: 1,
	})
	require.NoError(t, err)
	_, err = srv.SeedBooking(models.Booking{
		GuestID: 2, RoomID: 2, CheckIn: "2026-03-02", CheckOut: "2026-03-05",
		Status: models.BookingActive, RateApplied: 100, PropertyID: 1,
	})
	require.NoError(t, err)

	app, out := newTestApp(t, testConfig(srv.BaseURL(), ":memory:"))
	login(t, app, out)

	require.NoError(t, app.Execute(context.Background(), []string{"invoices", "-preview"}))

	var previews []models.InvoicePreview
	decodeOutput(t, out, &previews)
	require.Len(t, previews, 1)
	assert.Equal(t, 330.0, previews[0].Amount)
	assert.True(t, previews[0].Estimated)
}

func TestApp_BookingsBadDate(t *testing.T) {
	srv := startServer(t)
	app, out := newTestApp(t, testConfig(srv.BaseURL(), ":memory:"))
	login(t, app, out)

	assert.Error(t, app.Execute(context.Background(), []string{"bookings", "-from", "March"}))
	assert.Empty(t, srv.RequestsTo("/bookings"))
}

func TestApp_KeepaliveRefreshesExpiringSession(t *testing.T) {
	srv := startServer(t, apitest.WithAccessTTL(time.Minute))
	app, out := newTestApp(t, testConfig(srv.BaseURL(), ":memory:"))
	login(t, app, out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, app.Execute(ctx, []string{"keepalive"}))
	assert.Equal(t, 1, srv.RefreshCalls())
}
