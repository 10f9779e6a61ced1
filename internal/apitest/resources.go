// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-hotel-desk/internal/utils"
	"github.com/MKhiriev/go-hotel-desk/models"
)

const (
	collUsers         = "users"
	collRooms         = "rooms"
	collGuests        = "guests"
	collBookings      = "bookings"
	collInvoices      = "invoices"
	collMaintenance   = "maintenance"
	collHousekeeping  = "housekeepings"
	collNotifications = "notifications"
)

// defaults applied on create when the field is missing.
var createDefaults = map[string]map[string]any{
	collRooms:        {"status": string(models.RoomAvailable)},
	collGuests:       {"loyalty_tier": string(models.LoyaltyNone), "loyalty_points": 0},
	collMaintenance:  {"status": string(models.MaintenanceOpen), "priority": string(models.PriorityLow)},
	collHousekeeping: {"status": string(models.HousekeepingPending)},
}

type record map[string]any

func (r record) id() int64 {
	switch v := r["id"].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	case json.Number:
		n, _ := v.Int64()
		return n
	default:
		return 0
	}
}

func (r record) str(key string) string {
	if v, ok := r[key]; ok && v != nil {
		return fmt.Sprint(v)
	}
	return ""
}

func (r record) clone() record {
	out := make(record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

type collection struct {
	nextID  int64
	records map[int64]record
}

type dataStore struct {
	mu          sync.Mutex
	collections map[string]*collection
}

func newDataStore() *dataStore {
	return &dataStore{collections: make(map[string]*collection)}
}

func (d *dataStore) coll(name string) *collection {
	c, ok := d.collections[name]
	if !ok {
		c = &collection{records: make(map[int64]record)}
		d.collections[name] = c
	}
	return c
}

func (d *dataStore) insert(name string, r record) record {
	d.mu.Lock()
	defer d.mu.Unlock()

	c := d.coll(name)
	c.nextID++
	stored := r.clone()
	stored["id"] = c.nextID
	c.records[c.nextID] = stored
	return stored.clone()
}

func (d *dataStore) get(name string, id int64) (record, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	r, ok := d.coll(name).records[id]
	if !ok {
		return nil, false
	}
	return r.clone(), true
}

func (d *dataStore) all(name string) []record {
	d.mu.Lock()
	defer d.mu.Unlock()

	c := d.coll(name)
	out := make([]record, 0, len(c.records))
	for _, r := range c.records {
		out = append(out, r.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id() < out[j].id() })
	return out
}

func (d *dataStore) update(name string, id int64, patch record) (record, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	r, ok := d.coll(name).records[id]
	if !ok {
		return nil, false
	}
	for k, v := range patch {
		if k == "id" {
			continue
		}
		r[k] = v
	}
	return r.clone(), true
}

func (d *dataStore) remove(name string, id int64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	c := d.coll(name)
	if _, ok := c.records[id]; !ok {
		return false
	}
	delete(c.records, id)
	return true
}

func toRecord(v any) (record, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var r record
	if err = json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return r, nil
}

func fromRecord(r record, out any) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// seed stores v in collection name and decodes the stored record into out.
func (s *Server) seed(name string, v any, out any) error {
	r, err := toRecord(v)
	if err != nil {
		return err
	}
	delete(r, "id")
	return fromRecord(s.data.insert(name, r), out)
}

// SeedRoom stores room and returns it with its assigned id.
func (s *Server) SeedRoom(room models.Room) (models.Room, error) {
	var out models.Room
	err := s.seed(collRooms, room, &out)
	return out, err
}

// SeedGuest stores guest and returns it with its assigned id.
func (s *Server) SeedGuest(guest models.Guest) (models.Guest, error) {
	var out models.Guest
	err := s.seed(collGuests, guest, &out)
	return out, err
}

// SeedBooking stores booking as is and returns it with its assigned id.
func (s *Server) SeedBooking(booking models.Booking) (models.Booking, error) {
	var out models.Booking
	err := s.seed(collBookings, booking, &out)
	return out, err
}

// SeedNotification stores n and returns it with its assigned id.
func (s *Server) SeedNotification(n models.Notification) (models.Notification, error) {
	var out models.Notification
	err := s.seed(collNotifications, n, &out)
	return out, err
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

func decodeRecord(r *http.Request) (record, error) {
	var rec record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		return nil, err
	}
	if rec == nil {
		rec = record{}
	}
	return rec, nil
}

// matches reports whether rec agrees with every query parameter that names
// one of its fields.
func matches(rec record, query map[string][]string) bool {
	for key, values := range query {
		if len(values) == 0 {
			continue
		}
		if _, ok := rec[key]; !ok {
			continue
		}
		if rec.str(key) != values[0] {
			return false
		}
	}
	return true
}

func (s *Server) list(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		out := make([]record, 0)
		for _, rec := range s.data.all(name) {
			if matches(rec, query) {
				out = append(out, rec)
			}
		}
		_, _ = utils.WriteJSON(w, out, http.StatusOK)
	}
}

func (s *Server) get(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			utils.WriteError(w, "invalid id", http.StatusBadRequest)
			return
		}
		rec, found := s.data.get(name, id)
		if !found {
			utils.WriteError(w, "not found", http.StatusNotFound)
			return
		}
		_, _ = utils.WriteJSON(w, rec, http.StatusOK)
	}
}

func (s *Server) create(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := decodeRecord(r)
		if err != nil {
			utils.WriteError(w, "invalid body", http.StatusBadRequest)
			return
		}
		for k, v := range createDefaults[name] {
			if _, ok := rec[k]; !ok {
				rec[k] = v
			}
		}
		_, _ = utils.WriteJSON(w, s.data.insert(name, rec), http.StatusCreated)
	}
}

func (s *Server) update(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			utils.WriteError(w, "invalid id", http.StatusBadRequest)
			return
		}
		patch, err := decodeRecord(r)
		if err != nil {
			utils.WriteError(w, "invalid body", http.StatusBadRequest)
			return
		}
		rec, found := s.data.update(name, id, patch)
		if !found {
			utils.WriteError(w, "not found", http.StatusNotFound)
			return
		}
		_, _ = utils.WriteJSON(w, rec, http.StatusOK)
	}
}

func (s *Server) remove(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			utils.WriteError(w, "invalid id", http.StatusBadRequest)
			return
		}
		if !s.data.remove(name, id) {
			utils.WriteError(w, "not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
