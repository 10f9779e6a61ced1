// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoyaltyTier is the loyalty programme level of a guest.
type LoyaltyTier string

const (
	LoyaltyNone   LoyaltyTier = "None"
	LoyaltyBronze LoyaltyTier = "Bronze"
	LoyaltySilver LoyaltyTier = "Silver"
	LoyaltyGold   LoyaltyTier = "Gold"
)

// LoyaltyTiers lists every tier accepted by the API.
var LoyaltyTiers = []LoyaltyTier{LoyaltyNone, LoyaltyBronze, LoyaltySilver, LoyaltyGold}

// Guest is a person staying at, or registered with, a property.
type Guest struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone,omitempty"`
	Address       string         `json:"address,omitempty"`
	Preferences   map[string]any `json:"preferences,omitempty"`
	LoyaltyPoints int            `json:"loyalty_points"`
	LoyaltyTier   LoyaltyTier    `json:"loyalty_tier"`
	GDPRConsent   bool           `json:"gdpr_consent"`
	PropertyID    int64          `json:"property_id"`
}

// CreateGuestRequest is the payload of POST /guests.
type CreateGuestRequest struct {
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone,omitempty"`
	Address     string         `json:"address,omitempty"`
	Preferences map[string]any `json:"preferences,omitempty"`
	LoyaltyTier LoyaltyTier    `json:"loyalty_tier,omitempty"`
	GDPRConsent bool           `json:"gdpr_consent"`
	PropertyID  int64          `json:"property_id"`
}

// UpdateGuestRequest is the payload of PUT /guests/{id}.
// Only non-nil fields are sent.
type UpdateGuestRequest struct {
	Name          *string         `json:"name,omitempty"`
	Email         *string         `json:"email,omitempty"`
	Phone         *string         `json:"phone,omitempty"`
	Address       *string         `json:"address,omitempty"`
	Preferences   *map[string]any `json:"preferences,omitempty"`
	LoyaltyPoints *int            `json:"loyalty_points,omitempty"`
	LoyaltyTier   *LoyaltyTier    `json:"loyalty_tier,omitempty"`
	GDPRConsent   *bool           `json:"gdpr_consent,omitempty"`
}

// IsEmpty reports whether the update carries no field.
func (r UpdateGuestRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil && r.Phone == nil && r.Address == nil &&
		r.Preferences == nil && r.LoyaltyPoints == nil && r.LoyaltyTier == nil && r.GDPRConsent == nil
}
