package models

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// HouseType distinguishes the indoor block from the outdoor cabins.
type HouseType string

const (
	HouseTypeIndoor  HouseType = "indoor"
	HouseTypeOutdoor HouseType = "outdoor"
)

// ClassificationType is the service tier of a house.
type ClassificationType string

const (
	ClassificationGoldStandard ClassificationType = "gold_standard"
	ClassificationGoldPremium  ClassificationType = "gold_premium"
)

// HouseStatusType is the cleanliness / occupancy state staff toggle.
type HouseStatusType string

const (
	HouseStatusClean    HouseStatusType = "clean"
	HouseStatusDirty    HouseStatusType = "dirty"
	HouseStatusOccupied HouseStatusType = "occupied"
)

// CheckStateType is the daily arrival/departure flag.
type CheckStateType string

const (
	CheckStateCheckIn         CheckStateType = "Check-in"
	CheckStateCheckOut        CheckStateType = "Check-out"
	CheckStateCheckInCheckOut CheckStateType = "Check-in Check-out"
	CheckStateNone            CheckStateType = "Nada"
)

var (
	AllHouseTypes   = []HouseType{HouseTypeIndoor, HouseTypeOutdoor}
	AllHouseStatus  = []HouseStatusType{HouseStatusClean, HouseStatusDirty, HouseStatusOccupied}
	AllCheckStates  = []CheckStateType{CheckStateCheckIn, CheckStateCheckOut, CheckStateCheckInCheckOut, CheckStateNone}
	premiumOutdoors = []int{5, 8, 11}
)

func (t HouseType) Valid() bool       { return slices.Contains(AllHouseTypes, t) }
func (s HouseStatusType) Valid() bool { return slices.Contains(AllHouseStatus, s) }
func (c CheckStateType) Valid() bool  { return slices.Contains(AllCheckStates, c) }
func (c ClassificationType) Valid() bool {
	return c == ClassificationGoldStandard || c == ClassificationGoldPremium
}

// ClassificationFor is the single derivation table for service tiers:
// outdoor houses 5, 8 and 11 are gold_premium, everything else is gold_standard.
func ClassificationFor(t HouseType, number int) ClassificationType {
	if IsPremium(t, number) {
		return ClassificationGoldPremium
	}
	return ClassificationGoldStandard
}

// IsPremium reports whether the (type, number) pair is a premium cabin.
func IsPremium(t HouseType, number int) bool {
	return t == HouseTypeOutdoor && slices.Contains(premiumOutdoors, number)
}

// House is a trackable room or cabin. Notes are newest-first.
type House struct {
	Versioned
	ID             int64              `json:"id"`
	Name           string             `json:"name"`
	Number         int                `json:"number"`
	Type           HouseType          `json:"type"`
	Classification ClassificationType `json:"classification"`
	Status         HouseStatusType    `json:"status"`
	CheckState     CheckStateType     `json:"check_state"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
	Notes          []*Note            `json:"notes"`
}

func (h *House) GetID() int64 { return h.ID }

// HouseName builds the display name stored for a house.
func HouseName(t HouseType, number int) string {
	if t == HouseTypeOutdoor {
		return fmt.Sprintf("Casa %d EXT", number)
	}
	return fmt.Sprintf("Casa %d", number)
}

// DisplayName is the label used in note listings ("Casa 5 exterior").
func (h *House) DisplayName() string {
	if h.Type == HouseTypeOutdoor {
		return fmt.Sprintf("Casa %d exterior", h.EffectiveNumber())
	}
	return h.Name
}

// EffectiveNumber returns the explicit number, falling back to the one
// encoded in the name for rows provisioned before the column existed.
// Zero means the name carries no parseable number.
func (h *House) EffectiveNumber() int {
	if h.Number > 0 {
		return h.Number
	}
	n, err := ParseHouseNumber(h.Name)
	if err != nil {
		return 0
	}
	return n
}

// ParseHouseNumber extracts N from "Casa N", "Casa N EXT" or "Casa N exterior".
func ParseHouseNumber(name string) (int, error) {
	s := strings.TrimSpace(name)
	s = strings.TrimPrefix(s, "Casa ")
	s = strings.TrimSuffix(s, " EXT")
	s = strings.TrimSuffix(s, " exterior")
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("house name %q has no number", name)
	}
	return n, nil
}
