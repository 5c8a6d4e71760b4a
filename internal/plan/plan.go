package plan

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Days lists the week's day keys in their fixed traversal order.
var Days = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// Meal slot names in their fixed traversal order.
const (
	SlotBreakfast = "breakfast"
	SlotLunch     = "lunch"
	SlotDinner    = "dinner"
	SlotSnacks    = "snacks"
)

// Slots lists the slot names in their fixed traversal order.
var Slots = []string{SlotBreakfast, SlotLunch, SlotDinner, SlotSnacks}

// MealRef points at a meal. Clients send it either as a bare identifier
// string or as an object carrying a meal_id/id field; both forms decode
// into the same value.
type MealRef struct {
	raw string
}

// NewMealRef creates a MealRef from a raw identifier token.
func NewMealRef(id string) MealRef {
	return MealRef{raw: id}
}

// String returns the raw identifier token as it appeared in the plan.
func (r MealRef) String() string {
	return r.raw
}

// MealID returns the canonical meal identifier for lookup. Size/variant
// suffixes like "chicken-bowl_large" do not denote distinct meals, so
// anything after the first underscore is stripped. The second return
// value is false when no identifier can be extracted.
func (r MealRef) MealID() (string, bool) {
	id := strings.TrimSpace(r.raw)
	if i := strings.Index(id, "_"); i >= 0 {
		id = id[:i]
	}
	if id == "" {
		return "", false
	}
	return id, true
}

// UnmarshalJSON accepts both the string form and the object form of a
// meal reference. A JSON null decodes to an empty reference.
func (r *MealRef) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		r.raw = s
		return nil
	}

	var obj struct {
		MealID string `json:"meal_id"`
		ID     string `json:"id"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return fmt.Errorf("meal reference must be a string or an object with a meal_id/id field: %w", err)
	}
	if obj.MealID != "" {
		r.raw = obj.MealID
	} else {
		r.raw = obj.ID
	}
	return nil
}

// MarshalJSON always emits the string form.
func (r MealRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.raw)
}

// DaySlots holds the meals scheduled for a single day. Snacks may hold
// several references; the other slots hold at most one.
type DaySlots struct {
	Breakfast *MealRef  `json:"breakfast,omitempty"`
	Lunch     *MealRef  `json:"lunch,omitempty"`
	Dinner    *MealRef  `json:"dinner,omitempty"`
	Snacks    []MealRef `json:"snacks,omitempty"`
}

// SlotRefs returns the meal references held by the named slot, in order.
// Absent slots yield an empty slice.
func (d DaySlots) SlotRefs(slot string) []MealRef {
	switch slot {
	case SlotBreakfast:
		if d.Breakfast != nil {
			return []MealRef{*d.Breakfast}
		}
	case SlotLunch:
		if d.Lunch != nil {
			return []MealRef{*d.Lunch}
		}
	case SlotDinner:
		if d.Dinner != nil {
			return []MealRef{*d.Dinner}
		}
	case SlotSnacks:
		return d.Snacks
	}
	return nil
}

// WeekPlan maps the 7 fixed day keys to that day's scheduled meals.
// Missing days mean nothing is planned for them.
type WeekPlan map[string]DaySlots
