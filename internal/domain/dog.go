package domain

import (
	"strings"
	"time"
)

// Intention values mirror the app's French-facing vocabulary.
const (
	IntentionReproduction = "reproduction"
	IntentionBalade       = "balade"
	IntentionBoth         = "both"
)

// ActivityLevels is the ordered scale used by the compatibility scorer.
var ActivityLevels = []string{"low", "moderate", "high", "very_high"}

type Dog struct {
	ID            int       `json:"id" db:"id"`
	OwnerID       int       `json:"owner_id" db:"owner_id"`
	Name          string    `json:"name" db:"name"`
	Breed         string    `json:"breed" db:"breed"`
	AgeYears      int       `json:"age_years" db:"age_years"`
	AgeMonths     int       `json:"age_months" db:"age_months"`
	WeightKg      *float64  `json:"weight_kg" db:"weight_kg"`
	Sex           string    `json:"sex" db:"sex"`
	Bio           *string   `json:"bio" db:"bio"`
	Temperament   *string   `json:"temperament" db:"temperament"`
	Intention     string    `json:"intention" db:"intention"`
	ActivityLevel *string   `json:"activity_level" db:"activity_level"`
	GoodWithKids  TriState  `json:"good_with_kids" db:"good_with_kids"`
	GoodWithCats  TriState  `json:"good_with_cats" db:"good_with_cats"`
	GoodWithDogs  TriState  `json:"good_with_dogs" db:"good_with_dogs"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// TemperamentTags splits the comma-delimited temperament field into a
// normalized (trimmed, lower-cased) tag set.
func (d *Dog) TemperamentTags() map[string]struct{} {
	tags := make(map[string]struct{})
	if d.Temperament == nil {
		return tags
	}
	for _, t := range strings.Split(*d.Temperament, ",") {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			tags[t] = struct{}{}
		}
	}
	return tags
}

// ActivityIndex returns the dog's position on the ActivityLevels scale,
// or -1 when the level is unset or not on the scale.
func (d *Dog) ActivityIndex() int {
	if d.ActivityLevel == nil {
		return -1
	}
	for i, lvl := range ActivityLevels {
		if *d.ActivityLevel == lvl {
			return i
		}
	}
	return -1
}
