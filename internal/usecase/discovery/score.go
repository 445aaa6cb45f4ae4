package discovery

import (
	"math"
	"strings"

	"github.com/woofwoof-app/backend/internal/domain"
)

// CompatibilityScore computes a 0-100 score between two dogs from seven
// weighted factors. distanceKm is the precomputed owner distance, nil when
// either owner has no location. The cutoffs are hand-tuned and part of the
// scoring contract; keep them as they are.
func CompatibilityScore(myDog, otherDog *domain.Dog, distanceKm *float64) int {
	score := 0.0

	// 1. Intention match (25%)
	switch {
	case myDog.Intention == otherDog.Intention:
		score += 25
	case myDog.Intention == domain.IntentionBoth || otherDog.Intention == domain.IntentionBoth:
		score += 18
	}

	// 2. Activity level (20%)
	score += activityScore(myDog, otherDog)

	// 3. Size/weight (15%)
	score += weightScore(myDog.WeightKg, otherDog.WeightKg)

	// 4. Temperament similarity (15%)
	score += temperamentScore(myDog.TemperamentTags(), otherDog.TemperamentTags())

	// 5. Social compatibility (10%): only the target's flag counts.
	switch otherDog.GoodWithDogs {
	case domain.TriYes:
		score += 10
	case domain.TriUnknown:
		score += 5
	}

	// 6. Breed (10%)
	if strings.EqualFold(strings.TrimSpace(myDog.Breed), strings.TrimSpace(otherDog.Breed)) {
		score += 10
	} else {
		score += 5
	}

	// 7. Distance (5%)
	score += distanceScore(distanceKm)

	return int(math.Min(100, math.Max(0, math.Round(score))))
}

func activityScore(a, b *domain.Dog) float64 {
	idx1, idx2 := a.ActivityIndex(), b.ActivityIndex()
	if idx1 < 0 || idx2 < 0 {
		return 10 // unknown on either side is neutral
	}
	switch idx1 - idx2 {
	case 0:
		return 20
	case 1, -1:
		return 12
	case 2, -2:
		return 4
	default:
		return 0
	}
}

func weightScore(w1, w2 *float64) float64 {
	if w1 == nil || w2 == nil || *w1 <= 0 || *w2 <= 0 {
		return 8
	}
	ratio := math.Min(*w1, *w2) / math.Max(*w1, *w2)
	switch {
	case ratio >= 0.7:
		return 15
	case ratio >= 0.5:
		return 9
	default:
		return 3
	}
}

func temperamentScore(t1, t2 map[string]struct{}) float64 {
	if len(t1) == 0 || len(t2) == 0 {
		return 7
	}
	intersection := 0
	for tag := range t1 {
		if _, ok := t2[tag]; ok {
			intersection++
		}
	}
	union := len(t1) + len(t2) - intersection
	if union == 0 {
		return 7
	}
	return 15 * float64(intersection) / float64(union)
}

func distanceScore(distanceKm *float64) float64 {
	if distanceKm == nil {
		return 2.5
	}
	switch {
	case *distanceKm < 10:
		return 5
	case *distanceKm < 50:
		return 3.5
	case *distanceKm < 100:
		return 2
	default:
		return 0.5
	}
}
