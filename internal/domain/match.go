package domain

import "time"

// Match is an unordered pair of dogs stored with Dog1ID < Dog2ID so the
// pair is canonical and the (dog1_id, dog2_id) unique constraint holds.
type Match struct {
	ID        int       `json:"id" db:"id"`
	Dog1ID    int       `json:"dog_1_id" db:"dog_1_id"`
	Dog2ID    int       `json:"dog_2_id" db:"dog_2_id"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CanonicalPair orders two dog ids so the smaller comes first.
func CanonicalPair(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

func (m *Match) HasDog(dogID int) bool {
	return m.Dog1ID == dogID || m.Dog2ID == dogID
}

func (m *Match) OtherDogID(dogID int) (int, bool) {
	if m.Dog1ID == dogID {
		return m.Dog2ID, true
	}
	if m.Dog2ID == dogID {
		return m.Dog1ID, true
	}
	return 0, false
}
