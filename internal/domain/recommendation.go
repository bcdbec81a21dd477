package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Domain identifies which recommendation vertical a record belongs to.
// Values are DomainMovie, DomainMusic, and DomainFood.
type Domain string

const (
	DomainMovie Domain = "movie"
	DomainMusic Domain = "music"
	DomainFood  Domain = "food"
)

// SpiceLevel is the ordinal heat rating attached to food recommendations.
type SpiceLevel string

const (
	SpiceMild      SpiceLevel = "mild"
	SpiceMedium    SpiceLevel = "medium"
	SpiceSpicy     SpiceLevel = "spicy"
	SpiceVerySpicy SpiceLevel = "very_spicy"
)

// spiceRanks defines the total order over spice levels used for sorting.
var spiceRanks = map[SpiceLevel]int{
	SpiceMild:      1,
	SpiceMedium:    2,
	SpiceSpicy:     3,
	SpiceVerySpicy: 4,
}

// Rank returns the sort rank of the spice level. Unknown levels rank 0,
// below mild, so malformed values sink rather than error.
func (s SpiceLevel) Rank() int {
	return spiceRanks[s]
}

// StringArray is a custom type for storing string arrays as JSON in the database.
type StringArray []string

// Value implements the driver.Valuer interface for database serialization.
// Parameters: none.
// Returns:
//   - driver.Value: JSON-encoded string representation of the slice.
//   - error: non-nil if marshaling fails.
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface for database deserialization.
// Parameters:
//   - value: raw database value to decode.
// Returns:
//   - error: non-nil if decoding fails or the type is unexpected.
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		str, ok := value.(string)
		if !ok {
			return errors.New("failed to scan StringArray")
		}
		bytes = []byte(str)
	}
	return json.Unmarshal(bytes, a)
}

// Contains reports whether the array holds the given value.
func (a StringArray) Contains(v string) bool {
	for _, s := range a {
		if s == v {
			return true
		}
	}
	return false
}

// Recommendation is a single recommended item in any domain. Records are
// written once (either seeded from the store or synthesized by the
// generator) and never mutated afterwards; presentation only filters and
// sorts in-memory copies.
//
// Domain-specific numeric fields are zero for domains they do not apply to:
// Rating is movie-only, BPM music-only, PrepTime/SpiceLevel/MealType food-only.
type Recommendation struct {
	ID          string      `gorm:"type:text;primaryKey" json:"id"`
	Domain      Domain      `gorm:"type:text;not null;index:idx_recommendations_domain" json:"domain"`
	Name        string      `gorm:"type:text;not null" json:"name"`
	Creator     string      `gorm:"type:text" json:"creator,omitempty"`
	Tag         string      `gorm:"type:text;index:idx_recommendations_tag" json:"tag"`
	Mood        string      `gorm:"type:text;index:idx_recommendations_mood" json:"mood"`
	MealType    string      `gorm:"type:text" json:"meal_type,omitempty"`
	Description string      `gorm:"type:text" json:"description,omitempty"`
	Year        int         `json:"year,omitempty"`
	Rating      float64     `json:"rating,omitempty"`
	BPM         int         `json:"bpm,omitempty"`
	PrepTime    int         `json:"prep_time,omitempty"`
	SpiceLevel  SpiceLevel  `gorm:"type:text" json:"spice_level,omitempty"`
	Platforms   StringArray `gorm:"type:text" json:"platforms"`
	ImageURL    string      `gorm:"type:text" json:"image_url"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// TableName returns the database table name for Recommendation.
// Parameters: none.
// Returns:
//   - string: table name for GORM mapping.
func (Recommendation) TableName() string {
	return "recommendations"
}
