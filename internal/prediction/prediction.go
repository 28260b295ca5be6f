// Package prediction defines the Prediction entity tracked by augur.
//
// A Prediction is a titled claim with a certainty score in [0, 1], a
// creation timestamp and an optional due date. Predictions are built
// through New or FromRecord, both of which refuse to produce an
// instance whose certainty is out of range. Once built a Prediction
// cannot be modified.
package prediction

import (
	"time"
)

// ID identifies a prediction within a session.
type ID uint64

// Fields are the caller-supplied attributes of a new prediction.
// The creation time comes from the Clock passed to New.
type Fields struct {
	ID          ID
	Title       string
	Description string
	Certainty   float64
	Due         *time.Time
}

// Record is the plain structured form of a prediction, used at the
// storage boundary.
type Record struct {
	ID          ID         `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Certainty   float64    `json:"certainty"`
	Created     time.Time  `json:"created"`
	Due         *time.Time `json:"due,omitempty"`
}

// Prediction is an immutable, validated claim.
type Prediction struct {
	id          ID
	title       string
	description string
	certainty   float64
	created     time.Time
	due         *time.Time
}

// New validates f and stamps the prediction with clock.Now().
func New(clock Clock, f Fields) (Prediction, error) {
	return build(f.ID, f.Title, f.Description, f.Certainty, clock.Now(), f.Due)
}

// FromRecord validates a stored record and converts it to a Prediction.
func FromRecord(r Record) (Prediction, error) {
	return build(r.ID, r.Title, r.Description, r.Certainty, r.Created, r.Due)
}

func build(id ID, title, description string, certainty float64, created time.Time, due *time.Time) (Prediction, error) {
	if !ValidCertainty(certainty) {
		return Prediction{}, &ValidationError{
			Field: "certainty",
			Value: certainty,
			Err:   ErrCertaintyOutOfRange,
		}
	}
	p := Prediction{
		id:          id,
		title:       title,
		description: description,
		certainty:   certainty,
		created:     created,
	}
	if due != nil {
		d := *due
		p.due = &d
	}
	return p, nil
}

// ValidCertainty reports whether c lies in [0, 1]. NaN is rejected.
func ValidCertainty(c float64) bool {
	return c >= 0 && c <= 1
}

func (p Prediction) ID() ID              { return p.id }
func (p Prediction) Title() string       { return p.title }
func (p Prediction) Description() string { return p.description }
func (p Prediction) Certainty() float64  { return p.certainty }
func (p Prediction) Created() time.Time  { return p.created }

// Due returns the due date and whether one is set.
func (p Prediction) Due() (time.Time, bool) {
	if p.due == nil {
		return time.Time{}, false
	}
	return *p.due, true
}

// Record returns the structured form of p.
func (p Prediction) Record() Record {
	r := Record{
		ID:          p.id,
		Title:       p.title,
		Description: p.description,
		Certainty:   p.certainty,
		Created:     p.created,
	}
	if p.due != nil {
		d := *p.due
		r.Due = &d
	}
	return r
}
