package domain

import "time"

// Gauge is a registered measurement instrument record.
type Gauge struct {
	ID               string    `json:"id" bson:"_id,omitempty"`
	Title            string    `json:"title" bson:"title"`
	View             string    `json:"view" bson:"view"`
	Type             string    `json:"type" bson:"type"`
	Min              float64   `json:"min" bson:"min"`
	Max              float64   `json:"max" bson:"max"`
	MeasureUnit      string    `json:"measure_unit" bson:"measure_unit"`
	LowLow           string    `json:"low_low,omitempty" bson:"low_low,omitempty"`
	Low              string    `json:"low,omitempty" bson:"low,omitempty"`
	High             string    `json:"high,omitempty" bson:"high,omitempty"`
	HighHigh         string    `json:"high_high,omitempty" bson:"high_high,omitempty"`
	Description      string    `json:"description,omitempty" bson:"description,omitempty"`
	System           string    `json:"system" bson:"system"`
	Tag              string    `json:"tag" bson:"tag"`
	Device           string    `json:"device" bson:"device"`
	ByUser           string    `json:"by_user" bson:"by_user"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
	VerificationDate time.Time `json:"verification_date,omitempty" bson:"verification_date,omitempty"`
}
