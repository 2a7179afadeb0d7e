package handler

import (
	"time"

	"github.com/gaugeworks/gauge-registry/internal/core/ports"
)

// dateLayout is the wire format of date form fields (HTML date inputs).
const dateLayout = "2006-01-02"

// gaugeForm carries the fields of the create and edit forms. Alarm setpoints
// and the description are free-form and optional, matching the stored schema.
type gaugeForm struct {
	Title            string  `form:"title" validate:"required,max=255"`
	View             string  `form:"view" validate:"required,max=50"`
	Type             string  `form:"type" validate:"required,max=50"`
	Min              float64 `form:"min"`
	Max              float64 `form:"max"`
	MeasureUnit      string  `form:"measure_unit" validate:"required,max=10"`
	LowLow           string  `form:"low_low" validate:"max=50"`
	Low              string  `form:"low" validate:"max=50"`
	High             string  `form:"high" validate:"max=50"`
	HighHigh         string  `form:"high_high" validate:"max=50"`
	Description      string  `form:"description" validate:"max=255"`
	System           string  `form:"system" validate:"required,max=50"`
	Tag              string  `form:"tag" validate:"required,max=50"`
	Device           string  `form:"device" validate:"required,max=50"`
	VerificationDate string  `form:"verification_date" validate:"omitempty,datetime=2006-01-02"`
}

// toInput converts the validated form into the service input. The date is
// parsed after validation, so a failure here cannot happen for a form that
// passed Validate.
func (f gaugeForm) toInput() ports.GaugeInput {
	var verification time.Time
	if f.VerificationDate != "" {
		verification, _ = time.Parse(dateLayout, f.VerificationDate)
	}
	return ports.GaugeInput{
		Title:            f.Title,
		View:             f.View,
		Type:             f.Type,
		Min:              f.Min,
		Max:              f.Max,
		MeasureUnit:      f.MeasureUnit,
		LowLow:           f.LowLow,
		Low:              f.Low,
		High:             f.High,
		HighHigh:         f.HighHigh,
		Description:      f.Description,
		System:           f.System,
		Tag:              f.Tag,
		Device:           f.Device,
		VerificationDate: verification,
	}
}

// loginForm carries the login page fields.
type loginForm struct {
	FullName string `form:"full_name" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// registerForm carries the account registration fields. The role is not part
// of the form; new accounts always start with the default role.
type registerForm struct {
	FullName    string `form:"full_name" validate:"required,max=255"`
	Password    string `form:"password" validate:"required,min=4"`
	PhoneNumber string `form:"phone_number" validate:"max=20"`
}

// userUpdateForm carries the profile editor fields. Active arrives as a
// checkbox, absent when unchecked.
type userUpdateForm struct {
	FullName    string `form:"full_name" validate:"required,max=255"`
	Active      bool   `form:"active"`
	PhoneNumber string `form:"phone_number" validate:"max=20"`
}
