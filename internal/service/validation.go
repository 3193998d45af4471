package service

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/multierr"

	"github.com/mmynk/deskwalk/internal/models"
)

// FieldError describes one invalid input field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError aggregates every invalid field of one input.
// Use multierr.Errors(err.Err) or Fields to inspect them individually.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return "invalid input: " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Fields returns the invalid field names in the order they were checked.
func (e *ValidationError) Fields() []string {
	errs := multierr.Errors(e.Err)
	fields := make([]string, 0, len(errs))
	for _, err := range errs {
		if fe, ok := err.(*FieldError); ok {
			fields = append(fields, fe.Field)
		}
	}
	return fields
}

// validator collects field errors.
type validator struct {
	err error
}

func (v *validator) fail(field, format string, args ...any) {
	v.err = multierr.Append(v.err, &FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (v *validator) between(field string, value, lo, hi float64, unit string) {
	if value < lo || value > hi {
		v.fail(field, "must be between %g and %g%s", lo, hi, unit)
	}
}

func (v *validator) required(field string, t time.Time) {
	if t.IsZero() {
		v.fail(field, "is required")
	}
}

func (v *validator) result() error {
	if v.err == nil {
		return nil
	}
	return &ValidationError{Err: v.err}
}

// ProfileInput is the user-editable part of a profile.
type ProfileInput struct {
	Height               float64
	Weight               float64
	Age                  int
	Gender               models.Gender
	TargetWeight         float64
	WeeklyWeightLossGoal float64
}

// Validate checks the ranges accepted by the profile form. The target must
// be below the current weight since the goal date assumes weight loss.
func (in ProfileInput) Validate() error {
	var v validator
	v.between("height", in.Height, 36, 96, " inches")
	v.between("weight", in.Weight, 50, 500, " lbs")
	if in.Age < 18 || in.Age > 100 {
		v.fail("age", "must be between 18 and 100")
	}
	if !in.Gender.Valid() {
		v.fail("gender", "must be one of male, female, other")
	}
	v.between("targetWeight", in.TargetWeight, 50, 500, " lbs")
	if in.TargetWeight >= in.Weight {
		v.fail("targetWeight", "must be less than current weight")
	}
	v.between("weeklyWeightLossGoal", in.WeeklyWeightLossGoal, 0.5, 2, " lbs")
	return v.result()
}

// WeightInput is a weight measurement to log. A non-empty ID edits an
// existing entry.
type WeightInput struct {
	ID      string
	Date    time.Time
	Weight  float64
	BodyFat *float64
}

// Validate checks the ranges accepted by the weight form.
func (in WeightInput) Validate() error {
	var v validator
	v.required("date", in.Date)
	v.between("weight", in.Weight, 50, 500, " lbs")
	if in.BodyFat != nil {
		v.between("bodyFat", *in.BodyFat, 0, 70, "%")
	}
	return v.result()
}

// WalkInput is a walk session to log. A non-empty ID edits an existing session.
type WalkInput struct {
	ID        string
	Date      time.Time
	Duration  float64
	Speed     float64
	Equipment string
	Incline   float64
}

// Validate checks the ranges accepted by the walk form.
func (in WalkInput) Validate() error {
	var v validator
	v.required("date", in.Date)
	v.between("duration", in.Duration, 0.1, 24, " hours")
	v.between("speed", in.Speed, 0.1, 10, " mph")
	if len(strings.TrimSpace(in.Equipment)) < 2 {
		v.fail("equipment", "please enter the equipment used")
	}
	v.between("incline", in.Incline, 0, 15, "%")
	return v.result()
}

// MilestoneInput is a milestone to record. A non-empty ID edits an existing one.
type MilestoneInput struct {
	ID          string
	Date        time.Time
	Type        models.MilestoneType
	Description string
	Achieved    bool
}

// Validate checks the milestone type and description.
func (in MilestoneInput) Validate() error {
	var v validator
	v.required("date", in.Date)
	if !in.Type.Valid() {
		v.fail("type", "must be one of weight, consistency, distance")
	}
	if strings.TrimSpace(in.Description) == "" {
		v.fail("description", "is required")
	}
	return v.result()
}
