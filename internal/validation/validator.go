// Package validation checks inputs at the service boundary so the engine only
// ever sees well-formed numbers and closed enumerations.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/stitts-dev/caddie/internal/models"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is one failed rule
type FieldError struct {
	Field   string      `json:"field"`
	Tag     string      `json:"tag"`
	Param   string      `json:"param,omitempty"`
	Value   interface{} `json:"value,omitempty"`
	Message string      `json:"message"`
}

// Error collects every failed rule of one validation pass
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

// Details renders the failures for an API error payload
func (e *Error) Details() map[string]interface{} {
	return map[string]interface{}{"fields": e.Fields}
}

// GetValidator returns the shared validator with custom rules registered
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.SetTagName("validate")

		mustRegister("club", func(fl validator.FieldLevel) bool {
			_, err := models.ParseClubType(fl.Field().String())
			return err == nil
		})
		mustRegister("compass", func(fl validator.FieldLevel) bool {
			_, err := models.ParseCompass(fl.Field().String())
			return err == nil
		})
		mustRegister("hazard", func(fl validator.FieldLevel) bool {
			_, err := models.ParseHazardType(fl.Field().String())
			return err == nil
		})
		mustRegister("direction", func(fl validator.FieldLevel) bool {
			_, err := models.ParseDirection(fl.Field().String())
			return err == nil
		})

		validate.RegisterStructValidation(clubLevel, models.ClubDistance{})
		validate.RegisterStructValidation(baselineLevel, models.PlayerBaseline{})
		validate.RegisterStructValidation(shotLevel, models.ShotContext{})
		validate.RegisterStructValidation(holeLevel, models.Hole{})
	})
	return validate
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("failed to register %s validator: %v", tag, err))
	}
}

func clubLevel(sl validator.StructLevel) {
	c := sl.Current().Interface().(models.ClubDistance)
	reportClub(sl, c, "")
}

func reportClub(sl validator.StructLevel, c models.ClubDistance, prefix string) {
	if c.CarryYards < 0 {
		sl.ReportError(c.CarryYards, prefix+"CarryYards", "CarryYards", "gte", "0")
	}
	if c.TotalYards < c.CarryYards {
		sl.ReportError(c.TotalYards, prefix+"TotalYards", "TotalYards", "gtefield", "CarryYards")
	}
	if c.DispersionYards <= 0 {
		sl.ReportError(c.DispersionYards, prefix+"DispersionYards", "DispersionYards", "gt", "0")
	}
}

func baselineLevel(sl validator.StructLevel) {
	b := sl.Current().Interface().(models.PlayerBaseline)
	if strings.TrimSpace(b.PlayerID) == "" {
		sl.ReportError(b.PlayerID, "PlayerID", "PlayerID", "required", "")
	}
	if len(b.Clubs) == 0 {
		sl.ReportError(b.Clubs, "Clubs", "Clubs", "min", "1")
	}
	seen := map[models.ClubType]bool{}
	for i, c := range b.Clubs {
		prefix := fmt.Sprintf("Clubs[%d].", i)
		if seen[c.Club] {
			sl.ReportError(c.Club, prefix+"Club", "Club", "unique", "")
		}
		seen[c.Club] = true
		reportClub(sl, c, prefix)
	}
}

func shotLevel(sl validator.StructLevel) {
	s := sl.Current().Interface().(models.ShotContext)
	if s.DistanceToPinYards <= 0 {
		sl.ReportError(s.DistanceToPinYards, "DistanceToPinYards", "DistanceToPinYards", "gt", "0")
	}
	if s.DistanceToPinYards > 700 {
		sl.ReportError(s.DistanceToPinYards, "DistanceToPinYards", "DistanceToPinYards", "lte", "700")
	}
}

func holeLevel(sl validator.StructLevel) {
	h := sl.Current().Interface().(models.Hole)
	if h.DistanceToPinYards <= 0 {
		sl.ReportError(h.DistanceToPinYards, "DistanceToPinYards", "DistanceToPinYards", "gt", "0")
	}
	if h.ShotBearingDegrees < 0 || h.ShotBearingDegrees >= 360 {
		sl.ReportError(h.ShotBearingDegrees, "ShotBearingDegrees", "ShotBearingDegrees", "bearing", "")
	}
	for i, hz := range h.Hazards {
		if hz.DistanceFromTeeYards < 0 {
			sl.ReportError(hz.DistanceFromTeeYards, fmt.Sprintf("Hazards[%d].DistanceFromTeeYards", i),
				"DistanceFromTeeYards", "gte", "0")
		}
	}
}

// ValidateStruct runs every rule on s and returns *Error on failure
func ValidateStruct(s interface{}) error {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fieldPath(fe),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Value:   fe.Value(),
			Message: message(fe),
		})
	}
	return out
}

// fieldPath drops the top-level struct name from the namespace
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	field := fieldPath(fe)
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", field, fe.Param())
	case "gtefield":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "unique":
		return fmt.Sprintf("%s is listed more than once", field)
	case "bearing":
		return fmt.Sprintf("%s must be between 0 and 359", field)
	case "club", "compass", "hazard", "direction":
		return fmt.Sprintf("%s is not a recognised %s", field, fe.Tag())
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}

// Baseline checks the baseline invariants: total >= carry >= 0, dispersion > 0
func Baseline(b *models.PlayerBaseline) error {
	return ValidateStruct(b)
}

// Shot checks the per-request shot context
func Shot(s *models.ShotContext) error {
	return ValidateStruct(s)
}

// Hole checks hole geometry used by the engine
func Hole(h *models.Hole) error {
	return ValidateStruct(h)
}
