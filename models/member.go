package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Gender is the closed set of genders a member can carry.
// GenderUnset is the zero value and serializes as an empty string.
type Gender int

const (
	GenderUnset Gender = iota
	GenderMale
	GenderFemale
	GenderOther
)

// AllGenders lists the selectable genders in form order.
func AllGenders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderOther}
}

// String returns the label stored in exported JSON.
func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	case GenderOther:
		return "Other"
	default:
		return ""
	}
}

// Symbol returns the suffix used by the tree view.
func (g Gender) Symbol() string {
	switch g {
	case GenderMale:
		return "♂"
	case GenderFemale:
		return "♀"
	default:
		return "•"
	}
}

// ParseGender maps a label to a Gender, case-insensitively.
// Empty input is GenderUnset; any other unknown label is GenderOther.
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return GenderUnset
	case "male", "m":
		return GenderMale
	case "female", "f":
		return GenderFemale
	default:
		return GenderOther
	}
}

// MarshalText implements encoding.TextMarshaler.
func (g Gender) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Gender) UnmarshalText(text []byte) error {
	*g = ParseGender(string(text))
	return nil
}

// Member is one person record in the family collection.
type Member struct {
	ID       string `json:"id" yaml:"id" toml:"id" validate:"required"`
	Name     string `json:"name" yaml:"name" toml:"name" validate:"required,notblank"`
	Gender   Gender `json:"gender" yaml:"gender" toml:"gender"`
	DOB      string `json:"dob" yaml:"dob" toml:"dob"`
	FatherID string `json:"fatherId" yaml:"fatherId" toml:"fatherId"`
	MotherID string `json:"motherId" yaml:"motherId" toml:"motherId"`
}

// Draft holds the editable fields of a member, i.e. everything but the ID.
type Draft struct {
	Name     string `validate:"required,notblank"`
	Gender   Gender `validate:"gte=0,lte=3"`
	DOB      string
	FatherID string
	MotherID string
}

// Draft returns the editable fields of m.
func (m Member) Draft() Draft {
	return Draft{
		Name:     m.Name,
		Gender:   m.Gender,
		DOB:      m.DOB,
		FatherID: m.FatherID,
		MotherID: m.MotherID,
	}
}

// Apply returns m with every editable field replaced by d. The ID is kept.
func (m Member) Apply(d Draft) Member {
	return Member{
		ID:       m.ID,
		Name:     d.Name,
		Gender:   d.Gender,
		DOB:      d.DOB,
		FatherID: d.FatherID,
		MotherID: d.MotherID,
	}
}

// IsRoot reports whether m has no recorded parents.
func (m Member) IsRoot() bool {
	return m.FatherID == "" && m.MotherID == ""
}

// Label is the display form "Name — dob" used by option lists.
func (m Member) Label() string {
	if m.DOB == "" {
		return m.Name
	}
	return m.Name + " — " + m.DOB
}

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	var messages []string
	for _, e := range validationErrors {
		messages = append(messages, fmt.Sprintf("field '%s' failed rule '%s'", e.Field(), e.Tag()))
	}
	return fmt.Errorf("%s", strings.Join(messages, "; "))
}
