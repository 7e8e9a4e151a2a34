package validator

import (
	"encoding/json"
	"fmt"
	"reflect"

	playground "github.com/go-playground/validator/v10"
)

// Field violations keep the wording of the public API contract. Anything not
// listed here falls back to a generic message.
var fieldMessages = map[string]string{
	"Car.BrandID":      "The brand is required",
	"Car.Model":        "The model is required",
	"Car.Color":        "The color is required",
	"Car.Registration": "The registration date is required",
	"Car.CountryID":    "The country is required",
	"Car.Components":   "The car components are required",
	"Brand.Name":       "The name is required",
	"Country.Name":     "The name is required",
	"Country.IsoCode":  "The isoCode is required",
	"Country.FlagURL":  "The flagUrl is required",
}

// EntityValidator runs the declarative constraints declared on an entity's
// struct tags and collects every violation, not just the first. It is
// stateless and safe for concurrent use; construct one at process start.
type EntityValidator struct {
	validate *playground.Validate
}

func New() *EntityValidator {
	v := playground.New(playground.WithRequiredStructEnabled())

	// "notnil" accepts empty collections and empty strings but rejects
	// absent ones: car components and country flag URLs are required fields
	// whose values may legitimately be empty.
	_ = v.RegisterValidation("notnil", func(fl playground.FieldLevel) bool {
		field := fl.Field()
		switch field.Kind() {
		case reflect.Slice, reflect.Map, reflect.Ptr, reflect.Interface:
			return !field.IsNil()
		default:
			return true
		}
	})

	return &EntityValidator{validate: v}
}

// Validate reports all constraint violations of the entity as translated
// messages. Callers must not assume any ordering.
func (ev *EntityValidator) Validate(entity interface{}) []string {
	err := ev.validate.Struct(entity)
	if err == nil {
		return nil
	}

	violations, ok := err.(playground.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	structName := reflect.Indirect(reflect.ValueOf(entity)).Type().Name()
	errs := make([]string, 0, len(violations))
	for _, violation := range violations {
		key := fmt.Sprintf("%s.%s", structName, violation.StructField())
		if msg, found := fieldMessages[key]; found {
			errs = append(errs, msg)
		} else {
			errs = append(errs, fmt.Sprintf("The %s is not valid", violation.StructField()))
		}
	}
	return errs
}

func (ev *EntityValidator) IsValid(entity interface{}) bool {
	return len(ev.Validate(entity)) == 0
}

// ErrorsJSON serializes the violations as the shared error body shape:
// {"errors": ["<message>", ...]}.
func (ev *EntityValidator) ErrorsJSON(entity interface{}) string {
	payload := map[string][]string{"errors": ev.Validate(entity)}
	data, err := json.Marshal(payload)
	if err != nil {
		return `{"errors":["validation errors"]}`
	}
	return string(data)
}
