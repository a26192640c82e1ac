package utils

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"
)

// Minimal internal validator to avoid a heavyweight dependency. Supports:
// - required
// - statusok (to_do|processing|done)
// - typeok (personal|professional|educational|health_wellness|financial|other)
// - priorityok (low|medium|high)
// - dateymd (YYYY-MM-DD)
// - nameok (letters, numbers, space, hyphen, apostrophe, 1-150 chars)
// - emailok (basic shape check)
// - pwdmin (min length 6)
// - eqfield=OtherField (field equals another field)

var (
	reNameOK  = regexp.MustCompile(`^[A-Za-z0-9 \-']{1,150}$`)
	reEmailOK = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

	validStatuses   = map[string]bool{"to_do": true, "processing": true, "done": true}
	validTaskTypes  = map[string]bool{"personal": true, "professional": true, "educational": true, "health_wellness": true, "financial": true, "other": true}
	validPriorities = map[string]bool{"low": true, "medium": true, "high": true}
)

// ValidateStruct inspects struct tags `validate:"..."` and returns the first error encountered.
// String pointer fields are validated only when non-nil.
func ValidateStruct(s interface{}) error {
	v := reflect.ValueOf(s)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return errors.New("ValidateStruct expects a struct or pointer to struct")
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}
		fv := v.Field(i)
		var sval string
		set := false
		switch {
		case fv.Kind() == reflect.String:
			sval = fv.String()
			set = true
		case fv.Kind() == reflect.Ptr && fv.Type().Elem().Kind() == reflect.String:
			if !fv.IsNil() {
				sval = fv.Elem().String()
				set = true
			}
		}
		for _, p := range strings.Split(tag, ",") {
			p = strings.TrimSpace(p)
			switch {
			case p == "required":
				if sval == "" {
					return errors.New(field.Name + " is required")
				}
			case p == "statusok":
				if set && sval != "" && !validStatuses[sval] {
					return errors.New(field.Name + " must be one of to_do, processing, done")
				}
			case p == "typeok":
				if set && sval != "" && !validTaskTypes[sval] {
					return errors.New(field.Name + " is not a valid task type")
				}
			case p == "priorityok":
				if set && sval != "" && !validPriorities[sval] {
					return errors.New(field.Name + " must be one of low, medium, high")
				}
			case p == "dateymd":
				if set && sval != "" {
					if _, err := time.Parse("2006-01-02", sval); err != nil {
						return errors.New(field.Name + " must be a date in YYYY-MM-DD format")
					}
				}
			case p == "nameok":
				if set && sval != "" && !reNameOK.MatchString(sval) {
					return errors.New(field.Name + " contains invalid characters")
				}
			case p == "emailok":
				if set && sval != "" && !reEmailOK.MatchString(sval) {
					return errors.New(field.Name + " must be a valid email address")
				}
			case p == "pwdmin":
				if len(sval) < 6 {
					return errors.New(field.Name + " must be at least 6 characters")
				}
			case strings.HasPrefix(p, "eqfield="):
				other := strings.TrimPrefix(p, "eqfield=")
				of := v.FieldByName(other)
				if of.IsValid() && of.Kind() == reflect.String {
					if sval != of.String() {
						return errors.New(field.Name + " must equal " + other)
					}
				}
			}
		}
	}
	return nil
}
