// Package validation checks the platform-independent invariants of a unified
// campaign before any distributor talks to a remote API.
package validation

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"ad-fanout/internal/core/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("objective", func(fl validator.FieldLevel) bool {
		return domain.Objective(fl.Field().String()).Valid()
	})
}

// Campaign returns a human readable reason for every shared invariant the
// campaign breaks. An empty result means the campaign may proceed to the
// platform-specific checks.
func Campaign(c domain.UnifiedCampaignData) []string {
	var reasons []string
	if err := validate.Struct(c); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return []string{err.Error()}
		}
		for _, fe := range verrs {
			reasons = append(reasons, message(fe))
		}
	}
	reasons = append(reasons, Schedule(c.Schedule)...)
	if c.Creative.DestinationURL != "" && !ValidURL(c.Creative.DestinationURL) {
		reasons = append(reasons, "creative.destinationUrl must be an absolute http(s) URL")
	}
	return dedupe(reasons)
}

// Schedule checks the run window.
func Schedule(s domain.Schedule) []string {
	var reasons []string
	if s.StartDate.IsZero() {
		reasons = append(reasons, "schedule.startDate is required")
	}
	if s.EndDate.IsZero() {
		reasons = append(reasons, "schedule.endDate is required")
	}
	if len(reasons) == 0 && !s.EndDate.After(s.StartDate) {
		reasons = append(reasons, "schedule.endDate must be after schedule.startDate")
	}
	return reasons
}

// MaxLength reports a reason when value is longer than limit characters.
func MaxLength(field, value string, limit int) (string, bool) {
	if n := utf8.RuneCountInString(value); n > limit {
		return fmt.Sprintf("%s must be at most %d characters (got %d)", field, limit, n), false
	}
	return "", true
}

// StartsInFuture reports whether the schedule starts strictly after now.
func StartsInFuture(s domain.Schedule, now time.Time) bool {
	return s.StartDate.After(now)
}

// ValidURL accepts absolute http and https URLs with a host.
func ValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func message(fe validator.FieldError) string {
	field := fieldPath(fe)
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return field + " must be greater than " + fe.Param()
	case "gte":
		return field + " must be at least " + fe.Param()
	case "lte":
		return field + " must be at most " + fe.Param()
	case "min":
		if fe.Kind() == reflect.Slice {
			return field + " must contain at least " + fe.Param() + " item(s)"
		}
		return field + " is too short (min: " + fe.Param() + ")"
	case "gtfield":
		return field + " must be greater than " + siblingPath(fe, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s (got %q)", field, strings.ReplaceAll(fe.Param(), " ", ", "), fmt.Sprint(fe.Value()))
	case "url":
		return field + " must be a valid URL"
	case "objective":
		return fmt.Sprintf("%s %q is not a supported objective", field, fmt.Sprint(fe.Value()))
	default:
		return field + " is invalid"
	}
}

// fieldPath strips the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// siblingPath names the gtfield parameter with the same parent path as fe.
// The parameter is the Go field name; it is converted to the JSON form.
func siblingPath(fe validator.FieldError, goName string) string {
	path := fieldPath(fe)
	jsonName := strings.ToLower(goName[:1]) + goName[1:]
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[:i+1] + jsonName
	}
	return jsonName
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
