package matcher

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/spf13/cast"

	"fieldoverrides/internal/frame"
)

// Standard matcher ids.
const (
	ByName   = "byName"
	ByNames  = "byNames"
	ByRegexp = "byRegexp"
	ByType   = "byType"
	Numeric  = "numeric"
	Time     = "time"
	Any      = "any"
)

const (
	regexpCacheExpiration = 30 * time.Minute
	regexpCacheCleanup    = time.Hour
)

// Compiled patterns are shared by every resolution call in the process.
var regexpCache = gocache.New(regexpCacheExpiration, regexpCacheCleanup)

func compileRegexp(pattern string) (*regexp.Regexp, error) {
	if v, found := regexpCache.Get(pattern); found {
		if re, ok := v.(*regexp.Regexp); ok {
			return re, nil
		}
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	regexpCache.SetDefault(pattern, re)

	return re, nil
}

func stringOption(options any) (string, error) {
	if options == nil {
		return "", errors.New("option is required")
	}

	s, err := cast.ToStringE(options)
	if err != nil {
		return "", err
	}

	if s == "" {
		return "", errors.New("option is empty")
	}

	return s, nil
}

// StandardMatchers returns the built-in matchers.
func StandardMatchers() []Info {
	return []Info{
		{
			ID:          ByName,
			Name:        "Field name",
			Description: "Select a field by its name",
			Factory: func(options any) (Predicate, error) {
				name, err := stringOption(options)
				if err != nil {
					return nil, err
				}

				return func(f *frame.Field) bool { return f.Name == name }, nil
			},
		},
		{
			ID:          ByNames,
			Name:        "Field names",
			Description: "Select fields whose name is in a list",
			Factory: func(options any) (Predicate, error) {
				names, err := cast.ToStringSliceE(options)
				if err != nil {
					return nil, err
				}

				return func(f *frame.Field) bool { return slices.Contains(names, f.Name) }, nil
			},
		},
		{
			ID:          ByRegexp,
			Name:        "Field name pattern",
			Description: "Select fields whose name matches a regular expression",
			Factory: func(options any) (Predicate, error) {
				pattern, err := stringOption(options)
				if err != nil {
					return nil, err
				}

				re, err := compileRegexp(pattern)
				if err != nil {
					return nil, err
				}

				return func(f *frame.Field) bool { return re.MatchString(f.Name) }, nil
			},
		},
		{
			ID:          ByType,
			Name:        "Field type",
			Description: "Select fields of a given type",
			Factory: func(options any) (Predicate, error) {
				s, err := stringOption(options)
				if err != nil {
					return nil, err
				}

				want := frame.FieldType(s)
				if !want.IsValid() {
					return nil, fmt.Errorf("unknown field type %q", s)
				}

				return func(f *frame.Field) bool { return frame.EffectiveType(f) == want }, nil
			},
		},
		{
			ID:          Numeric,
			Name:        "Numeric fields",
			Description: "Select all numeric fields",
			Factory: func(any) (Predicate, error) {
				return func(f *frame.Field) bool {
					return frame.EffectiveType(f) == frame.FieldTypeNumber
				}, nil
			},
		},
		{
			ID:          Time,
			Name:        "Time fields",
			Description: "Select all time fields",
			Factory: func(any) (Predicate, error) {
				return func(f *frame.Field) bool {
					return frame.EffectiveType(f) == frame.FieldTypeTime
				}, nil
			},
		},
		{
			ID:          Any,
			Name:        "Any field",
			Description: "Select every field",
			Factory: func(any) (Predicate, error) {
				return func(*frame.Field) bool { return true }, nil
			},
		},
	}
}
