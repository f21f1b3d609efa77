package matcher

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldoverrides/internal/fieldconfig"
	"fieldoverrides/internal/frame"
)

func TestCompileStandardMatchers(t *testing.T) {
	cpu := &frame.Field{Name: "cpu", Type: frame.FieldTypeNumber}
	mem := &frame.Field{Name: "mem_used", Type: frame.FieldTypeNumber}
	host := &frame.Field{Name: "host", Type: frame.FieldTypeString}
	ts := &frame.Field{Name: "time", Values: frame.ArrayVector{int64(1)}}

	tests := []struct {
		name    string
		cfg     fieldconfig.MatcherConfig
		matches []*frame.Field
		misses  []*frame.Field
	}{
		{"byName", fieldconfig.MatcherConfig{ID: ByName, Options: "cpu"}, []*frame.Field{cpu}, []*frame.Field{mem, host}},
		{"byNames", fieldconfig.MatcherConfig{ID: ByNames, Options: []any{"cpu", "host"}}, []*frame.Field{cpu, host}, []*frame.Field{mem}},
		{"byRegexp", fieldconfig.MatcherConfig{ID: ByRegexp, Options: "^mem_"}, []*frame.Field{mem}, []*frame.Field{cpu, host}},
		{"byType", fieldconfig.MatcherConfig{ID: ByType, Options: "string"}, []*frame.Field{host}, []*frame.Field{cpu}},
		{"numeric", fieldconfig.MatcherConfig{ID: Numeric}, []*frame.Field{cpu, mem}, []*frame.Field{host, ts}},
		{"time by name", fieldconfig.MatcherConfig{ID: Time}, []*frame.Field{ts}, []*frame.Field{cpu}},
		{"any", fieldconfig.MatcherConfig{ID: Any}, []*frame.Field{cpu, host, ts}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred, err := Standard().Compile(tt.cfg)
			require.NoError(t, err)

			for _, f := range tt.matches {
				assert.True(t, pred(f), "expected %s to match", f.Name)
			}

			for _, f := range tt.misses {
				assert.False(t, pred(f), "expected %s not to match", f.Name)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	_, err := Standard().Compile(fieldconfig.MatcherConfig{ID: "byFancyThing"})
	require.ErrorIs(t, err, ErrUnknownMatcher)

	_, err = Standard().Compile(fieldconfig.MatcherConfig{ID: ByRegexp, Options: "("})
	require.ErrorIs(t, err, ErrInvalidOptions)

	_, err = Standard().Compile(fieldconfig.MatcherConfig{ID: ByName})
	require.ErrorIs(t, err, ErrInvalidOptions)

	_, err = Standard().Compile(fieldconfig.MatcherConfig{ID: ByType, Options: "decimal"})
	require.ErrorIs(t, err, ErrInvalidOptions)
}

func TestRegisterCustomMatcher(t *testing.T) {
	r := NewStandardRegistry()

	err := r.Register(Info{ID: ByName, Factory: func(any) (Predicate, error) { return nil, nil }})
	require.ErrorIs(t, err, ErrDuplicateMatcher)

	err = r.Register(Info{
		ID: "byLabel",
		Factory: func(options any) (Predicate, error) {
			key, _ := options.(string)
			return func(f *frame.Field) bool { _, ok := f.Labels[key]; return ok }, nil
		},
	})
	require.NoError(t, err)

	pred, err := r.Compile(fieldconfig.MatcherConfig{ID: "byLabel", Options: "region"})
	require.NoError(t, err)
	assert.True(t, pred(&frame.Field{Labels: map[string]string{"region": "eu"}}))

	_, ok := Standard().Get("byLabel")
	assert.False(t, ok)
}

func TestRegexpCacheConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup

	results := make([]*regexp.Regexp, 16)
	for i := range results {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			re, err := compileRegexp("^disk_[a-z]+$")
			assert.NoError(t, err)

			results[i] = re
		}(i)
	}

	wg.Wait()

	for _, re := range results {
		require.NotNil(t, re)
		assert.True(t, re.MatchString("disk_io"))
	}
}
