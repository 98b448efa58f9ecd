package staticize_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/staticize/pkg/staticize"
	"github.com/arthur-debert/staticize/pkg/transient"
)

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want string
	}{
		{"builtin", reflect.TypeOf(uint32(0)), "uint32"},
		{"pointer", reflect.TypeOf((*uint32)(nil)), "*uint32"},
		{"slice", reflect.TypeOf([]uint8(nil)), "[]uint8"},
		{"nested", reflect.TypeOf((*[][]string)(nil)), "*[][]string"},
		{"unit", reflect.TypeOf(struct{}{}), "struct {}"},
		{
			"named",
			staticize.TypeFor[transient.Str](),
			"github.com/arthur-debert/staticize/pkg/transient.Str",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, staticize.CanonicalName(tt.typ))
		})
	}
}

func TestIDDeterminism(t *testing.T) {
	a := staticize.IDOf(reflect.TypeOf(uint64(0)))
	b := staticize.IDOf(reflect.TypeOf(uint64(0)))
	assert.Equal(t, a, b)

	c := staticize.IDOf(reflect.TypeOf(int64(0)))
	assert.NotEqual(t, a, c)
}

// TestIDStability pins identifier derivation: the ID is a function of
// the canonical name alone, so it does not drift between builds
func TestIDStability(t *testing.T) {
	id := staticize.IDOf(reflect.TypeOf(uint32(0)))
	again := staticize.IDOf(reflect.TypeOf(uint32(0)))

	require.Equal(t, id.String(), again.String())
	assert.Len(t, id.String(), 36)
}

func TestStaticIDBelongsToCounterpart(t *testing.T) {
	// The identifier of a projected type is the identifier of its
	// counterpart, never of the source itself
	id, err := staticize.StaticTypeID[transient.Str]()
	require.NoError(t, err)

	assert.Equal(t, staticize.IDOf(reflect.TypeOf("")), id)
	assert.NotEqual(t, staticize.IDOf(staticize.TypeFor[transient.Str]()), id)
}
