package transient_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/staticize/pkg/shape"
	"github.com/arthur-debert/staticize/pkg/staticize"
	"github.com/arthur-debert/staticize/pkg/transient"
)

func TestBorrow(t *testing.T) {
	v := uint32(7)
	ref := transient.Borrow(&v)

	require.NotNil(t, ref.Get())
	assert.Equal(t, uint32(7), *ref.Get())
}

func TestView(t *testing.T) {
	s := []string{"a", "b"}
	view := transient.View(s)

	assert.Equal(t, s, view.Get())
}

func TestText(t *testing.T) {
	str := transient.Text("hello")
	assert.Equal(t, "hello", str.Get())
}

func TestShapeKinds(t *testing.T) {
	assert.Equal(t, shape.Transient, shape.Of(staticize.TypeFor[transient.Ref[int32]]()))
	assert.Equal(t, shape.Transient, shape.Of(staticize.TypeFor[transient.Slice[int32]]()))
	assert.Equal(t, shape.Transient, shape.Of(staticize.TypeFor[transient.Str]()))
}

func TestProjections(t *testing.T) {
	tests := []struct {
		name string
		src  reflect.Type
		want reflect.Type
	}{
		{"ref", staticize.TypeFor[transient.Ref[float64]](), reflect.TypeOf((*float64)(nil))},
		{"slice", staticize.TypeFor[transient.Slice[int16]](), reflect.TypeOf([]int16(nil))},
		{"str", staticize.TypeFor[transient.Str](), reflect.TypeOf("")},
		{"ref of slice", staticize.TypeFor[transient.Ref[transient.Slice[uint8]]](), reflect.TypeOf((*[]uint8)(nil))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			static, err := staticize.Default.Resolve(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, static)
		})
	}
}

func TestProjectionOfUnsupportedElement(t *testing.T) {
	_, err := staticize.Default.Resolve(staticize.TypeFor[transient.Ref[chan int]]())
	assert.Error(t, err)
}
