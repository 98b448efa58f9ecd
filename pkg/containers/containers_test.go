package containers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/staticize/pkg/containers"
	"github.com/arthur-debert/staticize/pkg/errors"
	"github.com/arthur-debert/staticize/pkg/staticize"
	"github.com/arthur-debert/staticize/pkg/transient"
)

func TestRegisterLeafContainers(t *testing.T) {
	require.NoError(t, containers.RegisterSequence[uint8]())
	require.NoError(t, containers.RegisterOrderedMap[string, uint64]())
	require.NoError(t, containers.RegisterOrderedSet[uint32]())
	require.NoError(t, containers.RegisterPriorityQueue[int64]())
	require.NoError(t, containers.RegisterLinkedList[string]())
	require.NoError(t, containers.RegisterDeque[float64]())

	assert.True(t, staticize.IsSelfContained[containers.Sequence[uint8]]())
	assert.True(t, staticize.IsSelfContained[containers.OrderedMap[string, uint64]]())
	assert.True(t, staticize.IsSelfContained[containers.OrderedSet[uint32]]())
	assert.True(t, staticize.IsSelfContained[containers.PriorityQueue[int64]]())
	assert.True(t, staticize.IsSelfContained[containers.LinkedList[string]]())
	assert.True(t, staticize.IsSelfContained[containers.Deque[float64]]())
}

func TestRegisterIsIdempotent(t *testing.T) {
	require.NoError(t, containers.RegisterSequence[uint16]())
	require.NoError(t, containers.RegisterSequence[uint16]())
}

func TestRegisterSequenceWithTransientElement(t *testing.T) {
	require.NoError(t, containers.RegisterSequenceAs[transient.Str, string]())

	static, err := staticize.StaticTypeOf[containers.Sequence[transient.Str]]()
	require.NoError(t, err)
	assert.Equal(t, staticize.TypeFor[containers.Sequence[string]](), static)

	// Identity of the projected container equals the counterpart's own
	idSrc, err := staticize.StaticTypeID[containers.Sequence[transient.Str]]()
	require.NoError(t, err)
	idStatic, err := staticize.StaticTypeID[containers.Sequence[string]]()
	require.NoError(t, err)
	assert.Equal(t, idStatic, idSrc)
}

func TestRegisterOrderedMapWithTransientValue(t *testing.T) {
	require.NoError(t, containers.RegisterOrderedMapAs[string, string, transient.Str, string]())

	static, err := staticize.StaticTypeOf[containers.OrderedMap[string, transient.Str]]()
	require.NoError(t, err)
	assert.Equal(t, staticize.TypeFor[containers.OrderedMap[string, string]](), static)
}

func TestRegisterDequeWithTransientElement(t *testing.T) {
	require.NoError(t, containers.RegisterDequeAs[transient.Slice[uint8], []uint8]())

	static, err := staticize.StaticTypeOf[containers.Deque[transient.Slice[uint8]]]()
	require.NoError(t, err)
	assert.Equal(t, staticize.TypeFor[containers.Deque[[]uint8]](), static)
}

func TestRegisterAsMismatch(t *testing.T) {
	err := containers.RegisterSequenceAs[transient.Str, uint8]()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrComponentMismatch))
}

func TestUnregisteredInstantiationIsRejected(t *testing.T) {
	_, err := staticize.StaticTypeOf[containers.Sequence[int8]]()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnresolvable))
}
