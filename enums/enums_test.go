package enums_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevensudit/corvid/enums"
)

type suit uint8

const (
	clubs suit = iota
	diamonds
	hearts
	spades
)

type direction int

const (
	north direction = iota
	south
)

func init() {
	enums.MustRegister(map[suit]string{
		clubs:    "clubs",
		diamonds: "diamonds",
		hearts:   "hearts",
	})
	enums.MustRegister(map[direction]string{north: "north", south: "south"})
}

func TestNameOf(t *testing.T) {
	t.Parallel()
	name, ok := enums.NameOf(hearts)
	require.True(t, ok)
	assert.Equal(t, "hearts", name)

	// Unregistered value of a registered type.
	_, ok = enums.NameOf(spades)
	assert.False(t, ok)
}

func TestName(t *testing.T) {
	t.Parallel()
	name, ok := enums.Name(any(south))
	require.True(t, ok)
	assert.Equal(t, "south", name)

	// Distinct types with the same underlying value stay separate.
	name, ok = enums.Name(any(diamonds))
	require.True(t, ok)
	assert.Equal(t, "diamonds", name)

	_, ok = enums.Name(1)
	assert.False(t, ok)
	_, ok = enums.Name("south")
	assert.False(t, ok)
	_, ok = enums.Name(nil)
	assert.False(t, ok)
}

func TestUnderlying(t *testing.T) {
	t.Parallel()
	assert.Equal(t, int64(3), enums.Underlying(spades))
	assert.Equal(t, spades, enums.FromUnderlying[suit](3))
	assert.Equal(t, int64(-2), enums.Underlying(direction(-2)))
}

func TestRegisterEmpty(t *testing.T) {
	t.Parallel()
	err := enums.Register(map[direction]string{})
	require.ErrorIs(t, err, enums.ErrEmptyNames)
}

func TestRegisterDuplicate(t *testing.T) {
	t.Parallel()
	type once int
	require.NoError(t, enums.Register(map[once]string{0: "zero"}))
	err := enums.Register(map[once]string{0: "again"})
	require.ErrorIs(t, err, enums.ErrDuplicateRegistration)
}
