package usecase

import (
	"testing"

	"github.com/chemaware/catalog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_PairKeepsInsertionOrder(t *testing.T) {
	cmp := NewCompare(seedCatalog())
	require.NoError(t, cmp.Add("local:p-09"))
	require.NoError(t, cmp.Add("local:p-02"))

	a, b, err := cmp.Pair()

	require.NoError(t, err)
	assert.Equal(t, "local:p-09", a.Identifier())
	assert.Equal(t, "local:p-02", b.Identifier())
}

func TestCompare_LimitRejectsThird(t *testing.T) {
	cmp := NewCompare(seedCatalog())
	require.NoError(t, cmp.Add("local:p-01"))
	require.NoError(t, cmp.Add("local:p-02"))

	err := cmp.Add("local:p-03")

	assert.ErrorIs(t, err, domain.ErrCompareLimitExceeded)
	assert.Equal(t, []string{"local:p-01", "local:p-02"}, identifiers(cmp.Selected()))

	_, err = cmp.Toggle("local:p-03")
	assert.ErrorIs(t, err, domain.ErrCompareLimitExceeded)
	assert.Equal(t, 2, cmp.Len())
}

func TestCompare_AddExistingIsNoOp(t *testing.T) {
	cmp := NewCompare(seedCatalog())
	require.NoError(t, cmp.Add("local:p-01"))
	require.NoError(t, cmp.Add("local:p-02"))

	assert.NoError(t, cmp.Add("local:p-01"))
	assert.Equal(t, 2, cmp.Len())
}

func TestCompare_InsufficientSelection(t *testing.T) {
	cmp := NewCompare(seedCatalog())

	_, _, err := cmp.Pair()
	assert.ErrorIs(t, err, domain.ErrInsufficientSelection)

	require.NoError(t, cmp.Add("local:p-01"))
	_, _, err = cmp.Pair()
	assert.ErrorIs(t, err, domain.ErrInsufficientSelection)
}

func TestCompare_ToggleRemoveClear(t *testing.T) {
	cmp := NewCompare(seedCatalog())

	on, err := cmp.Toggle("local:p-04")
	require.NoError(t, err)
	assert.True(t, on)
	assert.True(t, cmp.Has("local:p-04"))

	on, err = cmp.Toggle("local:p-04")
	require.NoError(t, err)
	assert.False(t, on)
	assert.False(t, cmp.Has("local:p-04"))

	require.NoError(t, cmp.Add("local:p-05"))
	require.NoError(t, cmp.Add("local:p-06"))
	cmp.Remove("local:p-05")
	cmp.Remove("local:p-99")
	assert.Equal(t, []string{"local:p-06"}, identifiers(cmp.Selected()))

	cmp.Clear()
	assert.Equal(t, 0, cmp.Len())
}

func TestCompare_UnknownIdentifier(t *testing.T) {
	cmp := NewCompare(seedCatalog())

	err := cmp.Add("api:api-404")

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Equal(t, 0, cmp.Len())
}
