package locker_test

import (
	"testing"

	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/core/domain/model/locker"
	"washcubes/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createValidLocation(t *testing.T) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(3.064830532141036, 101.61687447279495)
	require.NoError(t, err)
	return loc
}

func createCompartment(t *testing.T, number string, size locker.Size) *locker.Compartment {
	t.Helper()
	c, err := locker.NewCompartment(number, size)
	require.NoError(t, err)
	return c
}

func createValidSite(t *testing.T) *locker.Site {
	t.Helper()
	site, err := locker.NewSite(
		kernel.NewUUID(),
		"Taylor's University",
		createValidLocation(t),
		[]*locker.Compartment{
			createCompartment(t, "L01", locker.SizeSmall),
			createCompartment(t, "L02", locker.SizeMedium),
			createCompartment(t, "L03", locker.SizeLarge),
			createCompartment(t, "L04", locker.SizeExtraLarge),
		},
	)
	require.NoError(t, err)
	require.NotNil(t, site)
	return site
}

func TestNewCompartment(t *testing.T) {
	t.Run("should create available compartment", func(t *testing.T) {
		c, err := locker.NewCompartment("L01", locker.SizeMedium)

		require.NoError(t, err)
		assert.Equal(t, "L01", c.Number())
		assert.Equal(t, locker.SizeMedium, c.Size())
		assert.True(t, c.IsAvailable())
		require.NoError(t, c.Validate())
	})

	t.Run("should return error for empty number", func(t *testing.T) {
		c, err := locker.NewCompartment("", locker.SizeMedium)

		require.Error(t, err)
		assert.Nil(t, c)
		assert.Contains(t, err.Error(), "number is required")
	})

	t.Run("should return error for invalid size", func(t *testing.T) {
		c, err := locker.NewCompartment("L01", locker.SizeUnknown)

		require.Error(t, err)
		assert.Nil(t, c)
		assert.Contains(t, err.Error(), "size is invalid")
	})
}

func TestCompartment_ClaimRelease(t *testing.T) {
	t.Run("claim marks compartment occupied", func(t *testing.T) {
		c := createCompartment(t, "L01", locker.SizeSmall)

		require.NoError(t, c.Claim())
		assert.False(t, c.IsAvailable())
	})

	t.Run("second claim fails", func(t *testing.T) {
		c := createCompartment(t, "L01", locker.SizeSmall)

		require.NoError(t, c.Claim())
		err := c.Claim()

		require.Error(t, err)
		require.ErrorIs(t, err, locker.ErrCompartmentOccupied)
		assert.False(t, c.IsAvailable())
	})

	t.Run("release makes compartment available again", func(t *testing.T) {
		c := createCompartment(t, "L01", locker.SizeSmall)

		require.NoError(t, c.Claim())
		c.Release()

		assert.True(t, c.IsAvailable())
	})

	t.Run("release of available compartment is a no-op", func(t *testing.T) {
		c := createCompartment(t, "L01", locker.SizeSmall)

		c.Release()
		assert.True(t, c.IsAvailable())
	})
}

func TestNewSite(t *testing.T) {
	t.Run("should create site with valid parameters", func(t *testing.T) {
		site := createValidSite(t)

		assert.Equal(t, "Taylor's University", site.Name())
		assert.Len(t, site.Compartments(), 4)
		require.NoError(t, site.Validate())
	})

	t.Run("should return error for invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		site, err := locker.NewSite(invalidID, "Site", createValidLocation(t), nil)

		require.Error(t, err)
		assert.Nil(t, site)
	})

	t.Run("should return error for empty name", func(t *testing.T) {
		site, err := locker.NewSite(kernel.NewUUID(), "", createValidLocation(t), nil)

		require.Error(t, err)
		assert.Nil(t, site)
		assert.Contains(t, err.Error(), "name is required")
	})

	t.Run("should return error for zero value location", func(t *testing.T) {
		var loc kernel.Location

		site, err := locker.NewSite(kernel.NewUUID(), "Site", loc, nil)

		require.Error(t, err)
		assert.Nil(t, site)
	})

	t.Run("should reject duplicate compartment numbers", func(t *testing.T) {
		site, err := locker.NewSite(
			kernel.NewUUID(),
			"Site",
			createValidLocation(t),
			[]*locker.Compartment{
				createCompartment(t, "L01", locker.SizeSmall),
				createCompartment(t, "L01", locker.SizeLarge),
			},
		)

		require.Error(t, err)
		assert.Nil(t, site)
		require.ErrorIs(t, err, locker.ErrDuplicateCompartmentNumber)
	})

	t.Run("should sort compartments into number order", func(t *testing.T) {
		site, err := locker.NewSite(
			kernel.NewUUID(),
			"Site",
			createValidLocation(t),
			[]*locker.Compartment{
				createCompartment(t, "L03", locker.SizeLarge),
				createCompartment(t, "L01", locker.SizeSmall),
				createCompartment(t, "L02", locker.SizeMedium),
			},
		)

		require.NoError(t, err)
		numbers := make([]string, 0, 3)
		for _, c := range site.Compartments() {
			numbers = append(numbers, c.Number())
		}
		assert.Equal(t, []string{"L01", "L02", "L03"}, numbers)
	})

	t.Run("zero value site fails validation", func(t *testing.T) {
		var site locker.Site
		require.ErrorIs(t, site.Validate(), locker.ErrSiteIsNotConstructed)
	})
}

func TestSite_Claim(t *testing.T) {
	t.Run("claims an available compartment", func(t *testing.T) {
		site := createValidSite(t)

		require.NoError(t, site.Claim("L02"))

		c, err := site.FindCompartment("L02")
		require.NoError(t, err)
		assert.False(t, c.IsAvailable())
	})

	t.Run("fails on occupied compartment", func(t *testing.T) {
		site := createValidSite(t)
		require.NoError(t, site.Claim("L02"))

		err := site.Claim("L02")
		require.ErrorIs(t, err, locker.ErrCompartmentOccupied)
	})

	t.Run("fails on unknown compartment", func(t *testing.T) {
		site := createValidSite(t)

		err := site.Claim("L99")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestSite_Release(t *testing.T) {
	t.Run("releases a claimed compartment", func(t *testing.T) {
		site := createValidSite(t)
		require.NoError(t, site.Claim("L03"))

		require.NoError(t, site.Release("L03"))

		c, err := site.FindCompartment("L03")
		require.NoError(t, err)
		assert.True(t, c.IsAvailable())
	})

	t.Run("release is idempotent", func(t *testing.T) {
		site := createValidSite(t)

		require.NoError(t, site.Release("L03"))
		require.NoError(t, site.Release("L03"))
	})

	t.Run("fails on unknown compartment", func(t *testing.T) {
		site := createValidSite(t)

		err := site.Release("L99")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestSite_TakePendingChanges(t *testing.T) {
	t.Run("records flips since the load", func(t *testing.T) {
		site := createValidSite(t)
		require.NoError(t, site.Claim("L01"))
		require.NoError(t, site.Claim("L02"))
		require.NoError(t, site.Release("L02"))

		claimed, released := site.TakePendingChanges()
		assert.Equal(t, []string{"L01", "L02"}, claimed)
		assert.Equal(t, []string{"L02"}, released)
	})

	t.Run("taking clears the record", func(t *testing.T) {
		site := createValidSite(t)
		require.NoError(t, site.Claim("L01"))
		site.TakePendingChanges()

		claimed, released := site.TakePendingChanges()
		assert.Empty(t, claimed)
		assert.Empty(t, released)
	})

	t.Run("idempotent release records nothing", func(t *testing.T) {
		site := createValidSite(t)
		require.NoError(t, site.Release("L03"))

		claimed, released := site.TakePendingChanges()
		assert.Empty(t, claimed)
		assert.Empty(t, released)
	})
}

func TestSite_Available(t *testing.T) {
	t.Run("lists every available compartment without filter", func(t *testing.T) {
		site := createValidSite(t)
		require.NoError(t, site.Claim("L01"))

		available := site.Available(locker.SizeUnknown)

		require.Len(t, available, 3)
		for _, c := range available {
			assert.True(t, c.IsAvailable())
		}
	})

	t.Run("filters by exact size", func(t *testing.T) {
		site := createValidSite(t)

		available := site.Available(locker.SizeMedium)

		require.Len(t, available, 1)
		assert.Equal(t, "L02", available[0].Number())
	})

	t.Run("excludes claimed compartments from filtered list", func(t *testing.T) {
		site := createValidSite(t)
		require.NoError(t, site.Claim("L02"))

		available := site.Available(locker.SizeMedium)
		assert.Empty(t, available)
	})
}
