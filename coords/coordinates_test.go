package coords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinatesKey(t *testing.T) {
	a := Coordinates{"region": String("US"), "product": String("A")}
	b := Coordinates{"product": String("A"), "region": String("US")}

	// Canonical: insertion order must not matter.
	assert.Equal(t, a.Key(), b.Key())

	c := Coordinates{"region": String("EU"), "product": String("A")}
	assert.NotEqual(t, a.Key(), c.Key())

	// Partial and full tuples never collide.
	d := Coordinates{"product": String("A")}
	assert.NotEqual(t, a.Key(), d.Key())
}

func TestCoordinatesShape(t *testing.T) {
	c := Coordinates{"z": Int(1), "a": Int(2), "m": Int(3)}
	assert.Equal(t, []string{"a", "m", "z"}, c.Shape())
}

func TestCoordinatesProject(t *testing.T) {
	full := Coordinates{"region": String("US"), "product": String("A"), "year": Int(2024)}

	p, ok := full.Project([]string{"product", "region"})
	require.True(t, ok)
	assert.Equal(t, Coordinates{"region": String("US"), "product": String("A")}, p)

	_, ok = full.Project([]string{"region", "channel"})
	assert.False(t, ok)
}

func TestCoordinatesProjectKey(t *testing.T) {
	full := Coordinates{"region": String("US"), "product": String("A")}

	key, ok := full.ProjectKey([]string{"product"})
	require.True(t, ok)
	assert.Equal(t, Coordinates{"product": String("A")}.Key(), key)

	key, ok = full.ProjectKey([]string{"product", "region"})
	require.True(t, ok)
	assert.Equal(t, full.Key(), key)

	_, ok = full.ProjectKey([]string{"channel"})
	assert.False(t, ok)
}

func TestCoordinatesEqual(t *testing.T) {
	a := Coordinates{"region": String("US"), "year": Int(2024)}

	assert.True(t, a.Equal(Coordinates{"year": Int(2024), "region": String("US")}))
	assert.False(t, a.Equal(Coordinates{"region": String("US")}))
	assert.False(t, a.Equal(Coordinates{"region": String("EU"), "year": Int(2024)}))
	assert.True(t, Coordinates{}.Equal(Coordinates{}))
}

func TestCoordinatesClone(t *testing.T) {
	orig := Coordinates{"region": String("US")}
	clone := orig.Clone()
	clone["region"] = String("EU")

	assert.Equal(t, String("US"), orig["region"])
	assert.Nil(t, Coordinates(nil).Clone())
}
