package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/api"
)

const fixture = `
persons:
  - first_name: Ada
    last_name: Lovelace
    email: ada@example.com
    uni: al0001
products:
  - name: Laptop
    sku: MBP16-M3-512GB
    category: electronics
    price: "2499.99"
    stock_quantity: 50
units:
  - name: Zealot
    race: protoss
    unit_type: basic
    hit_points: 100
    movement_speed: "2.25"
    mineral_cost: 100
    supply_cost: 2
    build_time: 27
skills:
  - name: Psionic Storm
    category: offensive
    target_type: area_enemy
    energy_cost: 75
    cooldown: "1.4"
    cast_range: 9
    base_damage: 80
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAndApply(t *testing.T) {
	f, err := Load(writeFixture(t, fixture))
	require.NoError(t, err)

	tables := api.NewTables()
	require.NoError(t, f.Apply(tables))

	assert.Equal(t, 1, tables.Persons.Len())
	assert.Equal(t, 1, tables.Products.Len())
	assert.Equal(t, 1, tables.Units.Len())
	assert.Equal(t, 1, tables.Skills.Len())

	products := tables.Products.List()
	require.Len(t, products, 1)
	assert.Equal(t, "MBP16-M3-512GB", products[0].SKU)
	assert.Equal(t, "2499.99", products[0].Price.StringFixed(2))
	assert.True(t, products[0].IsActive)

	units := tables.Units.List()
	require.Len(t, units, 1)
	assert.Equal(t, "2.25", units[0].MovementSpeed.String())
}

func TestApplyRejectsDuplicateSKU(t *testing.T) {
	dup := `
products:
  - name: Laptop
    sku: MBP16-M3-512GB
    category: electronics
    price: "2499.99"
    stock_quantity: 50
  - name: Clone
    sku: MBP16-M3-512GB
    category: electronics
    price: "1.00"
    stock_quantity: 1
`
	f, err := Load(writeFixture(t, dup))
	require.NoError(t, err)

	err = f.Apply(api.NewTables())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate sku")
}

func TestApplyRejectsInvalidRow(t *testing.T) {
	bad := `
products:
  - name: Laptop
    sku: lowercase-sku
    category: electronics
    price: "10.00"
    stock_quantity: 5
`
	f, err := Load(writeFixture(t, bad))
	require.NoError(t, err)

	err = f.Apply(api.NewTables())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "products[0]")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	_, err := Load(writeFixture(t, "persons: [}"))
	assert.Error(t, err)
}
