// internal/domain/catalog/entity_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariantOptions(t *testing.T) {
	p := Product{Variants: "blue, green,natural"}
	assert.Equal(t, []string{"blue", "green", "natural"}, p.VariantOptions())

	plain := Product{}
	assert.Nil(t, plain.VariantOptions())
}

func TestHasVariant(t *testing.T) {
	p := Product{Variants: "blue,green,natural"}

	assert.True(t, p.HasVariant("green"))
	assert.True(t, p.HasVariant("Green"), "variant matching is case-insensitive")
	assert.False(t, p.HasVariant("red"))
	assert.False(t, p.HasVariant(""), "variant products require a variant choice")
}

func TestHasVariantWithoutOptions(t *testing.T) {
	p := Product{}

	assert.True(t, p.HasVariant(""))
	assert.False(t, p.HasVariant("blue"))
}
