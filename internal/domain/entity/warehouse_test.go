package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

func TestChildPath(t *testing.T) {
	assert.Equal(t, "/Central", entity.ChildPath("", "Central"))
	assert.Equal(t, "/Central/Zona A", entity.ChildPath("/Central", "Zona A"))
}

func TestPathDepth(t *testing.T) {
	assert.Equal(t, 0, entity.PathDepth("/Central"))
	assert.Equal(t, 1, entity.PathDepth("/Central/Zona A"))
	assert.Equal(t, 2, entity.PathDepth("/Central/Zona A/Estante 3"))
}

// Un nodo no es descendiente de sí mismo, y un nombre que solo comparte prefijo
// textual no cuenta como descendiente.
func TestIsDescendantPath(t *testing.T) {
	assert.True(t, entity.IsDescendantPath("/Central/Zona A", "/Central"))
	assert.True(t, entity.IsDescendantPath("/Central/Zona A/Estante 3", "/Central"))
	assert.False(t, entity.IsDescendantPath("/Central", "/Central"))
	assert.False(t, entity.IsDescendantPath("/Central Norte", "/Central"))
	assert.False(t, entity.IsDescendantPath("/Central", "/Central/Zona A"))
}

func TestNormalizePartNumber(t *testing.T) {
	assert.Equal(t, "PN-001", entity.NormalizePartNumber("  PN-001  "))
	// La normalización NFC compone los caracteres acentuados.
	assert.Equal(t, "Ñ-7", entity.NormalizePartNumber("Ñ-7"))
}
