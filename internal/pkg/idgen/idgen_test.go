package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-loadout/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("build")

	first := gen.Generate()
	second := gen.Generate()

	assert.NotEqual(t, first, second)
	require.True(t, strings.HasPrefix(first, "build_"))
	_, err := uuid.Parse(strings.TrimPrefix(first, "build_"))
	assert.NoError(t, err)

	bare := idgen.NewUUID("").Generate()
	_, err = uuid.Parse(bare)
	assert.NoError(t, err)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("build")
	assert.Equal(t, "build_1", gen.Generate())
	assert.Equal(t, "build_2", gen.Generate())

	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}
