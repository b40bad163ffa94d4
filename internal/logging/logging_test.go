package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	defer Set(nil)

	assert.Equal(t, zerolog.Disabled, Logger().GetLevel())

	var buf bytes.Buffer
	l := zerolog.New(&buf)
	Set(&l)
	Logger().Warn().Str("op", "MoveTo").Msg("invalid point")
	assert.Contains(t, buf.String(), `"op":"MoveTo"`)

	Set(nil)
	buf.Reset()
	Logger().Warn().Msg("dropped")
	assert.Empty(t, buf.String())
}
