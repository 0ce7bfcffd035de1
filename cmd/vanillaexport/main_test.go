package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forumport/vanillaexport/cmd/vanillaexport/internal/golang/base"
)

func Test_run(t *testing.T) {
	t.Run("unknown command", func(t *testing.T) {
		err := run([]string{"nope"})
		assert.ErrorIs(t, err, errUnknownCommand)
		assert.Equal(t, base.SInvalidParameters, base.Status(err))
	})
	t.Run("help topic", func(t *testing.T) {
		assert.NoError(t, run([]string{"help", "dump"}))
	})
	t.Run("version", func(t *testing.T) {
		assert.NoError(t, run([]string{"version"}))
	})
}
