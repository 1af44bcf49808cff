package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandTypeString(t *testing.T) {
	assert.Equal(t, "event", CmdEvent.String())
	assert.Equal(t, "reset", CmdReset.String())
	assert.Equal(t, "unknown", CommandType(9).String())
}
