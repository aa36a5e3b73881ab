package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitModules(t *testing.T) {
	assert.Nil(t, splitModules(""))
	assert.Equal(t, []string{"App"}, splitModules("App"))
	assert.Equal(t, []string{"App", "CoreKit"}, splitModules("App, CoreKit"))
	assert.Equal(t, []string{"App", "CoreKit"}, splitModules("App,,CoreKit,"))
}
