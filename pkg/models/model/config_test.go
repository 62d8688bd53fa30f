package model

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	assert.Equal(t, On, NewConfig("ON"))
	assert.Equal(t, On, NewConfig("1"))
	assert.Equal(t, Off, NewConfig("off"))
	assert.Equal(t, Off, NewConfig("maybe"))
}

func TestConfigAsFlag(t *testing.T) {
	c := On
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&c, "color", "")

	require.NoError(t, fs.Parse([]string{"-color", "Off"}))
	assert.Equal(t, Off, c)
	assert.Equal(t, "off", c.String())

	assert.Error(t, c.Set("maybe"))
	assert.Equal(t, Off, c)
}
