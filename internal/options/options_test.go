package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// readerConfig stands in for the option targets of this module, such as the
// SEED reader and the converter.
type readerConfig struct {
	mask    int
	rawMode bool
}

func (c *readerConfig) setMask(mask int) error {
	if mask < 0 {
		return errors.New("mask cannot be negative")
	}
	c.mask = mask

	return nil
}

func TestNew(t *testing.T) {
	cfg := &readerConfig{}

	opt := New(func(c *readerConfig) error {
		return c.setMask(0x0f)
	})
	require.NoError(t, opt.apply(cfg))
	require.Equal(t, 0x0f, cfg.mask)

	opt = New(func(c *readerConfig) error {
		return c.setMask(-1)
	})
	require.Error(t, opt.apply(cfg))
}

func TestNoError(t *testing.T) {
	cfg := &readerConfig{}

	opt := NoError(func(c *readerConfig) {
		c.rawMode = true
	})
	require.NoError(t, opt.apply(cfg))
	require.True(t, cfg.rawMode)
}

func TestApply(t *testing.T) {
	cfg := &readerConfig{}

	err := Apply(cfg,
		NoError(func(c *readerConfig) { c.rawMode = true }),
		New(func(c *readerConfig) error { return c.setMask(0x03) }),
	)
	require.NoError(t, err)
	require.True(t, cfg.rawMode)
	require.Equal(t, 0x03, cfg.mask)
}

func TestApply_StopsOnError(t *testing.T) {
	cfg := &readerConfig{}

	err := Apply(cfg,
		New(func(c *readerConfig) error { return c.setMask(-1) }),
		NoError(func(c *readerConfig) { c.rawMode = true }),
	)
	require.Error(t, err)
	require.False(t, cfg.rawMode, "options after a failure must not apply")
}
