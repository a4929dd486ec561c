package i2c

import (
	"testing"

	"gotest.tools/assert"
)

func TestSimulatedRegisters(t *testing.T) {
	dev, err := Open(0x20, 1, true)
	assert.NilError(t, err)
	dev.Quiet(true)

	v, err := dev.ReadRegister(0x14)
	assert.NilError(t, err)
	assert.Equal(t, v, byte(0))

	assert.NilError(t, dev.WriteRegister(0x14, 0xA5))
	assert.NilError(t, dev.WriteRegister(0x15, 0x01))

	v, _ = dev.ReadRegister(0x14)
	assert.Equal(t, v, byte(0xA5))
	v, _ = dev.ReadRegister(0x15)
	assert.Equal(t, v, byte(0x01))

	assert.NilError(t, dev.Close())
}

func TestOpenMissingBus(t *testing.T) {
	_, err := Open(0x20, 99, false)
	assert.ErrorContains(t, err, "open i2c bus 99")
}
