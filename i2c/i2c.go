package i2c

import (
	"fmt"
	"log"
	"os"
	"sync"
	"syscall"

	"github.com/pkg/errors"
)

// I2C is a register-oriented connection to one device on a Linux i2c bus.
// A simulated connection keeps the registers in memory and logs traffic.
type I2C struct {
	fd        *os.File
	address   uint8
	simulated bool
	quiet     bool
	mu        sync.Mutex
	regs      map[byte]byte // simulated register file
}

const (
	I2C_SLAVE = 0x0703
)

// open a connection to the i2c device
func Open(address uint8, bus int, simulated bool) (*I2C, error) {
	if simulated {
		return &I2C{address: address, simulated: true, regs: make(map[byte]byte)}, nil
	}

	f, err := os.OpenFile(fmt.Sprintf("/dev/i2c-%d", bus), os.O_RDWR, 0600)
	if err != nil {
		return nil, errors.Wrapf(err, "open i2c bus %d", bus)
	}
	if err := ioctl(f.Fd(), I2C_SLAVE, uintptr(address)); err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "select i2c device 0x%02x", address)
	}
	return &I2C{fd: f, address: address}, nil
}

// Quiet turns off the simulated traffic log.
func (c *I2C) Quiet(on bool) {
	c.quiet = on
}

func (c *I2C) Close() error {
	if c.simulated {
		c.logf("close 0x%02x", c.address)
		return nil
	}
	return c.fd.Close()
}

// WriteRegister sets a single register.
func (c *I2C) WriteRegister(reg byte, val byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.simulated {
		c.logf("write 0x%02x: %02x <- %02x", c.address, reg, val)
		c.regs[reg] = val
		return nil
	}
	if err := c.selectLine(); err != nil {
		return err
	}
	if _, err := c.fd.Write([]byte{reg, val}); err != nil {
		return errors.Wrapf(err, "write register 0x%02x", reg)
	}
	return nil
}

// ReadRegister reads a single register back.
func (c *I2C) ReadRegister(reg byte) (byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.simulated {
		return c.regs[reg], nil
	}
	if err := c.selectLine(); err != nil {
		return 0, err
	}
	if _, err := c.fd.Write([]byte{reg}); err != nil {
		return 0, errors.Wrapf(err, "address register 0x%02x", reg)
	}
	var buf [1]byte
	if _, err := c.fd.Read(buf[:]); err != nil {
		return 0, errors.Wrapf(err, "read register 0x%02x", reg)
	}
	return buf[0], nil
}

// not MT safe across devices sharing a bus fd, so re-select every transfer
func (c *I2C) selectLine() error {
	return ioctl(c.fd.Fd(), I2C_SLAVE, uintptr(c.address))
}

func (c *I2C) logf(format string, v ...interface{}) {
	if !c.quiet {
		log.Printf("i2c "+format, v...)
	}
}

func ioctl(fd, cmd, arg uintptr) error {
	_, _, err := syscall.Syscall6(syscall.SYS_IOCTL, fd, cmd, arg, 0, 0, 0)
	if err != 0 {
		return err
	}
	return nil
}
