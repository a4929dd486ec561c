package main

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/stianeikeland/go-rpio"
)

// inputs and outputs share the one gpio mapping, so count the users
var rpioUsers struct {
	sync.Mutex
	count int
}

func openRpio() error {
	rpioUsers.Lock()
	defer rpioUsers.Unlock()
	if rpioUsers.count == 0 {
		if err := rpio.Open(); err != nil {
			return errors.Wrap(err, "open gpio")
		}
	}
	rpioUsers.count++
	return nil
}

func closeRpio() {
	rpioUsers.Lock()
	defer rpioUsers.Unlock()
	if rpioUsers.count == 0 {
		return
	}
	rpioUsers.count--
	if rpioUsers.count == 0 {
		rpio.Close()
	}
}
