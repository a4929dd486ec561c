package main

import (
	"log"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"gotest.tools/assert"
)

type testStatusService struct {
	mu       sync.Mutex
	handler  *apiHandler
	addr     string
	stopped  bool
	launched chan struct{}
}

func newTestStatusService() *testStatusService {
	return &testStatusService{launched: make(chan struct{})}
}

func (t *testStatusService) launch(handler *apiHandler, addr string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.handler = handler
	t.addr = addr
	close(t.launched)
}

func (t *testStatusService) stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
}

func logCaller(pc uintptr, file string, line int, ok bool) {
	if !ok {
		file = "?"
		line = 0
	}

	fn := runtime.FuncForPC(pc)
	var fnName string
	if fn == nil {
		fnName = "?()"
	} else {
		dotName := filepath.Ext(fn.Name())
		fnName = strings.TrimLeft(dotName, ".") + "()"
	}

	log.Printf("Starting %s (%s:%d)", fnName, filepath.Base(file), line)
}

func testSettings() configSettings {
	s := defaultSettings()
	s.set(sInputBackend, "none")
	s.set(sOutputBackend, "log")
	s.set(sI2CSimulated, true)
	s.set(sLogFile, "")
	return s
}

func testRuntime(t *testing.T) (runtimeConfig, clockwork.FakeClock, commChannels) {
	// make rt for test, log the start of the test
	logCaller(runtime.Caller(1))
	clock := clockwork.NewFakeClock()
	rt, err := initRuntime(testSettings(), clock)
	if err != nil {
		panic(err)
	}
	rt.status = newTestStatusService()
	// a failed assert must not leave workers behind for the next test
	t.Cleanup(func() { testQuit(rt, clock) })
	return rt, clock, rt.comms
}

// advance the clock in steps of sleep, letting the single worker catch up
// after each one
func testBlockDuration(clock clockwork.FakeClock, sleep time.Duration, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += sleep {
		clock.Advance(sleep)
		clock.BlockUntil(1)
	}
}

// stop the (sleeping) worker and wait for it to exit
func testQuit(rt runtimeConfig, clock clockwork.FakeClock) {
	rt.comms.stop()
	clock.Advance(time.Second)
	wg.Wait()
}

func ledRead(t *testing.T, c chan ledEffect) (ledEffect, error) {
	select {
	case e := <-c:
		return e, nil
	default:
		assert.Assert(t, false, "Nothing to read from led channel")
	}
	return ledEffect{}, nil
}

func ledNoRead(t *testing.T, c chan ledEffect) (ledEffect, error) {
	select {
	case e := <-c:
		assert.Assert(t, e == ledEffect{}, "Got an unexpected value from led channel: %+v", e)
	default:
	}
	return ledEffect{}, nil
}

func ledReadAll(c chan ledEffect) []ledEffect {
	var es []ledEffect
	for {
		select {
		case e := <-c:
			es = append(es, e)
		default:
			return es
		}
	}
}
