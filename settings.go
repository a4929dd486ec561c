package main

import (
	"io/ioutil"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
)

// setting names
const (
	sTick          = "tick"
	sDebounceTicks = "debounceTicks"
	sInputBackend  = "inputBackend"
	sOutputBackend = "outputBackend"
	sKeyHold       = "keyHold"

	sPinCodeA    = "pinCodeA"
	sPinCodeB    = "pinCodeB"
	sPinCodeC    = "pinCodeC"
	sPinRecordSw = "pinRecordSw"

	sPinLEDDisc  = "pinLEDDisc"
	sPinLEDVideo = "pinLEDVideo"
	sPinLEDCD    = "pinLEDCD"
	sPinLEDAV    = "pinLEDAV"
	sPinLEDTuner = "pinLEDTuner"
	sPinLEDTape  = "pinLEDTape"
	sPinLEDRec   = "pinLEDRec"

	sPinRecDisc  = "pinRecDisc"
	sPinRecVideo = "pinRecVideo"
	sPinRecCD    = "pinRecCD"
	sPinRecAV    = "pinRecAV"
	sPinRecTuner = "pinRecTuner"

	sPinMute       = "pinMute"
	sMuteActiveLow = "muteActiveLow"
	sPinMotorUp    = "pinMotorUp"
	sPinMotorDown  = "pinMotorDown"

	sI2CBus          = "i2cBus"
	sI2CAddress      = "i2cAddress"
	sI2CInputAddress = "i2cInputAddress"
	sI2CSimulated    = "i2cSimulated"

	sStatusEnabled = "statusEnabled"
	sStatusAddr    = "statusAddr"
	sStatusUser    = "statusUser"
	sStatusSecret  = "statusSecret"

	sLogFile       = "logFile"
	sLogStdout     = "logStdout"
	sLogMaxSizeMB  = "logMaxSizeMB"
	sLogMaxBackups = "logMaxBackups"
)

// keep settings generic, type-convert on the fly
type configSettings struct {
	settings map[string]interface{}
}

func defaultSettings() configSettings {
	s := make(map[string]interface{})

	// setting the type here makes the conversion "automatic" later
	s[sTick] = time.Millisecond
	s[sDebounceTicks] = 20
	s[sInputBackend] = "rpio"
	s[sOutputBackend] = "rpio"
	s[sKeyHold] = 100 * time.Millisecond

	// BCM numbering
	s[sPinCodeA] = 17
	s[sPinCodeB] = 27
	s[sPinCodeC] = 22
	s[sPinRecordSw] = 23

	s[sPinLEDDisc] = 5
	s[sPinLEDVideo] = 6
	s[sPinLEDCD] = 13
	s[sPinLEDAV] = 19
	s[sPinLEDTuner] = 26
	s[sPinLEDTape] = 21
	s[sPinLEDRec] = 20

	s[sPinRecDisc] = 12
	s[sPinRecVideo] = 16
	s[sPinRecCD] = 25
	s[sPinRecAV] = 24
	s[sPinRecTuner] = 18

	s[sPinMute] = 4
	s[sMuteActiveLow] = true
	s[sPinMotorUp] = 9
	s[sPinMotorDown] = 10

	s[sI2CBus] = 1
	s[sI2CAddress] = byte(0x20)
	s[sI2CInputAddress] = byte(0x21)

	// off the pi there is no bus to talk to
	s[sI2CSimulated] = runtime.GOARCH != "arm"

	s[sStatusEnabled] = true
	s[sStatusAddr] = ":8080"
	s[sStatusUser] = "ampanel"
	s[sStatusSecret] = ""

	s[sLogFile] = "/var/log/ampanel.log"
	s[sLogStdout] = false
	s[sLogMaxSizeMB] = 10
	s[sLogMaxBackups] = 3

	return configSettings{settings: s}
}

func (s configSettings) settingsFromJSON(data []byte) error {
	defaults := defaultSettings()
	for k, initVal := range defaults.settings {
		raw, dataType, _, err := jsonparser.Get(data, k)
		if err == jsonparser.KeyPathNotFoundError {
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "setting %s", k)
		}
		text := string(raw)

		switch initVal.(type) {
		case byte:
			var v uint64
			// allow "0x20" as well as 32
			v, err = strconv.ParseUint(text, 0, 8)
			if err == nil {
				s.settings[k] = byte(v)
			}
		case int:
			var v int64
			v, err = jsonparser.ParseInt(raw)
			if err == nil {
				s.settings[k] = int(v)
			}
		case bool:
			var v bool
			if dataType == jsonparser.String {
				v, err = strconv.ParseBool(strings.ToLower(text))
			} else {
				v, err = jsonparser.ParseBoolean(raw)
			}
			if err == nil {
				s.settings[k] = v
			}
		case time.Duration:
			var v time.Duration
			v, err = time.ParseDuration(text)
			if err == nil {
				s.settings[k] = v
			}
		case string:
			s.settings[k] = text
		default:
			err = errors.Errorf("bad type: %T", initVal)
		}
		if err != nil {
			return errors.Wrapf(err, "setting %s", k)
		}
	}
	return nil
}

// loadSettings reads a JSON config file over the defaults. An empty path
// keeps the defaults.
func loadSettings(path string) (configSettings, error) {
	s := defaultSettings()
	if path == "" {
		return s, nil
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return s, errors.Wrapf(err, "could not load config file '%s'", path)
	}

	log.Printf("Reading configuration from '%s'", path)
	if err := s.settingsFromJSON(data); err != nil {
		return s, errors.Wrapf(err, "bad config file '%s'", path)
	}

	return s, s.validate()
}

func (s configSettings) validate() error {
	if s.GetDuration(sTick) <= 0 {
		return errors.New("tick must be positive")
	}
	if s.GetInt(sDebounceTicks) < 1 {
		return errors.New("debounceTicks must be at least 1")
	}
	if s.GetString(sInputBackend) == "expander" && s.GetString(sOutputBackend) == "expander" &&
		s.GetByte(sI2CAddress) == s.GetByte(sI2CInputAddress) {
		return errors.Errorf("switches and lines share expander 0x%02x", s.GetByte(sI2CAddress))
	}
	// every output line needs its own pin
	seen := make(map[int]string)
	for _, name := range outputPinNames {
		pin := s.GetInt(name)
		if other, ok := seen[pin]; ok {
			return errors.Errorf("%s and %s share pin %d", other, name, pin)
		}
		seen[pin] = name
		if s.GetString(sOutputBackend) == "expander" && (pin < 0 || pin > 15) {
			return errors.Errorf("%s: pin %d is not on the expander", name, pin)
		}
	}
	return nil
}

func (s configSettings) set(key string, val interface{}) {
	s.settings[key] = val
}

func (s configSettings) GetString(key string) string {
	switch v := s.settings[key].(type) {
	case string:
		return v
	default:
		return ""
	}
}

func (s configSettings) GetBool(key string) bool {
	switch v := s.settings[key].(type) {
	case bool:
		return v
	default:
		return false
	}
}

func (s configSettings) GetDuration(key string) time.Duration {
	switch v := s.settings[key].(type) {
	case time.Duration:
		return v
	default:
		return -1
	}
}

func (s configSettings) GetByte(key string) byte {
	switch v := s.settings[key].(type) {
	case byte:
		return v
	case int: // cast to byte
		return byte(v)
	default:
		return 0
	}
}

func (s configSettings) GetInt(key string) int {
	switch v := s.settings[key].(type) {
	case int:
		return v
	default:
		return 0
	}
}

func (s configSettings) Dump() {
	keys := make([]string, 0, len(s.settings))
	for k := range s.settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := s.settings[k]
		if k == sStatusSecret && v != "" {
			v = "****"
		}
		log.Printf("%s : %T: %v", k, v, v)
	}
}
