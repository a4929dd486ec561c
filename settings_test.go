package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gotest.tools/assert"
)

func TestSettingsFromJSON(t *testing.T) {
	s := defaultSettings()
	err := s.settingsFromJSON([]byte(`{
		"tick": "2ms",
		"debounceTicks": 10,
		"inputBackend": "keyboard",
		"muteActiveLow": "false",
		"logStdout": true,
		"i2cAddress": "0x21",
		"unknownKey": 5
	}`))
	assert.NilError(t, err)

	assert.Equal(t, s.GetDuration(sTick), 2*time.Millisecond)
	assert.Equal(t, s.GetInt(sDebounceTicks), 10)
	assert.Equal(t, s.GetString(sInputBackend), "keyboard")
	assert.Equal(t, s.GetBool(sMuteActiveLow), false)
	assert.Equal(t, s.GetBool(sLogStdout), true)
	assert.Equal(t, s.GetByte(sI2CAddress), byte(0x21))
	// untouched
	assert.Equal(t, s.GetInt(sPinCodeA), 17)
}

func TestSettingsBadValue(t *testing.T) {
	s := defaultSettings()
	err := s.settingsFromJSON([]byte(`{"tick": "soon"}`))
	assert.ErrorContains(t, err, "setting tick")
}

func TestSettingsValidate(t *testing.T) {
	s := defaultSettings()
	assert.NilError(t, s.validate())

	s.set(sPinMute, s.GetInt(sPinLEDCD))
	assert.ErrorContains(t, s.validate(), "share pin")

	s = defaultSettings()
	s.set(sDebounceTicks, 0)
	assert.ErrorContains(t, s.validate(), "debounceTicks")

	// default pins are header pins, not expander pins
	s = defaultSettings()
	s.set(sOutputBackend, "expander")
	assert.ErrorContains(t, s.validate(), "not on the expander")
}

func TestLoadSettings(t *testing.T) {
	dir, err := ioutil.TempDir("", "ampanel")
	assert.NilError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "ampanel.conf")
	assert.NilError(t, ioutil.WriteFile(path, []byte(`{"statusAddr": ":9090"}`), 0644))

	s, err := loadSettings(path)
	assert.NilError(t, err)
	assert.Equal(t, s.GetString(sStatusAddr), ":9090")

	_, err = loadSettings(filepath.Join(dir, "missing.conf"))
	assert.ErrorContains(t, err, "could not load config file")

	s, err = loadSettings("")
	assert.NilError(t, err)
	assert.Equal(t, s.GetDuration(sTick), time.Millisecond)
}
