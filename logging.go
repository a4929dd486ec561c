package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

type flogger interface {
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

// ThreadLogger tags each line with the goroutine that wrote it
type ThreadLogger struct {
	name string
}

func (tl *ThreadLogger) Printf(format string, v ...interface{}) {
	log.Printf("[%s] %s", tl.name, fmt.Sprintf(format, v...))
}

func (tl *ThreadLogger) Println(v ...interface{}) {
	log.Printf("[%s] %s", tl.name, fmt.Sprint(v...))
}

// setupLogging points the standard logger at a rotating log file and/or
// stdout. The returned closer is nil when no file is in use.
func setupLogging(settings configSettings, quiet bool) (io.Closer, error) {
	var writers []io.Writer
	var roller *lumberjack.Logger

	if path := settings.GetString(sLogFile); path != "" {
		roller = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    settings.GetInt(sLogMaxSizeMB),
			MaxBackups: settings.GetInt(sLogMaxBackups),
		}
		writers = append(writers, roller)
	}
	if settings.GetBool(sLogStdout) && !quiet {
		writers = append(writers, os.Stdout)
	}

	switch len(writers) {
	case 0:
		log.SetOutput(ioutil.Discard)
	case 1:
		log.SetOutput(writers[0])
	default:
		log.SetOutput(io.MultiWriter(writers...))
	}
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if roller == nil {
		return nil, nil
	}
	return roller, nil
}
