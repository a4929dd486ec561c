package main

import (
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// ampanel -config={config file}

var (
	cfgFile    string
	simulate   bool
	probeTicks int

	rootCmd = &cobra.Command{
		Use:   "ampanel",
		Short: "Front panel controller for the amplifier and tape recorder",
		Long: `ampanel reads the seven front panel buttons, debounces them and drives
the input selector, mute relay, record and recorder routing indicators.

Without a sub-command it runs the controller.`,
		SilenceUsage: true,
		RunE:         runController,
	}
	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the panel controller",
		RunE:  runController,
	}
	probeCmd = &cobra.Command{
		Use:   "probe",
		Short: "Print raw and debounced switch readings, outputs untouched",
		RunE:  runProbe,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "/etc/default/ampanel/ampanel.conf", "config file path")
	rootCmd.PersistentFlags().BoolVar(&simulate, "simulate", false, "keyboard inputs and logged outputs, no hardware")
	probeCmd.Flags().IntVar(&probeTicks, "ticks", 10000, "number of ticks to sample")

	rootCmd.AddCommand(runCmd, probeCmd)
}

func commandSettings() (configSettings, error) {
	settings, err := loadSettings(cfgFile)
	if err != nil {
		if !simulate || !os.IsNotExist(errors.Cause(err)) {
			return settings, err
		}
		// simulation runs fine on defaults
		settings = defaultSettings()
	}
	if simulate {
		settings.set(sInputBackend, "keyboard")
		settings.set(sOutputBackend, "log")
		settings.set(sI2CSimulated, true)
		// the terminal belongs to termbox
		settings.set(sLogStdout, false)
	}
	return settings, nil
}

func runController(cmd *cobra.Command, args []string) error {
	settings, err := commandSettings()
	if err != nil {
		return err
	}

	closer, err := setupLogging(settings, false)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	sort.Strings(features)
	log.Printf("ampanel starting, features: %v", features)
	settings.Dump()

	rt, err := initRuntime(settings, clockwork.NewRealClock())
	if err != nil {
		log.Println(err.Error())
		return err
	}

	// ctrl-c and service stops end every worker
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case s := <-sigs:
			log.Printf("got %v, shutting down", s)
			rt.comms.stop()
		case <-rt.comms.quit:
		}
	}()

	startLEDController(rt)
	startPanel(rt)
	startStatusService(rt)

	wg.Wait()
	log.Println("ampanel stopped")
	return nil
}

func runProbe(cmd *cobra.Command, args []string) error {
	settings, err := commandSettings()
	if err != nil {
		return err
	}
	// probe output goes to the terminal, keep the log there too
	settings.set(sLogFile, "")
	settings.set(sLogStdout, !simulate)
	if _, err := setupLogging(settings, false); err != nil {
		return err
	}

	rt, err := initRuntime(settings, clockwork.NewRealClock())
	if err != nil {
		return err
	}
	return probeInputs(rt, probeTicks, cmd.OutOrStdout())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
