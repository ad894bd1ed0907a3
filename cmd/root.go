package cmd

import (
	"fmt"
	"os"
	"path"
	"time"

	"dsc/config"
	"dsc/core"

	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/yiplee/structs"
)

const defaultConfigName = ".dsc.yaml"

var (
	cfgFile   string
	cfg       core.Config
	debugMode bool
	setupOnce bool
)

var rootCmd = cobra.Command{
	Use:   "dsc",
	Short: "collateralized stable token engine",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if setupOnce {
			return nil
		}

		setupOnce = true
		if err := loadConfig(); err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		setupLogging(cfg.App)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file. default is ~/"+defaultConfigName)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable or disable debug model")
}

// Execute runs the root command with the build version
func Execute(ver string) {
	rootCmd.Version = ver
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadConfig() error {
	if cfgFile == "" {
		cfgFile = defaultConfigFile()
	}

	if err := config.Load(cfgFile, &cfg); err != nil {
		return err
	}

	if loc, err := time.LoadLocation(cfg.App.Location); err == nil {
		time.Local = loc
	}

	return nil
}

// ~/.dsc.yaml if it exists
func defaultConfigFile() string {
	dir, err := homedir.Dir()
	if err != nil {
		return ""
	}

	filename := path.Join(dir, defaultConfigName)
	if info, err := os.Stat(filename); err != nil || info.IsDir() {
		return ""
	}

	return filename
}

func setupLogging(app core.App) {
	level := logrus.InfoLevel
	if debugMode {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)

	switch app.LogFormat {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if cfgFile != "" {
		logrus.Debugln("use config file", cfgFile)
	}

	// log notifier fields follow the json names
	structs.DefaultTagName = "json"
}
