package cmd

import (
	"fmt"
	"os"
	"path"
	"sync"

	"fraxlend/config"
	"fraxlend/core"

	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/yiplee/structs"
)

var (
	cfgFile   string
	cfg       core.Config
	cfgOnce   sync.Once
	debugMode bool
)

var rootCmd = cobra.Command{
	Use:   "fraxlend",
	Short: "fraxlend single pair lending node",
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file. default is ~/.fraxlend.yaml")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable or disable debug model")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ver string) {
	rootCmd.Version = ver
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// initConfig load the config on first use, commands without a pair config never call it
func initConfig() {
	cfgOnce.Do(func() {
		if cfgFile == "" {
			dir, err := homedir.Dir()
			if err != nil {
				panic(err)
			}

			filename := path.Join(dir, ".fraxlend.yaml")
			info, err := os.Stat(filename)
			if !os.IsNotExist(err) && !info.IsDir() {
				cfgFile = filename
			}
		}

		if cfgFile != "" {
			logrus.Debugln("use config file", cfgFile)
		}

		if err := config.Load(cfgFile, &cfg); err != nil {
			panic(err)
		}
	})
}

func initLogging() {
	if debugMode {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	formatter := &logrus.TextFormatter{
		FullTimestamp: true,
	}
	logrus.SetFormatter(formatter)

	structs.DefaultTagName = "json"
}
