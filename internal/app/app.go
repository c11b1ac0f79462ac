package app

import (
	"flag"
	"fmt"
	"os"
	"runtime"
)

var Version = "1.0.0"
var UserAgent = "easycapture/" + Version

var ConfigPath string
var Info = map[string]any{
	"version": Version,
}

func Init() {
	var confs flagConfig
	var version bool

	flag.Var(&confs, "config", "easycapture config (path to file or raw text), support multiple")
	flag.BoolVar(&version, "version", false, "Print the version of the application and exit")
	flag.Parse()

	if version {
		fmt.Printf("easycapture version %s %s/%s\n", Version, runtime.GOOS, runtime.GOARCH)
		os.Exit(0)
	}

	initConfig(confs)
	initLogger()

	Logger.Info().Str("version", Version).Str("platform", runtime.GOOS+"/"+runtime.GOARCH).Msg("easycapture")
	if ConfigPath != "" {
		Logger.Info().Str("path", ConfigPath).Msg("config")
	}
}
