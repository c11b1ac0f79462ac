package main

import (
	"github.com/easydarwin/easycapture/internal/api"
	"github.com/easydarwin/easycapture/internal/app"
	"github.com/easydarwin/easycapture/internal/convert"
	"github.com/easydarwin/easycapture/pkg/shell"
)

func main() {
	app.Init() // init config and logs

	api.Init()     // init HTTP API server
	convert.Init() // run file conversion jobs

	shell.RunUntilSignal()
}
