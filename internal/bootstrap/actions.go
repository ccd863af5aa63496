package bootstrap

import (
	"os/exec"

	"tgsetup/internal/config"
)

// Indirection layer to allow stubbing in tests

var (
	fnLookPath    = exec.LookPath
	fnRun         = runCmd
	fnInteractive = runInteractive
	fnCapture     = captureOutput

	fnStartServer = startServer
	fnPromptModel = promptModel
	fnSaveModel   = config.SaveModel
)
