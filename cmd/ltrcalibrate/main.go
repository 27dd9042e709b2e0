// cmd/ltrcalibrate/main.go
package main

import (
	"ltrgraph/internal/appshell"
	"ltrgraph/internal/calibrateapp"
)

func main() {
	appshell.Main(calibrateapp.RunContext)
}
