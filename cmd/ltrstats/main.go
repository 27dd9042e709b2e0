// cmd/ltrstats/main.go
package main

import (
	"ltrgraph/internal/appshell"
	"ltrgraph/internal/statsapp"
)

func main() {
	appshell.Main(statsapp.RunContext)
}
