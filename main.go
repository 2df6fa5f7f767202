package main

import (
	_ "embed"

	"github.com/picup-app/picup/cmd"
)

//go:embed config/config.yaml
var c string

func main() {
	cmd.Execute(c)
}
