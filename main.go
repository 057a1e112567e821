package main

import (
	"github.com/mj1618/axkit/cmd"
	_ "github.com/mj1618/axkit/macos"
)

func main() {
	cmd.Execute()
}
