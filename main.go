package main

import (
	"github.com/JamesBMiddleton/nutritrack/cmd"
)

func main() {
	cmd.Execute()
}
