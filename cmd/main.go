package main

import (
	"github.com/amirphl/futures-trader/internal/cmd"
)

func main() {
	cmd.Execute()
}
