package main

import "github.com/inovacc/fuelr/cmd"

func main() {
	cmd.Execute()
}
