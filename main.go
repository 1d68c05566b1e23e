package main

import "github.com/tri-tranminh/gold-tracker/cmd"

func main() {
	cmd.Execute()
}
