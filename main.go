package main

import "github.com/lizet96/hospital-system/cmd"

func main() {
	cmd.Execute()
}
