package main

import "github.com/dbdm-dev/dbdm/cmd"

func main() {
	cmd.Execute()
}
