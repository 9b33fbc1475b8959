package main

import "github.com/cims/inventory-management/cmd"

func main() {
	cmd.Execute()
}
