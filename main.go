package main

import "github.com/usahaku/erp-dashboard/cmd"

func main() {
	cmd.Execute()
}
