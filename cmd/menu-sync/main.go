package main

import "github.com/ucsc-menus/menu-sync/internal/cli"

func main() {
	cli.Execute()
}
