package main

import "lazybear/cmd/lb/root"

func main() {
	root.Execute()
}
