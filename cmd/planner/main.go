package main

import "planner/cmd/planner/root"

func main() {
	root.Execute()
}
