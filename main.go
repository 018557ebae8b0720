package main

import "github.com/EricWal/hr-app/cli"

func main() {
	cli.Execute()
}
