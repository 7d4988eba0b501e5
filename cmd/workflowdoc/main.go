package main

import "github.com/dgallion1/workflowdoc/internal/cli"

func main() {
	cli.Execute()
}
