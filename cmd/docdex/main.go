package main

import "github.com/mvp-joe/docdex/internal/cli"

func main() {
	cli.Execute()
}
