package main

import "github.com/chemaware/catalog/internal/cli"

func main() {
	cli.Execute()
}
