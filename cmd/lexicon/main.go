package main

import "github.com/comalice/lexicon/internal/cli"

func main() {
	cli.Execute()
}
