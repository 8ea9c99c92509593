package main

import (
	"github.com/cameron-webmatter/stencil/pkg/cli"
)

func main() {
	cli.Execute()
}
