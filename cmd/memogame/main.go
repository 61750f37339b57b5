package main

import (
	"github.com/gou177/vezdecod-API-50/internal/cli"
)

func main() {
	cli.Execute()
}
