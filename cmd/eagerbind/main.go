package main

import (
	"github.com/zhulik/eagerbind/internal/cli"
)

func main() {
	cli.Run()
}
