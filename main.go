package main

import (
	"github.com/budgt/budgt/cmd"
	"github.com/budgt/budgt/migrations"
)

func main() {
	cmd.Execute(migrations.FS)
}
