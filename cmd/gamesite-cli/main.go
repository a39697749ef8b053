package main

import (
	"context"
	"gamesitetools/cmd/gamesite-cli/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
