package main

import (
	"fmt"

	"dragchess/ui"
)

func main() {
	if err := ui.RunDragChess(); err != nil {
		fmt.Println(err)
	}
}
