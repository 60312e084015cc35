package main

import "io"

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "deal [easy|normal|hard] - deal a board, preferring one the solver verifies winnable\n")
	io.WriteString(w, "random [easy|normal|hard] - deal a board with no winnability check\n")
	io.WriteString(w, "solve - run the winnability solver on the current board\n")
	io.WriteString(w, "show - display the current board\n")
	io.WriteString(w, "mode [easy|normal|hard] - show or set the difficulty mode\n")
	io.WriteString(w, "auto <n> [workers] - deal and solve n boards, then summarize\n")
	io.WriteString(w, "exit - quit\n")
}
