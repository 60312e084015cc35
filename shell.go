package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/domino14/klondike/automatic"
	"github.com/domino14/klondike/board"
	"github.com/domino14/klondike/card"
	"github.com/domino14/klondike/config"
	"github.com/domino14/klondike/solver"
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func parseMode(s string) (board.Mode, error) {
	switch s {
	case "easy":
		return board.ModeEasy, nil
	case "normal":
		return board.ModeNormal, nil
	case "hard":
		return board.ModeHard, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want easy, normal, or hard)", s)
}

func shellLoop(cfg *config.Config, sig chan os.Signal) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mklondike>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()

	s := solver.New(solver.Config{
		DepthCeiling:  cfg.DepthCeiling,
		NodeCeiling:   cfg.NodeCeiling,
		TableCapacity: cfg.TableCapacity,
	})
	mode, err := parseMode(cfg.DefaultMode)
	if err != nil {
		showMessage(err.Error()+", using normal", l.Stderr())
		mode = board.ModeNormal
	}
	var curBoard *board.Board

readlineLoop:
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		fields := strings.Fields(line)
		switch {
		case line == "":

		case fields[0] == "mode":
			if len(fields) == 1 {
				showMessage("mode: "+mode.String(), l.Stderr())
				break
			}
			m, err := parseMode(fields[1])
			if err != nil {
				showMessage("Error: "+err.Error(), l.Stderr())
				break
			}
			mode = m
			showMessage("mode set to "+mode.String(), l.Stderr())

		case fields[0] == "deal":
			if len(fields) > 1 {
				m, err := parseMode(fields[1])
				if err != nil {
					showMessage("Error: "+err.Error(), l.Stderr())
					break
				}
				mode = m
			}
			res := automatic.DealWinnable(s, mode, cfg.DealAttempts)
			curBoard = res.Board
			if res.Verified {
				showMessage(fmt.Sprintf("verified winnable deal %x (%d attempt(s), %d nodes)",
					res.DealID, res.Attempts, res.Nodes), l.Stderr())
			} else {
				showMessage(fmt.Sprintf("could not verify a winnable board in %d attempts; using a random board",
					res.Attempts), l.Stderr())
			}
			showMessage(curBoard.ToDisplayText(), l.Stderr())

		case fields[0] == "random":
			if len(fields) > 1 {
				m, err := parseMode(fields[1])
				if err != nil {
					showMessage("Error: "+err.Error(), l.Stderr())
					break
				}
				mode = m
			}
			deck := card.NewDeck()
			card.Shuffle(deck)
			curBoard = board.Deal(deck, mode)
			showMessage(curBoard.ToDisplayText(), l.Stderr())

		case fields[0] == "solve":
			if curBoard == nil {
				showMessage("Please deal a board first with `deal` or `random`", l.Stderr())
				break
			}
			st := s.SolveWithStats(curBoard)
			showMessage(fmt.Sprintf("winnable: %t (%d nodes, max depth %d, %v)",
				st.Winnable, st.Nodes, st.MaxDepth, st.Elapsed), l.Stderr())

		case fields[0] == "show":
			if curBoard == nil {
				showMessage("no board", l.Stderr())
				break
			}
			showMessage(curBoard.ToDisplayText(), l.Stderr())

		case fields[0] == "auto":
			if len(fields) < 2 {
				showMessage("usage: auto <numdeals> [workers]", l.Stderr())
				break
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				showMessage("Error: "+err.Error(), l.Stderr())
				break
			}
			workers := cfg.BatchWorkers
			if len(fields) > 2 {
				workers, err = strconv.Atoi(fields[2])
				if err != nil {
					showMessage("Error: "+err.Error(), l.Stderr())
					break
				}
			}
			summary, err := automatic.RunBatch(context.Background(), s, mode, n, workers, nil)
			if err != nil {
				showMessage("Error: "+err.Error(), l.Stderr())
				break
			}
			showMessage(summary.String(), l.Stderr())

		case line == "bye" || line == "exit":
			sig <- syscall.SIGINT
			break readlineLoop

		case strings.HasPrefix(line, "help"):
			usage(l.Stderr())

		default:
			log.Debug().Msgf("you said: %v", strconv.Quote(line))
			showMessage("unknown command; try `help`", l.Stderr())
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
