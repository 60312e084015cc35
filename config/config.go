package config

import "github.com/namsral/flag"

type Config struct {
	DepthCeiling  int
	NodeCeiling   uint64
	TableCapacity int
	DealAttempts  int
	DefaultMode   string
	BatchWorkers  int
	ProfilePath   string
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("klondike", flag.ContinueOnError)
	fs.IntVar(&c.DepthCeiling, "depth-ceiling", 512, "solver depth ceiling (snapshot array size)")
	fs.Uint64Var(&c.NodeCeiling, "node-ceiling", 2_000_000, "solver node-visit ceiling per invocation")
	fs.IntVar(&c.TableCapacity, "table-capacity", 200_003, "transposition table slot count (prime)")
	fs.IntVar(&c.DealAttempts, "deal-attempts", 1000, "max deals tried before falling back to an unverified board")
	fs.StringVar(&c.DefaultMode, "default-mode", "normal", "default difficulty mode: easy, normal, or hard")
	fs.IntVar(&c.BatchWorkers, "batch-workers", 4, "worker goroutines for batch deal analysis")
	fs.StringVar(&c.ProfilePath, "profilepath", "", "path for cpu profile")
	err := fs.Parse(args)
	return err
}
