package config

import (
	"fmt"
)

type Flagger interface {
	Bool(name string) bool
	Int(name string) int
	StringSlice(name string) []string
}

type Config struct {
	Concurrency int
	Expressions []string
	Files       []string
	PrintNames  bool
}

func Read(flags Flagger, args []string) (*Config, error) {
	concurrency := flags.Int("concurrency")
	if concurrency < 1 {
		return nil, fmt.Errorf("flag --concurrency must be at least 1, got %d", concurrency)
	}

	cfg := Config{
		Concurrency: concurrency,
		Expressions: flags.StringSlice("expr"),
		Files:       args,
		PrintNames:  flags.Bool("print-names"),
	}

	return &cfg, nil
}
