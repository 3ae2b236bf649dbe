package searchservice

import "time"

type Config struct {
	// Workers is the default worker count, 0 means one per CPU.
	Workers int `yaml:"workers"`
	// Timeout bounds the search of a single prefix, 0 disables it.
	Timeout time.Duration `yaml:"timeout"`
}
