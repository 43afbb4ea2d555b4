package pipeline

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config describes a pipeline search.
//
//	phases = [5, 6, 7, 8, 9]
//	signal = 0
//	feedback = true
type Config struct {
	Phases   []int64 `toml:"phases"`   // Phase settings, one per stage.
	Signal   int64   `toml:"signal"`   // Initial input signal to the first stage.
	Feedback bool    `toml:"feedback"` // Loop the last stage back to the first.
}

// DecodeConfig parses a TOML pipeline configuration.
func DecodeConfig(text string) (cfg *Config, err error) {
	cfg = &Config{}
	_, err = toml.Decode(text, cfg)
	if err != nil {
		cfg = nil
		err = fmt.Errorf("pipeline: parse config: %w", err)
		return
	}

	if len(cfg.Phases) == 0 {
		cfg = nil
		err = ErrPhasesEmpty
		return
	}

	return
}

// LoadConfig reads a TOML pipeline configuration file.
func LoadConfig(path string) (cfg *Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("cannot read %s: %w", path, err)
		return
	}

	cfg, err = DecodeConfig(string(data))
	if err != nil {
		err = fmt.Errorf("%s: %w", path, err)
		return
	}

	return
}
