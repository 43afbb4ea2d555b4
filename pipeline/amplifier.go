package pipeline

import (
	"log"

	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/internal"
)

// Amplifier runs forks of a program as a series of stages.
type Amplifier struct {
	Verbose bool             // If set, enables verbose logging.
	Program *intcode.Machine // Program each stage is forked from. Never run.
}

// Result is the best signal found by a search, and its phase settings.
type Result struct {
	Signal int64
	Phases []int64
}

// NewAmplifier creates a new amplifier for a program.
func NewAmplifier(prog *intcode.Machine) (amp *Amplifier) {
	amp = &Amplifier{
		Program: prog,
	}

	return
}

// stages forks one machine per phase, each primed with its phase setting.
func (amp *Amplifier) stages(phases []int64) (stages []*intcode.Machine, err error) {
	if amp.Program == nil {
		err = ErrProgramNil
		return
	}

	if len(phases) == 0 {
		err = ErrPhasesEmpty
		return
	}

	stages = make([]*intcode.Machine, len(phases))
	for n, phase := range phases {
		stages[n] = amp.Program.Clone()
		stages[n].Verbose = amp.Verbose
		stages[n].Push(phase)
	}

	return
}

// Chain runs each stage once, feeding signal to the first stage and the
// last output of each stage to the next. It returns the last output of the
// final stage.
func (amp *Amplifier) Chain(phases []int64, signal int64) (output int64, err error) {
	stages, err := amp.stages(phases)
	if err != nil {
		return
	}

	for n, stage := range stages {
		var outputs []int64
		outputs, err = stage.Run(signal)
		if err != nil {
			err = &ErrStage{Stage: n, Err: err}
			return
		}
		if len(outputs) == 0 {
			err = &ErrStage{Stage: n, Err: ErrNoOutput}
			return
		}
		signal = outputs[len(outputs)-1]
	}

	output = signal

	if amp.Verbose {
		log.Printf("pipeline: chain %v: %d", phases, output)
	}

	return
}

// Feedback runs the stages round-robin, each stage running until it waits
// for input or halts. All outputs of a stage become the inputs of the next,
// and the outputs of the final stage are fed back to the first. It returns
// the last output of the final stage once that stage halts.
func (amp *Amplifier) Feedback(phases []int64, signal int64) (output int64, err error) {
	stages, err := amp.stages(phases)
	if err != nil {
		return
	}

	last := len(stages) - 1
	signals := []int64{signal}
	seen := false

	for round := 0; !stages[last].IsHalted(); round++ {
		for n, stage := range stages {
			var outputs []int64
			outputs, err = stage.Run(signals...)
			if err != nil {
				err = &ErrStage{Stage: n, Err: err}
				return
			}
			if len(outputs) == 0 && !stage.IsHalted() {
				err = &ErrStage{Stage: n, Err: ErrNoOutput}
				return
			}
			if n == last && len(outputs) != 0 {
				output = outputs[len(outputs)-1]
				seen = true
			}
			signals = outputs
		}

		if amp.Verbose {
			log.Printf("pipeline: round %d: %v", round, signals)
		}
	}

	if !seen {
		err = &ErrStage{Stage: last, Err: ErrNoOutput}
		return
	}

	if amp.Verbose {
		log.Printf("pipeline: feedback %v: %d", phases, output)
	}

	return
}

// Search tries every ordering of the configured phases, and returns the
// ordering producing the highest signal.
func (amp *Amplifier) Search(cfg *Config) (result Result, err error) {
	if len(cfg.Phases) == 0 {
		err = ErrPhasesEmpty
		return
	}

	run := amp.Chain
	if cfg.Feedback {
		run = amp.Feedback
	}

	found := false
	for phases := range internal.Permutations(cfg.Phases) {
		var signal int64
		signal, err = run(phases, cfg.Signal)
		if err != nil {
			return
		}
		if !found || signal > result.Signal {
			result = Result{Signal: signal, Phases: phases}
			found = true
		}
	}

	return
}
