package targets

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"omibyte.io/cortexm/cortexm"
	"omibyte.io/cortexm/interrupt"
	"omibyte.io/cortexm/peripheral"
)

//go:embed targets.yaml
var rawTargets []byte

var targets Targets

// SlotSize is the width of a vector table slot on every Cortex-M part.
const SlotSize = 4

func All() Targets {
	return targets
}

type Targets []TargetInfo
type TargetInfo struct {
	Series     string    `yaml:"series"`
	Chips      []string  `yaml:"chips"`
	Cpu        string    `yaml:"cpu"`
	Interrupts int       `yaml:"interrupts"`
	Frequency  Frequency `yaml:"frequency"`
	FPU        bool      `yaml:"fpu"`
	DWT        bool      `yaml:"dwt"`
}

// MaxIRQ is the value to initialize the interrupt controller with for this
// target. Every valid peripheral line is below it.
func (t TargetInfo) MaxIRQ() interrupt.IRQ {
	return interrupt.IRQ(t.Interrupts)
}

// VectorSlots is the number of words in a full vector table.
func (t TargetInfo) VectorSlots() int {
	return t.Interrupts + interrupt.CoreInterrupts
}

// TableBytes is the size of a full vector table on the target.
func (t TargetInfo) TableBytes() int {
	return t.VectorSlots() * SlotSize
}

// TableAlignment is the boundary a relocated table must start on.
func (t TargetInfo) TableAlignment() int {
	return int(cortexm.TableAlignmentFor(t.VectorSlots(), SlotSize))
}

func (t Targets) FindBySeries(name string) (TargetInfo, error) {
	name = strings.ToLower(name)
	i := slices.IndexFunc(t, func(target TargetInfo) bool {
		return target.Series == name
	})
	if i < 0 {
		return TargetInfo{}, fmt.Errorf("%w: series %q", ErrTargetNotFound, name)
	}
	return t[i], nil
}

func (t Targets) FindByChip(name string) (TargetInfo, error) {
	name = strings.ToLower(name)
	i := slices.IndexFunc(t, func(target TargetInfo) bool {
		return slices.Contains(target.Chips, name)
	})
	if i < 0 {
		return TargetInfo{}, fmt.Errorf("%w: chip %q", ErrTargetNotFound, name)
	}
	return t[i], nil
}

// Find looks name up as a chip first, then as a series.
func (t Targets) Find(name string) (TargetInfo, error) {
	if target, err := t.FindByChip(name); err == nil {
		return target, nil
	}
	if target, err := t.FindBySeries(name); err == nil {
		return target, nil
	}
	return TargetInfo{}, fmt.Errorf("%w: %q", ErrTargetNotFound, name)
}

// Frequency is a clock rate written with a unit suffix, such as 48MHz.
type Frequency peripheral.Hertz

func (f Frequency) Hertz() peripheral.Hertz {
	return peripheral.Hertz(f)
}

func (f *Frequency) UnmarshalYAML(value *yaml.Node) error {
	hz, err := peripheral.ParseHertz(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*f = Frequency(hz)
	return nil
}

func (f Frequency) MarshalYAML() (interface{}, error) {
	return peripheral.Hertz(f).String(), nil
}

func decode(data []byte) (Targets, error) {
	var t struct {
		Elements Targets `yaml:"targets"`
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}

	for _, target := range t.Elements {
		if target.Interrupts <= 0 || target.Interrupts > 496 {
			return nil, fmt.Errorf("series %s: interrupt count %d out of range", target.Series, target.Interrupts)
		}
	}
	return t.Elements, nil
}

func init() {
	var err error
	if targets, err = decode(rawTargets); err != nil {
		panic(err)
	}
}
