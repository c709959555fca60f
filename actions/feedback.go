package actions

import (
	"errors"
	"log"

	"github.com/automoto/doomerang-arsenal/components"
	"github.com/automoto/doomerang-arsenal/weapon"
)

// Animate fires a trigger on the Context's animator. A host without an
// animator makes it a no-op.
type Animate struct {
	Trigger string `yaml:"trigger"`
}

func newAnimate(p weapon.Params) (weapon.Action, error) {
	a := &Animate{}
	if err := p.Decode(a); err != nil {
		return nil, err
	}
	if a.Trigger == "" {
		return nil, errors.New("trigger is required")
	}
	return a, nil
}

func (a *Animate) Execute(ctx weapon.Context, _ *weapon.InputBinding, _ *weapon.ActionBinding) error {
	if anim := ctx.Animator(); anim != nil {
		anim.Trigger(a.Trigger)
	}
	return nil
}

// ScreenShake shakes the world's camera.
type ScreenShake struct {
	Intensity float64 `yaml:"intensity"` // pixels
	Duration  int     `yaml:"duration"`  // frames
}

func newScreenShake(p weapon.Params) (weapon.Action, error) {
	a := &ScreenShake{Intensity: 3, Duration: 6}
	if err := p.Decode(a); err != nil {
		return nil, err
	}
	if a.Intensity <= 0 || a.Duration <= 0 {
		return nil, errors.New("intensity and duration must be > 0")
	}
	return a, nil
}

func (a *ScreenShake) Execute(ctx weapon.Context, _ *weapon.InputBinding, _ *weapon.ActionBinding) error {
	h, err := hostOf(ctx)
	if err != nil {
		return err
	}
	camera, ok := components.Camera.First(h.World())
	if !ok {
		return nil
	}
	components.AddScreenShake(camera, a.Intensity, a.Duration)
	return nil
}

// Log prints its message each time it runs. It counts its executions, so
// every equipped copy gets its own instance.
type Log struct {
	Message string `yaml:"message"`

	count  int
	logger *log.Logger
}

func newLog(p weapon.Params, logger *log.Logger) (weapon.Action, error) {
	a := &Log{logger: logger}
	if err := p.Decode(a); err != nil {
		return nil, err
	}
	if a.Message == "" {
		return nil, errors.New("message is required")
	}
	if a.logger == nil {
		a.logger = log.Default()
	}
	return a, nil
}

func (a *Log) Execute(_ weapon.Context, b *weapon.InputBinding, ab *weapon.ActionBinding) error {
	a.count++
	a.logger.Printf("%s %s #%d: %s", b.Mode, ab.Phase, a.count, a.Message)
	return nil
}

// Count returns how many times this copy has run.
func (a *Log) Count() int {
	return a.count
}

// CloneAction implements weapon.Cloner.
func (a *Log) CloneAction() weapon.Action {
	return &Log{Message: a.Message, logger: a.logger}
}
