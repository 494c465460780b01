package commands

import (
	"fmt"

	"github.com/MacroPower/ospath/pkg/ospath"
	"github.com/MacroPower/ospath/pkg/render"
)

type RootArgs struct {
	logLevel     *string
	logFormat    *string
	manipulation *string
	output       *string
	cpuProfile   *string
	memProfile   *string
}

func NewRootArgs() *RootArgs {
	return &RootArgs{
		logLevel:     new(string),
		logFormat:    new(string),
		manipulation: new(string),
		output:       new(string),
		cpuProfile:   new(string),
		memProfile:   new(string),
	}
}

func (a *RootArgs) GetLogLevel() string {
	return *a.logLevel
}

func (a *RootArgs) GetLogFormat() string {
	return *a.logFormat
}

func (a *RootArgs) GetManipulation() (ospath.Manipulation, error) {
	m, err := ospath.ParseManipulation(*a.manipulation)
	if err != nil {
		return m, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return m, nil
}

func (a *RootArgs) GetOutput() (render.Format, error) {
	f, err := render.ParseFormat(*a.output)
	if err != nil {
		return f, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return f, nil
}

func (a *RootArgs) GetCPUProfile() string {
	return *a.cpuProfile
}

func (a *RootArgs) GetMemProfile() string {
	return *a.memProfile
}
