package batch

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/iancoleman/strcase"
	"sigs.k8s.io/yaml"

	"github.com/MacroPower/ospath/pkg/ospath"
)

// Op names a path operation.
type Op string

const (
	OpResolve    Op = "resolve"
	OpResolveN   Op = "resolve_n"
	OpResolveOne Op = "resolve_one"
	OpRelative   Op = "relative"
	OpIsAbsolute Op = "is_absolute"
)

// Ops lists every known [Op].
var Ops = []Op{OpResolve, OpResolveN, OpResolveOne, OpRelative, OpIsAbsolute}

// NormalizeOp maps spellings such as "resolveOne", "ResolveOne" or
// "resolve-one" to the canonical snake_case [Op].
func NormalizeOp(s string) Op {
	return Op(strcase.ToSnake(strings.TrimSpace(s)))
}

// arity returns the number of paths op requires, or -1 for any number.
func (o Op) arity() int {
	switch o {
	case OpResolve, OpRelative:
		return 2
	case OpResolveOne, OpIsAbsolute:
		return 1
	case OpResolveN:
		return -1
	}

	return 0
}

// File is a batch of operations.
type File struct {
	// Manipulation is the default manipulation for every operation
	// ("default" or "windows").
	Manipulation string `json:"manipulation,omitempty" jsonschema:"enum=default,enum=windows"`
	// Operations are evaluated independently of each other.
	Operations []Operation `json:"operations"`
}

// Operation is a single path operation.
type Operation struct {
	// Name optionally identifies the operation in results.
	Name string `json:"name,omitempty"`
	// Op is the operation to perform.
	Op Op `json:"op" jsonschema:"enum=resolve,enum=resolve_n,enum=resolve_one,enum=relative,enum=is_absolute"`
	// Paths are the operation's arguments, in order.
	Paths []string `json:"paths"`
	// Manipulation overrides the file's manipulation for this operation.
	Manipulation string `json:"manipulation,omitempty" jsonschema:"enum=default,enum=windows"`
}

// Load decodes a YAML or JSON batch file and normalizes its op names.
func Load(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	f := &File{}

	err = yaml.UnmarshalStrict(data, f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	for i := range f.Operations {
		f.Operations[i].Op = NormalizeOp(string(f.Operations[i].Op))
	}

	return f, nil
}

// Validate reports every invalid operation in f.
func (f *File) Validate() error {
	var merr error

	if _, err := ospath.ParseManipulation(f.Manipulation); err != nil {
		merr = multierror.Append(merr, err)
	}

	for i, op := range f.Operations {
		if err := op.validate(); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%w %d (%s): %w", ErrInvalidOperation, i, op.label(), err))
		}
	}

	return merr
}

func (o Operation) validate() error {
	var merr error

	want := o.Op.arity()
	switch {
	case want == 0:
		merr = multierror.Append(merr, fmt.Errorf("%w: %q", ErrUnknownOp, o.Op))
	case want > 0 && len(o.Paths) != want:
		merr = multierror.Append(merr, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, o.Op, want, len(o.Paths)))
	}

	if _, err := ospath.ParseManipulation(o.Manipulation); err != nil {
		merr = multierror.Append(merr, err)
	}

	return merr
}

func (o Operation) label() string {
	if o.Name != "" {
		return o.Name
	}

	return string(o.Op)
}

// manipulation returns the operation's manipulation, falling back to def.
// Both are assumed valid.
func (o Operation) manipulation(def ospath.Manipulation) ospath.Manipulation {
	if o.Manipulation == "" {
		return def
	}

	m, _ := ospath.ParseManipulation(o.Manipulation)

	return m
}
