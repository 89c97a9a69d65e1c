package steps

import (
	"strings"

	apperrors "github.com/kbukum/rangekit/errors"
	"github.com/kbukum/rangekit/pipe"
	"github.com/kbukum/rangekit/validation"
)

// Call is one parsed step invocation.
type Call struct {
	Name string
	Args []string
}

// Parse splits a pipeline description into calls. A blank description
// yields no calls.
func Parse(expr string) ([]Call, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, nil
	}
	segments := strings.Split(expr, "|")
	calls := make([]Call, 0, len(segments))
	for i, seg := range segments {
		call, err := parseCall(seg)
		if err != nil {
			return nil, err.WithDetail("position", i)
		}
		calls = append(calls, call)
	}
	return calls, nil
}

// namePattern is the shape of every registered step name.
const namePattern = `^[a-z][a-z_]*$`

func parseCall(seg string) (Call, *apperrors.Error) {
	name, rawArgs, hasArgs := strings.Cut(strings.TrimSpace(seg), ":")
	name = strings.TrimSpace(name)
	v := validation.New()
	v.Required("step", name)
	v.Pattern("step", name, namePattern)
	if err := v.Validate(); err != nil {
		return Call{}, err.WithDetail("segment", seg)
	}
	call := Call{Name: name}
	if hasArgs {
		for arg := range strings.SplitSeq(rawArgs, ",") {
			call.Args = append(call.Args, strings.TrimSpace(arg))
		}
	}
	return call, nil
}

// Build parses expr and chains its steps into a single adaptor.
func Build(reg *Registry[int], expr string, env Env) (pipe.Adaptor[int, int], error) {
	calls, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	adaptors := make([]pipe.Adaptor[int, int], 0, len(calls))
	for _, call := range calls {
		a, err := reg.Create(call.Name, call.Args, env)
		if err != nil {
			return nil, err
		}
		adaptors = append(adaptors, a)
	}
	return pipe.Chain(adaptors...), nil
}

// BuildGroup parses a single grouper call such as "chunk:3".
func BuildGroup(reg *Registry[[]int], expr string, env Env) (pipe.Adaptor[int, []int], error) {
	calls, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	if len(calls) != 1 {
		return nil, apperrors.InvalidArgument("group", "group", "exactly one grouper required, got "+quote(expr))
	}
	return reg.Create(calls[0].Name, calls[0].Args, env)
}

func quote(s string) string { return `"` + s + `"` }
