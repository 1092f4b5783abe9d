package commands

import (
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"jsexpr"
	"jsexpr/value"
)

// defaultEnv returns the built-in host callables available to the CLI and
// the repl.
func defaultEnv() jsexpr.Env {
	return jsexpr.Env{
		"uuid": jsexpr.Fn(func(args []value.Value) value.Value {
			return value.String(uuid.NewString())
		}),
	}
}

// loadEnvFile merges variable bindings from a YAML (or JSON) file into env.
// Each top-level key becomes one variable.
func loadEnvFile(env jsexpr.Env, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WithStack(err)
	}
	var bindings map[string]interface{}
	if err := yaml.Unmarshal(data, &bindings); err != nil {
		return errors.Wrapf(err, "parsing %s", path)
	}
	for name, raw := range bindings {
		v, err := toValue(raw)
		if err != nil {
			return errors.Wrapf(err, "binding %q", name)
		}
		env[name] = jsexpr.Var(v)
	}
	return nil
}

func toValue(raw interface{}) (value.Value, error) {
	switch x := raw.(type) {
	case nil:
		return value.Null(), nil
	case bool:
		return value.Bool(x), nil
	case int:
		return value.Int(int64(x)), nil
	case int64:
		return value.Int(x), nil
	case float64:
		return value.Number(x)
	case string:
		return value.String(x), nil
	case []interface{}:
		elems := make([]value.Value, len(x))
		for i, el := range x {
			v, err := toValue(el)
			if err != nil {
				return value.Value{}, err
			}
			elems[i] = v
		}
		return value.Array(elems...), nil
	case map[string]interface{}:
		obj := value.NewObject()
		for k, el := range x {
			v, err := toValue(el)
			if err != nil {
				return value.Value{}, err
			}
			obj.Set(k, v)
		}
		return obj.Value(), nil
	default:
		return value.Value{}, errors.Errorf("unsupported binding type %T", raw)
	}
}
