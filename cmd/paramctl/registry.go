package main

import (
	"fmt"
	"log/slog"

	"github.com/joshuapare/paramkit/param"
)

// slogLogger adapts param.Logger to log/slog, the way the teacher's
// examples/builder code wires its own error-reporting hook.
type slogLogger struct{}

func (slogLogger) Errorf(format string, args ...any) {
	slog.Error(fmt.Sprintf(format, args...))
}

// demoRegistry builds a small parameter tree representative of what an
// embedded device's registry looks like: a sensors group with a read-only
// scalar and a vector, and a config group with a read/write scalar. It
// exists so paramctl has something to operate on without a backing file
// format for tree structure (the spec defines a data codec, not a schema
// persistence format).
func demoRegistry() (*param.Node, error) {
	root := param.NewGroup(0x00000000, "root", "device parameter root", 8)

	sensors := param.NewGroup(0x10000000, "sensors", "sensor readings", 8)
	voltage, err := param.NewScalar(0x10100000, "voltage", "supply voltage, volts",
		param.F32, 4, param.AccessFlags(0).GrantAll(param.Group1, param.OpRead), make([]byte, 4))
	if err != nil {
		return nil, err
	}
	samples, err := param.NewVector(0x10200000, "samples", "recent ADC samples",
		param.U16, 2, 16, param.AccessFlags(0).GrantAll(param.Group1, param.OpRead), make([]byte, 2+2*16))
	if err != nil {
		return nil, err
	}

	config := param.NewGroup(0x20000000, "config", "runtime configuration", 8)
	threshold, err := param.NewScalar(0x20100000, "threshold", "alarm threshold, volts",
		param.F32, 4, param.AccessFlags(0).GrantAll(param.Group1, param.OpRead, param.OpWrite), make([]byte, 4))
	if err != nil {
		return nil, err
	}

	if err := param.AddChild(sensors, voltage); err != nil {
		return nil, err
	}
	if err := param.AddChild(sensors, samples); err != nil {
		return nil, err
	}
	if err := param.AddChild(config, threshold); err != nil {
		return nil, err
	}
	if err := param.AddChild(root, sensors); err != nil {
		return nil, err
	}
	if err := param.AddChild(root, config); err != nil {
		return nil, err
	}

	return param.Build(root, param.WithLogger(slogLogger{}))
}

// resolveAccessGroup maps the --group flag to an param.AccessGroup.
func resolveAccessGroup(name string) (param.AccessGroup, error) {
	switch name {
	case "internal":
		return param.Internal, nil
	case "group0":
		return param.Group0, nil
	case "group1":
		return param.Group1, nil
	case "group2":
		return param.Group2, nil
	case "group3":
		return param.Group3, nil
	case "group4":
		return param.Group4, nil
	case "group5":
		return param.Group5, nil
	default:
		return 0, fmt.Errorf("unknown access group %q", name)
	}
}
