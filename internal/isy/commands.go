package isy

import (
	"context"

	"github.com/makerhub/makerhub/internal/catalog"
)

// Commands returns the client's contribution to the command tree: a single
// "isy" node covering nodes, scenes, programs, variables, and system state.
func (c *Client) Commands() *catalog.Node {
	return catalog.NewNode("isy",
		&catalog.Operation{
			Name: "get_nodes",
			Doc:  "Retrieve all nodes from the controller.",
			Invoke: func(ctx context.Context, _ map[string]any) (any, error) {
				return c.Nodes(ctx)
			},
		},
		&catalog.Operation{
			Name: "get_scenes",
			Doc:  "Retrieve all scenes from the controller.",
			Invoke: func(ctx context.Context, _ map[string]any) (any, error) {
				return c.Scenes(ctx)
			},
		},
		&catalog.Operation{
			Name:   "get_notes",
			Doc:    "Retrieve notes for a specific node.",
			Params: []catalog.Param{{Name: "node_id"}},
			Invoke: func(ctx context.Context, args map[string]any) (any, error) {
				nodeID, err := catalog.StringArg(args, "node_id")
				if err != nil {
					return nil, err
				}
				return c.NodeNotes(ctx, nodeID)
			},
		},
		&catalog.Operation{
			Name:   "enable_node",
			Doc:    "Enable a specific node.",
			Params: []catalog.Param{{Name: "node_id"}},
			Invoke: func(ctx context.Context, args map[string]any) (any, error) {
				nodeID, err := catalog.StringArg(args, "node_id")
				if err != nil {
					return nil, err
				}
				return c.EnableNode(ctx, nodeID)
			},
		},
		&catalog.Operation{
			Name:   "disable_node",
			Doc:    "Disable a specific node.",
			Params: []catalog.Param{{Name: "node_id"}},
			Invoke: func(ctx context.Context, args map[string]any) (any, error) {
				nodeID, err := catalog.StringArg(args, "node_id")
				if err != nil {
					return nil, err
				}
				return c.DisableNode(ctx, nodeID)
			},
		},
		&catalog.Operation{
			Name: "get_programs",
			Doc:  "Retrieve all programs from the controller.",
			Invoke: func(ctx context.Context, _ map[string]any) (any, error) {
				return c.Programs(ctx)
			},
		},
		&catalog.Operation{
			Name:   "run_program",
			Doc:    "Run a specific program.",
			Params: []catalog.Param{{Name: "program_id"}},
			Invoke: func(ctx context.Context, args map[string]any) (any, error) {
				programID, err := catalog.StringArg(args, "program_id")
				if err != nil {
					return nil, err
				}
				return c.RunProgram(ctx, programID)
			},
		},
		&catalog.Operation{
			Name:   "stop_program",
			Doc:    "Stop a specific program.",
			Params: []catalog.Param{{Name: "program_id"}},
			Invoke: func(ctx context.Context, args map[string]any) (any, error) {
				programID, err := catalog.StringArg(args, "program_id")
				if err != nil {
					return nil, err
				}
				return c.StopProgram(ctx, programID)
			},
		},
		&catalog.Operation{
			Name: "get_variables",
			Doc:  "Retrieve all variables from the controller.",
			Invoke: func(ctx context.Context, _ map[string]any) (any, error) {
				return c.Variables(ctx)
			},
		},
		&catalog.Operation{
			Name:   "get_variable_value",
			Doc:    "Retrieve the value of a specific variable.",
			Params: []catalog.Param{{Name: "var_id"}},
			Invoke: func(ctx context.Context, args map[string]any) (any, error) {
				varID, err := catalog.StringArg(args, "var_id")
				if err != nil {
					return nil, err
				}
				return c.VariableValue(ctx, varID)
			},
		},
		&catalog.Operation{
			Name:   "set_variable_value",
			Doc:    "Set the value of a specific variable.",
			Params: []catalog.Param{{Name: "var_id"}, {Name: "value"}},
			Invoke: func(ctx context.Context, args map[string]any) (any, error) {
				varID, err := catalog.StringArg(args, "var_id")
				if err != nil {
					return nil, err
				}
				value, err := catalog.StringArg(args, "value")
				if err != nil {
					return nil, err
				}
				return c.SetVariable(ctx, varID, value)
			},
		},
		&catalog.Operation{
			Name: "get_weather",
			Doc:  "Retrieve the weather forecast from the controller.",
			Invoke: func(ctx context.Context, _ map[string]any) (any, error) {
				return c.Weather(ctx)
			},
		},
		&catalog.Operation{
			Name: "get_status",
			Doc:  "Retrieve the status of every node.",
			Invoke: func(ctx context.Context, _ map[string]any) (any, error) {
				return c.Status(ctx)
			},
		},
		&catalog.Operation{
			Name: "get_location",
			Doc:  "Retrieve the controller's configured latitude and longitude.",
			Invoke: func(ctx context.Context, _ map[string]any) (any, error) {
				lat, long, err := c.Location(ctx)
				if err != nil {
					return nil, err
				}
				return map[string]float64{"latitude": lat, "longitude": long}, nil
			},
		},
		&catalog.Operation{
			Name: "reboot",
			Doc:  "Reboot the controller.",
			Invoke: func(ctx context.Context, _ map[string]any) (any, error) {
				return c.Reboot(ctx)
			},
		},
	)
}
