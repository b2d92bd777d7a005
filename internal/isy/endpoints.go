package isy

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"strconv"
)

// Nodes retrieves all nodes, keyed by address.
func (c *Client) Nodes(ctx context.Context) (map[string]DeviceNode, error) {
	body, err := c.get(ctx, "nodes")
	if err != nil {
		return nil, err
	}
	// The JSON variant keeps the nodes root element, unlike the flatter
	// list endpoints.
	var env struct {
		Nodes []DeviceNode `xml:"node"`
	}
	if xmlErr := xml.Unmarshal(body, &env); xmlErr != nil {
		var nested struct {
			Nodes struct {
				Node []DeviceNode `json:"node"`
			} `json:"nodes"`
		}
		if jsonErr := json.Unmarshal(body, &nested); jsonErr != nil {
			return nil, fmt.Errorf("isy: response is neither XML nor JSON: %w", jsonErr)
		}
		env.Nodes = nested.Nodes.Node
	}
	out := make(map[string]DeviceNode, len(env.Nodes))
	for _, n := range env.Nodes {
		out[n.Address] = n
	}
	return out, nil
}

// Scenes retrieves all scenes, keyed by address.
func (c *Client) Scenes(ctx context.Context) (map[string]Scene, error) {
	body, err := c.get(ctx, "nodes/scenes")
	if err != nil {
		return nil, err
	}
	var env struct {
		Groups []Scene `xml:"group"`
	}
	if xmlErr := xml.Unmarshal(body, &env); xmlErr != nil {
		var nested struct {
			Nodes struct {
				Group []Scene `json:"group"`
			} `json:"nodes"`
		}
		if jsonErr := json.Unmarshal(body, &nested); jsonErr != nil {
			return nil, fmt.Errorf("isy: response is neither XML nor JSON: %w", jsonErr)
		}
		env.Groups = nested.Nodes.Group
	}
	out := make(map[string]Scene, len(env.Groups))
	for _, s := range env.Groups {
		out[s.Address] = s
	}
	return out, nil
}

// NodeNotes retrieves the notes recorded for a node.
func (c *Client) NodeNotes(ctx context.Context, nodeID string) ([]string, error) {
	body, err := c.get(ctx, "node/"+nodeID+"/notes")
	if err != nil {
		return nil, err
	}
	var env struct {
		Notes []string `xml:"note" json:"note"`
	}
	if err := decode(body, &env); err != nil {
		return nil, err
	}
	return env.Notes, nil
}

// EnableNode enables a node.
func (c *Client) EnableNode(ctx context.Context, nodeID string) (bool, error) {
	return c.ok(ctx, http.MethodPost, "node/"+nodeID+"/enable")
}

// DisableNode disables a node.
func (c *Client) DisableNode(ctx context.Context, nodeID string) (bool, error) {
	return c.ok(ctx, http.MethodPost, "node/"+nodeID+"/disable")
}

// Programs retrieves all automation programs.
func (c *Client) Programs(ctx context.Context) ([]Program, error) {
	body, err := c.get(ctx, "programs")
	if err != nil {
		return nil, err
	}
	var env struct {
		Programs []Program `xml:"program" json:"program"`
	}
	if err := decode(body, &env); err != nil {
		return nil, err
	}
	return env.Programs, nil
}

// RunProgram runs a program.
func (c *Client) RunProgram(ctx context.Context, programID string) (bool, error) {
	return c.ok(ctx, http.MethodGet, "programs/"+programID+"/run")
}

// StopProgram stops a program.
func (c *Client) StopProgram(ctx context.Context, programID string) (bool, error) {
	return c.ok(ctx, http.MethodGet, "programs/"+programID+"/stop")
}

// Variables retrieves the definitions of all state variables.
func (c *Client) Variables(ctx context.Context) ([]VariableDef, error) {
	body, err := c.get(ctx, "vars/definitions/2")
	if err != nil {
		return nil, err
	}
	var env struct {
		Entries []VariableDef `xml:"e" json:"e"`
	}
	if err := decode(body, &env); err != nil {
		return nil, err
	}
	return env.Entries, nil
}

// VariableValue retrieves the current value of a state variable.
func (c *Client) VariableValue(ctx context.Context, varID string) (string, error) {
	body, err := c.get(ctx, "vars/get/2/"+varID)
	if err != nil {
		return "", err
	}
	var env struct {
		Value string `xml:"val" json:"val"`
	}
	if err := decode(body, &env); err != nil {
		return "", err
	}
	return env.Value, nil
}

// SetVariable sets the value of a state variable.
func (c *Client) SetVariable(ctx context.Context, varID, value string) (bool, error) {
	return c.ok(ctx, http.MethodGet, "vars/set/2/"+varID+"/"+value)
}

// Weather retrieves the climate module forecast.
func (c *Client) Weather(ctx context.Context) ([]Forecast, error) {
	body, err := c.get(ctx, "climate")
	if err != nil {
		return nil, err
	}
	var env struct {
		Forecast []Forecast `xml:"forecast" json:"forecast"`
	}
	if err := decode(body, &env); err != nil {
		return nil, err
	}
	return env.Forecast, nil
}

// Reboot reboots the controller.
func (c *Client) Reboot(ctx context.Context) (bool, error) {
	return c.ok(ctx, http.MethodGet, "reboot")
}

// Status retrieves the current properties of every node.
func (c *Client) Status(ctx context.Context) ([]NodeStatus, error) {
	body, err := c.get(ctx, "status")
	if err != nil {
		return nil, err
	}
	var env struct {
		Nodes []NodeStatus `xml:"node" json:"node"`
	}
	if err := decode(body, &env); err != nil {
		return nil, err
	}
	return env.Nodes, nil
}

// Location retrieves the controller's configured latitude and longitude
// from the time endpoint. The XML payload nests the fields under a DT root;
// the JSON variant serves them at the top level.
func (c *Client) Location(ctx context.Context) (lat, long float64, err error) {
	body, err := c.get(ctx, "time")
	if err != nil {
		return 0, 0, err
	}

	var dt struct {
		Lat  string `xml:"Lat"`
		Long string `xml:"Long"`
	}
	if xmlErr := xml.Unmarshal(body, &dt); xmlErr != nil || dt.Lat == "" {
		var flat struct {
			Lat  json.Number `json:"Lat"`
			Long json.Number `json:"Long"`
		}
		if jsonErr := json.Unmarshal(body, &flat); jsonErr != nil {
			return 0, 0, fmt.Errorf("isy: response is neither XML nor JSON: %w", jsonErr)
		}
		dt.Lat, dt.Long = flat.Lat.String(), flat.Long.String()
	}

	lat, err = strconv.ParseFloat(dt.Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("isy: parse latitude %q: %w", dt.Lat, err)
	}
	long, err = strconv.ParseFloat(dt.Long, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("isy: parse longitude %q: %w", dt.Long, err)
	}
	return lat, long, nil
}
