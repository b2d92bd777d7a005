package catalog

import (
	"encoding/json"
	"testing"
)

func TestOpenAITools_WireShape(t *testing.T) {
	tools, err := Compile(NewNode("printer",
		&Operation{Name: "run_gcode", Doc: "Execute a G-code command.", Params: []Param{{Name: "gcode"}}},
	))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	data, err := json.Marshal(OpenAITools(tools))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("got %d entries, want 1", len(decoded))
	}

	entry := decoded[0]
	if entry["type"] != "function" {
		t.Errorf("type = %v, want function", entry["type"])
	}
	fn, ok := entry["function"].(map[string]any)
	if !ok {
		t.Fatalf("function missing from %v", entry)
	}
	if fn["name"] != "printer_run_gcode" {
		t.Errorf("function.name = %v, want printer_run_gcode", fn["name"])
	}
	if fn["description"] != "Execute a G-code command." {
		t.Errorf("function.description = %v", fn["description"])
	}
	if fn["strict"] != true {
		t.Errorf("function.strict = %v, want true", fn["strict"])
	}

	params, ok := fn["parameters"].(map[string]any)
	if !ok {
		t.Fatalf("function.parameters missing from %v", fn)
	}
	if params["type"] != "object" {
		t.Errorf("parameters.type = %v, want object", params["type"])
	}
	if params["additionalProperties"] != false {
		t.Errorf("parameters.additionalProperties = %v, want false", params["additionalProperties"])
	}
}
