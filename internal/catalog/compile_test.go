package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

// fixtureTree mirrors the two wrapped APIs: a "printer" node, and a "server"
// node with a "files" child.
func fixtureTree() *Node {
	printer := NewNode("printer",
		&Operation{Name: "info", Doc: "Get info."},
		&Operation{Name: "run_gcode", Doc: "Execute a G-code command.", Params: []Param{{Name: "gcode"}}},
		&Operation{Name: "_refresh", Doc: "internal"},
	)
	files := NewNode("files",
		&Operation{Name: "get_roots", Doc: "Retrieve a list of root directories."},
	)
	server := NewNode("server",
		&Operation{Name: "temperature", Doc: "Retrieve temperature information.",
			Params: []Param{{Name: "include_monitor", Type: TypeBoolean, Optional: true}}},
	)
	server.AddChild(files)

	return NewNode("").AddChild(printer).AddChild(server)
}

func toolNames(tools []Tool) []string {
	names := make([]string, 0, len(tools))
	for _, t := range tools {
		names = append(names, t.Name)
	}
	return names
}

// ---------------------------------------------------------------------------
// Compile tests
// ---------------------------------------------------------------------------

func TestCompile_FlatNames(t *testing.T) {
	tools, err := Compile(fixtureTree())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	want := []string{
		"printer_info",
		"printer_run_gcode",
		"server_temperature",
		"server.files_get_roots",
	}
	if got := toolNames(tools); !reflect.DeepEqual(got, want) {
		t.Errorf("Compile names = %v, want %v", got, want)
	}
}

func TestCompile_Uniqueness(t *testing.T) {
	tools, err := Compile(fixtureTree())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	seen := make(map[string]struct{})
	for _, tool := range tools {
		if _, dup := seen[tool.Name]; dup {
			t.Errorf("duplicate tool name %q", tool.Name)
		}
		seen[tool.Name] = struct{}{}
	}
}

func TestCompile_Determinism(t *testing.T) {
	tree := fixtureTree()
	first, err := Compile(tree)
	if err != nil {
		t.Fatalf("first Compile: %v", err)
	}
	second, err := Compile(tree)
	if err != nil {
		t.Fatalf("second Compile: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two compiles of an unchanged tree differ:\n%v\n%v", first, second)
	}
}

func TestCompile_Descriptor(t *testing.T) {
	tools, err := Compile(fixtureTree())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	var info *Tool
	for i := range tools {
		if tools[i].Name == "printer_info" {
			info = &tools[i]
		}
	}
	if info == nil {
		t.Fatal("printer_info not in catalog")
	}
	if info.Description != "Get info." {
		t.Errorf("description = %q, want %q", info.Description, "Get info.")
	}
	if len(info.Schema.Properties) != 0 {
		t.Errorf("properties = %v, want empty", info.Schema.Properties)
	}
	if len(info.Schema.Required) != 0 {
		t.Errorf("required = %v, want empty", info.Schema.Required)
	}
	if info.Schema.Type != "object" {
		t.Errorf("schema type = %q, want object", info.Schema.Type)
	}
	if info.Schema.AdditionalProperties {
		t.Error("additionalProperties = true, want false")
	}
}

func TestCompile_UntypedParamDefaultsToString(t *testing.T) {
	tools, err := Compile(NewNode("printer",
		&Operation{Name: "run_gcode", Params: []Param{{Name: "gcode"}}},
	))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(tools) != 1 {
		t.Fatalf("got %d tools, want 1", len(tools))
	}

	schema := tools[0].Schema
	prop, ok := schema.Properties["gcode"]
	if !ok {
		t.Fatalf("gcode missing from properties %v", schema.Properties)
	}
	if prop.Type != TypeString {
		t.Errorf("gcode type = %q, want string", prop.Type)
	}
	if prop.Description != "Parameter gcode" {
		t.Errorf("gcode description = %q, want %q", prop.Description, "Parameter gcode")
	}
	if !reflect.DeepEqual(schema.Required, []string{"gcode"}) {
		t.Errorf("required = %v, want [gcode]", schema.Required)
	}
}

func TestCompile_RequiredSet(t *testing.T) {
	tools, err := Compile(NewNode("dev", &Operation{
		Name: "configure",
		Params: []Param{
			{Name: "host"},
			{Name: "port", Type: TypeInteger, Optional: true},
			{Name: "secure", Type: TypeBoolean, Optional: true},
			{Name: "token"},
		},
	}))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	want := []string{"host", "token"}
	if got := tools[0].Schema.Required; !reflect.DeepEqual(got, want) {
		t.Errorf("required = %v, want %v", got, want)
	}
}

func TestCompile_MissingDocGetsSentinel(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"absent", ""},
		{"whitespace only", "   \n\t"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tools, err := Compile(NewNode("dev", &Operation{Name: "op", Doc: tc.doc}))
			if err != nil {
				t.Fatalf("Compile: %v", err)
			}
			if tools[0].Description != NoDescription {
				t.Errorf("description = %q, want sentinel %q", tools[0].Description, NoDescription)
			}
		})
	}
}

func TestCompile_SkipsInternalOperations(t *testing.T) {
	tools, err := Compile(fixtureTree())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	for _, tool := range tools {
		if tool.Name == "printer__refresh" {
			t.Error("internal operation _refresh leaked into the catalog")
		}
	}
}

func TestCompile_EmptyNodeContributesNothing(t *testing.T) {
	tools, err := Compile(NewNode("").AddChild(NewNode("empty")))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(tools) != 0 {
		t.Errorf("got %d tools from an empty tree, want 0", len(tools))
	}
}

func TestCompile_SchemaConflict(t *testing.T) {
	tests := []struct {
		name string
		tree *Node
	}{
		{
			name: "duplicate operation name",
			tree: NewNode("printer",
				&Operation{Name: "info"},
				&Operation{Name: "info"},
			),
		},
		{
			name: "duplicate sibling segment",
			tree: NewNode("").
				AddChild(NewNode("server", &Operation{Name: "info"})).
				AddChild(NewNode("server", &Operation{Name: "config"})),
		},
		{
			name: "segment underscore collides with sibling operation",
			tree: NewNode("").
				AddChild(NewNode("box", &Operation{Name: "sub_read"})).
				AddChild(NewNode("box_sub", &Operation{Name: "read"})),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compile(tc.tree)
			if !errors.Is(err, ErrSchemaConflict) {
				t.Errorf("Compile error = %v, want ErrSchemaConflict", err)
			}
		})
	}
}

func TestCompile_DeepNesting(t *testing.T) {
	leaf := NewNode("c", &Operation{Name: "op"})
	tree := NewNode("").AddChild(NewNode("a").AddChild(NewNode("b").AddChild(leaf)))

	tools, err := Compile(tree)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(tools) != 1 || tools[0].Name != "a.b.c_op" {
		t.Errorf("tools = %v, want single a.b.c_op", toolNames(tools))
	}
}

func TestSchema_JSONShape(t *testing.T) {
	tools, err := Compile(NewNode("printer",
		&Operation{Name: "run_gcode", Doc: "Execute a G-code command.", Params: []Param{{Name: "gcode"}}},
	))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	data, err := json.Marshal(tools[0].Schema)
	if err != nil {
		t.Fatalf("marshal schema: %v", err)
	}
	want := `{"type":"object","properties":{"gcode":{"type":"string","description":"Parameter gcode"}},"required":["gcode"],"additionalProperties":false}`
	if string(data) != want {
		t.Errorf("schema JSON = %s, want %s", data, want)
	}
}

// Invoke closures registered on the tree must be the ones the catalog hands
// back; the compiler itself never calls them.
func TestCompile_DoesNotInvoke(t *testing.T) {
	called := false
	tree := NewNode("dev", &Operation{
		Name: "op",
		Invoke: func(context.Context, map[string]any) (any, error) {
			called = true
			return nil, nil
		},
	})
	if _, err := Compile(tree); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if called {
		t.Error("Compile invoked an operation")
	}
}
