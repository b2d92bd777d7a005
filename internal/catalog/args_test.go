package catalog

import (
	"reflect"
	"testing"
)

func TestStringArg(t *testing.T) {
	args := map[string]any{"gcode": "G28", "count": 3.0}

	got, err := StringArg(args, "gcode")
	if err != nil || got != "G28" {
		t.Errorf("StringArg(gcode) = %q, %v", got, err)
	}
	if _, err := StringArg(args, "missing"); err == nil {
		t.Error("StringArg(missing) = nil error, want error")
	}
	if _, err := StringArg(args, "count"); err == nil {
		t.Error("StringArg on a number = nil error, want error")
	}
}

func TestOptionalStringArg(t *testing.T) {
	got, err := OptionalStringArg(map[string]any{}, "root", "gcodes")
	if err != nil || got != "gcodes" {
		t.Errorf("OptionalStringArg default = %q, %v", got, err)
	}
	got, err = OptionalStringArg(map[string]any{"root": "config"}, "root", "gcodes")
	if err != nil || got != "config" {
		t.Errorf("OptionalStringArg present = %q, %v", got, err)
	}
}

func TestBoolArg(t *testing.T) {
	got, err := BoolArg(map[string]any{"forced": true}, "forced", false)
	if err != nil || !got {
		t.Errorf("BoolArg present = %v, %v", got, err)
	}
	got, err = BoolArg(map[string]any{}, "forced", false)
	if err != nil || got {
		t.Errorf("BoolArg default = %v, %v", got, err)
	}
	if _, err := BoolArg(map[string]any{"forced": "yes"}, "forced", false); err == nil {
		t.Error("BoolArg on a string = nil error, want error")
	}
}

func TestIntArg(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]any
		def     int
		want    int
		wantErr bool
	}{
		{"json number", map[string]any{"count": 50.0}, 100, 50, false},
		{"absent uses default", map[string]any{}, 100, 100, false},
		{"negative", map[string]any{"count": -3.0}, 100, -3, false},
		{"fractional rejected", map[string]any{"count": 1.5}, 100, 0, true},
		{"string rejected", map[string]any{"count": "50"}, 100, 0, true},
		{"overflows int rejected", map[string]any{"count": 1e30}, 100, 0, true},
		{"underflows int rejected", map[string]any{"count": -1e30}, 100, 0, true},
		{"int64 boundary rejected", map[string]any{"count": 9.223372036854776e18}, 100, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := IntArg(tc.args, "count", tc.def)
			if (err != nil) != tc.wantErr {
				t.Fatalf("IntArg error = %v, wantErr %v", err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("IntArg = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestStringListArg(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want []string
	}{
		{"json array", map[string]any{"items": []any{"a.gcode", "b.gcode"}}, []string{"a.gcode", "b.gcode"}},
		{"comma separated", map[string]any{"items": "a.gcode, b.gcode"}, []string{"a.gcode", "b.gcode"}},
		{"single value", map[string]any{"items": "a.gcode"}, []string{"a.gcode"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := StringListArg(tc.args, "items")
			if err != nil {
				t.Fatalf("StringListArg: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("StringListArg = %v, want %v", got, tc.want)
			}
		})
	}

	if _, err := StringListArg(map[string]any{}, "items"); err == nil {
		t.Error("StringListArg(missing) = nil error, want error")
	}
}
