package moonraker

import (
	"context"

	"github.com/makerhub/makerhub/internal/catalog"
)

// Commands returns the client's contribution to the command tree: a
// "printer" node and a "server" node with a "files" child. Operation names,
// docs, and parameters are declared here once; the catalog compiler derives
// the tool schemas from them.
func (c *Client) Commands() []*catalog.Node {
	return []*catalog.Node{c.Printer.commands(), c.Server.commands()}
}

func (p *PrinterClient) commands() *catalog.Node {
	return catalog.NewNode("printer",
		&catalog.Operation{
			Name: "info",
			Doc:  "Retrieve printer information.",
			Invoke: func(ctx context.Context, _ map[string]any) (any, error) {
				return p.Info(ctx)
			},
		},
		&catalog.Operation{
			Name: "emergency_stop",
			Doc:  "Trigger an emergency stop on the printer.",
			Invoke: func(ctx context.Context, _ map[string]any) (any, error) {
				return p.EmergencyStop(ctx)
			},
		},
		&catalog.Operation{
			Name: "host_restart",
			Doc:  "Restart the host machine.",
			Invoke: func(ctx context.Context, _ map[string]any) (any, error) {
				return p.HostRestart(ctx)
			},
		},
		&catalog.Operation{
			Name: "firmware_restart",
			Doc:  "Restart the printer firmware.",
			Invoke: func(ctx context.Context, _ map[string]any) (any, error) {
				return p.FirmwareRestart(ctx)
			},
		},
		&catalog.Operation{
			Name: "list_objects",
			Doc:  "List all objects available on the printer.",
			Invoke: func(ctx context.Context, _ map[string]any) (any, error) {
				return p.ListObjects(ctx)
			},
		},
		&catalog.Operation{
			Name:   "run_gcode",
			Doc:    "Execute a G-code command on the printer.",
			Params: []catalog.Param{{Name: "gcode"}},
			Invoke: func(ctx context.Context, args map[string]any) (any, error) {
				gcode, err := catalog.StringArg(args, "gcode")
				if err != nil {
					return nil, err
				}
				return p.RunGCode(ctx, gcode)
			},
		},
		&catalog.Operation{
			Name: "gcode_help",
			Doc:  "Get help information for G-code commands.",
			Invoke: func(ctx context.Context, _ map[string]any) (any, error) {
				return p.GCodeHelp(ctx)
			},
		},
		&catalog.Operation{
			Name:   "start_print",
			Doc:    "Start printing a file.",
			Params: []catalog.Param{{Name: "file"}},
			Invoke: func(ctx context.Context, args map[string]any) (any, error) {
				file, err := catalog.StringArg(args, "file")
				if err != nil {
					return nil, err
				}
				return p.StartPrint(ctx, file)
			},
		},
		&catalog.Operation{
			Name: "pause_print",
			Doc:  "Pause the ongoing print.",
			Invoke: func(ctx context.Context, _ map[string]any) (any, error) {
				return p.PausePrint(ctx)
			},
		},
		&catalog.Operation{
			Name: "resume_print",
			Doc:  "Resume the paused print.",
			Invoke: func(ctx context.Context, _ map[string]any) (any, error) {
				return p.ResumePrint(ctx)
			},
		},
		&catalog.Operation{
			Name: "cancel_print",
			Doc:  "Cancel the ongoing print.",
			Invoke: func(ctx context.Context, _ map[string]any) (any, error) {
				return p.CancelPrint(ctx)
			},
		},
	)
}

func (s *ServerClient) commands() *catalog.Node {
	node := catalog.NewNode("server",
		&catalog.Operation{
			Name: "info",
			Doc:  "Retrieve server information.",
			Invoke: func(ctx context.Context, _ map[string]any) (any, error) {
				return s.Info(ctx)
			},
		},
		&catalog.Operation{
			Name: "config",
			Doc:  "Retrieve server configuration.",
			Invoke: func(ctx context.Context, _ map[string]any) (any, error) {
				return s.Config(ctx)
			},
		},
		&catalog.Operation{
			Name:   "temperature",
			Doc:    "Retrieve temperature information about the server.",
			Params: []catalog.Param{{Name: "include_monitor", Type: catalog.TypeBoolean, Optional: true}},
			Invoke: func(ctx context.Context, args map[string]any) (any, error) {
				include, err := catalog.BoolArg(args, "include_monitor", false)
				if err != nil {
					return nil, err
				}
				return s.Temperature(ctx, include)
			},
		},
		&catalog.Operation{
			Name:   "cached_gcode",
			Doc:    "Retrieve a cached list of gcode commands.",
			Params: []catalog.Param{{Name: "count", Type: catalog.TypeInteger, Optional: true}},
			Invoke: func(ctx context.Context, args map[string]any) (any, error) {
				count, err := catalog.IntArg(args, "count", 100)
				if err != nil {
					return nil, err
				}
				return s.CachedGCode(ctx, count)
			},
		},
		&catalog.Operation{
			Name: "restart_server",
			Doc:  "Restart the server.",
			Invoke: func(ctx context.Context, _ map[string]any) (any, error) {
				return s.Restart(ctx)
			},
		},
	)
	node.AddChild(s.Files.commands())
	return node
}

func (f *FilesClient) commands() *catalog.Node {
	return catalog.NewNode("files",
		&catalog.Operation{
			Name: "get_roots",
			Doc:  "Retrieve a list of root directories.",
			Invoke: func(ctx context.Context, _ map[string]any) (any, error) {
				return f.Roots(ctx)
			},
		},
		&catalog.Operation{
			Name: "get_gcodes",
			Doc:  "Retrieve a list of gcode files.",
			Invoke: func(ctx context.Context, _ map[string]any) (any, error) {
				return f.GCodes(ctx)
			},
		},
		&catalog.Operation{
			Name:   "get_gcode_metadata",
			Doc:    "Retrieve metadata about a gcode file.",
			Params: []catalog.Param{{Name: "file_name"}},
			Invoke: func(ctx context.Context, args map[string]any) (any, error) {
				name, err := catalog.StringArg(args, "file_name")
				if err != nil {
					return nil, err
				}
				return f.Metadata(ctx, name)
			},
		},
		&catalog.Operation{
			Name:   "scan_gcode_metadata",
			Doc:    "Scan a gcode file for metadata.",
			Params: []catalog.Param{{Name: "file_name"}},
			Invoke: func(ctx context.Context, args map[string]any) (any, error) {
				name, err := catalog.StringArg(args, "file_name")
				if err != nil {
					return nil, err
				}
				return f.MetaScan(ctx, name)
			},
		},
		&catalog.Operation{
			Name:   "get_gcode_thumbnail",
			Doc:    "Retrieve a thumbnail for a gcode file.",
			Params: []catalog.Param{{Name: "file_name"}},
			Invoke: func(ctx context.Context, args map[string]any) (any, error) {
				name, err := catalog.StringArg(args, "file_name")
				if err != nil {
					return nil, err
				}
				return f.Thumbnails(ctx, name)
			},
		},
		&catalog.Operation{
			Name: "get_directory",
			Doc:  "Retrieve a list of files in a directory.",
			Params: []catalog.Param{
				{Name: "path"},
				{Name: "extended", Type: catalog.TypeBoolean, Optional: true},
			},
			Invoke: func(ctx context.Context, args map[string]any) (any, error) {
				path, err := catalog.StringArg(args, "path")
				if err != nil {
					return nil, err
				}
				extended, err := catalog.BoolArg(args, "extended", false)
				if err != nil {
					return nil, err
				}
				return f.Directory(ctx, path, extended)
			},
		},
		&catalog.Operation{
			Name:   "create_directory",
			Doc:    "Create a directory.",
			Params: []catalog.Param{{Name: "path"}},
			Invoke: func(ctx context.Context, args map[string]any) (any, error) {
				path, err := catalog.StringArg(args, "path")
				if err != nil {
					return nil, err
				}
				return f.CreateDirectory(ctx, path)
			},
		},
		&catalog.Operation{
			Name: "delete_directory",
			Doc:  "Delete a directory.",
			Params: []catalog.Param{
				{Name: "path"},
				{Name: "forced", Type: catalog.TypeBoolean, Optional: true},
			},
			Invoke: func(ctx context.Context, args map[string]any) (any, error) {
				path, err := catalog.StringArg(args, "path")
				if err != nil {
					return nil, err
				}
				forced, err := catalog.BoolArg(args, "forced", false)
				if err != nil {
					return nil, err
				}
				return f.DeleteDirectory(ctx, path, forced)
			},
		},
		&catalog.Operation{
			Name:   "move_file",
			Doc:    "Move a file.",
			Params: []catalog.Param{{Name: "source"}, {Name: "destination"}},
			Invoke: func(ctx context.Context, args map[string]any) (any, error) {
				source, err := catalog.StringArg(args, "source")
				if err != nil {
					return nil, err
				}
				destination, err := catalog.StringArg(args, "destination")
				if err != nil {
					return nil, err
				}
				return f.Move(ctx, source, destination)
			},
		},
		&catalog.Operation{
			Name:   "copy_file",
			Doc:    "Copy a file.",
			Params: []catalog.Param{{Name: "source"}, {Name: "destination"}},
			Invoke: func(ctx context.Context, args map[string]any) (any, error) {
				source, err := catalog.StringArg(args, "source")
				if err != nil {
					return nil, err
				}
				destination, err := catalog.StringArg(args, "destination")
				if err != nil {
					return nil, err
				}
				return f.Copy(ctx, source, destination)
			},
		},
		&catalog.Operation{
			Name: "create_zip",
			Doc:  "Create a zip file.",
			// files carries a list; list types degrade to the string tag.
			Params: []catalog.Param{
				{Name: "dest"},
				{Name: "files"},
				{Name: "store_only", Type: catalog.TypeBoolean, Optional: true},
			},
			Invoke: func(ctx context.Context, args map[string]any) (any, error) {
				dest, err := catalog.StringArg(args, "dest")
				if err != nil {
					return nil, err
				}
				files, err := catalog.StringListArg(args, "files")
				if err != nil {
					return nil, err
				}
				storeOnly, err := catalog.BoolArg(args, "store_only", false)
				if err != nil {
					return nil, err
				}
				return f.CreateZip(ctx, dest, files, storeOnly)
			},
		},
		&catalog.Operation{
			Name:   "download_file",
			Doc:    "Download a file.",
			Params: []catalog.Param{{Name: "file_path"}},
			Invoke: func(ctx context.Context, args map[string]any) (any, error) {
				path, err := catalog.StringArg(args, "file_path")
				if err != nil {
					return nil, err
				}
				return f.Download(ctx, path)
			},
		},
		&catalog.Operation{
			Name: "upload_file",
			Doc:  "Upload a file.",
			Params: []catalog.Param{
				{Name: "file_path"},
				{Name: "root", Optional: true},
				{Name: "path", Optional: true},
				{Name: "print_file", Type: catalog.TypeBoolean, Optional: true},
			},
			Invoke: func(ctx context.Context, args map[string]any) (any, error) {
				local, err := catalog.StringArg(args, "file_path")
				if err != nil {
					return nil, err
				}
				root, err := catalog.OptionalStringArg(args, "root", "gcodes")
				if err != nil {
					return nil, err
				}
				remote, err := catalog.OptionalStringArg(args, "path", "")
				if err != nil {
					return nil, err
				}
				printAfter, err := catalog.BoolArg(args, "print_file", false)
				if err != nil {
					return nil, err
				}
				return f.Upload(ctx, local, root, remote, printAfter)
			},
		},
		&catalog.Operation{
			Name:   "file_delete",
			Doc:    "Delete a file.",
			Params: []catalog.Param{{Name: "file_path"}},
			Invoke: func(ctx context.Context, args map[string]any) (any, error) {
				path, err := catalog.StringArg(args, "file_path")
				if err != nil {
					return nil, err
				}
				return f.Delete(ctx, path)
			},
		},
	)
}
