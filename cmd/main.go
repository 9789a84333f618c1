package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/smasonuk/loopmesh"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	flags := DefaultConfig()

	cmd := &cobra.Command{
		Use:          "loopmesh",
		Short:        "Refine a closed triangle mesh with Loop subdivision",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := DefaultConfig()
			if configPath != "" {
				var err error
				cfg, err = LoadConfig(configPath)
				if err != nil {
					return err
				}
			}
			cfg = cfg.merge(flags, cmd.Flags().Changed)
			if err := cfg.Validate(); err != nil {
				return err
			}

			level, _ := cfg.Level()
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			return run(cfg, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "TOML config file")
	f.StringVar(&flags.Shape, "shape", flags.Shape, "built-in shape: "+strings.Join(loopmesh.ShapeNames(), ", "))
	f.StringVarP(&flags.Input, "input", "i", flags.Input, "input mesh (.ply, .stl or .dxf), overrides --shape")
	f.StringVarP(&flags.Output, "output", "o", flags.Output, "output mesh (.ply, .stl or .dxf)")
	f.IntVarP(&flags.Rounds, "rounds", "n", flags.Rounds, "number of subdivision rounds")
	f.Float64Var(&flags.Scale, "scale", flags.Scale, "uniform scale applied before subdividing")
	f.Float64Var(&flags.Decimate, "decimate", flags.Decimate, "keep this fraction of triangles before subdividing")
	f.BoolVar(&flags.Wireframe, "wireframe", flags.Wireframe, "also write edges as lines (DXF only)")
	f.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "debug, info, warn or error")

	return cmd
}

func run(cfg Config, out io.Writer) error {
	mesh, err := loadMesh(cfg)
	if err != nil {
		return err
	}
	slog.Info("mesh loaded",
		"vertices", mesh.VertexCount(),
		"faces", mesh.FaceCount(),
		"edges", mesh.EdgeCount())

	if cfg.Scale != 1 {
		if mesh, err = mesh.Scale(cfg.Scale); err != nil {
			return err
		}
	}
	if cfg.Decimate < 1 {
		if mesh, err = loopmesh.Decimate(mesh, cfg.Decimate); err != nil {
			return err
		}
		slog.Info("mesh decimated", "faces", mesh.FaceCount())
	}

	if err := mesh.SubdivideN(cfg.Rounds); err != nil {
		return err
	}

	lo, hi := mesh.Bounds()
	fmt.Fprintf(out, "vertices: %d\nfaces: %d\nedges: %d\neuler: %d\n",
		mesh.VertexCount(), mesh.FaceCount(), mesh.EdgeCount(), mesh.EulerCharacteristic())
	fmt.Fprintf(out, "bounds: %v %v\n", lo, hi)

	if cfg.Output == "" {
		return nil
	}
	if err := saveMesh(cfg.Output, mesh, cfg.Wireframe); err != nil {
		return err
	}
	slog.Info("mesh written", "path", cfg.Output)
	return nil
}

func loadMesh(cfg Config) (*loopmesh.Mesh, error) {
	if cfg.Input == "" {
		b, err := loopmesh.Shape(cfg.Shape)
		if err != nil {
			return nil, err
		}
		return b.Mesh()
	}

	switch strings.ToLower(filepath.Ext(cfg.Input)) {
	case ".stl":
		return loopmesh.LoadSTL(cfg.Input)
	case ".dxf":
		file, err := os.Open(cfg.Input)
		if err != nil {
			return nil, fmt.Errorf("could not open DXF file %s: %w", cfg.Input, err)
		}
		defer file.Close()
		b, err := loopmesh.ReadDXF(file)
		if err != nil {
			return nil, fmt.Errorf("error parsing DXF file %s: %w", cfg.Input, err)
		}
		return b.Mesh()
	default:
		b, err := loopmesh.LoadPLYFile(cfg.Input)
		if err != nil {
			return nil, err
		}
		return b.Mesh()
	}
}

func saveMesh(path string, mesh *loopmesh.Mesh, wireframe bool) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
		return loopmesh.SaveSTL(path, mesh)
	case ".dxf":
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("could not create DXF file %s: %w", path, err)
		}
		defer file.Close()
		if err := loopmesh.WriteDXF(file, mesh, wireframe); err != nil {
			return fmt.Errorf("could not write DXF file %s: %w", path, err)
		}
		return file.Close()
	default:
		return loopmesh.SavePLYFile(path, mesh)
	}
}
