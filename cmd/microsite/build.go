package main

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/detroitcommercial/microsite/internal/components"
	"github.com/detroitcommercial/microsite/internal/config"
	"github.com/detroitcommercial/microsite/internal/content"
)

type buildOptions struct {
	OutDir      string
	ContentFile string
	AssetsDir   string
	StaticDir   string
	Year        int
}

func newBuildCmd(cfg *config.Config) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the landing page as static files",
		Long: `build renders index.html and copies the media assets next to it so the
page can be hosted by any static file server. When the static directory
holds a compiled client, it is copied to static/ and the page loads it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.SetDefault(cfg.NewLogger(os.Stderr))
			return runBuild(buildOptions{
				OutDir:      outDir,
				ContentFile: cfg.ContentFile,
				AssetsDir:   cfg.AssetsDir,
				StaticDir:   cfg.StaticDir,
				Year:        time.Now().Year(),
			})
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&outDir, "out", "o", "dist", "output directory")
	flags.String("content", "", "YAML content file (overrides CONTENT_FILE)")
	flags.String("assets", "", "directory holding images/, video/ and audio/ (overrides ASSETS_DIR)")
	flags.String("static", "", "directory holding app.wasm and wasm_exec.js (overrides STATIC_DIR)")
	return cmd
}

func runBuild(opts buildOptions) error {
	page := content.Default()
	if opts.ContentFile != "" {
		loaded, err := content.Load(opts.ContentFile)
		if err != nil {
			return fmt.Errorf("load content: %w", err)
		}
		page = loaded
	}

	if err := os.MkdirAll(opts.OutDir, os.ModePerm); err != nil {
		return fmt.Errorf("create output directory %s: %w", opts.OutDir, err)
	}

	if isDir(opts.AssetsDir) {
		if err := copyDirContents(opts.AssetsDir, opts.OutDir); err != nil {
			return fmt.Errorf("copy assets: %w", err)
		}
		slog.Info("assets copied", "from", opts.AssetsDir)
	} else if opts.AssetsDir != "" {
		slog.Warn("assets directory not found, skipping copy", "dir", opts.AssetsDir)
	}

	interactive := false
	if opts.StaticDir != "" && isFile(filepath.Join(opts.StaticDir, "app.wasm")) {
		if err := copyDirContents(opts.StaticDir, filepath.Join(opts.OutDir, "static")); err != nil {
			return fmt.Errorf("copy client: %w", err)
		}
		interactive = true
	}

	indexPath := filepath.Join(opts.OutDir, "index.html")
	f, err := os.Create(indexPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", indexPath, err)
	}
	defer f.Close()

	landing := components.Landing(page, components.PageConfig{Interactive: interactive}, opts.Year)
	if err := landing.Render(f); err != nil {
		return fmt.Errorf("render %s: %w", indexPath, err)
	}
	slog.Info("static export written", "path", indexPath, "interactive", interactive)
	return f.Close()
}

func copyDirContents(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("relative path for %s: %w", path, err)
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, os.ModePerm)
		}
		return copyFile(path, target)
	})
}

func copyFile(srcFile, dstFile string) error {
	in, err := os.Open(srcFile)
	if err != nil {
		return fmt.Errorf("open %s: %w", srcFile, err)
	}
	defer in.Close()

	out, err := os.Create(dstFile)
	if err != nil {
		return fmt.Errorf("create %s: %w", dstFile, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", srcFile, err)
	}
	return out.Close()
}

func isDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
