package main

import (
	"encoding/json"
	"fmt"

	"github.com/tailscale/hujson"

	"github.com/omarelmalki/image-database-manager/pkg/fs"
	"github.com/omarelmalki/image-database-manager/pkg/imgstore"
)

// createConfig mirrors imgstore.Options with JSON field names matching
// the on-disk header's own vocabulary, loaded from an optional HuJSON
// (JSON-with-comments) file passed to "imgstore create --config".
// Grounded on the teacher's config.go: hujson.Standardize then
// json.Unmarshal.
type createConfig struct {
	MaxFiles    uint32 `json:"max_files"`
	ThumbWidth  uint16 `json:"thumb_w"`
	ThumbHeight uint16 `json:"thumb_h"`
	SmallWidth  uint16 `json:"small_w"`
	SmallHeight uint16 `json:"small_h"`
}

func loadCreateConfig(fsys fs.FS, path string) (imgstore.Options, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return imgstore.Options{}, fmt.Errorf("reading config %q: %w", path, err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return imgstore.Options{}, fmt.Errorf("invalid JWCC in %q: %w", path, err)
	}

	cfg := createConfig{}
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return imgstore.Options{}, fmt.Errorf("invalid config %q: %w", path, err)
	}

	return imgstore.Options{
		MaxFiles:    cfg.MaxFiles,
		ThumbWidth:  cfg.ThumbWidth,
		ThumbHeight: cfg.ThumbHeight,
		SmallWidth:  cfg.SmallWidth,
		SmallHeight: cfg.SmallHeight,
	}, nil
}
