// Package file provides a ConfigStore that keeps screen definitions as YAML
// documents on the local filesystem, one file per screen.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/greenscreenhq/greenscreen/pkg/domain"
)

const ext = ".yaml"

// Store implements ports.ConfigStore on a directory of YAML files.
type Store struct {
	BasePath string
}

// New creates a Store rooted at basePath. If basePath is empty it defaults
// to ".greenscreen/screens".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".greenscreen", "screens")
	}
	return &Store{BasePath: basePath}
}

// Save persists the definition atomically: write to a temp file in the same
// directory, fsync, then rename over the destination.
func (s *Store) Save(ctx context.Context, def *domain.ScreenDefinition) error {
	if err := checkName(def.Name); err != nil {
		return err
	}
	if err := os.MkdirAll(s.BasePath, 0o755); err != nil {
		return fmt.Errorf("ensure screen directory: %w", err)
	}

	data, err := Encode(def)
	if err != nil {
		return fmt.Errorf("marshal screen definition: %w", err)
	}

	destPath := filepath.Join(s.BasePath, def.Name+ext)
	tmp, err := os.CreateTemp(s.BasePath, "tmp-"+def.Name+"-*"+ext)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("fsync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Get loads and decodes the named definition. Durations in the document may
// be written either as Go duration strings ("2s") or as plain numbers.
func (s *Store) Get(ctx context.Context, name string) (*domain.ScreenDefinition, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.BasePath, name+ext))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrScreenNotFound
		}
		return nil, fmt.Errorf("read screen file: %w", err)
	}
	return Decode(data)
}

// Delete removes the definition file.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	err := os.Remove(filepath.Join(s.BasePath, name+ext))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete screen file: %w", err)
	}
	return nil
}

// List returns the screen names found in the directory, in directory order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("list screen directory: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ext {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ext))
	}
	return names, nil
}

// Decode parses a YAML screen definition document. Exposed so callers can
// load single documents outside a store directory.
func Decode(data []byte) (*domain.ScreenDefinition, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse screen document: %w", err)
	}

	var def domain.ScreenDefinition
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		Result:           &def,
	})
	if err != nil {
		return nil, fmt.Errorf("build decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode screen document: %w", err)
	}
	if def.Name == "" {
		return nil, fmt.Errorf("screen document missing name")
	}
	return &def, nil
}

// Encode renders a definition as a YAML document with durations as
// strings, so saved files stay human-editable.
func Encode(def *domain.ScreenDefinition) ([]byte, error) {
	return yaml.Marshal(encodeDefinition(def))
}

func encodeDefinition(def *domain.ScreenDefinition) map[string]any {
	fields := make([]map[string]any, 0, len(def.Fields))
	for _, f := range def.Fields {
		fields = append(fields, map[string]any{
			"name":         f.Name,
			"max_length":   f.MaxLength,
			"required":     f.Required,
			"kind":         string(f.Kind),
			"valid_values": f.ValidValues,
			"tabs_filled":  f.TabsFilled,
			"tabs_empty":   f.TabsEmpty,
			"description":  f.Description,
		})
	}
	steps := make([]map[string]any, 0, len(def.Steps))
	for _, st := range def.Steps {
		steps = append(steps, map[string]any{
			"order":           st.Order,
			"screen_contains": st.ScreenContains,
			"action":          string(st.Action),
			"value":           st.Value,
			"wait":            st.Wait.String(),
			"description":     st.Description,
		})
	}
	return map[string]any{
		"name":        def.Name,
		"description": def.Description,
		"option":      def.Option,
		"fields":      fields,
		"steps":       steps,
	}
}

func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("screen name cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return fmt.Errorf("screen name %q is not a valid file name", name)
	}
	return nil
}
