package prompt

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// promptFile is the on-disk form of a named template.
// Exactly one of Text or Messages must be set.
type promptFile struct {
	Name     string    `json:"name" yaml:"name" toml:"name"`
	Text     string    `json:"text" yaml:"text" toml:"text"`
	Messages []Segment `json:"messages" yaml:"messages" toml:"messages"`
}

// Library holds named templates loaded from a directory of .yaml, .yml,
// .toml, or .json prompt files. Safe for concurrent use; Watch swaps the
// loaded set atomically on file changes.
type Library struct {
	dir    string
	logger *slog.Logger

	mu    sync.RWMutex
	texts map[string]*Template
	chats map[string]*ChatTemplate
}

// NewLibrary loads every prompt file in dir (non-recursive).
// Unknown extensions are skipped; a malformed file fails the whole load.
func NewLibrary(dir string) (*Library, error) {
	l := &Library{
		dir:    dir,
		logger: slog.Default().With("component", "prompt.library"),
	}
	if err := l.Reload(); err != nil {
		return nil, err
	}
	return l, nil
}

// Reload re-reads the directory and atomically replaces the loaded set.
// On error the previously loaded templates stay in place.
func (l *Library) Reload() error {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return fmt.Errorf("read prompt dir: %w", err)
	}

	texts := make(map[string]*Template)
	chats := make(map[string]*ChatTemplate)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(l.dir, entry.Name())
		pf, err := loadPromptFile(path)
		if err != nil {
			return err
		}
		if pf == nil {
			continue // unknown extension
		}

		name := pf.Name
		if name == "" {
			name = strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		}
		if _, dup := texts[name]; dup {
			return fmt.Errorf("duplicate prompt name %q in %s", name, path)
		}
		if _, dup := chats[name]; dup {
			return fmt.Errorf("duplicate prompt name %q in %s", name, path)
		}

		switch {
		case pf.Text != "" && len(pf.Messages) > 0:
			return fmt.Errorf("%s: prompt %q sets both text and messages", path, name)
		case pf.Text != "":
			tmpl, err := New(pf.Text)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			texts[name] = tmpl
		case len(pf.Messages) > 0:
			ct, err := NewChat(pf.Messages...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			chats[name] = ct
		default:
			return fmt.Errorf("%s: prompt %q has neither text nor messages", path, name)
		}
	}

	l.mu.Lock()
	l.texts = texts
	l.chats = chats
	l.mu.Unlock()
	return nil
}

// loadPromptFile parses one prompt file by extension.
// Returns (nil, nil) for extensions the library does not handle.
func loadPromptFile(path string) (*promptFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prompt file: %w", err)
	}

	var pf promptFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &pf); err != nil {
			return nil, fmt.Errorf("%s: parse yaml: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &pf); err != nil {
			return nil, fmt.Errorf("%s: parse toml: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &pf); err != nil {
			return nil, fmt.Errorf("%s: parse json: %w", path, err)
		}
	default:
		return nil, nil
	}
	return &pf, nil
}

// Text looks up a plain-text template by name.
func (l *Library) Text(name string) (*Template, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	tmpl, ok := l.texts[name]
	return tmpl, ok
}

// Chat looks up a chat template by name.
func (l *Library) Chat(name string) (*ChatTemplate, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	ct, ok := l.chats[name]
	return ct, ok
}

// Names returns all loaded template names, sorted.
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.texts)+len(l.chats))
	for name := range l.texts {
		names = append(names, name)
	}
	for name := range l.chats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Watch reloads the library whenever a file in the directory changes.
// Blocks until ctx is cancelled or the watcher fails. Reload errors are
// logged and the previous set stays in place.
func (l *Library) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(l.dir); err != nil {
		return fmt.Errorf("watch %s: %w", l.dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if err := l.Reload(); err != nil {
				l.logger.Warn("prompt reload failed, keeping previous set",
					"dir", l.dir, "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher: %w", err)
		}
	}
}
