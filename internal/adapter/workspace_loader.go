package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/dystudio/try/internal/model"
)

// RequestFileSuffix marks workspace request files.
const RequestFileSuffix = ".try.yaml"

// WorkspaceLoader finds and reads workspace request files. It hides direct
// os access so the workflow can be tested without touching the disk.
type WorkspaceLoader interface {
	// Discover expands roots into request files. A root ending in "/..."
	// is searched recursively; a file root is returned as is.
	Discover(roots []m.Path) ([]m.Path, error)
	// Load reads one request file into a workspace.
	Load(path m.Path) (m.Workspace, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalWorkspaceLoader reads request files from the local filesystem.
type LocalWorkspaceLoader struct{}

// NewWorkspaceLoader constructs a LocalWorkspaceLoader.
func NewWorkspaceLoader() *LocalWorkspaceLoader {
	return &LocalWorkspaceLoader{}
}

type workspaceYAML struct {
	WorkspaceType  string       `yaml:"workspaceType"`
	Files          []fileYAML   `yaml:"files"`
	Buffers        []bufferYAML `yaml:"buffers"`
	ActiveBufferID string       `yaml:"activeBufferId"`
	Usings         []string     `yaml:"usings"`
}

type fileYAML struct {
	Name string `yaml:"name"`
	Text string `yaml:"text"`
	Path string `yaml:"path"`
}

type bufferYAML struct {
	ID       string `yaml:"id"`
	Content  string `yaml:"content"`
	Path     string `yaml:"path"`
	Position int    `yaml:"position"`
}

// Discover implements WorkspaceLoader.
func (l *LocalWorkspaceLoader) Discover(roots []m.Path) ([]m.Path, error) {
	if len(roots) == 0 {
		return []m.Path{}, nil
	}

	seen := make(map[string]struct{})

	var found []m.Path

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		found = append(found, m.Path(path))
	}

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := os.Stat(rootPath)
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			add(rootPath)

			continue
		}

		err = l.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if !info.IsDir() && strings.HasSuffix(path, RequestFileSuffix) {
				add(path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(found, func(i, j int) bool { return found[i] < found[j] })
	tracer().Debugf("discovered %d request(s) under %d root(s)", len(found), len(roots))

	return found, nil
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (l *LocalWorkspaceLoader) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && path != rootStr {
			base := filepath.Base(path)
			if !recursive || base == ".git" || base == "vendor" || base == "node_modules" {
				return filepath.SkipDir
			}
		}

		return fn(path, info, nil)
	})
}

// Load implements WorkspaceLoader. File and buffer paths are relative to the
// request file.
func (l *LocalWorkspaceLoader) Load(path m.Path) (m.Workspace, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Workspace{}, fmt.Errorf("read request %s: %w", path, err)
	}

	ws, err := ParseWorkspace(data, filepath.Dir(string(path)))
	if err != nil {
		return m.Workspace{}, fmt.Errorf("load request %s: %w", path, err)
	}

	return ws, nil
}

// ParseWorkspace decodes a request document. baseDir resolves relative
// file and buffer paths.
func ParseWorkspace(data []byte, baseDir string) (m.Workspace, error) {
	var raw workspaceYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return m.Workspace{}, fmt.Errorf("decode request: %w", err)
	}

	ws := m.Workspace{Type: raw.WorkspaceType, Usings: raw.Usings}

	for i, f := range raw.Files {
		if f.Name == "" {
			return m.Workspace{}, fmt.Errorf("file %d has no name", i)
		}

		text, err := inlineOrFile(f.Text, f.Path, baseDir)
		if err != nil {
			return m.Workspace{}, fmt.Errorf("file %s: %w", f.Name, err)
		}

		ws.Files = append(ws.Files, m.SourceFile{Name: f.Name, Text: text})
	}

	for i, b := range raw.Buffers {
		id, err := m.ParseBufferID(b.ID)
		if err != nil {
			return m.Workspace{}, fmt.Errorf("buffer %d: %w", i, err)
		}

		content, err := inlineOrFile(b.Content, b.Path, baseDir)
		if err != nil {
			return m.Workspace{}, fmt.Errorf("buffer %s: %w", id, err)
		}

		if b.Position < 0 || b.Position > len(content) {
			return m.Workspace{}, fmt.Errorf("buffer %s: position %d outside content (length %d)", id, b.Position, len(content))
		}

		ws.Buffers = append(ws.Buffers, m.Buffer{ID: id, Content: content, Position: b.Position})
	}

	if raw.ActiveBufferID != "" {
		id, err := m.ParseBufferID(raw.ActiveBufferID)
		if err != nil {
			return m.Workspace{}, fmt.Errorf("active buffer: %w", err)
		}

		ws.ActiveBufferID = id
	}

	return ws, nil
}

func inlineOrFile(inline, path, baseDir string) (string, error) {
	if path == "" {
		return inline, nil
	}

	if inline != "" {
		return "", errors.New("both inline text and path given")
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if rootStr == "..." {
		return ".", true
	}

	if len(rootStr) >= 4 && rootStr[len(rootStr)-4:] == "/..." {
		return rootStr[:len(rootStr)-4], true
	}

	return rootStr, false
}
