// Package profile holds the portfolio content the desktop presents: owner
// details, the dock layout, and the virtual files the finder exposes. A
// profile can be loaded from a YAML file; otherwise the built-in default is
// used, so the binary runs with zero setup.
package profile

import (
	"fmt"
	"os"
	"strings"

	"deskfolio/internal/logging/events"
	"deskfolio/internal/registry"
	"gopkg.in/yaml.v3"
)

// Owner identifies the person this desktop belongs to.
type Owner struct {
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
	Email    string `yaml:"email"`
	GitHub   string `yaml:"github"`
	Website  string `yaml:"website"`
	Location string `yaml:"location"`
}

// FileKind distinguishes the viewer a virtual file opens in.
type FileKind string

const (
	FileText  FileKind = "text"
	FileImage FileKind = "image"
)

// File is a virtual file shown in the finder and opened by the file viewers.
type File struct {
	Name string   `yaml:"name"`
	Kind FileKind `yaml:"kind"`
	Body string   `yaml:"body"`
}

// Profile is the complete content configuration.
type Profile struct {
	Owner     Owner    `yaml:"owner"`
	TechStack []string `yaml:"techstack"`
	Dock      []string `yaml:"dock"`
	Files     []File   `yaml:"files"`
}

// Default returns the built-in profile used when no YAML file is supplied.
func Default() Profile {
	return Profile{
		Owner: Owner{
			Name:     "Sam Rivera",
			Role:     "Software Engineer",
			Email:    "sam@deskfolio.dev",
			GitHub:   "github.com/samrivera",
			Website:  "deskfolio.dev",
			Location: "Lisbon, PT",
		},
		TechStack: []string{"Go", "TypeScript", "PostgreSQL", "Kubernetes", "gRPC"},
		Dock: []string{
			string(registry.Finder),
			string(registry.Terminal),
			string(registry.Safari),
			string(registry.Photos),
			string(registry.Contact),
			string(registry.Resume),
		},
		Files: []File{
			{
				Name: "about.txt",
				Kind: FileText,
				Body: "Hi, I'm Sam.\n\nI build backend systems and the occasional\nterminal toy, like the one you are looking at.",
			},
			{
				Name: "projects.txt",
				Kind: FileText,
				Body: "deskfolio  - this desktop\nqueuefeed  - exactly-once job queue\ntinyproxy  - HTTP/2 reverse proxy",
			},
			{
				Name: "me.png",
				Kind: FileImage,
				Body: "portrait, 512x512",
			},
		},
	}
}

// Load reads a profile from path, falling back to Default when path is empty.
// Dock entries that do not name a known window are logged and dropped so a
// typo in the YAML cannot wedge the dock.
func Load(path string) (Profile, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile %s: %w", path, err)
	}
	var p Profile
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile %s: %w", path, err)
	}
	p = merge(Default(), p)
	p.Dock = pruneDock(p.Dock)
	return p, nil
}

// merge fills gaps in a loaded profile from the defaults so partial YAML
// files stay usable.
func merge(base, over Profile) Profile {
	out := over
	if out.Owner.Name == "" {
		out.Owner = base.Owner
	}
	if len(out.TechStack) == 0 {
		out.TechStack = base.TechStack
	}
	if len(out.Dock) == 0 {
		out.Dock = base.Dock
	}
	if len(out.Files) == 0 {
		out.Files = base.Files
	}
	return out
}

func pruneDock(entries []string) []string {
	known := make(map[string]struct{})
	for _, id := range registry.Known() {
		known[string(id)] = struct{}{}
	}
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		if _, ok := known[entry]; !ok {
			events.Dock.UnknownItem(entry)
			continue
		}
		out = append(out, entry)
	}
	return out
}

// FileNamed returns the virtual file with the given name.
func (p Profile) FileNamed(name string) (File, bool) {
	for _, f := range p.Files {
		if f.Name == name {
			return f, true
		}
	}
	return File{}, false
}
