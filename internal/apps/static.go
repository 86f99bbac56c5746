package apps

import (
	"fmt"
	"strings"

	"deskfolio/internal/config/profile"
	"deskfolio/internal/registry"
)

// The static apps render fixed portfolio content from the profile. They carry
// no state and ignore payloads.

type contact struct{ prof profile.Profile }

func newContact(prof profile.Profile) *contact { return &contact{prof: prof} }

func (c *contact) ID() registry.ID { return registry.Contact }
func (c *contact) Title() string   { return "Contact" }

func (c *contact) Render(_ map[string]string, width, height int) []string {
	o := c.prof.Owner
	return []string{
		"",
		"  " + styles.WindowTitle.Render(o.Name),
		"  " + styles.Muted.Render(o.Role),
		"",
		"  email   " + o.Email,
		"  github  " + o.GitHub,
		"  web     " + o.Website,
		"  based   " + o.Location,
	}
}

type resume struct{ prof profile.Profile }

func newResume(prof profile.Profile) *resume { return &resume{prof: prof} }

func (r *resume) ID() registry.ID { return registry.Resume }
func (r *resume) Title() string   { return "Resume" }

func (r *resume) Render(_ map[string]string, width, height int) []string {
	o := r.prof.Owner
	lines := []string{
		"",
		"  " + styles.WindowTitle.Render(o.Name) + "  " + styles.Muted.Render(o.Role),
		"",
		"  Tech stack",
	}
	for _, row := range wrapList(r.prof.TechStack, width-4) {
		lines = append(lines, "    "+row)
	}
	lines = append(lines,
		"",
		"  Experience",
		"    backend services, infra tooling,",
		"    and terminal UIs - details on request.",
		"",
		"  "+styles.Muted.Render("reach out via the contact window"),
	)
	return lines
}

// wrapList joins items with commas, breaking lines at the given width.
func wrapList(items []string, width int) []string {
	if width < 8 {
		width = 8
	}
	var rows []string
	var cur string
	for _, item := range items {
		next := item
		if cur != "" {
			next = cur + ", " + item
		}
		if len(next) > width && cur != "" {
			rows = append(rows, cur)
			cur = item
			continue
		}
		cur = next
	}
	if cur != "" {
		rows = append(rows, cur)
	}
	return rows
}

type safari struct{ prof profile.Profile }

func newSafari(prof profile.Profile) *safari { return &safari{prof: prof} }

func (s *safari) ID() registry.ID { return registry.Safari }
func (s *safari) Title() string   { return "Safari" }

func (s *safari) Render(_ map[string]string, width, height int) []string {
	o := s.prof.Owner
	bar := " ◁ ▷ ⟳  " + styles.Muted.Render("https://"+o.Website)
	return []string{
		bar,
		" " + strings.Repeat("─", max(0, width-2)),
		"",
		"   " + styles.WindowTitle.Render(o.Website),
		"",
		"   Bookmarks",
		"   • " + o.GitHub,
		"   • " + o.Website + "/blog",
		"   • " + o.Website + "/talks",
	}
}

type photos struct{ prof profile.Profile }

func newPhotos(prof profile.Profile) *photos { return &photos{prof: prof} }

func (p *photos) ID() registry.ID { return registry.Photos }
func (p *photos) Title() string   { return "Photos" }

func (p *photos) Render(_ map[string]string, width, height int) []string {
	var names []string
	for _, f := range p.prof.Files {
		if f.Kind == profile.FileImage {
			names = append(names, f.Name)
		}
	}
	lines := []string{"", "  Library - " + fmt.Sprintf("%d items", len(names)), ""}
	for _, name := range names {
		lines = append(lines, "  ▦ "+name)
	}
	if len(names) == 0 {
		lines = append(lines, "  "+styles.Muted.Render("(no photos)"))
	}
	return lines
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
