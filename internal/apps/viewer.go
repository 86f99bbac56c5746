package apps

import (
	"strings"

	"deskfolio/internal/config/profile"
	"deskfolio/internal/registry"
)

// The file viewers render whichever virtual file their window payload names.
// Payloads are cleared when a window closes, so both viewers must cope with
// an absent or dangling file reference.

const payloadFileKey = "file"

type textViewer struct{ prof profile.Profile }

func newTextViewer(prof profile.Profile) *textViewer { return &textViewer{prof: prof} }

func (v *textViewer) ID() registry.ID { return registry.TxtFile }

func (v *textViewer) Title() string { return "TextEdit" }

func (v *textViewer) Render(payload map[string]string, width, height int) []string {
	name := payload[payloadFileKey]
	if name == "" {
		return []string{"", "  " + styles.Muted.Render("no file selected - open one from the finder")}
	}
	file, ok := v.prof.FileNamed(name)
	if !ok || file.Kind != profile.FileText {
		return []string{"", "  " + styles.Error.Render(name+": not a readable file")}
	}
	lines := []string{" " + styles.Muted.Render(name), ""}
	for _, row := range strings.Split(file.Body, "\n") {
		lines = append(lines, "  "+row)
	}
	return lines
}

type imageViewer struct{ prof profile.Profile }

func newImageViewer(prof profile.Profile) *imageViewer { return &imageViewer{prof: prof} }

func (v *imageViewer) ID() registry.ID { return registry.ImgFile }

func (v *imageViewer) Title() string { return "Preview" }

func (v *imageViewer) Render(payload map[string]string, width, height int) []string {
	name := payload[payloadFileKey]
	if name == "" {
		return []string{"", "  " + styles.Muted.Render("no image selected")}
	}
	file, ok := v.prof.FileNamed(name)
	if !ok || file.Kind != profile.FileImage {
		return []string{"", "  " + styles.Error.Render(name+": not an image")}
	}
	// A framed placeholder stands in for pixel data.
	inner := width - 8
	if inner < 6 {
		inner = 6
	}
	top := "  ┌" + strings.Repeat("─", inner) + "┐"
	mid := "  │" + center("▦ "+name, inner) + "│"
	meta := "  │" + center(file.Body, inner) + "│"
	bottom := "  └" + strings.Repeat("─", inner) + "┘"
	return []string{"", top, mid, meta, bottom}
}

func center(text string, width int) string {
	runes := []rune(text)
	if len(runes) >= width {
		return string(runes[:width])
	}
	pad := width - len(runes)
	left := pad / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
}
