// Package sprite resolves the icon shown for each predicted special.
package sprite

import (
	"log/slog"
	"path"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"VorkathHelper/encounter"
)

// ContentReader reads icon files, usually from the embedded assets.
type ContentReader interface {
	ReadFile(name string) ([]byte, error)
}

// Manager loads icons lazily and caches them.
type Manager struct {
	content     ContentReader
	files       map[encounter.Special]string
	cache       map[encounter.Special]fyne.Resource
	placeholder fyne.Resource
}

// NewManager creates a manager for the given special -> file mapping.
func NewManager(content ContentReader, files map[encounter.Special]string) *Manager {
	return &Manager{
		content:     content,
		files:       files,
		cache:       make(map[encounter.Special]fyne.Resource),
		placeholder: theme.QuestionIcon(),
	}
}

// Icon returns the icon for s, or the placeholder when none can be loaded.
func (m *Manager) Icon(s encounter.Special) fyne.Resource {
	if res, ok := m.cache[s]; ok {
		return res
	}

	res := m.placeholder
	if file, ok := m.files[s]; ok && file != "" {
		data, err := m.content.ReadFile(file)
		if err != nil {
			slog.Warn("icon unavailable, using placeholder", "special", s, "path", file, "err", err)
		} else {
			res = fyne.NewStaticResource(path.Base(file), data)
		}
	}
	m.cache[s] = res
	return res
}

// Placeholder returns the icon used when nothing is configured.
func (m *Manager) Placeholder() fyne.Resource {
	return m.placeholder
}
