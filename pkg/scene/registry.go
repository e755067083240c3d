package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnknownScene is returned by ByName for unregistered scene IDs
	ErrUnknownScene = errors.New("scene: unknown scene")
	// ErrNoAxis is returned for paraxial analysis of a scene without an axis
	ErrNoAxis = errors.New("scene: no optical axis")
)

// SceneInfo represents a built-in scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

type entry struct {
	info  SceneInfo
	build func() (*Scene, error)
}

var builtIn = []entry{
	{SceneInfo{ID: "isolator", Description: "PBS, quarter-wave plate and mirror forming an optical isolator", Group: "Polarization"}, NewIsolatorScene},
	{SceneInfo{ID: "pbs", Description: "Half-wave plate feeding a polarizing beam splitter", Group: "Polarization"}, NewPBSScene},
	{SceneInfo{ID: "telescope", Description: "Keplerian beam expander with two thin lenses", Group: "Imaging"}, NewTelescopeScene},
	{SceneInfo{ID: "glass-slab", Description: "Point source through a glass slab with Fresnel reflections", Group: "Refraction"}, NewSlabScene},
	{SceneInfo{ID: "dichroic-combiner", Description: "Red and blue beams merged by a longpass dichroic", Group: "Wavelength"}, NewDichroicScene},
	{SceneInfo{ID: "cavity", Description: "Two-mirror resonator with a partially transmitting output coupler", Group: "Resonators"}, NewCavityScene},
}

func init() {
	for i := range builtIn {
		builtIn[i].info.DisplayName = titleCase(builtIn[i].info.ID)
	}
}

// Names returns the IDs of every built-in scene in registration order
func Names() []string {
	names := make([]string, len(builtIn))
	for i, e := range builtIn {
		names[i] = e.info.ID
	}
	return names
}

// ListScenes returns the built-in scenes grouped by category, groups sorted by name
func ListScenes() []SceneGroup {
	groupMap := make(map[string][]SceneInfo)
	for _, e := range builtIn {
		groupMap[e.info.Group] = append(groupMap[e.info.Group], e.info)
	}

	var groupNames []string
	for name := range groupMap {
		groupNames = append(groupNames, name)
	}
	sort.Strings(groupNames)

	groups := make([]SceneGroup, 0, len(groupNames))
	for _, name := range groupNames {
		groups = append(groups, SceneGroup{Name: name, Scenes: groupMap[name]})
	}
	return groups
}

// ByName builds the scene with the given ID
func ByName(id string) (*Scene, error) {
	for _, e := range builtIn {
		if e.info.ID == id {
			s, err := e.build()
			if err != nil {
				return nil, fmt.Errorf("scene %s: %w", id, err)
			}
			s.Info = e.info
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownScene, id, strings.Join(Names(), ", "))
}

// titleCase converts an ID to title case
// e.g., "glass-slab" -> "Glass Slab"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
