package optics

import (
	"fmt"
	"sort"

	"github.com/df07/go-optical-raytracer/pkg/geometry"
	"seehuhn.de/go/geom/vec"
)

// Spec is an element description as supplied by a caller such as an editor
type Spec struct {
	Kind         string
	A, B         vec.Vec2
	AngleDeg     float64
	Name         string
	Props        map[string]float64
	PassType     string
	IsPolarizing bool
}

// Property keys understood by Build, with their defaults per kind
var defaultProps = [NumKinds]map[string]float64{
	KindRefractive:   {"n1": 1.0, "n2": 1.5},
	KindLens:         {"efl_mm": 100},
	KindMirror:       {"reflectivity": 1.0},
	KindBeamSplitter: {"split_T": 50, "split_R": 50, "pbs_axis_deg": 0},
	KindDichroic:     {"cutoff_wavelength_nm": 550, "transition_width_nm": 10},
	KindWaveplate:    {"phase_shift_deg": 90, "fast_axis_deg": 0},
}

// Build converts a Spec into its element variant. Unknown kinds and property
// keys are rejected, and the result is checked with Validate.
func Build(s Spec) (Element, error) {
	kind, err := ParseKind(s.Kind)
	if err != nil {
		return nil, err
	}
	props, err := resolveProps(kind, s.Props)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", kind, s.Name, err)
	}

	g := Geometry{Segment: geometry.NewSegment(s.A, s.B), AngleDeg: s.AngleDeg, Name: s.Name}

	var el Element
	switch kind {
	case KindRefractive:
		el = NewRefractive(g, props["n1"], props["n2"])
	case KindLens:
		el = NewLens(g, props["efl_mm"])
	case KindMirror:
		el = NewMirror(g, props["reflectivity"])
	case KindBeamSplitter:
		el = &BeamSplitter{
			Geometry:   g,
			SplitT:     props["split_T"],
			SplitR:     props["split_R"],
			Polarizing: s.IsPolarizing,
			PBSAxisDeg: props["pbs_axis_deg"],
		}
	case KindDichroic:
		pass := Longpass
		if s.PassType != "" {
			if pass, err = ParsePassType(s.PassType); err != nil {
				return nil, err
			}
		}
		el = NewDichroic(g, props["cutoff_wavelength_nm"], props["transition_width_nm"], pass)
	case KindWaveplate:
		el = NewWaveplate(g, props["phase_shift_deg"], props["fast_axis_deg"])
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}

	if err := Validate(el); err != nil {
		return nil, fmt.Errorf("%s %q: %w", kind, s.Name, err)
	}
	return el, nil
}

// BuildAll builds every spec, stopping at the first failure
func BuildAll(specs []Spec) ([]Element, error) {
	elements := make([]Element, 0, len(specs))
	for i, s := range specs {
		el, err := Build(s)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		elements = append(elements, el)
	}
	return elements, nil
}

func resolveProps(kind Kind, given map[string]float64) (map[string]float64, error) {
	defaults := defaultProps[kind]
	props := make(map[string]float64, len(defaults))
	for k, v := range defaults {
		props[k] = v
	}

	var unknown []string
	for k, v := range given {
		if _, ok := defaults[k]; !ok {
			unknown = append(unknown, k)
			continue
		}
		props[k] = v
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%w: unknown keys %v", ErrInvalidProperty, unknown)
	}
	return props, nil
}
