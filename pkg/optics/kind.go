package optics

import (
	"fmt"
	"strings"
)

// Kind identifies the interaction model of an element
type Kind int

const (
	KindRefractive Kind = iota
	KindLens
	KindMirror
	KindBeamSplitter
	KindDichroic
	KindWaveplate

	// NumKinds is the number of element kinds
	NumKinds = int(KindWaveplate) + 1
)

var kindNames = [NumKinds]string{
	KindRefractive:   "refractive",
	KindLens:         "lens",
	KindMirror:       "mirror",
	KindBeamSplitter: "beam_splitter",
	KindDichroic:     "dichroic",
	KindWaveplate:    "waveplate",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= NumKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a kind tag to a Kind
func ParseKind(tag string) (Kind, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(tag)), "-", "_")
	for k, name := range kindNames {
		if name == norm {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, tag)
}
