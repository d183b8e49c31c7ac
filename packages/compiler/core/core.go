package core

import "fmt"

// ViewEncapsulation represents the encapsulation strategy for component styles
type ViewEncapsulation int

const (
	ViewEncapsulationEmulated ViewEncapsulation = iota
	ViewEncapsulationNative
	ViewEncapsulationNone
	ViewEncapsulationShadowDom
)

// String returns the name of the encapsulation mode
func (v ViewEncapsulation) String() string {
	switch v {
	case ViewEncapsulationEmulated:
		return "emulated"
	case ViewEncapsulationNative:
		return "native"
	case ViewEncapsulationNone:
		return "none"
	case ViewEncapsulationShadowDom:
		return "shadow-dom"
	}
	return fmt.Sprintf("ViewEncapsulation(%d)", int(v))
}

// ParseViewEncapsulation parses an encapsulation mode name
func ParseViewEncapsulation(name string) (ViewEncapsulation, error) {
	switch name {
	case "", "emulated":
		return ViewEncapsulationEmulated, nil
	case "native":
		return ViewEncapsulationNative, nil
	case "none":
		return ViewEncapsulationNone, nil
	case "shadow-dom":
		return ViewEncapsulationShadowDom, nil
	}
	return ViewEncapsulationEmulated, fmt.Errorf("unknown view encapsulation %q", name)
}

// ViewEncapsulationPtr returns a pointer to the given encapsulation mode
func ViewEncapsulationPtr(v ViewEncapsulation) *ViewEncapsulation {
	return &v
}
