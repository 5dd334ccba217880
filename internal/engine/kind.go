package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind selects the transition algorithm. The set is closed; RenderFrame
// dispatches exhaustively over it.
type Kind int

const (
	SlideLeft Kind = iota
	SlideRight
	SlideUp
	SlideDown
	BoxIn
	BoxOut
	FadeBlack
	CrossFade
	PageTurnH
	PageTurnV
	ShutterOpen
	FlyAway
	Cube
	Ring
	BlurFade
	LumaWipe

	numKinds
)

var kindNames = [numKinds]string{
	SlideLeft:   "slide-left",
	SlideRight:  "slide-right",
	SlideUp:     "slide-up",
	SlideDown:   "slide-down",
	BoxIn:       "box-in",
	BoxOut:      "box-out",
	FadeBlack:   "fade-black",
	CrossFade:   "crossfade",
	PageTurnH:   "pageturn-h",
	PageTurnV:   "pageturn-v",
	ShutterOpen: "shutter-open",
	FlyAway:     "fly-away",
	Cube:        "cube",
	Ring:        "ring",
	BlurFade:    "blur-fade",
	LumaWipe:    "luma-wipe",
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k is one of the sixteen transition kinds.
func (k Kind) Valid() bool {
	return k >= 0 && k < numKinds
}

// Kinds returns all transition kinds in identity order.
func Kinds() []Kind {
	all := make([]Kind, numKinds)
	for i := range all {
		all[i] = Kind(i)
	}
	return all
}

// ParseKind accepts a kind name or its integer identity.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	if n, err := strconv.Atoi(name); err == nil {
		k := Kind(n)
		if k.Valid() {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown transition kind %q", s)
}
