// Package scroll moves the viewport to named sections of the home view.
//
// Each Target is bound to an optional on-screen Anchor. Targets are bound only
// while the home view is mounted; scrolling to an unbound target does
// nothing and reports no error.
package scroll

import "fmt"

// Target names a section of the home view.
type Target int

const (
	About Target = iota
	Curriculum
	Instructors
	Testimonials
)

var targets = []Target{About, Curriculum, Instructors, Testimonials}

// Targets returns every target in page order.
func Targets() []Target {
	return append([]Target(nil), targets...)
}

// ID is the element id of the section.
func (t Target) ID() string {
	switch t {
	case About:
		return "about"
	case Curriculum:
		return "curriculum"
	case Instructors:
		return "instructors"
	case Testimonials:
		return "testimonials"
	default:
		return fmt.Sprintf("section-%d", int(t))
	}
}

// Label is the navigation link text.
func (t Target) Label() string {
	switch t {
	case About:
		return "About"
	case Curriculum:
		return "Curriculum"
	case Instructors:
		return "Instructors"
	case Testimonials:
		return "Success Stories"
	default:
		return t.ID()
	}
}

func (t Target) String() string { return t.ID() }

// Anchor is an on-screen position that can be brought into view.
type Anchor interface {
	ScrollIntoView()
}

// AnchorFunc adapts a function to Anchor.
type AnchorFunc func()

// ScrollIntoView calls f.
func (f AnchorFunc) ScrollIntoView() { f() }

// Scroller maps targets to anchors.
type Scroller struct {
	anchors map[Target]Anchor
	after   []func(Target)
}

// New creates a Scroller with no bound targets.
func New() *Scroller {
	return &Scroller{anchors: make(map[Target]Anchor)}
}

// Bind attaches an anchor to target, replacing any previous one.
func (s *Scroller) Bind(target Target, anchor Anchor) {
	if anchor == nil {
		delete(s.anchors, target)
		return
	}
	s.anchors[target] = anchor
}

// Unbind detaches target.
func (s *Scroller) Unbind(target Target) {
	delete(s.anchors, target)
}

// Bound reports whether target currently has an anchor.
func (s *Scroller) Bound(target Target) bool {
	_, ok := s.anchors[target]
	return ok
}

// AfterScroll registers fn to run after every ScrollTo, found or not.
func (s *Scroller) AfterScroll(fn func(Target)) {
	s.after = append(s.after, fn)
}

// ScrollTo brings target into view if it is bound and reports whether it was.
// The after-scroll hooks run either way.
func (s *Scroller) ScrollTo(target Target) bool {
	anchor, ok := s.anchors[target]
	if ok {
		anchor.ScrollIntoView()
	}
	for _, fn := range s.after {
		fn(target)
	}
	return ok
}
