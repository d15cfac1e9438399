package runtime

import "github.com/communitycvs/bootcamp/vdom"

// RootKey is the instance key of the root component.
const RootKey = "__root__"

// Tree keeps component instances alive across render cycles, keyed by their
// position, and runs lifecycle hooks. A component that is not rendered during
// a cycle is unmounted at the end of it: OnDestroy runs and the instance is
// dropped, so rendering the same key later starts from a fresh instance.
//
// Tree has no build tags; the browser renderer and the native renderers share it.
type Tree struct {
	instances  map[string]Component
	activeKeys map[string]bool
	order      []string // mount order, used to unmount deterministically
}

// NewTree creates an empty instance tree.
func NewTree() *Tree {
	return &Tree{
		instances:  make(map[string]Component),
		activeKeys: make(map[string]bool),
	}
}

// Render runs one full cycle for root and returns its VDOM.
func (t *Tree) Render(r Renderer, root Component) *vdom.VNode {
	t.activeKeys = make(map[string]bool)
	n := t.Child(r, RootKey, root)
	t.cleanupUnmounted()
	return n
}

// Child renders the component mounted at key. The first time a key is seen
// childWithProps becomes the live instance; afterwards the existing instance
// is reused and receives new props through PropUpdater.
func (t *Tree) Child(r Renderer, key string, childWithProps Component) *vdom.VNode {
	t.activeKeys[key] = true

	instance, exists := t.instances[key]
	if !exists {
		instance = childWithProps
		t.instances[key] = instance
		t.order = append(t.order, key)
	} else if instance != childWithProps {
		if updater, ok := instance.(PropUpdater); ok {
			updater.ApplyProps(childWithProps)
		}
	}

	instance.SetRenderer(r)

	if !exists {
		if initializer, ok := instance.(Initializer); ok {
			callOnInit(initializer, key)
		}
	}

	if receiver, ok := instance.(ParameterReceiver); ok {
		callOnParametersSet(receiver, key)
	}

	n := instance.Render(r)
	// A component that returns its child's node directly keeps the innermost key.
	if n != nil && n.ComponentKey == "" {
		n.ComponentKey = key
	}
	return n
}

// Instance returns the live component mounted at key.
func (t *Tree) Instance(key string) (Component, bool) {
	c, ok := t.instances[key]
	return c, ok
}

// Mounted returns the keys of the live instances in mount order.
func (t *Tree) Mounted() []string {
	return append([]string(nil), t.order...)
}

// cleanupUnmounted removes components that were not rendered in this cycle
// and calls their OnDestroy lifecycle method.
func (t *Tree) cleanupUnmounted() {
	kept := t.order[:0]
	for _, key := range t.order {
		if t.activeKeys[key] {
			kept = append(kept, key)
			continue
		}
		if cleaner, ok := t.instances[key].(Cleaner); ok {
			callOnDestroy(cleaner, key)
		}
		delete(t.instances, key)
	}
	t.order = kept
}
