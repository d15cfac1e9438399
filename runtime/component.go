package runtime

import "github.com/communitycvs/bootcamp/vdom"

// Component interface defines the structure for all components in the framework.
// This interface has NO build tags, making it available to both WASM and native builds.
type Component interface {
	// Render generates the virtual DOM tree for this component.
	// The renderer parameter provides access to framework services like RenderChild.
	Render(r Renderer) *vdom.VNode

	// SetRenderer is called by the framework to attach the renderer to the component.
	// This enables StateHasChanged() to trigger re-renders.
	SetRenderer(r Renderer)
}

// Initializer is implemented by components that need setup before their first render.
type Initializer interface {
	OnInit()
}

// ParameterReceiver is implemented by components that derive state from props.
// OnParametersSet runs before every render, including the first.
type ParameterReceiver interface {
	OnParametersSet()
}

// Cleaner is implemented by components that release resources when unmounted.
type Cleaner interface {
	OnDestroy()
}

// PropUpdater copies props from a freshly built component onto the live instance
// kept at the same key, so the instance keeps its internal state.
type PropUpdater interface {
	ApplyProps(next Component)
}
