//go:build dev

package runtime

// In dev builds lifecycle panics propagate to aid debugging and fast failure.

func callOnInit(initializer Initializer, key string) {
	initializer.OnInit()
}

func callOnParametersSet(receiver ParameterReceiver, key string) {
	receiver.OnParametersSet()
}

func callOnDestroy(cleaner Cleaner, key string) {
	cleaner.OnDestroy()
}
