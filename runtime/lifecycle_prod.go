//go:build !dev

package runtime

import (
	"fmt"

	"github.com/communitycvs/bootcamp/console"
)

// In production builds lifecycle panics are recovered and logged so one
// misbehaving section cannot take down the page.

func recoverLifecycle(hook, key string) {
	if rec := recover(); rec != nil {
		console.Error(fmt.Sprintf("ERROR: %s panic in component %s: %v", hook, key, rec))
	}
}

func callOnInit(initializer Initializer, key string) {
	defer recoverLifecycle("OnInit", key)
	initializer.OnInit()
}

func callOnParametersSet(receiver ParameterReceiver, key string) {
	defer recoverLifecycle("OnParametersSet", key)
	receiver.OnParametersSet()
}

func callOnDestroy(cleaner Cleaner, key string) {
	defer recoverLifecycle("OnDestroy", key)
	cleaner.OnDestroy()
}
