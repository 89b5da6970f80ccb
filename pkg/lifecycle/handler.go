package lifecycle

import (
	"fmt"

	"github.com/shuldan/locator/pkg/contracts"
)

type PanicHandler interface {
	Handle(lifecycle string, observer contracts.LifecycleObserver, panicValue any, stack []byte)
}

type defaultPanicHandler struct {
	logger contracts.Logger
}

func NewDefaultPanicHandler(logger contracts.Logger) PanicHandler {
	return &defaultPanicHandler{logger: logger}
}

func (d *defaultPanicHandler) Handle(lifecycle string, observer contracts.LifecycleObserver, panicValue any, stack []byte) {
	if d.logger == nil {
		panic(fmt.Sprintf("lifecycle observer panic: lifecycle=%s, observer=%T, panic=%v, stack=%s",
			lifecycle, observer, panicValue, string(stack)))
	}
	d.logger.Critical("lifecycle observer panic", "lifecycle", lifecycle, "observer", fmt.Sprintf("%T", observer),
		"panic_value", panicValue, "stack", string(stack))
}
