package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

// Func is a single huma middleware.
type Func = func(ctx huma.Context, next func(huma.Context))

// Container собирает цепочки мидлварей для хендлеров: общие идут первыми
// в каждой цепочке, добавленные через Add - только в ближайшую
type Container struct {
	common  huma.Middlewares
	pending huma.Middlewares
}

// NewContainer создает контейнер с общими мидлварями
func NewContainer(common ...Func) *Container {
	mc := &Container{}
	for _, mw := range common {
		mc.common = append(mc.common, mw)
	}
	return mc
}

// Add добавляет мидлварь только в следующую цепочку
func (mc *Container) Add(mw Func) *Container {
	mc.pending = append(mc.pending, mw)
	return mc
}

// GetAllAndClear возвращает общие мидлвари плюс добавленные через Add
// и очищает добавленные. Каждый вызов отдает новый слайс.
func (mc *Container) GetAllAndClear() huma.Middlewares {
	chain := make(huma.Middlewares, 0, len(mc.common)+len(mc.pending))
	chain = append(chain, mc.common...)
	chain = append(chain, mc.pending...)
	mc.pending = nil
	return chain
}
