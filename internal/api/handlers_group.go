package api

import "Dresscode/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler     *handler.UserHandler
	OutfitHandler   *handler.OutfitHandler
	ProgressHandler *handler.ProgressHandler
	BillingHandler  *handler.BillingHandler
}
