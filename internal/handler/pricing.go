package handler

import (
	"net/http"

	"aimecost/internal/pricing"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	resolver *pricing.Resolver
}

func NewPricingHandler(resolver *pricing.Resolver) *PricingHandler {
	return &PricingHandler{resolver: resolver}
}

// GetPricing 返回本次解析到的完整价格表及其来源
func (h *PricingHandler) GetPricing(c *gin.Context) {
	result := h.resolver.Resolve(c.Request.Context())
	c.JSON(http.StatusOK, result)
}
