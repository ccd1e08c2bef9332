package handler

import (
	"errors"
	"net/http"

	"aimecost/internal/estimator"
	"aimecost/internal/model"
	"aimecost/internal/pricing"

	"github.com/gin-gonic/gin"
)

type EstimateHandler struct {
	resolver *pricing.Resolver
}

func NewEstimateHandler(resolver *pricing.Resolver) *EstimateHandler {
	return &EstimateHandler{resolver: resolver}
}

// Bootstrap 返回表单初始化所需的全部数据：可用模型、价格来源和各智能体默认配置
func (h *EstimateHandler) Bootstrap(c *gin.Context) {
	result := h.resolver.Resolve(c.Request.Context())

	presets := estimator.DefaultPresets()
	configs := estimator.BuildDefaultConfigs(presets, result.Models)

	c.JSON(http.StatusOK, gin.H{
		"models":      result.Models,
		"modelCount":  len(result.Models),
		"source":      result.Source,
		"warning":     result.Warning,
		"presets":     presets,
		"defaults":    configs,
		"numTeachers": 1,
	})
}

// ListAgents 返回预置智能体列表
func (h *EstimateHandler) ListAgents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"agents": estimator.DefaultPresets()})
}

// Estimate 按提交的配置计算月度成本
// 价格表按请求重新解析，过期的模型选择会得到显式错误而不是零成本
func (h *EstimateHandler) Estimate(c *gin.Context) {
	var req model.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数无效: " + err.Error()})
		return
	}

	result := h.resolver.Resolve(c.Request.Context())

	summary, err := estimator.Compute(result.Prices, req.Agents, req.NumTeachers)
	if err != nil {
		if errors.Is(err, estimator.ErrModelNotFound) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "成本计算失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary": summary,
		"source":  result.Source,
		"warning": result.Warning,
	})
}
