package estimator

import (
	"errors"
	"fmt"

	"aimecost/internal/model"
	"aimecost/internal/pricing"

	"github.com/shopspring/decimal"
)

// prompt/completion token 占比按 70/30 固定拆分
const (
	PromptTokenShare     = 0.7
	CompletionTokenShare = 0.3
)

var ErrModelNotFound = errors.New("模型不在价格表中")

// Compute 计算每个智能体的月度成本及汇总
// 配置引用的模型必须存在于价格表，否则显式报错而不是按零价静默低估
func Compute(prices map[string]pricing.PriceData, configs []model.AgentConfig, numTeachers int) (*model.EstimateSummary, error) {
	if numTeachers < 1 {
		return nil, fmt.Errorf("estimator: invalid teacher count %d", numTeachers)
	}

	breakdowns := make([]model.CostBreakdown, 0, len(configs))
	var totalPerTeacher float64

	for _, cfg := range configs {
		price, ok := prices[cfg.Model]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, cfg.Model)
		}

		totalTokens := cfg.TotalTokens()
		promptTokens := float64(totalTokens) * PromptTokenShare
		completionTokens := float64(totalTokens) * CompletionTokenShare
		promptCost := promptTokens * price.PromptCostPerToken
		completionCost := completionTokens * price.CompletionCostPerToken
		totalCost := promptCost + completionCost
		totalPerTeacher += totalCost

		breakdowns = append(breakdowns, model.CostBreakdown{
			Agent:            cfg.Agent,
			Model:            cfg.Model,
			UsesPerMonth:     cfg.UsesPerMonth,
			TokensPerUse:     cfg.TokensPerUse,
			TotalTokens:      totalTokens,
			PromptTokens:     promptTokens,
			CompletionTokens: completionTokens,
			PromptCost:       promptCost,
			CompletionCost:   completionCost,
			TotalCost:        totalCost,
			TotalCostUsd:     formatUsd(totalCost, 6),
		})
	}

	totalAll := totalPerTeacher * float64(numTeachers)

	return &model.EstimateSummary{
		Breakdowns:          breakdowns,
		NumTeachers:         numTeachers,
		TotalPerTeacher:     totalPerTeacher,
		TotalAllTeachers:    totalAll,
		TotalPerTeacherUsd:  formatUsd(totalPerTeacher, 6),
		TotalAllTeachersUsd: formatUsd(totalAll, 2),
	}, nil
}

// formatUsd 货币展示格式化；计算链路本身保持 float64
func formatUsd(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}
