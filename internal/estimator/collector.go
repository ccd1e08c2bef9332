package estimator

import "aimecost/internal/model"

// BuildDefaultConfigs 为每个预置智能体生成默认用量配置
// 预设默认模型不在可用列表中时回退到第一个可用模型，保证界面默认值永远可选
func BuildDefaultConfigs(presets []model.AgentPreset, availableModels []string) []model.AgentConfig {
	configs := make([]model.AgentConfig, 0, len(presets))
	for _, p := range presets {
		configs = append(configs, model.AgentConfig{
			Agent:        p.Name,
			Model:        defaultModelFor(p, availableModels),
			UsesPerMonth: p.DefaultUsesPerMonth,
			TokensPerUse: p.DefaultTokensPerUse,
		})
	}
	return configs
}

func defaultModelFor(p model.AgentPreset, available []string) string {
	for _, m := range available {
		if m == p.DefaultModel {
			return p.DefaultModel
		}
	}
	if len(available) > 0 {
		return available[0]
	}
	return p.DefaultModel
}
