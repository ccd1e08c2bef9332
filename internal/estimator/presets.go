package estimator

import "aimecost/internal/model"

// 预置的 7 个教师智能体用量画像（按月、按教师）
var agentPresets = []model.AgentPreset{
	{
		Name:                "Curriculum Mapping Agent",
		Description:         "Monthly curriculum analysis",
		DefaultModel:        "google/gemma-3-12b-it",
		DefaultUsesPerMonth: 1,
		DefaultTokensPerUse: 1000,
	},
	{
		Name:                "Content Sourcing Agent",
		Description:         "Finding lesson resources",
		DefaultModel:        "google/gemma-3-12b-it",
		DefaultUsesPerMonth: 1,
		DefaultTokensPerUse: 5000,
	},
	{
		Name:                "Planner Agent",
		Description:         "Bi-weekly lesson planning",
		DefaultModel:        "qwen/qwen3-8b",
		DefaultUsesPerMonth: 4,
		DefaultTokensPerUse: 4000,
	},
	{
		Name:                "Lesson Designer",
		Description:         "Creating lesson activities",
		DefaultModel:        "qwen/qwen3-8b",
		DefaultUsesPerMonth: 4,
		DefaultTokensPerUse: 5000,
	},
	{
		Name:                "Assessment Agent",
		Description:         "Generating assessments",
		DefaultModel:        "qwen/qwen3-8b",
		DefaultUsesPerMonth: 4,
		DefaultTokensPerUse: 5000,
	},
	{
		Name:                "Feedback Agent",
		Description:         "Student feedback review",
		DefaultModel:        "google/gemma-3-12b-it",
		DefaultUsesPerMonth: 4,
		DefaultTokensPerUse: 1000,
	},
	{
		Name:                "Slide Generation Agent",
		Description:         "Creating presentation slides",
		DefaultModel:        "openai/gpt-4.1",
		DefaultUsesPerMonth: 4,
		DefaultTokensPerUse: 4000,
	},
}

// DefaultPresets 返回预置智能体列表的拷贝
func DefaultPresets() []model.AgentPreset {
	out := make([]model.AgentPreset, len(agentPresets))
	copy(out, agentPresets)
	return out
}
