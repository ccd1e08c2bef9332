package model

// AgentPreset 预置的教师智能体及其默认用量画像
type AgentPreset struct {
	Name                string `json:"name"`
	Description         string `json:"description"`
	DefaultModel        string `json:"defaultModel"`
	DefaultUsesPerMonth int    `json:"defaultUsesPerMonth"`
	DefaultTokensPerUse int    `json:"defaultTokensPerUse"`
}

// AgentConfig 单个智能体的用量配置
// 每次提交整组重建，随请求存在，不做持久化
type AgentConfig struct {
	Agent        string `json:"agent" binding:"required"`
	Model        string `json:"model" binding:"required"`
	UsesPerMonth int    `json:"usesPerMonth" binding:"required,min=1"`
	TokensPerUse int    `json:"tokensPerUse" binding:"required,min=10"`
}

// TotalTokens 月度总 token 数，每次计算时从当前输入推导，不缓存
func (c AgentConfig) TotalTokens() int {
	return c.UsesPerMonth * c.TokensPerUse
}

// CostBreakdown 单个智能体的月度成本拆解
type CostBreakdown struct {
	Agent            string  `json:"agent"`
	Model            string  `json:"model"`
	UsesPerMonth     int     `json:"usesPerMonth"`
	TokensPerUse     int     `json:"tokensPerUse"`
	TotalTokens      int     `json:"totalTokens"`
	PromptTokens     float64 `json:"promptTokens"`
	CompletionTokens float64 `json:"completionTokens"`
	PromptCost       float64 `json:"promptCost"`
	CompletionCost   float64 `json:"completionCost"`
	TotalCost        float64 `json:"totalCost"`
	TotalCostUsd     string  `json:"totalCostUsd"`
}

// EstimateRequest 成本估算请求
type EstimateRequest struct {
	NumTeachers int           `json:"numTeachers" binding:"required,min=1"`
	Agents      []AgentConfig `json:"agents" binding:"required,min=1,dive"`
}

// EstimateSummary 成本估算结果
type EstimateSummary struct {
	Breakdowns          []CostBreakdown `json:"breakdowns"`
	NumTeachers         int             `json:"numTeachers"`
	TotalPerTeacher     float64         `json:"totalPerTeacher"`
	TotalAllTeachers    float64         `json:"totalAllTeachers"`
	TotalPerTeacherUsd  string          `json:"totalPerTeacherUsd"`
	TotalAllTeachersUsd string          `json:"totalAllTeachersUsd"`
}
