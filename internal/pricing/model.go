package pricing

import "time"

// PriceData 模型价格数据
// 单位: USD per token，prompt 与 completion 分开计价
type PriceData struct {
	PromptCostPerToken     float64 `json:"prompt_cost_per_token"`
	CompletionCostPerToken float64 `json:"completion_cost_per_token"`
}

// 价格数据来源标记
const (
	SourceLive     = "live"
	SourceCache    = "cache"
	SourceFallback = "fallback"
)

// Result 一次价格解析的结果
// 解析永远产出可用的价格表；Source 标记数据来源，降级时 Warning 携带用户可见提示
type Result struct {
	Prices    map[string]PriceData `json:"prices"`
	Models    []string             `json:"models"`
	Source    string               `json:"source"`
	Warning   string               `json:"warning,omitempty"`
	FetchedAt time.Time            `json:"fetchedAt"`
}
