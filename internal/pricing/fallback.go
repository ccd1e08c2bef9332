package pricing

// 内置兜底价格表，远程目录不可用或为空时使用
// 覆盖一个免费模型、一个小模型和若干商用档位，随二进制编译，不依赖网络
var fallbackModels = []struct {
	model string
	data  PriceData
}{
	// 免费模型
	{"google/gemma-2-9b", PriceData{PromptCostPerToken: 0, CompletionCostPerToken: 0}},
	// 估算值
	{"qwen/qwen3-coder-flash", PriceData{PromptCostPerToken: 0.00000045, CompletionCostPerToken: 0.00000045}},
	// GPT-4 标准价格
	{"openai/gpt-4", PriceData{PromptCostPerToken: 0.00003, CompletionCostPerToken: 0.00006}},
	{"openai/gpt-3.5-turbo", PriceData{PromptCostPerToken: 0.0000005, CompletionCostPerToken: 0.0000015}},
	{"anthropic/claude-3-sonnet", PriceData{PromptCostPerToken: 0.000003, CompletionCostPerToken: 0.000015}},
	{"meta-llama/llama-3.1-8b", PriceData{PromptCostPerToken: 0.0000002, CompletionCostPerToken: 0.0000002}},
}

// FallbackPrices 返回内置价格表的拷贝和固定的模型顺序
func FallbackPrices() (map[string]PriceData, []string) {
	prices := make(map[string]PriceData, len(fallbackModels))
	models := make([]string, 0, len(fallbackModels))
	for _, f := range fallbackModels {
		prices[f.model] = f.data
		models = append(models, f.model)
	}
	return prices, models
}
