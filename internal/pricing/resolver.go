package pricing

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const (
	// 远程模型目录 HTTP 超时
	CatalogFetchTimeout = 10 * time.Second
)

// Resolver 价格解析器
// 每次 Resolve 独立执行：拉取一次远程目录，失败时降级到缓存快照或内置价格表
type Resolver struct {
	catalogURL string
	client     *http.Client
}

func NewResolver(catalogURL string) *Resolver {
	return &Resolver{
		catalogURL: catalogURL,
		client:     &http.Client{Timeout: CatalogFetchTimeout},
	}
}

// Resolve 解析当前价格表
// 所有失败路径都在此吸收并降级，调用方永远拿到可用的价格表
func (r *Resolver) Resolve(ctx context.Context) Result {
	body, err := r.fetchCatalog(ctx)
	if err != nil {
		log.Warnf("pricing: catalog fetch failed: %v", err)
		return r.degrade(fmt.Sprintf("获取实时价格失败（%v），已使用本地价格估算", err))
	}

	prices, models, ok := parseCatalog(body)
	if !ok {
		log.Warn("pricing: catalog response malformed")
		return r.degrade("价格目录响应格式异常，已使用本地价格估算")
	}
	if len(models) == 0 {
		// 与网络失败同样降级，但警告保持可区分：这里更可能是目录结构变更而非故障
		log.Warn("pricing: catalog returned no valid model pricing")
		return r.degrade("价格目录未返回有效的模型价格，已使用本地价格估算")
	}

	log.Infof("pricing: loaded %d model prices from catalog", len(models))
	go saveToCache(prices)

	return Result{
		Prices:    prices,
		Models:    models,
		Source:    SourceLive,
		FetchedAt: time.Now(),
	}
}

func (r *Resolver) fetchCatalog(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", r.catalogURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &httpError{StatusCode: resp.StatusCode}
	}

	return io.ReadAll(resp.Body)
}

type httpError struct {
	StatusCode int
}

func (e *httpError) Error() string {
	return "HTTP error: " + http.StatusText(e.StatusCode)
}

// parseCatalog 解析目录响应
// 结构: {data:[{slug, endpoint?:{pricing?:{prompt?, completion?}}}]}
// 价格为字符串形式的每 token 单价；单个模型解析失败只跳过该模型
func parseCatalog(body []byte) (map[string]PriceData, []string, bool) {
	data := gjson.GetBytes(body, "data")
	if !data.IsArray() {
		return nil, nil, false
	}

	prices := make(map[string]PriceData)
	var models []string

	data.ForEach(func(_, m gjson.Result) bool {
		slug := m.Get("slug").String()
		if slug == "" {
			return true
		}
		// 重复 slug 只保留首次出现的条目，模型列表不重复计入
		if _, exists := prices[slug]; exists {
			return true
		}

		endpoint := m.Get("endpoint")
		if !endpoint.Exists() || endpoint.Type == gjson.Null {
			return true
		}

		pricing := endpoint.Get("pricing")
		prompt, ok := parsePrice(pricing.Get("prompt"))
		if !ok {
			return true
		}
		completion, ok := parsePrice(pricing.Get("completion"))
		if !ok {
			return true
		}

		// 全零价格是有效的免费模型，照常收录
		prices[slug] = PriceData{
			PromptCostPerToken:     prompt,
			CompletionCostPerToken: completion,
		}
		models = append(models, slug)
		return true
	})

	return prices, models, true
}

// parsePrice 解析单价字段；缺失或空串按 0 处理，非数字视为无效
func parsePrice(v gjson.Result) (float64, bool) {
	if !v.Exists() || v.String() == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(v.String(), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// degrade 降级取价：优先使用上次成功拉取的缓存快照，其次内置价格表
func (r *Resolver) degrade(warning string) Result {
	if prices, models, ok := loadFromCache(); ok {
		log.Infof("pricing: using %d cached model prices", len(models))
		return Result{
			Prices:    prices,
			Models:    models,
			Source:    SourceCache,
			Warning:   warning,
			FetchedAt: time.Now(),
		}
	}

	prices, models := FallbackPrices()
	return Result{
		Prices:    prices,
		Models:    models,
		Source:    SourceFallback,
		Warning:   warning,
		FetchedAt: time.Now(),
	}
}
