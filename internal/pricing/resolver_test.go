package pricing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

func TestResolveLiveCatalog(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": [
				{"slug": "openai/gpt-4", "endpoint": {"pricing": {"prompt": "0.00003", "completion": "0.00006"}}},
				{"slug": "google/gemma-2-9b", "endpoint": {"pricing": {"prompt": "0", "completion": "0"}}},
				{"slug": "broken/model", "endpoint": {"pricing": {"prompt": "abc", "completion": "0.1"}}},
				{"slug": "no-endpoint/model"},
				{"slug": "empty-pricing/model", "endpoint": {"pricing": {}}},
				{"slug": "openai/gpt-4", "endpoint": {"pricing": {"prompt": "0.5", "completion": "0.5"}}}
			]
		}`))
	}))
	defer ts.Close()

	r := NewResolver(ts.URL)
	result := r.Resolve(context.Background())

	if result.Source != SourceLive {
		t.Fatalf("expected source=live, got %q", result.Source)
	}
	if result.Warning != "" {
		t.Fatalf("expected no warning, got %q", result.Warning)
	}

	if len(result.Models) != 3 {
		t.Fatalf("expected 3 models, got %d: %v", len(result.Models), result.Models)
	}

	// 重复 slug 保留首次出现的价格，模型列表不重复计入
	p, ok := result.Prices["openai/gpt-4"]
	if !ok {
		t.Fatalf("expected openai/gpt-4 in price mapping")
	}
	if p.PromptCostPerToken != 0.00003 || p.CompletionCostPerToken != 0.00006 {
		t.Fatalf("unexpected gpt-4 pricing: %+v", p)
	}
	seen := 0
	for _, m := range result.Models {
		if m == "openai/gpt-4" {
			seen++
		}
	}
	if seen != 1 {
		t.Fatalf("expected duplicate slug listed once, got %d", seen)
	}

	// 全零价格的免费模型要收录
	free, ok := result.Prices["google/gemma-2-9b"]
	if !ok {
		t.Fatalf("expected free model in price mapping")
	}
	if free.PromptCostPerToken != 0 || free.CompletionCostPerToken != 0 {
		t.Fatalf("expected zero pricing for free model, got %+v", free)
	}

	// 价格缺失按 0 处理但模型保留
	if _, ok := result.Prices["empty-pricing/model"]; !ok {
		t.Fatalf("expected empty-pricing model treated as zero-priced")
	}

	// 非数字价格和缺少 endpoint 的条目跳过
	if _, ok := result.Prices["broken/model"]; ok {
		t.Fatalf("expected broken model excluded from mapping")
	}
	if _, ok := result.Prices["no-endpoint/model"]; ok {
		t.Fatalf("expected model without endpoint excluded from mapping")
	}
	for _, m := range result.Models {
		if m == "broken/model" || m == "no-endpoint/model" {
			t.Fatalf("expected %s excluded from model list", m)
		}
	}
}

func TestResolveZeroValidModelsFallsBack(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [
			{"slug": "a/one", "endpoint": {"pricing": {"prompt": "abc"}}},
			{"slug": "b/two"}
		]}`))
	}))
	defer ts.Close()

	r := NewResolver(ts.URL)
	result := r.Resolve(context.Background())

	assertFallback(t, result)
	// 无有效模型的警告要与网络失败可区分
	if !strings.Contains(result.Warning, "未返回有效的模型价格") {
		t.Fatalf("expected no-valid-models warning, got %q", result.Warning)
	}
}

func TestResolveEmptyDataFallsBack(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": []}`))
	}))
	defer ts.Close()

	r := NewResolver(ts.URL)
	result := r.Resolve(context.Background())

	assertFallback(t, result)
	if !strings.Contains(result.Warning, "未返回有效的模型价格") {
		t.Fatalf("expected no-valid-models warning, got %q", result.Warning)
	}
}

func TestResolveHTTPErrorFallsBack(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	r := NewResolver(ts.URL)
	result := r.Resolve(context.Background())

	assertFallback(t, result)
	if !strings.Contains(result.Warning, "获取实时价格失败") {
		t.Fatalf("expected fetch-failure warning, got %q", result.Warning)
	}
}

func TestResolveConnectionFailureFallsBack(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	r := NewResolver(ts.URL)
	result := r.Resolve(context.Background())

	assertFallback(t, result)
	if !strings.Contains(result.Warning, "获取实时价格失败") {
		t.Fatalf("expected fetch-failure warning, got %q", result.Warning)
	}
}

func TestResolveMalformedBodyFallsBack(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`this is not json`))
	}))
	defer ts.Close()

	r := NewResolver(ts.URL)
	result := r.Resolve(context.Background())

	assertFallback(t, result)
	if !strings.Contains(result.Warning, "响应格式异常") {
		t.Fatalf("expected malformed-body warning, got %q", result.Warning)
	}
}

// assertFallback 校验降级结果与内置价格表完全一致（键、值、顺序）
func assertFallback(t *testing.T, result Result) {
	t.Helper()

	if result.Source != SourceFallback {
		t.Fatalf("expected source=fallback, got %q", result.Source)
	}
	if result.Warning == "" {
		t.Fatalf("expected warning on fallback")
	}

	wantPrices, wantModels := FallbackPrices()

	if len(result.Models) != len(wantModels) {
		t.Fatalf("expected %d fallback models, got %d", len(wantModels), len(result.Models))
	}
	for i, m := range wantModels {
		if result.Models[i] != m {
			t.Fatalf("fallback model order mismatch at %d: got %q, want %q", i, result.Models[i], m)
		}
	}

	if len(result.Prices) != len(wantPrices) {
		t.Fatalf("expected %d fallback prices, got %d", len(wantPrices), len(result.Prices))
	}
	for m, want := range wantPrices {
		got, ok := result.Prices[m]
		if !ok {
			t.Fatalf("fallback mapping missing %q", m)
		}
		if got != want {
			t.Fatalf("fallback price mismatch for %q: got %+v, want %+v", m, got, want)
		}
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		name string
		body string
		want float64
		ok   bool
	}{
		{"string number", `{"p": "0.00003"}`, 0.00003, true},
		{"zero", `{"p": "0"}`, 0, true},
		{"empty string", `{"p": ""}`, 0, true},
		{"missing", `{}`, 0, true},
		{"non-numeric", `{"p": "abc"}`, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := parsePrice(gjson.Get(tc.body, "p"))
			if ok != tc.ok || got != tc.want {
				t.Fatalf("parsePrice(%s) = (%v, %v), want (%v, %v)", tc.body, got, ok, tc.want, tc.ok)
			}
		})
	}
}
