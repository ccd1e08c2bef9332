package pricing

import (
	"sort"
	"time"

	"aimecost/internal/database"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// loadFromCache 读取上次成功解析的价格快照
// 数据库未初始化或快照为空时返回 ok=false
func loadFromCache() (map[string]PriceData, []string, bool) {
	db := database.GetDB()
	if db == nil {
		return nil, nil, false
	}

	rows, err := db.Query(`SELECT model, prompt_price, completion_price FROM model_prices`)
	if err != nil {
		log.Warnf("pricing: failed to load cached prices: %v", err)
		return nil, nil, false
	}
	defer rows.Close()

	prices := make(map[string]PriceData)
	for rows.Next() {
		var model string
		var data PriceData
		if err := rows.Scan(&model, &data.PromptCostPerToken, &data.CompletionCostPerToken); err != nil {
			log.Warnf("pricing: failed to scan cached price row: %v", err)
			continue
		}
		prices[model] = data
	}
	if err := rows.Err(); err != nil {
		log.Warnf("pricing: cached price iteration failed: %v", err)
		return nil, nil, false
	}
	if len(prices) == 0 {
		return nil, nil, false
	}

	models := make([]string, 0, len(prices))
	for m := range prices {
		models = append(models, m)
	}
	sort.Strings(models)

	return prices, models, true
}

// saveToCache 将实时解析结果整表落库，作为之后降级时的最近快照
// 只保留最新一份，不保留历史
func saveToCache(prices map[string]PriceData) {
	db := database.GetDB()
	if db == nil {
		return
	}

	tx, err := db.Begin()
	if err != nil {
		log.Warnf("pricing: failed to begin cache transaction: %v", err)
		return
	}

	if _, err := tx.Exec(`DELETE FROM model_prices`); err != nil {
		tx.Rollback()
		log.Warnf("pricing: failed to clear price cache: %v", err)
		return
	}

	stmt, err := tx.Prepare(`
		INSERT INTO model_prices (id, model, prompt_price, completion_price, source, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		log.Warnf("pricing: failed to prepare cache statement: %v", err)
		return
	}
	defer stmt.Close()

	now := time.Now()
	for model, data := range prices {
		if _, err := stmt.Exec(uuid.New().String(), model, data.PromptCostPerToken, data.CompletionCostPerToken, SourceLive, now, now); err != nil {
			log.Warnf("pricing: failed to cache price for %s: %v", model, err)
		}
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		log.Warnf("pricing: failed to commit price cache: %v", err)
		return
	}

	log.Debugf("pricing: cached %d model prices", len(prices))
}
