package task

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"

	"pos_backoffice_v1/internal/repository"
)

// ==================== DailySummaryTask 每日流水汇总任务 ====================

// DailySummaryTask 每天凌晨汇总前一天的销售/支出，按门店打印到日志
// 只统计 completed 状态的销售
type DailySummaryTask struct {
	saleRepo    repository.SaleRepository
	expenseRepo repository.ExpenseRepository
	cron        *cron.Cron
}

// NewDailySummaryTask 创建每日汇总任务
func NewDailySummaryTask(
	saleRepo repository.SaleRepository,
	expenseRepo repository.ExpenseRepository,
) *DailySummaryTask {
	return &DailySummaryTask{
		saleRepo:    saleRepo,
		expenseRepo: expenseRepo,
		cron:        cron.New(cron.WithSeconds()), // 支持秒级控制
	}
}

// Start 启动定时任务
func (t *DailySummaryTask) Start() {
	// 每天凌晨 2 点跑前一天的账
	_, err := t.cron.AddFunc("0 0 2 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		t.summarizeYesterday(ctx)
	})
	if err != nil {
		log.Fatalf("[DailySummaryTask] 无法启动每日汇总任务: %v", err)
	}

	t.cron.Start()
	log.Println("[DailySummaryTask] 每日流水汇总任务已启动")
}

// Stop 停止定时任务
func (t *DailySummaryTask) Stop() {
	t.cron.Stop()
	log.Println("[DailySummaryTask] 已停止")
}

// RunNow 手动触发一次汇总
func (t *DailySummaryTask) RunNow(ctx context.Context) {
	t.summarizeYesterday(ctx)
}

// summarizeYesterday 汇总前一天 [00:00, 24:00) 的流水
func (t *DailySummaryTask) summarizeYesterday(ctx context.Context) {
	now := time.Now()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	from := to.AddDate(0, 0, -1)

	sales, err := t.saleRepo.SummarizeRange(ctx, from, to)
	if err != nil {
		log.Printf("[DailySummaryTask] 销售汇总失败: %v", err)
		return
	}
	expenses, err := t.expenseRepo.SummarizeRange(ctx, from, to)
	if err != nil {
		log.Printf("[DailySummaryTask] 支出汇总失败: %v", err)
		return
	}

	log.Printf("[DailySummaryTask] %s 日结：%d 家门店有销售，%d 家门店有支出",
		from.Format("2006-01-02"), len(sales), len(expenses))

	expenseByStore := make(map[string]repository.StoreSummary, len(expenses))
	for _, e := range expenses {
		expenseByStore[e.StoreID.String()] = e
	}

	for _, s := range sales {
		expense := expenseByStore[s.StoreID.String()]
		net := s.Total.Sub(expense.Total)
		log.Printf("[DailySummaryTask] 门店 %s：销售 %d 笔共 %s，支出 %d 笔共 %s，净额 %s",
			s.StoreID, s.Count, s.Total, expense.Count, expense.Total, net)
		delete(expenseByStore, s.StoreID.String())
	}

	// 只有支出没有销售的门店
	for _, e := range expenseByStore {
		log.Printf("[DailySummaryTask] 门店 %s：销售 0 笔，支出 %d 笔共 %s，净额 %s",
			e.StoreID, e.Count, e.Total, decimal.Zero.Sub(e.Total))
	}
}
