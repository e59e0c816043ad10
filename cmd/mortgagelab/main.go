package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"MortgageLab/internal/compare"
	"MortgageLab/internal/config"
	"MortgageLab/internal/formula"
	"MortgageLab/internal/recorder"
	"MortgageLab/internal/report"
	"MortgageLab/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] MortgageLab starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	runBatch := func() {
		results, err := compare.Batch(cfg.BuildScenarios(), cfg.Seed)
		if err != nil {
			log.Printf("[ERROR] batch: %v", err)
			return
		}
		fmt.Println(report.FormatComparison(cfg.Title, results))
		for _, res := range results {
			if len(res.Runs) > 1 {
				fmt.Println(report.FormatEnsemble(res))
			}
		}
		if err := rec.RecordBatch(cfg.Title, results); err != nil {
			log.Printf("[ERROR] record batch: %v", err)
		}
	}

	// One-off estimates alongside the batch
	if a := cfg.Affordability; a != nil {
		price, err := formula.MaxPurchasePrice(a.NetMonthlySalary, a.PaymentToSalary,
			a.DownPaymentPct, a.Rate, a.TermYears*12)
		if err != nil {
			log.Printf("[ERROR] affordability: %v", err)
		} else {
			fmt.Println(report.FormatAffordability(price, a.NetMonthlySalary, a.PaymentToSalary))
		}
	}
	if p := cfg.PurchaseCosts; p != nil {
		costs := formula.EstimatePurchaseCosts(formula.CostInputs{
			Price:          p.Price,
			NewBuild:       p.NewBuild,
			Agency:         p.Agency,
			TransferTaxPct: p.TransferTaxPct,
		})
		fmt.Println(report.FormatCosts(costs))
	}

	runBatch()

	// Without watch mode this is a one-shot run.
	if cfg.Watch.Cron == "" {
		log.Println("[INFO] MortgageLab done")
		return
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.New(ctx, runBatch)
	if err := sched.Register(cfg.Watch.Cron); err != nil {
		log.Fatalf("[FATAL] register watch task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	log.Println("[INFO] MortgageLab watching. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] MortgageLab stopped")
}
