package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"StockScope/internal/collector"
	"StockScope/internal/config"
	"StockScope/internal/portfolio"
	"StockScope/internal/report"
	"StockScope/internal/scheduler"
	"StockScope/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockScope starting...")

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

	// Init remote source
	var src collector.Source
	if cfg.DataSource.Provider == "eastmoney" {
		src = collector.NewEastMoneySource(cfg.DataSource.Proxy)
	} else {
		src = collector.NewYahooSource(cfg.DataSource.Proxy)
	}
	log.Printf("[INFO] data source: %s", src.Name())

	// Init store
	var st store.Store
	if cfg.Database.SQLitePath != "" {
		ss, err := store.NewSQLiteStore(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite store failed, using in-memory cache: %v", err)
			st = store.NewMemoryStore()
		} else {
			st = ss
			defer ss.Close()
		}
	} else {
		st = store.NewMemoryStore()
	}

	fetcher := collector.NewFetcher(st, src, cfg.Fetch.Years)
	analyzer := portfolio.NewAnalyzer(fetcher)

	// Optional background cache refresh
	if cfg.Schedule.RefreshCron != "" {
		sched := scheduler.NewScheduler(fetcher, cfg.Schedule.Watchlist)
		if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
			log.Fatalf("[FATAL] register refresh task: %v", err)
		}
		sched.Start()
		defer sched.Stop()
	}

	runPrompt(analyzer, st)
	log.Println("[INFO] StockScope stopped")
}

func runPrompt(analyzer *portfolio.Analyzer, st store.Store) {
	fmt.Println("Enter a portfolio spec like AAPL:0.4,GOOGL:0.6 (q to quit).")
	fmt.Println("Commands: save <name> <spec> | load <id>")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "q") {
			break
		}
		handleLine(analyzer, st, line)
	}
}

func handleLine(analyzer *portfolio.Analyzer, st store.Store, line string) {
	switch fields := strings.Fields(line); {
	case fields[0] == "save" && len(fields) >= 3:
		spec := fields[len(fields)-1]
		name := strings.Join(fields[1:len(fields)-1], " ")
		weights, err := portfolio.ParseSpec(spec)
		if err != nil {
			fmt.Printf("cannot save: %v\n", err)
			return
		}
		id, err := st.SavePortfolio(name, spec, weights)
		if err != nil {
			fmt.Printf("cannot save: %v\n", err)
			return
		}
		fmt.Printf("saved portfolio %q as id %d\n", name, id)

	case fields[0] == "load" && len(fields) == 2:
		id, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			fmt.Printf("bad id %q\n", fields[1])
			return
		}
		saved, err := st.GetPortfolio(id)
		if err != nil {
			fmt.Printf("load failed: %v\n", err)
			return
		}
		if saved == nil {
			fmt.Printf("no portfolio with id %d\n", id)
			return
		}
		analyze(analyzer, portfolio.FormatWeights(saved.Weights))

	default:
		analyze(analyzer, line)
	}
}

func analyze(analyzer *portfolio.Analyzer, spec string) {
	res, err := analyzer.Analyze(spec)
	if err != nil {
		fmt.Printf("analysis failed: %v\n", err)
		return
	}
	fmt.Println()
	fmt.Print(report.FormatResult(res))
	fmt.Println()
}
