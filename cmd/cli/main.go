package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/kellymillerdev/ai-bank/internal/analyze"
	"github.com/kellymillerdev/ai-bank/internal/ingest"
	"github.com/kellymillerdev/ai-bank/internal/logger"
)

func main() {
	log := logger.New()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "analyze":
		runAnalyze(log)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Bank Statement Analyzer CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  cli <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  analyze   Analyze a bank statement CSV export")
	fmt.Println("  help      Show this help message")
	fmt.Println("\nRun 'cli <command> -h' for more information on a command.")
}

func runAnalyze(log zerolog.Logger) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	file := fs.String("file", "", "Path to the statement CSV export")
	fs.Parse(os.Args[2:])

	if *file == "" {
		log.Fatal().Msg("Error: --file is required")
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("Failed to open statement")
	}
	defer f.Close()

	txs, err := ingest.NewParser(log).Parse(f)
	if err != nil {
		log.Fatal().Err(err).Msg("Analysis failed")
	}

	analysis := analyze.Analyze(txs)

	fmt.Printf("Transactions:   %d\n", len(analysis.Transactions))
	fmt.Printf("Total income:   $%.2f\n", analysis.TotalIncome)
	fmt.Printf("Total expenses: $%.2f\n", analysis.TotalExpenses)
	fmt.Printf("Net cash flow:  $%.2f\n", analysis.NetCashFlow)

	fmt.Println("\nMonthly trends:")
	for _, t := range analysis.MonthlyTrends {
		fmt.Printf("  %s  income $%.2f  expenses $%.2f  savings $%.2f\n",
			t.Month.Format("2006-01"), t.Income, t.Expenses, t.Savings)
	}

	fmt.Println("\nInsights:")
	for _, insight := range analysis.Insights {
		fmt.Println(insight)
	}
}
