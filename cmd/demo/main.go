package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/avdeyev/tlog"
)

// Interactive demo: choose a destination and template, then exercise all six
// levels, switch the log file mid-run, and shut down cleanly.
func main() {
	logger := tlog.New()
	defer logger.Shutdown()

	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Log destination? (1 - console, 2 - file, 3 - both, 4 - custom template): ")
	choice := readChoice(reader, 1)

	switch choice {
	case 1:
		logger.SetTarget(tlog.TargetConsole)
	case 2:
		logger.SetTarget(tlog.TargetFile)
	case 3:
		logger.SetTarget(tlog.TargetBoth)
	case 4:
		logger.SetTarget(tlog.TargetConsole)
		fmt.Println("Choose a log template:")
		fmt.Println("1: {t} | {L} | {f}:{l} -> {m}")
		fmt.Println("2: [{L}] {m}")
		fmt.Println("3: {t} - {m}")
		fmt.Println("4: {m} ({f}:{l})")
		fmt.Print("Template number (1-4): ")
		switch readChoice(reader, 1) {
		case 2:
			logger.SetTemplate("[{L}] {m}")
		case 3:
			logger.SetTemplate("{t} - {m}")
		case 4:
			logger.SetTemplate("{m} ({f}:{l})")
		default:
			logger.SetTemplate(tlog.DefaultTemplate)
		}
	default:
		fmt.Println("Invalid choice, defaulting to console output.")
		logger.SetTarget(tlog.TargetConsole)
	}

	if err := logger.Init(tlog.LevelTrace, "app_log.log", true, true); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}

	logger.Trace("trace message: start app")
	logger.Debug("debug message: value x = ", 123)
	logger.Info("info message: user login")
	logger.Warning("warning message: low data")
	logger.Error("error message: cannot open file ", "config.txt")
	logger.Critical("critical message: system error!")

	// Switch to a fixed-name file mid-run; queued messages go to whichever
	// handle is active when the worker reaches them.
	if err := logger.Init(tlog.LevelDebug, "fixed_name_log.log", true, false); err != nil {
		fmt.Fprintf(os.Stderr, "re-init failed: %v\n", err)
		os.Exit(1)
	}

	logger.Debug("debug message after log switch")
	logger.Info("info message with several values: ", 3.14, ", string ", "example")

	user := "Alice"
	errorCode := -404
	logger.Error("user error ", user, " with code ", errorCode)

	if err := logger.Flush(2 * time.Second); err != nil {
		fmt.Fprintf(os.Stderr, "flush failed: %v\n", err)
	}

	fmt.Println("Done.")
}

func readChoice(reader *bufio.Reader, fallback int) int {
	line, err := reader.ReadString('\n')
	if err != nil {
		return fallback
	}
	var choice int
	if _, err := fmt.Sscanf(strings.TrimSpace(line), "%d", &choice); err != nil {
		return fallback
	}
	return choice
}
