package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/sumbench/internal/config"
	"github.com/agbru/sumbench/internal/format"
	"github.com/agbru/sumbench/internal/sysmon"
	"github.com/agbru/sumbench/internal/ui"
	"github.com/agbru/sumbench/summation"
)

// PrintExecutionConfig displays the benchmark parameters and the host
// environment the timings were taken on.
func PrintExecutionConfig(cfg config.AppConfig, host sysmon.Host, load sysmon.Stats, out io.Writer) {
	sizes := make([]string, len(cfg.Sizes))
	for i, n := range cfg.Sizes {
		sizes[i] = format.FormatNumberString(fmt.Sprint(n))
	}
	timeout := "none"
	if cfg.Timeout > 0 {
		timeout = cfg.Timeout.String()
	}

	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Summing 1..N for N in %s[%s]%s, %s%d%s trials each, timeout %s%s%s.\n",
		ui.ColorMagenta(), strings.Join(sizes, ", "), ui.ColorReset(),
		ui.ColorMagenta(), cfg.Trials, ui.ColorReset(),
		ui.ColorYellow(), timeout, ui.ColorReset())

	cpuModel := host.CPUModel
	if cpuModel == "" {
		cpuModel = "unknown CPU"
	}
	fmt.Fprintf(out, "Environment: %s%s%s, %s%d%s logical processors, %s%s/%s%s, Go %s%s%s.\n",
		ui.ColorCyan(), cpuModel, ui.ColorReset(),
		ui.ColorCyan(), host.LogicalCPUs, ui.ColorReset(),
		ui.ColorCyan(), host.OS, host.Arch, ui.ColorReset(),
		ui.ColorCyan(), host.GoVersion, ui.ColorReset())
	if len(host.Features) > 0 {
		fmt.Fprintf(out, "CPU features: %s%s%s.\n", ui.ColorCyan(), strings.Join(host.Features, " "), ui.ColorReset())
	}
	fmt.Fprintf(out, "System load: CPU %.1f%%, memory %.1f%%, GC mode %s.\n", load.CPUPercent, load.MemPercent, cfg.GCMode)
}

// PrintExecutionMode displays which strategies will be measured.
func PrintExecutionMode(strategies []summation.Strategy, out io.Writer) {
	var modeDesc string
	if len(strategies) > 1 {
		labels := make([]string, len(strategies))
		for i, s := range strategies {
			labels[i] = ui.ColorGreen() + s.Label() + ui.ColorReset()
		}
		modeDesc = "Sequential comparison of " + strings.Join(labels, " and ")
	} else if len(strategies) == 1 {
		modeDesc = fmt.Sprintf("Single sweep with the %s%s%s strategy",
			ui.ColorGreen(), strategies[0].Label(), ui.ColorReset())
	} else {
		modeDesc = "No strategy selected"
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
