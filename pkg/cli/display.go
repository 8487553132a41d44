package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"ghroast/pkg/domain/model"
	"ghroast/pkg/utils/safe"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
)

var (
	colorRule     = color.New(color.FgCyan)
	colorTitle    = color.New(color.FgCyan, color.Bold)
	colorStep     = color.New(color.FgYellow)
	colorClaim    = color.New(color.FgYellow, color.Bold)
	colorEvidence = color.New(color.FgCyan)
	colorRoast    = color.New(color.FgMagenta, color.Italic)
	colorVerdict  = color.New(color.Bold)
	colorSpicy    = color.New(color.FgRed, color.Bold)
	colorDim      = color.New(color.Faint)
)

const ruleWidth = 60

func printHeader() {
	fmt.Println()
	colorTitle.Println("⚖️  GITHUB TRUTH ENGINE")
	colorRule.Println(strings.Repeat("━", ruleWidth))
	fmt.Println()
}

func printFooter() {
	fmt.Println()
	colorRule.Println(strings.Repeat("━", ruleWidth))
	colorDim.Println("⚖️  Powered by ghroast")
	colorDim.Println("   Run: ghroast roast <repo-url>")
	fmt.Println()
}

func printStep(msg string) {
	colorStep.Println(msg)
}

func printFound(report *model.Report) {
	language := report.Language
	if language == "" {
		language = "Unknown"
	}
	fmt.Printf("✓ Found: %s\n", report.FullName)
	fmt.Printf("  Stars: %d ⭐  |  Language: %s\n\n", report.Stars, language)
}

func printBackendHints() {
	fmt.Println()
	colorStep.Println("💡 Try:")
	fmt.Println("  • Quick mode: ghroast roast <repo> --quick")
	fmt.Println("  • Different model: ghroast roast <repo> --model llama3")
	fmt.Println("  • Check Ollama is running: ollama serve")
}

// renderRoast prints the roast with per-line highlighting of the structured
// parts the persona prompt asks the model to emit.
func renderRoast(text string) {
	colorRule.Println(strings.Repeat("━", ruleWidth))
	fmt.Println()

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			fmt.Println()
			continue
		}

		switch {
		case strings.HasPrefix(line, "CLAIM:"):
			colorClaim.Println(line)
		case strings.HasPrefix(line, "EVIDENCE:"):
			colorEvidence.Println(line)
		case strings.HasPrefix(line, "ROAST:"):
			colorRoast.Println(line)
		case strings.HasPrefix(line, "TRUTH SCORE:"):
			scoreColor(line).Println(line)
		case strings.HasPrefix(line, "VERDICT:"):
			colorVerdict.Println(line)
		case strings.HasPrefix(line, "SPICIEST TAKE:"):
			colorSpicy.Println(line)
		case strings.HasPrefix(line, "━"), strings.HasPrefix(line, "─"):
			colorDim.Println(line)
		default:
			fmt.Println(line)
		}
	}
}

func scoreColor(line string) *color.Color {
	raw := strings.TrimSpace(strings.TrimPrefix(line, "TRUTH SCORE:"))
	score, err := strconv.Atoi(strings.SplitN(raw, "/", 2)[0])
	if err != nil {
		return colorVerdict
	}

	switch {
	case score >= 70:
		return color.New(color.FgGreen, color.Bold)
	case score >= 50:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

// writeOutput duplicates the raw roast text verbatim to a file
func writeOutput(path, text string) error {
	fd, err := os.Create(filepath.Clean(path))
	if err != nil {
		return goerr.Wrap(err, "failed to create output file", goerr.V("path", path))
	}
	defer safe.Close(fd)

	if _, err := fd.WriteString(text); err != nil {
		return goerr.Wrap(err, "failed to write output file", goerr.V("path", path))
	}

	return nil
}
