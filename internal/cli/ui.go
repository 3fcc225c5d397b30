package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/mavenpub/pkg/publish"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleLink for URLs.
	StyleLink = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
	styleSigned      = lipgloss.NewStyle().Foreground(colorGreen)
	styleUnsigned    = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// printNextStep prints a suggested next command.
func printNextStep(w io.Writer, description, cmd string) {
	fmt.Fprintln(w, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// =============================================================================
// Publish Summary
// =============================================================================

// printSummary prints the outcome of a publish run.
func printSummary(w io.Writer, res *publish.Result) {
	fmt.Fprintln(w, StyleTitle.Render("Publication summary"))
	printKeyValue(w, "run", res.RunID)
	if r := res.Repository; r != nil {
		kind := "release"
		if res.Snapshot() {
			kind = "snapshot"
		}
		printKeyValue(w, "repository", StyleLink.Render(r.URL.String())+" "+StyleDim.Render("("+kind+")"))
		if r.Credentials.IsNone() {
			printWarning(w, "no repository credentials (set SONATYPE_USER and SONATYPE_PWD)")
		}
	}
	if res.Signed {
		printKeyValue(w, "signing", styleSigned.Render("signed")+" "+StyleDim.Render(res.KeyID))
	} else {
		printKeyValue(w, "signing", styleUnsigned.Render("unsigned"))
	}

	for _, pub := range res.Publications {
		line := pub.Coordinate.String()
		if v, ok := pub.Semver(); ok && v.Prerelease() != "" {
			line += StyleDim.Render(" · pre-release " + v.Prerelease())
		}
		printInfo(w, "%s %s", StyleValue.Render(pub.Name), line)
		var parts []string
		for _, a := range pub.Artifacts {
			parts = append(parts, a.FileName(pub.Coordinate.ArtifactID, pub.Coordinate.Version))
		}
		if len(parts) > 0 {
			fmt.Fprintln(w, "  "+StyleDim.Render(strings.Join(parts, " · ")))
		}
	}
}
