package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/medsignal/auscultasim/internal/registry"
)

var conditionsCmd = &cobra.Command{
	Use:   "conditions",
	Short: "List the condition catalogue",
	Long:  `Display every registered condition id grouped by synthesizer kind.`,
	Run:   runConditions,
}

func init() {
	rootCmd.AddCommand(conditionsCmd)
}

var kindHeaderStyles = map[registry.Kind]lipgloss.Style{
	registry.KindCardiac:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	registry.KindFetal:       lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
	registry.KindRespiratory: lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
}

var idStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

func runConditions(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	profiles := registry.Profiles()

	maxLen := 0
	groups := map[registry.Kind][]registry.Profile{}
	for _, p := range profiles {
		if len(p.ID) > maxLen {
			maxLen = len(p.ID)
		}
		groups[p.Kind] = append(groups[p.Kind], p)
	}

	for _, kind := range []registry.Kind{registry.KindCardiac, registry.KindFetal, registry.KindRespiratory} {
		header := kindHeaderStyles[kind].Render(kind.String() + " conditions")
		fmt.Fprintf(out, "%s\n", header)
		for _, p := range groups[kind] {
			fmt.Fprintf(out, "  %s  %s\n", idStyle.Render(fmt.Sprintf("%-*s", maxLen, p.ID)), p.Label)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "default condition: %s\n", registry.DefaultConditionID)
}
