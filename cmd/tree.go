/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/josephgoksu/FamilyWing/internal/family"
	"github.com/josephgoksu/FamilyWing/internal/kv"
	"github.com/josephgoksu/FamilyWing/internal/ui"
	"github.com/josephgoksu/FamilyWing/internal/watch"
	"github.com/josephgoksu/FamilyWing/models"
	"github.com/spf13/cobra"
)

// treeCmd represents the tree command
var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Show the family as an indented tree",
	Long: `Show the family as an indented tree. Each line is the member's name
followed by a gender symbol (♂ male, ♀ female, • other or unset).

Trees start from members without recorded parents. With --search, trees start
from every member whose name contains the query (case-insensitive) instead.

With --watch the tree is redrawn whenever another familywing process saves a
change. Press Ctrl+C to stop.`,
	Args: cobra.NoArgs,
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().StringP("search", "s", "", "start trees from members whose name contains this text")
	treeCmd.Flags().BoolP("watch", "w", false, "redraw when the saved family changes")
}

// treeLine is the JSON form of one rendered tree line.
type treeLine struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Depth  int    `json:"depth"`
	Line   string `json:"line"`
}

func runTree(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("search")
	watching, _ := cmd.Flags().GetBool("watch")

	if watching && GetConfig().Data.Backend == kv.BackendBadger {
		return fmt.Errorf("--watch is not supported with the badger backend: it keeps the data directory locked")
	}

	s, err := GetStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	if err := writeTree(cmd.OutOrStdout(), s.Snapshot(), query); err != nil {
		return err
	}
	if !watching {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchTree(ctx, cmd.OutOrStdout(), s, query)
}

// watchTree redraws the tree after each change to the data directory.
func watchTree(ctx context.Context, w io.Writer, s ui.MemberSource, query string) error {
	if !isQuiet() && !isJSON() {
		fmt.Fprintf(w, "\nWatching %s for changes (Ctrl+C to stop)\n", GetConfig().Data.Dir)
	}
	return watch.Run(ctx, watch.Config{
		Dir: GetConfig().Data.Dir,
		OnChange: func() {
			if err := s.Reload(); err != nil {
				LogError("reload members", err)
				return
			}
			if isInteractive() && !isJSON() {
				fmt.Fprint(w, "\033[H\033[2J")
			}
			if err := writeTree(w, s.Snapshot(), query); err != nil {
				LogError("render tree", err)
			}
		},
	})
}

// writeTree prints the forest in the output mode selected by the global flags.
func writeTree(w io.Writer, members []models.Member, query string) error {
	lines := family.Forest(members, query)

	if isJSON() {
		out := make([]treeLine, 0, len(lines))
		for _, l := range lines {
			out = append(out, treeLine{
				ID:     l.Member.ID,
				Name:   l.Member.Name,
				Gender: l.Member.Gender.String(),
				Depth:  l.Depth,
				Line:   l.String(),
			})
		}
		return printJSON(w, out)
	}

	if isInteractive() {
		_, err := fmt.Fprint(w, ui.RenderStyledTree(lines, treeSentinel(query)))
		return err
	}

	text := family.RenderForest(members, query)
	if len(lines) == 0 {
		text += "\n"
	}
	_, err := fmt.Fprint(w, text)
	return err
}

func treeSentinel(query string) string {
	if strings.TrimSpace(query) != "" {
		return family.NoResults
	}
	return family.NoMembers
}
