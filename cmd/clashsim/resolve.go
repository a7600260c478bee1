package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mbarros/particle-clash/internal/engine"
	"github.com/mbarros/particle-clash/internal/game"
	"github.com/mbarros/particle-clash/internal/keys"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <creature_a.json> <creature_b.json>",
	Short: "Resolve one battle between two creature snapshot files",
	Long: `Reads two creature snapshots from JSON files and resolves a single
battle, printing the chosen strategies, payoffs and winner. Running the
same two files again always prints the same result.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		snapA, err := readSnapshot(args[0])
		if err != nil {
			return err
		}
		snapB, err := readSnapshot(args[1])
		if err != nil {
			return err
		}

		eng := engine.New(cfg.Registry, cfg.Selector, cfg.Scoring)
		out, err := eng.ResolveBattle(snapA, snapB, cfg.Catalog)
		if err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]interface{}{
				"outcome":      out,
				"content_hash": keys.BattleKey(snapA, snapB, cfg.Catalog),
			})
		}

		fmt.Printf("%s plays %q, %s plays %q\n", snapA.Name, out.StrategyNameA, snapB.Name, out.StrategyNameB)
		fmt.Printf("Payoffs: %.2f vs %.2f\n", out.PayoffA, out.PayoffB)
		fmt.Printf("Winner: %s\n", out.Winner)
		if len(out.Equilibria.Pure) > 0 {
			fmt.Printf("Pure equilibria: %d\n", len(out.Equilibria.Pure))
		} else if out.Equilibria.Mixed != nil {
			fmt.Println("Mixed equilibrium used")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().Bool("json", false, "Print the full outcome as JSON")
}

func readSnapshot(path string) (*game.Snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s game.Snapshot
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("malformed creature file %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return &s, nil
}
