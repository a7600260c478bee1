package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/mbarros/particle-clash/internal/engine"
	"github.com/mbarros/particle-clash/internal/game"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Resolve a batch of battles and summarize the results",
	Long: `Resolves many battles concurrently and prints a win table.

With --creatures, every ordered pair from the roster file battles once
(round-robin). Without it, random creature pairs are generated from a
seeded source, so the same seed always produces the same battles and the
same summary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		rounds, _ := cmd.Flags().GetInt("rounds")
		workers, _ := cmd.Flags().GetInt("workers")
		seed, _ := cmd.Flags().GetInt64("seed")
		roster, _ := cmd.Flags().GetString("creatures")
		if workers <= 0 {
			workers = runtime.NumCPU()
		}

		type pair struct{ a, b *game.Snapshot }
		var pairs []pair
		if roster != "" {
			snaps, err := readRoster(roster)
			if err != nil {
				return err
			}
			if len(snaps) < 2 {
				return fmt.Errorf("roster %s needs at least two creatures, got %d", roster, len(snaps))
			}
			for i := range snaps {
				for j := range snaps {
					if i != j {
						pairs = append(pairs, pair{a: snaps[i], b: snaps[j]})
					}
				}
			}
		} else {
			if rounds <= 0 {
				return fmt.Errorf("rounds must be positive, got %d", rounds)
			}
			// All randomness happens here, before any worker starts.
			rng := rand.New(rand.NewSource(seed))
			pairs = make([]pair, rounds)
			for i := range pairs {
				pairs[i] = pair{
					a: randomSnapshot(rng, fmt.Sprintf("sim-a-%d", i)),
					b: randomSnapshot(rng, fmt.Sprintf("sim-b-%d", i)),
				}
			}
		}

		eng := engine.New(cfg.Registry, cfg.Selector, cfg.Scoring)
		bar := progressbar.Default(int64(len(pairs)), "Resolving battles")

		outcomes := make([]*game.BattleOutcome, len(pairs))
		jobs := make(chan int)
		var wg sync.WaitGroup
		var firstErr error
		var errOnce sync.Once

		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					out, err := eng.ResolveBattle(pairs[i].a, pairs[i].b, cfg.Catalog)
					if err != nil {
						errOnce.Do(func() { firstErr = err })
						_ = bar.Add(1)
						continue
					}
					outcomes[i] = out
					_ = bar.Add(1)
				}
			}()
		}
		for i := range pairs {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
		if firstErr != nil {
			return firstErr
		}

		printSummary(outcomes)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().String("creatures", "", "Roster file (JSON array of creature snapshots) for a round-robin")
	simulateCmd.Flags().Int("rounds", 100, "Number of random battles when no roster is given")
	simulateCmd.Flags().Int("workers", 0, "Concurrent resolvers (0 = NumCPU)")
	simulateCmd.Flags().Int64("seed", 1, "Seed for random creature generation")
}

func readRoster(path string) ([]*game.Snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snaps []*game.Snapshot
	if err := json.Unmarshal(b, &snaps); err != nil {
		return nil, fmt.Errorf("malformed roster file %s: %w", path, err)
	}
	for i, s := range snaps {
		if s.Name == "" {
			s.Name = fmt.Sprintf("creature-%d", i)
		}
	}
	return snaps, nil
}

// randomSnapshot deals the full particle budget across the five roles using
// a stick-breaking draw, so any composition is reachable.
func randomSnapshot(rng *rand.Rand, name string) *game.Snapshot {
	s := &game.Snapshot{Name: name}
	remaining := game.ParticleTotal
	for i := 0; i < game.NumRoles-1; i++ {
		n := rng.Intn(remaining + 1)
		s.Roles[i] = n
		remaining -= n
	}
	s.Roles[game.NumRoles-1] = remaining
	return s
}

func printSummary(outcomes []*game.BattleOutcome) {
	wins := map[game.Winner]int{}
	strategies := map[string]int{}
	mixed := 0
	exhausted := 0
	for _, out := range outcomes {
		wins[out.Winner]++
		strategies[out.StrategyNameA]++
		strategies[out.StrategyNameB]++
		if out.Equilibria.Mixed != nil {
			mixed++
		}
		if out.Equilibria.Exhausted {
			exhausted++
		}
	}

	fmt.Printf("\nResolved %d battles\n", len(outcomes))
	fmt.Printf("Side A wins: %d, side B wins: %d, draws: %d\n",
		wins[game.WinnerA], wins[game.WinnerB], wins[game.WinnerDraw])

	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Println("Strategy picks:")
	for _, name := range names {
		fmt.Printf("  %-12s %d\n", name, strategies[name])
	}
	if mixed > 0 {
		fmt.Printf("Mixed equilibria used: %d\n", mixed)
	}
	if exhausted > 0 {
		fmt.Printf("Equilibrium search budget exhausted: %d\n", exhausted)
	}
}
