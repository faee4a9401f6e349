package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/phanxgames/pinchdeck"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	itemsPath string
	seed      uint64
	fps       int
	maxFrames int
	width     float64
	height    float64
)

var replayCmd = &cobra.Command{
	Use:   "replay [script.json]",
	Short: "Run a scripted input session and print the picks",
	Long: `Runs a JSON input script (see pinchdeck.LoadTestScript) through a session
at a fixed frame rate. The replay ends when the script is exhausted and no
reveal or summary is pending, or after --max-frames.

Example:
  pinchdeck replay testdata/three-picks.json --seed 7`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&itemsPath, "items", "", "YAML file with the master item list (default: ten sample items)")
	replayCmd.Flags().Uint64Var(&seed, "seed", 0, "shuffle seed; 0 keeps master order")
	replayCmd.Flags().IntVar(&fps, "fps", 60, "frames per second of the virtual clock")
	replayCmd.Flags().IntVar(&maxFrames, "max-frames", 60*60, "stop after this many frames")
	replayCmd.Flags().Float64Var(&width, "width", 1280, "viewport width")
	replayCmd.Flags().Float64Var(&height, "height", 720, "viewport height")
}

func runReplay(cmd *cobra.Command, args []string) error {
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}
	cfg, err := pinchdeck.LoadConfig(configPath)
	if err != nil {
		return err
	}
	items, err := loadItems(itemsPath)
	if err != nil {
		return err
	}
	script, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	runner, err := pinchdeck.LoadTestScript(script)
	if err != nil {
		return err
	}

	log := logger.With(zap.String("run", uuid.NewString()), zap.String("script", args[0]))
	s, err := pinchdeck.NewSession(items, cfg,
		pinchdeck.WithLogger(log),
		pinchdeck.WithShuffle(seed != 0),
		pinchdeck.WithRand(rand.New(rand.NewPCG(seed, seed))),
		pinchdeck.WithMetrics(pinchdeck.DefaultMetrics(width, height, cfg)))
	if err != nil {
		return err
	}
	s.SetTestRunner(runner)
	s.OnMissedPick(func(m pinchdeck.MissContext) {
		log.Info("pinch dropped", zap.Stringer("reason", m.Reason))
	})
	s.OnStatus(func(msg string) {
		log.Info("status", zap.String("message", msg))
	})

	var summary *pinchdeck.Summary
	s.OnComplete(func(sum pinchdeck.Summary) { summary = &sum })

	dt := time.Second / time.Duration(fps)
	frames := 0
	for ; frames < maxFrames; frames++ {
		s.Update(dt)
		if runner.Done() && !s.Revealing() && s.PendingInput() == 0 && (summary != nil || s.ChosenCount() < cfg.PickCap) {
			break
		}
	}
	log.Info("replay finished", zap.Int("frames", frames), zap.Int("picked", s.ChosenCount()))

	out := cmd.OutOrStdout()
	if summary == nil {
		_, err = fmt.Fprintf(out, "picked %v (no summary)\n", s.Picked())
		return err
	}
	glyph := color.New(color.FgYellow, color.Bold)
	for i, it := range summary.Picks {
		if _, err := fmt.Fprintf(out, "%d. [%d] %s %s %s\n", i+1, it.ID, it.Title, glyph.Sprint(it.Glyph), it.RankLabel); err != nil {
			return err
		}
	}
	return nil
}

// loadItems reads a YAML item list, or returns the sample deck for "".
func loadItems(path string) ([]pinchdeck.Item, error) {
	if path == "" {
		return sampleItems(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	var doc struct {
		Items []pinchdeck.Item `yaml:"items"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse items %s: %w", path, err)
	}
	if len(doc.Items) == 0 {
		return nil, fmt.Errorf("parse items %s: no items", path)
	}
	return doc.Items, nil
}

func sampleItems() []pinchdeck.Item {
	ranks := []string{"XVII", "XVIII", "XIX", "XVI", "XXI", "0", "I", "XI", "XIV", "III"}
	items := make([]pinchdeck.Item, len(ranks))
	for i, r := range ranks {
		items[i] = pinchdeck.Item{
			ID:        pinchdeck.ItemID(i),
			Title:     "GOOD LUCK",
			Subtitle:  "✨",
			Glyph:     fmt.Sprintf("card %d", i),
			RankLabel: r,
		}
	}
	return items
}
