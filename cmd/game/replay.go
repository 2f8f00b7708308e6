package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/younwookim/pufferdive/internal/application/replay"
	"github.com/younwookim/pufferdive/internal/domain/entity"
	"github.com/younwookim/pufferdive/internal/infrastructure/config"
)

// runReplay re-simulates the recording at path and writes a summary to
// out. The recording's own stage wins over fallbackStage.
func runReplay(cfg *config.GameConfig, loader *config.Loader, path, fallbackStage string, out io.Writer) error {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}

	stageName := data.Stage
	if stageName == "" {
		stageName = fallbackStage
	}
	stageCfg, err := loader.LoadStage(stageName)
	if err != nil {
		return fmt.Errorf("failed to load stage: %w", err)
	}

	res, err := replay.Run(cfg, replay.StageSource(stageCfg, cfg), *data)
	if err != nil {
		return err
	}

	writeResult(out, stageName, data.Seed, res)
	return nil
}

func writeResult(out io.Writer, stage string, seed int64, res replay.Result) {
	fmt.Fprintf(out, "stage:    %s (seed %d)\n", stage, seed)
	fmt.Fprintf(out, "frames:   %d (%.2fs)\n", res.Frames, res.Time)
	fmt.Fprintf(out, "finished: %t\n", res.Finished)
	fmt.Fprintf(out, "deaths:   %d\n", res.Deaths)
	fmt.Fprintf(out, "player:   (%.1f, %.1f) health %d\n", res.PlayerPos.X, res.PlayerPos.Y, res.Health)
	fmt.Fprintf(out, "blocks:   %d broken, %d built\n", res.Stats.BlocksBroken, res.Stats.BlocksBuilt)
	fmt.Fprintf(out, "bubbles:  %d fired\n", res.Stats.BubblesFired)

	kinds := make([]entity.Kind, 0, len(res.Stats.Kills))
	for k := range res.Stats.Kills {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		fmt.Fprintf(out, "killed:   %s x%d\n", k, res.Stats.Kills[k])
	}
}
