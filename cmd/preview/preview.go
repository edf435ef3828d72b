package main

import (
	"fmt"
	"io"

	"github.com/milk9111/phaserunner/common"
	"github.com/milk9111/phaserunner/ecs"
	"github.com/milk9111/phaserunner/ecs/entity"
	"github.com/milk9111/phaserunner/ecs/system"
	"gopkg.in/yaml.v3"
)

type previewConfig struct {
	Seed   uint64
	Width  float64
	Height float64
	Speed  float64
}

// buildAll builds one chunk of every pattern with its own guard so that
// every preview starts from the same phase history.
func buildAll(cfg previewConfig) []entity.Chunk {
	src := common.NewSource(cfg.Seed)
	chunks := make([]entity.Chunk, 0, len(entity.AllPatterns))
	for _, kind := range entity.AllPatterns {
		chunks = append(chunks, entity.Build(kind, entity.Params{
			Cursor: cfg.Height - 80,
			Speed:  cfg.Speed,
			Width:  cfg.Width,
			Rand:   src,
			Guard:  entity.NewPhaseGuard(entity.DefaultStreakLimit),
		}))
	}
	return chunks
}

type dumpDoc struct {
	Seed   uint64         `yaml:"seed"`
	Width  float64        `yaml:"width"`
	Speed  float64        `yaml:"speed"`
	Chunks []entity.Chunk `yaml:"chunks"`
}

func dump(w io.Writer, cfg previewConfig, chunks []entity.Chunk) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(dumpDoc{Seed: cfg.Seed, Width: cfg.Width, Speed: cfg.Speed, Chunks: chunks}); err != nil {
		return fmt.Errorf("preview: dump: %w", err)
	}
	return enc.Close()
}

// stage is a world holding a single chunk. Only horizontal motion runs; the
// chunk never scrolls away.
type stage struct {
	world  *ecs.World
	scroll *system.ScrollSystem
	chunk  entity.Chunk
}

func newStage(cfg previewConfig, chunk entity.Chunk) *stage {
	w := ecs.NewWorld(cfg.Width, cfg.Height)
	chunk.Commit(w)
	return &stage{world: w, scroll: system.NewScrollSystem(), chunk: chunk}
}

func (s *stage) step(dtMs float64) {
	s.world.SetDT(dtMs)
	s.scroll.Update(s.world)
}
