package blockbreaker

import "github.com/vovakirdan/blockbreaker/internal/config"

// BuildBlocks lays out the block grid column by column, top to bottom
// within each column. The slice order is the collision scan order.
func BuildBlocks(cfg config.BlocksConfig) []Block {
	blocks := make([]Block, 0, cfg.Rows*cfg.Columns)
	for c := range cfg.Columns {
		for r := range cfg.Rows {
			blocks = append(blocks, Block{
				X:      float64(c)*(cfg.Width+cfg.Padding) + cfg.OffsetLeft,
				Y:      float64(r)*(cfg.Height+cfg.Padding) + cfg.OffsetTop,
				Width:  cfg.Width,
				Height: cfg.Height,
			})
		}
	}
	return blocks
}
