package fraxlend

import (
	"errors"
)

// BlockAt block number at unix seconds now
func BlockAt(now, genesis, secondsPerBlock int64) (int64, error) {
	if secondsPerBlock <= 0 {
		return 0, errors.New("secondsPerBlock should not be less than or equal zero")
	}

	seconds := now - genesis
	if seconds < 0 {
		return 0, errors.New("invalid blocks")
	}

	return seconds / secondsPerBlock, nil
}

// BlockClock derives block numbers from timestamps
type BlockClock struct {
	Genesis         int64
	SecondsPerBlock int64
}

// Block block number at now, zero before genesis or without a block time
func (c BlockClock) Block(now int64) int64 {
	block, err := BlockAt(now, c.Genesis, c.SecondsPerBlock)
	if err != nil {
		return 0
	}

	return block
}
