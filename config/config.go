package config

import (
	"fmt"
	"time"

	"fraxlend/core"
	"fraxlend/pkg/fraxlend"
	"fraxlend/pkg/number"

	"github.com/asaskevich/govalidator"
	"github.com/ethereum/go-ethereum/common"
	configUtil "github.com/fox-one/pkg/config"
)

const defaultKeeperInterval = 15 * time.Second

func init() {
	govalidator.TagMap["address"] = govalidator.Validator(common.IsHexAddress)
}

// Load load config file
func Load(configFile string, config *core.Config) error {
	configUtil.AutomaticLoadEnv("FRAXLEND")
	if err := configUtil.LoadYaml(configFile, config); err != nil {
		return err
	}

	defaultKeeper(config)
	return Validate(config)
}

// Validate validate struct tags and pair parameters
func Validate(config *core.Config) error {
	if _, err := govalidator.ValidateStruct(config); err != nil {
		return fmt.Errorf("%w: %s", core.ErrInvalidConfig, err.Error())
	}

	pair := config.Pair
	if fee := number.Decimal(pair.ProtocolFee); fee.GreaterThan(fraxlend.MaxProtocolFee) {
		return fmt.Errorf("%w: protocol fee %s", core.ErrBadProtocolFee, fee)
	}

	if ltv := number.Decimal(pair.MaxLTV); ltv.GreaterThan(fraxlend.LTVPrecision) {
		return fmt.Errorf("%w: max ltv %s", core.ErrInvalidConfig, ltv)
	}

	if fee := number.Decimal(pair.CleanLiquidationFee); fee.GreaterThan(fraxlend.LiqPrecision) {
		return fmt.Errorf("%w: clean liquidation fee %s", core.ErrInvalidConfig, fee)
	}

	if pair.MaturityDate > 0 && !config.Access.BorrowerWhitelist {
		return core.ErrBorrowerWhitelistRequired
	}

	addrs := append(append(append([]string{}, config.Access.ApprovedBorrowers...), config.Access.ApprovedLenders...), config.Access.Swappers...)
	for _, addr := range addrs {
		if !common.IsHexAddress(addr) {
			return fmt.Errorf("%w: invalid address %q", core.ErrInvalidConfig, addr)
		}
	}

	return nil
}

func defaultKeeper(config *core.Config) {
	if config.Keeper.Interval <= 0 {
		config.Keeper.Interval = defaultKeeperInterval
	}

	if config.Keeper.Batch <= 0 {
		config.Keeper.Batch = 100
	}
}
