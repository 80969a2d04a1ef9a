package core

import (
	"time"

	"github.com/fox-one/pkg/store/db"
)

// Config fraxlend node config
type Config struct {
	App      App       `json:"app"`
	DB       db.Config `json:"db"`
	Pair     Pair      `json:"pair"`
	Access   Access    `json:"access"`
	Oracle   Oracle    `json:"oracle"`
	Ethereum Ethereum  `json:"ethereum"`
	Keeper   Keeper    `json:"keeper"`
}

// App app config
type App struct {
	// unix seconds of block zero
	Genesis         int64  `json:"genesis" valid:"required"`
	SecondsPerBlock int64  `json:"seconds_per_block" valid:"required"`
	Location        string `json:"location"`
}

// Pair pair parameters, integers are decimal strings
type Pair struct {
	Name                string `json:"name" valid:"required"`
	Symbol              string `json:"symbol" valid:"required"`
	Address             string `json:"address" valid:"required,address"`
	Asset               string `json:"asset" valid:"required,address"`
	Collateral          string `json:"collateral" valid:"required,address"`
	MaxLTV              string `json:"max_ltv" valid:"int"`
	CleanLiquidationFee string `json:"clean_liquidation_fee" valid:"int"`
	ProtocolFee         string `json:"protocol_fee" valid:"int"`
	MaturityDate        int64  `json:"maturity_date"`
	PenaltyRate         string `json:"penalty_rate" valid:"int"`
	Rate                Rate   `json:"rate"`
}

// Rate interest rate curve config
type Rate struct {
	Name string `json:"name" valid:"in(linear|variable|jump)"`

	// linear
	MinRate           string `json:"min_rate" valid:"int"`
	VertexRate        string `json:"vertex_rate" valid:"int"`
	MaxRate           string `json:"max_rate" valid:"int"`
	VertexUtilization string `json:"vertex_utilization" valid:"int"`

	// jump, per year decimals
	BaseRate       string `json:"base_rate" valid:"float"`
	Multiplier     string `json:"multiplier" valid:"float"`
	JumpMultiplier string `json:"jump_multiplier" valid:"float"`
	Kink           string `json:"kink" valid:"float"`
}

// Access ownership & whitelist config
type Access struct {
	Owner             string   `json:"owner" valid:"required,address"`
	TimeLock          string   `json:"time_lock" valid:"address"`
	BorrowerWhitelist bool     `json:"borrower_whitelist"`
	LenderWhitelist   bool     `json:"lender_whitelist"`
	ApprovedBorrowers []string `json:"approved_borrowers"`
	ApprovedLenders   []string `json:"approved_lenders"`
	Swappers          []string `json:"swappers"`
}

// Oracle exchange rate oracle config
type Oracle struct {
	Multiply      Feed   `json:"multiply"`
	Divide        Feed   `json:"divide"`
	Normalization string `json:"normalization" valid:"int"`
}

// Feed price feed config, an empty kind disables the feed
type Feed struct {
	Kind     string        `json:"kind" valid:"in(chainlink|http|static)"`
	Address  string        `json:"address" valid:"address"`
	Endpoint string        `json:"endpoint" valid:"url"`
	Symbol   string        `json:"symbol"`
	Decimals int32         `json:"decimals"`
	Answer   string        `json:"answer" valid:"int"`
	TTL      time.Duration `json:"ttl"`
}

// Ethereum json rpc config
type Ethereum struct {
	RPC string `json:"rpc"`
}

// Keeper keeper worker config
type Keeper struct {
	Interval time.Duration `json:"interval"`
	Batch    int           `json:"batch"`
}
