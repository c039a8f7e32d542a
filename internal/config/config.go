// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
// - Every engine tunable lives here; domain packages never hard-code a
//   threshold that a league commissioner might want to change.
package config

import (
	"runtime"
)

// Valuation holds the player valuation tunables.
type Valuation struct {
	// CategoryWeights maps canonical category ids to z-score weights.
	CategoryWeights map[string]float64 `koanf:"category_weights"`

	// PositionMultipliers maps position tags to scarcity multipliers.
	PositionMultipliers map[string]float64 `koanf:"position_multipliers"`

	// RecentWeight and PriorWeight blend current and prior period totals.
	RecentWeight float64 `koanf:"recent_weight"`
	PriorWeight  float64 `koanf:"prior_weight"`

	// GrindShareCap bounds the grind-category share of the weighted sum.
	GrindShareCap float64 `koanf:"grind_share_cap"`

	// Baseline and Scale convert a weighted z-sum to a value.
	Baseline float64 `koanf:"baseline"`
	Scale    float64 `koanf:"scale"`

	// MinValue and MaxValue clamp every computed value.
	MinValue float64 `koanf:"min_value"`
	MaxValue float64 `koanf:"max_value"`

	// SpreadRate re-introduces a fraction of the pre-clamp sum after
	// clamping so elite players stay distinguishable.
	SpreadRate float64 `koanf:"spread_rate"`

	// WidenedUpperMargin extends MaxValue for the post-spread re-clamp.
	WidenedUpperMargin float64 `koanf:"widened_upper_margin"`

	// Market tier thresholds on blended season points.
	TierOnePoints float64 `koanf:"tier_one_points"`
	TierTwoPoints float64 `koanf:"tier_two_points"`
	TierOneMult   float64 `koanf:"tier_one_mult"`
	TierTwoMult   float64 `koanf:"tier_two_mult"`
	TierThreeMult float64 `koanf:"tier_three_mult"`
	TierThreeGate float64 `koanf:"tier_three_gate"`

	// Hard floors for recognized scorer tiers.
	ElitePoints      float64 `koanf:"elite_points"`
	EliteScorerFloor float64 `koanf:"elite_scorer_floor"`
	ScorerPoints     float64 `koanf:"scorer_points"`
	ScorerFloor      float64 `koanf:"scorer_floor"`

	// Defense dampening for non-elite defensemen.
	DefenseDampening float64 `koanf:"defense_dampening"`
	DefenseEliteBase float64 `koanf:"defense_elite_base"`

	// Rookie discount applied when no prior record exists.
	RookieDiscount  float64 `koanf:"rookie_discount"`
	RookieMinPoints float64 `koanf:"rookie_min_points"`

	// Near-elite suppression keeps top-of-scale values for strict elites.
	NearEliteValue       float64 `koanf:"near_elite_value"`
	NearEliteSuppression float64 `koanf:"near_elite_suppression"`

	// Franchise cohort floor and reputation bonus.
	FranchisePoints float64 `koanf:"franchise_points"`
	FranchiseGoals  float64 `koanf:"franchise_goals"`
	FranchiseFloor  float64 `koanf:"franchise_floor"`
	FranchiseBonus  float64 `koanf:"franchise_bonus"`

	// Goalie pipeline tunables.
	GoalieBaselineStarts  float64 `koanf:"goalie_baseline_starts"`
	GoalieWorkloadRate    float64 `koanf:"goalie_workload_rate"`
	GoalieWorkloadCeiling float64 `koanf:"goalie_workload_ceiling"`
}

// Keeper holds keeper-contract tunables.
type Keeper struct {
	// MaxYears is the maximum seasons a player can be kept.
	MaxYears int `koanf:"max_years"`

	// Tier boundaries over draft rounds 1..MaxRound.
	TierAMax int `koanf:"tier_a_max"`
	TierBMax int `koanf:"tier_b_max"`
	MaxRound int `koanf:"max_round"`

	// ExpirationPenalty reduces value for a keeper in its final year.
	ExpirationPenalty float64 `koanf:"expiration_penalty"`

	// EliteKeeperValue marks the elite keeper bucket.
	EliteKeeperValue float64 `koanf:"elite_keeper_value"`
}

// Profile holds team-profile classification tunables.
type Profile struct {
	StrongZ   float64 `koanf:"strong_z"`
	WeakZ     float64 `koanf:"weak_z"`
	EliteZ    float64 `koanf:"elite_z"`
	CriticalZ float64 `koanf:"critical_z"`

	// FlexBonusRate scales the surplus bonus per multi-position skater.
	FlexBonusRate float64 `koanf:"flex_bonus_rate"`
}

// Trade holds candidate generation, gating and scoring tunables.
type Trade struct {
	// Tradeable value band.
	TradeableMin float64 `koanf:"tradeable_min"`
	TradeableMax float64 `koanf:"tradeable_max"`

	// TopK bounds each side of the pairing search.
	TopK int `koanf:"top_k"`

	// MaxPerPartner bounds candidates kept per partner team.
	MaxPerPartner int `koanf:"max_per_partner"`

	// FairnessCeiling is the maximum tolerated |value delta|.
	FairnessCeiling float64 `koanf:"fairness_ceiling"`

	// FairnessCategoryGate lets a strong category gain justify a delta
	// above the ceiling, up to FairnessExtendedCeiling.
	FairnessCategoryGate    float64 `koanf:"fairness_category_gate"`
	FairnessExtendedCeiling float64 `koanf:"fairness_extended_ceiling"`

	// HardLossFloor discards any trade losing more than this value.
	HardLossFloor float64 `koanf:"hard_loss_floor"`

	// Elite protection.
	EliteValue    float64 `koanf:"elite_value"`
	EliteLossPct  float64 `koanf:"elite_loss_pct"`
	EliteMinGain  float64 `koanf:"elite_min_gain"`
	EliteAltValue float64 `koanf:"elite_alt_value"`

	// Keeper lock: a high-surplus expiring keeper cannot move cheaply.
	KeeperLockSurplus float64 `koanf:"keeper_lock_surplus"`
	KeeperLockMinGain float64 `koanf:"keeper_lock_min_gain"`

	// NearWorthlessFloor: both sides below this value is noise.
	NearWorthlessFloor float64 `koanf:"near_worthless_floor"`

	// Scoring weights and clamps.
	ValueWeight       float64 `koanf:"value_weight"`
	CategoryWeight    float64 `koanf:"category_weight"`
	CategoryGainClamp float64 `koanf:"category_gain_clamp"`
	WeakCategoryBoost float64 `koanf:"weak_category_boost"`
	StrongErosionRate float64 `koanf:"strong_erosion_rate"`

	// Sidegrade suppression.
	SidegradePenalty     float64 `koanf:"sidegrade_penalty"`
	SidegradeValueEps    float64 `koanf:"sidegrade_value_eps"`
	SidegradeCategoryEps float64 `koanf:"sidegrade_category_eps"`

	// Keeper impact shaping.
	ExpiringMoveBonus float64 `koanf:"expiring_move_bonus"`
	FreshShedPenalty  float64 `koanf:"fresh_shed_penalty"`
	FreshShedBonusMin float64 `koanf:"fresh_shed_bonus_min"`

	// TopN truncates the final ranked list.
	TopN int `koanf:"top_n"`
}

// Confidence holds the realism-curve breakpoints.
type Confidence struct {
	TightBand    float64 `koanf:"tight_band"`
	CloseBand    float64 `koanf:"close_band"`
	StretchBand  float64 `koanf:"stretch_band"`
	FarBand      float64 `koanf:"far_band"`
	OuterBand    float64 `koanf:"outer_band"`
	CategoryLift float64 `koanf:"category_lift"`

	LossMediumCap      float64 `koanf:"loss_medium_cap"`
	LossSpeculativeCap float64 `koanf:"loss_speculative_cap"`
	WinMediumCap       float64 `koanf:"win_medium_cap"`
	WinSpeculativeCap  float64 `koanf:"win_speculative_cap"`

	HighCutoff   float64 `koanf:"high_cutoff"`
	MediumCutoff float64 `koanf:"medium_cutoff"`
}

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// WorkerCount sets the number of partner-search workers.
	WorkerCount int `koanf:"worker_count"`

	// JobQueueSize bounds the in-memory partner-search queue.
	JobQueueSize int `koanf:"job_queue_size"`

	// RosterMinimums maps position tags to fractional post-trade minimums.
	RosterMinimums map[string]float64 `koanf:"roster_minimums"`

	Valuation  Valuation  `koanf:"valuation"`
	Keeper     Keeper     `koanf:"keeper"`
	Profile    Profile    `koanf:"profile"`
	Trade      Trade      `koanf:"trade"`
	Confidence Confidence `koanf:"confidence"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:     "info",
		Addr:         ":9090",
		WorkerCount:  runtime.NumCPU() * 2,
		JobQueueSize: 256,
		RosterMinimums: map[string]float64{
			"C": 3.0, "LW": 3.0, "RW": 3.0, "D": 4.0, "G": 3.0,
		},
		Valuation: Valuation{
			CategoryWeights: map[string]float64{
				"goals": 1.0, "assists": 1.0, "points": 0.9,
				"powerplay_points": 0.8, "shots": 0.7, "plus_minus": 0.6,
				"hits": 0.35, "blocks": 0.35, "penalty_minutes": 0.25, "faceoff_wins": 0.3,
				"wins": 1.0, "saves": 0.8, "save_pct": 0.9,
				"goals_against_avg": 0.9, "shutouts": 0.6,
			},
			PositionMultipliers: map[string]float64{
				"C": 0.97, "LW": 1.05, "RW": 1.05, "D": 1.06, "G": 1.0,
			},
			RecentWeight:          0.7,
			PriorWeight:           0.3,
			GrindShareCap:         0.25,
			Baseline:              100,
			Scale:                 8,
			MinValue:              40,
			MaxValue:              200,
			SpreadRate:            0.4,
			WidenedUpperMargin:    5,
			TierOnePoints:         90,
			TierTwoPoints:         70,
			TierOneMult:           1.12,
			TierTwoMult:           1.06,
			TierThreeMult:         1.02,
			TierThreeGate:         50,
			ElitePoints:           90,
			EliteScorerFloor:      155,
			ScorerPoints:          60,
			ScorerFloor:           120,
			DefenseDampening:      0.96,
			DefenseEliteBase:      150,
			RookieDiscount:        0.92,
			RookieMinPoints:       30,
			NearEliteValue:        150,
			NearEliteSuppression:  0.94,
			FranchisePoints:       100,
			FranchiseGoals:        55,
			FranchiseFloor:        180,
			FranchiseBonus:        3,
			GoalieBaselineStarts:  55,
			GoalieWorkloadRate:    0.15,
			GoalieWorkloadCeiling: 8,
		},
		Keeper: Keeper{
			MaxYears:          3,
			TierAMax:          4,
			TierBMax:          10,
			MaxRound:          16,
			ExpirationPenalty: 0.25,
			EliteKeeperValue:  160,
		},
		Profile: Profile{
			StrongZ:       0.85,
			WeakZ:         -0.85,
			EliteZ:        1.60,
			CriticalZ:     -1.60,
			FlexBonusRate: 0.1,
		},
		Trade: Trade{
			TradeableMin:            50,
			TradeableMax:            180,
			TopK:                    8,
			MaxPerPartner:           2,
			FairnessCeiling:         25,
			FairnessCategoryGate:    6,
			FairnessExtendedCeiling: 32,
			HardLossFloor:           30,
			EliteValue:              165,
			EliteLossPct:            0.08,
			EliteMinGain:            12,
			EliteAltValue:           150,
			KeeperLockSurplus:       20,
			KeeperLockMinGain:       10,
			NearWorthlessFloor:      55,
			ValueWeight:             0.8,
			CategoryWeight:          1.2,
			CategoryGainClamp:       12,
			WeakCategoryBoost:       1.5,
			StrongErosionRate:       0.75,
			SidegradePenalty:        4,
			SidegradeValueEps:       3,
			SidegradeCategoryEps:    1.5,
			ExpiringMoveBonus:       2,
			FreshShedPenalty:        3,
			FreshShedBonusMin:       8,
			TopN:                    5,
		},
		Confidence: Confidence{
			TightBand:          5,
			CloseBand:          15,
			StretchBand:        25,
			FarBand:            40,
			OuterBand:          50,
			CategoryLift:       0.12,
			LossMediumCap:      8,
			LossSpeculativeCap: 18,
			WinMediumCap:       20,
			WinSpeculativeCap:  35,
			HighCutoff:         0.65,
			MediumCutoff:       0.35,
		},
	}
}
