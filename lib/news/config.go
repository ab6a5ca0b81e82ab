package news

// Config holds the domain tunables of the ranking and voting engine.
// The zero value is not usable, start from DefaultConfig.
type Config struct {
	// karma economy
	UpvoteMinKarma      int64 // minimum karma to cast an up-vote
	DownvoteMinKarma    int64 // minimum karma to cast a down-vote
	UpvoteKarmaCost     int64 // karma debited from the voter per up-vote
	UpvoteKarmaTransfer int64 // karma credited to the author per received up-vote
	DownvoteKarmaCost   int64 // karma debited from the voter per down-vote
	UserInitialKarma    int64 // karma balance of a freshly created user

	// score formula
	ScoreLogStart   int64   // vote volume above which the log booster kicks in
	ScoreLogBooster float64 // weight of the log booster term

	// rank formula
	AgePadding        int64   // seconds added to the age to avoid division blow-up near zero
	RankAgingFactor   float64 // decay exponent, higher means steeper decay
	TopAgeLimit       int64   // seconds after which rank becomes -age
	RankUpdateEpsilon float64 // minimum rank drift that triggers a cache/index refresh

	// repost guard
	PreventRepostWindow uint64 // seconds a submitted url stays claimed
}

// DefaultConfig returns the standard engine configuration
func DefaultConfig() Config {
	return Config{
		UpvoteMinKarma:      1,
		DownvoteMinKarma:    30,
		UpvoteKarmaCost:     2,
		UpvoteKarmaTransfer: 1,
		DownvoteKarmaCost:   2,
		UserInitialKarma:    10,

		ScoreLogStart:   10,
		ScoreLogBooster: 2,

		AgePadding:        3600,
		RankAgingFactor:   1.5,
		TopAgeLimit:       60 * 60 * 24 * 10, // 10 days
		RankUpdateEpsilon: 1e-6,

		PreventRepostWindow: 60 * 60 * 48, // 48 hours
	}
}
