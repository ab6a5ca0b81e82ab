// Package news implements the ranking and voting engine of a collaborative
// news aggregator: submission lifecycle, vote ledgers with duplicate and
// karma-eligibility checks, score and time-decayed rank formulas, the karma
// economy tied to voting, the ordered listing indices and the repost guard.
//
// The package is pure domain logic layered on a store.IStore; it owns no
// transport and no presentation. All state lives in the store under a fixed
// key layout:
//
//	news.count                      counter      submission id allocator
//	news:{id}                       hash         submission record
//	news.top / news.cron            zset         global top (by rank) / chronological (by ctime)
//	news.top.by_category:{cid}      zset         category top
//	news.cron.by_category:{cid}     zset         category chronological
//	news.up:{id} / news.down:{id}   zset         vote ledgers (member = voter id, score = vote time)
//	url:{url}                       ttl string   repost guard claim
//	users.count                     counter      user id allocator
//	user:{id}                       hash         user record (karma aspect)
//	user.saved:{uid}                zset         submissions the user up-voted
//	user.posted:{uid}               zset         submissions the user authored
//	email.to.id:{email}             string       email -> user id
//	categories.count                counter      category id allocator
//	category:{id}                   hash         category record
//	category_codes.to.id:{code}     string       code -> category id
//
// Key Components:
//
//   - Service: the orchestrator and the only type callers interact with.
//     It is constructed with an explicit store handle, a Config and a time
//     source; there is no ambient global state.
//
//   - Score and rank calculators: total functions over their numeric
//     domain, they never fail. Score is derived from the vote ledger
//     cardinalities, rank decays the score with submission age and sinks
//     submissions past the top-age-limit to exactly -age.
//
//   - Voting protocol: duplicate check against both ledgers, karma
//     threshold check (bypassed for the author), ledger insertion with
//     first-add detection driving the cached counters, score/rank refresh,
//     index upserts and the karma transfer between voter and author.
//
//   - Incremental rank-on-read: there is no background scheduler. Whenever
//     a batch of submissions is hydrated with the UpdateRank option, each
//     rank is recomputed from current age; cached values and top indices
//     are refreshed when the drift exceeds a small epsilon, and the batch
//     is re-sorted by the fresh ranks.
//
// Concurrency model: many workers share the store without any in-process
// lock. The voting protocol's duplicate check and ledger insertion are not
// one atomic unit; two concurrent first votes by the same voter may both
// pass the check, but only one insertion is a genuine first-time add and
// only that one increments the cached counter. The accepted outcome is a
// possible double timestamp write with a correct final count. Index
// mutations are idempotent upserts, so concurrent writers cannot diverge
// permanently.
//
// Error taxonomy: business rejections (duplicate vote, insufficient karma)
// are a typed Rejection result, never an error. Absent records are empty
// results. Store failures and malformed stored records are errors,
// propagated without retry.
package news
