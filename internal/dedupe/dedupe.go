package dedupe

// Package dedupe provides shared singleflight groups used to collapse
// concurrent duplicate requests. Only one job runs for a given key while
// other callers wait for its result.

import "golang.org/x/sync/singleflight"

// BattleGroup deduplicates battle creation keyed by the payment transaction
// hash ("tx:<hash>"), so a retried payment callback cannot start a second
// battle while the first is still being simulated.
var BattleGroup singleflight.Group

// BattleKey returns the BattleGroup key for a payment transaction.
func BattleKey(txHash string) string { return "tx:" + txHash }
