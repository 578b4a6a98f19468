// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package methods implements the voting rules that turn a profile into an outcome.

Single-winner methods return models.SingleWinner:

  - Plurality: first choices on ranked ballots
  - Approval: approvals on nominal ballots
  - Borda: positional points on ranked ballots, with a configurable base
  - RandomDictator: the top choice of the first non-empty ballot
  - Star: score then automatic runoff on cardinal ballots
  - IRV: instant-runoff with simultaneous elimination of the weakest
  - BMJ: Balanced Majority Judgment on cardinal ballots

STV is the only multi-winner method and returns models.MultiWinner.

Every method checks the profile against the candidate list first and fails with
models.ErrUnknownCandidate rather than counting a stray ID. When several
candidates share the best score the outcome is a Tie over exactly those
candidates; a profile that scores nobody yields None.
*/
package methods
