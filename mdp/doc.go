// Package mdp provides primitives for finite Markov decision and reward
// processes: ordered state/action spaces with index lookup, row-stochastic
// transition models, deterministic stationary policies, and exact Bellman
// solving for a known reward.
//
// 🚀 Model
//
//	An MDP here is the tuple <S, A, T, γ>:
//	  • S — ordered set of n distinct state identifiers
//	  • A — ordered set of k distinct action identifiers
//	  • T — an (n·k)×n matrix; row i·k+j holds P(·|sᵢ, aⱼ)
//	  • γ — discount factor in (0, 1)
//
//	Ordering is significant: every matrix built on top of a Space addresses
//	rows and columns through the Space's fixed index mapping, and the
//	ordering never changes for the lifetime of a solve.
//
// ✨ Key pieces:
//
//   - Space            — bidirectional state/action ↔ index mapping
//   - TransitionModel  — validated P(s'|s,a) lookup over a Space
//   - Policy           — total deterministic state → action mapping
//   - RewardProcess    — the reward-bearing chain <S, P, R, γ> with an
//     exact Bellman solve v = (I−γP)⁻¹R
//   - QValues          — action values for a known reward and value vector
//
// All functions are deterministic, side-effect free, and return sentinel
// errors (matched with errors.Is) instead of panicking on user input.
package mdp
