// Package rlexperiments collects small, self-contained reinforcement-learning
// building blocks for finite problems.
//
// 🚀 What lives here?
//
//	mdp/   — finite Markov decision/reward process primitives:
//	         ordered state/action spaces, row-stochastic transition models,
//	         deterministic policies, and exact Bellman solving.
//	lpirl/ — linear-programming inverse reinforcement learning
//	         (Ng & Abbeel): recover a state reward function under which an
//	         observed deterministic policy is provably optimal.
//
// ✨ Design notes:
//
//   - Pure batch computation — one call in, one result out, no shared state.
//   - Strict sentinel errors matched with errors.Is; no panics on user input.
//   - Dense linear algebra and LP solving delegate to gonum.
//
// A runnable demo over two tiny MDPs ships in cmd/lpirl.
package rlexperiments
